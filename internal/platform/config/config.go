// Package config reads gridiron settings from environment variables
package config

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gridiron/internal/platform/logger"
)

// Conf is a view over the environment scoped by a key prefix such as "CORE_EXPORT_"
type Conf struct{ prefix string }

// New returns the unscoped view
func New() Conf { return Conf{} }

// Prefix returns a child view, prefixes nest
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the full key and trimmed value, blank counts as unset
func (c Conf) lookup(k string) (string, string, bool) {
	full := c.key(k)
	v := strings.TrimSpace(os.Getenv(full))
	return full, v, v != ""
}

// may parses key, unset gives def and a bad value warns then gives def
func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	full, s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", full).Str("value", s).Interface("default", def).Msg("config: unparsable value, using default")
		return def
	}
	return v
}

// must parses key and panics through the root logger when it is unset or bad
func must[T any](c Conf, key string, parse func(string) (T, error)) T {
	full, s, ok := c.lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", full).Msg("config: missing required env")
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Panic().Err(err).Str("key", full).Str("value", s).Msg("config: invalid value")
	}
	return v
}

func parseString(s string) (string, error) { return s, nil }

// MustString returns the value of key, panics when unset
func (c Conf) MustString(key string) string { return must(c, key, parseString) }

// MustInt returns key as an int, panics when unset or not an int
func (c Conf) MustInt(key string) int { return must(c, key, strconv.Atoi) }

// MustDuration returns key as a duration like 250ms or 2s, panics when unset or invalid
func (c Conf) MustDuration(key string) time.Duration { return must(c, key, time.ParseDuration) }

// MayString returns key or def
func (c Conf) MayString(key, def string) string { return may(c, key, def, parseString) }

// MayInt returns key as an int or def
func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

// MayBool returns key as a bool (strconv.ParseBool forms) or def
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration returns key as a duration or def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

// MayList splits a comma separated key, blanks dropped
// unset or all blank gives def
func (c Conf) MayList(key string, def []string) []string {
	out := may(c, key, def, func(s string) ([]string, error) {
		var parts []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		return parts, nil
	})
	if len(out) == 0 {
		return def
	}
	return out
}

// MayAddr returns a listen address, a bare port like 4000 becomes :4000
// ports outside 1..65535 warn and give def
func (c Conf) MayAddr(key, def string) string {
	return may(c, key, def, func(s string) (string, error) {
		if !strings.Contains(s, ":") {
			s = ":" + s
		}
		_, port, err := net.SplitHostPort(s)
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(port)
		if err != nil {
			return "", err
		}
		if n < 1 || n > 65535 {
			return "", strconv.ErrRange
		}
		return s, nil
	})
}
