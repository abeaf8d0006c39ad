// Package raw reads the handful of env values the logger needs before it exists
// it must not import logger or config
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a prefix scoped env view, like config.Conf without logging
type Conf struct{ prefix string }

// New returns the unscoped view
func New() Conf { return Conf{} }

// Prefix returns a child view
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) value(key string) string { return strings.TrimSpace(os.Getenv(c.prefix + key)) }

// Get returns key or def when blank
func (c Conf) Get(key, def string) string {
	if v := c.value(key); v != "" {
		return v
	}
	return def
}

// GetBool is true for 1, true, yes or on, false for any other non blank value
func (c Conf) GetBool(key string, def bool) bool {
	switch strings.ToLower(c.value(key)) {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// GetInt returns key as a non negative int, anything else gives def
func (c Conf) GetInt(key string, def int) int {
	n, err := strconv.Atoi(c.value(key))
	if err != nil || n < 0 {
		return def
	}
	return n
}
