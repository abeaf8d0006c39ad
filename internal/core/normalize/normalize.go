// Package normalize cleans free-text cells read from tracking CSVs
// Pipeline order for Label
// 1 Sanitize control bytes and invalid UTF-8
// 2 Unicode NFC composition
// 3 Remove format chars (zero-width joiners, BOM)
// 4 Collapse whitespace to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// chains are stateful so each call takes its own from the pool
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cf)),
		)
	},
}

// Label returns the display form of a name, role, position or direction cell
// accents are composed rather than stripped so the result is safe to show as-is
func Label(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// transform only fails on malformed input which Sanitize already dropped
		ns = s
	}

	return collapseSpaces(ns)
}

// collapseSpaces turns any run of unicode whitespace into one ASCII space and trims the ends
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
