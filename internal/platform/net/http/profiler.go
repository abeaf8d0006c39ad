// Package http is the chi backed server, router seam and response writers
package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves net/http/pprof at prefix+"/pprof/" when on
func MountProfiler(r Router, prefix string, on bool) {
	if !on {
		return
	}
	r.Handle(prefix+"/*", stdhttp.StripPrefix(prefix, mw.Profiler()))
}
