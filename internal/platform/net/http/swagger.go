package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger mounts the swagger UI under /docs/ when enabled
// docURL points the UI at the served openapi document
func MountSwagger(r Router, enabled bool, docURL string) {
	if !enabled {
		return
	}
	opts := []func(*httpSwagger.Config){}
	if docURL != "" {
		opts = append(opts, httpSwagger.URL(docURL))
	}
	h := httpSwagger.Handler(opts...)
	r.Get("/docs/*", func(w http.ResponseWriter, req *http.Request) { h.ServeHTTP(w, req) })
}
