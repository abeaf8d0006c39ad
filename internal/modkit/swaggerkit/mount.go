package swaggerkit

import (
	"net/http"

	phttp "gridiron/internal/platform/net/http"
)

// Mount serves doc.json and the swagger UI under /api/docs when enabled
func Mount(r phttp.Router, enabled bool, title string) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/api/docs/index.html", http.StatusPermanentRedirect)
	})
	r.Route("/api", func(api phttp.Router) {
		api.Get("/docs/doc.json", serveDocJSON(title, "/api/v1"))
		phttp.MountSwagger(api, true, "/api/docs/doc.json")
	})
}
