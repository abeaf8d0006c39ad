package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gridiron/internal/platform/config"
	phttp "gridiron/internal/platform/net/http"
)

func TestDocument_MutatorsAndDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(nil)
	Register(func(spec map[string]any) {
		AddPath(spec, "/plays", "get", map[string]any{
			"summary":   "List plays",
			"responses": map[string]any{"200": map[string]any{"description": "ok"}},
		})
		Schemas(spec)["Summary"] = map[string]any{"type": "object"}
	})

	spec := Document("gridiron", "/api/v1")
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi %v", spec["openapi"])
	}
	op := spec["paths"].(map[string]any)["/plays"].(map[string]any)["get"].(map[string]any)
	resps := op["responses"].(map[string]any)
	for _, k := range []string{"200", "400", "500"} {
		if _, ok := resps[k]; !ok {
			t.Fatalf("missing response %s: %v", k, resps)
		}
	}
	schemas := Schemas(spec)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatal("ErrorResponse schema missing")
	}
	if _, ok := schemas["Summary"]; !ok {
		t.Fatal("module schema dropped")
	}
}

func TestMount(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	off := phttp.NewServer(config.New().Prefix("TESTSWAG_"))
	Mount(off.Router(), false, "x")
	rec := httptest.NewRecorder()
	off.Router().Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled => %d", rec.Code)
	}

	on := phttp.NewServer(config.New().Prefix("TESTSWAG_"))
	Mount(on.Router(), true, "gridiron")

	rec = httptest.NewRecorder()
	on.Router().Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json => %d", rec.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc["info"].(map[string]any)["title"] != "gridiron" {
		t.Fatalf("info %v", doc["info"])
	}

	rec = httptest.NewRecorder()
	on.Router().Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect => %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	on.Router().Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/index.html", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("ui => %d", rec.Code)
	}
}
