package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func tag(name string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Add("X-Tag", name)
			next.ServeHTTP(w, req)
		})
	}
}

func write(body string) Handler {
	return func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = w.Write([]byte(body)) }
}

func TestAdaptChi_RoutesGroupsAndMiddleware(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Use(tag("root"))
	r.Get("/root", write("root"))
	r.Group(func(g Router) {
		g.Use(tag("group"))
		if g.Mux() == nil {
			t.Fatal("group Mux() is nil")
		}
		g.Get("/g", write("g"))
		g.Group(func(n Router) { n.Get("/g/nested", write("nested")) })
	})
	r.Route("/api", func(a Router) {
		a.Use(tag("api"))
		a.Route("/v1", func(v Router) { v.Get("/ok", write("v1ok")) })
	})

	tests := []struct {
		path, body string
		tags       []string
	}{
		{"/root", "root", []string{"root"}},
		{"/g", "g", []string{"root", "group"}},
		{"/g/nested", "nested", []string{"root", "group"}},
		{"/api/v1/ok", "v1ok", []string{"root", "api"}},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, tc.path, nil))
		if rr.Code != stdhttp.StatusOK || rr.Body.String() != tc.body {
			t.Fatalf("GET %s => %d %q", tc.path, rr.Code, rr.Body.String())
		}
		got := rr.Header().Values("X-Tag")
		if len(got) != len(tc.tags) {
			t.Fatalf("GET %s tags = %v want %v", tc.path, got, tc.tags)
		}
		for i := range got {
			if got[i] != tc.tags[i] {
				t.Fatalf("GET %s tags = %v want %v", tc.path, got, tc.tags)
			}
		}
	}
}

func TestAdaptChi_HeadOptionsHandle(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Head("/h", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.Header().Set("X-Head", "1") })
	r.Options("/o", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(stdhttp.StatusNoContent) })
	r.Handle("/std", stdhttp.HandlerFunc(write("std")))

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodHead, "/h", nil))
	if rr.Code != stdhttp.StatusOK || rr.Header().Get("X-Head") != "1" {
		t.Fatalf("HEAD /h => %d %q", rr.Code, rr.Header().Get("X-Head"))
	}

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodOptions, "/o", nil))
	if rr.Code != stdhttp.StatusNoContent {
		t.Fatalf("OPTIONS /o => %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/std", nil))
	if rr.Body.String() != "std" {
		t.Fatalf("GET /std => %q", rr.Body.String())
	}

	// write verbs are not routable
	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodPost, "/h", nil))
	if rr.Code != stdhttp.StatusMethodNotAllowed {
		t.Fatalf("POST /h => %d, want 405", rr.Code)
	}
}
