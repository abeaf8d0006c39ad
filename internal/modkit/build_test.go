package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gridiron/internal/modkit/httpkit"
	phttp "gridiron/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func tag(name string, trail *[]string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trail = append(*trail, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestBuild_Defaults(t *testing.T) {
	b := Build(nil)
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || b.SwaggerOn || len(b.Mw) != 0 {
		t.Fatalf("zero build = %+v", b)
	}
}

func TestBuild_Options(t *testing.T) {
	type ports struct{ N int }
	var trail []string
	a, c := tag("a", &trail), tag("c", &trail)

	src := []Middleware{a}
	b := Build(
		WithName("plays"),
		WithName("plays2"),
		WithPrefix("/plays"),
		WithMiddlewares(src...),
		WithMiddlewares(c),
		WithPorts(ports{N: 3}),
		WithSwagger(true),
	)
	src[0] = c

	if b.Name != "plays2" || b.Prefix != "/plays" || !b.SwaggerOn {
		t.Fatalf("build = %+v", b)
	}
	if p, ok := b.Ports.(ports); !ok || p.N != 3 {
		t.Fatalf("ports = %#v", b.Ports)
	}
	if len(b.Mw) != 2 {
		t.Fatalf("mw = %d", len(b.Mw))
	}

	h := b.Mw[0](b.Mw[1](http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if len(trail) != 2 || trail[0] != "a" || trail[1] != "c" {
		t.Fatalf("order after source mutation = %v", trail)
	}
}

func TestBuilt_Mount(t *testing.T) {
	cases := []struct {
		name   string
		prefix string
		hit    string
		miss   string
	}{
		{"root group", "", "/x", "/meta/x"},
		{"prefixed", "meta/", "/meta/x", "/x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var trail []string
			r := phttp.AdaptChi(chi.NewRouter())
			b := Build(WithPrefix(tc.prefix), WithMiddlewares(tag("m", &trail)))
			b.Mount(r, func(sr httpkit.Router) {
				sr.Get("/x", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
			})

			rr := httptest.NewRecorder()
			r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.hit, nil))
			if rr.Code != http.StatusNoContent || len(trail) != 1 {
				t.Fatalf("%s => %d trail=%v", tc.hit, rr.Code, trail)
			}
			rr = httptest.NewRecorder()
			r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.miss, nil))
			if rr.Code != http.StatusNotFound {
				t.Fatalf("%s => %d", tc.miss, rr.Code)
			}
		})
	}
}
