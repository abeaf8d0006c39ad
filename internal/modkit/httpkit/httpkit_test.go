package httpkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "gridiron/internal/platform/errors"
	phttp "gridiron/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func newRouter() Router { return phttp.AdaptChi(chi.NewRouter()) }

func get(r Router, target string, hdr ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	return rr
}

func TestPathIntAndParam(t *testing.T) {
	r := newRouter()
	Get(r, "/plays/{gameID}/{playID}", func(req *http.Request) (any, error) {
		g, err := PathParam(req, "gameID")
		if err != nil {
			return nil, err
		}
		p, err := PathInt(req, "playID")
		if err != nil {
			return nil, err
		}
		return map[string]any{"g": g, "p": p}, nil
	})

	rr := get(r, "/plays/2023091000/56")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"p":56`) {
		t.Fatalf("ok path => %d %q", rr.Code, rr.Body.String())
	}
	rr = get(r, "/plays/2023091000/abc")
	if rr.Code != http.StatusBadRequest || !strings.Contains(rr.Body.String(), `playID must be an integer, got \"abc\"`) {
		t.Fatalf("non-int => %d %q", rr.Code, rr.Body.String())
	}
}

func TestPathParam_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := PathParam(req, "gameID")
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetQuery(t *testing.T) {
	type q struct {
		Size int `query:"size" default:"5" validate:"min=1,max=100"`
	}
	r := newRouter()
	GetQuery(r, "/c", func(_ *http.Request, in q) (any, error) { return in.Size, nil })

	if rr := get(r, "/c"); !strings.Contains(rr.Body.String(), `"data":5`) {
		t.Fatalf("default => %q", rr.Body.String())
	}
	if rr := get(r, "/c?size=101"); rr.Code != http.StatusBadRequest {
		t.Fatalf("max => %d", rr.Code)
	}
}

func TestGet_ResponsePassthroughAndErrors(t *testing.T) {
	r := newRouter()
	Get(r, "/resp", func(*http.Request) (any, error) { return OK("z").WithHeader("X-K", "v"), nil })
	Get(r, "/nf", func(*http.Request) (any, error) { return nil, perr.NotFoundf("nope") })

	if rr := get(r, "/resp"); rr.Header().Get("X-K") != "v" || !strings.Contains(rr.Body.String(), `"data":"z"`) {
		t.Fatalf("passthrough => %v %q", rr.Header(), rr.Body.String())
	}
	if rr := get(r, "/nf"); rr.Code != http.StatusNotFound || !strings.Contains(rr.Body.String(), "nope") {
		t.Fatalf("not found => %d %q", rr.Code, rr.Body.String())
	}
	if Error(perr.ErrNotFound).Body == nil {
		t.Fatal("Error lost its body")
	}
}

func TestMountAPIV1(t *testing.T) {
	r := newRouter()
	hits := 0
	mark := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			hits++
			next.ServeHTTP(w, req)
		})
	}
	MountAPIV1(r, []func(http.Handler) http.Handler{mark}, func(api Router) {
		api.Route("/meta", func(m Router) {
			m.Use(mark)
			Get(m, "/version", func(*http.Request) (any, error) { return "v", nil })
		})
		api.Route("/bare", func(m Router) {
			Get(m, "/", func(*http.Request) (any, error) { return "b", nil })
		})
	})

	if rr := get(r, "/api/v1/meta/version"); rr.Code != http.StatusOK || hits != 2 {
		t.Fatalf("meta => %d hits=%d", rr.Code, hits)
	}
	if rr := get(r, "/api/v1/bare/"); rr.Code != http.StatusOK || hits != 3 {
		t.Fatalf("bare => %d hits=%d", rr.Code, hits)
	}

	r2 := newRouter()
	MountAPI(r2, "/v2", nil, func(api Router) {
		Get(api, "/x", func(*http.Request) (any, error) { return 1, nil })
	})
	if rr := get(r2, "/api/v2/x"); rr.Code != http.StatusOK {
		t.Fatalf("v2 => %d", rr.Code)
	}
}

func TestAPIStack(t *testing.T) {
	r := newRouter()
	MountAPIV1(r, APIStack(StackOptions{CORSOrigins: []string{"https://viz.example"}}), func(api Router) {
		Get(api, "/plays", func(*http.Request) (any, error) { return []int{}, nil })
		Get(api, "/boom", func(*http.Request) (any, error) { panic("boom") })
	})

	rr := get(r, "/api/v1/health")
	if rr.Code != http.StatusOK || rr.Body.String() != "." {
		t.Fatalf("health => %d %q", rr.Code, rr.Body.String())
	}

	rr = get(r, "/api/v1/plays/", "Origin", "https://viz.example")
	if rr.Code != http.StatusOK {
		t.Fatalf("trailing slash => %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "https://viz.example" {
		t.Fatalf("cors header = %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
	if rr.Header().Get("X-Request-Id") == "" || !strings.Contains(rr.Body.String(), `"request_id":"`) {
		t.Fatalf("request id missing: %v %q", rr.Header(), rr.Body.String())
	}
	if !strings.HasPrefix(rr.Header().Get("Cache-Control"), "no-cache") {
		t.Fatalf("Cache-Control = %q", rr.Header().Get("Cache-Control"))
	}

	rr = get(r, "/api/v1/boom")
	if rr.Code != http.StatusInternalServerError || !strings.Contains(rr.Body.String(), "internal error") {
		t.Fatalf("panic => %d %q", rr.Code, rr.Body.String())
	}
}
