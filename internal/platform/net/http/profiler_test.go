package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gridiron/internal/platform/config"
	phttp "gridiron/internal/platform/net/http"
)

func httptestGet(srv *phttp.Server, path string) int {
	rec := httptest.NewRecorder()
	srv.Router().Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec.Code
}

func TestMountProfiler(t *testing.T) {
	cases := []struct {
		on   bool
		path string
		want int
	}{
		{true, "/debug/pprof/", http.StatusOK},
		{true, "/debug/pprof/cmdline", http.StatusOK},
		{true, "/debug/vars", http.StatusOK},
		{false, "/debug/pprof/", http.StatusNotFound},
		{false, "/debug/pprof/cmdline", http.StatusNotFound},
	}
	for _, tc := range cases {
		srv := phttp.NewServer(config.New().Prefix("TESTSRV_UNSET_"))
		phttp.MountProfiler(srv.Router(), "/debug", tc.on)
		if got := httptestGet(srv, tc.path); got != tc.want {
			t.Fatalf("on=%v GET %s = %d, want %d", tc.on, tc.path, got, tc.want)
		}
	}
}
