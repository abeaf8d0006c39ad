package http_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"gridiron/internal/platform/config"
	phttp "gridiron/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestNewServer_ConfigAndOptions(t *testing.T) {
	t.Setenv("TESTSRV_PORT", ":12345")

	called := false
	srv := phttp.NewServer(config.New().Prefix("TESTSRV_"), func(*chi.Mux) { called = true })
	if !called {
		t.Fatal("option not invoked")
	}
	if srv.Addr() != ":12345" {
		t.Fatalf("Addr = %q", srv.Addr())
	}
	if def := phttp.NewServer(config.New().Prefix("TESTSRV_UNSET_")); def.Addr() != ":4000" {
		t.Fatalf("default Addr = %q", def.Addr())
	}
}

func TestServer_ServeUntilCancelled(t *testing.T) {
	srv := phttp.NewServer(config.New().Prefix("TESTSRV_UNSET_"))
	srv.Router().Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	res, err := http.Get("http://" + ln.Addr().String() + "/ping")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	_ = res.Body.Close()
	if string(b) != "pong" {
		t.Fatalf("body = %q", b)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServer_ShutdownReturnsNil(t *testing.T) {
	srv := phttp.NewServer(config.New().Prefix("TESTSRV_UNSET_"))
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	done := make(chan error, 1)
	go func() { done <- srv.Serve(context.Background(), ln) }()
	time.Sleep(20 * time.Millisecond)

	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}

func TestServer_RunListenError(t *testing.T) {
	held, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = held.Close() })

	t.Setenv("TESTSRV_BUSY_PORT", held.Addr().String())
	srv := phttp.NewServer(config.New().Prefix("TESTSRV_BUSY_"))
	if srv.Addr() != held.Addr().String() {
		t.Fatalf("addr = %q, want %q", srv.Addr(), held.Addr())
	}

	// a successful bind would serve until the deadline and return nil
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected address in use error")
	}
}

func TestMountSwagger(t *testing.T) {
	srv := phttp.NewServer(config.New().Prefix("TESTSRV_UNSET_"))
	phttp.MountSwagger(srv.Router(), false, "")
	rec := httptestGet(srv, "/docs/index.html")
	if rec != http.StatusNotFound {
		t.Fatalf("disabled swagger => %d", rec)
	}

	on := phttp.NewServer(config.New().Prefix("TESTSRV_UNSET_"))
	phttp.MountSwagger(on.Router(), true, "/docs/doc.json")
	if code := httptestGet(on, "/docs/index.html"); code != http.StatusOK {
		t.Fatalf("enabled swagger => %d", code)
	}
}
