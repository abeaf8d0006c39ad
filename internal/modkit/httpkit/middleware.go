package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"gridiron/internal/platform/net/middleware"
)

// StackOptions tunes APIStack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	SlowLog     time.Duration
	CacheMaxAge time.Duration
}

// APIStack returns the middleware every versioned API route shares
// order: correlation, safety, cors, observability, transport
func APIStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins, MaxAge: 300}),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowLog}),
		middleware.Heartbeat("/api/v1/health"),
		middleware.StripSlashes(),
		middleware.CacheControl(o.CacheMaxAge),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(o.Timeout),
	}
}
