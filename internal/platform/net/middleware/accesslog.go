package middleware

import (
	"net/http"
	"time"

	"gridiron/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow is the warn threshold, 0 turns it off
	Slow time.Duration
}

// AccessLogZerolog writes one "request done" line per request with the request scoped logger
// 5xx is error, at or over Slow is warn, the rest info
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			took := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			l := logger.C(r.Context())
			evt := l.Info()
			if status >= http.StatusInternalServerError {
				evt = l.Error()
			} else if opt.Slow > 0 && took >= opt.Slow {
				evt = l.Warn()
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("query", r.URL.RawQuery).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", took).
				Msg("request done")
		})
	}
}
