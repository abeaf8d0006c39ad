package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "gridiron/internal/platform/errors"
	"gridiron/internal/platform/logger"
	pnet "gridiron/internal/platform/net"
	phttp "gridiron/internal/platform/net/http"
)

// RecoverJSON converts panics into a 500 envelope and logs the stack
// http.ErrAbortHandler is re-panicked so the server can drop the connection
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			status, body := pnet.Error(perr.PanicErrf("internal error"), pnet.RequestID(r.Context()))
			phttp.JSON(w, status, body)
		}()
		next.ServeHTTP(w, r)
	})
}
