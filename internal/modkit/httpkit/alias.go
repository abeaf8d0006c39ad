// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"
	"strconv"
	"strings"

	perr "gridiron/internal/platform/errors"
	phttp "gridiron/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// PathParam returns the trimmed route parameter name, missing is a validation error
func PathParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(chi.URLParam(r, name))
	if v == "" {
		return "", perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s is required", name), name)
	}
	return v, nil
}

// PathInt parses the route parameter name as an int
func PathInt(r *http.Request, name string) (int, error) {
	v, err := PathParam(r, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s must be an integer, got %q", name, v), name)
	}
	return n, nil
}
