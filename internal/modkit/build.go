package modkit

import (
	"net/http"
	"slices"

	"gridiron/internal/modkit/httpkit"
	str "gridiron/internal/platform/strings"
)

// Middleware is a plain net/http middleware
type Middleware = func(http.Handler) http.Handler

// Option adjusts a module build
type Option func(*Built)

// Built is the resolved build of a module
type Built struct {
	Name      string
	Prefix    string
	Mw        []Middleware
	Ports     any
	SwaggerOn bool
}

// Build applies opts in order, later options win
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		if o != nil {
			o(&b)
		}
	}
	b.Mw = slices.Clone(b.Mw)
	return b
}

// WithName names the module for logs and the port registry
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix mounts the module routes under prefix
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends module scoped middleware
func WithMiddlewares(mw ...Middleware) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module the port set it consumes, the type is owned by that module
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// WithSwagger makes the module contribute its paths to the API document
func WithSwagger(on bool) Option { return func(b *Built) { b.SwaggerOn = on } }

// Mount scopes r to the module prefix and middleware, then calls register on it
// an empty prefix mounts in a group at the root of r
func (b Built) Mount(r httpkit.Router, register func(httpkit.Router)) {
	scoped := func(sr httpkit.Router) {
		if len(b.Mw) > 0 {
			sr.Use(b.Mw...)
		}
		register(sr)
	}
	if b.Prefix == "" {
		r.Group(scoped)
		return
	}
	r.Route(str.MustPrefix(b.Prefix), scoped)
}
