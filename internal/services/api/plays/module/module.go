// Package module wires plays into the API using modkit
package module

import (
	"context"

	"gridiron/internal/adapters/ingest/bdb"
	modkit "gridiron/internal/modkit"
	"gridiron/internal/modkit/httpkit"
	"gridiron/internal/modkit/swaggerkit"
	str "gridiron/internal/platform/strings"
	"gridiron/internal/services/api/plays/domain"
	playshttp "gridiron/internal/services/api/plays/http"
	playssvc "gridiron/internal/services/api/plays/service"
)

// Ports carries the loaded tables in and the service out
type Ports struct {
	Tables  *domain.Tables
	Service domain.ServicePort
}

// Module implements the plays module
type Module struct {
	deps  modkit.Deps
	build modkit.Built
	ports Ports
}

// New constructs the plays module
// tables come in through modkit.WithPorts(Ports{Tables: ...}), without them every route answers 503
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("plays")}, opts...)...)

	var tables *domain.Tables
	if p, ok := b.Ports.(Ports); ok {
		tables = p.Tables
	}
	if b.SwaggerOn {
		swaggerkit.Register(playshttp.Docs)
	}
	return &Module{
		deps:  deps,
		build: b,
		ports: Ports{Tables: tables, Service: playssvc.New(tables)},
	}
}

// Load reads both tables named by opts from the local filesystem
func Load(ctx context.Context, opts Options) (*domain.Tables, error) {
	return playssvc.Load(ctx, bdb.NewLoader(nil), opts.Input, opts.Output, opts.Meta)
}

// MountRoutes mounts the module routes, at the root of r unless a prefix was set
func (m *Module) MountRoutes(r httpkit.Router) {
	m.build.Mount(r, func(rr httpkit.Router) { playshttp.Register(rr, m.ports.Service) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.build.Name, "module name") }

// Prefix returns the module route prefix, empty when mounted at the API root
func (m *Module) Prefix() string {
	if m.build.Prefix == "" {
		return ""
	}
	return str.MustPrefix(m.build.Prefix)
}

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []modkit.Middleware { return m.build.Mw }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
