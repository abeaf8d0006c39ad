// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "gridiron/internal/modkit"
	"gridiron/internal/modkit/httpkit"
	str "gridiron/internal/platform/strings"

	metahttp "gridiron/internal/services/api/meta/http"
)

// Ports are the optional inputs meta reports on
type Ports struct {
	// Plays returns the number of indexed plays
	Plays func() int
}

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	build     modkit.Built
	plays     func() int
	startedAt time.Time
}

// New constructs a meta module mounted under /meta
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{deps: deps, build: b, startedAt: time.Now()}
	if p, ok := b.Ports.(Ports); ok {
		m.plays = p.Plays
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.build.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: "gridiron-api",
			StartedAt:   m.startedAt,
			Plays:       m.plays,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.build.Name, "meta") }

// Prefix returns the mount prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.build.Prefix) }

// Ports implements the modkit.Module interface, meta exports nothing
func (m *Module) Ports() any { return nil }
