// Package module provides the archive module implementation
package module

import (
	"gridiron/internal/modkit"
	"gridiron/internal/modkit/repokit"
	phttp "gridiron/internal/platform/net/http"
	"gridiron/internal/services/archive/domain"
	"gridiron/internal/services/archive/repo"
	"gridiron/internal/services/archive/service"
)

// Ports defines the archive module ports
type Ports struct {
	Archiver domain.ArchiverPort
}

// Module implements the archive module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New wires the archive service over whichever stores deps carries
// a nil deps.PG or deps.CH disables that backend
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	var (
		tx      repokit.TxRunner
		samples domain.SampleRepo
	)
	if deps.PG != nil {
		tx = repokit.WithBeginHooks(deps.PG, repokit.StatementTimeout(opts.StatementTimeout))
	}
	if deps.CH != nil {
		samples = repo.NewCH(deps.CH, opts.SampleBatch)
	}

	svc := service.New(tx, repo.NewPG(), samples, service.Config{EnsureSchema: opts.EnsureSchema, TxAttempts: opts.TxAttempts})

	m := &Module{deps: deps}
	m.ports = Ports{Archiver: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "archive" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Prefix returns the module prefix (none)
func (m *Module) Prefix() string { return "" }

// MountRoutes is a no-op as archive has no routes
func (m *Module) MountRoutes(_ phttp.Router) {}
