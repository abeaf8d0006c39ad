// Package module wires the export service
package module

import (
	"context"

	"gridiron/internal/adapters/ingest/bdb"
	"gridiron/internal/modkit"
	phttp "gridiron/internal/platform/net/http"
	"gridiron/internal/services/export/domain"
	"gridiron/internal/services/export/repo"
	"gridiron/internal/services/export/service"
)

// Ports is both what the module exports and what callers may inject
// an injected Archiver enables -archive runs
type Ports struct {
	Runner   domain.RunnerPort
	Archiver domain.ArchiverPort
}

// Module implements the export module
type Module struct {
	deps  modkit.Deps
	name  string
	ports Ports
}

// New builds the export module from validated options
// modkit.WithPorts(Ports{Archiver: ...}) supplies the archive port
func New(deps modkit.Deps, opts Options, mopts ...modkit.Option) (*Module, error) {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("export")}, mopts...)...)

	cfg, err := opts.ServiceConfig()
	if err != nil {
		return nil, err
	}

	var archiver domain.ArchiverPort
	if p, ok := b.Ports.(Ports); ok {
		archiver = p.Archiver
	}

	svc := service.New(cfg, bdb.NewLoader(nil), repo.NewFS(opts.OutDir), archiver)
	return &Module{
		deps:  deps,
		name:  b.Name,
		ports: Ports{Runner: svc, Archiver: archiver},
	}, nil
}

// Run is shorthand for Ports().Runner.Run
func (m *Module) Run(ctx context.Context) (domain.Result, error) { return m.ports.Runner.Run(ctx) }

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Prefix returns the module prefix (none)
func (m *Module) Prefix() string { return "" }

// MountRoutes is a no-op, export is a batch job
func (m *Module) MountRoutes(_ phttp.Router) {}
