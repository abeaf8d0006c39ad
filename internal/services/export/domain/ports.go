// Package domain holds the export service contracts
package domain

import (
	"context"

	"gridiron/internal/core/tracking"
	archivedom "gridiron/internal/services/archive/domain"
)

// RunnerPort runs one export end to end
type RunnerPort interface {
	Run(ctx context.Context) (Result, error)
}

// TableLoader reads tracking tables, bdb.Loader satisfies it
type TableLoader interface {
	Stat(path string) error
	LoadTable(ctx context.Context, path string, kind tracking.Kind) (*tracking.Table, error)
}

// Sink persists JSON documents under flat names and returns where each landed
type Sink interface {
	WriteJSON(ctx context.Context, name string, v any) (string, error)
}

// ArchiverPort is the archive module port, optional for export
type ArchiverPort = archivedom.ArchiverPort
