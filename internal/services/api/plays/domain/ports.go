package domain

import (
	"context"

	"gridiron/internal/core/playbook"
	"gridiron/internal/core/tracking"
)

// ServicePort is consumed by handlers
type ServicePort interface {
	List(ctx context.Context, in ListInput) ([]playbook.Summary, error)
	Play(ctx context.Context, key tracking.Key) (playbook.Play, error)
	Collection(ctx context.Context, in CollectionInput) (playbook.Collection, error)
}

// TableLoader decodes a tracking table from a path
type TableLoader interface {
	LoadTable(ctx context.Context, path string, kind tracking.Kind) (*tracking.Table, error)
}
