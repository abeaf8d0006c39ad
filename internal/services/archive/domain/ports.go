package domain

import (
	"context"

	"gridiron/internal/core/playbook"
)

// ArchiverPort is the public port other modules call
type ArchiverPort interface {
	Archive(ctx context.Context, plays []playbook.Play) (Receipt, error)
}

// PlayRepo stores play documents in postgres
type PlayRepo interface {
	// EnsureSchema creates the plays table when missing
	EnsureSchema(ctx context.Context) error

	// UpsertPlays writes records keyed by (game_id, play_id), newest run wins
	UpsertPlays(ctx context.Context, recs []PlayRecord) (int, error)

	// CountPlays returns the number of archived plays
	CountPlays(ctx context.Context) (int, error)
}

// SampleRepo stores flattened trajectory samples in clickhouse
type SampleRepo interface {
	EnsureSchema(ctx context.Context) error
	InsertSamples(ctx context.Context, rows []SampleRow) error
}
