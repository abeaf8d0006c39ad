// Package repo provides postgres and clickhouse storage for archived plays
package repo

import (
	"context"

	"gridiron/internal/modkit/repokit"
	perr "gridiron/internal/platform/errors"
	"gridiron/internal/platform/store"
	"gridiron/internal/services/archive/domain"
)

const createPlaysSQL = `
	CREATE TABLE IF NOT EXISTS plays (
		game_id      text        NOT NULL,
		play_id      integer     NOT NULL,
		run_id       uuid        NOT NULL,
		document     jsonb       NOT NULL,
		players      integer     NOT NULL,
		total_frames integer     NOT NULL,
		archived_at  timestamptz NOT NULL DEFAULT now(),
		PRIMARY KEY (game_id, play_id)
	)`

const upsertPlaySQL = `
	INSERT INTO plays (game_id, play_id, run_id, document, players, total_frames, archived_at)
	VALUES ($1, $2, $3::uuid, $4::jsonb, $5, $6, $7)
	ON CONFLICT (game_id, play_id) DO UPDATE SET
		run_id       = EXCLUDED.run_id,
		document     = EXCLUDED.document,
		players      = EXCLUDED.players,
		total_frames = EXCLUDED.total_frames,
		archived_at  = EXCLUDED.archived_at`

type (
	// PG is a Postgres binder for domain.PlayRepo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a Postgres binder for domain.PlayRepo
func NewPG() repokit.Binder[domain.PlayRepo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.PlayRepo { return &queries{q: q} }

// EnsureSchema creates the plays table (idempotent)
func (r *queries) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, createPlaysSQL); err != nil {
		return perr.FromPostgres(err, "archive: create plays table")
	}
	return nil
}

// UpsertPlays writes every record, the caller owns the transaction
func (r *queries) UpsertPlays(ctx context.Context, recs []domain.PlayRecord) (int, error) {
	n := 0
	for _, rec := range recs {
		err := store.ExecOne(ctx, r.q, upsertPlaySQL,
			rec.GameID, rec.PlayID, rec.RunID.String(), rec.Document,
			rec.Players, rec.TotalFrames, rec.ArchivedAt.UTC(),
		)
		if err != nil {
			return n, perr.FromPostgresf(err, "archive: upsert play %s/%d", rec.GameID, rec.PlayID)
		}
		n++
	}
	return n, nil
}

// CountPlays returns the number of archived plays
func (r *queries) CountPlays(ctx context.Context) (int, error) {
	n, err := store.Scalar[int](ctx, r.q, `SELECT count(*)::int FROM plays`)
	if err != nil {
		return 0, perr.FromPostgres(err, "archive: count plays")
	}
	return n, nil
}
