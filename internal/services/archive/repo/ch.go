package repo

import (
	"context"

	perr "gridiron/internal/platform/errors"
	"gridiron/internal/platform/store"
	"gridiron/internal/services/archive/domain"
)

// SamplesTable is the clickhouse table trajectory samples land in
const SamplesTable = "trajectory_samples"

const createSamplesSQL = `
	CREATE TABLE IF NOT EXISTS trajectory_samples (
		run_id  UUID,
		game_id String,
		play_id Int32,
		nfl_id  String,
		frame   Int32,
		x       Float64,
		y       Float64,
		s       Float64,
		a       Float64,
		dir     Float64,
		o       Float64,
		source  LowCardinality(String)
	)
	ENGINE = MergeTree
	ORDER BY (game_id, play_id, nfl_id, source, frame)`

// CH writes samples through the store clickhouse seam
type CH struct {
	db    store.Clickhouse
	batch int
}

// NewCH builds a sample repo, batch caps rows per insert (<=0 means one batch)
func NewCH(db store.Clickhouse, batch int) *CH { return &CH{db: db, batch: batch} }

var _ domain.SampleRepo = (*CH)(nil)

// EnsureSchema creates the samples table (idempotent)
func (r *CH) EnsureSchema(ctx context.Context) error {
	if err := r.db.Exec(ctx, createSamplesSQL); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "archive: create trajectory_samples")
	}
	return nil
}

// InsertSamples appends rows in column order, chunked by batch size
func (r *CH) InsertSamples(ctx context.Context, rows []domain.SampleRow) error {
	size := r.batch
	if size <= 0 {
		size = len(rows)
	}
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		if err := r.db.Insert(ctx, SamplesTable, encode(rows[start:end])); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnavailable, "archive: insert samples [%d:%d]", start, end)
		}
	}
	return nil
}

func encode(rows []domain.SampleRow) [][]any {
	out := make([][]any, len(rows))
	for i, s := range rows {
		out[i] = []any{
			s.RunID, s.GameID, s.PlayID, s.NflID, s.Frame,
			s.X, s.Y, s.S, s.A, s.Dir, s.O,
			string(s.Source),
		}
	}
	return out
}
