// Package service provides the archive service implementation
package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"gridiron/internal/core/playbook"
	"gridiron/internal/core/tracking"
	"gridiron/internal/modkit/repokit"
	perr "gridiron/internal/platform/errors"
	"gridiron/internal/platform/logger"
	"gridiron/internal/services/archive/domain"

	"github.com/google/uuid"
)

// Config holds archive tuning
type Config struct {
	EnsureSchema bool

	// TxAttempts bounds retries of the postgres run on deadlock or serialization failure
	TxAttempts int
	TxBackoff  time.Duration
}

// Service writes play documents to postgres and samples to clickhouse
// either backend may be nil and is then skipped
type Service struct {
	DB      repokit.TxRunner
	Plays   repokit.Binder[domain.PlayRepo]
	Samples domain.SampleRepo
	Cfg     Config

	Now   func() time.Time
	NewID func() uuid.UUID

	schemaMu sync.Mutex
	schemaOK bool
}

var _ domain.ArchiverPort = (*Service)(nil)

// New builds the service, db and samples may be nil
func New(db repokit.TxRunner, plays repokit.Binder[domain.PlayRepo], samples domain.SampleRepo, cfg Config) *Service {
	return &Service{
		DB:      db,
		Plays:   plays,
		Samples: samples,
		Cfg:     cfg,
		Now:     time.Now,
		NewID:   uuid.New,
	}
}

// Archive stores one run, duplicate play keys keep their first occurrence
// postgres rows are written in a single transaction, clickhouse after it commits
func (s *Service) Archive(ctx context.Context, plays []playbook.Play) (domain.Receipt, error) {
	pgOn := s.DB != nil && s.Plays != nil
	chOn := s.Samples != nil
	if !pgOn && !chOn {
		return domain.Receipt{}, perr.Newf(perr.ErrorCodeUnavailable, "archive: no backend configured")
	}

	plays = dedupe(plays)
	rc := domain.Receipt{RunID: s.NewID(), Postgres: pgOn, ClickHouse: chOn}
	log := logger.Named("archive").With().Str("run_id", rc.RunID.String()).Logger()

	if err := s.ensureSchema(ctx, pgOn, chOn); err != nil {
		return rc, err
	}

	if pgOn {
		recs, err := records(rc.RunID, s.Now(), plays)
		if err != nil {
			return rc, err
		}
		var n, total int
		err = s.retryTx(ctx, func(q repokit.Queryer) error {
			repo := repokit.MustBind(s.Plays, q)
			var err error
			if n, err = repo.UpsertPlays(ctx, recs); err != nil {
				return err
			}
			total, err = repo.CountPlays(ctx)
			return err
		})
		if err != nil {
			return rc, err
		}
		rc.Plays = n
		log.Info().Int("plays", rc.Plays).Int("archived_total", total).Msg("archive: postgres upsert done")
	}

	if chOn {
		rows := Flatten(rc.RunID, plays)
		if err := s.Samples.InsertSamples(ctx, rows); err != nil {
			return rc, err
		}
		rc.Samples = len(rows)
		log.Info().Int("samples", rc.Samples).Msg("archive: clickhouse insert done")
	}
	return rc, nil
}

// retryTx reruns fn in a fresh transaction while postgres reports a transient conflict
func (s *Service) retryTx(ctx context.Context, fn func(q repokit.Queryer) error) error {
	attempts := max(s.Cfg.TxAttempts, 1)
	backoff := s.Cfg.TxBackoff
	if backoff <= 0 {
		backoff = 50 * time.Millisecond
	}
	var err error
	for i := 1; ; i++ {
		if err = s.DB.Tx(ctx, fn); err == nil || !perr.IsRetryable(err) || i == attempts {
			return err
		}
		logger.C(ctx).Warn().Err(err).Int("attempt", i).Msg("archive: retrying transaction")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff * time.Duration(i)):
		}
	}
}

// ensureSchema runs table creation until it succeeds once
func (s *Service) ensureSchema(ctx context.Context, pgOn, chOn bool) error {
	if !s.Cfg.EnsureSchema {
		return nil
	}
	s.schemaMu.Lock()
	defer s.schemaMu.Unlock()
	if s.schemaOK {
		return nil
	}
	if pgOn {
		err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
			return repokit.MustBind(s.Plays, q).EnsureSchema(ctx)
		})
		if err != nil {
			return err
		}
	}
	if chOn {
		if err := s.Samples.EnsureSchema(ctx); err != nil {
			return err
		}
	}
	s.schemaOK = true
	return nil
}

func dedupe(plays []playbook.Play) []playbook.Play {
	seen := make(map[tracking.Key]struct{}, len(plays))
	out := make([]playbook.Play, 0, len(plays))
	for _, p := range plays {
		k := tracking.Key{GameID: p.GameID, PlayID: p.PlayID}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}

func records(run uuid.UUID, at time.Time, plays []playbook.Play) ([]domain.PlayRecord, error) {
	out := make([]domain.PlayRecord, 0, len(plays))
	for _, p := range plays {
		doc, err := json.Marshal(p)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "archive: encode play %s/%d", p.GameID, p.PlayID)
		}
		out = append(out, domain.PlayRecord{
			GameID:      p.GameID,
			PlayID:      p.PlayID,
			RunID:       run,
			Document:    doc,
			Players:     len(p.Players),
			TotalFrames: p.TotalFrames,
			ArchivedAt:  at,
		})
	}
	return out, nil
}

// Flatten turns play trajectories into one sample row per frame per player
func Flatten(run uuid.UUID, plays []playbook.Play) []domain.SampleRow {
	n := 0
	for _, p := range plays {
		for _, pl := range p.Players {
			n += len(pl.Trajectory)
		}
	}
	out := make([]domain.SampleRow, 0, n)
	for _, p := range plays {
		for _, pl := range p.Players {
			for i, smp := range pl.Trajectory {
				src := domain.SourceInput
				if i >= pl.InputSamples {
					src = domain.SourceOutput
				}
				out = append(out, domain.SampleRow{
					RunID:  run,
					GameID: p.GameID,
					PlayID: int32(p.PlayID),
					NflID:  pl.NflID,
					Frame:  int32(smp.Frame),
					X:      smp.X,
					Y:      smp.Y,
					S:      smp.S,
					A:      smp.A,
					Dir:    smp.Dir,
					O:      smp.O,
					Source: src,
				})
			}
		}
	}
	return out
}
