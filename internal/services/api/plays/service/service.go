// Package service answers plays queries from indexed tables
package service

import (
	"context"
	"time"

	"gridiron/internal/core/playbook"
	"gridiron/internal/core/tracking"
	perr "gridiron/internal/platform/errors"
	"gridiron/internal/platform/logger"
	"gridiron/internal/services/api/plays/domain"
)

// Service implements domain.ServicePort
type Service struct {
	tables *domain.Tables
}

var _ domain.ServicePort = (*Service)(nil)

// New builds a service over tables, nil or partial tables answer Unavailable
func New(t *domain.Tables) *Service { return &Service{tables: t} }

// Load reads and indexes both tables
func Load(ctx context.Context, l domain.TableLoader, input, output string, meta playbook.Metadata) (*domain.Tables, error) {
	start := time.Now()
	it, err := l.LoadTable(ctx, input, tracking.KindInput)
	if err != nil {
		return nil, err
	}
	ot, err := l.LoadTable(ctx, output, tracking.KindOutput)
	if err != nil {
		return nil, err
	}
	t := &domain.Tables{In: tracking.NewIndex(it), Out: tracking.NewIndex(ot), Meta: meta}
	logger.Named("plays").Info().
		Int("input_rows", it.Len()).
		Int("output_rows", ot.Len()).
		Int("plays", t.In.Plays()).
		Dur("took", time.Since(start)).
		Msg("tables loaded")
	return t, nil
}

func (s *Service) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "request cancelled")
	}
	if !s.tables.Loaded() {
		return perr.Unavailablef("plays: tables not loaded")
	}
	return nil
}

// List returns up to in.Limit plays in key order
func (s *Service) List(ctx context.Context, in domain.ListInput) ([]playbook.Summary, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	return playbook.List(s.tables.In, in.Limit), nil
}

// Play extracts one play document
func (s *Service) Play(ctx context.Context, key tracking.Key) (playbook.Play, error) {
	if err := s.ready(ctx); err != nil {
		return playbook.Play{}, err
	}
	return playbook.Extract(s.tables.In, s.tables.Out, key)
}

// Collection extracts the first in.Size listed plays
func (s *Service) Collection(ctx context.Context, in domain.CollectionInput) (playbook.Collection, error) {
	if err := s.ready(ctx); err != nil {
		return playbook.Collection{}, err
	}
	keys := playbook.Keys(playbook.List(s.tables.In, in.Size))
	log := logger.C(ctx)
	return playbook.Collect(s.tables.In, s.tables.Out, keys, s.tables.Meta, func(k tracking.Key, err error) {
		log.Warn().Err(err).Str("play", k.String()).Msg("collection skipped play")
	}), nil
}
