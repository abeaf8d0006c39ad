// Package service runs the export pipeline: list, extract, collect, write, archive
package service

import (
	"context"
	"time"

	"gridiron/internal/core/playbook"
	"gridiron/internal/core/tracking"
	perr "gridiron/internal/platform/errors"
	"gridiron/internal/platform/logger"
	"gridiron/internal/services/export/domain"
)

// Config is one run's inputs
type Config struct {
	Input  string
	Output string

	ListLimit      int
	CollectionScan int
	CollectionSize int

	Source string
	Week   string

	// Target overrides the first listed play when set
	Target *tracking.Key

	Archive bool
}

// Service implements domain.RunnerPort
type Service struct {
	Cfg      Config
	Tables   domain.TableLoader
	Sink     domain.Sink
	Archiver domain.ArchiverPort
}

var _ domain.RunnerPort = (*Service)(nil)

// New builds an export service, archiver may be nil when Cfg.Archive is false
func New(cfg Config, tables domain.TableLoader, sink domain.Sink, archiver domain.ArchiverPort) *Service {
	return &Service{Cfg: cfg, Tables: tables, Sink: sink, Archiver: archiver}
}

// Run executes one export
// both JSON documents are on disk before archiving starts, an archive failure keeps them
func (s *Service) Run(ctx context.Context) (domain.Result, error) {
	var res domain.Result
	log := logger.Named("export")

	for _, p := range []string{s.Cfg.Input, s.Cfg.Output} {
		if err := s.Tables.Stat(p); err != nil {
			return res, perr.WithOp(err, "export.stat")
		}
	}

	in, out, err := s.load(ctx)
	if err != nil {
		return res, err
	}

	res.Candidates = playbook.List(in, s.Cfg.ListLimit)
	log.Info().Int("count", len(res.Candidates)).Msg("available plays")
	for i, c := range res.Candidates {
		log.Info().
			Int("rank", i+1).
			Str("game_id", c.GameID).
			Int("play_id", c.PlayID).
			Int("frames", c.Frames).
			Msg("candidate")
	}

	target, err := s.target(res.Candidates)
	if err != nil {
		return res, err
	}
	res.Target = target

	play, err := playbook.Extract(in, out, target)
	if err != nil {
		return res, perr.WithOp(err, "export.extract")
	}
	if res.PlayPath, err = s.Sink.WriteJSON(ctx, domain.PlayFile(target), play); err != nil {
		return res, err
	}
	log.Info().
		Str("path", res.PlayPath).
		Str("play", target.String()).
		Int("players", len(play.Players)).
		Int("total_frames", play.TotalFrames).
		Float64("ball_land_x", play.BallLandX).
		Float64("ball_land_y", play.BallLandY).
		Msg("play written")

	coll := s.collect(in, out, &res)
	if res.CollectionPath, err = s.Sink.WriteJSON(ctx, domain.CollectionFile, coll); err != nil {
		return res, err
	}
	log.Info().
		Str("path", res.CollectionPath).
		Int("plays", coll.Metadata.NumPlays).
		Int("skipped", len(res.Skipped)).
		Msg("collection written")

	if !s.Cfg.Archive {
		return res, nil
	}
	if s.Archiver == nil {
		return res, perr.Unavailablef("export: archive requested but no archiver is wired")
	}
	plays := append([]playbook.Play{play}, coll.Plays...)
	rc, err := s.Archiver.Archive(ctx, plays)
	if err != nil {
		log.Error().Err(err).Msg("archive failed, json outputs kept")
		return res, perr.WithOp(err, "export.archive")
	}
	res.Archive = &rc
	return res, nil
}

func (s *Service) load(ctx context.Context) (in, out *tracking.Index, err error) {
	start := time.Now()
	it, err := s.Tables.LoadTable(ctx, s.Cfg.Input, tracking.KindInput)
	if err != nil {
		return nil, nil, err
	}
	ot, err := s.Tables.LoadTable(ctx, s.Cfg.Output, tracking.KindOutput)
	if err != nil {
		return nil, nil, err
	}
	in, out = tracking.NewIndex(it), tracking.NewIndex(ot)
	logger.Named("export").Info().
		Int("input_rows", it.Len()).
		Int("output_rows", ot.Len()).
		Int("input_plays", in.Plays()).
		Dur("took", time.Since(start)).
		Msg("tables indexed")
	return in, out, nil
}

func (s *Service) target(cands []playbook.Summary) (tracking.Key, error) {
	if s.Cfg.Target != nil {
		return *s.Cfg.Target, nil
	}
	if len(cands) == 0 {
		return tracking.Key{}, perr.NotFoundf("no plays found in %s", s.Cfg.Input)
	}
	return tracking.Key{GameID: cands[0].GameID, PlayID: cands[0].PlayID}, nil
}

func (s *Service) collect(in, out *tracking.Index, res *domain.Result) playbook.Collection {
	scanned := playbook.List(in, s.Cfg.CollectionScan)
	if len(scanned) > s.Cfg.CollectionSize {
		scanned = scanned[:max(s.Cfg.CollectionSize, 0)]
	}
	meta := playbook.Metadata{Source: s.Cfg.Source, Week: s.Cfg.Week}
	coll := playbook.Collect(in, out, playbook.Keys(scanned), meta, func(k tracking.Key, err error) {
		logger.Named("export").Warn().Err(err).Str("play", k.String()).Msg("skipping play")
		res.Skipped = append(res.Skipped, k)
	})
	res.Collected = coll.Metadata.NumPlays
	return coll
}
