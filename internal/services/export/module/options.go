package module

import (
	"strconv"
	"strings"

	"gridiron/internal/core/tracking"
	"gridiron/internal/platform/config"
	perr "gridiron/internal/platform/errors"
	"gridiron/internal/platform/net/http/bind"
	"gridiron/internal/services/export/service"
)

// Options holds configuration options for the export service
type Options struct {
	Input  string `flag:"input" validate:"required"`
	Output string `flag:"output" validate:"required"`
	OutDir string `flag:"out-dir" validate:"required"`

	ListLimit      int `flag:"list-limit" validate:"min=1"`
	CollectionScan int `flag:"collection-scan" validate:"min=1"`
	CollectionSize int `flag:"collection-size" validate:"min=1"`

	Source string `flag:"source"`
	Week   string `flag:"week"`

	// Game and Play pick the single play, both or neither
	Game string `flag:"game" validate:"required_with=Play,omitempty,gameid"`
	Play string `flag:"play" validate:"required_with=Game,omitempty,numeric"`

	Archive bool `flag:"archive"`
}

// FromConfig reads the export options from config with CORE_EXPORT_ prefix
func FromConfig(cfg config.Conf) Options {
	ex := cfg.Prefix("CORE_EXPORT_")
	return Options{
		Input:          ex.MayString("INPUT", "data/input_2023_w02.csv"),
		Output:         ex.MayString("OUTPUT", "data/output_2023_w02.csv"),
		OutDir:         ex.MayString("OUT_DIR", "out"),
		ListLimit:      ex.MayInt("LIST_LIMIT", 5),
		CollectionScan: ex.MayInt("COLLECTION_SCAN", 10),
		CollectionSize: ex.MayInt("COLLECTION_SIZE", 5),
		Source:         ex.MayString("SOURCE", "NFL Big Data Bowl 2026"),
		Week:           ex.MayString("WEEK", "Week 2, 2023"),
		Game:           strings.TrimSpace(ex.MayString("GAME", "")),
		Play:           strings.TrimSpace(ex.MayString("PLAY", "")),
		Archive:        ex.MayBool("ARCHIVE", false),
	}
}

// Validate checks option ranges and the game/play pairing
func (o Options) Validate() error { return bind.Struct(o) }

// ServiceConfig converts validated options into the service config
func (o Options) ServiceConfig() (service.Config, error) {
	if err := o.Validate(); err != nil {
		return service.Config{}, err
	}
	cfg := service.Config{
		Input:          o.Input,
		Output:         o.Output,
		ListLimit:      o.ListLimit,
		CollectionScan: o.CollectionScan,
		CollectionSize: o.CollectionSize,
		Source:         o.Source,
		Week:           o.Week,
		Archive:        o.Archive,
	}
	if o.Game != "" {
		play, err := strconv.Atoi(o.Play)
		if err != nil {
			return service.Config{}, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "play must be an integer, got %q", o.Play), "play")
		}
		cfg.Target = &tracking.Key{GameID: o.Game, PlayID: play}
	}
	return cfg, nil
}
