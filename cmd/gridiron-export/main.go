// Command gridiron-export turns tracking CSVs into play JSON documents
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gridiron/internal/core/version"
	"gridiron/internal/modkit"
	"gridiron/internal/modkit/module"
	"gridiron/internal/platform/config"
	"gridiron/internal/platform/logger"
	"gridiron/internal/platform/store"

	archivemod "gridiron/internal/services/archive/module"
	exportmod "gridiron/internal/services/export/module"
)

// flagsToEnv copies every flag set on the command line into prefix+NAME so config reads see it
// "out-dir" becomes OUT_DIR, flags left at their default are not touched
func flagsToEnv(fs *flag.FlagSet, prefix string) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		key := prefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if serr := os.Setenv(key, f.Value.String()); serr != nil && err == nil {
			err = fmt.Errorf("flag -%s: %w", f.Name, serr)
		}
	})
	return err
}

func main() {
	l := logger.Boot("gridiron-export", map[string]string{"version": version.Info().Version})
	root := config.New()

	// defaults shown in -help are whatever env resolves to
	def := exportmod.FromConfig(root)
	flag.String("input", def.Input, "input tracking CSV (.csv or .csv.gz)")
	flag.String("output", def.Output, "output tracking CSV (.csv or .csv.gz)")
	flag.String("out-dir", def.OutDir, "directory for the JSON documents")
	flag.Int("list-limit", def.ListLimit, "plays to list before picking the single play")
	flag.Int("collection-scan", def.CollectionScan, "plays to list when building the collection")
	flag.Int("collection-size", def.CollectionSize, "plays to keep in the collection")
	flag.String("source", def.Source, "collection metadata source label")
	flag.String("week", def.Week, "collection metadata week label")
	flag.String("game", def.Game, "game id of the single play (with -play)")
	flag.String("play", def.Play, "play id of the single play (with -game)")
	flag.Bool("archive", def.Archive, "archive the run to postgres and clickhouse")
	flag.Parse()

	// flags win over env
	if err := flagsToEnv(flag.CommandLine, "CORE_EXPORT_"); err != nil {
		l.Fatal().Err(err).Msg("invalid flags")
	}

	opts := exportmod.FromConfig(root)
	if err := opts.Validate(); err != nil {
		l.Fatal().Err(err).Msg("invalid options")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, root, opts); err != nil {
		stop()
		l.Fatal().Err(err).Msg("export failed")
	}
}

func run(ctx context.Context, root config.Conf, opts exportmod.Options) error {
	l := logger.Named("export")
	deps := modkit.Deps{Cfg: root, Log: *logger.Get()}

	var mopts []modkit.Option
	if opts.Archive {
		st, err := store.Open(ctx, store.FromConfig(root, "gridiron", "export"), store.WithLogger(*logger.Get()))
		if err != nil {
			return err
		}
		defer func() {
			if err := st.Close(context.Background()); err != nil {
				l.Error().Err(err).Msg("failed to close store")
			}
		}()
		pg, ch := st.Enabled()
		l.Info().Bool("postgres", pg).Bool("clickhouse", ch).Msg("archive backends")

		deps.PG, deps.CH = st.PG, st.CH
		am := archivemod.New(deps)
		module.Register(am.Name(), am.Ports())
		mopts = append(mopts, modkit.WithPorts(exportmod.Ports{
			Archiver: module.MustPortsOf[archivemod.Ports](am).Archiver,
		}))
	}

	em, err := exportmod.New(deps, opts, mopts...)
	if err != nil {
		return err
	}
	module.Register(em.Name(), em.Ports())

	res, err := em.Run(ctx)
	if err != nil {
		return err
	}

	ev := l.Info().
		Str("play", res.PlayPath).
		Str("collection", res.CollectionPath).
		Int("collected", res.Collected).
		Int("skipped", len(res.Skipped))
	if res.Archive != nil {
		ev = ev.Str("run_id", res.Archive.RunID.String()).
			Int("archived_plays", res.Archive.Plays).
			Int("archived_samples", res.Archive.Samples)
	}
	ev.Msg("export complete")
	return nil
}
