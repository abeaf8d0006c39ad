// Command gridiron-api serves play documents over a read-only HTTP API
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridiron/internal/core/version"
	"gridiron/internal/platform/config"
	"gridiron/internal/platform/logger"
	phttp "gridiron/internal/platform/net/http"

	"gridiron/internal/services/api"
	playsmod "gridiron/internal/services/api/plays/module"
)

func main() {
	l := logger.Boot("gridiron-api", map[string]string{"version": version.Info().Version})
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// tables are loaded once and never written again
	tables, err := playsmod.Load(ctx, playsmod.FromConfig(root))
	if err != nil {
		stop()
		l.Fatal().Err(err).Msg("load tables failed")
	}

	// http server (reads CORE_API_PORT and timeouts)
	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.Options{
		Config:         apiCfg,
		Tables:         tables,
		CORSOrigins:    apiCfg.MayList("CORS_ORIGINS", []string{"*"}),
		Timeout:        apiCfg.MayDuration("HANDLER_TIMEOUT", 30*time.Second),
		SlowLog:        apiCfg.MayDuration("SLOW_LOG", 500*time.Millisecond),
		CacheMaxAge:    apiCfg.MayDuration("CACHE_MAX_AGE", 0),
		EnableSwagger:  apiCfg.MayBool("SWAGGER", false),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})

	l.Info().Str("addr", srv.Addr()).Int("plays", tables.In.Plays()).Msg("api listening")
	if err := srv.Run(ctx); err != nil {
		stop()
		l.Fatal().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("api stopped")
}
