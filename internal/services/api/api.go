// Package api composes the read-only HTTP API
package api

import (
	"time"

	"gridiron/internal/platform/config"
	phttp "gridiron/internal/platform/net/http"

	"gridiron/internal/modkit"
	"gridiron/internal/modkit/httpkit"
	"gridiron/internal/modkit/module"
	"gridiron/internal/modkit/swaggerkit"

	metamod "gridiron/internal/services/api/meta/module"
	"gridiron/internal/services/api/plays/domain"
	playsmod "gridiron/internal/services/api/plays/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Tables         *domain.Tables
	CORSOrigins    []string
	Timeout        time.Duration
	SlowLog        time.Duration
	CacheMaxAge    time.Duration
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Cfg: opt.Config}

	plays := playsmod.New(deps,
		modkit.WithPorts(playsmod.Ports{Tables: opt.Tables}),
		modkit.WithSwagger(opt.EnableSwagger),
	)
	meta := metamod.New(deps, modkit.WithPorts(metamod.Ports{
		Plays: func() int {
			if !opt.Tables.Loaded() {
				return 0
			}
			return opt.Tables.In.Plays()
		},
	}))

	mods := []module.Module{meta, plays}

	swaggerkit.Mount(r, opt.EnableSwagger, "gridiron")
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	stack := httpkit.APIStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		Timeout:     opt.Timeout,
		SlowLog:     opt.SlowLog,
		CacheMaxAge: opt.CacheMaxAge,
	})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name for cross-module lookups
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
