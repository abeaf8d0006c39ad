// Package http serves build and process info under /meta
package http

import (
	"net/http"
	"time"

	"gridiron/internal/core/version"
	"gridiron/internal/modkit/httpkit"
)

// Deps is what the meta routes report on
// Plays may be nil when no tables are loaded
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Plays       func() int
}

// ServiceResponse is the /meta/service body
type ServiceResponse struct {
	Name    string `json:"name"    example:"gridiron-api"`
	Started string `json:"started" example:"2026-10-14T09:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
	Plays   int    `json:"plays"   example:"812"`
}

// Register mounts /version and /service
func Register(r httpkit.Router, d Deps) {
	// @Summary Build and version info
	// @Tags Meta
	// @Success 200 {object} version.BuildInfo ok
	// @Router /meta/version [get]
	httpkit.Get(r, "/version", func(*http.Request) (any, error) { return version.Info(), nil })

	// @Summary Service info and uptime
	// @Tags Meta
	// @Success 200 {object} ServiceResponse ok
	// @Router /meta/service [get]
	httpkit.Get(r, "/service", func(*http.Request) (any, error) { return d.describe(time.Now()), nil })
}

func (d Deps) describe(now time.Time) ServiceResponse {
	out := ServiceResponse{
		Name:    d.ServiceName,
		Started: d.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(now.Sub(d.StartedAt).Seconds()),
	}
	if d.Plays != nil {
		out.Plays = d.Plays()
	}
	return out
}
