// Package http provides http transport for plays
package http

import (
	stdhttp "net/http"

	"gridiron/internal/core/tracking"
	"gridiron/internal/modkit/httpkit"
	perr "gridiron/internal/platform/errors"
	"gridiron/internal/platform/net/http/bind"
	"gridiron/internal/services/api/plays/domain"
)

// Register mounts plays endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.GetQuery[domain.ListInput](r, "/plays", h.list)
	httpkit.Get(r, "/plays/{gameID}/{playID}", h.play)
	httpkit.GetQuery[domain.CollectionInput](r, "/collection", h.collection)
}

type handlers struct{ svc domain.ServicePort }

// @Summary List plays in key order
// @Tags Plays
// @Produce json
// @Param limit query int false "max plays (1..500)" default(10)
// @Success 200 {array} playbook.Summary "ok"
// @Router /plays [get]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// @Summary One play document
// @Tags Plays
// @Produce json
// @Param gameID path string true "game id"
// @Param playID path int true "play id"
// @Success 200 {object} playbook.Play "ok"
// @Failure 404 {object} ErrorResponse "no data for key"
// @Router /plays/{gameID}/{playID} [get]
func (h *handlers) play(r *stdhttp.Request) (any, error) {
	game, err := httpkit.PathParam(r, "gameID")
	if err != nil {
		return nil, err
	}
	if !bind.ValidGameID(game) {
		return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "gameID may only contain letters, digits, '-' and '_'"), "gameID")
	}
	play, err := httpkit.PathInt(r, "playID")
	if err != nil {
		return nil, err
	}
	return h.svc.Play(r.Context(), tracking.Key{GameID: game, PlayID: play})
}

// @Summary Collection over the first listed plays
// @Tags Plays
// @Produce json
// @Param size query int false "plays in the collection (1..100)" default(5)
// @Success 200 {object} playbook.Collection "ok"
// @Router /collection [get]
func (h *handlers) collection(r *stdhttp.Request, in domain.CollectionInput) (any, error) {
	return h.svc.Collection(r.Context(), in)
}
