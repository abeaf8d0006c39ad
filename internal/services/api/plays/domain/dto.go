// Package domain holds plays API inputs and ports
package domain

import (
	"gridiron/internal/core/playbook"
	"gridiron/internal/core/tracking"
)

// ListInput is the query for GET /plays
type ListInput struct {
	Limit int `query:"limit" default:"10" validate:"min=1,max=500"`
}

// CollectionInput is the query for GET /collection
type CollectionInput struct {
	Size int `query:"size" default:"5" validate:"min=1,max=100"`
}

// Tables are the indexed sources a server answers from
// they are built once at start and never written again
type Tables struct {
	In   *tracking.Index
	Out  *tracking.Index
	Meta playbook.Metadata
}

// Loaded reports whether both sides are present
func (t *Tables) Loaded() bool { return t != nil && t.In != nil && t.Out != nil }
