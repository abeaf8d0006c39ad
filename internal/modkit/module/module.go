// Package module holds the module contract and cross module port lookup
package module

import (
	phttp "gridiron/internal/platform/net/http"
)

// Module is the minimal surface main composes
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
