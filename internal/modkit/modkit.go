// Package modkit wires gridiron modules: shared deps, build options and route mounting
package modkit

import "gridiron/internal/modkit/module"

// Module is implemented by every module, batch jobs mount no routes
type Module = module.Module
