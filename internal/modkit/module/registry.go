package module

import "sync"

// port sets by module name, filled while main composes the process
var registry sync.Map

// Register records the port set of module name, replacing any earlier one
func Register(name string, ports any) { registry.Store(name, ports) }

// PortsAs returns the port set registered under name when it is a T
func PortsAs[T any](name string) (T, bool) {
	v, ok := registry.Load(name)
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset forgets every registration
func Reset() { registry.Clear() }
