package module

import (
	"fmt"
	"reflect"
)

// PortsOf finds a T in m.Ports(): the bundle itself, or the first exported field
// of a struct (or pointer to struct) bundle that holds one
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	p := m.Ports()
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}

	rv := reflect.Indirect(reflect.ValueOf(p))
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for _, f := range reflect.VisibleFields(rv.Type()) {
		if !f.IsExported() || len(f.Index) != 1 {
			continue
		}
		if v, ok := rv.Field(f.Index[0]).Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for wiring code in main, a missing port panics
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("module %s: no %T port", m.Name(), (*T)(nil)))
	}
	return v
}
