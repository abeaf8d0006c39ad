// Package swaggerkit serves an OpenAPI document assembled from module contributions
package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"gridiron/internal/core/version"
	perr "gridiron/internal/platform/errors"
)

// SpecMutator lets modules add paths or schemas before the document is served
type SpecMutator func(map[string]any)

var (
	mu       sync.Mutex
	mutators []SpecMutator
)

// Register adds a mutator, modules call this while mounting
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Reset drops every registered mutator
func Reset() {
	mu.Lock()
	mutators = nil
	mu.Unlock()
}

// Document builds the OpenAPI document served at doc.json
func Document(title, serverURL string) map[string]any {
	spec := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   title,
			"version": version.Info().Version,
		},
		"servers": []any{map[string]any{"url": serverURL}},
		"paths":   map[string]any{},
	}

	mu.Lock()
	ms := append([]SpecMutator(nil), mutators...)
	mu.Unlock()
	for _, m := range ms {
		m(spec)
	}

	ensureErrorResponseDefinition(spec)
	addDefaultResponse(spec, http.StatusBadRequest, perr.ErrorCodeValidation, "limit must be at least 1")
	addDefaultResponse(spec, http.StatusInternalServerError, perr.ErrorCodePanic, "internal error")
	return spec
}

// AddPath registers op under method for path, creating the path node when missing
func AddPath(spec map[string]any, path, method string, op map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		paths = map[string]any{}
		spec["paths"] = paths
	}
	node, ok := paths[path].(map[string]any)
	if !ok {
		node = map[string]any{}
		paths[path] = node
	}
	node[method] = op
}

// Schemas returns the components.schemas map, creating it when missing
func Schemas(spec map[string]any) map[string]any {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	return schemas
}

func serveDocJSON(title, serverURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(Document(title, serverURL))
	}
}

// kept minimal so it does not drift from the runtime wire
func ensureErrorResponseDefinition(spec map[string]any) {
	schemas := Schemas(spec)
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultResponse injects an error response into every operation that lacks one
func addDefaultResponse(spec map[string]any, status int, code perr.ErrorCode, msg string) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	key, desc := strconv.Itoa(status), http.StatusText(status)
	resp := map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      desc,
					"code":        code,
					"error":       msg,
					"request_id":  "579f33bf50b1/abc-000001",
				},
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses[key]; !exists {
				responses[key] = resp
			}
		}
	}
}
