package http

import "gridiron/internal/modkit/swaggerkit"

// Docs adds the plays operations to the served OpenAPI document
func Docs(spec map[string]any) {
	ref := func(name string) map[string]any {
		return map[string]any{"$ref": "#/components/schemas/" + name}
	}
	ok := func(schema map[string]any) map[string]any {
		return map[string]any{"200": map[string]any{
			"description": "OK",
			"content":     map[string]any{"application/json": map[string]any{"schema": schema}},
		}}
	}
	intQuery := func(name string, lo, hi, def int) map[string]any {
		return map[string]any{
			"name": name, "in": "query",
			"schema": map[string]any{"type": "integer", "minimum": lo, "maximum": hi, "default": def},
		}
	}

	swaggerkit.AddPath(spec, "/plays", "get", map[string]any{
		"tags":       []any{"Plays"},
		"summary":    "List plays in key order",
		"parameters": []any{intQuery("limit", 1, 500, 10)},
		"responses":  ok(map[string]any{"type": "array", "items": ref("Summary")}),
	})

	one := ok(ref("Play"))
	one["404"] = map[string]any{
		"description": "Not Found",
		"content":     map[string]any{"application/json": map[string]any{"schema": ref("ErrorResponse")}},
	}
	swaggerkit.AddPath(spec, "/plays/{gameID}/{playID}", "get", map[string]any{
		"tags":    []any{"Plays"},
		"summary": "One play document",
		"parameters": []any{
			map[string]any{"name": "gameID", "in": "path", "required": true, "schema": map[string]any{"type": "string"}},
			map[string]any{"name": "playID", "in": "path", "required": true, "schema": map[string]any{"type": "integer"}},
		},
		"responses": one,
	})

	swaggerkit.AddPath(spec, "/collection", "get", map[string]any{
		"tags":       []any{"Plays"},
		"summary":    "Collection over the first listed plays",
		"parameters": []any{intQuery("size", 1, 100, 5)},
		"responses":  ok(ref("Collection")),
	})

	num := map[string]any{"type": "number"}
	integer := map[string]any{"type": "integer"}
	str := map[string]any{"type": "string"}
	obj := func(props map[string]any) map[string]any {
		return map[string]any{"type": "object", "properties": props}
	}
	s := swaggerkit.Schemas(spec)
	s["Summary"] = obj(map[string]any{"game_id": str, "play_id": integer, "frames": integer})
	s["Sample"] = obj(map[string]any{"frame": integer, "x": num, "y": num, "s": num, "a": num, "dir": num, "o": num})
	s["Player"] = obj(map[string]any{
		"nfl_id": str, "name": str, "position": str, "role": str,
		"trajectory": map[string]any{"type": "array", "items": ref("Sample")},
	})
	s["Play"] = obj(map[string]any{
		"game_id": str, "play_id": integer, "play_direction": str,
		"line_of_scrimmage": num, "ball_land_x": num, "ball_land_y": num,
		"num_input_frames": integer, "num_output_frames": integer, "total_frames": integer,
		"players": map[string]any{"type": "array", "items": ref("Player")},
	})
	s["Collection"] = obj(map[string]any{
		"plays":    map[string]any{"type": "array", "items": ref("Play")},
		"metadata": obj(map[string]any{"source": str, "week": str, "num_plays": integer}),
	})
}
