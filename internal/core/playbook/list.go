package playbook

import "gridiron/internal/core/tracking"

// List returns up to limit plays from the input table ordered by ascending (game, play)
// Frames is the number of input rows in the play, not a frame range
// limit <= 0 lists nothing
func List(in *tracking.Index, limit int) []Summary {
	if limit <= 0 {
		return []Summary{}
	}
	keys := in.Keys()
	if len(keys) > limit {
		keys = keys[:limit]
	}
	out := make([]Summary, 0, len(keys))
	for _, k := range keys {
		out = append(out, Summary{GameID: k.GameID, PlayID: k.PlayID, Frames: len(in.Rows(k))})
	}
	return out
}

// Keys maps summaries back to play keys
func Keys(ss []Summary) []tracking.Key {
	out := make([]tracking.Key, 0, len(ss))
	for _, s := range ss {
		out = append(out, tracking.Key{GameID: s.GameID, PlayID: s.PlayID})
	}
	return out
}
