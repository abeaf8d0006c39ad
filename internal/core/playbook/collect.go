package playbook

import "gridiron/internal/core/tracking"

// Collect extracts every key in order into a collection
// a key that fails is handed to onErr (when set) and skipped, later keys still run
// meta.NumPlays is overwritten with the number of plays actually collected
func Collect(in, out *tracking.Index, keys []tracking.Key, meta Metadata, onErr func(tracking.Key, error)) Collection {
	plays := make([]Play, 0, len(keys))
	for _, k := range keys {
		p, err := Extract(in, out, k)
		if err != nil {
			if onErr != nil {
				onErr(k, err)
			}
			continue
		}
		plays = append(plays, p)
	}
	meta.NumPlays = len(plays)
	return Collection{Plays: plays, Metadata: meta}
}
