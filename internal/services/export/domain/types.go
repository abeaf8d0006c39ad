package domain

import (
	"fmt"

	"gridiron/internal/core/playbook"
	"gridiron/internal/core/tracking"
	archivedom "gridiron/internal/services/archive/domain"
)

// CollectionFile is the name the multi-play document is written under
const CollectionFile = "nfl_plays_collection.json"

// PlayFile names the single play document for k
func PlayFile(k tracking.Key) string {
	return fmt.Sprintf("nfl_play_%s_%d.json", k.GameID, k.PlayID)
}

// Result reports what one run produced
type Result struct {
	Candidates     []playbook.Summary
	Target         tracking.Key
	PlayPath       string
	CollectionPath string
	Collected      int
	Skipped        []tracking.Key

	// Archive is nil when archiving was off
	Archive *archivedom.Receipt
}
