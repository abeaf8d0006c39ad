// Package domain holds archive types and ports
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Source tells whether a sample was observed before or after the throw
type Source string

const (
	// SourceInput marks pre-throw tracking samples
	SourceInput Source = "input"
	// SourceOutput marks post-throw ground truth samples
	SourceOutput Source = "output"
)

// PlayRecord is one row of the plays table
type PlayRecord struct {
	GameID      string
	PlayID      int
	RunID       uuid.UUID
	Document    []byte
	Players     int
	TotalFrames int
	ArchivedAt  time.Time
}

// SampleRow is one row of the trajectory_samples table
type SampleRow struct {
	RunID  uuid.UUID
	GameID string
	PlayID int32
	NflID  string
	Frame  int32
	X, Y   float64
	S, A   float64
	Dir, O float64
	Source Source
}

// Receipt reports what one archive run wrote
type Receipt struct {
	RunID      uuid.UUID `json:"run_id"`
	Plays      int       `json:"plays"`
	Samples    int       `json:"samples"`
	Postgres   bool      `json:"postgres"`
	ClickHouse bool      `json:"clickhouse"`
}
