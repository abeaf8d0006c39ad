// Package tracking holds the row-level model for player tracking tables
// rows are plain values and tables are immutable once decoded
package tracking

import (
	"cmp"
	"fmt"
	"strconv"
)

// Kind tells which side of the throw a table describes
type Kind string

const (
	// KindInput holds observed frames before the pass is released
	KindInput Kind = "input"

	// KindOutput holds ground truth frames after the release
	KindOutput Kind = "output"
)

// Key selects one play across both tables
type Key struct {
	GameID string
	PlayID int
}

// String renders the key the way logs and file names use it
func (k Key) String() string { return fmt.Sprintf("%s/%d", k.GameID, k.PlayID) }

// Compare orders keys by game then play
// game ids compare numerically when both parse as integers, lexically otherwise
func Compare(a, b Key) int {
	if c := compareGame(a.GameID, b.GameID); c != 0 {
		return c
	}
	return cmp.Compare(a.PlayID, b.PlayID)
}

func compareGame(a, b string) int {
	ai, aerr := strconv.ParseInt(a, 10, 64)
	bi, berr := strconv.ParseInt(b, 10, 64)
	if aerr == nil && berr == nil {
		return cmp.Compare(ai, bi)
	}
	return cmp.Compare(a, b)
}

// Float is an optional measurement, Valid is false when the cell was empty or NA
type Float struct {
	Value float64
	Valid bool
}

// Some wraps a present value
func Some(v float64) Float { return Float{Value: v, Valid: true} }

// Or returns the value or def when absent
func (f Float) Or(def float64) float64 {
	if !f.Valid {
		return def
	}
	return f.Value
}

// Row is one observation of one player at one frame of one play
// play level fields (direction, ball landing, yardline, declared output frames) are only
// populated for input rows
type Row struct {
	GameID  string
	PlayID  int
	FrameID int
	NflID   string

	PlayerName     string
	PlayerPosition string
	PlayerRole     string

	X, Y float64

	S   Float
	A   Float
	Dir Float
	O   Float

	PlayDirection    string
	BallLandX        float64
	BallLandY        float64
	AbsoluteYardline float64
	NumFramesOutput  int
}

// Key returns the play key of the row
func (r Row) Key() Key { return Key{GameID: r.GameID, PlayID: r.PlayID} }

// Table is a decoded tracking source in file order
type Table struct {
	Kind Kind
	Rows []Row
}

// Len returns the number of rows
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
