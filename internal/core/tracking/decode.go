package tracking

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"gridiron/internal/core/normalize"
	perr "gridiron/internal/platform/errors"
)

// column names as they appear in the Big Data Bowl CSV headers
const (
	colGameID          = "game_id"
	colPlayID          = "play_id"
	colFrameID         = "frame_id"
	colNflID           = "nfl_id"
	colPlayerName      = "player_name"
	colPlayerRole      = "player_role"
	colPlayerPosition  = "player_position"
	colX               = "x"
	colY               = "y"
	colS               = "s"
	colA               = "a"
	colDir             = "dir"
	colO               = "o"
	colPlayDirection   = "play_direction"
	colBallLandX       = "ball_land_x"
	colBallLandY       = "ball_land_y"
	colYardline        = "absolute_yardline_number"
	colNumFramesOutput = "num_frames_output"
)

// RequiredColumns lists the header names a table of the given kind must carry
func RequiredColumns(k Kind) []string {
	if k == KindOutput {
		return []string{colGameID, colPlayID, colFrameID, colNflID, colX, colY}
	}
	return []string{
		colGameID, colPlayID, colFrameID, colNflID,
		colPlayerName, colPlayerRole, colPlayerPosition,
		colX, colY,
		colPlayDirection, colBallLandX, colBallLandY, colYardline, colNumFramesOutput,
	}
}

// cells that pandas would read as missing
var naTokens = map[string]struct{}{
	"": {}, "na": {}, "nan": {}, "n/a": {}, "null": {}, "none": {}, "<na>": {},
}

// Decoder streams rows out of a CSV tracking table
type Decoder struct {
	r    *csv.Reader
	kind Kind
	cols map[string]int
	line int
}

// NewDecoder reads the header row and checks required columns for kind
func NewDecoder(r io.Reader, kind Kind) (*Decoder, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, perr.Newf(perr.ErrorCodeValidation, "%s table: missing header row", kind)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeValidation, "%s table: read header", kind)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, want := range RequiredColumns(kind) {
		if _, ok := cols[want]; !ok {
			return nil, perr.WithField(
				perr.Newf(perr.ErrorCodeValidation, "%s table: missing required column %q", kind, want),
				want,
			)
		}
	}
	return &Decoder{r: cr, kind: kind, cols: cols, line: 1}, nil
}

// Next returns the next row or io.EOF when the table is exhausted
func (d *Decoder) Next() (Row, error) {
	rec, err := d.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}
		return Row{}, perr.Wrapf(err, perr.ErrorCodeValidation, "%s table: read line %d", d.kind, d.line+1)
	}
	d.line++

	c := cells{d: d, rec: rec}
	row := Row{
		GameID:  canonicalID(c.str(colGameID)),
		PlayID:  c.integer(colPlayID),
		FrameID: c.integer(colFrameID),
		NflID:   canonicalID(c.str(colNflID)),
		X:       c.number(colX),
		Y:       c.number(colY),
	}
	if d.kind == KindInput {
		row.PlayerName = normalize.Label(c.str(colPlayerName))
		row.PlayerRole = normalize.Label(c.str(colPlayerRole))
		row.PlayerPosition = normalize.Label(c.str(colPlayerPosition))
		row.PlayDirection = normalize.Label(c.str(colPlayDirection))
		row.BallLandX = c.number(colBallLandX)
		row.BallLandY = c.number(colBallLandY)
		row.AbsoluteYardline = c.number(colYardline)
		row.NumFramesOutput = c.integer(colNumFramesOutput)
		row.S = c.optNumber(colS)
		row.A = c.optNumber(colA)
		row.Dir = c.optNumber(colDir)
		row.O = c.optNumber(colO)
	}
	if c.err != nil {
		return Row{}, c.err
	}
	if row.GameID == "" {
		return Row{}, d.cellErr(colGameID, "", "empty value")
	}
	return row, nil
}

// rows decoded between context checks
const ctxEvery = 4096

// ReadTable decodes a whole table into memory, stopping early once ctx is done
func ReadTable(ctx context.Context, r io.Reader, kind Kind) (*Table, error) {
	dec, err := NewDecoder(r, kind)
	if err != nil {
		return nil, err
	}
	t := &Table{Kind: kind}
	for {
		if len(t.Rows)%ctxEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		row, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, row)
	}
}

func (d *Decoder) cellErr(col, raw, why string) error {
	return perr.WithField(
		perr.Newf(perr.ErrorCodeValidation, "%s table line %d column %s: %s (%q)", d.kind, d.line, col, why, raw),
		col,
	)
}

// cells reads typed values from one record and keeps the first failure
type cells struct {
	d   *Decoder
	rec []string
	err error
}

func (c *cells) str(col string) string {
	i, ok := c.d.cols[col]
	if !ok || i >= len(c.rec) {
		return ""
	}
	return strings.TrimSpace(c.rec[i])
}

func (c *cells) integer(col string) int {
	raw := c.str(col)
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	// pandas writes integer columns with NaNs as floats, 12.0
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	c.fail(col, raw, "not an integer")
	return 0
}

func (c *cells) number(col string) float64 {
	raw := c.str(col)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		c.fail(col, raw, "not a number")
		return 0
	}
	return f
}

func (c *cells) optNumber(col string) Float {
	raw := c.str(col)
	if _, na := naTokens[strings.ToLower(raw)]; na {
		return Float{}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		c.fail(col, raw, "not a number")
		return Float{}
	}
	return Some(f)
}

func (c *cells) fail(col, raw, why string) {
	if c.err == nil {
		c.err = c.d.cellErr(col, raw, why)
	}
}

// canonicalID turns float spelled ids ("2023091000.0") into their integer text
// anything else is returned trimmed and unchanged
func canonicalID(s string) string {
	if !strings.ContainsAny(s, ".eE") {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return s
	}
	return strconv.FormatInt(int64(f), 10)
}
