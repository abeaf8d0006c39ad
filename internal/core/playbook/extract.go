package playbook

import (
	"cmp"
	"slices"

	"gridiron/internal/core/tracking"
	perr "gridiron/internal/platform/errors"
)

// Extract builds the play document for key from the indexed input and output tables
// it fails with ErrorCodeNotFound when the input table has no rows for key
// a play with no output rows is valid and simply has no post-throw samples
//
// play metadata comes from the first input row in file order, rows are not cross-checked
// players are the distinct input nfl ids in order of first appearance, output-only ids are dropped
func Extract(in, out *tracking.Index, key tracking.Key) (Play, error) {
	playIn := in.Rows(key)
	if len(playIn) == 0 {
		return Play{}, perr.NotFoundf("no data found for game_id=%s, play_id=%d", key.GameID, key.PlayID)
	}
	playOut := out.Rows(key)

	first := playIn[0]
	maxFrame := 0
	for _, r := range playIn {
		maxFrame = max(maxFrame, r.FrameID)
	}

	ids, inByPlayer := groupByPlayer(playIn)
	_, outByPlayer := groupByPlayer(playOut)

	players := make([]Player, 0, len(ids))
	for _, id := range ids {
		players = append(players, buildPlayer(id, inByPlayer[id], outByPlayer[id]))
	}

	return Play{
		GameID:          key.GameID,
		PlayID:          key.PlayID,
		PlayDirection:   first.PlayDirection,
		LineOfScrimmage: first.AbsoluteYardline,
		BallLandX:       first.BallLandX,
		BallLandY:       first.BallLandY,
		NumInputFrames:  maxFrame,
		NumOutputFrames: first.NumFramesOutput,
		TotalFrames:     maxFrame + first.NumFramesOutput,
		Players:         players,
	}, nil
}

// buildPlayer concatenates sorted input samples with sorted output samples
// output frames are shifted by the player's input row count, which is not the same as the
// input max frame when frame ids have gaps
func buildPlayer(id string, in, out []tracking.Row) Player {
	in = sortedByFrame(in)
	out = sortedByFrame(out)

	traj := make([]Sample, 0, len(in)+len(out))
	for _, r := range in {
		traj = append(traj, Sample{
			Frame: r.FrameID,
			X:     r.X,
			Y:     r.Y,
			S:     r.S.Or(0),
			A:     r.A.Or(0),
			Dir:   r.Dir.Or(0),
			O:     r.O.Or(0),
		})
	}
	offset := len(in)
	for _, r := range out {
		traj = append(traj, Sample{Frame: r.FrameID + offset, X: r.X, Y: r.Y})
	}

	head := in[0]
	return Player{
		NflID:      id,
		Name:       head.PlayerName,
		Position:   head.PlayerPosition,
		Role:       head.PlayerRole,
		Trajectory: traj,

		InputSamples: offset,
	}
}

// groupByPlayer splits rows by nfl id and returns ids in order of first appearance
// ball rows carry no nfl id and belong to no player
func groupByPlayer(rows []tracking.Row) ([]string, map[string][]tracking.Row) {
	var ids []string
	by := map[string][]tracking.Row{}
	for _, r := range rows {
		if r.NflID == "" {
			continue
		}
		if _, ok := by[r.NflID]; !ok {
			ids = append(ids, r.NflID)
		}
		by[r.NflID] = append(by[r.NflID], r)
	}
	return ids, by
}

// sortedByFrame returns a stably sorted copy so index groups stay untouched
func sortedByFrame(rows []tracking.Row) []tracking.Row {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b tracking.Row) int { return cmp.Compare(a.FrameID, b.FrameID) })
	return out
}
