// Package playbook reshapes tracking rows into per-player play documents
// everything here is pure: no I/O, no shared state, inputs are never mutated
package playbook

// Sample is one frame of one player's trajectory
type Sample struct {
	Frame int     `json:"frame"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	S     float64 `json:"s"`
	A     float64 `json:"a"`
	Dir   float64 `json:"dir"`
	O     float64 `json:"o"`
}

// Player is one tracked player and the frames observed for them
type Player struct {
	NflID      string   `json:"nfl_id"`
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	Role       string   `json:"role"`
	Trajectory []Sample `json:"trajectory"`

	// InputSamples counts the leading trajectory entries observed before the throw
	InputSamples int `json:"-"`
}

// Play is the visualization document for one play
type Play struct {
	GameID          string   `json:"game_id"`
	PlayID          int      `json:"play_id"`
	PlayDirection   string   `json:"play_direction"`
	LineOfScrimmage float64  `json:"line_of_scrimmage"`
	BallLandX       float64  `json:"ball_land_x"`
	BallLandY       float64  `json:"ball_land_y"`
	NumInputFrames  int      `json:"num_input_frames"`
	NumOutputFrames int      `json:"num_output_frames"`
	TotalFrames     int      `json:"total_frames"`
	Players         []Player `json:"players"`
}

// Summary describes one listed play and how many input rows it has
type Summary struct {
	GameID string `json:"game_id"`
	PlayID int    `json:"play_id"`
	Frames int    `json:"frames"`
}

// Metadata labels a collection
type Metadata struct {
	Source   string `json:"source"`
	Week     string `json:"week"`
	NumPlays int    `json:"num_plays"`
}

// Collection is a batch of play documents written together
type Collection struct {
	Plays    []Play   `json:"plays"`
	Metadata Metadata `json:"metadata"`
}
