package replay

import (
	"time"

	"github.com/younwookim/neotower/internal/domain/entity"
)

// Version is written into every new recording
const Version = "1.0"

// FrameInput records input state and frame time for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	DT float64 `json:"dt"`           // Delta time in seconds, before clamping
	L  bool    `json:"l,omitempty"`  // Left
	R  bool    `json:"r,omitempty"`  // Right
	J  bool    `json:"j,omitempty"`  // Jump
	S  bool    `json:"s,omitempty"`  // Slide
	A  bool    `json:"a,omitempty"`  // Attack
}

// StartState is the run progress the recording began from
type StartState struct {
	Level    int `json:"level"`
	Unlocked int `json:"unlocked"`
	Lives    int `json:"lives"`
	Score    int `json:"score"`
	Coins    int `json:"coins"`
	Mode     int `json:"mode"`
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Start     StartState   `json:"start"`
	Frames    []FrameInput `json:"frames"`
}

// StartFromProgress captures the replayable part of p
func StartFromProgress(p entity.RunProgress) StartState {
	return StartState{
		Level:    p.Level,
		Unlocked: p.Unlocked,
		Lives:    p.Lives,
		Score:    p.Score,
		Coins:    p.Coins,
		Mode:     int(p.Mode),
	}
}

// Progress rebuilds run progress with the speedrun clock started at start
func (s StartState) Progress(start time.Time) entity.RunProgress {
	return entity.RunProgress{
		Level:         s.Level,
		Unlocked:      s.Unlocked,
		Lives:         s.Lives,
		Score:         s.Score,
		Coins:         s.Coins,
		Mode:          entity.PowerMode(s.Mode),
		SpeedrunStart: start,
	}
}
