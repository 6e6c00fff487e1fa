package entity

import "time"

// RunProgress is the persisted state of a run
type RunProgress struct {
	Level         int
	Unlocked      int
	Lives         int
	Score         int
	Coins         int
	Mode          PowerMode
	SpeedrunStart time.Time
}

// LeaderboardEntry is a completed run
type LeaderboardEntry struct {
	Name string  `json:"name"`
	Time float64 `json:"time"` // seconds
}
