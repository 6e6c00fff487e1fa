package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/neotower/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// SaveReplay writes replay data to a file as indented JSON
func SaveReplay(filename string, data ReplayData) error {
	if len(data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// GetInput returns the input and frame time for the current frame and
// advances
func (r *Replayer) GetInput() (system.InputState, float64, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, 0, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:   fi.L,
		Right:  fi.R,
		Jump:   fi.J,
		Slide:  fi.S,
		Attack: fi.A,
	}, fi.DT, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// StartTime returns the recorded wall clock start, or the Unix epoch
// plus one second when the field is missing or malformed
func (r *Replayer) StartTime() time.Time {
	t, err := time.Parse(time.RFC3339Nano, r.data.StartTime)
	if err != nil || t.UnixMilli() <= 0 {
		return time.UnixMilli(1000)
	}
	return t
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player at 60fps)
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		StartTime: "2024-01-01T00:00:00Z",
		Start:     StartState{Level: 1, Unlocked: 1, Lives: 3},
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			DT: 1.0 / 60.0,
		}
	}

	return data
}
