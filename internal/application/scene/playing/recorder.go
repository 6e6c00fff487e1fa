package playing

import (
	"fmt"
	"time"

	"github.com/younwookim/neotower/internal/application/replay"
	"github.com/younwookim/neotower/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed and starting progress for
// deterministic replay
func NewRecorder(seed int64, start replay.StartState) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.Version,
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339Nano),
			Start:     start,
			Frames:    make([]replay.FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's input and delta time
func (r *Recorder) RecordFrame(input system.InputState, dt float64) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F:  r.frame,
		DT: dt,
		L:  input.Left,
		R:  input.Right,
		J:  input.Jump,
		S:  input.Slide,
		A:  input.Attack,
	})
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	return replay.SaveReplay(filename, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
