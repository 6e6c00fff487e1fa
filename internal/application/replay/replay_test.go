package replay

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/neotower/internal/domain/entity"
	"github.com/younwookim/neotower/internal/infrastructure/config"
)

func TestFrameInput_OmitsIdleKeys(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, DT: 0.016, R: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":3,"dt":0.016,"r":true}`, string(data))
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Frames: []FrameInput{
			{F: 0, DT: 0.016, L: true},
			{F: 1, DT: 0.017, R: true, J: true},
			{F: 2, DT: 0.02, S: true, A: true},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, dt, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)
	assert.Equal(t, 0.016, dt)

	// Frame 1
	input, _, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Left)
	assert.True(t, input.Right)
	assert.True(t, input.Jump)

	// Frame 2
	input, dt, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Slide)
	assert.True(t, input.Attack)
	assert.Equal(t, 0.02, dt)

	// End of frames
	_, _, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_FrameBookkeeping(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5))

	assert.Equal(t, 5, replayer.TotalFrames())
	assert.Equal(t, int64(12345), replayer.Seed())
	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 2, replayer.CurrentFrame())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
}

func TestReplayer_StartTime(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  int64
	}{
		{"rfc3339", "2024-01-01T00:00:00Z", 1704067200000},
		{"fractional seconds", "2024-01-01T00:00:00.5Z", 1704067200500},
		{"missing", "", 1000},
		{"garbage", "yesterday", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReplayer(ReplayData{StartTime: tt.start})
			assert.Equal(t, tt.want, r.StartTime().UnixMilli())
		})
	}
}

func TestSaveAndLoadReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	data := CreateTestReplayData(3)
	data.Start = StartState{Level: 4, Unlocked: 6, Lives: 2, Score: 300, Coins: 12, Mode: 2}

	require.NoError(t, SaveReplay(path, data))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, data, *loaded)
}

func TestSaveReplay_Empty(t *testing.T) {
	err := SaveReplay(filepath.Join(t.TempDir(), "run.json"), ReplayData{})
	assert.Error(t, err)
}

func TestLoadReplay_Missing(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestStartState_RoundTrip(t *testing.T) {
	p := entity.RunProgress{Level: 7, Unlocked: 9, Lives: 4, Score: 1200, Coins: 55, Mode: entity.PowerFire}

	got := StartFromProgress(p).Progress(p.SpeedrunStart)
	assert.Equal(t, p, got)
}

func TestRun_IdlePlayerSettles(t *testing.T) {
	res, err := Run(config.Default(), CreateTestReplayData(120), nil)
	require.NoError(t, err)

	assert.Equal(t, 120, res.Frames)
	assert.Equal(t, 1, res.Progress.Level)
	assert.Equal(t, 3, res.Progress.Lives)
	assert.Zero(t, res.LivesLost)
	assert.True(t, res.Player.OnGround)
	assert.Equal(t, 24.0, res.Player.X)
	assert.InDelta(t, 2.0, res.RunTime, 1e-3, "virtual clock follows recorded deltas")
}

func TestRun_ClampsRecordedDelta(t *testing.T) {
	data := CreateTestReplayData(10)
	for i := range data.Frames {
		data.Frames[i].DT = 1.0
	}

	res, err := Run(config.Default(), data, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.RunTime, 1e-3)
}

func TestRun_Deterministic(t *testing.T) {
	data := CreateTestReplayData(900)
	data.Start = StartState{Level: 20, Unlocked: 20, Lives: 5, Mode: int(entity.PowerFire)}
	for i := range data.Frames {
		f := &data.Frames[i]
		f.R = i%90 < 60
		f.L = i%90 >= 75
		f.J = i%23 < 4
		f.A = i%17 == 0
		f.S = i%41 == 0
	}

	first, err := Run(config.Default(), data, nil)
	require.NoError(t, err)
	second, err := Run(config.Default(), data, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
