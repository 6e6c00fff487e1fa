package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"inside", Rect{X: 15, Y: 15, W: 5, H: 5}, true},
		{"partial overlap", Rect{X: 25, Y: 25, W: 20, H: 20}, true},
		{"touching right edge", Rect{X: 30, Y: 10, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 10, Y: 30, W: 10, H: 10}, false},
		{"far left", Rect{X: -50, Y: 10, W: 10, H: 10}, false},
		{"above", Rect{X: 10, Y: -20, W: 10, H: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 4, Y: 6, W: 10, H: 20}

	assert.Equal(t, 14.0, r.Right())
	assert.Equal(t, 26.0, r.Bottom())
	assert.Equal(t, 9.0, r.CenterX())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(12, 0, 10))
	assert.Equal(t, 5.5, Clamp(5.5, 0, 10))

	assert.Equal(t, 1, ClampInt(0, 1, 128))
	assert.Equal(t, 128, ClampInt(500, 1, 128))
	assert.Equal(t, 64, ClampInt(64, 1, 128))
}

func TestThemeForWorld(t *testing.T) {
	assert.Equal(t, "Green Hills", ThemeForWorld(1).Name)
	assert.Equal(t, "Dark Castle", ThemeForWorld(8).Name)
	assert.Equal(t, "Dark Castle", ThemeForWorld(12).Name, "worlds past the last theme reuse it")
	assert.Equal(t, "Green Hills", ThemeForWorld(0).Name)
	assert.Len(t, Themes, 8)
}

func TestPowerMode(t *testing.T) {
	assert.Equal(t, "Normal", PowerNormal.String())
	assert.Equal(t, "Giant", PowerGiant.String())
	assert.Equal(t, "Fire", PowerFire.String())
	assert.Equal(t, "Unknown", PowerMode(7).String())

	assert.Equal(t, PowerGiant, PowerNormal.Next())
	assert.Equal(t, PowerFire, PowerGiant.Next())
	assert.Equal(t, PowerNormal, PowerFire.Next())

	assert.True(t, PowerFire.Valid())
	assert.False(t, PowerMode(-1).Valid())
	assert.False(t, PowerMode(3).Valid())
}
