package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/neotower/internal/domain/entity"
	"github.com/younwookim/neotower/internal/infrastructure/config"
)

var testNow = time.UnixMilli(1_700_000_000_000)

func TestLoadProgress_AbsentUsesDefaults(t *testing.T) {
	cfg := config.Default()

	p, err := LoadProgress(NewMemoryStore(), cfg, testNow)
	require.NoError(t, err)

	assert.Equal(t, entity.RunProgress{
		Level: 1, Unlocked: 1, Lives: 3, Mode: entity.PowerNormal, SpeedrunStart: testNow,
	}, p)
}

func TestLoadProgress_MalformedUsesDefaults(t *testing.T) {
	cfg := config.Default()

	for _, raw := range []string{"not json", `{"level":"three"}`, `[1,2,3]`} {
		kv := NewMemoryStore()
		require.NoError(t, kv.Put(ProgressKey, []byte(raw)))

		p, err := LoadProgress(kv, cfg, testNow)
		assert.Error(t, err, raw)
		assert.Equal(t, DefaultProgress(cfg, testNow), p, raw)
	}
}

func TestLoadProgress_Clamps(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name string
		raw  string
		want entity.RunProgress
	}{
		{
			name: "beyond max level",
			raw:  `{"level":400,"unlocked":999,"lives":5,"score":10,"coins":42,"mode":2,"speedrunStart":1000}`,
			want: entity.RunProgress{Level: 128, Unlocked: 128, Lives: 5, Score: 10, Coins: 42, Mode: entity.PowerFire, SpeedrunStart: time.UnixMilli(1000)},
		},
		{
			name: "zero and negative values",
			raw:  `{"level":0,"unlocked":-3,"lives":0,"score":-5,"coins":-1,"mode":-1}`,
			want: entity.RunProgress{Level: 1, Unlocked: 1, Lives: 3, Score: 0, Coins: 0, Mode: entity.PowerNormal, SpeedrunStart: testNow},
		},
		{
			name: "coins and mode above range",
			raw:  `{"level":7,"unlocked":9,"lives":2,"coins":250,"mode":9}`,
			want: entity.RunProgress{Level: 7, Unlocked: 9, Lives: 2, Coins: 99, Mode: entity.PowerFire, SpeedrunStart: testNow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemoryStore()
			require.NoError(t, kv.Put(ProgressKey, []byte(tt.raw)))

			p, err := LoadProgress(kv, cfg, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestSaveProgress_RoundTrip(t *testing.T) {
	cfg := config.Default()
	kv := NewMemoryStore()
	want := entity.RunProgress{
		Level: 33, Unlocked: 40, Lives: 6, Score: 12345, Coins: 77,
		Mode: entity.PowerGiant, SpeedrunStart: time.UnixMilli(1_650_000_000_123),
	}

	require.NoError(t, SaveProgress(kv, want))
	raw, err := kv.Get(ProgressKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":33,"unlocked":40,"lives":6,"score":12345,"coins":77,"mode":1,"speedrunStart":1650000000123}`, string(raw))

	got, err := LoadProgress(kv, cfg, testNow)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
