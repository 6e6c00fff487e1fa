package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/younwookim/neotower/internal/domain/entity"
	"github.com/younwookim/neotower/internal/infrastructure/config"
)

// progressRecord is the persisted progress document
type progressRecord struct {
	Level         int   `json:"level"`
	Unlocked      int   `json:"unlocked"`
	Lives         int   `json:"lives"`
	Score         int   `json:"score"`
	Coins         int   `json:"coins"`
	Mode          int   `json:"mode"`
	SpeedrunStart int64 `json:"speedrunStart"` // unix milliseconds
}

// DefaultProgress is the state of a fresh run started at now
func DefaultProgress(cfg *config.GameConfig, now time.Time) entity.RunProgress {
	return entity.RunProgress{
		Level:         1,
		Unlocked:      1,
		Lives:         cfg.Progress.StartLives,
		Score:         0,
		Coins:         0,
		Mode:          entity.PowerNormal,
		SpeedrunStart: now,
	}
}

// LoadProgress reads the saved run. Absent data yields defaults with a nil
// error; malformed data yields defaults and the decode error so the caller
// can log it. Loaded values are clamped into their valid ranges.
func LoadProgress(kv KVStore, cfg *config.GameConfig, now time.Time) (entity.RunProgress, error) {
	def := DefaultProgress(cfg, now)

	raw, err := kv.Get(ProgressKey)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}

	var rec progressRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return def, fmt.Errorf("%w: progress: %w", ErrMalformed, err)
	}

	maxLevel := cfg.World.MaxLevel()
	p := def
	p.Level = entity.ClampInt(orDefault(rec.Level, 1), 1, maxLevel)
	p.Unlocked = entity.ClampInt(orDefault(rec.Unlocked, 1), 1, maxLevel)
	if rec.Lives > 0 {
		p.Lives = rec.Lives
	}
	p.Score = max(rec.Score, 0)
	p.Coins = entity.ClampInt(rec.Coins, 0, cfg.Progress.CoinsPerLife-1)
	p.Mode = entity.PowerMode(entity.ClampInt(rec.Mode, 0, int(entity.PowerFire)))
	if rec.SpeedrunStart > 0 {
		p.SpeedrunStart = time.UnixMilli(rec.SpeedrunStart)
	}
	return p, nil
}

// SaveProgress writes the run, last write wins
func SaveProgress(kv KVStore, p entity.RunProgress) error {
	raw, err := json.Marshal(progressRecord{
		Level:         p.Level,
		Unlocked:      p.Unlocked,
		Lives:         p.Lives,
		Score:         p.Score,
		Coins:         p.Coins,
		Mode:          int(p.Mode),
		SpeedrunStart: p.SpeedrunStart.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("storage: cannot encode progress: %w", err)
	}
	return kv.Put(ProgressKey, raw)
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
