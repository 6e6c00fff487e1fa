package system

import (
	"math/rand"

	"github.com/younwookim/neotower/internal/domain/entity"
	"github.com/younwookim/neotower/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// newTestWorld returns a world with an empty level 1000 units tall whose
// only platform is a floor at y=900. The player stands on it at x=100.
func newTestWorld(cfg *config.GameConfig) *World {
	progress := &entity.RunProgress{Level: 1, Unlocked: 1, Lives: 3}
	w := NewWorld(cfg, progress)
	w.Level = &entity.Level{
		Number: 1,
		World:  1,
		Height: 1000,
		Platforms: []*entity.Platform{
			{Rect: entity.Rect{X: 0, Y: 900, W: 480, H: 40}},
		},
		Goal: entity.Rect{X: 436, Y: 96, W: 22, H: 30},
	}
	w.Player.X = 100
	w.Player.Land(900, cfg.Player.MaxJumps)
	return w
}

func addEnemy(w *World, kind entity.Kind, bounds entity.Rect, vx float64, hp int) *entity.Enemy {
	e := entity.NewEnemy(w.Level.NextID(), kind, bounds, vx, hp)
	w.Level.Enemies = append(w.Level.Enemies, e)
	return e
}
