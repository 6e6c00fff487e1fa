package system

import (
	"errors"
	"fmt"
	"math"

	"github.com/younwookim/neotower/internal/domain/entity"
	"github.com/younwookim/neotower/internal/infrastructure/config"
)

// ErrLevelOutOfRange is returned for level numbers outside 1..MaxLevel
var ErrLevelOutOfRange = errors.New("level out of range")

// Layout constants. Placement is a pure function of the level number.
const (
	baseHeight      = 2200.0
	heightPerWorld  = 120.0
	floorInset      = 38.0
	floorThickness  = 40.0
	platformHeight  = 14.0
	firstPlatformAt = 130.0

	basePlatforms      = 24
	platformsPerWorld  = 2
	movingEvery        = 5
	spikeEvery         = 4
	lavaEvery          = 6
	lavaFromWorld      = 3
	coinEvery          = 3
	rareCoinEvery      = 9
	enemyEvery         = 5
	enemyOffset        = 2
	enemyHPEveryLevels = 18
	secretEvery        = 7
	bossEvery          = 10
)

var checkpointIndices = []int{10, 19}

// WorldForLevel maps a level number to its 1-based world index,
// clamped to the last world.
func WorldForLevel(cfg config.WorldConfig, level int) int {
	world := (level + cfg.LevelsPerWorld - 1) / cfg.LevelsPerWorld
	return entity.ClampInt(world, 1, cfg.WorldCount)
}

// Difficulty returns the enemy speed scalar of a level
func Difficulty(level int) float64 {
	return 1 + float64(level)*0.06
}

// GenerateLevel builds the layout of level n. The same n always yields the
// same layout; no random source is consulted.
func GenerateLevel(cfg *config.GameConfig, n int) (*entity.Level, error) {
	if n < 1 || n > cfg.World.MaxLevel() {
		return nil, fmt.Errorf("generate level %d: %w", n, ErrLevelOutOfRange)
	}

	world := WorldForLevel(cfg.World, n)
	screenW := float64(cfg.Display.ScreenWidth)
	height := baseHeight + float64(world)*heightPerWorld
	difficulty := Difficulty(n)
	fl := float64(n)

	lvl := &entity.Level{
		Number: n,
		World:  world,
		Theme:  entity.ThemeForWorld(world),
		Height: height,
		Goal:   entity.Rect{X: screenW - 44, Y: 96, W: 22, H: 30},
		IsBoss: n%bossEvery == 0,
	}

	lvl.Platforms = append(lvl.Platforms, &entity.Platform{
		Rect: entity.Rect{X: 0, Y: height - floorInset, W: screenW, H: floorThickness},
	})

	count := basePlatforms + world*platformsPerWorld
	for i := 0; i < count; i++ {
		fi := float64(i)
		w := entity.Clamp(130-fl*0.35+float64(i%3)*16, 66, 140)
		y := height - firstPlatformAt - fi*(64-math.Min(28, fl*0.1))
		x := 16 + ((math.Sin(fi*1.2+fl)+1)/2)*(screenW-w-32)

		lvl.Platforms = append(lvl.Platforms, &entity.Platform{
			Rect:      entity.Rect{X: x, Y: y, W: w, H: platformHeight},
			Moving:    i%movingEvery == 0,
			BaseX:     x,
			Amplitude: 34 + float64(world)*4,
			Speed:     0.5 + fi*0.02,
		})

		if i%spikeEvery == 0 {
			lvl.Hazards = append(lvl.Hazards, &entity.Hazard{
				Rect: entity.Rect{X: x + 8, Y: y - 10, W: 20, H: 10},
				Kind: entity.HazardSpike,
			})
		}
		if i%lavaEvery == 0 && world >= lavaFromWorld {
			lvl.Hazards = append(lvl.Hazards, &entity.Hazard{
				Rect: entity.Rect{X: x + 12, Y: y + 14, W: math.Min(44, w-20), H: 8},
				Kind: entity.HazardLava,
			})
		}
		if i%coinEvery == 0 {
			lvl.Coins = append(lvl.Coins, &entity.Coin{
				Rect: entity.Rect{X: x + w*0.5 - 6, Y: y - 18, W: 12, H: 12},
				Rare: i%rareCoinEvery == 0,
			})
		}
		if i%enemyEvery == enemyOffset {
			kind := entity.EnemyKinds[(i+world+n)%len(entity.EnemyKinds)]
			dir := -1.0
			if i%2 == 1 {
				dir = 1
			}
			lvl.Enemies = append(lvl.Enemies, entity.NewEnemy(
				lvl.NextID(),
				kind,
				entity.Rect{X: x + w*0.4, Y: y - 20, W: 20, H: 20},
				dir*(0.7+difficulty*0.08),
				1+n/enemyHPEveryLevels,
			))
		}
		for _, ci := range checkpointIndices {
			if i == ci {
				lvl.Checkpoints = append(lvl.Checkpoints, &entity.Checkpoint{
					Rect: entity.Rect{X: x + 4, Y: y - 32, W: 12, H: 32},
				})
			}
		}
	}

	if n%secretEvery == 0 {
		lvl.HiddenRooms = append(lvl.HiddenRooms, &entity.HiddenRoom{
			Rect: entity.Rect{X: 24, Y: height - 500, W: 110, H: 70},
		})
		lvl.Portals = append(lvl.Portals, &entity.Portal{
			Rect:    entity.Rect{X: 32, Y: height - 170, W: 24, H: 36},
			TargetY: height - 520,
		})
	}

	if lvl.IsBoss {
		lvl.Enemies = append(lvl.Enemies, entity.NewEnemy(
			lvl.NextID(),
			entity.KindMainBoss,
			entity.Rect{X: screenW/2 - 35, Y: 180, W: 70, H: 70},
			1.2,
			14+world*3,
		))
	}

	return lvl, nil
}

// SpawnPoint returns the default spawn position of a level
func SpawnPoint(cfg *config.GameConfig, lvl *entity.Level) entity.Point {
	return entity.Point{X: cfg.Player.SpawnX, Y: lvl.Height - cfg.Player.SpawnOffset}
}
