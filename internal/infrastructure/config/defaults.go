package config

import (
	_ "embed"
)

//go:embed defaults/physics.yaml
var defaultPhysicsYAML []byte

// Default returns the canonical tuning values
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  480,
			ScreenHeight: 720,
			Scale:        1,
			Framerate:    60,
		},
		Physics: PhysicsConfig{
			Gravity:       0.52,
			Friction:      0.84,
			MaxFrameDelta: 1.0 / 20.0,
			FallMargin:    120,
		},
		Player: PlayerConfig{
			Speed:          1.1,
			SlideAccel:     0.5,
			SlideDuration:  0.28,
			SlideMinSpeed:  1.2,
			JumpPower:      11.3,
			MaxJumps:       2,
			AttackCooldown: 0.25,
			HitPoints:      4,
			SpawnX:         24,
			SpawnOffset:    120,
			Sizes: SizesConfig{
				Normal: SizeConfig{Width: 28, Height: 42},
				Giant:  SizeConfig{Width: 38, Height: 52},
			},
			Projectile: ProjectileConfig{
				Speed:   5.2,
				Size:    SizeConfig{Width: 10, Height: 6},
				OffsetY: 8,
				Despawn: 30,
			},
		},
		World: WorldConfig{
			LevelsPerWorld: 16,
			WorldCount:     8,
		},
		Enemies: EnemyConfig{
			EdgeInset:   12,
			StompSpeed:  1.5,
			StompBounce: -6,
			Flyer: FlyerConfig{
				BobFrequency: 3,
				BobAmplitude: 0.7,
			},
			Hopper: HopperConfig{
				JumpChance:   0.01,
				JumpImpulse:  -5.5,
				GravityScale: 0.4,
				FloorOffset:  58,
			},
			Boss: BossConfig{
				EdgeInset:         20,
				Phase1HP:          10,
				Phase2HP:          5,
				FireballChance:    0.015,
				FireballBaseSpeed: 2.5,
				FireballSize:      SizeConfig{Width: 10, Height: 14},
				FireballDespawn:   100,
			},
		},
		Scoring: ScoringConfig{
			Stomp:          60,
			ProjectileKill: 120,
			BossKill:       900,
			CoinCommon:     15,
			CoinRare:       150,
			CoinValue:      1,
			RareCoinValue:  10,
			Checkpoint:     40,
			GoalBase:       250,
			TimeBonusMax:   90,
			TimeBonusRate:  2,
			ComboThreshold: 4,
			ComboBonus:     25,
		},
		Progress: ProgressConfig{
			StartLives:       3,
			CoinsPerLife:     100,
			ModeCycleEvery:   5,
			CheckpointOffset: 40,
			LeaderboardSize:  10,
			LeaderboardShown: 5,
			RunnerName:       "Hero",
		},
	}
}
