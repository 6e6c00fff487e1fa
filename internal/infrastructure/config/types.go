// Package config provides YAML-based tuning for the simulation.
package config

// GameConfig is the root config for physics.yaml
type GameConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	World    WorldConfig    `yaml:"world"`
	Enemies  EnemyConfig    `yaml:"enemies"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Progress ProgressConfig `yaml:"progress"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

// PhysicsConfig holds per-frame integration constants.
// Gravity and friction are applied once per frame, not scaled by dt.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	Friction      float64 `yaml:"friction"`
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // seconds
	FallMargin    float64 `yaml:"fall_margin"`     // below level height
}

type PlayerConfig struct {
	Speed          float64          `yaml:"speed"`
	SlideAccel     float64          `yaml:"slide_accel"`
	SlideDuration  float64          `yaml:"slide_duration"`
	SlideMinSpeed  float64          `yaml:"slide_min_speed"`
	JumpPower      float64          `yaml:"jump_power"`
	MaxJumps       int              `yaml:"max_jumps"`
	AttackCooldown float64          `yaml:"attack_cooldown"`
	HitPoints      int              `yaml:"hit_points"`
	SpawnX         float64          `yaml:"spawn_x"`
	SpawnOffset    float64          `yaml:"spawn_offset"` // above level height
	Sizes          SizesConfig      `yaml:"sizes"`
	Projectile     ProjectileConfig `yaml:"projectile"`
}

type SizesConfig struct {
	Normal SizeConfig `yaml:"normal"`
	Giant  SizeConfig `yaml:"giant"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}
