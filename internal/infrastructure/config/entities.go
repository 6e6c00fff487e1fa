package config

// ProjectileConfig configures the Fire-mode player projectile
type ProjectileConfig struct {
	Speed   float64    `yaml:"speed"`
	Size    SizeConfig `yaml:"size"`
	OffsetY float64    `yaml:"offset_y"`
	Despawn float64    `yaml:"despawn_margin"` // beyond screen edges
}

// EnemyConfig configures enemy behavior patterns and combat
type EnemyConfig struct {
	EdgeInset   float64 `yaml:"edge_inset"`
	StompSpeed  float64 `yaml:"stomp_speed"` // player VY above this stomps
	StompBounce float64 `yaml:"stomp_bounce"`

	Flyer  FlyerConfig  `yaml:"flyer"`
	Hopper HopperConfig `yaml:"hopper"`
	Boss   BossConfig   `yaml:"boss"`
}

type FlyerConfig struct {
	BobFrequency float64 `yaml:"bob_frequency"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
}

type HopperConfig struct {
	JumpChance   float64 `yaml:"jump_chance"` // per frame
	JumpImpulse  float64 `yaml:"jump_impulse"`
	GravityScale float64 `yaml:"gravity_scale"`
	FloorOffset  float64 `yaml:"floor_offset"` // above level height
}

type BossConfig struct {
	EdgeInset         float64    `yaml:"edge_inset"`
	Phase1HP          int        `yaml:"phase1_hp"` // phase 1 once hp drops below
	Phase2HP          int        `yaml:"phase2_hp"`
	FireballChance    float64    `yaml:"fireball_chance"` // per frame from phase 1
	FireballBaseSpeed float64    `yaml:"fireball_base_speed"`
	FireballSize      SizeConfig `yaml:"fireball_size"`
	FireballDespawn   float64    `yaml:"fireball_despawn"` // below level height
}
