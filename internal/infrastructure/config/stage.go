package config

// WorldConfig configures level-to-world mapping
type WorldConfig struct {
	LevelsPerWorld int `yaml:"levels_per_world"`
	WorldCount     int `yaml:"world_count"`
}

// MaxLevel returns the last playable level
func (w WorldConfig) MaxLevel() int {
	return w.LevelsPerWorld * w.WorldCount
}

// ScoringConfig holds score and currency awards
type ScoringConfig struct {
	Stomp          int `yaml:"stomp"`
	ProjectileKill int `yaml:"projectile_kill"`
	BossKill       int `yaml:"boss_kill"`
	CoinCommon     int `yaml:"coin_common"`
	CoinRare       int `yaml:"coin_rare"`
	CoinValue      int `yaml:"coin_value"`
	RareCoinValue  int `yaml:"rare_coin_value"`
	Checkpoint     int `yaml:"checkpoint"`
	GoalBase       int `yaml:"goal_base"`
	TimeBonusMax   int `yaml:"time_bonus_max"`
	TimeBonusRate  int `yaml:"time_bonus_rate"` // points lost per second
	ComboThreshold int `yaml:"combo_threshold"`
	ComboBonus     int `yaml:"combo_bonus"` // multiplied by combo length
}

// ProgressConfig configures lives, economy and persistence
type ProgressConfig struct {
	StartLives       int     `yaml:"start_lives"`
	CoinsPerLife     int     `yaml:"coins_per_life"`
	ModeCycleEvery   int     `yaml:"mode_cycle_every"`
	CheckpointOffset float64 `yaml:"checkpoint_offset"`
	LeaderboardSize  int     `yaml:"leaderboard_size"`
	LeaderboardShown int     `yaml:"leaderboard_shown"`
	RunnerName       string  `yaml:"runner_name"`
}
