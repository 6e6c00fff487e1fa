package system

import (
	"math"

	"github.com/younwookim/neotower/internal/application/state"
	"github.com/younwookim/neotower/internal/domain/entity"
	"github.com/younwookim/neotower/internal/infrastructure/config"
)

// ProgressionSystem handles pickups, checkpoints, secrets and the goal
type ProgressionSystem struct {
	config *config.GameConfig
}

// NewProgressionSystem creates a new progression system
func NewProgressionSystem(cfg *config.GameConfig) *ProgressionSystem {
	return &ProgressionSystem{config: cfg}
}

// AwardCoins adds currency. With combo set the pickup counts toward the
// combo bonus. Every full hundred converts into a life, so currency is
// always below CoinsPerLife afterwards.
func (s *ProgressionSystem) AwardCoins(w *World, amount int, combo bool) {
	scoring := s.config.Scoring
	w.Progress.Coins += amount

	if combo {
		w.Combo++
	}
	if w.Combo >= scoring.ComboThreshold {
		bonus := scoring.ComboBonus * w.Combo
		w.AddScore(bonus)
		w.Emit(ComboEvent{Length: w.Combo, Bonus: bonus})
		w.Combo = 0
	}

	perLife := s.config.Progress.CoinsPerLife
	for w.Progress.Coins >= perLife {
		w.Progress.Coins -= perLife
		w.Progress.Lives++
		w.Emit(ExtraLifeEvent{Lives: w.Progress.Lives})
	}
}

// CollectCoins takes every untaken coin the player overlaps
func (s *ProgressionSystem) CollectCoins(w *World) {
	scoring := s.config.Scoring
	for _, c := range w.Level.Coins {
		if c.Taken || !w.Player.Overlaps(c.Rect) {
			continue
		}
		c.Taken = true

		value, points := scoring.CoinValue, scoring.CoinCommon
		if c.Rare {
			value, points = scoring.RareCoinValue, scoring.CoinRare
		}
		s.AwardCoins(w, value, true)
		w.AddScore(points)
		w.Emit(CoinEvent{Rare: c.Rare, Value: value})
	}
}

// UsePortals teleports the player to the target height of a touched portal
func (s *ProgressionSystem) UsePortals(w *World) {
	for _, p := range w.Level.Portals {
		if w.Player.Overlaps(p.Rect) {
			w.Player.Y = p.TargetY
			w.Emit(PortalEvent{TargetY: p.TargetY})
		}
	}
}

// TouchCheckpoints stores the respawn point of every touched checkpoint.
// Score is awarded on every frame of contact.
func (s *ProgressionSystem) TouchCheckpoints(w *World) {
	offset := s.config.Progress.CheckpointOffset
	for _, cp := range w.Level.Checkpoints {
		if !w.Player.Overlaps(cp.Rect) {
			continue
		}
		respawn := entity.Point{X: cp.X, Y: cp.Y - offset}
		if !cp.Active {
			w.Emit(CheckpointEvent{Respawn: respawn})
		}
		cp.Active = true
		w.Player.Checkpoint = &respawn
		w.AddScore(s.config.Scoring.Checkpoint)
	}
}

// Reveal distances for hidden rooms, measured between top-left corners
const (
	revealDX = 80.0
	revealDY = 100.0
)

// RevealHiddenRooms opens hidden rooms the player comes close to
func (s *ProgressionSystem) RevealHiddenRooms(w *World) {
	p := w.Player
	for _, hr := range w.Level.HiddenRooms {
		if hr.Open {
			continue
		}
		if math.Abs(p.X-hr.X) < revealDX && math.Abs(p.Y-hr.Y) < revealDY {
			hr.Open = true
			w.Emit(HiddenRoomEvent{})
		}
	}
}

// TimeBonus returns the goal bonus for finishing after levelTime seconds
func (s *ProgressionSystem) TimeBonus(levelTime float64) int {
	scoring := s.config.Scoring
	lost := int(math.Floor(levelTime * float64(scoring.TimeBonusRate)))
	return max(0, scoring.TimeBonusMax-lost)
}

// CheckGoal completes the level when the player reaches the goal and no
// boss of this level is alive. Clearing the final level completes the run;
// otherwise the power mode cycles on every ModeCycleEvery-th level.
func (s *ProgressionSystem) CheckGoal(w *World) state.StepResult {
	if !w.Player.Overlaps(w.Level.Goal) {
		return state.Continue
	}
	if w.Level.IsBoss && w.Level.BossAlive() {
		return state.Continue
	}

	prog := w.Progress
	maxLevel := s.config.World.MaxLevel()
	bonus := s.TimeBonus(w.LevelTime)

	w.AddScore(s.config.Scoring.GoalBase + bonus)
	prog.Unlocked = max(prog.Unlocked, min(prog.Level+1, maxLevel))
	w.Emit(LevelCompleteEvent{Level: prog.Level, TimeBonus: bonus})

	if prog.Level >= maxLevel {
		return state.RunComplete
	}

	if prog.Level%s.config.Progress.ModeCycleEvery == 0 {
		prog.Mode = prog.Mode.Next()
	}
	return state.LevelComplete
}
