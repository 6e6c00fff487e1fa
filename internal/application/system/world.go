package system

import (
	"github.com/younwookim/neotower/internal/application/state"
	"github.com/younwookim/neotower/internal/domain/entity"
	"github.com/younwookim/neotower/internal/infrastructure/config"
)

// World is the per-session simulation context handed to every system.
// It is owned by the session; systems never keep references to it.
type World struct {
	Config   *config.GameConfig
	Player   *entity.Player
	Level    *entity.Level
	Progress *entity.RunProgress

	Combo     int
	BossPhase int
	LevelTime float64 // seconds since the level started
	TotalTime float64 // seconds since the session started, drives platforms

	// Cause is the reason for the most recent life loss
	Cause state.DeathCause

	events []Event
}

// NewWorld creates a world for the given progress with a player sized for
// its power mode. Level is nil until the session starts one.
func NewWorld(cfg *config.GameConfig, progress *entity.RunProgress) *World {
	return &World{
		Config:   cfg,
		Player:   entity.NewPlayer(cfg.Player.SpawnX, 0, PlayerSize(cfg, progress.Mode), cfg.Player.HitPoints),
		Progress: progress,
	}
}

// PlayerSize returns the body size for a power mode
func PlayerSize(cfg *config.GameConfig, mode entity.PowerMode) entity.Size {
	s := cfg.Player.Sizes.Normal
	if mode == entity.PowerGiant {
		s = cfg.Player.Sizes.Giant
	}
	return entity.Size{W: s.Width, H: s.Height}
}

// AdvanceTimers accumulates level/session time and counts player timers
// down, never below zero.
func (w *World) AdvanceTimers(dt float64) {
	w.LevelTime += dt
	w.TotalTime += dt
	w.Player.AttackCooldown = max(0, w.Player.AttackCooldown-dt)
	w.Player.SlideTimer = max(0, w.Player.SlideTimer-dt)
}

// Hit records a life loss and returns the step result that ends the frame
func (w *World) Hit(cause state.DeathCause) state.StepResult {
	w.Cause = cause
	w.Emit(HitEvent{Cause: cause})
	return state.LifeLost
}

// AddScore adds points to the run score
func (w *World) AddScore(points int) {
	w.Progress.Score += points
}

// Emit queues an event for the session to deliver after the step
func (w *World) Emit(e Event) {
	w.events = append(w.events, e)
}

// DrainEvents returns queued events and clears the queue
func (w *World) DrainEvents() []Event {
	events := w.events
	w.events = nil
	return events
}
