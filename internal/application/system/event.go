package system

import (
	"github.com/younwookim/neotower/internal/application/state"
	"github.com/younwookim/neotower/internal/domain/entity"
)

// Event is a discrete gameplay notification consumed by audio and HUD
type Event interface {
	isEvent()
}

// JumpEvent fires when the player leaves the ground or air-jumps
type JumpEvent struct {
	JumpsLeft int
}

func (JumpEvent) isEvent() {}

// SlideEvent fires when a slide starts
type SlideEvent struct{}

func (SlideEvent) isEvent() {}

// AttackEvent fires when the attack cooldown is spent.
// Fired is set when a projectile was spawned.
type AttackEvent struct {
	Fired bool
}

func (AttackEvent) isEvent() {}

// CoinEvent fires on coin pickup
type CoinEvent struct {
	Rare  bool
	Value int
}

func (CoinEvent) isEvent() {}

// ComboEvent fires when a combo bonus is paid
type ComboEvent struct {
	Length int
	Bonus  int
}

func (ComboEvent) isEvent() {}

// ExtraLifeEvent fires when currency converts into a life
type ExtraLifeEvent struct {
	Lives int
}

func (ExtraLifeEvent) isEvent() {}

// PortalEvent fires when the player is teleported
type PortalEvent struct {
	TargetY float64
}

func (PortalEvent) isEvent() {}

// CheckpointEvent fires when a checkpoint becomes active
type CheckpointEvent struct {
	Respawn entity.Point
}

func (CheckpointEvent) isEvent() {}

// HiddenRoomEvent fires when a hidden room opens
type HiddenRoomEvent struct{}

func (HiddenRoomEvent) isEvent() {}

// StompEvent fires when the player kills an enemy from above
type StompEvent struct {
	Kind entity.Kind
}

func (StompEvent) isEvent() {}

// EnemyKilledEvent fires when a projectile kills an enemy
type EnemyKilledEvent struct {
	Kind entity.Kind
	Boss bool
}

func (EnemyKilledEvent) isEvent() {}

// BossPhaseEvent fires when the boss enters a harder phase
type BossPhaseEvent struct {
	Phase int
}

func (BossPhaseEvent) isEvent() {}

// HitEvent fires when the player loses a life
type HitEvent struct {
	Cause state.DeathCause
}

func (HitEvent) isEvent() {}

// LevelStartEvent fires after a level is generated and the player spawned
type LevelStartEvent struct {
	Level int
	World int
}

func (LevelStartEvent) isEvent() {}

// LevelCompleteEvent fires when the goal is reached
type LevelCompleteEvent struct {
	Level     int
	TimeBonus int
}

func (LevelCompleteEvent) isEvent() {}

// RunCompleteEvent fires when the final level is cleared
type RunCompleteEvent struct {
	Time float64 // seconds
}

func (RunCompleteEvent) isEvent() {}

// RunResetEvent fires when the last life is lost and the run restarts
type RunResetEvent struct{}

func (RunResetEvent) isEvent() {}
