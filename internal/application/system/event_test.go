package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/neotower/internal/application/state"
)

func TestEvents_ImplementEvent(t *testing.T) {
	events := []Event{
		JumpEvent{}, SlideEvent{}, AttackEvent{}, CoinEvent{}, ComboEvent{},
		ExtraLifeEvent{}, PortalEvent{}, CheckpointEvent{}, HiddenRoomEvent{},
		StompEvent{}, EnemyKilledEvent{}, BossPhaseEvent{}, HitEvent{},
		LevelStartEvent{}, LevelCompleteEvent{}, RunCompleteEvent{}, RunResetEvent{},
	}

	for _, e := range events {
		e.isEvent() // Should not panic
	}
}

func TestWorld_EventQueue(t *testing.T) {
	w := &World{}

	w.Emit(JumpEvent{JumpsLeft: 1})
	w.Emit(CoinEvent{Value: 1})

	assert.Equal(t, []Event{JumpEvent{JumpsLeft: 1}, CoinEvent{Value: 1}}, w.DrainEvents())
	assert.Empty(t, w.DrainEvents())
}

func TestWorld_Hit(t *testing.T) {
	w := &World{}

	assert.Equal(t, state.LifeLost, w.Hit(state.CauseFall))
	assert.Equal(t, state.CauseFall, w.Cause)
	assert.Equal(t, []Event{HitEvent{Cause: state.CauseFall}}, w.DrainEvents())
}
