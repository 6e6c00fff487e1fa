package system

import (
	"github.com/younwookim/neotower/internal/domain/entity"
	"github.com/younwookim/neotower/internal/infrastructure/config"
)

// PhysicsSystem integrates player motion and resolves one-way platforms.
// Velocities are per frame; only timers scale with dt.
type PhysicsSystem struct {
	config *config.GameConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.GameConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Update applies friction and gravity, moves the player, clamps it to the
// screen and lands it on platforms.
func (s *PhysicsSystem) Update(w *World) {
	p := w.Player

	p.VX *= s.config.Physics.Friction
	p.VY += s.config.Physics.Gravity
	p.X += p.VX
	p.Y += p.VY

	// Walls stop the body but keep its momentum.
	p.X = entity.Clamp(p.X, 0, float64(s.config.Display.ScreenWidth)-p.W)

	s.resolvePlatforms(w)
}

// resolvePlatforms animates moving platforms for this frame and lands the
// player on any platform whose top it crossed while falling.
func (s *PhysicsSystem) resolvePlatforms(w *World) {
	p := w.Player
	p.OnGround = false

	for _, pl := range w.Level.Platforms {
		pl.Animate(w.TotalTime)

		prevBottom := p.Bottom() - p.VY
		currBottom := p.Bottom()
		if p.Right() > pl.X && p.X < pl.Right() &&
			prevBottom <= pl.Y && currBottom >= pl.Y && p.VY >= 0 {
			p.Land(pl.Y, s.config.Player.MaxJumps)
		}
	}
}

// FellOut reports whether the player dropped below the level
func (s *PhysicsSystem) FellOut(w *World) bool {
	return w.Player.Y > w.Level.Height+s.config.Physics.FallMargin
}
