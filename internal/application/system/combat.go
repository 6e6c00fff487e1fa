package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/neotower/internal/application/state"
	"github.com/younwookim/neotower/internal/domain/entity"
	"github.com/younwookim/neotower/internal/infrastructure/config"
)

// CombatSystem moves hazards and enemies and resolves their contact with
// the player and with player projectiles.
type CombatSystem struct {
	config *config.GameConfig
	rng    *rand.Rand
}

// NewCombatSystem creates a new combat system. rng drives boss fireballs
// and hopper jumps; a seeded source makes a session replayable.
func NewCombatSystem(cfg *config.GameConfig, rng *rand.Rand) *CombatSystem {
	return &CombatSystem{
		config: cfg,
		rng:    rng,
	}
}

// UpdateHazards drops fireballs and checks hazard contact in insertion
// order. The first contact ends the step.
func (s *CombatSystem) UpdateHazards(w *World) state.StepResult {
	defer w.Level.PurgeDeadHazards()

	despawnY := w.Level.Height + s.config.Enemies.Boss.FireballDespawn
	for _, hz := range w.Level.Hazards {
		if hz.Kind == entity.HazardFireball {
			hz.Y += hz.VY
			if hz.Y > despawnY {
				hz.Dead = true
			}
		}
		if w.Player.Overlaps(hz.Rect) {
			return w.Hit(state.CauseHazard)
		}
	}
	return state.Continue
}

// Update runs enemy behaviour, then player contact, then projectile hits.
// A life lost on contact ends the step before any projectile is resolved.
// Dead enemies and projectiles are purged once the step is over.
func (s *CombatSystem) Update(w *World, dt float64) state.StepResult {
	defer w.Level.PurgeDeadEnemies()

	// Projectiles fired this frame are already in the list.
	for _, e := range w.Level.Enemies {
		if e.Dead {
			continue
		}
		e.Age += dt

		if e.Friendly {
			s.moveProjectile(e)
			continue
		}

		switch e.Category() {
		case entity.CategoryBoss:
			s.updateBoss(w, e)
		case entity.CategoryFlyer:
			s.updateFlyer(e)
		case entity.CategoryHopper:
			s.updateHopper(w, e)
		default:
			e.X += e.VX
		}

		if !e.Boss {
			s.bounceAtEdges(e, s.config.Enemies.EdgeInset)
		}

		if r := s.resolveContact(w, e); r.Halts() {
			return r
		}
	}

	s.resolveProjectiles(w)
	return state.Continue
}

func (s *CombatSystem) moveProjectile(e *entity.Enemy) {
	e.X += e.VX
	if e.OffScreen(float64(s.config.Display.ScreenWidth), s.config.Player.Projectile.Despawn) {
		e.Dead = true
	}
}

// updateBoss patrols the boss between its inset bounds, advances its phase
// and rolls for a fireball once phase 1 is reached.
func (s *CombatSystem) updateBoss(w *World, e *entity.Enemy) {
	bossCfg := s.config.Enemies.Boss

	e.X += e.VX
	s.bounceAtEdges(e, bossCfg.EdgeInset)

	phase := w.BossPhase
	if e.HP < bossCfg.Phase1HP {
		phase = max(phase, 1)
	}
	if e.HP < bossCfg.Phase2HP {
		phase = max(phase, 2)
	}
	if phase != w.BossPhase {
		w.BossPhase = phase
		w.Emit(BossPhaseEvent{Phase: phase})
	}

	if w.BossPhase >= 1 && s.rng.Float64() < bossCfg.FireballChance {
		w.Level.Hazards = append(w.Level.Hazards, &entity.Hazard{
			Rect: entity.Rect{
				X: e.X + e.W/2,
				Y: e.Y + e.H,
				W: bossCfg.FireballSize.Width,
				H: bossCfg.FireballSize.Height,
			},
			Kind: entity.HazardFireball,
			VY:   bossCfg.FireballBaseSpeed + float64(w.BossPhase),
		})
	}
}

func (s *CombatSystem) updateFlyer(e *entity.Enemy) {
	flyer := s.config.Enemies.Flyer
	e.X += e.VX
	e.Y += math.Sin(e.Age*flyer.BobFrequency) * flyer.BobAmplitude
}

func (s *CombatSystem) updateHopper(w *World, e *entity.Enemy) {
	hopper := s.config.Enemies.Hopper

	e.X += e.VX
	if s.rng.Float64() < hopper.JumpChance {
		e.VY = hopper.JumpImpulse
	}
	e.VY += s.config.Physics.Gravity * hopper.GravityScale
	e.Y += e.VY

	floor := w.Level.Height - hopper.FloorOffset
	if e.Y > floor {
		e.Y = floor
		e.VY = 0
	}
}

func (s *CombatSystem) bounceAtEdges(e *entity.Enemy, inset float64) {
	if e.X < inset || e.Right() > float64(s.config.Display.ScreenWidth)-inset {
		e.VX = -e.VX
	}
}

// resolveContact stomps a non-boss enemy when the player falls onto it
// fast enough; any other contact costs a life.
func (s *CombatSystem) resolveContact(w *World, e *entity.Enemy) state.StepResult {
	p := w.Player
	if !p.Overlaps(e.Rect) {
		return state.Continue
	}

	if p.VY > s.config.Enemies.StompSpeed && !e.Boss {
		e.Dead = true
		p.VY = s.config.Enemies.StompBounce
		w.AddScore(s.config.Scoring.Stomp)
		w.Emit(StompEvent{Kind: e.Kind})
		return state.Continue
	}

	return w.Hit(state.CauseEnemy)
}

// resolveProjectiles checks every live projectile against every live
// enemy. A projectile damages every enemy it overlaps this frame and is
// spent afterwards.
func (s *CombatSystem) resolveProjectiles(w *World) {
	for _, proj := range w.Level.Enemies {
		if !proj.Friendly || proj.Dead {
			continue
		}
		for _, e := range w.Level.Enemies {
			if e.Friendly || e.Dead {
				continue
			}
			if !proj.Overlaps(e.Rect) {
				continue
			}

			proj.Dead = true
			if e.TakeDamage(1) {
				e.Dead = true
				if e.Boss {
					w.AddScore(s.config.Scoring.BossKill)
				} else {
					w.AddScore(s.config.Scoring.ProjectileKill)
				}
				w.Emit(EnemyKilledEvent{Kind: e.Kind, Boss: e.Boss})
			}
		}
	}
}
