package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/neotower/internal/application/state"
	"github.com/younwookim/neotower/internal/domain/entity"
	"github.com/younwookim/neotower/internal/infrastructure/config"
)

// quietConfig disables random hopper jumps and boss fireballs
func quietConfig() *config.GameConfig {
	cfg := config.Default()
	cfg.Enemies.Hopper.JumpChance = 0
	cfg.Enemies.Boss.FireballChance = 0
	return cfg
}

func TestCombat_StompKillsEnemy(t *testing.T) {
	cfg := quietConfig()
	combat := NewCombatSystem(cfg, testRNG())
	w := newTestWorld(cfg)
	p := w.Player
	p.VY = 2.0

	e := addEnemy(w, entity.KindWalker, entity.Rect{X: p.X + 4, Y: p.Bottom() - 10, W: 20, H: 20}, 0, 1)

	result := combat.Update(w, 1.0/60.0)

	assert.Equal(t, state.Continue, result)
	assert.True(t, e.Dead)
	assert.Equal(t, -6.0, p.VY)
	assert.Equal(t, 60, w.Progress.Score)
	assert.Empty(t, w.Level.Enemies, "dead enemies are purged")
	assert.Equal(t, []Event{StompEvent{Kind: entity.KindWalker}}, w.DrainEvents())
}

func TestCombat_ContactCostsLifeAndShortCircuits(t *testing.T) {
	cfg := quietConfig()
	combat := NewCombatSystem(cfg, testRNG())
	w := newTestWorld(cfg)
	p := w.Player
	p.VY = 1.5

	first := addEnemy(w, entity.KindWalker, entity.Rect{X: p.X, Y: p.Y, W: 20, H: 20}, 0, 1)
	second := addEnemy(w, entity.KindWalker, entity.Rect{X: p.X + 2, Y: p.Y, W: 20, H: 20}, 0, 1)

	result := combat.Update(w, 0.05)

	assert.Equal(t, state.LifeLost, result)
	assert.Equal(t, state.CauseEnemy, w.Cause)
	assert.Equal(t, 0.05, first.Age)
	assert.Zero(t, second.Age, "enemies after the fatal contact are not updated")
	assert.False(t, first.Dead)
	assert.Len(t, w.Level.Enemies, 2)
	assert.Equal(t, []Event{HitEvent{Cause: state.CauseEnemy}}, w.DrainEvents())
}

func TestCombat_BossCannotBeStomped(t *testing.T) {
	cfg := quietConfig()
	combat := NewCombatSystem(cfg, testRNG())
	w := newTestWorld(cfg)
	p := w.Player
	p.VY = 8

	boss := addEnemy(w, entity.KindMainBoss, entity.Rect{X: p.X, Y: p.Y, W: 70, H: 70}, 0, 17)

	assert.Equal(t, state.LifeLost, combat.Update(w, 0.016))
	assert.False(t, boss.Dead)
	assert.Equal(t, 8.0, p.VY)
}

func TestCombat_EdgeReversal(t *testing.T) {
	cfg := quietConfig()
	combat := NewCombatSystem(cfg, testRNG())

	tests := []struct {
		name   string
		kind   entity.Kind
		x, vx  float64
		w      float64
		wantVX float64
	}{
		{"walker at left inset", entity.KindWalker, 12.5, -1, 20, 1},
		{"walker at right inset", entity.KindWalker, 448, 1, 20, -1},
		{"walker in the open", entity.KindWalker, 200, 1, 20, 1},
		{"boss inside its inset", entity.KindMainBoss, 14, -1, 70, 1},
		{"boss past both insets reverses once", entity.KindMainBoss, 5, -1, 70, 1},
		{"boss at right inset", entity.KindMainBoss, 390, 1, 70, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(cfg)
			w.Player.X = 0
			w.Player.Y = 0
			e := addEnemy(w, tt.kind, entity.Rect{X: tt.x, Y: 600, W: tt.w, H: 20}, tt.vx, 17)

			combat.Update(w, 0.016)

			assert.Equal(t, tt.wantVX, e.VX)
		})
	}
}

func TestCombat_FlyerBobs(t *testing.T) {
	cfg := quietConfig()
	combat := NewCombatSystem(cfg, testRNG())
	w := newTestWorld(cfg)

	bat := addEnemy(w, entity.KindBat, entity.Rect{X: 200, Y: 400, W: 20, H: 20}, 1, 1)

	combat.Update(w, 0.5)

	assert.Equal(t, 201.0, bat.X)
	assert.InDelta(t, 400+math.Sin(1.5)*0.7, bat.Y, 1e-9)
}

func TestCombat_HopperClampsToFloor(t *testing.T) {
	cfg := quietConfig()
	cfg.Enemies.Hopper.JumpChance = 1
	combat := NewCombatSystem(cfg, testRNG())
	w := newTestWorld(cfg)

	slime := addEnemy(w, entity.KindSlime, entity.Rect{X: 200, Y: 942, W: 20, H: 20}, 0.5, 1)

	combat.Update(w, 0.016)
	// jump impulse then gravity: -5.5 + 0.52*0.4
	assert.InDelta(t, -5.292, slime.VY, 1e-9)
	assert.InDelta(t, 942-5.292, slime.Y, 1e-9)

	cfg.Enemies.Hopper.JumpChance = 0
	slime.Y = 945
	slime.VY = 3
	combat.Update(w, 0.016)
	assert.Equal(t, 942.0, slime.Y)
	assert.Zero(t, slime.VY)
}

func TestCombat_BossPhasesAndFireballs(t *testing.T) {
	cfg := quietConfig()
	cfg.Enemies.Boss.FireballChance = 1
	combat := NewCombatSystem(cfg, testRNG())
	w := newTestWorld(cfg)

	boss := addEnemy(w, entity.KindMainBoss, entity.Rect{X: 200, Y: 180, W: 70, H: 70}, 0, 17)

	combat.Update(w, 0.016)
	assert.Zero(t, w.BossPhase)
	assert.Empty(t, w.Level.Hazards)

	boss.HP = 9
	combat.Update(w, 0.016)
	assert.Equal(t, 1, w.BossPhase)
	require.Len(t, w.Level.Hazards, 1)
	fb := w.Level.Hazards[0]
	assert.Equal(t, entity.HazardFireball, fb.Kind)
	assert.Equal(t, entity.Rect{X: 235, Y: 250, W: 10, H: 14}, fb.Rect)
	assert.Equal(t, 3.5, fb.VY)

	boss.HP = 4
	combat.Update(w, 0.016)
	assert.Equal(t, 2, w.BossPhase)
	require.Len(t, w.Level.Hazards, 2)
	assert.Equal(t, 4.5, w.Level.Hazards[1].VY)

	var phases []int
	for _, e := range w.DrainEvents() {
		if bp, ok := e.(BossPhaseEvent); ok {
			phases = append(phases, bp.Phase)
		}
	}
	assert.Equal(t, []int{1, 2}, phases)
}

func TestCombat_ProjectileKillsEnemy(t *testing.T) {
	cfg := quietConfig()
	combat := NewCombatSystem(cfg, testRNG())
	w := newTestWorld(cfg)

	walker := addEnemy(w, entity.KindWalker, entity.Rect{X: 300, Y: 400, W: 20, H: 20}, 0, 1)
	proj := addEnemy(w, entity.KindPlayerFire, entity.Rect{X: 290, Y: 405, W: 10, H: 6}, 5.2, 1)

	assert.Equal(t, state.Continue, combat.Update(w, 0.016))

	assert.True(t, walker.Dead)
	assert.True(t, proj.Dead)
	assert.Equal(t, 120, w.Progress.Score)
	assert.Empty(t, w.Level.Enemies)
}

func TestCombat_ProjectileHitsEveryOverlappedEnemy(t *testing.T) {
	cfg := quietConfig()
	combat := NewCombatSystem(cfg, testRNG())
	w := newTestWorld(cfg)

	boss := addEnemy(w, entity.KindMainBoss, entity.Rect{X: 200, Y: 180, W: 70, H: 70}, 0, 17)
	walker := addEnemy(w, entity.KindWalker, entity.Rect{X: 230, Y: 200, W: 20, H: 20}, 0, 1)
	proj := addEnemy(w, entity.KindPlayerFire, entity.Rect{X: 230, Y: 205, W: 10, H: 6}, 0.5, 1)

	combat.Update(w, 0.016)

	assert.Equal(t, 16, boss.HP)
	assert.True(t, walker.Dead, "both overlapped enemies take the hit")
	assert.True(t, proj.Dead, "projectile is spent after the frame")
	assert.Equal(t, 120, w.Progress.Score)
	require.Len(t, w.Level.Enemies, 1)
	assert.Same(t, boss, w.Level.Enemies[0])
}

func TestCombat_ProjectileKillsTwoWalkers(t *testing.T) {
	cfg := quietConfig()
	combat := NewCombatSystem(cfg, testRNG())
	w := newTestWorld(cfg)

	a := addEnemy(w, entity.KindWalker, entity.Rect{X: 220, Y: 400, W: 20, H: 20}, 0, 1)
	b := addEnemy(w, entity.KindWalker, entity.Rect{X: 225, Y: 400, W: 20, H: 20}, 0, 1)
	addEnemy(w, entity.KindPlayerFire, entity.Rect{X: 228, Y: 405, W: 10, H: 6}, 0.5, 1)

	combat.Update(w, 0.016)

	assert.True(t, a.Dead)
	assert.True(t, b.Dead)
	assert.Equal(t, 240, w.Progress.Score)
	assert.Empty(t, w.Level.Enemies)
}

func TestCombat_BossKillAward(t *testing.T) {
	cfg := quietConfig()
	combat := NewCombatSystem(cfg, testRNG())
	w := newTestWorld(cfg)

	boss := addEnemy(w, entity.KindMainBoss, entity.Rect{X: 200, Y: 180, W: 70, H: 70}, 0, 1)
	addEnemy(w, entity.KindPlayerFire, entity.Rect{X: 230, Y: 205, W: 10, H: 6}, 0.5, 1)

	combat.Update(w, 0.016)

	assert.True(t, boss.Dead)
	assert.Equal(t, 900, w.Progress.Score)
	assert.False(t, w.Level.BossAlive())
	assert.Contains(t, w.DrainEvents(), Event(EnemyKilledEvent{Kind: entity.KindMainBoss, Boss: true}))
}

func TestCombat_ProjectileLeavesScreen(t *testing.T) {
	cfg := quietConfig()
	combat := NewCombatSystem(cfg, testRNG())
	w := newTestWorld(cfg)

	proj := addEnemy(w, entity.KindPlayerFire, entity.Rect{X: 508, Y: 100, W: 10, H: 6}, 5.2, 1)

	combat.Update(w, 0.016)

	assert.True(t, proj.Dead)
	assert.Empty(t, w.Level.Enemies)
}

func TestCombat_ProjectileIgnoresPlayer(t *testing.T) {
	cfg := quietConfig()
	combat := NewCombatSystem(cfg, testRNG())
	w := newTestWorld(cfg)
	p := w.Player

	addEnemy(w, entity.KindPlayerFire, entity.Rect{X: p.X + 5, Y: p.Y + 8, W: 10, H: 6}, 0.1, 1)

	assert.Equal(t, state.Continue, combat.Update(w, 0.016))
	assert.Len(t, w.Level.Enemies, 1)
}

func TestCombat_HazardContact(t *testing.T) {
	cfg := quietConfig()
	combat := NewCombatSystem(cfg, testRNG())
	w := newTestWorld(cfg)
	p := w.Player

	w.Level.Hazards = []*entity.Hazard{
		{Rect: entity.Rect{X: 300, Y: 100, W: 20, H: 10}, Kind: entity.HazardSpike},
		{Rect: entity.Rect{X: p.X, Y: p.Y, W: 20, H: 10}, Kind: entity.HazardSpike},
		{Rect: entity.Rect{X: 10, Y: 10, W: 10, H: 14}, Kind: entity.HazardFireball, VY: 3},
	}

	assert.Equal(t, state.LifeLost, combat.UpdateHazards(w))
	assert.Equal(t, state.CauseHazard, w.Cause)
	assert.Equal(t, 10.0, w.Level.Hazards[2].Y, "hazards after the fatal one are not evaluated")
}

func TestCombat_FireballsFallAndExpire(t *testing.T) {
	cfg := quietConfig()
	combat := NewCombatSystem(cfg, testRNG())
	w := newTestWorld(cfg)
	w.Player.X = 400

	w.Level.Hazards = []*entity.Hazard{
		{Rect: entity.Rect{X: 10, Y: 1098, W: 10, H: 14}, Kind: entity.HazardFireball, VY: 3},
		{Rect: entity.Rect{X: 50, Y: 100, W: 10, H: 14}, Kind: entity.HazardFireball, VY: 3},
		{Rect: entity.Rect{X: 90, Y: 100, W: 20, H: 10}, Kind: entity.HazardSpike},
	}

	assert.Equal(t, state.Continue, combat.UpdateHazards(w))

	require.Len(t, w.Level.Hazards, 2)
	assert.Equal(t, 103.0, w.Level.Hazards[0].Y)
	assert.Equal(t, entity.HazardSpike, w.Level.Hazards[1].Kind)
}

func TestCombat_ExpiringFireballStillHits(t *testing.T) {
	cfg := quietConfig()
	combat := NewCombatSystem(cfg, testRNG())
	w := newTestWorld(cfg)
	w.Player.X = 10
	w.Player.Y = 1090

	w.Level.Hazards = []*entity.Hazard{
		{Rect: entity.Rect{X: 10, Y: 1098, W: 10, H: 14}, Kind: entity.HazardFireball, VY: 3},
	}

	assert.Equal(t, state.LifeLost, combat.UpdateHazards(w))
	assert.Equal(t, state.CauseHazard, w.Cause)
	assert.Empty(t, w.Level.Hazards, "expired fireball is purged after the hit")
}

func TestCombat_Deterministic(t *testing.T) {
	run := func() []float64 {
		cfg := config.Default()
		combat := NewCombatSystem(cfg, testRNG())
		lvl, err := GenerateLevel(cfg, 30)
		require.NoError(t, err)
		w := newTestWorld(cfg)
		w.Level = lvl
		w.Player.X = 0
		w.Player.Y = 0
		w.Level.Boss().HP = 3

		for i := 0; i < 300; i++ {
			combat.UpdateHazards(w)
			combat.Update(w, 1.0/60.0)
		}
		var ys []float64
		for _, e := range w.Level.Enemies {
			ys = append(ys, e.Y)
		}
		for _, h := range w.Level.Hazards {
			ys = append(ys, h.Y)
		}
		return ys
	}

	assert.Equal(t, run(), run())
}
