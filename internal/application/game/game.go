// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/neotower/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	// dt is the fixed step used when set; otherwise the elapsed wall time
	// between updates is passed to the scene.
	dt   float64
	now  func() time.Time
	last time.Time
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		now:     time.Now,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.frameTime())
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// frameTime returns the seconds since the previous update. The first
// update uses one tick at the current TPS.
func (g *Game) frameTime() float64 {
	if g.dt > 0 {
		return g.dt
	}
	t := g.now()
	defer func() { g.last = t }()
	if g.last.IsZero() {
		return 1.0 / float64(ebiten.TPS())
	}
	return t.Sub(g.last).Seconds()
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT fixes the delta time used for updates.
// Zero restores wall clock timing.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetClock replaces the wall clock used to measure frame time
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}

// Close exits the current scene. Call it once the ebiten loop returns.
func (g *Game) Close() {
	g.current.OnExit()
}
