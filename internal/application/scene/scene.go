// Package scene defines the screen abstraction the game loop drives.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game, such as the tower run itself.
//
// The game loop hands every frame to the current scene and swaps scenes
// when Update returns a non-nil next scene.
type Scene interface {
	// Update advances the scene by dt seconds of wall time.
	// A non-nil next scene replaces this one; an error ends the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced or the game closes.
	// Recordings and watchers are released here.
	OnExit()
}
