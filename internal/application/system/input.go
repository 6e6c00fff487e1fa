package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/neotower/internal/domain/entity"
	"github.com/younwookim/neotower/internal/infrastructure/config"
)

// Key bindings for each intent
var (
	leftKeys   = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys  = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys   = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace}
	slideKeys  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	attackKeys = []ebiten.Key{ebiten.KeyX, ebiten.KeyK}
)

// InputSystem handles player input
type InputSystem struct {
	config *config.GameConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.GameConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState holds the five held intents for one frame
type InputState struct {
	Left   bool
	Right  bool
	Jump   bool
	Slide  bool
	Attack bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:   anyPressed(leftKeys),
		Right:  anyPressed(rightKeys),
		Jump:   anyPressed(jumpKeys),
		Slide:  anyPressed(slideKeys),
		Attack: anyPressed(attackKeys),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// UpdatePlayer applies one frame of input to the player
func (s *InputSystem) UpdatePlayer(w *World, input InputState) {
	p := w.Player

	s.handleMovement(p, input)
	s.handleSlide(w, input)
	s.handleJump(w, input)

	if input.Attack {
		s.handleAttack(w)
	}
}

// handleMovement accelerates the player; sliding reduces acceleration
func (s *InputSystem) handleMovement(player *entity.Player, input InputState) {
	accel := s.config.Player.Speed
	if player.IsSliding() {
		accel = s.config.Player.SlideAccel
	}

	if input.Left {
		player.VX -= accel
		player.Facing = -1
	}
	if input.Right {
		player.VX += accel
		player.Facing = 1
	}
}

// handleSlide starts a slide when running fast enough on the ground
func (s *InputSystem) handleSlide(w *World, input InputState) {
	p := w.Player
	if !input.Slide || !p.OnGround || p.IsSliding() {
		return
	}
	if math.Abs(p.VX) <= s.config.Player.SlideMinSpeed {
		return
	}

	p.SlideTimer = s.config.Player.SlideDuration
	w.Emit(SlideEvent{})
}

// handleJump handles jumping. The jump latch makes a held key jump once;
// charges refill only on landing.
func (s *InputSystem) handleJump(w *World, input InputState) {
	p := w.Player

	if input.Jump && p.JumpsLeft > 0 && !p.JumpLock {
		p.VY = -s.config.Player.JumpPower
		p.JumpsLeft--
		p.JumpLock = true
		w.Emit(JumpEvent{JumpsLeft: p.JumpsLeft})
	}
	if !input.Jump {
		p.JumpLock = false
	}
}

// handleAttack spends the cooldown; in Fire mode it launches a projectile
func (s *InputSystem) handleAttack(w *World) {
	p := w.Player
	if !p.CanAttack() {
		return
	}
	p.AttackCooldown = s.config.Player.AttackCooldown

	if p.Mode != entity.PowerFire {
		w.Emit(AttackEvent{})
		return
	}

	proj := s.config.Player.Projectile
	w.Level.Enemies = append(w.Level.Enemies, entity.NewPlayerFire(
		w.Level.NextID(),
		p,
		proj.Speed,
		entity.Size{W: proj.Size.Width, H: proj.Size.Height},
		proj.OffsetY,
	))
	w.Emit(AttackEvent{Fired: true})
}
