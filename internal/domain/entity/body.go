package entity

// Size is a width/height pair
type Size struct {
	W, H float64
}

// Player represents the player entity.
// Velocities are in world units per frame; timers are in seconds.
type Player struct {
	Rect
	VX, VY float64

	Facing    int // -1 left, 1 right
	OnGround  bool
	JumpsLeft int
	JumpLock  bool // set while jump is held so a single press jumps once
	HitPoints int
	Mode      PowerMode

	// Timers
	SlideTimer     float64
	AttackCooldown float64

	// Checkpoint is the respawn point stored by the last touched checkpoint.
	Checkpoint *Point
}

// NewPlayer creates a player at the given position
func NewPlayer(x, y float64, size Size, hitPoints int) *Player {
	return &Player{
		Rect:      Rect{X: x, Y: y, W: size.W, H: size.H},
		Facing:    1,
		HitPoints: hitPoints,
	}
}

// Respawn moves the player to (x, y) and clears its motion.
// Air jumps are refilled to maxJumps.
func (p *Player) Respawn(x, y float64, maxJumps int) {
	p.X = x
	p.Y = y
	p.VX = 0
	p.VY = 0
	p.JumpsLeft = maxJumps
}

// SetMode switches the power mode and resizes the body
func (p *Player) SetMode(mode PowerMode, size Size) {
	p.Mode = mode
	p.W = size.W
	p.H = size.H
}

// IsSliding returns true while a slide is running
func (p *Player) IsSliding() bool {
	return p.SlideTimer > 0
}

// CanAttack returns true once the attack cooldown has elapsed
func (p *Player) CanAttack() bool {
	return p.AttackCooldown <= 0
}

// Land snaps the player's feet onto a surface at y
func (p *Player) Land(y float64, maxJumps int) {
	p.Y = y - p.H
	p.VY = 0
	p.OnGround = true
	p.JumpsLeft = maxJumps
}

// Animation returns the animation name used by renderers
func (p *Player) Animation() string {
	if p.OnGround {
		if p.VX > 0.6 || p.VX < -0.6 {
			return "run"
		}
		return "idle"
	}
	if p.VY < 0 {
		return "jump"
	}
	return "fall"
}
