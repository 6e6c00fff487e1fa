package entity

// NewPlayerFire creates a player-fired projectile centered on the player's
// body, travelling horizontally in the facing direction.
func NewPlayerFire(id EntityID, p *Player, speed float64, size Size, offsetY float64) *Enemy {
	bounds := Rect{
		X: p.X + p.W/2,
		Y: p.Y + offsetY,
		W: size.W,
		H: size.H,
	}
	return NewEnemy(id, KindPlayerFire, bounds, float64(p.Facing)*speed, 1)
}

// OffScreen reports whether a projectile has left the horizontal play area
// by more than margin.
func (e *Enemy) OffScreen(screenW, margin float64) bool {
	return e.X < -margin || e.X > screenW+margin
}
