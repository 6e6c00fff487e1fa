package entity

import "math"

// HazardKind represents the type of a hazard
type HazardKind int

const (
	HazardSpike HazardKind = iota
	HazardLava
	HazardFireball
)

// String returns the hazard kind name
func (k HazardKind) String() string {
	switch k {
	case HazardSpike:
		return "spike"
	case HazardLava:
		return "lava"
	case HazardFireball:
		return "fireball"
	default:
		return "unknown"
	}
}

// Platform is a one-way solid the player can land on from above
type Platform struct {
	Rect
	Moving    bool
	BaseX     float64
	Amplitude float64
	Speed     float64 // oscillation phase speed (radians per second)
}

// Animate positions a moving platform for the given total game time.
// Static platforms are left untouched.
func (p *Platform) Animate(totalTime float64) {
	if !p.Moving {
		return
	}
	p.X = p.BaseX + math.Sin(totalTime*p.Speed)*p.Amplitude
}

// Hazard kills the player on contact
type Hazard struct {
	Rect
	Kind HazardKind
	VY   float64 // fall speed per frame, fireballs only
	Dead bool
}

// Coin is a collectible worth currency and score
type Coin struct {
	Rect
	Rare  bool
	Taken bool
}

// Portal teleports the player vertically to TargetY
type Portal struct {
	Rect
	TargetY float64
}

// Checkpoint is a mid-level respawn anchor
type Checkpoint struct {
	Rect
	Active bool
}

// HiddenRoom is secret content revealed when the player comes near
type HiddenRoom struct {
	Rect
	Open bool
}

// Level is the generated layout of a single level.
// Platforms, portals and the goal never change after generation apart from
// moving platform positions; coins, enemies and hazards mutate during play.
type Level struct {
	Number int
	World  int
	Theme  Theme
	Height float64

	Platforms   []*Platform
	Hazards     []*Hazard
	Coins       []*Coin
	Enemies     []*Enemy
	Portals     []*Portal
	Checkpoints []*Checkpoint
	HiddenRooms []*HiddenRoom
	Goal        Rect
	IsBoss      bool

	nextID EntityID
}

// NextID returns a fresh entity ID for this level
func (l *Level) NextID() EntityID {
	l.nextID++
	return l.nextID
}

// BossAlive returns true while a boss enemy of this level has not been killed
func (l *Level) BossAlive() bool {
	for _, e := range l.Enemies {
		if e.Boss && !e.Dead {
			return true
		}
	}
	return false
}

// Boss returns the first living boss, or nil
func (l *Level) Boss() *Enemy {
	for _, e := range l.Enemies {
		if e.Boss && !e.Dead {
			return e
		}
	}
	return nil
}

// PurgeDeadEnemies drops dead enemies and projectiles, preserving order
func (l *Level) PurgeDeadEnemies() {
	alive := l.Enemies[:0]
	for _, e := range l.Enemies {
		if !e.Dead {
			alive = append(alive, e)
		}
	}
	for i := len(alive); i < len(l.Enemies); i++ {
		l.Enemies[i] = nil
	}
	l.Enemies = alive
}

// PurgeDeadHazards drops expired fireballs, preserving order
func (l *Level) PurgeDeadHazards() {
	alive := l.Hazards[:0]
	for _, h := range l.Hazards {
		if !h.Dead {
			alive = append(alive, h)
		}
	}
	for i := len(alive); i < len(l.Hazards); i++ {
		l.Hazards[i] = nil
	}
	l.Hazards = alive
}

// CoinsLeft returns the number of coins not yet taken
func (l *Level) CoinsLeft() int {
	n := 0
	for _, c := range l.Coins {
		if !c.Taken {
			n++
		}
	}
	return n
}
