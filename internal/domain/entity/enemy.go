package entity

// Category selects the behavior pattern an enemy follows
type Category int

const (
	CategoryWalker Category = iota
	CategoryFlyer
	CategoryHopper
	CategoryBoss
	CategoryProjectile // player-fired, only damages enemies
)

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryWalker:
		return "Walker"
	case CategoryFlyer:
		return "Flyer"
	case CategoryHopper:
		return "Hopper"
	case CategoryBoss:
		return "Boss"
	case CategoryProjectile:
		return "Projectile"
	default:
		return "Unknown"
	}
}

// Kind identifies an enemy type
type Kind int

// Seeded kinds, in generation order. The generator picks
// EnemyKinds[(index+world+level) % len(EnemyKinds)].
const (
	KindWalker Kind = iota
	KindBat
	KindSpiky
	KindSlime
	KindFirePlant
	KindNightGhost
	KindLancer
	KindMole
	KindCrawler
	KindWisp
	KindGolem
	KindSentinel
	KindOrbiter
	KindSpider
	KindBomber
	KindNinja
	KindKnight
	KindTurret
	KindShade
	KindRogue

	// Not seeded by platform index
	KindMainBoss
	KindPlayerFire

	kindCount
)

type kindInfo struct {
	name     string
	category Category
}

var kindTable = [kindCount]kindInfo{
	KindWalker:     {"Walker", CategoryWalker},
	KindBat:        {"Bat", CategoryFlyer},
	KindSpiky:      {"Spiky", CategoryWalker},
	KindSlime:      {"Slime", CategoryHopper},
	KindFirePlant:  {"FirePlant", CategoryWalker},
	KindNightGhost: {"NightGhost", CategoryFlyer},
	KindLancer:     {"Lancer", CategoryWalker},
	KindMole:       {"Mole", CategoryWalker},
	KindCrawler:    {"Crawler", CategoryWalker},
	KindWisp:       {"Wisp", CategoryFlyer},
	KindGolem:      {"Golem", CategoryWalker},
	KindSentinel:   {"Sentinel", CategoryWalker},
	KindOrbiter:    {"Orbiter", CategoryWalker},
	KindSpider:     {"Spider", CategoryHopper},
	KindBomber:     {"Bomber", CategoryWalker},
	KindNinja:      {"Ninja", CategoryWalker},
	KindKnight:     {"Knight", CategoryWalker},
	KindTurret:     {"Turret", CategoryWalker},
	KindShade:      {"Shade", CategoryWalker},
	KindRogue:      {"Rogue", CategoryWalker},
	KindMainBoss:   {"MainBoss", CategoryBoss},
	KindPlayerFire: {"PlayerFire", CategoryProjectile},
}

// EnemyKinds is the ordered list of kinds placed by the level generator
var EnemyKinds = []Kind{
	KindWalker, KindBat, KindSpiky, KindSlime, KindFirePlant, KindNightGhost, KindLancer, KindMole,
	KindCrawler, KindWisp, KindGolem, KindSentinel, KindOrbiter, KindSpider, KindBomber, KindNinja,
	KindKnight, KindTurret, KindShade, KindRogue,
}

// String returns the kind name
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Unknown"
	}
	return kindTable[k].name
}

// Category returns the behavior category of the kind
func (k Kind) Category() Category {
	if k < 0 || k >= kindCount {
		return CategoryWalker
	}
	return kindTable[k].category
}

// Enemy represents an enemy entity. Player projectiles share this type
// (Friendly set) so that combat iterates a single ordered container.
type Enemy struct {
	ID EntityID
	Rect
	VX, VY float64

	Kind     Kind
	HP       int
	MaxHP    int
	Age      float64 // seconds alive, drives flyer bobbing
	Dead     bool
	Boss     bool
	Friendly bool
}

// NewEnemy creates a new enemy of the given kind
func NewEnemy(id EntityID, kind Kind, bounds Rect, vx float64, hp int) *Enemy {
	cat := kind.Category()
	return &Enemy{
		ID:       id,
		Rect:     bounds,
		VX:       vx,
		Kind:     kind,
		HP:       hp,
		MaxHP:    hp,
		Boss:     cat == CategoryBoss,
		Friendly: cat == CategoryProjectile,
	}
}

// Category returns the behavior category of the enemy
func (e *Enemy) Category() Category {
	return e.Kind.Category()
}

// TakeDamage applies damage and returns true when it was lethal
func (e *Enemy) TakeDamage(damage int) bool {
	e.HP -= damage
	return e.HP <= 0
}

// IsAlive returns true if enemy has not been killed this frame or earlier
func (e *Enemy) IsAlive() bool {
	return !e.Dead
}
