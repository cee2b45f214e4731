package ski

import (
	"github.com/vovakirdan/tui-ski/internal/core"
)

// EntityKind tags a slope entity. Kind is immutable once spawned.
type EntityKind int

const (
	KindTree     EntityKind = iota // Fatal hazard, cannot be jumped
	KindRock                       // Fatal hazard, jumpable
	KindStump                      // Fatal hazard, jumpable
	KindMushroom                   // Power-up pickup
	KindBoostPad                   // Sets speed to the boost value
	KindAmmo                       // Snowball crate
	KindMound                      // Slowing hazard, jumpable
	KindTexture                    // Cosmetic ground detail, never collides
)

// String returns the kind name, used in crash causes and logs.
func (k EntityKind) String() string {
	switch k {
	case KindTree:
		return "tree"
	case KindRock:
		return "rock"
	case KindStump:
		return "stump"
	case KindMushroom:
		return "mushroom"
	case KindBoostPad:
		return "boost pad"
	case KindAmmo:
		return "ammo crate"
	case KindMound:
		return "snow mound"
	case KindTexture:
		return "texture"
	default:
		return "unknown"
	}
}

// Cosmetic reports whether the kind is visual-only and excluded from
// collision tests entirely.
func (k EntityKind) Cosmetic() bool {
	return k == KindTexture
}

// LowProfile reports whether a jumping player clears this kind.
func (k EntityKind) LowProfile() bool {
	switch k {
	case KindRock, KindStump, KindMushroom, KindMound:
		return true
	}
	return false
}

// Fatal reports whether an unexempted overlap crashes the player.
func (k EntityKind) Fatal() bool {
	switch k {
	case KindTree, KindRock, KindStump:
		return true
	}
	return false
}

// Consumable reports whether the overlap consumes the entity and applies a
// non-fatal effect instead of crashing.
func (k EntityKind) Consumable() bool {
	switch k {
	case KindMushroom, KindBoostPad, KindAmmo, KindMound:
		return true
	}
	return false
}

// Entity is an obstacle, pickup, or cosmetic feature on the slope.
// Pos is the ground anchor (base center); the visual footprint extends
// uphill from it. Only position ever mutates after spawn.
type Entity struct {
	ID   int64
	Kind EntityKind
	Pos  core.Vec2
	W, H float64 // Visual footprint in world units
}

// visualSize returns the footprint for a kind.
func visualSize(k EntityKind) (w, h float64) {
	switch k {
	case KindTree:
		return 24, 32
	case KindRock:
		return 16, 10
	case KindStump:
		return 12, 10
	case KindMushroom:
		return 12, 12
	case KindBoostPad:
		return 24, 10
	case KindAmmo:
		return 12, 12
	case KindMound:
		return 20, 8
	default:
		return 16, 6
	}
}

// Bounds returns the visual bounding box, anchored at the base.
func (e Entity) Bounds() core.Box {
	return core.NewBox(e.Pos.X-e.W/2, e.Pos.Y-e.H, e.W, e.H)
}

// Hitbox returns the collision box. Trees collide only on a narrow
// trunk at the base of the sprite, deliberately smaller than the visual
// footprint so near misses under the canopy feel fair. Do not widen this
// back to the full sprite.
func (e Entity) Hitbox() core.Box {
	if e.Kind == KindTree {
		trunkW := e.W / 3
		trunkH := e.H * 0.3
		return core.NewBox(e.Pos.X-trunkW/2, e.Pos.Y-trunkH, trunkW, trunkH)
	}
	return e.Bounds()
}

// Store owns the live entity collections for a run. Obstacles/pickups and
// cosmetics are disjoint slices; projectiles live on the Game, never here.
type Store struct {
	entities  []Entity
	cosmetics []Entity
	nextID    int64
	furthestY float64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Reset drops all entities and forgets generation progress.
func (s *Store) Reset() {
	s.entities = s.entities[:0]
	s.cosmetics = s.cosmetics[:0]
	s.nextID = 0
	s.furthestY = 0
}

// Add inserts a collidable entity and tracks the generation frontier.
func (s *Store) Add(kind EntityKind, pos core.Vec2) {
	w, h := visualSize(kind)
	s.nextID++
	s.entities = append(s.entities, Entity{
		ID:   s.nextID,
		Kind: kind,
		Pos:  pos,
		W:    w,
		H:    h,
	})
	if pos.Y > s.furthestY {
		s.furthestY = pos.Y
	}
}

// AddCosmetic inserts a visual-only ground feature.
func (s *Store) AddCosmetic(pos core.Vec2) {
	w, h := visualSize(KindTexture)
	s.nextID++
	s.cosmetics = append(s.cosmetics, Entity{
		ID:   s.nextID,
		Kind: KindTexture,
		Pos:  pos,
		W:    w,
		H:    h,
	})
}

// MarkGenerated advances the generation frontier without spawning.
// Empty rows still count as generated ground.
func (s *Store) MarkGenerated(y float64) {
	if y > s.furthestY {
		s.furthestY = y
	}
}

// FurthestY returns the deepest generated depth.
func (s *Store) FurthestY() float64 {
	return s.furthestY
}

// Entities returns the live collidable entities.
func (s *Store) Entities() []Entity {
	return s.entities
}

// Cosmetics returns the live cosmetic features.
func (s *Store) Cosmetics() []Entity {
	return s.cosmetics
}

// Cull drops entities whose anchor is above minY (behind the player).
// Build-next-generation filtering, no removal during iteration elsewhere.
func (s *Store) Cull(minY float64) {
	live := s.entities[:0]
	for _, e := range s.entities {
		if e.Pos.Y >= minY {
			live = append(live, e)
		}
	}
	s.entities = live

	liveCos := s.cosmetics[:0]
	for _, e := range s.cosmetics {
		if e.Pos.Y >= minY {
			liveCos = append(liveCos, e)
		}
	}
	s.cosmetics = liveCos
}

// replace swaps the collidable entity slice, used by the collision resolver's
// survivor pass.
func (s *Store) replace(entities []Entity) {
	s.entities = entities
}
