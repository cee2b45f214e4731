package ski

import (
	"github.com/vovakirdan/tui-ski/internal/config"
)

// resolveCollisions reconciles the player against every live entity for one
// tick. Survivors are collected into a fresh slice rather than filtered
// in place, so consumption during the pass cannot invalidate iteration.
//
// Exactly one outcome per overlapping entity, in precedence order:
// cosmetic exclusion (cosmetics live in a separate slice and are never
// tested), jump exemption for low-profile hazards, power-up exemption for
// fatal hazards, consumable effects, and finally the crash. Only the first
// qualifying fatal overlap in iteration order crashes the player; the rest
// of the tick is ignored once crashed.
//
// Returns the crash cause, or "" if the player survived the tick.
func resolveCollisions(p *Player, store *Store, cfg *config.SkiConfig) string {
	if p.State.Terminal() {
		return ""
	}

	phys := &cfg.Physics
	hitbox := p.Hitbox(phys)
	jumping := p.State == StateJumping
	powered := p.Powered()

	cause := ""
	survivors := make([]Entity, 0, len(store.entities))

	for _, e := range store.entities {
		// Once crashed, the rest of the tick's overlaps are ignored.
		if cause != "" {
			survivors = append(survivors, e)
			continue
		}

		if !hitbox.Intersects(e.Hitbox()) {
			survivors = append(survivors, e)
			continue
		}

		// Jump clears low-profile hazards.
		if jumping && e.Kind.LowProfile() {
			survivors = append(survivors, e)
			continue
		}

		// Power-up shrugs off fatal hazards.
		if powered && e.Kind.Fatal() {
			survivors = append(survivors, e)
			continue
		}

		// Non-fatal effects consume the entity so it cannot be hit twice.
		if e.Kind.Consumable() {
			switch e.Kind {
			case KindBoostPad:
				p.Speed = phys.BoostPadSpeed
			case KindMushroom:
				p.PowerTicks = phys.PowerDuration
			case KindAmmo:
				p.Ammo += cfg.Weapon.AmmoPerPickup
			case KindMound:
				if !powered {
					p.Speed *= phys.MoundDamping
				}
			}
			continue
		}

		// A true fatal hazard. The entity itself stays on the slope.
		if cause == "" {
			cause = e.Kind.String()
			p.crash()
		}
		survivors = append(survivors, e)
	}

	store.replace(survivors)
	return cause
}
