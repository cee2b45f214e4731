package ski

import (
	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// Projectile is a snowball in flight. The collection is disjoint from the
// entity store; lifecycle is bounded by distance from the player.
type Projectile struct {
	Pos core.Vec2
	Vel core.Vec2
}

// newProjectile spawns a snowball at the player aimed at the target, or
// straight downhill when there is nothing to aim at.
func newProjectile(from core.Vec2, target *core.Vec2, weapon *config.SkiWeapon) Projectile {
	dir := core.Vec2{Y: 1}
	if target != nil {
		if d := target.Sub(from).Normalized(); d.Len() > 0 {
			dir = d
		}
	}
	return Projectile{
		Pos: from,
		Vel: dir.Scale(weapon.ProjectileSpeed),
	}
}

// update advances projectiles one tick: re-aim each one at the yeti's
// current position (homing), move it, resolve yeti hits, and drop any that
// exceed max range from the player. Returns the survivors and whether the
// yeti was struck this tick.
func updateProjectiles(shots []Projectile, player core.Vec2, yeti *Yeti, weapon *config.SkiWeapon) ([]Projectile, bool) {
	hit := false
	live := shots[:0]
	for _, s := range shots {
		if yeti != nil {
			// Continuous re-aim toward the yeti's current position; zero
			// distance keeps the previous heading.
			if d := yeti.Pos.Sub(s.Pos).Normalized(); d.Len() > 0 {
				s.Vel = d.Scale(weapon.ProjectileSpeed)
			}
		}
		s.Pos = s.Pos.Add(s.Vel)

		if yeti != nil && !hit && s.Pos.Sub(yeti.Pos).Len() < weapon.ProjectileSpeed {
			hit = true
			continue // The snowball is spent on impact
		}
		if s.Pos.Sub(player).Len() > weapon.MaxRange {
			continue
		}
		live = append(live, s)
	}
	return live, hit
}
