package ski

import (
	"github.com/vovakirdan/tui-ski/internal/core"
)

// PlayerSnapshot is the read-only view of the player for one tick.
type PlayerSnapshot struct {
	Pos        core.Vec2
	Speed      float64
	Direction  float64
	State      PlayerState
	JumpHeight float64
	PowerTicks int
	Ammo       int
}

// YetiSnapshot is the read-only view of the yeti. Present only while the
// yeti is alive.
type YetiSnapshot struct {
	Pos      core.Vec2
	Mode     YetiMode
	CurSpeed float64
}

// Snapshot is a read-only copy of the simulation state, exposed once per
// tick for the presentation layer. Writing into a snapshot has no effect on
// the simulation.
type Snapshot struct {
	Tick        uint64
	Player      PlayerSnapshot
	Entities    []Entity
	Cosmetics   []Entity
	Projectiles []Projectile
	Yeti        *YetiSnapshot // nil when absent
	Score       int
	GameOver    bool
	Paused      bool
}

// Snapshot returns the current state as a detached copy. Slices are cloned
// so the caller can hold the snapshot across ticks.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick: g.tick,
		Player: PlayerSnapshot{
			Pos:        g.player.Pos,
			Speed:      g.player.Speed,
			Direction:  g.player.Direction,
			State:      g.player.State,
			JumpHeight: g.player.JumpHeight,
			PowerTicks: g.player.PowerTicks,
			Ammo:       g.player.Ammo,
		},
		Entities:    append([]Entity(nil), g.store.Entities()...),
		Cosmetics:   append([]Entity(nil), g.store.Cosmetics()...),
		Projectiles: append([]Projectile(nil), g.projectiles...),
		Score:       g.score,
		GameOver:    g.gameOver,
		Paused:      g.paused,
	}
	if g.yeti != nil {
		snap.Yeti = &YetiSnapshot{
			Pos:      g.yeti.Pos,
			Mode:     g.yeti.Mode,
			CurSpeed: g.yeti.CurSpeed,
		}
	}
	return snap
}
