package ski

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-ski/internal/config"
)

func newGenFixture(startY float64) (*Generator, *Store, *config.SkiConfig) {
	cfg := config.DefaultSkiConfig()
	rng := rand.New(rand.NewSource(99))
	return NewGenerator(&cfg, rng, startY), NewStore(), &cfg
}

func TestEnsureCoversLookahead(t *testing.T) {
	gen, store, cfg := newGenFixture(0)
	viewDepth := 24.0 * CellH

	gen.Ensure(store, 0, 0, viewDepth)

	limit := viewDepth + cfg.World.LookaheadMargin
	if gen.next < limit {
		t.Errorf("frontier at %v, want at least %v", gen.next, limit)
	}
}

func TestEnsureIsForwardOnly(t *testing.T) {
	gen, store, _ := newGenFixture(0)
	viewDepth := 24.0 * CellH

	gen.Ensure(store, 0, 0, viewDepth)
	count := len(store.Entities()) + len(store.Cosmetics())

	// Re-running over covered ground must not reroll anything.
	gen.Ensure(store, 0, 0, viewDepth)
	if got := len(store.Entities()) + len(store.Cosmetics()); got != count {
		t.Errorf("entity count %d -> %d on a repeat pass over generated rows", count, got)
	}

	// Moving back uphill must not regenerate either.
	gen.Ensure(store, 0, -500, viewDepth)
	if got := len(store.Entities()) + len(store.Cosmetics()); got != count {
		t.Errorf("entity count %d -> %d after an uphill query", count, got)
	}
}

func TestEnsureFollowsThePlayer(t *testing.T) {
	gen, store, _ := newGenFixture(0)
	viewDepth := 24.0 * CellH

	gen.Ensure(store, 0, 0, viewDepth)
	frontier := gen.next

	gen.Ensure(store, 0, 5000, viewDepth)
	if gen.next <= frontier {
		t.Errorf("frontier did not advance past %v for a deeper player", frontier)
	}
}

func TestStartStripStaysClear(t *testing.T) {
	start := 200.0
	gen, store, _ := newGenFixture(start)

	gen.Ensure(store, 0, 0, 24.0*CellH)

	for _, e := range store.Entities() {
		if e.Pos.Y < start {
			t.Errorf("entity %v spawned at %v, inside the clear strip above %v", e.Kind, e.Pos.Y, start)
		}
	}
}

func TestSpawnStaysInLateralBand(t *testing.T) {
	gen, store, cfg := newGenFixture(0)
	playerX := 1234.5

	gen.Ensure(store, playerX, 0, 100.0*CellH)

	half := cfg.World.SpawnHalfWidth
	for _, e := range store.Entities() {
		if e.Pos.X < playerX-half || e.Pos.X > playerX+half {
			t.Errorf("entity at x=%v outside band %v ± %v", e.Pos.X, playerX, half)
		}
	}
}

func TestCullDropsOnlyBehind(t *testing.T) {
	gen, store, _ := newGenFixture(0)
	gen.Ensure(store, 0, 0, 100.0*CellH)

	if len(store.Entities()) == 0 {
		t.Fatal("no entities generated")
	}

	cut := 500.0
	store.Cull(cut)
	for _, e := range store.Entities() {
		if e.Pos.Y < cut {
			t.Errorf("entity at y=%v survived a cull at %v", e.Pos.Y, cut)
		}
	}
	for _, e := range store.Cosmetics() {
		if e.Pos.Y < cut {
			t.Errorf("cosmetic at y=%v survived a cull at %v", e.Pos.Y, cut)
		}
	}
}

func TestRollKindCoversAllWeights(t *testing.T) {
	gen, _, _ := newGenFixture(0)

	seen := make(map[EntityKind]bool)
	for i := 0; i < 5000; i++ {
		seen[gen.rollKind(0)] = true
	}

	for _, k := range []EntityKind{KindTree, KindRock, KindStump, KindMushroom, KindBoostPad, KindAmmo, KindMound} {
		if !seen[k] {
			t.Errorf("kind %v never rolled in 5000 draws", k)
		}
	}
}
