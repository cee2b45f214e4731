package ski

import (
	"math/rand"

	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

// Generator procedurally fills the store with obstacles, pickups, and
// cosmetic terrain ahead of the player. Forward-only: rows are rolled once
// and never revisited.
type Generator struct {
	cfg  *config.SkiConfig
	rng  *rand.Rand
	next float64 // Depth of the next ungenerated row
}

// NewGenerator creates a generator that starts rolling rows at startY.
// The strip immediately around the start stays clear so a run never opens
// on top of a hazard.
func NewGenerator(cfg *config.SkiConfig, rng *rand.Rand, startY float64) *Generator {
	return &Generator{
		cfg:  cfg,
		rng:  rng,
		next: startY,
	}
}

// Ensure generates rows until the frontier covers the player's viewport
// bottom plus the lookahead margin, so no visible gap ever opens ahead.
func (g *Generator) Ensure(store *Store, playerX, playerY, viewDepth float64) {
	limit := playerY + viewDepth + g.cfg.World.LookaheadMargin
	for g.next < limit {
		g.generateRow(store, playerX, g.next)
		g.next += g.cfg.World.RowStep
	}
}

// generateRow rolls one depth row: at most one obstacle/pickup, plus an
// independent, denser cosmetic roll for the sensation of speed.
func (g *Generator) generateRow(store *Store, playerX, y float64) {
	world := &g.cfg.World

	density := world.BaseDensity + g.cfg.Difficulty.ExtraDensity(y)
	if g.rng.Float64() < density {
		kind := g.rollKind(y)
		store.Add(kind, core.Vec2{X: g.spawnX(playerX), Y: y})
	} else {
		store.MarkGenerated(y)
	}

	if g.rng.Float64() < world.CosmeticDensity {
		store.AddCosmetic(core.Vec2{X: g.spawnX(playerX), Y: y})
	}
}

// spawnX draws a lateral position uniformly from a wide band centered on the
// player, wide enough that steering alone cannot dodge every row.
func (g *Generator) spawnX(playerX float64) float64 {
	half := g.cfg.World.SpawnHalfWidth
	return playerX + (g.rng.Float64()*2-1)*half
}

// rollKind picks an obstacle type by weighted roll. The mound weight grows
// with the difficulty tier, so deep runs trade simple hazards for slowing
// terrain.
func (g *Generator) rollKind(depth float64) EntityKind {
	world := &g.cfg.World
	moundWeight := world.WeightMound + g.cfg.Difficulty.MoundBonus(depth)

	weights := []struct {
		kind   EntityKind
		weight int
	}{
		{KindTree, world.WeightTree},
		{KindRock, world.WeightRock},
		{KindStump, world.WeightStump},
		{KindMushroom, world.WeightMushroom},
		{KindBoostPad, world.WeightBoostPad},
		{KindAmmo, world.WeightAmmo},
		{KindMound, moundWeight},
	}

	total := 0
	for _, w := range weights {
		total += w.weight
	}
	if total <= 0 {
		return KindTree
	}

	roll := g.rng.Intn(total)
	cumulative := 0
	for _, w := range weights {
		cumulative += w.weight
		if roll < cumulative {
			return w.kind
		}
	}
	return KindTree
}
