// Package ski implements an endless-slope skiing game: steer around
// procedurally generated hazards, grab pickups, and stay ahead of the yeti.
// All state lives on the Game and advances one fixed tick at a time; the
// platform layer owns scheduling and rendering.
package ski

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/registry"
)

// World-to-screen scale: one terminal cell covers this many world units.
// Cells are roughly twice as tall as wide, so the vertical scale doubles
// the horizontal one to keep distances visually square.
const (
	CellW = 8.0
	CellH = 16.0
)

// startClearance keeps the strip right at the start free of hazards so a
// run never opens on top of a tree.
const startClearance = 200.0

// Game implements the ski simulation. It exclusively owns all mutable
// simulation state for the duration of a session; the presentation layer
// only reads snapshots and screen buffers.
type Game struct {
	cfg     config.SkiConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	tick        uint64
	player      Player
	store       *Store
	gen         *Generator
	yeti        *Yeti // nil until the spawn condition fires
	projectiles []Projectile

	score    int
	gameOver bool
	paused   bool

	pending []core.Event // Events queued for the next StepResult
}

// configPath stores the custom config path set via CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new ski game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("ski", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "ski"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Powder Run"
}

// Reset initializes or restarts the game. All mutable state is rebuilt
// before the next tick; no partial-reset state is ever observable.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSki(configPath)
	if err != nil {
		cfg = config.DefaultSkiConfig()
	}
	if difficultyPreset != "" {
		config.ApplySkiPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.yeti = nil
	g.projectiles = g.projectiles[:0]

	g.player.reset(&g.cfg)

	if g.store == nil {
		g.store = NewStore()
	} else {
		g.store.Reset()
	}
	g.gen = NewGenerator(&g.cfg, g.rng, startClearance)
	g.gen.Ensure(g.store, g.player.Pos.X, g.player.Pos.Y, g.viewDepth())

	g.pending = append(g.pending[:0], core.Event{Tag: core.EventStart})
}

// viewDepth returns how far below the player the viewport reaches, in world
// units. The camera keeps the player in the upper third of the screen.
func (g *Game) viewDepth() float64 {
	return float64(g.runtime.ScreenH) * CellH
}

// Step advances the game by one tick in a fixed order: input sample, player
// physics, world generation and culling, projectiles, yeti, collision
// resolution, then score. Pausing short-circuits everything but the flag
// toggle itself.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := g.drainPending()

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State(), Events: g.drainPending()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.tick++

	// Player physics.
	g.player.update(in, &g.cfg.Physics)

	// Firing: one snowball per roll of the cooldown, aimed at the yeti at
	// the moment of firing (then homing each tick).
	if in.Has(core.ActionFire) && g.player.tryFire(&g.cfg.Weapon) {
		var target *core.Vec2
		if g.yeti != nil {
			target = &g.yeti.Pos
		}
		g.projectiles = append(g.projectiles, newProjectile(g.player.Pos, target, &g.cfg.Weapon))
	}

	// World generation ahead, culling behind.
	g.gen.Ensure(g.store, g.player.Pos.X, g.player.Pos.Y, g.viewDepth())
	g.store.Cull(g.player.Pos.Y - g.cfg.World.CullBehind)

	// Projectiles, with yeti deterrence.
	var struck bool
	g.projectiles, struck = updateProjectiles(g.projectiles, g.player.Pos, g.yeti, &g.cfg.Weapon)
	if struck && g.yeti != nil {
		g.yeti.startRetreat(&g.cfg.Yeti)
	}

	// Yeti: spawn roll, pursuit update, despawn check.
	events = append(events, g.updateYeti()...)

	// Collision resolution.
	if cause := resolveCollisions(&g.player, g.store, &g.cfg); cause != "" {
		g.gameOver = true
		events = append(events, core.Event{
			Tag:      core.EventCrash,
			Distance: g.score,
			Cause:    cause,
		})
	}

	// Score tracks traveled depth.
	g.score = int(math.Floor(g.player.Pos.Y))

	return core.StepResult{State: g.State(), Events: events}
}

// updateYeti runs the spawn/pursuit/despawn cycle for one tick.
func (g *Game) updateYeti() []core.Event {
	yc := &g.cfg.Yeti

	if g.yeti == nil {
		// Spawn is gated by depth and a small per-tick chance, so the
		// timing varies between runs.
		if g.player.Pos.Y > yc.SpawnDepth && !g.player.State.Terminal() &&
			g.rng.Float64() < yc.SpawnChance {
			g.yeti = spawnYeti(g.player.Pos, yc, g.rng)
		}
		return nil
	}

	diffMul := g.cfg.Difficulty.YetiSpeedMul(g.player.Pos.Y)
	caught := g.yeti.update(&g.player, yc, diffMul, g.rng, g.tick)
	if caught {
		g.player.eaten()
		g.gameOver = true
		return []core.Event{{Tag: core.EventEaten, Distance: g.score, Cause: "yeti"}}
	}

	// Removed entirely when too far away; may respawn under the normal rule.
	if g.yeti.tooFar(&g.player, yc) {
		g.yeti = nil
	}
	return nil
}

// drainPending returns and clears events queued outside Step (reset).
func (g *Game) drainPending() []core.Event {
	if len(g.pending) == 0 {
		return nil
	}
	events := make([]core.Event, len(g.pending))
	copy(events, g.pending)
	g.pending = g.pending[:0]
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
