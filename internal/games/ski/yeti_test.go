package ski

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-ski/internal/config"
	"github.com/vovakirdan/tui-ski/internal/core"
)

func newYetiFixture() (*Yeti, *Player, *config.SkiYeti, *rand.Rand) {
	cfg := config.DefaultSkiConfig()
	var p Player
	p.reset(&cfg)
	p.Pos = core.Vec2{X: 0, Y: 2000}

	rng := rand.New(rand.NewSource(7))
	y := spawnYeti(p.Pos, &cfg.Yeti, rng)
	return y, &p, &cfg.Yeti, rng
}

func TestSpawnPlacesYetiUphill(t *testing.T) {
	y, p, cfg, _ := newYetiFixture()

	if y.Pos.Y != p.Pos.Y-cfg.SpawnBehind {
		t.Errorf("spawn y = %v, want %v", y.Pos.Y, p.Pos.Y-cfg.SpawnBehind)
	}
	if y.Pos.X < p.Pos.X-cfg.SpawnSpread || y.Pos.X > p.Pos.X+cfg.SpawnSpread {
		t.Errorf("spawn x = %v outside spread ±%v", y.Pos.X, cfg.SpawnSpread)
	}
	if y.Mode != ModeChase {
		t.Errorf("spawn mode = %v, want chase", y.Mode)
	}
}

func TestSetModeRejectsSelfTransitions(t *testing.T) {
	y, _, cfg, _ := newYetiFixture()

	y.setMode(ModeRetreat, cfg)
	y.Timer = 5
	y.setMode(ModeRetreat, cfg)
	if y.Timer != 5 {
		t.Errorf("retreat self-transition re-armed timer to %d", y.Timer)
	}

	// Chase is the one legal self-loop; it resets the lunge counter.
	y.setMode(ModeChase, cfg)
	y.chaseTicks = 99
	y.setMode(ModeChase, cfg)
	if y.chaseTicks != 0 {
		t.Errorf("chase self-loop kept chaseTicks = %d, want 0", y.chaseTicks)
	}
}

func TestPoweredPlayerForcesRetreat(t *testing.T) {
	y, p, cfg, rng := newYetiFixture()
	p.PowerTicks = 300

	y.update(p, cfg, 1.0, rng, 1)

	if y.Mode != ModeRetreat {
		t.Fatalf("mode = %v, want retreat against a powered player", y.Mode)
	}

	// Retreat moves uphill only.
	startY := y.Pos.Y
	startX := y.Pos.X
	for tick := uint64(2); tick < 50; tick++ {
		y.update(p, cfg, 1.0, rng, tick)
	}
	if y.Pos.Y >= startY {
		t.Errorf("retreating yeti moved downhill: %v -> %v", startY, y.Pos.Y)
	}
	if y.Pos.X != startX {
		t.Errorf("retreating yeti drifted laterally: %v -> %v", startX, y.Pos.X)
	}
}

func TestLungeCycleReturnsToChase(t *testing.T) {
	y, p, cfg, rng := newYetiFixture()
	// Keep the player far away so the lunge cannot connect.
	p.Pos = core.Vec2{X: 0, Y: y.Pos.Y + 1000}

	y.setMode(ModePreLunge, cfg)
	for tick := uint64(1); tick <= uint64(cfg.PreLungeTicks); tick++ {
		y.update(p, cfg, 1.0, rng, tick)
	}
	if y.Mode != ModeLunge {
		t.Fatalf("mode after wind-up = %v, want lunge", y.Mode)
	}

	for tick := uint64(1); tick <= uint64(cfg.LungeTicks); tick++ {
		y.update(p, cfg, 1.0, rng, tick)
	}
	if y.Mode != ModeChase {
		t.Errorf("mode after lunge = %v, want chase", y.Mode)
	}
}

func TestCatchRequiresProximityAndNoShield(t *testing.T) {
	y, p, cfg, rng := newYetiFixture()
	y.Pos = p.Pos

	if !y.update(p, cfg, 1.0, rng, 1) {
		t.Error("point-blank yeti did not catch the player")
	}

	y, p, cfg, rng = newYetiFixture()
	y.Pos = p.Pos
	p.PowerTicks = 300
	if y.update(p, cfg, 1.0, rng, 1) {
		t.Error("yeti caught a powered player")
	}
}

func TestChaseSpeedScalesWithUrgency(t *testing.T) {
	y, _, cfg, _ := newYetiFixture()

	near := y.targetSpeed(0, cfg, 1.0)
	far := y.targetSpeed(cfg.UrgencyRange*2, cfg, 1.0)

	if near != cfg.BaseSpeed {
		t.Errorf("near target = %v, want %v", near, cfg.BaseSpeed)
	}
	if far != cfg.TopSpeed {
		t.Errorf("far target = %v, want %v (urgency saturates)", far, cfg.TopSpeed)
	}
}

func TestDespawnBeyondRadius(t *testing.T) {
	y, p, cfg, _ := newYetiFixture()

	y.Pos = core.Vec2{X: p.Pos.X, Y: p.Pos.Y - (cfg.DespawnRadius + 100)}
	if !y.tooFar(p, cfg) {
		t.Error("yeti 1600 units away not flagged for despawn")
	}

	y.Pos = core.Vec2{X: p.Pos.X, Y: p.Pos.Y - (cfg.DespawnRadius - 100)}
	if y.tooFar(p, cfg) {
		t.Error("yeti inside the radius flagged for despawn")
	}
}

func TestProjectileStrikeForcesRetreat(t *testing.T) {
	y, _, cfg, _ := newYetiFixture()
	y.setMode(ModeLunge, cfg)

	y.startRetreat(cfg)

	if y.Mode != ModeRetreat {
		t.Errorf("mode = %v, want retreat after a snowball hit", y.Mode)
	}
	if y.Timer != cfg.RetreatTicks {
		t.Errorf("retreat timer = %d, want %d", y.Timer, cfg.RetreatTicks)
	}
}
