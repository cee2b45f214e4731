package ski

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-ski/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     seed,
	}
}

// scriptedInput deterministically varies steering so runs cover turning,
// tucking, and jumping.
func scriptedInput(tick int) core.InputFrame {
	switch tick % 7 {
	case 0, 1:
		return frame(core.ActionAccelerate)
	case 2:
		return frame(core.ActionLeft, core.ActionAccelerate)
	case 3:
		return frame(core.ActionRight)
	case 4:
		return frame(core.ActionJump)
	default:
		return frame()
	}
}

func TestIdenticalSeedsProduceIdenticalRuns(t *testing.T) {
	a := New()
	b := New()
	a.Reset(testRuntime(12345))
	b.Reset(testRuntime(12345))

	for i := 0; i < 600; i++ {
		in := scriptedInput(i)
		ra := a.Step(in)
		rb := b.Step(in)
		if ra.State != rb.State {
			t.Fatalf("tick %d: states diverged: %+v vs %+v", i, ra.State, rb.State)
		}
	}

	if a.player.Pos != b.player.Pos {
		t.Errorf("player positions diverged: %+v vs %+v", a.player.Pos, b.player.Pos)
	}
	if len(a.store.Entities()) != len(b.store.Entities()) {
		t.Errorf("entity counts diverged: %d vs %d", len(a.store.Entities()), len(b.store.Entities()))
	}
}

func TestResetProducesCleanState(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	for i := 0; i < 100; i++ {
		g.Step(frame(core.ActionAccelerate))
	}

	g.Reset(testRuntime(2))

	if g.tick != 0 {
		t.Errorf("tick = %d, want 0", g.tick)
	}
	st := g.State()
	if st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("state after reset = %+v, want zeroed", st)
	}
	if g.player.Pos != (core.Vec2{}) {
		t.Errorf("player at %+v, want origin", g.player.Pos)
	}
	if g.player.State != StateSkiing {
		t.Errorf("player state = %v, want skiing", g.player.State)
	}
	if g.yeti != nil {
		t.Error("yeti survived a reset")
	}
}

func TestFirstStepEmitsStartEvent(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	res := g.Step(frame())

	found := false
	for _, ev := range res.Events {
		if ev.Tag == core.EventStart {
			found = true
		}
	}
	if !found {
		t.Errorf("first step events = %+v, want a start event", res.Events)
	}

	// The queue drains; the event fires once.
	res = g.Step(frame())
	for _, ev := range res.Events {
		if ev.Tag == core.EventStart {
			t.Error("start event emitted twice")
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionAccelerate))
	}

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause did not engage")
	}

	pos := g.player.Pos
	tick := g.tick
	for i := 0; i < 20; i++ {
		g.Step(frame(core.ActionAccelerate))
	}
	if g.player.Pos != pos || g.tick != tick {
		t.Error("simulation advanced while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Fatal("unpause did not disengage")
	}
	g.Step(frame(core.ActionAccelerate))
	if g.tick != tick+1 {
		t.Error("simulation did not resume after unpause")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	for i := 0; i < 50; i++ {
		g.Step(frame(core.ActionAccelerate))
	}

	// Restart mid-run is ignored.
	tick := g.tick
	g.Step(frame(core.ActionRestart))
	if g.tick != tick+1 {
		t.Error("restart mid-run reset the game")
	}

	g.player.crash()
	g.gameOver = true

	g.Step(frame(core.ActionRestart))
	st := g.State()
	if st.GameOver {
		t.Error("restart did not clear game over")
	}
	if st.Score != 0 {
		t.Errorf("score = %d after restart, want 0", st.Score)
	}
	if g.player.State != StateSkiing {
		t.Errorf("player state = %v after restart, want skiing", g.player.State)
	}
}

func TestScoreTracksTraveledDepth(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(frame(core.ActionAccelerate))
	}

	want := int(g.player.Pos.Y)
	if g.State().Score != want {
		t.Errorf("score = %d, want %d (floor of depth %v)", g.State().Score, want, g.player.Pos.Y)
	}
}

func TestGameOverFreezesState(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(frame())

	g.player.crash()
	g.gameOver = true
	score := g.State().Score
	tick := g.tick

	for i := 0; i < 20; i++ {
		g.Step(frame(core.ActionAccelerate, core.ActionLeft))
	}
	if g.tick != tick || g.State().Score != score {
		t.Error("simulation advanced after game over")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	for i := 0; i < 200 && len(g.store.Entities()) == 0; i++ {
		g.Step(frame(core.ActionAccelerate))
	}

	snap := g.Snapshot()
	if len(snap.Entities) == 0 {
		t.Fatal("snapshot has no entities")
	}

	snap.Entities[0].Pos.X = 99999
	snap.Score = 99999

	fresh := g.Snapshot()
	if fresh.Entities[0].Pos.X == 99999 {
		t.Error("snapshot mutation leaked into the simulation")
	}
	if g.State().Score == 99999 {
		t.Error("snapshot score mutation leaked into the simulation")
	}
}

func TestSnapshotYetiNilUntilSpawned(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(frame())

	if snap := g.Snapshot(); snap.Yeti != nil {
		t.Error("snapshot reports a yeti before one spawned")
	}
}

func TestRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	for i := 0; i < 30; i++ {
		g.Step(frame(core.ActionAccelerate))
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "spd") {
		t.Errorf("HUD row = %q, want speed readout", screen.Row(0))
	}

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestRegistryExposesSki(t *testing.T) {
	g := New()
	if g.ID() != "ski" {
		t.Errorf("ID = %q, want ski", g.ID())
	}
	if g.Title() == "" {
		t.Error("empty title")
	}
}
