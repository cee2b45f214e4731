package commentary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ski/internal/core"
)

// recordingProvider counts calls and replays a scripted result per call.
type recordingProvider struct {
	calls   int
	results []func() (string, error)
}

func (r *recordingProvider) Generate(_ context.Context, _ Request) (string, error) {
	i := r.calls
	r.calls++
	if i < len(r.results) {
		return r.results[i]()
	}
	return "live line", nil
}

func quietLogger() *log.Logger {
	logger := log.Default()
	logger.SetLevel(log.FatalLevel)
	return logger
}

func readLine(t *testing.T, d *Dispatcher) string {
	t.Helper()
	select {
	case line := <-d.Lines():
		return line
	case <-time.After(2 * time.Second):
		t.Fatal("no commentary line arrived")
		return ""
	}
}

func TestNilProviderServesFallback(t *testing.T) {
	d := NewDispatcher(nil, quietLogger())
	d.Start()
	defer d.Stop()

	d.Announce(core.Event{Tag: core.EventStart})

	line := readLine(t, d)
	if line != Fallback(Request{Tag: core.EventStart}, 0) {
		t.Errorf("line = %q, want first start fallback", line)
	}
}

func TestProviderLineDelivered(t *testing.T) {
	p := &recordingProvider{}
	d := NewDispatcher(p, quietLogger())
	d.Start()
	defer d.Stop()

	d.Announce(core.Event{Tag: core.EventCrash, Distance: 420, Cause: "tree"})

	if line := readLine(t, d); line != "live line" {
		t.Errorf("line = %q, want the provider's line", line)
	}
}

func TestProviderErrorDegradesToFallback(t *testing.T) {
	p := &recordingProvider{results: []func() (string, error){
		func() (string, error) { return "", errors.New("boom") },
	}}
	d := NewDispatcher(p, quietLogger())
	d.Start()
	defer d.Stop()

	d.Announce(core.Event{Tag: core.EventEaten, Distance: 900})

	line := readLine(t, d)
	if line != Fallback(Request{Tag: core.EventEaten, Distance: 900}, 0) {
		t.Errorf("line = %q, want eaten fallback", line)
	}
}

func TestRateLimitOpensCooldownWindow(t *testing.T) {
	p := &recordingProvider{results: []func() (string, error){
		func() (string, error) { return "", ErrRateLimited },
	}}
	d := NewDispatcher(p, quietLogger())

	// Frozen clock: the cooldown window never expires during the test.
	fixed := time.Now()
	d.now = func() time.Time { return fixed }
	d.Start()
	defer d.Stop()

	d.Announce(core.Event{Tag: core.EventStart})
	readLine(t, d)

	// Inside the window the provider must not be called again.
	d.Announce(core.Event{Tag: core.EventStart})
	readLine(t, d)

	if p.calls != 1 {
		t.Errorf("provider called %d times, want 1 (cooldown active)", p.calls)
	}
}

func TestCooldownExpiryRestoresProvider(t *testing.T) {
	p := &recordingProvider{results: []func() (string, error){
		func() (string, error) { return "", ErrRateLimited },
	}}
	d := NewDispatcher(p, quietLogger())

	current := time.Now()
	d.now = func() time.Time { return current }
	d.Start()
	defer d.Stop()

	d.Announce(core.Event{Tag: core.EventStart})
	readLine(t, d)

	// Jump past the cooldown; the provider gets another chance.
	current = current.Add(d.Cooldown + time.Second)
	d.Announce(core.Event{Tag: core.EventStart})
	if line := readLine(t, d); line != "live line" {
		t.Errorf("line = %q, want the provider's line after cooldown expiry", line)
	}
	if p.calls != 2 {
		t.Errorf("provider called %d times, want 2", p.calls)
	}
}

func TestAnnounceNeverBlocks(t *testing.T) {
	// No worker running: the queue fills up and overflow must drop.
	d := NewDispatcher(nil, quietLogger())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			d.Announce(core.Event{Tag: core.EventStart})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Announce blocked on a full queue")
	}
}

func TestStaticProviderIsDeterministic(t *testing.T) {
	a := NewStaticProvider()
	b := NewStaticProvider()

	reqs := []Request{
		{Tag: core.EventStart},
		{Tag: core.EventCrash, Distance: 100, Cause: "rock"},
		{Tag: core.EventCrash, Distance: 200, Cause: "tree"},
		{Tag: core.EventHighscore, Distance: 300},
	}
	for i, req := range reqs {
		la, _ := a.Generate(context.Background(), req)
		lb, _ := b.Generate(context.Background(), req)
		if la != lb {
			t.Errorf("request %d: %q vs %q, want identical sequences", i, la, lb)
		}
		if la == "" {
			t.Errorf("request %d produced an empty line", i)
		}
	}
}

func TestFallbackCoversEveryTag(t *testing.T) {
	tags := []core.EventTag{core.EventStart, core.EventCrash, core.EventEaten, core.EventHighscore}
	for _, tag := range tags {
		if Fallback(Request{Tag: tag, Distance: 50, Cause: "stump"}, 0) == "" {
			t.Errorf("no fallback line for tag %v", tag)
		}
	}
}
