package commentary

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ski/internal/core"
)

const (
	// How long a provider call may run before the fallback line is used.
	defaultTimeout = 2 * time.Second
	// How long the live provider is left alone after a rate-limit signal.
	defaultCooldown = 30 * time.Second

	requestBuffer = 8
	lineBuffer    = 4
)

// Dispatcher drains game events and produces announcer lines without ever
// blocking the simulation. Announce is non-blocking (overflow drops the
// event); delivered lines arrive on Lines, also without backpressure.
//
// Provider failures are logged and degraded to the canned lines; after
// ErrRateLimited the provider is not called again until the cooldown passes.
type Dispatcher struct {
	provider Provider
	logger   *log.Logger

	Timeout  time.Duration // Set before Start to override
	Cooldown time.Duration

	requests chan Request
	lines    chan string
	quit     chan struct{}
	wg       sync.WaitGroup

	// Worker-goroutine state, never touched elsewhere.
	seq           int
	cooldownUntil time.Time
	now           func() time.Time
}

// NewDispatcher creates a dispatcher. A nil provider is valid and serves the
// canned lines only.
func NewDispatcher(provider Provider, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{
		provider: provider,
		logger:   logger,
		Timeout:  defaultTimeout,
		Cooldown: defaultCooldown,
		requests: make(chan Request, requestBuffer),
		lines:    make(chan string, lineBuffer),
		quit:     make(chan struct{}),
		now:      time.Now,
	}
}

// Start launches the worker goroutine.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go d.run()
}

// Stop shuts the worker down and waits for it to exit.
func (d *Dispatcher) Stop() {
	close(d.quit)
	d.wg.Wait()
}

// Announce queues an event for commentary. Never blocks: when the queue is
// full the event is dropped.
func (d *Dispatcher) Announce(ev core.Event) {
	req := Request{Tag: ev.Tag, Distance: ev.Distance, Cause: ev.Cause}
	select {
	case d.requests <- req:
	default:
		d.logger.Debug("commentary queue full, dropping event", "tag", ev.Tag)
	}
}

// Lines returns the channel the TUI reads announcer lines from.
func (d *Dispatcher) Lines() <-chan string {
	return d.lines
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for {
		select {
		case <-d.quit:
			return
		case req := <-d.requests:
			d.deliver(d.resolve(req))
		}
	}
}

// deliver hands a line to the TUI channel, dropping it when nobody keeps up.
func (d *Dispatcher) deliver(line string) {
	if line == "" {
		return
	}
	select {
	case d.lines <- line:
	default:
		d.logger.Debug("commentary line dropped, reader behind")
	}
}

// resolve produces the line for one request: live provider when available
// and outside the cooldown window, canned fallback otherwise.
func (d *Dispatcher) resolve(req Request) string {
	defer func() { d.seq++ }()

	if d.provider == nil || d.now().Before(d.cooldownUntil) {
		return Fallback(req, d.seq)
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.Timeout)
	defer cancel()

	line, err := d.provider.Generate(ctx, req)
	switch {
	case errors.Is(err, ErrRateLimited):
		d.cooldownUntil = d.now().Add(d.Cooldown)
		d.logger.Warn("commentary provider rate limited", "cooldown", d.Cooldown)
		return Fallback(req, d.seq)
	case err != nil:
		d.logger.Warn("commentary provider failed", "err", err)
		return Fallback(req, d.seq)
	case line == "":
		return Fallback(req, d.seq)
	}
	return line
}
