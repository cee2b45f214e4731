// Package commentary turns game events into short announcer lines.
// A Provider may be a live text-generation backend; the Dispatcher makes
// sure the game never waits on one and always has a canned line ready.
package commentary

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-ski/internal/core"
)

// ErrRateLimited signals that the provider refused the request and should be
// left alone for a cooldown window.
var ErrRateLimited = errors.New("commentary: rate limited")

// Request carries the event context a provider may use to shape its line.
type Request struct {
	Tag      core.EventTag
	Distance int    // Meters traveled, where relevant
	Cause    string // Crash cause, where relevant
}

// Provider produces a display line for an event. Implementations are called
// from the dispatcher goroutine with a bounded context; they must respect
// cancellation.
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// fallbackLines are the offline lines, keyed by tag. Always available.
var fallbackLines = map[core.EventTag][]string{
	core.EventStart: {
		"And they're off!",
		"Fresh powder ahead.",
		"Here we go again.",
	},
	core.EventCrash: {
		"Ouch. That %s came out of nowhere.",
		"Right into the %s. %dm on the board.",
		"A %s ends the run at %dm.",
	},
	core.EventEaten: {
		"The yeti eats well tonight. %dm.",
		"Caught at %dm. Nobody outruns the mountain.",
	},
	core.EventHighscore: {
		"A new record! %dm!",
		"%dm. Top of the board.",
	},
}

// Fallback returns the deterministic canned line for a request. The seq
// counter picks among the tag's variants so repeated events cycle instead of
// repeating.
func Fallback(req Request, seq int) string {
	lines := fallbackLines[req.Tag]
	if len(lines) == 0 {
		return ""
	}
	line := lines[seq%len(lines)]

	switch req.Tag {
	case core.EventCrash:
		// Crash lines interpolate cause and sometimes distance.
		if seq%len(lines) == 0 {
			return fmt.Sprintf(line, req.Cause)
		}
		return fmt.Sprintf(line, req.Cause, req.Distance)
	case core.EventEaten, core.EventHighscore:
		return fmt.Sprintf(line, req.Distance)
	default:
		return line
	}
}

// StaticProvider serves the canned lines through the Provider interface,
// useful for local play and tests. Deterministic: same request sequence,
// same lines.
type StaticProvider struct {
	seq int
}

// NewStaticProvider creates a provider backed by the built-in lines.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Generate returns the next canned line for the tag.
func (s *StaticProvider) Generate(_ context.Context, req Request) (string, error) {
	line := Fallback(req, s.seq)
	s.seq++
	return line, nil
}
