package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ski/internal/core"
)

// sustainTicks is how many simulation ticks a held-style action stays
// asserted after a key event. Terminals deliver key-down events only (with
// autorepeat, no key-up), so a held key shows up as a stream of repeats; the
// latch bridges the gaps between them.
const sustainTicks = 6

// KeyMapper translates Bubble Tea key messages into per-tick input frames.
// Steering and tucking latch for a sustain window refreshed by autorepeat;
// jump, fire, pause and restart fire exactly once per press.
type KeyMapper struct {
	held    map[core.Action]int
	oneShot []core.Action
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{held: make(map[core.Action]int)}
}

// HandleKey records a key event. Returns true for a quit request.
func (km *KeyMapper) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	case "a", "left":
		km.hold(core.ActionLeft)
	case "d", "right":
		km.hold(core.ActionRight)
	case "s", "down":
		km.hold(core.ActionAccelerate)
	case " ", "w", "up":
		km.oneShot = append(km.oneShot, core.ActionJump)
	case "f":
		km.oneShot = append(km.oneShot, core.ActionFire)
	case "p", "esc":
		km.oneShot = append(km.oneShot, core.ActionPause)
	case "r":
		km.oneShot = append(km.oneShot, core.ActionRestart)
	}
	return false
}

// hold latches a sustained action. Opposite steering releases the other
// side's latch so a quick direction change does not fight itself.
func (km *KeyMapper) hold(a core.Action) {
	km.held[a] = sustainTicks
	switch a {
	case core.ActionLeft:
		delete(km.held, core.ActionRight)
	case core.ActionRight:
		delete(km.held, core.ActionLeft)
	}
}

// Frame assembles the input flags for one simulation tick and advances the
// latches. One-shot actions are consumed.
func (km *KeyMapper) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, remaining := range km.held {
		frame.Set(a)
		if remaining <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = remaining - 1
		}
	}
	for _, a := range km.oneShot {
		frame.Set(a)
	}
	km.oneShot = km.oneShot[:0]
	return frame
}

// Reset drops all latched and pending input.
func (km *KeyMapper) Reset() {
	for a := range km.held {
		delete(km.held, a)
	}
	km.oneShot = km.oneShot[:0]
}
