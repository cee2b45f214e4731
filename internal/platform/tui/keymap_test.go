package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ski/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestHeldActionSustains(t *testing.T) {
	km := NewKeyMapper()
	km.HandleKey(runeKey('a'))

	// The latch bridges the autorepeat gap for sustainTicks frames.
	for i := 0; i < sustainTicks; i++ {
		if !km.Frame().Has(core.ActionLeft) {
			t.Fatalf("frame %d: left latch dropped early", i)
		}
	}
	if km.Frame().Has(core.ActionLeft) {
		t.Error("left latch survived past the sustain window")
	}
}

func TestAutorepeatRefreshesLatch(t *testing.T) {
	km := NewKeyMapper()
	km.HandleKey(runeKey('d'))

	for i := 0; i < 20; i++ {
		// Simulated autorepeat every third frame.
		if i%3 == 0 {
			km.HandleKey(runeKey('d'))
		}
		if !km.Frame().Has(core.ActionRight) {
			t.Fatalf("frame %d: right dropped despite autorepeat", i)
		}
	}
}

func TestOppositeSteeringReleasesLatch(t *testing.T) {
	km := NewKeyMapper()
	km.HandleKey(runeKey('a'))
	km.HandleKey(runeKey('d'))

	frame := km.Frame()
	if frame.Has(core.ActionLeft) {
		t.Error("left still latched after steering right")
	}
	if !frame.Has(core.ActionRight) {
		t.Error("right not latched")
	}
}

func TestOneShotActionsFireOnce(t *testing.T) {
	km := NewKeyMapper()
	km.HandleKey(tea.KeyMsg{Type: tea.KeySpace})
	km.HandleKey(runeKey('f'))

	frame := km.Frame()
	if !frame.Has(core.ActionJump) || !frame.Has(core.ActionFire) {
		t.Fatalf("one-shot actions missing from first frame: %+v", frame)
	}

	frame = km.Frame()
	if frame.Has(core.ActionJump) || frame.Has(core.ActionFire) {
		t.Error("one-shot actions leaked into a second frame")
	}
}

func TestQuitKeys(t *testing.T) {
	km := NewKeyMapper()
	if !km.HandleKey(runeKey('q')) {
		t.Error("q did not request quit")
	}
	if !km.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}) {
		t.Error("ctrl+c did not request quit")
	}
	if km.HandleKey(runeKey('a')) {
		t.Error("steering key requested quit")
	}
}

func TestResetDropsAllInput(t *testing.T) {
	km := NewKeyMapper()
	km.HandleKey(runeKey('a'))
	km.HandleKey(runeKey('f'))
	km.Reset()

	frame := km.Frame()
	if frame.Has(core.ActionLeft) || frame.Has(core.ActionFire) {
		t.Errorf("input survived a reset: %+v", frame)
	}
}
