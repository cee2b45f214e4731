package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-ski/internal/commentary"
	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/registry"
	"github.com/vovakirdan/tui-ski/internal/storage"
)

// commentLifetime is how many ticks an announcer line stays on screen.
const commentLifetime = 150

var (
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	commentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Model is the Bubble Tea model for a game session: the fixed-tick loop,
// input latching, commentary display, and leaderboard name entry.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	narrator *commentary.Dispatcher
	keys     *KeyMapper

	config    core.RuntimeConfig
	gameState core.GameState

	comment      string
	commentTicks int

	nameInput    textinput.Model
	enteringName bool
	scoreSaved   bool

	quitting bool
}

// NewModel creates a session model. Both store and narrator may be nil; the
// game runs without a leaderboard or commentary in that case.
func NewModel(game registry.Game, store *storage.Store, narrator *commentary.Dispatcher, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	input := textinput.New()
	input.Placeholder = "your name"
	input.CharLimit = 12
	input.Width = 14

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		narrator:  narrator,
		keys:      NewKeyMapper(),
		config:    cfg,
		nameInput: input,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. While the name prompt is open it owns
// the keyboard.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.enteringName {
		return m.handleNameKey(msg)
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.HandleKey(msg) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleNameKey routes keys to the leaderboard name prompt.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.finalizeScore()
		return m, nil
	case "esc":
		// Decline the slot.
		m.enteringName = false
		m.scoreSaved = true
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// finalizeScore saves the run under the entered name and announces a new
// high score when the run beat the previous best.
func (m *Model) finalizeScore() {
	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		name = "anonymous"
	}

	if m.store != nil {
		prevHigh, _ := m.store.HighScore()
		//nolint:errcheck // Best-effort save, session continues regardless
		m.store.SaveScore(name, m.gameState.Score)
		if m.narrator != nil && m.gameState.Score > prevHigh {
			m.narrator.Announce(core.Event{
				Tag:      core.EventHighscore,
				Distance: m.gameState.Score,
			})
		}
	}

	m.enteringName = false
	m.scoreSaved = true
	m.nameInput.Blur()
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Mid-run resizes restart the run with the new viewport.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.keys.Reset()
	}

	return m, nil
}

// handleTick advances the simulation by one tick and shuffles events to the
// narrator and lines back from it.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.keys.Frame()

	// Restart after game over rebuilds the run with a fresh seed.
	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.enteringName = false
		m.keys.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if m.narrator != nil {
		for _, ev := range result.Events {
			m.narrator.Announce(ev)
		}
		select {
		case line := <-m.narrator.Lines():
			m.comment = line
			m.commentTicks = commentLifetime
		default:
		}
	}
	if m.commentTicks > 0 {
		m.commentTicks--
	}

	// Game over: open the name prompt once, and only for a qualifying score.
	if m.gameState.GameOver && !m.scoreSaved && !m.enteringName {
		qualifies := false
		if m.store != nil {
			qualifies, _ = m.store.IsTopScore(m.gameState.Score)
		}
		if qualifies {
			m.enteringName = true
			m.nameInput.SetValue("")
			m.nameInput.Focus()
		} else {
			m.scoreSaved = true
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file under ~/.ski.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".ski", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	// The bottom rows belong to the session chrome: the name prompt when a
	// leaderboard slot is open, the announcer line while one is fresh.
	lines := strings.Split(out, "\n")
	if m.enteringName && len(lines) > 2 {
		lines[len(lines)-2] = promptStyle.Render(" Top score! Name: ") + m.nameInput.View()
	}
	if m.commentTicks > 0 && m.comment != "" && len(lines) > 1 {
		lines[len(lines)-1] = commentStyle.Render(" " + m.comment)
	}
	return strings.Join(lines, "\n")
}

// Run starts the Bubble Tea program for a local session.
func Run(game registry.Game, store *storage.Store, narrator *commentary.Dispatcher, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, narrator, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
