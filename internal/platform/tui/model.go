package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/registry"
)

// statusHeight is the number of terminal rows below the playfield.
const statusHeight = 1

// Model is the Bubble Tea model for running a game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	delay      time.Duration
	gen        uint64
	theme      Theme
	keys       KeyMap
	help       help.Model
	controls   core.Controls
	gameState  core.GameState
	restart    bool
	inSession  bool // back returns to the menu instead of quitting
	quitting   bool
	backToMenu bool
	err        error
}

// NewModel resets game for a terminal of cfg.ScreenW x cfg.ScreenH and wraps
// it in a model that steps it every delay.
func NewModel(game registry.Game, cfg core.RuntimeConfig, delay time.Duration, theme Theme) (Model, error) {
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}

	m := Model{
		game:   game,
		config: fieldConfig(cfg),
		delay:  delay,
		gen:    nextGen(),
		theme:  theme,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)

	if err := m.game.Reset(m.config); err != nil {
		return Model{}, err
	}
	m.gameState = m.game.State()
	return m, nil
}

// fieldConfig leaves room for the status line under the playfield.
func fieldConfig(term core.RuntimeConfig) core.RuntimeConfig {
	term.ScreenH = max(term.ScreenH-statusHeight, 0)
	return term
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.delay, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
// Control keys accumulate until the next tick; the last key per axis wins.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.inSession {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if m.gameState.GameOver {
			m.restart = true
		}
		return m, nil
	}

	m.keys.ApplyKey(msg, &m.controls)
	return m, nil
}

// handleResize rebuilds the world for the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	cfg := fieldConfig(core.RuntimeConfig{
		ScreenW: msg.Width,
		ScreenH: msg.Height,
		Seed:    m.config.Seed,
	})
	if cfg.ScreenW == m.config.ScreenW && cfg.ScreenH == m.config.ScreenH {
		return m, nil
	}

	m.config = cfg
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)

	// The field geometry is fixed per world, so a resize starts over.
	if err := m.game.Reset(m.config); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	m.gameState = m.game.State()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.restart && m.gameState.GameOver {
		m.restart = false
		m.config.Seed = time.Now().UnixNano()
		if err := m.game.Reset(m.config); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.gameState = m.game.State()
		m.controls.Clear()
		return m, tickCmd(m.delay, m.gen)
	}

	result := m.game.Step(m.controls)
	m.gameState = result.State
	m.controls.Clear()

	if m.gameState.Finished {
		if m.inSession {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.delay, m.gen)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".spacegarbage", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%d_%s.txt", m.game.ID(), m.gameState.Year, timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme) + "\n" + m.statusLine()
}

// statusLine shows year and score followed by the key help.
func (m Model) statusLine() string {
	year := m.theme.StatusValue.Render(strconv.Itoa(m.gameState.Year))
	score := m.theme.StatusValue.Render(strconv.Itoa(m.gameState.Score))
	status := fmt.Sprintf(" Year %s  Score %s ", year, score)

	bindings := m.keys.ShortHelp()
	if m.gameState.GameOver {
		status = m.theme.StatusAlert.Render(" GAME OVER ") + status
		bindings = m.keys.GameOverHelp()
	}

	m.help.Width = max(m.config.ScreenW-lipgloss.Width(status)-1, 0)
	line := status + " " + m.help.ShortHelpView(bindings)
	return lipgloss.NewStyle().MaxWidth(m.config.ScreenW).Render(line)
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// BackToMenu reports whether the player asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, delay time.Duration) error {
	model, err := NewModel(game, cfg, delay, DefaultTheme())
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
