package tui

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/registry"
)

type stubGame struct {
	resets   []core.RuntimeConfig
	steps    []core.Controls
	state    core.GameState
	resetErr error
}

func (g *stubGame) ID() string { return "tui-stub" }
func (g *stubGame) Title() string { return "Stub Mode" }
func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Reset(cfg core.RuntimeConfig) error {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{Year: 1957}
	return g.resetErr
}

func (g *stubGame) Step(in core.Controls) core.StepResult {
	g.steps = append(g.steps, in)
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub", core.AttrBold)
}

func init() {
	registry.Register("tui-stub", func() registry.Game { return &stubGame{} })
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func newTestModel(t *testing.T, g *stubGame) Model {
	t.Helper()
	m, err := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, Seed: 1}, time.Millisecond, DefaultTheme())
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	return m
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "dim", core.AttrDim)
	s.DrawText(4, 0, "bold", core.AttrBold)
	s.DrawText(0, 1, "plain", core.AttrNormal)
	s.SetCell(0, 2, core.Cell{Rune: '?', Attr: core.Attr(42)})

	got := ansi.Strip(RenderScreen(s, DefaultTheme()))
	if got != s.String() {
		t.Errorf("RenderScreen() text = %q, expected %q", got, s.String())
	}
}

func TestApplyKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msgs     []tea.KeyMsg
		expected core.Controls
		handled  bool
	}{
		{"arrow up", []tea.KeyMsg{{Type: tea.KeyUp}}, core.Controls{DY: -1}, true},
		{"wasd right", []tea.KeyMsg{keyRunes("d")}, core.Controls{DX: 1}, true},
		{"vim left", []tea.KeyMsg{keyRunes("h")}, core.Controls{DX: -1}, true},
		{"space fires", []tea.KeyMsg{{Type: tea.KeySpace, Runes: []rune{' '}}}, core.Controls{Fire: true}, true},
		{"last key per axis wins", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyDown}}, core.Controls{DY: 1}, true},
		{"diagonal", []tea.KeyMsg{{Type: tea.KeyLeft}, keyRunes("w")}, core.Controls{DY: -1, DX: -1}, true},
		{"other key", []tea.KeyMsg{keyRunes("x")}, core.Controls{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c core.Controls
			var handled bool
			for _, msg := range tt.msgs {
				handled = keys.ApplyKey(msg, &c)
			}
			if c != tt.expected {
				t.Errorf("ApplyKey() controls = %+v, expected %+v", c, tt.expected)
			}
			if handled != tt.handled {
				t.Errorf("ApplyKey() = %v, expected %v", handled, tt.handled)
			}
		})
	}
}

func TestNewModelReservesStatusLine(t *testing.T) {
	g := &stubGame{}
	newTestModel(t, g)

	if len(g.resets) != 1 {
		t.Fatalf("Reset called %d times, expected 1", len(g.resets))
	}
	if got := g.resets[0]; got.ScreenW != 40 || got.ScreenH != 11 {
		t.Errorf("Reset() size = %dx%d, expected 40x11", got.ScreenW, got.ScreenH)
	}
}

func TestNewModelResetError(t *testing.T) {
	g := &stubGame{resetErr: errors.New("no art")}
	if _, err := NewModel(g, core.DefaultConfig(), time.Millisecond, DefaultTheme()); err == nil {
		t.Error("NewModel() should return the Reset error")
	}
}

func TestTickStepsAndClearsControls(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := update(m, TickMsg{Gen: m.gen})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	m, _ = update(m, TickMsg{Gen: m.gen})

	if len(g.steps) != 2 {
		t.Fatalf("Step called %d times, expected 2", len(g.steps))
	}
	if g.steps[0] != (core.Controls{DX: 1, Fire: true}) {
		t.Errorf("first step controls = %+v", g.steps[0])
	}
	if !g.steps[1].Idle() {
		t.Errorf("controls not cleared after tick: %+v", g.steps[1])
	}
}

func TestStaleTickIgnored(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)

	_, cmd := update(m, TickMsg{Gen: m.gen + 1})
	if cmd != nil || len(g.steps) != 0 {
		t.Error("a tick from another model must be ignored")
	}
}

func TestFinishedQuits(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)
	g.state.Finished = true

	m, cmd := update(m, TickMsg{Gen: m.gen})
	if !isQuit(cmd) || !m.IsQuitting() {
		t.Error("standalone model should quit when the game finishes")
	}

	g = &stubGame{}
	m = newTestModel(t, g)
	m.inSession = true
	g.state.Finished = true

	m, cmd = update(m, TickMsg{Gen: m.gen})
	if cmd != nil || !m.BackToMenu() {
		t.Error("session model should return to the menu when the game finishes")
	}
}

func TestRestartOnlyWhenGameOver(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)

	m, _ = update(m, keyRunes("r"))
	m, _ = update(m, TickMsg{Gen: m.gen})
	if len(g.resets) != 1 {
		t.Fatal("restart must be ignored while the ship is alive")
	}

	g.state.GameOver = true
	m, _ = update(m, TickMsg{Gen: m.gen})
	m, _ = update(m, keyRunes("r"))
	m, _ = update(m, TickMsg{Gen: m.gen})

	if len(g.resets) != 2 {
		t.Errorf("Reset called %d times, expected 2", len(g.resets))
	}
	if m.GameState().GameOver {
		t.Error("state should be fresh after restart")
	}
}

func TestResizeResets(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)

	m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if len(g.resets) != 1 {
		t.Error("same size should not reset")
	}

	m, _ = update(m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if len(g.resets) != 2 {
		t.Fatalf("Reset called %d times, expected 2", len(g.resets))
	}
	if got := g.resets[1]; got.ScreenW != 60 || got.ScreenH != 19 {
		t.Errorf("Reset() size = %dx%d, expected 60x19", got.ScreenW, got.ScreenH)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, expected 60x19", m.screen.Width(), m.screen.Height())
	}
}

func TestBackAndQuit(t *testing.T) {
	m := newTestModel(t, &stubGame{})
	_, cmd := update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Error("back should quit a standalone game")
	}

	m = newTestModel(t, &stubGame{})
	m.inSession = true
	m, cmd = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil || !m.BackToMenu() {
		t.Error("back should return to the menu inside a session")
	}

	m = newTestModel(t, &stubGame{})
	m, cmd = update(m, keyRunes("q"))
	if !isQuit(cmd) || m.View() != "" {
		t.Error("q should quit and blank the view")
	}
}

func TestViewShowsStatus(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)
	g.state = core.GameState{Year: 1999, Score: 7}
	m, _ = update(m, TickMsg{Gen: m.gen})

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "stub") || !strings.Contains(view, "Year 1999") || !strings.Contains(view, "Score 7") {
		t.Errorf("View() = %q", view)
	}

	g.state.GameOver = true
	m, _ = update(m, TickMsg{Gen: m.gen})
	if !strings.Contains(ansi.Strip(m.View()), "GAME OVER") {
		t.Error("status line should announce game over")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 40, ScreenH: 12}, DefaultTheme())
	if len(m.items) == 0 {
		t.Fatal("menu has no items")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if !isQuit(cmd) || m.Selected() == nil || m.Selected().GameID != m.items[0].GameID {
		t.Errorf("Selected() = %+v", m.Selected())
	}
	if !strings.Contains(ansi.Strip(m.View()), "Stub Mode") {
		t.Error("menu view should list mode titles")
	}
}

func TestSessionFlow(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12}
	s := NewSessionModel(cfg, time.Millisecond, DefaultTheme(), log.New(io.Discard))

	for i, item := range s.menu.items {
		if item.GameID == "tui-stub" {
			s.menu.cursor = i
		}
	}

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.gameModel == nil || cmd == nil {
		t.Fatal("selecting a mode should start a game")
	}
	if s.gameModel.game.ID() != "tui-stub" {
		t.Errorf("started %q", s.gameModel.game.ID())
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.gameModel != nil || s.quitting {
		t.Error("back should return to the menu")
	}

	next, cmd = s.Update(keyRunes("q"))
	s = next.(SessionModel)
	if !isQuit(cmd) || s.View() != "" {
		t.Error("q in the menu should end the session")
	}
}
