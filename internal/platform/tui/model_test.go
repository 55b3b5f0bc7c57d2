package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// fakeRound ends after a fixed number of ticks and restarts on ActionRestart.
type fakeRound struct {
	ticks  int
	length int
	runs   int
	resets int
}

func (g *fakeRound) ID() string      { return "fake" }
func (g *fakeRound) Title() string   { return "Fake" }
func (g *fakeRound) RunID() string   { return "run-" + string(rune('a'+g.runs)) }
func (g *fakeRound) LevelID() string { return "staircase" }
func (g *fakeRound) Ticks() int      { return g.ticks }

func (g *fakeRound) Reset(core.RuntimeConfig) {
	g.resets++
	g.ticks = 0
}

func (g *fakeRound) Step(in core.InputFrame) core.StepResult {
	over := g.ticks >= g.length
	if over && in.Has(core.ActionRestart) {
		g.runs++
		g.ticks = 0
	} else if !over {
		g.ticks++
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeRound) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "tick")
}

func (g *fakeRound) State() core.GameState {
	over := g.ticks >= g.length
	return core.GameState{Score: g.ticks * 5, GameOver: over, Won: over}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return out
}

func TestModelSavesFinishedRoundOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &fakeRound{length: 3}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 5}, nil)
	m.Init()

	for range 6 {
		m = step(t, m, TickMsg{})
	}

	scores, err := store.TopScores("fake", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved rounds = %d, expected 1", len(scores))
	}
	if s := scores[0]; s.Score != 15 || !s.Won || s.Level != "staircase" || s.Ticks != 3 || s.RunID != "run-a" {
		t.Errorf("saved round = %+v", s)
	}

	// A restarted round is saved again when it ends
	m = step(t, m, runeKey('r'))
	for range 4 {
		m = step(t, m, TickMsg{})
	}
	if scores, _ := store.TopScores("fake", "", 10); len(scores) != 2 {
		t.Errorf("saved rounds after restart = %d, expected 2", len(scores))
	}
}

func TestModelBackOnlyWhenOver(t *testing.T) {
	game := &fakeRound{length: 2}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5}, nil)
	m.Init()

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("Esc during play should not leave the round")
	}

	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Esc after the round ended should go back to the menu")
	}
}

func TestModelQuitAndResize(t *testing.T) {
	game := &fakeRound{length: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5}, nil)
	m.Init()

	if !strings.Contains(m.View(), "tick") {
		t.Error("View() should render the game")
	}

	m = step(t, m, tea.WindowSizeMsg{Width: 30, Height: 8})
	if game.resets != 2 {
		t.Errorf("resets = %d, expected a reset on resize", game.resets)
	}
	if m.screen.Width() != 30 || m.screen.Height() != 8 {
		t.Errorf("screen = %dx%d, expected 30x8", m.screen.Width(), m.screen.Height())
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelScreenshot(t *testing.T) {
	game := &fakeRound{length: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 2}, nil)
	m.screenshotDir = t.TempDir()

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "tick") {
		t.Errorf("screenshot = %q, expected it to start with the frame", data)
	}
}
