package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

func TestMenuSelectsLevel(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	if len(m.items) != arkanoid.LevelCount() {
		t.Fatalf("items = %d, expected %d", len(m.items), arkanoid.LevelCount())
	}

	// Up at the top stays put
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	sel := m.Selected()
	if sel == nil || sel.Index != 1 || sel.ID != "pyramid" {
		t.Fatalf("Selected() = %+v, expected pyramid", sel)
	}
	if sel.Blocks != 42 {
		t.Errorf("Blocks = %d, expected 42", sel.Blocks)
	}
}

func TestMenuShowsBestScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	entry := storage.ScoreEntry{GameID: arkanoid.GameID, RunID: "r1", Level: "halo", Score: 480, Won: true}
	if _, err := store.SaveScore(entry); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30})
	halo := m.items[4]
	if halo.ID != "halo" || halo.Best != 480 || halo.Wins != 1 {
		t.Errorf("halo item = %+v, expected best 480 and 1 win", halo)
	}
	if !strings.Contains(m.View(), "480 *") {
		t.Error("View() should mark the cleared level with its best score")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("Tab should open the scoreboard")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}

	resized, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := resized.(MenuModel).Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() after resize = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}
