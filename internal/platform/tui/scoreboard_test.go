package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

func TestScoreboardTabs(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)

	if len(m.tabs) != arkanoid.LevelCount()+1 {
		t.Fatalf("tabs = %d, expected %d", len(m.tabs), arkanoid.LevelCount()+1)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.tabCursor != 1 || m.tabs[1].levelID != "staircase" {
		t.Errorf("tab after Tab = %d (%s), expected staircase", m.tabCursor, m.tabs[m.tabCursor].levelID)
	}

	prev, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = prev.(ScoreboardModel)
	prev, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = prev.(ScoreboardModel)
	if m.tabCursor != len(m.tabs)-1 {
		t.Errorf("tab after wrapping back = %d, expected %d", m.tabCursor, len(m.tabs)-1)
	}

	if !strings.Contains(m.View(), "No rounds played") {
		t.Error("View() without a store should report no rounds")
	}
}

func TestScoreboardLoadsScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i, level := range []string{"staircase", "halo"} {
		entry := storage.ScoreEntry{GameID: arkanoid.GameID, RunID: level, Level: level, Score: (i + 1) * 100, Won: i == 1}
		if _, err := store.SaveScore(entry); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scores) != 2 {
		t.Errorf("scores on all-levels tab = %d, expected 2", len(m.scores))
	}
	if m.stats == nil || m.stats.GamesCount != 2 || m.stats.Wins != 1 {
		t.Errorf("stats = %+v, expected 2 rounds and 1 win", m.stats)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	if len(m.scores) != 1 || m.scores[0].Level != "staircase" {
		t.Errorf("staircase tab scores = %+v", m.scores)
	}

	back, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !back.(ScoreboardModel).IsGoingBack() {
		t.Error("Esc should go back")
	}
}
