package arkanoid

import (
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func TestParseLevel(t *testing.T) {
	level := ParseLevel("test", "Test", []string{
		"RW#",
		"DK",
	})

	if level.Width != 3 || level.Height != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", level.Width, level.Height)
	}

	tests := []struct {
		row, col int
		expected Cell
	}{
		{0, 0, Cell{Kind: CellBreakable, Color: core.ColorRed}},
		{0, 1, Cell{Kind: CellBreakable, Color: core.ColorWhite}},
		{0, 2, Cell{Kind: CellWall, Color: core.ColorGray}},
		{1, 0, Cell{Kind: CellWall, Color: core.ColorDarkGray}},
		{1, 1, Cell{Kind: CellKill, Color: core.ColorPink}},
		{1, 2, Cell{Kind: CellEmpty}},
	}

	for _, tc := range tests {
		if got := level.Cells[tc.row][tc.col]; got != tc.expected {
			t.Errorf("Cells[%d][%d] = %+v, expected %+v", tc.row, tc.col, got, tc.expected)
		}
	}

	if got := level.Breakable(); got != 2 {
		t.Errorf("Breakable() = %d, expected 2", got)
	}
}

func TestBuiltinLevels(t *testing.T) {
	expected := map[string]int{
		"staircase": 57,
		"pyramid":   42,
		"checker":   24,
		"fortress":  30,
		"halo":      60,
		"gauntlet":  48,
	}

	if LevelCount() != len(expected) {
		t.Fatalf("LevelCount() = %d, expected %d", LevelCount(), len(expected))
	}

	for _, level := range BuiltinLevels() {
		want, ok := expected[level.ID]
		if !ok {
			t.Errorf("unexpected level %q", level.ID)
			continue
		}
		if got := level.Breakable(); got != want {
			t.Errorf("%s: Breakable() = %d, expected %d", level.ID, got, want)
		}
		if level.Width != 12 {
			t.Errorf("%s: Width = %d, expected 12", level.ID, level.Width)
		}
	}
}

func TestStaircaseLayout(t *testing.T) {
	level := GetLevel(0)
	colors := []core.Color{
		core.ColorRed, core.ColorOrange, core.ColorYellow,
		core.ColorGreen, core.ColorCyan, core.ColorBlue,
	}

	for row, cells := range level.Cells {
		for col, cell := range cells {
			if col < row {
				if cell.Kind != CellEmpty {
					t.Errorf("Cells[%d][%d] = %+v, expected empty", row, col, cell)
				}
				continue
			}
			if cell.Kind != CellBreakable || cell.Color != colors[row] {
				t.Errorf("Cells[%d][%d] = %+v, expected %v block", row, col, cell, colors[row])
			}
		}
	}
}

func TestGetLevel(t *testing.T) {
	if GetLevel(LevelCount()).ID != GetLevel(0).ID {
		t.Error("GetLevel() should wrap past the last level")
	}
	if GetLevel(-3).ID != "staircase" {
		t.Error("GetLevel() with a negative index should return the first level")
	}

	level, ok := GetLevelByID("halo")
	if !ok || level.Name != "Halo" {
		t.Errorf("GetLevelByID(halo) = %v, %v", level, ok)
	}
	if _, ok := GetLevelByID("missing"); ok {
		t.Error("GetLevelByID() found a missing level")
	}
}
