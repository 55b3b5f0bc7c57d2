// Package arkanoid implements the arkanoid game on top of the physics core:
// arena layout, level maps, hit listeners and the per-tick orchestration.
package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// CellKind classifies a level cell.
type CellKind int

const (
	CellEmpty     CellKind = iota // No block
	CellBreakable                 // Colored block, removed when it recolors a ball
	CellWall                      // Neutral block, never removed
	CellKill                      // Kill zone inside the block grid
)

// Cell is one position of the level grid.
type Cell struct {
	Kind  CellKind
	Color core.Color
}

// Level is a block layout on a fixed grid.
type Level struct {
	ID     string
	Name   string
	Width  int      // Number of columns
	Height int      // Number of rows
	Cells  [][]Cell // [row][col]
}

// Breakable returns the number of blocks that must be cleared to win.
func (l *Level) Breakable() int {
	count := 0
	for _, row := range l.Cells {
		for _, c := range row {
			if c.Kind == CellBreakable {
				count++
			}
		}
	}
	return count
}

// cellColors maps level characters to breakable block colors.
var cellColors = map[byte]core.Color{
	'R': core.ColorRed,
	'O': core.ColorOrange,
	'Y': core.ColorYellow,
	'G': core.ColorGreen,
	'C': core.ColorCyan,
	'B': core.ColorBlue,
	'M': core.ColorMagenta,
	'W': core.ColorWhite,
}

// ParseLevel creates a Level from an ASCII map.
// Characters:
//
//	'R','O','Y','G','C','B','M' = breakable block of that color
//	'W' = white breakable block (scores twice)
//	'#' = gray wall
//	'D' = dark gray wall
//	'K' = kill zone
//	anything else = empty
func ParseLevel(id, name string, lines []string) *Level {
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, len(line))
	}

	level := &Level{
		ID:     id,
		Name:   name,
		Width:  maxWidth,
		Height: len(lines),
		Cells:  make([][]Cell, len(lines)),
	}

	for row, line := range lines {
		level.Cells[row] = make([]Cell, maxWidth)
		for col := range maxWidth {
			var ch byte = '.'
			if col < len(line) {
				ch = line[col]
			}

			if c, ok := cellColors[ch]; ok {
				level.Cells[row][col] = Cell{Kind: CellBreakable, Color: c}
				continue
			}
			switch ch {
			case '#':
				level.Cells[row][col] = Cell{Kind: CellWall, Color: core.ColorGray}
			case 'D':
				level.Cells[row][col] = Cell{Kind: CellWall, Color: core.ColorDarkGray}
			case 'K':
				level.Cells[row][col] = Cell{Kind: CellKill, Color: core.ColorPink}
			}
		}
	}

	return level
}

// BuiltinLevels returns all built-in levels. Maps are 12 columns wide to
// span the arena from the block origin to the right wall.
func BuiltinLevels() []*Level {
	return []*Level{
		// Level 1: Staircase
		ParseLevel("staircase", "Staircase", []string{
			"RRRRRRRRRRRR",
			".OOOOOOOOOOO",
			"..YYYYYYYYYY",
			"...GGGGGGGGG",
			"....CCCCCCCC",
			".....BBBBBBB",
		}),

		// Level 2: Pyramid
		ParseLevel("pyramid", "Pyramid", []string{
			".....RR.....",
			"....OOOO....",
			"...YYYYYY...",
			"..GGGGGGGG..",
			".CCCCCCCCCC.",
			"BBBBBBBBBBBB",
		}),

		// Level 3: Checkerboard
		ParseLevel("checker", "Checkerboard", []string{
			"R.O.Y.G.C.B.",
			".R.O.Y.G.C.B",
			"B.C.G.Y.O.R.",
			".B.C.G.Y.O.R",
		}),

		// Level 4: Fortress (gray walls)
		ParseLevel("fortress", "Fortress", []string{
			"############",
			"#RRRRRRRRRR#",
			"#OOOOOOOOOO#",
			"#YYYYYYYYYY#",
			"#..........#",
		}),

		// Level 5: Halo (white blocks score twice)
		ParseLevel("halo", "Halo", []string{
			"WWWWWWWWWWWW",
			"RRRRRRRRRRRR",
			"............",
			"GGGGGGGGGGGG",
			"BBBBBBBBBBBB",
			"MMMMMMMMMMMM",
		}),

		// Level 6: Gauntlet (kill zones in the grid)
		ParseLevel("gauntlet", "Gauntlet", []string{
			"RRRRRRRRRRRR",
			"OOOOOOOOOOOO",
			"D.K..DD..K.D",
			"YYYYYYYYYYYY",
			"CCCCCCCCCCCC",
		}),
	}
}

// GetLevelByID returns a level by its ID.
func GetLevelByID(id string) (*Level, bool) {
	for i, level := range BuiltinLevels() {
		if level.ID == id {
			return GetLevel(i), true
		}
	}
	return nil, false
}

// GetLevel returns a level by index (wraps around if index >= len).
func GetLevel(index int) *Level {
	levels := BuiltinLevels()
	if index < 0 {
		index = 0
	}
	return levels[index%len(levels)]
}

// LevelCount returns the total number of available levels.
func LevelCount() int {
	return len(BuiltinLevels())
}
