package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
)

// MenuItem is one level in the picker.
type MenuItem struct {
	Index  int
	ID     string
	Name   string
	Blocks int // breakable blocks in the level
	Best   int // best recorded score, 0 if never played
	Wins   int
}

// MenuModel is the level picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting   bool
	selected   *MenuItem
	scoreboard bool
}

// NewMenuModel lists the built-in levels. Per-level bests come from store
// when it is available.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.GameStats
	if store != nil {
		// Missing stats only hide the best-score column
		stats, _ = store.GetLevelStats(arkanoid.GameID)
	}

	levels := arkanoid.BuiltinLevels()
	items := make([]MenuItem, len(levels))
	for i, level := range levels {
		items[i] = MenuItem{Index: i, ID: level.ID, Name: level.Name, Blocks: level.Breakable()}
		if st := stats[level.ID]; st != nil {
			items[i].Best = st.HighScore
			items[i].Wins = st.Wins
		}
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		m.selected = &item
		return m, tea.Quit
	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		centerText("A R K A N O I D", m.width, menuTitleStyle),
		"",
		centerText("Select a level", m.width, menuDimStyle),
		"",
	}

	rows := make([]string, len(m.items))
	for i, item := range m.items {
		rows[i] = m.itemLine(i, item)
	}
	lines = append(lines, centerText(strings.Join(rows, "\n"), m.width, lipgloss.NewStyle()), "")
	lines = append(lines, centerText("up/down: choose  enter: play  tab: scores  q: quit", m.width, menuDimStyle))

	return strings.Join(lines, "\n")
}

// itemLine renders one level row: number, name, block count and best score.
// A star marks levels that have been cleared.
func (m MenuModel) itemLine(i int, item MenuItem) string {
	best := "-"
	if item.Best > 0 {
		best = fmt.Sprint(item.Best)
	}
	if item.Wins > 0 {
		best += " *"
	}

	line := fmt.Sprintf(" %d. %-14s %3d blocks   best %-8s", i+1, item.Name, item.Blocks, best)
	if i == m.cursor {
		return menuSelectedStyle.Render(line)
	}
	return line
}

// Selected returns the chosen level, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player left the menu without choosing.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the player asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers styled text within the given width.
func centerText(text string, width int, style lipgloss.Style) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text))
}

// MenuResult is what the player chose in a standalone menu run.
type MenuResult struct {
	LevelIndex      int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu until the player chooses something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	finalModel, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.LevelIndex = m.Selected().Index
	default:
		result.Quit = true
	}
	return result, nil
}
