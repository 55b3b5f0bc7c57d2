package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// roundInfo is implemented by games that identify their rounds.
type roundInfo interface {
	RunID() string
	LevelID() string
	Ticks() int
}

// Model runs one game in Bubble Tea. Keys pressed between two ticks are
// collected into a single input frame and applied on the next tick.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	pending core.InputFrame // actions since the last tick
	state   core.GameState  // as of the last tick

	saved      bool // the finished round has been stored
	quitting   bool
	backToMenu bool

	screenshotDir string
}

// NewModel creates a model for game. A nil store disables score saving and
// a nil logger discards log output.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg = cfg.WithDefaults()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:         store,
		logger:        logger,
		config:        cfg,
		keyMapper:     NewKeyMapper(),
		screenshotDir: defaultScreenshotDir(),
	}
}

// defaultScreenshotDir is ~/.arcade/screenshots, or a relative directory
// when the home directory is unknown.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// Init starts the first round.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles key presses, resizes and ticks.
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

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("cannot save screenshot", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.pending) {
		m.quitting = true
		return m, tea.Quit
	}

	// Leaving is only allowed once the round is paused or over
	if m.pending.Has(core.ActionBack) && (m.state.GameOver || m.state.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize rebuilds the round for the new size unless it is already over.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.state.GameOver {
		m.game.Reset(m.config)
		m.state = m.game.State()
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.pending
	m.pending.Clear()

	wasOver := m.state.GameOver
	m.state = m.game.Step(in).State

	switch {
	case wasOver && !m.state.GameOver:
		// restarted
		m.saved = false
	case m.state.GameOver && !m.saved:
		m.saveRound()
		m.saved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRound stores the finished round. Failures are logged; play goes on.
func (m Model) saveRound() {
	if m.store == nil || m.state.Score <= 0 {
		return
	}

	entry := storage.ScoreEntry{
		GameID: m.game.ID(),
		Score:  m.state.Score,
		Won:    m.state.Won,
	}
	if info, ok := m.game.(roundInfo); ok {
		entry.RunID = info.RunID()
		entry.Level = info.LevelID()
		entry.Ticks = info.Ticks()
	}

	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Error("cannot save score", "run_id", entry.RunID, "err", err)
		return
	}
	m.logger.Info("score saved", "run_id", entry.RunID, "level", entry.Level, "score", entry.Score, "won", entry.Won)
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the game.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the player quits or goes back.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	p := tea.NewProgram(NewModel(game, store, cfg, logger), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
