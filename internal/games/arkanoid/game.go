package arkanoid

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "arkanoid"

// Game states
const (
	StatePlaying  = "playing"  // Balls in play
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // Every ball lost
	StateWin      = "win"      // Every breakable block cleared
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel stores the level index chosen via CLI or menu
var startLevel int

// defaultLogger receives game events for instances created by the registry
var defaultLogger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// SetStartLevel sets the level index new games start on.
func SetStartLevel(index int) {
	startLevel = max(index, 0)
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Game implements the arkanoid game logic.
type Game struct {
	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.ArkanoidConfig
	fixedCfg   bool // cfg was injected; Reset does not reload it
	difficulty *config.DifficultyManager
	logger     *log.Logger

	// World
	level       *Level
	levelIndex  int
	customLevel *Level // played instead of the built-in list when set
	env         *physics.Environment
	sprites     *physics.SpriteCollection
	paddle      *physics.Paddle
	balls       []*physics.Ball
	zones       []labeledZone

	// Counters shared with the hit listeners
	remainingBlocks *Counter
	remainingBalls  *Counter
	score           *Counter

	// Game state
	state     string
	tickCount int
	ballSpeed float64
	runID     string

	// Layout
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{
		levelIndex: startLevel,
		logger:     defaultLogger,
	}
}

// NewAtLevel creates a game that loads its configuration on Reset and
// starts on the given level.
func NewAtLevel(index int) *Game {
	g := New()
	g.levelIndex = max(index, 0)
	return g
}

// NewWithConfig creates a game with a fixed configuration and start level.
func NewWithConfig(cfg config.ArkanoidConfig, levelIndex int) *Game {
	return &Game{
		cfg:        cfg,
		fixedCfg:   true,
		levelIndex: max(levelIndex, 0),
		logger:     defaultLogger,
	}
}

// NewWithLevel creates a game with a fixed configuration playing a custom level.
func NewWithLevel(cfg config.ArkanoidConfig, level *Level) *Game {
	g := NewWithConfig(cfg, 0)
	g.customLevel = level
	return g
}

// SetLogger replaces this game's logger. Takes effect on the next Reset.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Arkanoid"
}

// RunID returns the identifier of the current round.
func (g *Game) RunID() string {
	return g.runID
}

// Level returns the level being played.
func (g *Game) Level() *Level {
	return g.level
}

// LevelID returns the ID of the level being played.
func (g *Game) LevelID() string {
	if g.level == nil {
		return ""
	}
	return g.level.ID
}

// Ticks returns the number of simulated ticks in the current round.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadArkanoid(configPath)
		if err != nil {
			g.logger.Warn("using default config", "path", configPath, "err", err)
			cfg = config.DefaultArkanoidConfig()
		}
		if difficultyPreset != "" {
			config.ApplyArkanoidPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.minScreenW = 40
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	if g.customLevel != nil {
		g.level = g.customLevel
	} else {
		g.level = GetLevel(g.levelIndex)
	}
	g.tickCount = 0
	g.ballSpeed = g.difficulty.Speed(g.cfg.Ball.Speed, 0, 0)
	g.runID = uuid.NewString()

	g.buildArena(g.ballSpeed)
	g.state = StatePlaying

	g.logger.Debug("round started",
		"run_id", g.runID, "level", g.level.ID,
		"blocks", g.remainingBlocks.Value(), "balls", g.remainingBalls.Value(),
		"ball_speed", g.ballSpeed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	// Don't update if paused or finished
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.paddle.Steer(in.Steer())
	g.applyDifficulty()
	g.sprites.NotifyAllTimePassed()

	switch {
	case g.remainingBalls.Value() <= 0:
		g.setState(StateGameOver)
	case g.remainingBlocks.Value() <= 0:
		g.setState(StateWin)
	}

	return core.StepResult{State: g.State()}
}

// applyDifficulty rescales in-flight balls when progression changes the
// target speed. Directions are preserved.
func (g *Game) applyDifficulty() {
	if !g.difficulty.IsEnabled() {
		return
	}
	target := g.difficulty.Speed(g.cfg.Ball.Speed, g.score.Value(), g.tickCount)
	if math.Abs(target-g.ballSpeed) < 1e-9 {
		return
	}
	g.ballSpeed = target

	for _, ball := range g.balls {
		v := ball.Velocity()
		speed := v.Speed()
		if ball.Removed() || speed == 0 {
			continue
		}
		k := target / speed
		v.DX *= k
		v.DY *= k
		ball.SetVelocity(v)
	}
}

func (g *Game) setState(s string) {
	g.logger.Info("round ended",
		"run_id", g.runID, "state", s, "score", g.score.Value(), "ticks", g.tickCount)
	g.state = s
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.score == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.score.Value(),
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
