package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing. The level may be given by number (see 'arkanoid levels')
or by ID. Without a level, a menu lets you pick one and you return to it
after each round.

Controls:
  Left/Right, A/D, H/L  - Move paddle
  P/Space               - Pause
  R                     - Restart (after the round ends)
  B/Esc                 - Back to menu (when paused or finished)
  Ctrl+S                - Save a screenshot
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Slow ball, wide paddle, speeds up from the lowest level
  normal - Speeds up from 30% difficulty
  hard   - Fast ball, narrow paddle, speeds up from 70% difficulty
  fixed  - No progression, ball keeps the configured speed

Examples:
  arkanoid play
  arkanoid play 2
  arkanoid play halo --difficulty easy
  arkanoid play fortress --config ./my-arkanoid.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// resolveLevel maps a 1-based level number or a level ID to a level index.
func resolveLevel(arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > arkanoid.LevelCount() {
			return 0, fmt.Errorf("level number %d out of range 1-%d", n, arkanoid.LevelCount())
		}
		return n - 1, nil
	}

	for i, level := range arkanoid.BuiltinLevels() {
		if level.ID == arg {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q, run 'arkanoid levels' to see available levels", arg)
}

func runPlay(_ *cobra.Command, args []string) error {
	levelIndex := -1
	if len(args) == 1 {
		idx, err := resolveLevel(args[0])
		if err != nil {
			return err
		}
		levelIndex = idx
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	arkanoid.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if levelIndex >= 0 {
		arkanoid.SetStartLevel(levelIndex)
		game, err := registry.Create(arkanoid.GameID)
		if err != nil {
			return err
		}
		_, err = tui.Run(game, store, cfg, logger)
		return err
	}

	return menuLoop(store, cfg, logger)
}

// menuLoop alternates between the level picker, the scoreboard and rounds
// until the player quits.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		arkanoid.SetStartLevel(result.LevelIndex)
		backToMenu, err := tui.Run(arkanoid.New(), store, cfg, logger)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
