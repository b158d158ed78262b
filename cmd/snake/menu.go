package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/prefs"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a launcher menu",
	Long: `Start in interactive menu mode.

Pick a difficulty, play, and come back to the menu when you quit a game.
The scoreboard is one key away.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right      - Change difficulty
  Enter/Space     - Select
  Tab             - Scoreboard
  Q/Esc           - Quit

Examples:
  snake menu
  snake menu --fps 30
  snake menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty preset: easy, normal, hard")
	menuCmd.Flags().StringVar(&flagShotDir, "screenshots", "", "Directory for screenshots (default: ~/.snake/screenshots)")
	rootCmd.AddCommand(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	base, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	prefsStore, err := prefs.NewStore(flagPrefsPath)
	if err != nil {
		return err
	}

	opts := tui.Options{Logger: logger, ScreenshotDir: flagShotDir}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
	} else {
		defer store.Close()
		opts.Runs = store
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		// Prefs are reloaded every time so the menu shows the latest best score.
		p := prefsStore.Load()

		res, err := tui.RunMenu(rcfg, preset, p.BestScore, p.ThemeIndex)
		if err != nil {
			return err
		}
		rcfg = res.Config
		preset = res.Preset

		switch res.Choice {
		case tui.ChoicePlay:
			cfg := base
			config.ApplySnakePreset(&cfg, preset)
			logger.Debug("starting game", "difficulty", preset)
			if err := tui.Run(snake.New(cfg, p, prefsStore), rcfg, opts); err != nil {
				return err
			}

		case tui.ChoiceScoreboard:
			if store == nil {
				logger.Warn("no run history to show")
				continue
			}
			if err := tui.RunScoreboard(store, p.ThemeIndex, rcfg.ScreenW, rcfg.ScreenH); err != nil {
				return err
			}

		default:
			return nil
		}
	}
}
