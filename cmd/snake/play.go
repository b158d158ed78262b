package main

import (
	"fmt"
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

var (
	flagConfig     string
	flagDifficulty string
	flagShotDir    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD  - Steer
  Space/Enter  - Start
  P            - Pause
  R            - Restart
  T            - Cycle color theme
  M            - Toggle wrap/solid walls
  G            - Toggle grid
  +/-          - Change base speed
  F1           - Show key help
  F2           - Photo mode (hide UI)
  F5/Ctrl+S    - Save a text screenshot
  Q/Esc        - Quit

Difficulty options:
  easy   - Food lasts longer, slower start
  normal - Stock tuning
  hard   - Food expires sooner, faster start

Examples:
  snake play
  snake play --difficulty hard
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagShotDir, "screenshots", "", "Directory for screenshots (default: ~/.snake/screenshots)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	prefsStore, err := prefs.NewStore(flagPrefsPath)
	if err != nil {
		return err
	}
	p := prefsStore.Load()
	logger.Debug("preferences loaded", "path", prefsStore.Path(), "best", p.BestScore)

	opts := tui.Options{Logger: logger, ScreenshotDir: flagShotDir}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
	} else {
		defer store.Close()
		opts.Runs = store
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := snake.New(cfg, p, prefsStore)
	if err := tui.Run(game, rcfg, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// loadConfig loads the tuning and applies the difficulty preset.
func loadConfig() (config.SnakeConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	config.ApplySnakePreset(&cfg, preset)
	return cfg, nil
}
