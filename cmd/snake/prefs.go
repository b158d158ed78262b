package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/prefs"
	"github.com/vovakirdan/tui-snake/internal/theme"
)

var flagKeepBest bool

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show saved preferences",
	Long: `Print the preferences the game loads on start: theme, grid, wall mode,
base speed, best score and the stats of the last run.

Examples:
  snake prefs
  snake prefs reset --keep-best`,
	Args: cobra.NoArgs,
	RunE: runPrefsShow,
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default preferences",
	Args:  cobra.NoArgs,
	RunE:  runPrefsReset,
}

func init() {
	prefsResetCmd.Flags().BoolVar(&flagKeepBest, "keep-best", false, "Keep the best score")
	prefsCmd.AddCommand(prefsResetCmd)
}

func runPrefsShow(_ *cobra.Command, _ []string) error {
	store, err := prefs.NewStore(flagPrefsPath)
	if err != nil {
		return err
	}
	p := store.Load()
	p.Normalize(theme.Count())

	fmt.Printf("# %s (theme: %s)\n", store.Path(), theme.Get(p.ThemeIndex).Name)
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("cannot encode preferences: %w", err)
	}
	return enc.Close()
}

func runPrefsReset(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := prefs.NewStore(flagPrefsPath)
	if err != nil {
		return err
	}

	p := prefs.Defaults()
	if flagKeepBest {
		p.BestScore = store.Load().BestScore
	}
	if err := store.Save(p); err != nil {
		return err
	}
	logger.Info("preferences reset", "path", store.Path(), "best", p.BestScore)
	return nil
}
