// snake is a terminal snake game with power-ups, themes and a run history.
//
// Usage:
//
//	snake play               - Play the game
//	snake menu               - Start with a launcher menu
//	snake scores             - Show the best runs
//	snake history            - Show the most recent runs
//	snake export [file]      - Export the run history as CSV
//	snake prefs              - Show or reset saved preferences
//	snake config             - Print the effective game tuning
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.snake/runs.db)
//	--prefs <path>      - Set preferences path (default: ~/.snake/prefs.yaml)
//	--log-file <path>   - Write logs to a file (otherwise play and menu drop logs on a terminal)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/prefs"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagPrefsPath string
	flagLogFile   string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Ultimate Snake - a snake game for your terminal",
	Long: `Ultimate Snake is a terminal snake game with power-ups, color themes
and a persistent run history.

Available commands:
  play     - Play the game
  menu     - Launcher menu with difficulty picker
  scores   - View the best runs
  history  - View the most recent runs
  export   - Export the run history as CSV
  prefs    - Show or reset saved preferences
  config   - Print the effective game tuning

Examples:
  snake play
  snake play --difficulty hard
  snake scores --tui
  snake export runs.csv`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagPrefsPath, "prefs", prefs.DefaultPath, "Path to preferences file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (otherwise play and menu drop logs on a terminal)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(configCmd)
}
