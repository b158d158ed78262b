package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/prefs"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagTUI   bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the highest-scoring runs from the run history.

Examples:
  snake scores
  snake scores --limit 25
  snake scores --tui`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return listRuns(false)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the most recent runs",
	Long: `Display the most recent runs, newest first.

Examples:
  snake history
  snake history --limit 50
  snake history --clear`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if flagClear {
			return clearHistory()
		}
		return listRuns(true)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{scoresCmd, historyCmd} {
		cmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
		cmd.Flags().BoolVar(&flagTUI, "tui", false, "Open the interactive scoreboard")
	}
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
}

func listRuns(recent bool) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagTUI {
		return runScoreboard(store)
	}

	title := "Best Runs"
	fetch := store.TopRuns
	if recent {
		title = "Recent Runs"
		fetch = store.RecentRuns
	}
	runs, err := fetch(flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Ultimate Snake - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-5s  %-6s  %-6s  %-6s  %-5s  %-6s  %-5s  %-5s  %s\n",
		"Rank", "Score", "Length", "Apples", "Combo", "Time", "Walls", "Cause", "Date")
	fmt.Printf("  %-5s  %-6s  %-6s  %-6s  %-5s  %-6s  %-5s  %-5s  %s\n",
		"----", "-----", "------", "------", "-----", "----", "-----", "-----", "----")

	for i, r := range runs {
		rank := fmt.Sprintf("%d", i+1)
		if recent {
			rank = fmt.Sprintf("#%d", r.ID)
		}
		fmt.Printf("  %-5s  %-6d  %-6d  %-6d  %-5d  %-6s  %-5s  %-5s  %s\n",
			rank, r.Score, r.Length, r.Apples, r.MaxCombo, clock(r.Duration),
			r.WallMode, r.Cause, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	sum, err := store.Summary()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Played: %s\n",
			sum.BestScore, sum.Runs, sum.AvgScore, sum.TimePlayed.Round(time.Second))
	}
	return nil
}

func runScoreboard(store *storage.Store) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	themeIndex := 0
	if ps, err := prefs.NewStore(flagPrefsPath); err == nil {
		themeIndex = ps.Load().ThemeIndex
	}
	return tui.RunScoreboard(store, themeIndex, width, height)
}

func clearHistory() error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ClearRuns(); err != nil {
		return err
	}
	logger.Info("run history cleared", "db", flagDBPath)
	return nil
}

// clock renders a duration as mm:ss.
func clock(d time.Duration) string {
	s := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
