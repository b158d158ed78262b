package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/export"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the run history as CSV",
	Long: `Write every recorded run, oldest first, as CSV.
Without a file argument the CSV goes to standard output.

Examples:
  snake export
  snake export runs.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(_ *cobra.Command, args []string) error {
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

	runs, err := store.AllRuns()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return export.WriteRuns(os.Stdout, runs)
	}
	if err := export.WriteRunsFile(args[0], runs); err != nil {
		return err
	}
	logger.Info("exported runs", "count", len(runs), "file", args[0])
	return nil
}
