// Package export writes the run history as CSV.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// RunRecord is one CSV row.
type RunRecord struct {
	ID        int64   `csv:"id"`
	PlayedAt  string  `csv:"played_at"`
	Score     int     `csv:"score"`
	Length    int     `csv:"length"`
	Apples    int     `csv:"apples"`
	Golden    int     `csv:"golden"`
	SlowMo    int     `csv:"slowmo"`
	Shrink    int     `csv:"shrink"`
	Portal    int     `csv:"portal"`
	MaxCombo  int     `csv:"max_combo"`
	Seconds   float64 `csv:"time_alive"`
	WallMode  string  `csv:"wall_mode"`
	Cause     string  `csv:"cause"`
}

// Record converts a stored run into a CSV row.
func Record(r storage.Run) RunRecord {
	played := ""
	if !r.CreatedAt.IsZero() {
		played = r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z")
	}
	return RunRecord{
		ID:       r.ID,
		PlayedAt: played,
		Score:    r.Score,
		Length:   r.Length,
		Apples:   r.Apples,
		Golden:   r.Golden,
		SlowMo:   r.SlowMo,
		Shrink:   r.Shrink,
		Portal:   r.Portal,
		MaxCombo: r.MaxCombo,
		Seconds:  r.Duration.Seconds(),
		WallMode: r.WallMode,
		Cause:    r.Cause,
	}
}

// WriteRuns writes runs with a header row.
func WriteRuns(w io.Writer, runs []storage.Run) error {
	records := make([]RunRecord, 0, len(runs))
	for _, r := range runs {
		records = append(records, Record(r))
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("export: writing runs: %w", err)
	}
	return nil
}

// WriteRunsFile writes runs to path, creating parent directories.
func WriteRunsFile(path string, runs []storage.Run) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: creating directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	if err := WriteRuns(f, runs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
