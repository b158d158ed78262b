package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func sampleRuns() []storage.Run {
	return []storage.Run{
		{ID: 1, Score: 140, Length: 12, Apples: 7, Golden: 1, MaxCombo: 4, Duration: 1500 * time.Millisecond,
			WallMode: "wrap", Cause: "self", CreatedAt: time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)},
		{ID: 2, Score: 30, Length: 5, Apples: 2, Duration: 10 * time.Second, WallMode: "solid", Cause: "wall"},
	}
}

func TestWriteRuns(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRuns(&buf, sampleRuns()); err != nil {
		t.Fatalf("WriteRuns failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "id,played_at,score,length") {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "2024-05-01T12:30:00Z") || !strings.Contains(lines[1], ",1.5,") {
		t.Errorf("Unexpected first row: %q", lines[1])
	}

	var back []RunRecord
	if err := gocsv.UnmarshalString(buf.String(), &back); err != nil {
		t.Fatalf("Output is not readable CSV: %v", err)
	}
	if len(back) != 2 || back[1].Cause != "wall" || back[1].PlayedAt != "" || back[1].Seconds != 10 {
		t.Errorf("Unexpected parsed records: %+v", back)
	}
}

func TestWriteRunsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "runs.csv")
	if err := WriteRunsFile(path, sampleRuns()); err != nil {
		t.Fatalf("WriteRunsFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("File not written: %v", err)
	}
	if !strings.Contains(string(data), "max_combo") {
		t.Errorf("Missing header in file:\n%s", data)
	}
}
