package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/selo-ai/mood-app/internal/store"
)

func sampleRecords() []store.DailyRecord {
	return []store.DailyRecord{
		{
			Date: "2026-08-25",
			DailyScore: store.DailyScore{
				CompletedTasks: 3,
				TotalTasks:     4,
				Mistakes:       1,
				FocusTime:      90,
				MoodEntries:    2,
				FinalScore:     52,
				DailyMood:      "neutral",
			},
		},
		{
			Date: "2026-08-26",
			DailyScore: store.DailyScore{
				CompletedTasks: 0,
				TotalTasks:     2,
				Mistakes:       4,
				FocusTime:      0,
				MoodEntries:    0,
				FinalScore:     0,
				DailyMood:      "terrible",
			},
		},
	}
}

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.csv")

	err := ToCSV(sampleRecords(), path)
	if err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	// header + 2 data rows
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows (1 header + 2 data), got %d", len(rows))
	}

	header := rows[0]
	expectedHeader := []string{"Date", "Score", "Mood", "Completed Tasks", "Total Tasks", "Mistakes", "Focus (min)", "Mood Entries"}
	for i, h := range expectedHeader {
		if header[i] != h {
			t.Fatalf("header[%d] = %q, want %q", i, header[i], h)
		}
	}

	row := rows[1]
	if row[0] != "2026-08-25" {
		t.Fatalf("Date = %q, want 2026-08-25", row[0])
	}
	if row[1] != "52" {
		t.Fatalf("Score = %q, want 52", row[1])
	}
	if row[2] != "neutral" {
		t.Fatalf("Mood = %q, want neutral", row[2])
	}
	if row[3] != "3" || row[4] != "4" {
		t.Fatalf("tasks = %q/%q, want 3/4", row[3], row[4])
	}
	if row[6] != "90" {
		t.Fatalf("Focus = %q, want 90", row[6])
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	err := ToCSV(nil, path)
	if err != nil {
		t.Fatal(err)
	}

	f, _ := os.Open(path)
	defer f.Close()
	r := csv.NewReader(f)
	rows, _ := r.ReadAll()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row (header only), got %d", len(rows))
	}
}

func TestToCSVBadPath(t *testing.T) {
	err := ToCSV(nil, "/nonexistent/dir/file.csv")
	if err == nil {
		t.Fatal("expected error for bad path")
	}
}

// ============================================================
// JSON
// ============================================================

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")

	err := ToJSON(sampleRecords(), path)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var result jsonExport
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if result.Count != 2 {
		t.Fatalf("count = %d, want 2", result.Count)
	}
	if len(result.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(result.Days))
	}
	if result.ExportedAt == "" {
		t.Fatal("exported_at should not be empty")
	}

	day := result.Days[0]
	if day.Date != "2026-08-25" {
		t.Fatalf("Date = %q, want 2026-08-25", day.Date)
	}
	if day.Score != 52 {
		t.Fatalf("Score = %d, want 52", day.Score)
	}
	if day.Mood != "neutral" {
		t.Fatalf("Mood = %q, want neutral", day.Mood)
	}
	if day.FocusMinutes != 90 {
		t.Fatalf("FocusMinutes = %d, want 90", day.FocusMinutes)
	}
}

func TestToJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")

	err := ToJSON(nil, path)
	if err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	var result jsonExport
	json.Unmarshal(data, &result)

	if result.Count != 0 {
		t.Fatalf("count = %d, want 0", result.Count)
	}
	if result.Days != nil {
		t.Fatal("days should be nil/null for empty export")
	}
}

func TestToJSONBadPath(t *testing.T) {
	err := ToJSON(nil, "/nonexistent/dir/file.json")
	if err == nil {
		t.Fatal("expected error for bad path")
	}
}

func TestToJSONPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pretty.json")
	ToJSON(nil, path)

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "\n") {
		t.Fatal("JSON should be pretty-printed with newlines")
	}
	if !strings.Contains(string(data), "  ") {
		t.Fatal("JSON should be indented with spaces")
	}
}

func TestToJSONValidTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ts.json")
	ToJSON(sampleRecords(), path)

	data, _ := os.ReadFile(path)
	var result jsonExport
	json.Unmarshal(data, &result)

	if _, err := time.Parse(time.RFC3339, result.ExportedAt); err != nil {
		t.Fatalf("exported_at is not valid RFC3339: %q", result.ExportedAt)
	}
}
