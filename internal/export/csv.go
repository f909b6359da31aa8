package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/selo-ai/mood-app/internal/store"
)

func ToCSV(records []store.DailyRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Date", "Score", "Mood", "Completed Tasks", "Total Tasks", "Mistakes", "Focus (min)", "Mood Entries"}); err != nil {
		return err
	}

	for _, rec := range records {
		score := rec.DailyScore
		row := []string{
			rec.Date,
			fmt.Sprintf("%d", score.FinalScore),
			score.DailyMood,
			fmt.Sprintf("%d", score.CompletedTasks),
			fmt.Sprintf("%d", score.TotalTasks),
			fmt.Sprintf("%d", score.Mistakes),
			fmt.Sprintf("%d", score.FocusTime),
			fmt.Sprintf("%d", score.MoodEntries),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
