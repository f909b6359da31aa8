package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/selo-ai/mood-app/internal/store"
)

type jsonExport struct {
	ExportedAt string    `json:"exported_at"`
	Count      int       `json:"count"`
	Days       []jsonDay `json:"days"`
}

type jsonDay struct {
	Date           string `json:"date"`
	Score          int    `json:"score"`
	Mood           string `json:"mood"`
	CompletedTasks int    `json:"completed_tasks"`
	TotalTasks     int    `json:"total_tasks"`
	Mistakes       int    `json:"mistakes"`
	FocusMinutes   int    `json:"focus_minutes"`
	MoodEntries    int    `json:"mood_entries"`
}

func ToJSON(records []store.DailyRecord, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(records),
	}

	for _, rec := range records {
		score := rec.DailyScore
		export.Days = append(export.Days, jsonDay{
			Date:           rec.Date,
			Score:          score.FinalScore,
			Mood:           score.DailyMood,
			CompletedTasks: score.CompletedTasks,
			TotalTasks:     score.TotalTasks,
			Mistakes:       score.Mistakes,
			FocusMinutes:   score.FocusTime,
			MoodEntries:    score.MoodEntries,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
