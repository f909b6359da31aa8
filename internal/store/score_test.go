package store

import (
	"testing"
	"time"
)

func completedTask(id string) Task {
	return Task{ID: id, Title: id, Completed: true}
}

func focusSession(mins int) FocusSession {
	start := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Duration(mins) * time.Minute)
	return FocusSession{ID: "f", Duration: mins, StartTime: start, EndTime: &end}
}

// ============================================================
// Score formula
// ============================================================

func TestScoreEmptyDay(t *testing.T) {
	score := CalculateDailyScore(nil, nil, nil, nil)
	if score.FinalScore != 0 {
		t.Fatalf("empty day should score 0, got %d", score.FinalScore)
	}
	if score.DailyMood != "terrible" {
		t.Fatalf("0 buckets as terrible, got %q", score.DailyMood)
	}
	if score.TotalTasks != 0 || score.FocusTime != 0 {
		t.Fatalf("unexpected tallies: %+v", score)
	}
}

func TestScoreAllComponents(t *testing.T) {
	tasks := []Task{completedTask("a"), {ID: "b", Title: "b"}}
	mistakes := []Mistake{{ID: "m1"}, {ID: "m2"}}
	sessions := []FocusSession{focusSession(90)}
	moods := []MoodEntry{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}}

	// 1/2 tasks = 25, mistakes -10, 90min focus = 15, 3 moods = 6.
	score := CalculateDailyScore(tasks, mistakes, sessions, moods)
	if score.FinalScore != 36 {
		t.Fatalf("expected 36, got %d", score.FinalScore)
	}
	if score.CompletedTasks != 1 || score.TotalTasks != 2 {
		t.Fatalf("task tallies wrong: %+v", score)
	}
	if score.Mistakes != 2 || score.FocusTime != 90 || score.MoodEntries != 3 {
		t.Fatalf("tallies wrong: %+v", score)
	}
	if score.DailyMood != "bad" {
		t.Fatalf("36 buckets as bad, got %q", score.DailyMood)
	}
}

func TestScoreClampsLow(t *testing.T) {
	mistakes := make([]Mistake, 25)
	score := CalculateDailyScore(nil, mistakes, nil, nil)
	if score.FinalScore != 0 {
		t.Fatalf("expected clamp to 0, got %d", score.FinalScore)
	}
	if score.Mistakes != 25 {
		t.Fatalf("tally must report raw count, got %d", score.Mistakes)
	}
}

func TestScoreClampsHigh(t *testing.T) {
	tasks := []Task{completedTask("a")}
	sessions := []FocusSession{focusSession(600)} // 100 points alone
	score := CalculateDailyScore(tasks, nil, sessions, nil)
	if score.FinalScore != 100 {
		t.Fatalf("expected clamp to 100, got %d", score.FinalScore)
	}
	if score.DailyMood != "excellent" {
		t.Fatalf("100 buckets as excellent, got %q", score.DailyMood)
	}
}

func TestScoreMoodBucketUsesUnroundedValue(t *testing.T) {
	// 2/3 tasks = 33.33.. + 4 moods = 41.33: rounds to 41, buckets bad.
	tasks := []Task{completedTask("a"), completedTask("b"), {ID: "c"}}
	moods := []MoodEntry{{}, {}, {}, {}}
	score := CalculateDailyScore(tasks, nil, nil, moods)
	if score.FinalScore != 41 {
		t.Fatalf("expected 41, got %d", score.FinalScore)
	}
	if score.DailyMood != "bad" {
		t.Fatalf("expected bad, got %q", score.DailyMood)
	}

	// 49.67 rounds up to 50 for display but buckets below the 50 line.
	sessions := []FocusSession{focusSession(98)} // 33.33 + 16.33 = 49.67
	score = CalculateDailyScore(tasks, nil, sessions, nil)
	if score.FinalScore != 50 {
		t.Fatalf("expected rounded 50, got %d", score.FinalScore)
	}
	if score.DailyMood != "bad" {
		t.Fatalf("bucket must use the unrounded value, got %q", score.DailyMood)
	}
}

func TestScoreFocusMinutesFloorAndOpenSessions(t *testing.T) {
	start := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	end := start.Add(59*time.Minute + 59*time.Second)
	closed := FocusSession{ID: "f1", StartTime: start, EndTime: &end}
	open := FocusSession{ID: "f2", StartTime: start} // still running

	score := CalculateDailyScore(nil, nil, []FocusSession{closed, open}, nil)
	if score.FocusTime != 59 {
		t.Fatalf("expected floored 59 minutes, got %d", score.FocusTime)
	}
}

func TestScoreNegativeDurationCountsZero(t *testing.T) {
	start := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	end := start.Add(-10 * time.Minute) // clock went backwards
	score := CalculateDailyScore(nil, nil, []FocusSession{{StartTime: start, EndTime: &end}}, nil)
	if score.FocusTime != 0 {
		t.Fatalf("expected 0 minutes, got %d", score.FocusTime)
	}
}

func TestDailyMoodBuckets(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, "excellent"}, {90, "excellent"}, {89.9, "good"}, {75, "good"},
		{74.9, "neutral"}, {50, "neutral"}, {49.9, "bad"}, {25, "bad"},
		{24.9, "terrible"}, {0, "terrible"},
	}
	for _, c := range cases {
		if got := dailyMoodFor(c.score); got != c.want {
			t.Fatalf("dailyMoodFor(%v) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestScoreStars(t *testing.T) {
	if got := ScoreStars(100); got != "⭐⭐⭐⭐⭐" {
		t.Fatalf("100: %q", got)
	}
	if got := ScoreStars(0); got != "☆☆☆☆☆" {
		t.Fatalf("0: %q", got)
	}
	if got := ScoreStars(50); got != "⭐⭐⭐☆☆" {
		t.Fatalf("50: %q", got)
	}
}

func TestDailyGoal(t *testing.T) {
	cases := []struct{ yesterday, want int }{
		{95, 95}, {90, 95}, {80, 85}, {75, 80}, {60, 70}, {50, 60}, {10, 60}, {0, 60},
	}
	for _, c := range cases {
		if got := DailyGoal(c.yesterday); got != c.want {
			t.Fatalf("DailyGoal(%d) = %d, want %d", c.yesterday, got, c.want)
		}
	}
}
