package store

import (
	"math"
	"strings"
	"time"
)

// CalculateDailyScore derives the day's score from its four child
// lists. This is the only code path allowed to produce a FinalScore.
//
// baseScore rewards task completion (up to 50), each mistake costs 5,
// each full focus hour earns 10, each mood entry earns 2; the sum is
// clamped to [0,100] and rounded for display.
func CalculateDailyScore(tasks []Task, mistakes []Mistake, focusSessions []FocusSession, moodEntries []MoodEntry) DailyScore {
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	focusTime := 0
	for _, fs := range focusSessions {
		if fs.EndTime == nil {
			continue
		}
		mins := int(fs.EndTime.Sub(fs.StartTime) / time.Minute)
		if mins < 0 {
			mins = 0
		}
		focusTime += mins
	}

	baseScore := 0.0
	if len(tasks) > 0 {
		baseScore = float64(completed) / float64(len(tasks)) * 50
	}
	mistakePenalty := float64(len(mistakes)) * -5
	focusBonus := float64(focusTime) / 60 * 10
	moodBonus := float64(len(moodEntries)) * 2

	final := baseScore + mistakePenalty + focusBonus + moodBonus
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}

	return DailyScore{
		CompletedTasks: completed,
		TotalTasks:     len(tasks),
		Mistakes:       len(mistakes),
		FocusTime:      focusTime,
		MoodEntries:    len(moodEntries),
		FinalScore:     int(math.Round(final)),
		DailyMood:      dailyMoodFor(final),
	}
}

func dailyMoodFor(score float64) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 75:
		return "good"
	case score >= 50:
		return "neutral"
	case score >= 25:
		return "bad"
	default:
		return "terrible"
	}
}

// MoodEmoji maps a dailyMood bucket to its display emoji.
func MoodEmoji(mood string) string {
	switch mood {
	case "excellent":
		return "😄"
	case "good":
		return "🙂"
	case "bad":
		return "😔"
	case "terrible":
		return "😢"
	default:
		return "😐"
	}
}

// ScoreStars renders a 0-100 score as a five-star string.
func ScoreStars(score int) string {
	full := score / 20
	half := score%20 >= 10
	empty := 5 - full
	if half {
		full++
		empty--
	}
	return strings.Repeat("⭐", full) + strings.Repeat("☆", empty)
}

// DailyGoal suggests today's target score from yesterday's result.
func DailyGoal(yesterdayScore int) int {
	switch {
	case yesterdayScore >= 90:
		return 95
	case yesterdayScore >= 75:
		return yesterdayScore + 5
	case yesterdayScore >= 50:
		return yesterdayScore + 10
	default:
		return 60
	}
}
