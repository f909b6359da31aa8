package tui

import (
	"fmt"
	"time"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewTasks
	viewHabits
	viewHealth
	viewPomodoro
	viewReports
	viewSettings
)

var viewNames = []string{"Dashboard", "Görevler", "Rutinler", "Sağlık", "Pomodoro", "Raporlar", "Ayarlar"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type focusStartedMsg struct{}

type focusStoppedMsg struct {
	minutes int
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}

func checkbox(done bool) string {
	if done {
		return successStyle.Render("[✓]")
	}
	return mutedStyle.Render("[ ]")
}
