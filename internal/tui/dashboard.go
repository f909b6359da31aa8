package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/selo-ai/mood-app/internal/store"
)

type dashboardModel struct {
	store  *store.Store
	focus  focusModel
	width  int
	height int

	record  store.DailyRecord
	goal    int
	modules []store.Module
	water   store.NutritionData
	prayers store.PrayerData
}

func newDashboardModel(s *store.Store) dashboardModel {
	return dashboardModel{
		store: s,
		focus: newFocusModel(s),
	}
}

func (d dashboardModel) Init() tea.Cmd {
	return d.loadData()
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dashboardModel) isRunning() bool { return d.focus.running() }
func (d dashboardModel) elapsed() time.Duration {
	return d.focus.currentElapsed()
}

type dashboardDataMsg struct {
	record  store.DailyRecord
	goal    int
	modules []store.Module
	water   store.NutritionData
	prayers store.PrayerData
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		record := d.store.CurrentDailyRecord()

		goal := store.DailyGoal(0)
		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		if prev, ok := d.store.GetDailyRecord(yesterday); ok {
			goal = store.DailyGoal(prev.DailyScore.FinalScore)
		}

		return dashboardDataMsg{
			record:  record,
			goal:    goal,
			modules: d.store.EnabledModules(),
			water:   d.store.CurrentNutritionData(),
			prayers: d.store.CurrentPrayerData(),
		}
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.record = msg.record
		d.goal = msg.goal
		d.modules = msg.modules
		d.water = msg.water
		d.prayers = msg.prayers
		return d, nil

	case tickMsg:
		d.focus.tick()
		return d, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			if d.focus.running() {
				return d, nil
			}
			d.focus.start()
			return d, func() tea.Msg { return focusStartedMsg{} }

		case key.Matches(msg, keys.Stop):
			if mins, ok := d.focus.stop(); ok {
				return d, tea.Batch(
					d.loadData(),
					func() tea.Msg { return focusStoppedMsg{minutes: mins} },
				)
			}
			return d, nil

		case key.Matches(msg, keys.Water):
			d.store.AddWater(250)
			return d, d.loadData()
		}
	}
	return d, nil
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	scorePanel := d.renderScorePanel(contentWidth)
	focusPanel := d.renderFocusPanel(contentWidth)
	modulePanel := d.renderModulePanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, scorePanel, focusPanel, modulePanel)
}

func (d dashboardModel) renderScorePanel(w int) string {
	score := d.record.DailyScore

	emoji := store.MoodEmoji(score.DailyMood)
	big := scoreStyle.Width(w - 6).Render(fmt.Sprintf("%s  %d / 100", emoji, score.FinalScore))
	stars := lipgloss.NewStyle().Width(w - 6).Align(lipgloss.Center).Render(store.ScoreStars(score.FinalScore))

	goalLine := mutedStyle.Render(fmt.Sprintf("Bugünkü hedef: %d", d.goal))
	if score.FinalScore >= d.goal {
		goalLine = successStyle.Render(fmt.Sprintf("Hedefe ulaşıldı! (%d)", d.goal))
	}

	breakdown := fmt.Sprintf("  %s görev %d/%d   %s hata %d   %s odak %d dk   %s duygu %d",
		successStyle.Render("✓"), score.CompletedTasks, score.TotalTasks,
		errorStyle.Render("✗"), score.Mistakes,
		highlightStyle.Render("◔"), score.FocusTime,
		accentStyle.Render("♥"), score.MoodEntries,
	)

	content := lipgloss.JoinVertical(lipgloss.Center, big, stars, goalLine, "", breakdown)
	return activePanelStyle.Width(w).Render(content)
}

func (d dashboardModel) renderFocusPanel(w int) string {
	if d.focus.running() {
		timeStr := stopwatchStyle.Width(w - 6).Render(formatDuration(d.focus.currentElapsed()))
		indicator := successStyle.Render("●  ODAK AÇIK")
		hint := mutedStyle.Render("x: bitir")
		content := lipgloss.JoinVertical(lipgloss.Center, timeStr, indicator, hint)
		return activePanelStyle.Width(w).Render(content)
	}

	timeStr := mutedStyle.Width(w - 6).Align(lipgloss.Center).Render("00:00:00")
	hint := mutedStyle.Render("s: odak seansı başlat   w: +250ml su")
	content := lipgloss.JoinVertical(lipgloss.Center, timeStr, hint)
	return panelStyle.Width(w).Render(content)
}

func (d dashboardModel) renderModulePanel(w int) string {
	title := titleStyle.Render("Modüller")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, m := range d.modules {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(m.Color)).Render("●")
		line := fmt.Sprintf("  %s %s %s", dot, m.Icon, m.DisplayName)
		switch m.ID {
		case "nutrition":
			line += waterStyle.Render(fmt.Sprintf("   %d/%d ml", d.water.WaterIntake, d.water.WaterTarget))
		case "prayer":
			line += mutedStyle.Render(fmt.Sprintf("   %d/%d", d.prayers.TotalPrayersCompleted, d.prayers.TotalPrayersCount))
		}
		rows = append(rows, line)
	}

	if len(d.modules) == 0 {
		rows = append(rows, mutedStyle.Render("  Tüm modüller kapalı. Ayarlar'dan aç."))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
