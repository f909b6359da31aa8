package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/selo-ai/mood-app/internal/store"
)

type dayScore struct {
	date   string
	label  string
	record store.DailyRecord
	ok     bool
}

type reportsModel struct {
	store  *store.Store
	width  int
	height int

	days   []dayScore
	offset int // 7-day blocks back from today (0 = current)

	chart barchart.Model
}

func newReportsModel(s *store.Store) reportsModel {
	return reportsModel{
		store: s,
		chart: barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

type reportsDataMsg struct {
	days []dayScore
}

func (r reportsModel) dateRange() (time.Time, time.Time) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := today.AddDate(0, 0, 1-7*r.offset)
	return end.AddDate(0, 0, -7), end
}

func (r reportsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		from, to := r.dateRange()

		var days []dayScore
		for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
			dateStr := d.Format("2006-01-02")
			rec, ok := r.store.GetDailyRecord(dateStr)
			days = append(days, dayScore{
				date:   dateStr,
				label:  d.Format("Mon 02"),
				record: rec,
				ok:     ok,
			})
		}
		return reportsDataMsg{days: days}
	}
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsDataMsg:
		r.days = msg.days
		r.buildChart()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			r.offset++
			return r, r.refresh()
		case key.Matches(msg, keys.Right):
			if r.offset > 0 {
				r.offset--
			}
			return r, r.refresh()
		}
	}
	return r, nil
}

func scoreBarStyle(mood string) lipgloss.Style {
	switch mood {
	case "excellent", "good":
		return lipgloss.NewStyle().Foreground(colorSuccess)
	case "neutral":
		return lipgloss.NewStyle().Foreground(colorHighlight)
	case "bad":
		return lipgloss.NewStyle().Foreground(colorWarning)
	default:
		return lipgloss.NewStyle().Foreground(colorError)
	}
}

func (r *reportsModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, d := range r.days {
		value := barchart.BarValue{
			Name:  d.date,
			Value: float64(d.record.DailyScore.FinalScore),
			Style: scoreBarStyle(d.record.DailyScore.DailyMood),
		}
		if !d.ok {
			value = barchart.BarValue{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}
		}
		bars = append(bars, barchart.BarData{
			Label:  d.label,
			Values: []barchart.BarValue{value},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) view() string {
	w := r.width - 4

	from, to := r.dateRange()
	dateLabel := mutedStyle.Render(fmt.Sprintf("%s - %s", from.Format("Jan 02"), to.AddDate(0, 0, -1).Format("Jan 02, 2006")))
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, titleStyle.Render("Günlük Skorlar"), "  ", dateLabel)

	chartView := r.chart.View()
	tableView := r.renderScoreTable(w)
	nav := mutedStyle.Render("  ←/→: hafta değiştir")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", chartView, "", tableView, "", nav),
	)
}

func (r reportsModel) renderScoreTable(w int) string {
	var rows []string
	headerRow := mutedStyle.Render(fmt.Sprintf("  %-12s %6s %4s %8s %6s %8s", "Tarih", "Skor", "", "Görev", "Hata", "Odak"))
	rows = append(rows, headerRow)
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 50))))

	any := false
	for _, d := range r.days {
		if !d.ok {
			continue
		}
		any = true
		score := d.record.DailyScore
		rows = append(rows, fmt.Sprintf("  %-12s %6d %4s %5d/%-2d %6d %5d dk",
			d.date, score.FinalScore, store.MoodEmoji(score.DailyMood),
			score.CompletedTasks, score.TotalTasks, score.Mistakes, score.FocusTime,
		))
	}
	if !any {
		return mutedStyle.Render("  Bu dönem için kayıt yok")
	}
	return strings.Join(rows, "\n")
}
