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

type pomodoroPhase int

const (
	pomodoroIdle pomodoroPhase = iota
	pomodoroWork
	pomodoroShortBreak
	pomodoroLongBreak
)

type pomodoroModel struct {
	store  *store.Store
	width  int
	height int

	phase      pomodoroPhase
	phaseStart time.Time
	phaseEnd   time.Time
	remaining  time.Duration

	settings store.PomodoroSettings
	today    store.PomodoroData
}

func newPomodoroModel(s *store.Store) pomodoroModel {
	return pomodoroModel{
		store:    s,
		settings: s.PomodoroSettings(),
	}
}

func (p *pomodoroModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

func (p pomodoroModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return pomodoroDataMsg{
			settings: p.store.PomodoroSettings(),
			today:    p.store.CurrentPomodoroData(),
		}
	}
}

type pomodoroDataMsg struct {
	settings store.PomodoroSettings
	today    store.PomodoroData
}

func (p pomodoroModel) phaseDuration(phase pomodoroPhase) time.Duration {
	switch phase {
	case pomodoroShortBreak:
		return time.Duration(p.settings.ShortBreakDuration) * time.Minute
	case pomodoroLongBreak:
		return time.Duration(p.settings.LongBreakDuration) * time.Minute
	default:
		return time.Duration(p.settings.WorkDuration) * time.Minute
	}
}

func (p pomodoroModel) update(msg tea.Msg) (pomodoroModel, tea.Cmd) {
	switch msg := msg.(type) {
	case pomodoroDataMsg:
		p.settings = msg.settings
		p.today = msg.today
		return p, nil

	case tickMsg:
		if p.phase != pomodoroIdle {
			p.remaining = time.Until(p.phaseEnd)
			if p.remaining <= 0 {
				return p.advancePhase()
			}
		}
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			if p.phase == pomodoroIdle {
				return p.startPhase(pomodoroWork), nil
			}
		case key.Matches(msg, keys.Stop):
			if p.phase != pomodoroIdle {
				return p.cancelPhase()
			}
		case key.Matches(msg, keys.Toggle):
			// Skip break
			if p.phase == pomodoroShortBreak || p.phase == pomodoroLongBreak {
				p.recordPhase(false)
				return p.startPhase(pomodoroWork), nil
			}
		}
	}
	return p, nil
}

func (p pomodoroModel) startPhase(phase pomodoroPhase) pomodoroModel {
	d := p.phaseDuration(phase)
	p.phase = phase
	p.phaseStart = time.Now()
	p.phaseEnd = p.phaseStart.Add(d)
	p.remaining = d
	return p
}

// recordPhase lands the finished (or abandoned) phase in today's tally.
func (p *pomodoroModel) recordPhase(completed bool) {
	var sessionType string
	switch p.phase {
	case pomodoroWork:
		sessionType = "work"
	case pomodoroShortBreak:
		sessionType = "shortBreak"
	case pomodoroLongBreak:
		sessionType = "longBreak"
	default:
		return
	}

	end := time.Now()
	mins := int(end.Sub(p.phaseStart) / time.Minute)
	if completed {
		mins = int(p.phaseDuration(p.phase) / time.Minute)
	}
	isCycle := sessionType == "work" && completed &&
		(p.today.CompletedPomodoros+1)%p.settings.LongBreakInterval == 0
	p.store.RecordPomodoroSession(sessionType, mins, completed, isCycle, p.phaseStart, end)
	p.today = p.store.CurrentPomodoroData()
}

func (p pomodoroModel) advancePhase() (pomodoroModel, tea.Cmd) {
	switch p.phase {
	case pomodoroWork:
		p.recordPhase(true)

		next := pomodoroShortBreak
		if p.settings.LongBreakInterval > 0 && p.today.CompletedPomodoros%p.settings.LongBreakInterval == 0 {
			next = pomodoroLongBreak
		}
		if !p.settings.AutoStartBreaks {
			p.phase = pomodoroIdle
			return p, func() tea.Msg {
				return statusMsg{text: "Pomodoro tamam! \a"}
			}
		}
		p = p.startPhase(next)
		return p, func() tea.Msg {
			return statusMsg{text: "Mola zamanı! \a"}
		}

	case pomodoroShortBreak, pomodoroLongBreak:
		p.recordPhase(true)
		if !p.settings.AutoStartPomodoros {
			p.phase = pomodoroIdle
			return p, func() tea.Msg {
				return statusMsg{text: "Mola bitti"}
			}
		}
		p = p.startPhase(pomodoroWork)
		return p, nil
	}
	return p, nil
}

func (p pomodoroModel) cancelPhase() (pomodoroModel, tea.Cmd) {
	p.recordPhase(false)
	p.phase = pomodoroIdle
	p.remaining = 0
	return p, func() tea.Msg {
		return statusMsg{text: "Pomodoro iptal edildi"}
	}
}

func (p pomodoroModel) view() string {
	w := p.width - 4

	title := titleStyle.Render("Pomodoro")

	var timeDisplay string
	var phaseLabel string

	switch p.phase {
	case pomodoroIdle:
		timeDisplay = scoreStyle.Width(w - 6).Render(formatCountdown(p.phaseDuration(pomodoroWork)))
		phaseLabel = mutedStyle.Render("s: başlat")
	case pomodoroWork:
		timeDisplay = accentStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(formatCountdown(p.remaining))
		phaseLabel = accentStyle.Bold(true).Render("ÇALIŞMA")
	case pomodoroShortBreak:
		timeDisplay = successStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(formatCountdown(p.remaining))
		phaseLabel = successStyle.Bold(true).Render("KISA MOLA")
	case pomodoroLongBreak:
		timeDisplay = highlightStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(formatCountdown(p.remaining))
		phaseLabel = highlightStyle.Bold(true).Render("UZUN MOLA")
	}

	progress := p.renderProgress()
	tally := mutedStyle.Render(fmt.Sprintf("Bugün: %d pomodoro  %d dk çalışma  %d dk mola",
		p.today.CompletedPomodoros, p.today.TotalWorkTime, p.today.TotalBreakTime))

	var controls string
	switch p.phase {
	case pomodoroIdle:
		controls = mutedStyle.Render("s: başlat  q: çık")
	case pomodoroWork:
		controls = mutedStyle.Render("x: iptal")
	default:
		controls = mutedStyle.Render("space: molayı atla  x: iptal")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title, "", timeDisplay, phaseLabel, "", progress, tally, "", controls,
	)
	return panelStyle.Width(w).Render(content)
}

func (p pomodoroModel) renderProgress() string {
	interval := p.settings.LongBreakInterval
	if interval <= 0 {
		interval = 4
	}
	done := p.today.CompletedPomodoros % interval
	if done == 0 && p.today.CompletedPomodoros > 0 && p.phase != pomodoroWork {
		done = interval
	}

	var parts []string
	for i := 0; i < interval; i++ {
		switch {
		case i < done:
			parts = append(parts, successStyle.Render("●"))
		case i == done && p.phase == pomodoroWork:
			parts = append(parts, accentStyle.Render("◐"))
		default:
			parts = append(parts, mutedStyle.Render("○"))
		}
	}
	return strings.Join(parts, " ")
}
