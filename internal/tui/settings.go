package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/selo-ai/mood-app/internal/store"
)

type settingsSection int

const (
	sectionModules settingsSection = iota
	sectionProfile
	sectionTimer
	sectionFood
)

var settingsSectionNames = []string{"Modüller", "Profil", "Zamanlayıcı", "Beslenme"}

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	section settingsSection
	cursor  int

	modules   []store.Module
	user      *store.User
	pomodoro  store.PomodoroSettings
	nutrition store.NutritionSettings

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	userName      *string
	workDur       *string
	shortBreakDur *string
	longBreakDur  *string
	breakInterval *string
	autoBreaks    *bool
	autoPomodoros *bool
	soundEnabled  *bool
	waterTarget   *string
	breakfastAt   *string
	lunchAt       *string
	dinnerAt      *string
}

func newSettingsModel(s *store.Store) settingsModel {
	name := ""
	wd, sbd, lbd, bi := "", "", "", ""
	ab, ap, se := false, false, false
	wt, bf, lu, di := "", "", "", ""
	return settingsModel{
		store:         s,
		userName:      &name,
		workDur:       &wd,
		shortBreakDur: &sbd,
		longBreakDur:  &lbd,
		breakInterval: &bi,
		autoBreaks:    &ab,
		autoPomodoros: &ap,
		soundEnabled:  &se,
		waterTarget:   &wt,
		breakfastAt:   &bf,
		lunchAt:       &lu,
		dinnerAt:      &di,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	modules   []store.Module
	user      *store.User
	pomodoro  store.PomodoroSettings
	nutrition store.NutritionSettings
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return settingsDataMsg{
			modules:   s.store.ListModules(),
			user:      s.store.GetUser(),
			pomodoro:  s.store.PomodoroSettings(),
			nutrition: s.store.NutritionSettings(),
		}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.modules = msg.modules
		s.user = msg.user
		s.pomodoro = msg.pomodoro
		s.nutrition = msg.nutrition
		s.clampCursor()
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			if s.section > sectionModules {
				s.section--
				s.cursor = 0
			}
			return s, nil
		case key.Matches(msg, keys.Right):
			if s.section < sectionFood {
				s.section++
				s.cursor = 0
			}
			return s, nil
		case key.Matches(msg, keys.Up):
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil
		case key.Matches(msg, keys.Down):
			s.cursor++
			s.clampCursor()
			return s, nil
		case key.Matches(msg, keys.Toggle):
			if s.section == sectionModules && s.cursor < len(s.modules) {
				s.store.ToggleModule(s.modules[s.cursor].ID)
				return s, s.refresh()
			}
			return s, nil
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s *settingsModel) clampCursor() {
	max := 0
	if s.section == sectionModules {
		max = len(s.modules) - 1
	}
	if max < 0 {
		max = 0
	}
	if s.cursor > max {
		s.cursor = max
	}
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	switch s.section {
	case sectionProfile:
		*s.userName = ""
		if s.user != nil {
			*s.userName = s.user.Name
		}
		s.form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("İsim").Value(s.userName),
			).Title("Profil"),
		).WithShowHelp(true).WithShowErrors(true)

	case sectionTimer:
		*s.workDur = strconv.Itoa(s.pomodoro.WorkDuration)
		*s.shortBreakDur = strconv.Itoa(s.pomodoro.ShortBreakDuration)
		*s.longBreakDur = strconv.Itoa(s.pomodoro.LongBreakDuration)
		*s.breakInterval = strconv.Itoa(s.pomodoro.LongBreakInterval)
		*s.autoBreaks = s.pomodoro.AutoStartBreaks
		*s.autoPomodoros = s.pomodoro.AutoStartPomodoros
		*s.soundEnabled = s.pomodoro.SoundEnabled
		s.form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Çalışma süresi (dk)").Value(s.workDur),
				huh.NewInput().Title("Kısa mola (dk)").Value(s.shortBreakDur),
				huh.NewInput().Title("Uzun mola (dk)").Value(s.longBreakDur),
				huh.NewInput().Title("Uzun mola aralığı").Value(s.breakInterval),
			).Title("Pomodoro"),
			huh.NewGroup(
				huh.NewConfirm().Title("Molalar otomatik başlasın").Value(s.autoBreaks),
				huh.NewConfirm().Title("Pomodorolar otomatik başlasın").Value(s.autoPomodoros),
				huh.NewConfirm().Title("Ses açık").Value(s.soundEnabled),
			).Title("Otomasyon"),
		).WithShowHelp(true).WithShowErrors(true)

	case sectionFood:
		*s.waterTarget = strconv.Itoa(s.nutrition.WaterTarget)
		*s.breakfastAt = s.nutrition.MealTimes.Breakfast
		*s.lunchAt = s.nutrition.MealTimes.Lunch
		*s.dinnerAt = s.nutrition.MealTimes.Dinner
		s.form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Su hedefi (ml)").Value(s.waterTarget),
				huh.NewInput().Title("Kahvaltı saati").Value(s.breakfastAt),
				huh.NewInput().Title("Öğle yemeği saati").Value(s.lunchAt),
				huh.NewInput().Title("Akşam yemeği saati").Value(s.dinnerAt),
			).Title("Beslenme"),
		).WithShowHelp(true).WithShowErrors(true)

	default:
		return s, nil
	}

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.saveSection()
		return s, s.refresh()
	}

	return s, cmd
}

func (s settingsModel) saveSection() {
	switch s.section {
	case sectionProfile:
		user := store.User{Name: strings.TrimSpace(*s.userName)}
		if s.user != nil {
			user = *s.user
			user.Name = strings.TrimSpace(*s.userName)
		}
		s.store.SetUser(user)

	case sectionTimer:
		s.store.UpdatePomodoroSettings(func(p *store.PomodoroSettings) {
			if v, err := strconv.Atoi(*s.workDur); err == nil && v > 0 {
				p.WorkDuration = v
			}
			if v, err := strconv.Atoi(*s.shortBreakDur); err == nil && v > 0 {
				p.ShortBreakDuration = v
			}
			if v, err := strconv.Atoi(*s.longBreakDur); err == nil && v > 0 {
				p.LongBreakDuration = v
			}
			if v, err := strconv.Atoi(*s.breakInterval); err == nil && v > 0 {
				p.LongBreakInterval = v
			}
			p.AutoStartBreaks = *s.autoBreaks
			p.AutoStartPomodoros = *s.autoPomodoros
			p.SoundEnabled = *s.soundEnabled
		})

	case sectionFood:
		settings := s.nutrition
		if v, err := strconv.Atoi(*s.waterTarget); err == nil && v > 0 {
			settings.WaterTarget = v
		}
		if t := strings.TrimSpace(*s.breakfastAt); t != "" {
			settings.MealTimes.Breakfast = t
		}
		if t := strings.TrimSpace(*s.lunchAt); t != "" {
			settings.MealTimes.Lunch = t
		}
		if t := strings.TrimSpace(*s.dinnerAt); t != "" {
			settings.MealTimes.Dinner = t
		}
		s.store.UpdateNutritionSettings(settings)
	}
}

func (s settingsModel) view() string {
	w := s.width - 4

	var tabs []string
	for i, name := range settingsSectionNames {
		if settingsSection(i) == s.section {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	if s.formActive && s.form != nil {
		return lipgloss.JoinVertical(lipgloss.Left, tabBar, "",
			panelStyle.Width(w).Render(s.form.View()))
	}

	var body string
	switch s.section {
	case sectionModules:
		body = s.renderModules()
	case sectionProfile:
		body = s.renderProfile()
	case sectionTimer:
		body = s.renderTimer()
	case sectionFood:
		body = s.renderFood()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, "",
		panelStyle.Width(w).Render(body))
}

func (s settingsModel) renderModules() string {
	rows := []string{titleStyle.Render("Modüller"), ""}
	if len(s.modules) == 0 {
		rows = append(rows, mutedStyle.Render("  Modül yok"))
	}
	for i, m := range s.modules {
		line := fmt.Sprintf("%s %s %s", checkbox(m.IsEnabled), m.Icon, m.DisplayName)
		if i == s.cursor {
			rows = append(rows, selectedItemStyle.Render("> "+line))
		} else {
			rows = append(rows, normalItemStyle.Render("  "+line))
		}
	}
	rows = append(rows, "", mutedStyle.Render("  boşluk: aç/kapat"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s settingsModel) renderProfile() string {
	name := mutedStyle.Render("ayarlanmadı")
	if s.user != nil && s.user.Name != "" {
		name = highlightStyle.Render(s.user.Name)
	}
	rows := []string{
		titleStyle.Render("Profil"),
		"",
		fmt.Sprintf("  %s %s", lipgloss.NewStyle().Width(24).Render("İsim"), name),
		"",
		mutedStyle.Render("  enter: düzenle"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s settingsModel) renderTimer() string {
	p := s.pomodoro
	row := func(label, value string) string {
		return fmt.Sprintf("  %s %s", lipgloss.NewStyle().Width(24).Render(label), highlightStyle.Render(value))
	}
	onOff := func(b bool) string {
		if b {
			return "açık"
		}
		return "kapalı"
	}
	rows := []string{
		titleStyle.Render("Pomodoro"),
		"",
		row("Çalışma süresi", fmt.Sprintf("%d dk", p.WorkDuration)),
		row("Kısa mola", fmt.Sprintf("%d dk", p.ShortBreakDuration)),
		row("Uzun mola", fmt.Sprintf("%d dk", p.LongBreakDuration)),
		row("Uzun mola aralığı", strconv.Itoa(p.LongBreakInterval)),
		row("Otomatik mola", onOff(p.AutoStartBreaks)),
		row("Otomatik pomodoro", onOff(p.AutoStartPomodoros)),
		row("Ses", onOff(p.SoundEnabled)),
		"",
		mutedStyle.Render("  enter: düzenle"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s settingsModel) renderFood() string {
	n := s.nutrition
	row := func(label, value string) string {
		return fmt.Sprintf("  %s %s", lipgloss.NewStyle().Width(24).Render(label), highlightStyle.Render(value))
	}
	rows := []string{
		titleStyle.Render("Beslenme"),
		"",
		row("Su hedefi", fmt.Sprintf("%d ml", n.WaterTarget)),
		row("Kahvaltı", n.MealTimes.Breakfast),
		row("Ara öğün (sabah)", n.MealTimes.MorningSnack),
		row("Öğle yemeği", n.MealTimes.Lunch),
		row("Ara öğün (öğleden sonra)", n.MealTimes.AfternoonSnack),
		row("Akşam yemeği", n.MealTimes.Dinner),
		"",
		mutedStyle.Render("  enter: düzenle"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
