package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/selo-ai/mood-app/internal/store"
)

var routineTimeCategories = []string{"morning", "afternoon", "evening"}

type habitSection int

const (
	sectionRoutines habitSection = iota
	sectionPrayer
	sectionNutrition
)

var habitSectionNames = []string{"Günlük Rutinler", "İbadet", "Beslenme"}

type habitsModel struct {
	store  *store.Store
	width  int
	height int

	routines  []store.DailyRoutine
	prayers   store.PrayerData
	nutrition store.NutritionData

	section habitSection
	cursor  int

	formActive bool
	form       *huh.Form

	formTitle *string
	formTime  *string
	formNotes *string
}

func newHabitsModel(s *store.Store) habitsModel {
	title, tc, notes := "", routineTimeCategories[0], ""
	return habitsModel{
		store:     s,
		formTitle: &title,
		formTime:  &tc,
		formNotes: &notes,
	}
}

func (m *habitsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type habitsDataMsg struct {
	routines  []store.DailyRoutine
	prayers   store.PrayerData
	nutrition store.NutritionData
}

func (m habitsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return habitsDataMsg{
			routines:  m.store.ListDailyRoutines(),
			prayers:   m.store.CurrentPrayerData(),
			nutrition: m.store.CurrentNutritionData(),
		}
	}
}

// prayerRows is the number of cursor positions in the prayer section:
// five prayers plus the three reading flags.
func (m habitsModel) prayerRows() int {
	return len(m.prayers.Prayers) + 3
}

func (m habitsModel) sectionLen() int {
	switch m.section {
	case sectionPrayer:
		return m.prayerRows()
	case sectionNutrition:
		return len(m.nutrition.Meals)
	default:
		return len(m.routines)
	}
}

func (m habitsModel) update(msg tea.Msg) (habitsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case habitsDataMsg:
		m.routines = msg.routines
		m.prayers = msg.prayers
		m.nutrition = msg.nutrition
		if m.cursor >= m.sectionLen() {
			m.cursor = max(0, m.sectionLen()-1)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			if m.section > 0 {
				m.section--
				m.cursor = 0
			}
		case key.Matches(msg, keys.Right):
			if m.section < sectionNutrition {
				m.section++
				m.cursor = 0
			}
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < m.sectionLen()-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Toggle), key.Matches(msg, keys.Enter):
			return m.toggleSelected()
		case key.Matches(msg, keys.Water):
			m.store.AddWater(250)
			return m, m.refresh()
		case key.Matches(msg, keys.Delete):
			if m.section == sectionRoutines && m.cursor < len(m.routines) {
				m.store.DeleteDailyRoutine(m.routines[m.cursor].ID)
				return m, m.refresh()
			}
		case key.Matches(msg, keys.New):
			if m.section == sectionRoutines {
				return m.showNewRoutineForm()
			}
		}
	}
	return m, nil
}

func (m habitsModel) toggleSelected() (habitsModel, tea.Cmd) {
	switch m.section {
	case sectionRoutines:
		if m.cursor < len(m.routines) {
			m.store.ToggleDailyRoutineCompletion(m.routines[m.cursor].ID)
		}
	case sectionPrayer:
		switch {
		case m.cursor < len(m.prayers.Prayers):
			m.store.TogglePrayer(m.prayers.Prayers[m.cursor].Name)
		case m.cursor == len(m.prayers.Prayers):
			m.store.ToggleQuranReading()
		case m.cursor == len(m.prayers.Prayers)+1:
			m.store.ToggleIlmihalReading()
		default:
			m.store.ToggleTasbihPrayer()
		}
	case sectionNutrition:
		if m.cursor < len(m.nutrition.Meals) {
			m.store.ToggleMeal(m.nutrition.Meals[m.cursor].ID)
		}
	}
	return m, m.refresh()
}

func (m habitsModel) showNewRoutineForm() (habitsModel, tea.Cmd) {
	*m.formTitle = ""
	*m.formTime = routineTimeCategories[0]
	*m.formNotes = ""

	timeOptions := []huh.Option[string]{
		huh.NewOption("Sabah", "morning"),
		huh.NewOption("Öğleden sonra", "afternoon"),
		huh.NewOption("Akşam", "evening"),
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Başlık").Value(m.formTitle),
			huh.NewSelect[string]().Title("Zaman").Options(timeOptions...).Value(m.formTime),
			huh.NewInput().Title("Not").Value(m.formNotes),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m habitsModel) updateForm(msg tea.Msg) (habitsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		if *m.formTitle != "" {
			m.store.AddDailyRoutine(*m.formTitle, *m.formTime, *m.formNotes, false, len(m.routines)+1)
		}
		return m, m.refresh()
	}

	return m, cmd
}

func (m habitsModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("Yeni Rutin")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return panelStyle.Width(w).Render(content)
	}

	var tabs []string
	for i, name := range habitSectionNames {
		if habitSection(i) == m.section {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	var body string
	switch m.section {
	case sectionPrayer:
		body = m.renderPrayer()
	case sectionNutrition:
		body = m.renderNutrition()
	default:
		body = m.renderRoutines()
	}

	nav := mutedStyle.Render("  ←/→: bölüm  space: işaretle  n: yeni rutin  w: +su")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", nav),
	)
}

func (m habitsModel) renderRoutines() string {
	if len(m.routines) == 0 {
		return mutedStyle.Render("  Henüz rutin yok. n ile ekle.")
	}

	var rows []string
	for i, r := range m.routines {
		cursor := "  "
		style := normalItemStyle
		if m.section == sectionRoutines && i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		tc := mutedStyle.Render("[" + r.TimeCategory + "]")
		rows = append(rows, fmt.Sprintf("%s%s %s %s", cursor, checkbox(r.Completed), style.Render(r.Title), tc))
	}
	return strings.Join(rows, "\n")
}

func (m habitsModel) renderPrayer() string {
	var rows []string

	tally := fmt.Sprintf("  Kılınan: %d/%d", m.prayers.TotalPrayersCompleted, m.prayers.TotalPrayersCount)
	rows = append(rows, highlightStyle.Render(tally))
	rows = append(rows, "")

	for i, p := range m.prayers.Prayers {
		cursor := "  "
		style := normalItemStyle
		if m.section == sectionPrayer && i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, fmt.Sprintf("%s%s %s", cursor, checkbox(p.IsCompleted), style.Render(p.Name)))
	}

	rows = append(rows, "")
	readings := []struct {
		label string
		flag  *store.ReadingFlag
	}{
		{"Kur'an okuma", m.prayers.QuranReading},
		{"İlmihal okuma", m.prayers.IlmihalReading},
		{"Tesbih", m.prayers.TasbihPrayer},
	}
	for i, r := range readings {
		idx := len(m.prayers.Prayers) + i
		cursor := "  "
		style := normalItemStyle
		if m.section == sectionPrayer && idx == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		done := r.flag != nil && r.flag.IsCompleted
		rows = append(rows, fmt.Sprintf("%s%s %s", cursor, checkbox(done), style.Render(r.label)))
	}

	return strings.Join(rows, "\n")
}

func (m habitsModel) renderNutrition() string {
	var rows []string

	water := fmt.Sprintf("  Su: %d / %d ml", m.nutrition.WaterIntake, m.nutrition.WaterTarget)
	if m.nutrition.WaterIntake >= m.nutrition.WaterTarget {
		rows = append(rows, successStyle.Render(water+"  ✓"))
	} else {
		rows = append(rows, waterStyle.Render(water))
	}
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  Kalori: %d kcal", m.nutrition.DailyCalories)))
	rows = append(rows, "")

	for i, meal := range m.nutrition.Meals {
		cursor := "  "
		style := normalItemStyle
		if m.section == sectionNutrition && i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, fmt.Sprintf("%s%s %s %s", cursor, checkbox(meal.IsCompleted), style.Render(meal.Name), mutedStyle.Render(meal.Time)))
	}

	return strings.Join(rows, "\n")
}
