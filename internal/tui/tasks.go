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

var taskPriorities = []string{"high", "medium", "low"}
var taskDurations = []string{"daily", "weekly", "monthly", "yearly"}
var mistakeTypes = []string{"forgetfulness", "distraction", "impulsivity", "other"}

type taskSection int

const (
	sectionTasks taskSection = iota
	sectionMistakes
	sectionMoods
)

var taskSectionNames = []string{"Görevler", "Hatalar", "Duygu"}

type tasksModel struct {
	store  *store.Store
	width  int
	height int

	record  store.DailyRecord
	section taskSection
	cursor  int

	formActive bool
	form       *huh.Form
	formType   string // "task", "mistake", "mood"

	// Form field pointers (survive value copies)
	formTitle    *string
	formDesc     *string
	formCategory *string
	formPriority *string
	formDuration *string
	formSeverity *string
	formScore    *string
}

func newTasksModel(s *store.Store) tasksModel {
	title, desc, cat := "", "", ""
	prio, dur := taskPriorities[1], taskDurations[0]
	sev, score := "3", "5"
	return tasksModel{
		store:        s,
		formTitle:    &title,
		formDesc:     &desc,
		formCategory: &cat,
		formPriority: &prio,
		formDuration: &dur,
		formSeverity: &sev,
		formScore:    &score,
	}
}

func (t *tasksModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

type tasksDataMsg struct {
	record store.DailyRecord
}

func (t tasksModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return tasksDataMsg{record: t.store.CurrentDailyRecord()}
	}
}

func (t tasksModel) sectionLen() int {
	switch t.section {
	case sectionMistakes:
		return len(t.record.Mistakes)
	case sectionMoods:
		return len(t.record.MoodEntries)
	default:
		return len(t.record.Tasks)
	}
}

func (t tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tasksDataMsg:
		t.record = msg.record
		if t.cursor >= t.sectionLen() {
			t.cursor = max(0, t.sectionLen()-1)
		}
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			if t.section > 0 {
				t.section--
				t.cursor = 0
			}
		case key.Matches(msg, keys.Right):
			if t.section < sectionMoods {
				t.section++
				t.cursor = 0
			}
		case key.Matches(msg, keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, keys.Down):
			if t.cursor < t.sectionLen()-1 {
				t.cursor++
			}
		case key.Matches(msg, keys.Toggle), key.Matches(msg, keys.Enter):
			if t.section == sectionTasks && t.cursor < len(t.record.Tasks) {
				t.store.ToggleTaskCompletion(t.record.Tasks[t.cursor].ID)
				return t, t.refresh()
			}
		case key.Matches(msg, keys.Delete):
			return t.deleteSelected()
		case key.Matches(msg, keys.New):
			return t.showNewForm()
		}
	}
	return t, nil
}

func (t tasksModel) deleteSelected() (tasksModel, tea.Cmd) {
	switch t.section {
	case sectionTasks:
		if t.cursor < len(t.record.Tasks) {
			t.store.DeleteTask(t.record.Tasks[t.cursor].ID)
		}
	case sectionMistakes:
		if t.cursor < len(t.record.Mistakes) {
			t.store.DeleteMistake(t.record.Mistakes[t.cursor].ID)
		}
	case sectionMoods:
		if t.cursor < len(t.record.MoodEntries) {
			t.store.DeleteMoodEntry(t.record.MoodEntries[t.cursor].ID)
		}
	}
	return t, t.refresh()
}

func (t tasksModel) showNewForm() (tasksModel, tea.Cmd) {
	*t.formTitle = ""
	*t.formDesc = ""

	switch t.section {
	case sectionMistakes:
		t.formType = "mistake"
		*t.formCategory = mistakeTypes[0]
		*t.formSeverity = "3"

		typeOptions := make([]huh.Option[string], len(mistakeTypes))
		for i, m := range mistakeTypes {
			typeOptions[i] = huh.NewOption(m, m)
		}
		t.form = huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().Title("Tür").Options(typeOptions...).Value(t.formCategory),
				huh.NewInput().Title("Açıklama").Value(t.formDesc),
				huh.NewInput().Title("Şiddet (1-5)").Value(t.formSeverity),
			),
		).WithShowHelp(true).WithShowErrors(true)

	case sectionMoods:
		t.formType = "mood"
		*t.formScore = "5"

		t.form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Puan (1-10)").Value(t.formScore),
				huh.NewInput().Title("Not").Value(t.formDesc),
			),
		).WithShowHelp(true).WithShowErrors(true)

	default:
		t.formType = "task"
		cats := t.store.ListCategories()
		catOptions := make([]huh.Option[string], 0, len(cats))
		for _, c := range cats {
			catOptions = append(catOptions, huh.NewOption(c.Name, c.ID))
		}
		if len(catOptions) > 0 {
			*t.formCategory = catOptions[0].Value
		}
		prioOptions := make([]huh.Option[string], len(taskPriorities))
		for i, p := range taskPriorities {
			prioOptions[i] = huh.NewOption(p, p)
		}
		durOptions := make([]huh.Option[string], len(taskDurations))
		for i, d := range taskDurations {
			durOptions[i] = huh.NewOption(d, d)
		}
		t.form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Başlık").Value(t.formTitle),
				huh.NewInput().Title("Açıklama").Value(t.formDesc),
				huh.NewSelect[string]().Title("Kategori").Options(catOptions...).Value(t.formCategory),
				huh.NewSelect[string]().Title("Öncelik").Options(prioOptions...).Value(t.formPriority),
				huh.NewSelect[string]().Title("Süre").Options(durOptions...).Value(t.formDuration),
			),
		).WithShowHelp(true).WithShowErrors(true)
	}

	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		switch t.formType {
		case "task":
			if *t.formTitle != "" {
				t.store.AddTask(*t.formTitle, *t.formDesc, *t.formCategory, *t.formPriority, *t.formDuration)
			}
		case "mistake":
			severity, err := strconv.Atoi(*t.formSeverity)
			if err != nil || severity < 1 {
				severity = 1
			}
			if severity > 5 {
				severity = 5
			}
			t.store.AddMistake(*t.formCategory, *t.formDesc, severity)
		case "mood":
			score, err := strconv.Atoi(*t.formScore)
			if err != nil || score < 1 {
				score = 1
			}
			if score > 10 {
				score = 10
			}
			t.store.AddMoodEntry(score, *t.formDesc, nil)
		}
		return t, t.refresh()
	}

	return t, cmd
}

func (t tasksModel) view() string {
	w := t.width - 4

	if t.formActive && t.form != nil {
		title := titleStyle.Render("Yeni Görev")
		switch t.formType {
		case "mistake":
			title = titleStyle.Render("Yeni Hata Kaydı")
		case "mood":
			title = titleStyle.Render("Yeni Duygu Kaydı")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", t.form.View())
		return panelStyle.Width(w).Render(content)
	}

	var tabs []string
	for i, name := range taskSectionNames {
		if taskSection(i) == t.section {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	var body string
	switch t.section {
	case sectionMistakes:
		body = t.renderMistakes()
	case sectionMoods:
		body = t.renderMoods()
	default:
		body = t.renderTasks()
	}

	nav := mutedStyle.Render("  ←/→: bölüm  space: işaretle  n: yeni  d: sil")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", nav),
	)
}

func (t tasksModel) renderTasks() string {
	if len(t.record.Tasks) == 0 {
		return mutedStyle.Render("  Bugün için görev yok. n ile ekle.")
	}

	var rows []string
	for i, task := range t.record.Tasks {
		cursor := "  "
		style := normalItemStyle
		if t.section == sectionTasks && i == t.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		prio := mutedStyle.Render("·")
		if task.Priority == "high" {
			prio = errorStyle.Render("!")
		}
		rows = append(rows, fmt.Sprintf("%s%s %s %s", cursor, checkbox(task.Completed), prio, style.Render(task.Title)))
	}
	return strings.Join(rows, "\n")
}

func (t tasksModel) renderMistakes() string {
	if len(t.record.Mistakes) == 0 {
		return mutedStyle.Render("  Bugün hata kaydı yok.")
	}

	var rows []string
	for i, m := range t.record.Mistakes {
		cursor := "  "
		style := normalItemStyle
		if t.section == sectionMistakes && i == t.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		sev := errorStyle.Render(strings.Repeat("▪", m.Severity))
		desc := m.Description
		if desc == "" {
			desc = m.Type
		}
		rows = append(rows, fmt.Sprintf("%s%s %s %s", cursor, sev, style.Render(desc), mutedStyle.Render(m.Timestamp.Local().Format("15:04"))))
	}
	return strings.Join(rows, "\n")
}

func (t tasksModel) renderMoods() string {
	if len(t.record.MoodEntries) == 0 {
		return mutedStyle.Render("  Bugün duygu kaydı yok.")
	}

	var rows []string
	for i, e := range t.record.MoodEntries {
		cursor := "  "
		style := normalItemStyle
		if t.section == sectionMoods && i == t.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		note := e.Note
		if note == "" {
			note = "-"
		}
		rows = append(rows, fmt.Sprintf("%s%s %s %s", cursor,
			accentStyle.Render(fmt.Sprintf("%2d/10", e.Score)),
			style.Render(note),
			mutedStyle.Render(e.Timestamp.Local().Format("15:04"))))
	}
	return strings.Join(rows, "\n")
}
