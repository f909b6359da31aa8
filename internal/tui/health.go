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

var medicationTimes = []string{"morning", "noon", "evening"}

type healthSection int

const (
	sectionChecklist healthSection = iota
	sectionCatalog
	sectionAppointments
)

var healthSectionNames = []string{"Bugün", "İlaç / Takviye", "Randevular"}

type healthModel struct {
	store  *store.Store
	width  int
	height int

	daily        store.DailyHealthData
	medications  []store.Medication
	supplements  []store.Supplement
	appointments []store.DoctorAppointment

	section healthSection
	cursor  int

	formActive bool
	form       *huh.Form
	formType   string // "medication", "supplement", "appointment"

	formName   *string
	formDosage *string
	formTime   *string
	formDate   *string
	formNotes  *string
	formKind   *string
}

func newHealthModel(s *store.Store) healthModel {
	name, dosage, tm, date, notes := "", "", medicationTimes[0], "", ""
	kind := "medication"
	return healthModel{
		store:      s,
		formName:   &name,
		formDosage: &dosage,
		formTime:   &tm,
		formDate:   &date,
		formNotes:  &notes,
		formKind:   &kind,
	}
}

func (m *healthModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type healthDataMsg struct {
	daily        store.DailyHealthData
	medications  []store.Medication
	supplements  []store.Supplement
	appointments []store.DoctorAppointment
}

func (m healthModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return healthDataMsg{
			daily:        m.store.CurrentDailyHealthData(),
			medications:  m.store.ListMedications(),
			supplements:  m.store.ListSupplements(),
			appointments: m.store.ListAppointments(),
		}
	}
}

func (m healthModel) sectionLen() int {
	switch m.section {
	case sectionCatalog:
		return len(m.medications) + len(m.supplements)
	case sectionAppointments:
		return len(m.appointments)
	default:
		return len(m.daily.Medications) + len(m.daily.Supplements)
	}
}

func (m healthModel) update(msg tea.Msg) (healthModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case healthDataMsg:
		m.daily = msg.daily
		m.medications = msg.medications
		m.supplements = msg.supplements
		m.appointments = msg.appointments
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
			if m.section < sectionAppointments {
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
			if m.section == sectionChecklist {
				return m.toggleChecklistItem()
			}
		case key.Matches(msg, keys.Delete):
			return m.deleteSelected()
		case key.Matches(msg, keys.New):
			return m.showNewForm()
		}
	}
	return m, nil
}

func (m healthModel) toggleChecklistItem() (healthModel, tea.Cmd) {
	if m.cursor < len(m.daily.Medications) {
		m.store.ToggleDailyMedication(m.daily.Medications[m.cursor].MedicationID)
	} else if i := m.cursor - len(m.daily.Medications); i < len(m.daily.Supplements) {
		m.store.ToggleDailySupplement(m.daily.Supplements[i].SupplementID)
	}
	return m, m.refresh()
}

func (m healthModel) deleteSelected() (healthModel, tea.Cmd) {
	switch m.section {
	case sectionCatalog:
		if m.cursor < len(m.medications) {
			m.store.DeleteMedication(m.medications[m.cursor].ID)
		} else if i := m.cursor - len(m.medications); i < len(m.supplements) {
			m.store.DeleteSupplement(m.supplements[i].ID)
		}
	case sectionAppointments:
		if m.cursor < len(m.appointments) {
			m.store.DeleteAppointment(m.appointments[m.cursor].ID)
		}
	default:
		return m, nil
	}
	return m, m.refresh()
}

func (m healthModel) showNewForm() (healthModel, tea.Cmd) {
	*m.formName = ""
	*m.formDosage = ""
	*m.formTime = medicationTimes[0]
	*m.formDate = ""
	*m.formNotes = ""

	timeOptions := []huh.Option[string]{
		huh.NewOption("Sabah", "morning"),
		huh.NewOption("Öğlen", "noon"),
		huh.NewOption("Akşam", "evening"),
	}

	switch m.section {
	case sectionAppointments:
		m.formType = "appointment"
		m.form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Doktor").Value(m.formName),
				huh.NewInput().Title("Uzmanlık").Value(m.formDosage),
				huh.NewInput().Title("Tarih (YYYY-AA-GG)").Value(m.formDate),
				huh.NewInput().Title("Saat").Value(m.formNotes),
			),
		).WithShowHelp(true).WithShowErrors(true)
	default:
		m.formType = "catalog"
		*m.formKind = "medication"
		kindOptions := []huh.Option[string]{
			huh.NewOption("İlaç", "medication"),
			huh.NewOption("Takviye", "supplement"),
		}
		m.form = huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().Title("Tür").Options(kindOptions...).Value(m.formKind),
				huh.NewInput().Title("İsim").Value(m.formName),
				huh.NewInput().Title("Doz").Value(m.formDosage),
				huh.NewSelect[string]().Title("Zaman").Options(timeOptions...).Value(m.formTime),
			),
		).WithShowHelp(true).WithShowErrors(true)
	}

	m.formActive = true
	return m, m.form.Init()
}

func (m healthModel) updateForm(msg tea.Msg) (healthModel, tea.Cmd) {
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
		if *m.formName != "" {
			switch {
			case m.formType == "appointment":
				m.store.AddAppointment(*m.formName, *m.formDosage, *m.formDate, *m.formNotes, "")
			case *m.formKind == "supplement":
				m.store.AddSupplement(*m.formName, *m.formDosage, *m.formTime, "")
			default:
				m.store.AddMedication(*m.formName, *m.formDosage, *m.formTime, "")
			}
		}
		return m, m.refresh()
	}

	return m, cmd
}

func (m healthModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("Yeni Kayıt")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return panelStyle.Width(w).Render(content)
	}

	var tabs []string
	for i, name := range healthSectionNames {
		if healthSection(i) == m.section {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	var body string
	switch m.section {
	case sectionCatalog:
		body = m.renderCatalog()
	case sectionAppointments:
		body = m.renderAppointments()
	default:
		body = m.renderChecklist()
	}

	nav := mutedStyle.Render("  ←/→: bölüm  space: işaretle  n: yeni  d: sil")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", nav),
	)
}

func (m healthModel) renderChecklist() string {
	if len(m.daily.Medications) == 0 && len(m.daily.Supplements) == 0 {
		return mutedStyle.Render("  Bugün için kayıtlı ilaç veya takviye yok.")
	}

	var rows []string
	for i, dm := range m.daily.Medications {
		cursor := "  "
		style := normalItemStyle
		if m.section == sectionChecklist && i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, fmt.Sprintf("%s%s 💊 %s", cursor, checkbox(dm.IsCompleted), style.Render(dm.Name)))
	}
	for i, ds := range m.daily.Supplements {
		idx := len(m.daily.Medications) + i
		cursor := "  "
		style := normalItemStyle
		if m.section == sectionChecklist && idx == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, fmt.Sprintf("%s%s 🌿 %s", cursor, checkbox(ds.IsCompleted), style.Render(ds.Name)))
	}
	return strings.Join(rows, "\n")
}

func (m healthModel) renderCatalog() string {
	if len(m.medications) == 0 && len(m.supplements) == 0 {
		return mutedStyle.Render("  Katalog boş. n ile ekle.")
	}

	var rows []string
	for i, med := range m.medications {
		cursor := "  "
		style := normalItemStyle
		if m.section == sectionCatalog && i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, fmt.Sprintf("%s💊 %s %s %s", cursor, style.Render(med.Name),
			mutedStyle.Render(med.Dosage), mutedStyle.Render("["+med.Time+"]")))
	}
	for i, sp := range m.supplements {
		idx := len(m.medications) + i
		cursor := "  "
		style := normalItemStyle
		if m.section == sectionCatalog && idx == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, fmt.Sprintf("%s🌿 %s %s %s", cursor, style.Render(sp.Name),
			mutedStyle.Render(sp.Dosage), mutedStyle.Render("["+sp.Time+"]")))
	}
	return strings.Join(rows, "\n")
}

func (m healthModel) renderAppointments() string {
	if len(m.appointments) == 0 {
		return mutedStyle.Render("  Randevu yok. n ile ekle.")
	}

	var rows []string
	for i, a := range m.appointments {
		cursor := "  "
		style := normalItemStyle
		if m.section == sectionAppointments && i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, fmt.Sprintf("%s%s %s  %s %s", cursor,
			highlightStyle.Render(a.Date), mutedStyle.Render(a.Time),
			style.Render(a.DoctorName), mutedStyle.Render("("+a.Specialty+")")))
	}
	return strings.Join(rows, "\n")
}
