package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/store"
	"github.com/sandeepkv93/habitd/internal/views"
)

var formFrequencies = []model.Frequency{
	model.FrequencyDaily,
	model.FrequencyWeekly,
	model.FrequencyMonthly,
}

func (m *Model) startAddForm() {
	m.Form = FormState{
		Mode:      FormModeAdd,
		Frequency: model.FrequencyDaily,
		Target:    1,
		Focused:   "name",
	}
	m.nameInput.SetValue("")
	m.nameInput.Focus()
	m.CurrentView = ViewForm
}

func (m *Model) startEditForm() {
	habit, ok := m.selectedHabit()
	if !ok {
		m.Status = StatusBar{Text: "no habit selected", IsError: true}
		return
	}
	m.Form = FormState{
		Mode:      FormModeEdit,
		EditID:    habit.ID,
		Frequency: habit.Frequency,
		Target:    habit.TargetCount,
		Focused:   "name",
	}
	m.nameInput.SetValue(habit.Name)
	m.nameInput.Focus()
	m.CurrentView = ViewForm
}

func (m Model) handleFormKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.CurrentView = ViewHabits
		m.nameInput.Blur()
		m.Status = StatusBar{Text: "form cancelled", IsError: false}
		return m
	case "tab":
		m.Form.Focused = nextFormField(m.Form.Focused)
		if m.Form.Focused == "name" {
			m.nameInput.Focus()
		} else {
			m.nameInput.Blur()
		}
		return m
	case "enter":
		return m.submitForm()
	}

	switch m.Form.Focused {
	case "name":
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		_ = cmd
	case "frequency":
		switch msg.String() {
		case "left", "h":
			m.Form.Frequency = cycleFrequency(m.Form.Frequency, -1)
		case "right", "l":
			m.Form.Frequency = cycleFrequency(m.Form.Frequency, 1)
		}
	case "target":
		switch msg.String() {
		case "+", "right", "l", "up":
			m.Form.Target++
		case "-", "left", "h", "down":
			if m.Form.Target > 1 {
				m.Form.Target--
			}
		}
	}
	return m
}

func (m Model) submitForm() Model {
	name := m.nameInput.Value()

	var err error
	switch m.Form.Mode {
	case FormModeEdit:
		freq := m.Form.Frequency
		target := m.Form.Target
		_, err = m.store.Edit(m.Form.EditID, store.Changes{
			Name:        &name,
			Frequency:   &freq,
			TargetCount: &target,
		})
	default:
		_, err = m.store.Add(name, m.Form.Frequency, m.Form.Target)
	}

	if err != nil {
		// Validation problems stay inline next to the form; anything
		// else is unexpected and goes to the status bar.
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			m.Form.Err = verr.Message
			m.Form.Focused = verr.Field
			if verr.Field == "name" {
				m.nameInput.Focus()
			}
			return m
		}
		return m.reportStoreError(err)
	}

	m.Form.Err = ""
	m.nameInput.Blur()
	m.CurrentView = ViewHabits
	m.syncSelection()
	verb := "added"
	if m.Form.Mode == FormModeEdit {
		verb = "updated"
	}
	m.Status = StatusBar{Text: fmt.Sprintf("habit %s", verb), IsError: false}
	return m
}

func (m Model) renderFormView() string {
	title := "add habit"
	if m.Form.Mode == FormModeEdit {
		title = "edit habit"
	}
	return views.RenderFormPanel(views.FormPanelData{
		Title:        title,
		NameView:     m.nameInput.View(),
		Frequency:    string(m.Form.Frequency),
		Target:       m.Form.Target,
		FocusedField: m.Form.Focused,
		FieldErr:     m.Form.Err,
	}, m.Theme)
}

func nextFormField(current string) string {
	switch current {
	case "name":
		return "frequency"
	case "frequency":
		return "target"
	default:
		return "name"
	}
}

func cycleFrequency(current model.Frequency, dir int) model.Frequency {
	idx := 0
	for i, f := range formFrequencies {
		if f == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(formFrequencies)) % len(formFrequencies)
	return formFrequencies[idx]
}
