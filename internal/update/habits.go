package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/store"
)

func (m Model) handleHabitsKey(msg tea.KeyMsg) Model {
	if m.ConfirmingDelete {
		switch msg.String() {
		case "y", "Y":
			m.ConfirmingDelete = false
			return m.deleteSelected()
		case "n", "N", "esc":
			m.ConfirmingDelete = false
			m.Status = StatusBar{Text: "delete cancelled", IsError: false}
		}
		return m
	}

	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		m.syncSelection()
	case "down", "j":
		if m.Cursor < m.store.Len()-1 {
			m.Cursor++
		}
		m.syncSelection()
	case " ", "+":
		return m.checkOffSelected()
	case "-":
		return m.undoSelected()
	case "a":
		m.startAddForm()
	case "e":
		m.startEditForm()
	case "d":
		if _, ok := m.selectedHabit(); ok {
			m.ConfirmingDelete = true
		}
	case "s":
		m.CurrentView = ViewStats
	case "x":
		m.Export.Active = true
		m.exportInput.SetValue("")
		m.exportInput.Focus()
		m.Status = StatusBar{Text: "choose export destination", IsError: false}
	}
	return m
}

func (m Model) checkOffSelected() Model {
	habit, ok := m.selectedHabit()
	if !ok {
		m.Status = StatusBar{Text: "no habit selected", IsError: true}
		return m
	}
	updated, err := m.store.CheckOff(habit.ID, m.store.Today())
	if err != nil {
		return m.reportStoreError(err)
	}
	m.Status = StatusBar{
		Text:    fmt.Sprintf("%s: %d/%d today", updated.Name, updated.CountOn(m.store.Today()), updated.TargetCount),
		IsError: false,
	}
	return m
}

func (m Model) undoSelected() Model {
	habit, ok := m.selectedHabit()
	if !ok {
		m.Status = StatusBar{Text: "no habit selected", IsError: true}
		return m
	}
	updated, err := m.store.Undo(habit.ID, m.store.Today())
	if err != nil {
		return m.reportStoreError(err)
	}
	m.Status = StatusBar{
		Text:    fmt.Sprintf("%s: %d/%d today", updated.Name, updated.CountOn(m.store.Today()), updated.TargetCount),
		IsError: false,
	}
	return m
}

func (m Model) deleteSelected() Model {
	habit, ok := m.selectedHabit()
	if !ok {
		m.Status = StatusBar{Text: "no habit selected", IsError: true}
		return m
	}
	if err := m.store.Delete(habit.ID); err != nil {
		return m.reportStoreError(err)
	}
	m.syncSelection()
	m.Status = StatusBar{Text: fmt.Sprintf("deleted %q", habit.Name), IsError: false}
	return m
}

// reportStoreError surfaces NotFound as a generic error since it should not
// happen through normal UI flow; validation errors carry their own message.
func (m Model) reportStoreError(err error) Model {
	m.LastError = err
	text := err.Error()
	if errors.Is(err, store.ErrNotFound) {
		text = "habit no longer exists"
		m.syncSelection()
	}
	m.Status = StatusBar{Text: text, IsError: true}
	return m
}
