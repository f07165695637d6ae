package update

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/model"
)

func TestAddFormFlow(t *testing.T) {
	st := newTestStore(t)
	m := NewModel(st)

	updated, _ := m.Update(keyRunes("a"))
	next := updated.(Model)
	if next.CurrentView != ViewForm || next.Form.Mode != FormModeAdd {
		t.Fatalf("expected add form, got view=%q mode=%q", next.CurrentView, next.Form.Mode)
	}

	updated, _ = next.Update(keyRunes("Meditate"))
	next = updated.(Model)

	// Move to frequency, cycle once, then bump the target.
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	next = updated.(Model)
	updated, _ = next.Update(keyRunes("l"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	next = updated.(Model)
	updated, _ = next.Update(keyRunes("+"))
	next = updated.(Model)

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.CurrentView != ViewHabits {
		t.Fatalf("expected habits view after submit, got %q", next.CurrentView)
	}
	if st.Len() != 1 {
		t.Fatalf("expected one habit, got %d", st.Len())
	}
	habit := st.List()[0]
	if habit.Name != "Meditate" {
		t.Fatalf("unexpected name: %q", habit.Name)
	}
	if habit.Frequency != model.FrequencyWeekly {
		t.Fatalf("unexpected frequency: %q", habit.Frequency)
	}
	if habit.TargetCount != 2 {
		t.Fatalf("unexpected target: %d", habit.TargetCount)
	}
}

func TestAddFormValidationStaysInline(t *testing.T) {
	st := newTestStore(t)
	m := NewModel(st)

	updated, _ := m.Update(keyRunes("a"))
	next := updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.CurrentView != ViewForm {
		t.Fatalf("expected to stay on form, got %q", next.CurrentView)
	}
	if next.Form.Err == "" {
		t.Fatal("expected inline validation error for empty name")
	}
	if st.Len() != 0 {
		t.Fatalf("no habit should have been added, got %d", st.Len())
	}
}

func TestEditFormPrefillsAndSaves(t *testing.T) {
	st := newTestStore(t)
	habit, err := st.Add("Journal", model.FrequencyDaily, 1)
	if err != nil {
		t.Fatalf("add habit: %v", err)
	}

	m := NewModel(st)
	updated, _ := m.Update(keyRunes("e"))
	next := updated.(Model)
	if next.CurrentView != ViewForm || next.Form.Mode != FormModeEdit {
		t.Fatalf("expected edit form, got view=%q mode=%q", next.CurrentView, next.Form.Mode)
	}
	if next.Form.EditID != habit.ID {
		t.Fatalf("expected edit id %q, got %q", habit.ID, next.Form.EditID)
	}

	updated, _ = next.Update(keyRunes("s"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_ = updated.(Model)

	got, err := st.Get(habit.ID)
	if err != nil {
		t.Fatalf("get habit: %v", err)
	}
	if got.Name != "Journals" {
		t.Fatalf("expected appended name, got %q", got.Name)
	}
}

func TestFormEscCancels(t *testing.T) {
	st := newTestStore(t)
	m := NewModel(st)

	updated, _ := m.Update(keyRunes("a"))
	next := updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next = updated.(Model)

	if next.CurrentView != ViewHabits {
		t.Fatalf("expected habits view after esc, got %q", next.CurrentView)
	}
	if st.Len() != 0 {
		t.Fatalf("esc must not add a habit, got %d", st.Len())
	}
}
