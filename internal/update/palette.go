package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/commands"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/theme"
	"github.com/sandeepkv93/habitd/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			freq, ferr := model.ParseFrequency(a.Frequency)
			if ferr != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: ferr.Error()}
			}
			habit, aerr := m.store.Add(a.Name, freq, a.Target)
			if aerr != nil {
				return commands.Result{}, aerr
			}
			m.CurrentView = ViewHabits
			m.Cursor = m.store.Len() - 1
			m.syncSelection()
			return commands.Result{Message: fmt.Sprintf("added habit: %s", habit.Name)}, nil
		},
		Done: func(a commands.MarkArgs) (commands.Result, error) {
			return m.markSelected(a.Date, true)
		},
		Undo: func(a commands.MarkArgs) (commands.Result, error) {
			return m.markSelected(a.Date, false)
		},
		Delete: func(a commands.DeleteArgs) (commands.Result, error) {
			habit, rerr := m.resolveTarget(a.Target)
			if rerr != nil {
				return commands.Result{}, rerr
			}
			if derr := m.store.Delete(habit.ID); derr != nil {
				return commands.Result{}, derr
			}
			m.syncSelection()
			return commands.Result{Message: fmt.Sprintf("deleted %q", habit.Name)}, nil
		},
		Export: func(a commands.ExportArgs) (commands.Result, error) {
			next := m.writeExport(a.Path)
			if next.Status.IsError {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: next.Status.Text}
			}
			return commands.Result{Message: next.Status.Text}, nil
		},
		Theme: func(a commands.ThemeArgs) (commands.Result, error) {
			m.Theme = theme.ByName(a.Name)
			return commands.Result{Message: fmt.Sprintf("%s theme applied", a.Name)}, nil
		},
		Stats: func() (commands.Result, error) {
			m.CurrentView = ViewStats
			stats := m.store.Stats()
			return commands.Result{Message: fmt.Sprintf("%d habits, %d completed today", stats.Total, stats.CompletedToday)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

// resolveTarget maps a palette target to a habit: "selected" (or empty)
// uses the cursor, otherwise exact name first, then unique ID prefix.
func (m Model) resolveTarget(target string) (model.Habit, error) {
	if target == "" || target == "selected" {
		habit, ok := m.selectedHabit()
		if !ok {
			return model.Habit{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no habit selected"}
		}
		return habit, nil
	}
	habits := m.store.List()
	for _, h := range habits {
		if h.Name == target {
			return h, nil
		}
	}
	var matched []model.Habit
	for _, h := range habits {
		if strings.HasPrefix(h.ID, target) {
			matched = append(matched, h)
		}
	}
	switch len(matched) {
	case 1:
		return matched[0], nil
	case 0:
		return model.Habit{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no habit matches %q", target)}
	default:
		return model.Habit{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("%q matches %d habits", target, len(matched))}
	}
}

func (m *Model) markSelected(date string, done bool) (commands.Result, error) {
	habit, ok := m.selectedHabit()
	if !ok {
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no habit selected"}
	}
	if date == "" {
		date = m.store.Today()
	}
	var err error
	var updated = habit
	if done {
		updated, err = m.store.CheckOff(habit.ID, date)
	} else {
		updated, err = m.store.Undo(habit.ID, date)
	}
	if err != nil {
		return commands.Result{}, err
	}
	return commands.Result{Message: fmt.Sprintf("%s: %d on %s", updated.Name, updated.CountOn(date), date)}, nil
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}
