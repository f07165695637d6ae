package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// handleRecoverKey runs the corrupt-data startup prompt. The user either
// confirms moving the damaged file aside or quits with it untouched.
func (m Model) handleRecoverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r", "R":
		moved, err := m.store.DiscardCorrupt()
		if err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.logger.Warn("recovered from corrupt data", zap.String("quarantined", moved))
		m.Recovery = RecoveryState{}
		m.CurrentView = ViewHabits
		m.syncSelection()
		m.Status = StatusBar{Text: fmt.Sprintf("corrupt file moved to %s, starting empty", moved), IsError: false}
		return m, nil
	case "q", "Q", "ctrl+c", "esc":
		m.Quitting = true
		m.RecoveryAborted = true
		return m, tea.Quit
	}
	return m, nil
}
