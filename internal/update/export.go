package update

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sandeepkv93/habitd/internal/views"
)

func (m Model) handleExportKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Export.Active = false
		m.exportInput.Blur()
		m.Status = StatusBar{Text: "export cancelled", IsError: false}
		return m
	case "enter":
		path := strings.TrimSpace(m.exportInput.Value())
		m.Export.Active = false
		m.exportInput.Blur()
		return m.writeExport(path)
	}
	var cmd tea.Cmd
	m.exportInput, cmd = m.exportInput.Update(msg)
	_ = cmd
	return m
}

// writeExport materializes ExportText to disk. A write failure leaves the
// in-memory state intact and is reported as a not-completed operation.
func (m Model) writeExport(path string) Model {
	if path == "" {
		m.Status = StatusBar{Text: "export needs a destination path", IsError: true}
		return m
	}
	if err := os.WriteFile(path, []byte(m.store.ExportText()), 0o644); err != nil {
		m.LastError = err
		m.logger.Error("export failed", zap.String("path", path), zap.Error(err))
		m.Status = StatusBar{Text: fmt.Sprintf("export failed: %v", err), IsError: true}
		return m
	}
	m.logger.Info("habits exported", zap.String("path", path))
	m.Status = StatusBar{Text: fmt.Sprintf("exported to %s", path), IsError: false}
	return m
}

func (m Model) renderExportPrompt() string {
	return views.RenderExportPrompt(views.ExportPromptData{
		Active:    m.Export.Active,
		InputView: m.exportInput.View(),
	})
}
