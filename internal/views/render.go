package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/habitd/internal/theme"
)

type AppData struct {
	Header     string
	LeftPane   string
	RightPane  string
	StatusLine string
	Footer     string
}

func RenderApp(data AppData, th theme.Theme) string {
	left := th.PanelStyle.Width(58).Render(data.LeftPane)
	right := th.PanelStyle.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := th.StatusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = th.ErrorStyle.Render(data.StatusLine)
	}

	lines := []string{
		th.HeaderStyle.Render(data.Header),
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, th.FooterStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string, themeName string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "dark"
	if themeName == "light" {
		style = "light"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
