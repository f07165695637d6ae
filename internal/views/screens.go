package views

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/habitd/internal/theme"
)

type HabitRowData struct {
	ID         string
	Name       string
	Status     string
	Frequency  string
	TodayCount int
	Target     int
	Percent    int
}

type HabitsPanelData struct {
	Rows        []HabitRowData
	SelectedID  string
	ConfirmName string
}

type HabitDetailData struct {
	Name         string
	Frequency    string
	Target       int
	Created      string
	DoneDays     int
	DaysTracked  int
	ProgressView string
	LogTableView string
}

type FormPanelData struct {
	Title        string
	NameView     string
	Frequency    string
	Target       int
	FocusedField string
	FieldErr     string
}

type StatRowData struct {
	Name    string
	Done    int
	Tracked int
	Percent int
	Bar     string
}

type StatsPanelData struct {
	Total          int
	CompletedToday int
	InProgress     int
	Rows           []StatRowData
}

type ExportPromptData struct {
	Active    bool
	InputView string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

type RecoveryPanelData struct {
	Path   string
	Reason string
}

func RenderHabitsPanel(data HabitsPanelData, th theme.Theme) string {
	var b strings.Builder
	b.WriteString("habits:\n")
	b.WriteString("actions: [space]check-off [-]undo [a]dd [e]dit [d]elete [s]tats [x]export [t]heme\n")
	if len(data.Rows) == 0 {
		b.WriteString("(no habits yet, press [a] to add one)\n")
	}
	for _, row := range data.Rows {
		cursor := " "
		if row.ID == data.SelectedID {
			cursor = th.CursorStyle.Render(">")
		}
		badge := statusBadge(row.Status, th)
		b.WriteString(fmt.Sprintf("%s %s %s [%s] today %d/%d (%d%%)\n",
			cursor, badge, row.Name, row.Frequency, row.TodayCount, row.Target, row.Percent))
	}
	if data.ConfirmName != "" {
		b.WriteString(th.WarnStyle.Render(fmt.Sprintf("\ndelete %q and all its history? [y/n]", data.ConfirmName)))
	}
	return strings.TrimSpace(b.String())
}

func RenderHabitDetail(data HabitDetailData, th theme.Theme) string {
	if data.Name == "" {
		return "detail:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString("detail:\n")
	b.WriteString(fmt.Sprintf("%s %s\n", th.LabelStyle.Render("name:"), data.Name))
	b.WriteString(fmt.Sprintf("%s %s\n", th.LabelStyle.Render("frequency:"), data.Frequency))
	b.WriteString(fmt.Sprintf("%s %d/day\n", th.LabelStyle.Render("target:"), data.Target))
	b.WriteString(fmt.Sprintf("%s %s\n", th.LabelStyle.Render("created:"), data.Created))
	b.WriteString(fmt.Sprintf("%s %d of %d days\n", th.LabelStyle.Render("completed:"), data.DoneDays, data.DaysTracked))
	b.WriteString("\ntoday: " + data.ProgressView + "\n")
	b.WriteString("\nrecent log:\n")
	b.WriteString(data.LogTableView)
	return strings.TrimSpace(b.String())
}

func RenderFormPanel(data FormPanelData, th theme.Theme) string {
	var b strings.Builder
	b.WriteString(data.Title + ":\n")
	b.WriteString("keys: [tab]next field [enter]save [esc]cancel\n\n")
	b.WriteString(formField("name", data.FocusedField, th) + " " + data.NameView + "\n")
	b.WriteString(formField("frequency", data.FocusedField, th) + fmt.Sprintf(" %s (left/right to change)\n", data.Frequency))
	b.WriteString(formField("target", data.FocusedField, th) + fmt.Sprintf(" %d per day (+/- to change)\n", data.Target))
	if data.FieldErr != "" {
		b.WriteString("\n" + th.ErrorStyle.Render("error: "+data.FieldErr))
	}
	return strings.TrimSpace(b.String())
}

func RenderStatsPanel(data StatsPanelData, th theme.Theme) string {
	var b strings.Builder
	b.WriteString("stats:\n")
	b.WriteString(fmt.Sprintf("Total Habits: %d | Completed Today: %d | In Progress: %d\n\n",
		data.Total, data.CompletedToday, data.InProgress))
	if len(data.Rows) == 0 {
		b.WriteString("(nothing to report)")
		return b.String()
	}
	for _, row := range data.Rows {
		b.WriteString(fmt.Sprintf("%s\n  %s %d%% (%d/%d days)\n", row.Name, row.Bar, row.Percent, row.Done, row.Tracked))
	}
	return strings.TrimSpace(b.String())
}

func RenderExportPrompt(data ExportPromptData) string {
	if !data.Active {
		return ""
	}
	return fmt.Sprintf("export to: %s\nkeys: [enter]write [esc]cancel", data.InputView)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func RenderRecoveryPanel(data RecoveryPanelData, th theme.Theme) string {
	var b strings.Builder
	b.WriteString(th.ErrorStyle.Render("data file could not be read") + "\n\n")
	b.WriteString(fmt.Sprintf("file: %s\n", data.Path))
	b.WriteString(fmt.Sprintf("reason: %s\n\n", data.Reason))
	b.WriteString("the file will NOT be touched without confirmation\n")
	b.WriteString("[r] move it aside and start empty\n")
	b.WriteString("[q] quit and leave everything as is\n")
	return strings.TrimSpace(b.String())
}

func statusBadge(status string, th theme.Theme) string {
	switch status {
	case "Completed":
		return th.DoneStyle.Render("[DONE]")
	case "In Progress":
		return th.WarnStyle.Render("[....]")
	default:
		return th.MutedStyle.Render("[NEW ]")
	}
}

func formField(name, focused string, th theme.Theme) string {
	label := name + ":"
	if name == focused {
		return th.CursorStyle.Render("> " + label)
	}
	return "  " + label
}

// ProgressBar renders a plain text bar for contexts where the animated
// bubbles bar is overkill (stats rows, exports).
func ProgressBar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
