package update

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/theme"
	"github.com/sandeepkv93/habitd/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		keyStr := typed.String()

		if m.CurrentView == ViewRecover {
			return m.handleRecoverKey(typed)
		}
		// ctrl+c must quit from every state, including modal prompts
		// that otherwise own the keyboard.
		if keyStr == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.Export.Active {
			return m.handleExportKey(typed), nil
		}
		if m.CurrentView == ViewForm {
			return m.handleFormKey(typed), nil
		}
		// A pending delete confirmation owns the keyboard until answered,
		// so global keys cannot leave it dangling.
		if m.CurrentView == ViewHabits && m.ConfirmingDelete {
			return m.handleHabitsKey(typed), nil
		}

		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Habits:
			m.CurrentView = ViewHabits
			m.syncSelection()
			return m, nil
		case m.Keys.Stats:
			m.CurrentView = ViewStats
			return m, nil
		case m.Keys.About:
			m.CurrentView = ViewAbout
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "t":
			m.toggleTheme()
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		if m.CurrentView == ViewHabits {
			return m.handleHabitsKey(typed), nil
		}
		return m, nil

	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			if typed.View == ViewHabits {
				m.syncSelection()
			}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewHabits:
		leftPane = m.renderHabitsView()
		rightPane = strings.TrimSpace(strings.Join([]string{
			m.renderDetailView(),
			m.renderExportPrompt(),
			m.renderCommandPalette(),
			m.renderHelpIfVisible(),
		}, "\n"))
	case ViewForm:
		leftPane = m.renderFormView()
		rightPane = m.renderHelpIfVisible()
	case ViewStats:
		leftPane = m.renderStatsView()
		rightPane = m.renderHelpIfVisible()
	case ViewAbout:
		leftPane = m.renderAboutView()
		rightPane = m.renderHelpIfVisible()
	case ViewRecover:
		leftPane = m.renderRecoveryView()
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("habitd | view: %s | theme: %s", m.CurrentView, m.Theme.Name),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s habits | %s stats | %s about | / cmd | t theme | %s help | %s quit",
			m.Keys.Habits, m.Keys.Stats, m.Keys.About, m.Keys.Help, m.Keys.Quit),
	}, m.Theme)
}

func (m Model) renderHabitsView() string {
	today := m.store.Today()
	habits := m.store.List()

	rows := make([]views.HabitRowData, 0, len(habits))
	for _, h := range habits {
		percent := 0
		if h.TargetCount > 0 {
			percent = h.CountOn(today) * 100 / h.TargetCount
			if percent > 100 {
				percent = 100
			}
		}
		rows = append(rows, views.HabitRowData{
			ID:         h.ID,
			Name:       h.Name,
			Status:     string(h.StatusOn(today)),
			Frequency:  string(h.Frequency),
			TodayCount: h.CountOn(today),
			Target:     h.TargetCount,
			Percent:    percent,
		})
	}

	confirmName := ""
	if m.ConfirmingDelete {
		if habit, ok := m.selectedHabit(); ok {
			confirmName = habit.Name
		}
	}
	return views.RenderHabitsPanel(views.HabitsPanelData{
		Rows:        rows,
		SelectedID:  m.SelectedID,
		ConfirmName: confirmName,
	}, m.Theme)
}

func (m Model) renderDetailView() string {
	habit, ok := m.selectedHabit()
	if !ok {
		return views.RenderHabitDetail(views.HabitDetailData{}, m.Theme)
	}

	today := m.store.Today()
	ratio := float64(habit.CountOn(today)) / float64(habit.TargetCount)
	if ratio > 1 {
		ratio = 1
	}

	dates := make([]string, 0, len(habit.ProgressLog))
	for date := range habit.ProgressLog {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > 8 {
		dates = dates[:8]
	}
	tableRows := make([]table.Row, 0, len(dates))
	for _, date := range dates {
		done := "no"
		if habit.DoneOn(date) {
			done = "yes"
		}
		tableRows = append(tableRows, table.Row{date, fmt.Sprintf("%d", habit.ProgressLog[date]), done})
	}
	logTable := m.logTable
	logTable.SetRows(tableRows)

	return views.RenderHabitDetail(views.HabitDetailData{
		Name:         habit.Name,
		Frequency:    string(habit.Frequency),
		Target:       habit.TargetCount,
		Created:      habit.CreatedAt.UTC().Format("2006-01-02 15:04"),
		DoneDays:     habit.DoneDays(),
		DaysTracked:  habit.DaysTracked(m.store.Now()),
		ProgressView: m.todayProgress.ViewAs(ratio),
		LogTableView: logTable.View(),
	}, m.Theme)
}

func (m Model) renderStatsView() string {
	stats := m.store.Stats()
	rows := make([]views.StatRowData, 0, len(stats.Habits))
	for _, hs := range stats.Habits {
		rows = append(rows, views.StatRowData{
			Name:    hs.Name,
			Done:    hs.DoneDays,
			Tracked: hs.DaysTracked,
			Percent: int(hs.Ratio * 100),
			Bar:     views.ProgressBar(hs.Ratio, 20),
		})
	}
	return views.RenderStatsPanel(views.StatsPanelData{
		Total:          stats.Total,
		CompletedToday: stats.CompletedToday,
		InProgress:     stats.InProgress,
		Rows:           rows,
	}, m.Theme)
}

const aboutMarkdown = "# habitd\n\n" +
	"A terminal tracker for recurring personal habits.\n\n" +
	"- check off habits day by day\n" +
	"- watch completion ratios grow\n" +
	"- export a plain-text summary\n\n" +
	"State lives in a single local JSON file, rewritten atomically after " +
	"every change.\n"

func (m Model) renderAboutView() string {
	return views.RenderMarkdown(aboutMarkdown, m.Theme.Name)
}

func (m Model) renderRecoveryView() string {
	return views.RenderRecoveryPanel(views.RecoveryPanelData{
		Path:   m.store.Path(),
		Reason: m.Recovery.Reason,
	}, m.Theme)
}

func (m *Model) toggleTheme() {
	m.Theme = theme.Toggle(m.Theme)
	m.Status = StatusBar{Text: fmt.Sprintf("%s theme applied", m.Theme.Name), IsError: false}
}
