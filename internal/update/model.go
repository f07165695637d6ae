package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/store"
	"github.com/sandeepkv93/habitd/internal/theme"
)

type View string

const (
	ViewHabits  View = "Habits"
	ViewForm    View = "Form"
	ViewStats   View = "Stats"
	ViewAbout   View = "About"
	ViewRecover View = "Recover"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Habits string
	Stats  string
	About  string
	Help   string
	Quit   string
}

type FormMode string

const (
	FormModeAdd  FormMode = "add"
	FormModeEdit FormMode = "edit"
)

type FormState struct {
	Mode      FormMode
	EditID    string
	Frequency model.Frequency
	Target    int
	Focused   string
	Err       string
}

type ExportState struct {
	Active bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type RecoveryState struct {
	Failed bool
	Reason string
}

type Model struct {
	store  *store.Store
	logger *zap.Logger

	CurrentView View
	Theme       theme.Theme
	Cursor      int
	SelectedID  string
	Status      StatusBar
	Keys        GlobalKeyMap
	HelpVisible bool
	Quitting    bool
	LastError   error

	ConfirmingDelete bool
	Form             FormState
	Export           ExportState
	Palette          CommandPaletteState
	Recovery         RecoveryState

	// Aborting from the recovery prompt must exit non-zero; the shell
	// inspects this after the program ends.
	RecoveryAborted bool

	// Bubble components used for rich TUI controls
	nameInput     textinput.Model
	exportInput   textinput.Model
	commandInput  textinput.Model
	todayProgress progress.Model
	logTable      table.Model
	helpModel     help.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel(st *store.Store) Model {
	return NewModelWithConfig(st, theme.Dark(), zap.NewNop(), nil)
}

// NewModelWithConfig wires the store, theme and logger. A non-nil loadErr
// (corrupt data at startup) puts the model into the recovery view instead
// of the habit list.
func NewModelWithConfig(st *store.Store, th theme.Theme, logger *zap.Logger, loadErr error) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := Model{
		store:       st,
		logger:      logger,
		CurrentView: ViewHabits,
		Theme:       th,
		Keys: GlobalKeyMap{
			Habits: "1",
			Stats:  "2",
			About:  "3",
			Help:   "?",
			Quit:   "q",
		},
		Form: FormState{
			Mode:      FormModeAdd,
			Frequency: model.FrequencyDaily,
			Target:    1,
			Focused:   "name",
		},
	}
	if loadErr != nil {
		m.CurrentView = ViewRecover
		m.Recovery = RecoveryState{Failed: true, Reason: loadErr.Error()}
	}
	m.initBubbleComponents()
	m.syncSelection()
	return m
}

func (m *Model) initBubbleComponents() {
	m.nameInput = textinput.New()
	m.nameInput.Prompt = "name> "
	m.nameInput.CharLimit = 128
	m.nameInput.Width = 42
	m.nameInput.Placeholder = "Enter your habit..."

	m.exportInput = textinput.New()
	m.exportInput.Prompt = "path> "
	m.exportInput.CharLimit = 256
	m.exportInput.Width = 42
	m.exportInput.Placeholder = "habits.txt"

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Count", Width: 7},
		{Title: "Done", Width: 6},
	}
	m.logTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithHeight(8))

	m.todayProgress = progress.New(progress.WithDefaultGradient())

	m.helpModel = help.New()
}

// syncSelection keeps the cursor inside the habit list and the selected id
// in step with it.
func (m *Model) syncSelection() {
	habits := m.store.List()
	if len(habits) == 0 {
		m.Cursor = 0
		m.SelectedID = ""
		return
	}
	if m.Cursor >= len(habits) {
		m.Cursor = len(habits) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	m.SelectedID = habits[m.Cursor].ID
}

func (m Model) selectedHabit() (model.Habit, bool) {
	if m.SelectedID == "" {
		return model.Habit{}, false
	}
	habit, err := m.store.Get(m.SelectedID)
	if err != nil {
		return model.Habit{}, false
	}
	return habit, true
}

func isKnownView(v View) bool {
	switch v {
	case ViewHabits, ViewForm, ViewStats, ViewAbout, ViewRecover:
		return true
	default:
		return false
	}
}
