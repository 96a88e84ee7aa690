package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/leettrack/internal/config"
	"github.com/sandeepkv93/leettrack/internal/filter"
	"github.com/sandeepkv93/leettrack/internal/tracker"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Up          string
	Down        string
	Toggle      string
	ExpandAll   string
	CollapseAll string
	MarkDone    string
	MarkUndone  string
	Reset       string
	Search      string
	Difficulty  string
	Status      string
	Report      string
	Density     string
	Help        string
	Quit        string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type SearchState struct {
	Active bool
}

// ConfirmState is set while the reset prompt waits for y or n.
type ConfirmState struct {
	Active bool
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type Model struct {
	Tracker       *tracker.Tracker
	Criteria      filter.Criteria
	Expanded      ExpansionSet
	Cursor        int
	Palette       CommandPaletteState
	Search        SearchState
	Confirm       ConfirmState
	HelpVisible   bool
	ReportVisible bool
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error

	glamourStyle   string
	uiDensity      int
	searchInput    textinput.Model
	commandInput   textinput.Model
	globalProgress progress.Model
	helpModel      help.Model
	reportViewport viewport.Model
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// NewModel builds the checklist over tr using the ui section of the runtime
// config.
func NewModel(tr *tracker.Tracker, cfg config.UIConfig) Model {
	m := Model{
		Tracker: tr,
		Criteria: filter.Criteria{
			Difficulty: filter.DifficultyAll,
			Status:     filter.StatusAll,
		},
		Expanded: make(ExpansionSet),
		Keys: GlobalKeyMap{
			Up:          "k",
			Down:        "j",
			Toggle:      " ",
			ExpandAll:   "e",
			CollapseAll: "c",
			MarkDone:    "a",
			MarkUndone:  "A",
			Reset:       "R",
			Search:      "f",
			Difficulty:  "d",
			Status:      "s",
			Report:      "r",
			Density:     "D",
			Help:        "?",
			Quit:        "q",
		},
		glamourStyle: cfg.GlamourStyle,
		uiDensity:    cfg.Density,
	}
	if m.glamourStyle == "" {
		m.glamourStyle = "dark"
	}
	if m.uiDensity < 1 || m.uiDensity > 3 {
		m.uiDensity = 1
	}
	if cfg.ExpandAll {
		m.Expanded.ExpandAll(tr.Catalog())
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.searchInput = textinput.New()
	m.searchInput.Prompt = ""
	m.searchInput.Placeholder = "search problems"
	m.searchInput.CharLimit = 128
	m.searchInput.Width = 32

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.globalProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(30))
	m.helpModel = help.New()
	m.reportViewport = viewport.New(56, 20)
}

func (m *Model) syncBubbleData() {
	paneWidth, _, reportHeight := densityDimensions(m.uiDensity)
	m.reportViewport.Width = paneWidth
	m.reportViewport.Height = reportHeight
	m.Criteria.SearchTerm = m.searchInput.Value()
	m.clampCursor()
	if m.ReportVisible {
		m.reportViewport.SetContent(m.renderReport())
	}
}

// densityDimensions maps a density level to the pane width, the number of
// checklist rows shown and the report height.
func densityDimensions(level int) (paneWidth int, listHeight int, reportHeight int) {
	switch level {
	case 3:
		return 72, 40, 36
	case 2:
		return 64, 30, 28
	default:
		return 58, 20, 20
	}
}
