package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/leettrack/internal/stats"
	"github.com/sandeepkv93/leettrack/internal/tracker"
	"github.com/sandeepkv93/leettrack/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Confirm.Active {
			return m.handleConfirmKey(typed), nil
		}
		if m.Palette.Active {
			if typed.String() == m.Keys.Help && m.commandInput.Value() == "" {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed), nil
		}
		if m.Search.Active {
			return m.handleSearchKey(typed), nil
		}
		if m.ReportVisible {
			switch typed.String() {
			case "up", "down", "pgup", "pgdown":
				var cmd tea.Cmd
				m.reportViewport, cmd = m.reportViewport.Update(typed)
				return m, cmd
			}
		}

		switch keyStr := typed.String(); keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active"}
		case m.Keys.Search:
			m.Search.Active = true
			m.searchInput.Focus()
			m.Status = StatusBar{Text: "search: type to filter, enter to keep, esc to clear"}
		case m.Keys.Up, "up":
			m.moveCursor(-1)
		case m.Keys.Down, "down":
			m.moveCursor(1)
		case m.Keys.Toggle, "enter":
			m.activateCurrentRow()
		case m.Keys.ExpandAll:
			m.Expanded.ExpandAll(m.Tracker.Catalog())
			m.Status = StatusBar{Text: "expanded all categories"}
		case m.Keys.CollapseAll:
			m.Expanded.CollapseAll()
			m.Status = StatusBar{Text: "collapsed all categories"}
		case m.Keys.MarkDone:
			m.markCurrentCategory(true)
		case m.Keys.MarkUndone:
			m.markCurrentCategory(false)
		case m.Keys.Reset:
			m.Confirm.Active = true
			m.Status = StatusBar{Text: "confirm reset with y"}
		case m.Keys.Difficulty:
			m.Criteria.Difficulty = m.Criteria.Difficulty.Next()
			m.Status = StatusBar{Text: fmt.Sprintf("difficulty filter: %s", m.Criteria.Difficulty)}
		case m.Keys.Status:
			m.Criteria.Status = m.Criteria.Status.Next()
			m.Status = StatusBar{Text: fmt.Sprintf("status filter: %s", m.Criteria.Status)}
		case m.Keys.Report:
			m.ReportVisible = !m.ReportVisible
			if m.ReportVisible {
				m.reportViewport.GotoTop()
			}
		case m.Keys.Density:
			m.cycleDensity()
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown"}
			} else {
				m.Status = StatusBar{Text: "help hidden"}
			}
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.Tracker == nil {
		return "no catalog loaded"
	}
	catalog := m.Tracker.Catalog()
	summary := m.Tracker.Summary()
	rows, filtered := m.visibleRows()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	prompt := ""
	if m.Confirm.Active {
		prompt = views.RenderConfirmPrompt(tracker.ResetPrompt)
	}

	paneWidth, _, _ := densityDimensions(m.uiDensity)
	rightPane := strings.TrimSpace(strings.Join([]string{
		m.renderCommandPalette(),
		m.renderReportIfVisible(),
		m.renderHelpIfVisible(),
	}, "\n"))

	return views.RenderApp(views.AppData{
		Header: views.RenderHeader(views.HeaderData{
			Items:        summary.Total,
			Categories:   len(catalog.Categories),
			Completed:    summary.Completed,
			Percent:      stats.FormatPercent(summary.Percent),
			ProgressView: m.globalProgress.ViewAs(summary.Percent / 100),
			Orphans:      summary.Orphans,
		}),
		Filters: views.RenderFilterBar(views.FilterBarData{
			SearchView: m.searchInput.View(),
			Difficulty: string(m.Criteria.Difficulty),
			Status:     string(m.Criteria.Status),
			Visible:    filtered.ItemCount(),
			Total:      summary.Total,
		}),
		LeftPane:     m.renderChecklist(rows),
		RightPane:    rightPane,
		StatusLine:   status,
		Prompt:       prompt,
		Notification: m.renderNotificationsView(),
		Footer:       fmt.Sprintf("%s | space toggle | e/c expand/collapse | / cmd | %s help | %s quit", views.FooterText, m.Keys.Help, m.Keys.Quit),
		PaneWidth:    paneWidth,
	})
}
