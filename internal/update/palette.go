package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/leettrack/internal/commands"
	"github.com/sandeepkv93/leettrack/internal/filter"
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
		if msg.Type == tea.KeySpace {
			m.commandInput.SetValue(m.commandInput.Value() + " ")
			m.Palette.Input = m.commandInput.Value()
			return m
		}
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
		m.closePalette()
		return m
	}

	ctx := context.Background()
	res, err := commands.Execute(cmd, commands.Handlers{
		Toggle: func(a commands.ToggleArgs) (commands.Result, error) {
			item, err := m.Tracker.ResolveItem(a.Item)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			if m.Tracker.Toggle(ctx, item.ID).Done(item.ID) {
				return commands.Result{Message: fmt.Sprintf("done: %s", item.Name)}, nil
			}
			return commands.Result{Message: fmt.Sprintf("not done: %s", item.Name)}, nil
		},
		Done: func(a commands.CategoryArgs) (commands.Result, error) {
			return m.markCategoryByQuery(ctx, a.Category, true)
		},
		Undone: func(a commands.CategoryArgs) (commands.Result, error) {
			return m.markCategoryByQuery(ctx, a.Category, false)
		},
		Search: func(a commands.SearchArgs) (commands.Result, error) {
			m.searchInput.SetValue(a.Term)
			m.Cursor = 0
			if a.Term == "" {
				return commands.Result{Message: "search cleared"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("search: %q", a.Term)}, nil
		},
		Level: func(a commands.LevelArgs) (commands.Result, error) {
			m.Criteria.Difficulty = a.Difficulty
			return commands.Result{Message: fmt.Sprintf("difficulty filter: %s", a.Difficulty)}, nil
		},
		Status: func(a commands.StatusArgs) (commands.Result, error) {
			m.Criteria.Status = a.Status
			return commands.Result{Message: fmt.Sprintf("status filter: %s", a.Status)}, nil
		},
		Clear: func() (commands.Result, error) {
			m.searchInput.SetValue("")
			m.Criteria = filter.Criteria{Difficulty: filter.DifficultyAll, Status: filter.StatusAll}
			m.Cursor = 0
			return commands.Result{Message: "filters cleared"}, nil
		},
		Expand: func(a commands.ExpandArgs) (commands.Result, error) {
			return m.setExpansion(a, true)
		},
		Collapse: func(a commands.ExpandArgs) (commands.Result, error) {
			return m.setExpansion(a, false)
		},
		Reset: func() (commands.Result, error) {
			m.Confirm.Active = true
			return commands.Result{Message: "confirm reset with y"}, nil
		},
		Report: func() (commands.Result, error) {
			m.ReportVisible = !m.ReportVisible
			if m.ReportVisible {
				return commands.Result{Message: "report shown"}, nil
			}
			return commands.Result{Message: "report hidden"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
	}

	m.closePalette()
	return m
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m *Model) markCategoryByQuery(ctx context.Context, query string, done bool) (commands.Result, error) {
	cat, err := m.Tracker.ResolveCategory(query)
	if err != nil {
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
	}
	if done {
		err = m.Tracker.MarkAllDone(ctx, cat.ID)
	} else {
		err = m.Tracker.MarkAllUndone(ctx, cat.ID)
	}
	if err != nil {
		return commands.Result{}, err
	}
	if done {
		return commands.Result{Message: fmt.Sprintf("marked all done: %s", cat.Name)}, nil
	}
	return commands.Result{Message: fmt.Sprintf("marked all undone: %s", cat.Name)}, nil
}

func (m *Model) setExpansion(a commands.ExpandArgs, expand bool) (commands.Result, error) {
	if a.All {
		if expand {
			m.Expanded.ExpandAll(m.Tracker.Catalog())
			return commands.Result{Message: "expanded all categories"}, nil
		}
		m.Expanded.CollapseAll()
		return commands.Result{Message: "collapsed all categories"}, nil
	}
	cat, err := m.Tracker.ResolveCategory(a.Category)
	if err != nil {
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
	}
	if expand {
		m.Expanded[cat.ID] = true
		return commands.Result{Message: fmt.Sprintf("expanded %s", cat.Name)}, nil
	}
	delete(m.Expanded, cat.ID)
	return commands.Result{Message: fmt.Sprintf("collapsed %s", cat.Name)}, nil
}
