package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/leettrack/internal/stats"
	"github.com/sandeepkv93/leettrack/internal/tracker"
	"github.com/sandeepkv93/leettrack/internal/views"
)

// activateCurrentRow toggles the item under the cursor, or expands/collapses
// the category under it.
func (m *Model) activateCurrentRow() {
	r, ok := m.currentRow()
	if !ok {
		return
	}
	if !r.isItem() {
		if m.Expanded.Toggle(r.CategoryID) {
			m.Status = StatusBar{Text: fmt.Sprintf("expanded %s", r.CategoryID)}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("collapsed %s", r.CategoryID)}
		}
		return
	}

	done := m.Tracker.Toggle(context.Background(), r.ItemID).Done(r.ItemID)
	name := r.ItemID
	if item, _, ok := m.Tracker.Catalog().Item(r.ItemID); ok {
		name = item.Name
	}
	if done {
		m.Status = StatusBar{Text: fmt.Sprintf("done: %s", name)}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("not done: %s", name)}
	}
}

func (m *Model) markCurrentCategory(done bool) {
	r, ok := m.currentRow()
	if !ok {
		return
	}
	var err error
	if done {
		err = m.Tracker.MarkAllDone(context.Background(), r.CategoryID)
	} else {
		err = m.Tracker.MarkAllUndone(context.Background(), r.CategoryID)
	}
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	verb := "marked all done"
	if !done {
		verb = "marked all undone"
	}
	m.Status = StatusBar{Text: fmt.Sprintf("%s: %s", verb, r.CategoryID)}
	m.notify("Category", m.Status.Text, "info")
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	accepted := msg.String() == "y" || msg.String() == "Y"
	m.Confirm.Active = false
	if m.Tracker.ResetAll(context.Background(), tracker.ConfirmFunc(func(string) bool { return accepted })) {
		m.Cursor = 0
		m.Status = StatusBar{Text: "progress reset"}
		m.notify("Reset", "all progress cleared", "info")
	} else {
		m.Status = StatusBar{Text: "reset cancelled"}
	}
	return m
}

func (m Model) handleSearchKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.Search.Active = false
		m.Status = StatusBar{Text: "search cleared"}
	case "enter":
		m.searchInput.Blur()
		m.Search.Active = false
		m.Status = StatusBar{Text: fmt.Sprintf("search: %q", m.searchInput.Value())}
	default:
		if msg.Type == tea.KeySpace {
			m.searchInput.SetValue(m.searchInput.Value() + " ")
			m.searchInput.CursorEnd()
			break
		}
		if msg.Type == tea.KeyRunes {
			m.searchInput.SetValue(m.searchInput.Value() + string(msg.Runes))
			m.searchInput.CursorEnd()
			break
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		_ = cmd
	}
	m.Cursor = 0
	return m
}

func (m *Model) cycleDensity() {
	m.uiDensity++
	if m.uiDensity > 3 {
		m.uiDensity = 1
	}
	m.Status = StatusBar{Text: fmt.Sprintf("density level: %d", m.uiDensity)}
}

func (m Model) renderChecklist(rows []row) string {
	if len(rows) == 0 {
		return views.RenderChecklist(nil)
	}
	catalog := m.Tracker.Catalog()
	done := m.Tracker.Progress()
	_, height, _ := densityDimensions(m.uiDensity)
	start, end := window(len(rows), m.Cursor, height)

	out := make([]views.Row, 0, end-start)
	for i := start; i < end; i++ {
		r := rows[i]
		selected := i == m.Cursor
		if r.isItem() {
			item, _, _ := catalog.Item(r.ItemID)
			out = append(out, views.Row{Item: &views.ItemRowData{
				Index:      r.Index,
				Name:       item.Name,
				Difficulty: item.Difficulty,
				Done:       done.Done(r.ItemID),
				Selected:   selected,
			}})
			continue
		}
		cat, _ := catalog.Category(r.CategoryID)
		out = append(out, views.Row{Category: &views.CategoryRowData{
			Name:      cat.Name,
			Completed: stats.CompletedCount(cat, done),
			Total:     stats.TotalCount(cat),
			Percent:   stats.CategoryPercent(cat, done),
			Complete:  stats.IsCategoryComplete(cat, done),
			Expanded:  m.Expanded[cat.ID],
			Selected:  selected,
		}})
	}
	body := views.RenderChecklist(out)
	if start > 0 || end < len(rows) {
		body += fmt.Sprintf("\n(%d-%d of %d rows)", start+1, end, len(rows))
	}
	return body
}
