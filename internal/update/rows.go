package update

import (
	"github.com/sandeepkv93/leettrack/internal/model"
)

// ExpansionSet holds the ids of expanded categories.
type ExpansionSet map[string]bool

// Toggle flips id and reports whether it is now expanded.
func (s ExpansionSet) Toggle(id string) bool {
	if s[id] {
		delete(s, id)
		return false
	}
	s[id] = true
	return true
}

func (s ExpansionSet) ExpandAll(catalog model.Catalog) {
	for _, cat := range catalog.Categories {
		s[cat.ID] = true
	}
}

func (s ExpansionSet) CollapseAll() {
	for id := range s {
		delete(s, id)
	}
}

// row points at a category header or, when ItemID is set, at an item of an
// expanded category.
type row struct {
	CategoryID string
	ItemID     string
	Index      int
}

func (r row) isItem() bool { return r.ItemID != "" }

// visibleRows derives the checklist from the filtered catalog and the
// expansion set.
func (m Model) visibleRows() ([]row, model.Catalog) {
	if m.Tracker == nil {
		return nil, model.Catalog{}
	}
	filtered := m.Tracker.Filtered(m.Criteria)
	rows := make([]row, 0, len(filtered.Categories))
	for _, cat := range filtered.Categories {
		rows = append(rows, row{CategoryID: cat.ID})
		if !m.Expanded[cat.ID] {
			continue
		}
		for i, item := range cat.Items {
			rows = append(rows, row{CategoryID: cat.ID, ItemID: item.ID, Index: i + 1})
		}
	}
	return rows, filtered
}

func (m Model) currentRow() (row, bool) {
	rows, _ := m.visibleRows()
	if m.Cursor < 0 || m.Cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.Cursor], true
}

func (m *Model) clampCursor() {
	rows, _ := m.visibleRows()
	if m.Cursor >= len(rows) {
		m.Cursor = len(rows) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m *Model) moveCursor(delta int) {
	m.Cursor += delta
	m.clampCursor()
}

// window returns the [start,end) range of rows to draw so the cursor stays
// visible.
func window(total, cursor, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}
