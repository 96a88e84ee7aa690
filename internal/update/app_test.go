package update

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/leettrack/internal/config"
	"github.com/sandeepkv93/leettrack/internal/filter"
	"github.com/sandeepkv93/leettrack/internal/model"
	"github.com/sandeepkv93/leettrack/internal/progress"
	"github.com/sandeepkv93/leettrack/internal/storage"
	"github.com/sandeepkv93/leettrack/internal/tracker"
)

func testCatalog() model.Catalog {
	return model.Catalog{Categories: []model.Category{
		{ID: "arrays", Name: "Arrays", Items: []model.Item{
			{ID: "a1", Name: "Two Sum", Difficulty: model.DifficultyEasy},
			{ID: "a2", Name: "3Sum", Difficulty: model.DifficultyMedium},
		}},
		{ID: "graphs", Name: "Graphs", Items: []model.Item{
			{ID: "g1", Name: "Number of Islands", Difficulty: model.DifficultyMedium},
			{ID: "g2", Name: "Word Ladder", Difficulty: model.DifficultyHard},
		}},
	}}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	store := progress.NewStore(storage.NewMemorySlot(), progress.DefaultSlotKey, nil)
	store.Load(context.Background())
	tr := tracker.New(testCatalog(), store, nil)
	return NewModel(tr, config.UIConfig{Density: 1, GlamourStyle: "notty"})
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(k)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)
	if m.Keys.Quit != "q" || m.Keys.Toggle != " " {
		t.Fatalf("unexpected keys: %+v", m.Keys)
	}
	if m.Criteria.Difficulty != filter.DifficultyAll || m.Criteria.Status != filter.StatusAll {
		t.Fatalf("unexpected criteria: %+v", m.Criteria)
	}
	if rows, _ := m.visibleRows(); len(rows) != 2 {
		t.Fatalf("expected two collapsed categories, got %d rows", len(rows))
	}
}

func TestNewModelExpandAllOption(t *testing.T) {
	store := progress.NewStore(storage.NewMemorySlot(), "", nil)
	m := NewModel(tracker.New(testCatalog(), store, nil), config.UIConfig{ExpandAll: true})
	if rows, _ := m.visibleRows(); len(rows) != 6 {
		t.Fatalf("expected every category expanded, got %d rows", len(rows))
	}
	if m.uiDensity != 1 || m.glamourStyle != "dark" {
		t.Fatalf("expected fallback ui settings, got density=%d style=%q", m.uiDensity, m.glamourStyle)
	}
}

func TestSpaceExpandsCategoryThenTogglesItem(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, space)
	if !m.Expanded["arrays"] {
		t.Fatal("expected arrays expanded")
	}
	m = press(t, m, runes("j"), space)
	if !m.Tracker.Progress().Done("a1") {
		t.Fatal("expected a1 done")
	}
	if m.Status.Text != "done: Two Sum" {
		t.Fatalf("unexpected status %q", m.Status.Text)
	}

	m = press(t, m, enter)
	if m.Tracker.Progress().Done("a1") {
		t.Fatal("enter should toggle a1 back")
	}
}

func TestExpandAndCollapseAllKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("e"))
	if rows, _ := m.visibleRows(); len(rows) != 6 {
		t.Fatalf("expected 6 rows after expand all, got %d", len(rows))
	}
	m = press(t, m, runes("j"), runes("j"), runes("j"), runes("j"), runes("j"), runes("j"), runes("j"))
	if m.Cursor != 5 {
		t.Fatalf("cursor should clamp to last row, got %d", m.Cursor)
	}
	m = press(t, m, runes("c"))
	if rows, _ := m.visibleRows(); len(rows) != 2 {
		t.Fatalf("expected 2 rows after collapse all, got %d", len(rows))
	}
	if m.Cursor != 1 {
		t.Fatalf("cursor should clamp after collapse, got %d", m.Cursor)
	}
}

func TestMarkCategoryKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("j"), runes("a"))
	got := m.Tracker.Progress()
	if !got.Done("g1") || !got.Done("g2") || got.Done("a1") {
		t.Fatalf("expected only graphs done, got %v", got)
	}
	m = press(t, m, runes("A"))
	if m.Tracker.Summary().Completed != 0 {
		t.Fatalf("expected graphs undone, got %+v", m.Tracker.Summary())
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("a"), runes("R"))
	if !m.Confirm.Active {
		t.Fatal("expected confirm prompt")
	}
	if out := m.View(); !strings.Contains(out, tracker.ResetPrompt) {
		t.Fatalf("expected reset prompt in view:\n%s", out)
	}
	m = press(t, m, runes("n"))
	if m.Confirm.Active || m.Tracker.Summary().Completed != 2 {
		t.Fatalf("declined reset changed state: %+v", m.Tracker.Summary())
	}
	if m.Status.Text != "reset cancelled" {
		t.Fatalf("unexpected status %q", m.Status.Text)
	}

	m = press(t, m, runes("R"), runes("y"))
	if len(m.Tracker.Progress()) != 0 {
		t.Fatalf("expected empty progress, got %v", m.Tracker.Progress())
	}
}

func TestSearchKeyFiltersRows(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("f"), runes("sum"), enter)
	if m.Search.Active {
		t.Fatal("enter should leave search mode")
	}
	if m.Criteria.SearchTerm != "sum" {
		t.Fatalf("expected search term sum, got %q", m.Criteria.SearchTerm)
	}
	rows, filtered := m.visibleRows()
	if len(rows) != 1 || rows[0].CategoryID != "arrays" || filtered.ItemCount() != 2 {
		t.Fatalf("unexpected rows %+v", rows)
	}

	m = press(t, m, runes("f"), esc)
	if m.Criteria.SearchTerm != "" {
		t.Fatalf("esc should clear search, got %q", m.Criteria.SearchTerm)
	}
}

func TestSearchModeSwallowsShortcuts(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("f"), runes("q"))
	if m.Quitting {
		t.Fatal("q inside search should not quit")
	}
	if m.Criteria.SearchTerm != "q" {
		t.Fatalf("expected q typed into search, got %q", m.Criteria.SearchTerm)
	}
}

func TestCycleFilterKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("d"), runes("d"))
	if m.Criteria.Difficulty != filter.DifficultyMedium {
		t.Fatalf("expected medium, got %q", m.Criteria.Difficulty)
	}
	m = press(t, m, runes("s"))
	if m.Criteria.Status != filter.StatusDone {
		t.Fatalf("expected done, got %q", m.Criteria.Status)
	}
	if rows, _ := m.visibleRows(); len(rows) != 0 {
		t.Fatalf("nothing is done yet, got rows %+v", rows)
	}
	if out := m.View(); !strings.Contains(out, "no items match") {
		t.Fatalf("expected empty checklist message:\n%s", out)
	}
}

func TestPaletteCommands(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("/"), runes("done graphs"), enter)
	if m.Palette.Active {
		t.Fatal("palette should close after enter")
	}
	if !m.Tracker.Summary().Categories[1].Complete {
		t.Fatalf("expected graphs complete, status=%+v", m.Status)
	}

	m = press(t, m, runes("/"), runes("toggle two sum"), enter)
	if !m.Tracker.Progress().Done("a1") {
		t.Fatalf("expected a1 toggled, status=%+v", m.Status)
	}

	m = press(t, m, runes("/"), runes("level hard"), enter, runes("/"), runes("status done"), enter)
	rows, _ := m.visibleRows()
	if len(rows) != 1 || rows[0].CategoryID != "graphs" {
		t.Fatalf("unexpected rows after filters: %+v", rows)
	}

	m = press(t, m, runes("/"), runes("clear"), enter, runes("/"), runes("expand arrays"), enter)
	if m.Criteria.Difficulty != filter.DifficultyAll || !m.Expanded["arrays"] || m.Expanded["graphs"] {
		t.Fatalf("unexpected state after clear/expand: %+v %v", m.Criteria, m.Expanded)
	}

	m = press(t, m, runes("/"), runes("reset"), enter)
	if !m.Confirm.Active {
		t.Fatal("reset command should ask for confirmation")
	}
}

func TestPaletteErrorsSetErrorStatus(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("/"), runes("frobnicate"), enter)
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "unknown_command") {
		t.Fatalf("unexpected status %+v", m.Status)
	}
	m = press(t, m, runes("/"), runes("done trees zzz"), enter)
	if !m.Status.IsError {
		t.Fatalf("expected unresolved category error, got %+v", m.Status)
	}
	m = press(t, m, runes("/"), runes("abc"), esc)
	if m.Palette.Active || m.Status.Text != "command palette closed" {
		t.Fatalf("esc should close palette: %+v", m.Status)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(SetStatusMsg{Text: "ready", IsError: false})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	updated, _ = next.Update(AppErrorMsg{Err: errors.New("boom")})
	next = updated.(Model)
	if next.LastError == nil || !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(runes("q"))
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, space, runes("j"), space)
	out := m.View()
	for _, want := range []string{
		"4 items • 2 categories",
		"25.0%",
		"1/4 completed",
		"Two Sum",
		"Progress saved locally",
		"status: done: Two Sum",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestReportAndHelpPanes(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("r"), runes("?"))
	if !m.ReportVisible || !m.HelpVisible {
		t.Fatalf("expected report and help visible: report=%v help=%v", m.ReportVisible, m.HelpVisible)
	}
	out := m.View()
	for _, want := range []string{"LeetCode Progress", "toggle item / expand category"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestWindowKeepsCursorVisible(t *testing.T) {
	cases := []struct {
		total, cursor, height int
		start, end            int
	}{
		{5, 0, 10, 0, 5},
		{50, 0, 10, 0, 10},
		{50, 25, 10, 20, 30},
		{50, 49, 10, 40, 50},
	}
	for _, tc := range cases {
		start, end := window(tc.total, tc.cursor, tc.height)
		if start != tc.start || end != tc.end {
			t.Fatalf("window(%d,%d,%d) = %d,%d want %d,%d", tc.total, tc.cursor, tc.height, start, end, tc.start, tc.end)
		}
	}
}

func TestPaletteAcceptsHelpKeyAfterInput(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("/"), runes("?"))
	if !m.HelpVisible || m.Palette.Input != "" {
		t.Fatalf("? on an empty palette should toggle help: help=%v input=%q", m.HelpVisible, m.Palette.Input)
	}
	m = press(t, m, runes("search"), space, runes("?"))
	if m.Palette.Input != "search ?" {
		t.Fatalf("expected ? typed into the palette, got %q", m.Palette.Input)
	}
	if !m.HelpVisible {
		t.Fatal("typing ? into a command should not hide help")
	}
}
