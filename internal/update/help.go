package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/leettrack/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.globalBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", displayKey(kb.Key), kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Up + "/" + m.Keys.Down, Action: "move cursor"},
		{Key: m.Keys.Toggle, Action: "toggle item / expand category"},
		{Key: m.Keys.ExpandAll, Action: "expand all"},
		{Key: m.Keys.CollapseAll, Action: "collapse all"},
		{Key: m.Keys.MarkDone, Action: "mark category done"},
		{Key: m.Keys.MarkUndone, Action: "mark category undone"},
		{Key: m.Keys.Reset, Action: "reset all progress"},
		{Key: m.Keys.Search, Action: "search"},
		{Key: m.Keys.Difficulty, Action: "cycle difficulty filter"},
		{Key: m.Keys.Status, Action: "cycle status filter"},
		{Key: m.Keys.Report, Action: "toggle report"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Density, Action: "cycle density"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(displayKey(kb.Key), kb.Action)))
	}
	return out
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
