package views

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/leettrack/internal/model"
)

type HeaderData struct {
	Title        string
	Items        int
	Categories   int
	Completed    int
	Percent      string
	ProgressView string
	Orphans      int
}

type FilterBarData struct {
	SearchView string
	Difficulty string
	Status     string
	Visible    int
	Total      int
}

type CategoryRowData struct {
	Name      string
	Completed int
	Total     int
	Percent   float64
	Complete  bool
	Expanded  bool
	Selected  bool
}

type ItemRowData struct {
	Index      int
	Name       string
	Difficulty model.Difficulty
	Done       bool
	Selected   bool
}

// Row is one line of the checklist: a category header or, when Item is set,
// an item under an expanded category.
type Row struct {
	Category *CategoryRowData
	Item     *ItemRowData
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

var (
	easyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mediumStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	hardStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	completeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true)
)

const miniBarWidth = 10

func RenderHeader(data HeaderData) string {
	title := data.Title
	if title == "" {
		title = "LeetCode Tracker"
	}
	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(fmt.Sprintf("%d items • %d categories\n", data.Items, data.Categories))
	b.WriteString(fmt.Sprintf("progress: %s %s%% (%d/%d completed)", data.ProgressView, data.Percent, data.Completed, data.Items))
	if data.Orphans > 0 {
		b.WriteString(fmt.Sprintf("\n%d stored ids are not in the catalog", data.Orphans))
	}
	return b.String()
}

func RenderFilterBar(data FilterBarData) string {
	return fmt.Sprintf("search: %s | difficulty: %s | status: %s | showing %d/%d",
		data.SearchView, data.Difficulty, data.Status, data.Visible, data.Total)
}

func RenderChecklist(rows []Row) string {
	if len(rows) == 0 {
		return "(no items match the current filters)"
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		switch {
		case row.Item != nil:
			lines = append(lines, RenderItemRow(*row.Item))
		case row.Category != nil:
			lines = append(lines, RenderCategoryRow(*row.Category))
		}
	}
	return strings.Join(lines, "\n")
}

func RenderCategoryRow(data CategoryRowData) string {
	cursor := " "
	if data.Selected {
		cursor = ">"
	}
	arrow := "▸"
	if data.Expanded {
		arrow = "▾"
	}
	marker := CategoryMarker(data.Name, data.Complete)
	if data.Complete {
		marker = completeStyle.Render(marker)
	}
	name := data.Name
	if data.Selected {
		name = selectedStyle.Render(name)
	}
	return fmt.Sprintf("%s %s [%s] %s  %d/%d %s", cursor, arrow, marker, name, data.Completed, data.Total, MiniBar(data.Percent, miniBarWidth))
}

func RenderItemRow(data ItemRowData) string {
	cursor := " "
	if data.Selected {
		cursor = ">"
	}
	check := "[ ]"
	name := data.Name
	if data.Done {
		check = "[x]"
		name = doneStyle.Render(name)
	} else if data.Selected {
		name = selectedStyle.Render(name)
	}
	return fmt.Sprintf("%s    %2d. %s %s  %s", cursor, data.Index, check, name, DifficultyBadge(data.Difficulty))
}

// CategoryMarker is ✓ for a complete category, otherwise the upper-cased first
// letter of its name.
func CategoryMarker(name string, complete bool) string {
	if complete {
		return "✓"
	}
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

func DifficultyBadge(d model.Difficulty) string {
	switch d {
	case model.DifficultyEasy:
		return easyStyle.Render(string(d))
	case model.DifficultyMedium:
		return mediumStyle.Render(string(d))
	case model.DifficultyHard:
		return hardStyle.Render(string(d))
	default:
		return string(d)
	}
}

// MiniBar draws a fixed-width bar for a percentage in [0,100].
func MiniBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderConfirmPrompt(prompt string) string {
	return prompt + " [y/N]"
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s", strings.Join(data.Bindings, "\n"), data.HelpView)
}
