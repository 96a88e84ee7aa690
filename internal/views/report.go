package views

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/leettrack/internal/stats"
)

// BuildReport renders a summary as markdown for glamour.
func BuildReport(summary stats.Summary) string {
	var b strings.Builder
	b.WriteString("# LeetCode Progress\n\n")
	b.WriteString(fmt.Sprintf("**%d / %d** completed (%s%%)\n\n", summary.Completed, summary.Total, stats.FormatPercent(summary.Percent)))

	b.WriteString("## By difficulty\n\n")
	b.WriteString("| Difficulty | Done | Total | % |\n")
	b.WriteString("|---|---:|---:|---:|\n")
	for _, row := range summary.Difficulties {
		b.WriteString(fmt.Sprintf("| %s | %d | %d | %s |\n", row.Difficulty, row.Completed, row.Total, stats.FormatPercent(row.Percent)))
	}

	b.WriteString("\n## By category\n\n")
	b.WriteString("| | Category | Done | Total | % |\n")
	b.WriteString("|---|---|---:|---:|---:|\n")
	for _, row := range summary.Categories {
		b.WriteString(fmt.Sprintf("| %s | %s | %d | %d | %s |\n",
			CategoryMarker(row.Name, row.Complete), escapeCell(row.Name), row.Completed, row.Total, stats.FormatPercent(row.Percent)))
	}

	if summary.Orphans > 0 {
		b.WriteString(fmt.Sprintf("\n_%d stored ids no longer match the catalog and are ignored._\n", summary.Orphans))
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
