// Package stats derives completion counts and percentages from a catalog and
// a progress map. Everything here is recomputed on each call.
package stats

import (
	"fmt"

	"github.com/sandeepkv93/leettrack/internal/model"
	"github.com/sandeepkv93/leettrack/internal/progress"
)

func CompletedCount(category model.Category, m progress.Map) int {
	done := 0
	for _, item := range category.Items {
		if m.Done(item.ID) {
			done++
		}
	}
	return done
}

func TotalCount(category model.Category) int {
	return len(category.Items)
}

func CategoryPercent(category model.Category, m progress.Map) float64 {
	return percent(CompletedCount(category, m), TotalCount(category))
}

// IsCategoryComplete is false for an empty category.
func IsCategoryComplete(category model.Category, m progress.Map) bool {
	total := TotalCount(category)
	return total > 0 && CompletedCount(category, m) == total
}

// GlobalCompletedCount only counts ids present in the catalog; orphan keys
// never contribute.
func GlobalCompletedCount(catalog model.Catalog, m progress.Map) int {
	done := 0
	for _, cat := range catalog.Categories {
		done += CompletedCount(cat, m)
	}
	return done
}

func GlobalTotal(catalog model.Catalog) int {
	return catalog.ItemCount()
}

func GlobalPercent(catalog model.Catalog, m progress.Map) float64 {
	return percent(GlobalCompletedCount(catalog, m), GlobalTotal(catalog))
}

func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f", p)
}

func percent(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}
