package stats

import (
	"github.com/sandeepkv93/leettrack/internal/model"
	"github.com/sandeepkv93/leettrack/internal/progress"
)

type CategoryRow struct {
	ID        string
	Name      string
	Completed int
	Total     int
	Percent   float64
	Complete  bool
}

type DifficultyRow struct {
	Difficulty model.Difficulty
	Completed  int
	Total      int
	Percent    float64
}

type Summary struct {
	Completed    int
	Total        int
	Percent      float64
	Categories   []CategoryRow
	Difficulties []DifficultyRow
	Orphans      int
}

var difficultyOrder = []model.Difficulty{
	model.DifficultyEasy,
	model.DifficultyMedium,
	model.DifficultyHard,
}

// Summarize bundles the per-category and per-difficulty figures shown by the
// stats command, the report and the TUI header.
func Summarize(catalog model.Catalog, m progress.Map) Summary {
	out := Summary{
		Completed:  GlobalCompletedCount(catalog, m),
		Total:      GlobalTotal(catalog),
		Percent:    GlobalPercent(catalog, m),
		Categories: make([]CategoryRow, 0, len(catalog.Categories)),
		Orphans:    len(m.Orphans(catalog)),
	}

	byDifficulty := make(map[model.Difficulty]*DifficultyRow, len(difficultyOrder))
	for _, d := range difficultyOrder {
		byDifficulty[d] = &DifficultyRow{Difficulty: d}
	}

	for _, cat := range catalog.Categories {
		out.Categories = append(out.Categories, CategoryRow{
			ID:        cat.ID,
			Name:      cat.Name,
			Completed: CompletedCount(cat, m),
			Total:     TotalCount(cat),
			Percent:   CategoryPercent(cat, m),
			Complete:  IsCategoryComplete(cat, m),
		})
		for _, item := range cat.Items {
			row, ok := byDifficulty[item.Difficulty]
			if !ok {
				continue
			}
			row.Total++
			if m.Done(item.ID) {
				row.Completed++
			}
		}
	}

	for _, d := range difficultyOrder {
		row := byDifficulty[d]
		row.Percent = percent(row.Completed, row.Total)
		out.Difficulties = append(out.Difficulties, *row)
	}
	return out
}
