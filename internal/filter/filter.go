// Package filter narrows a catalog to the items matching a search term, a
// difficulty and a completion status.
package filter

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/leettrack/internal/model"
	"github.com/sandeepkv93/leettrack/internal/progress"
)

type Difficulty string

const (
	DifficultyAll    Difficulty = "all"
	DifficultyEasy   Difficulty = Difficulty(model.DifficultyEasy)
	DifficultyMedium Difficulty = Difficulty(model.DifficultyMedium)
	DifficultyHard   Difficulty = Difficulty(model.DifficultyHard)
)

type Status string

const (
	StatusAll     Status = "all"
	StatusDone    Status = "done"
	StatusNotDone Status = "undone"
)

var (
	Difficulties = []Difficulty{DifficultyAll, DifficultyEasy, DifficultyMedium, DifficultyHard}
	Statuses     = []Status{StatusAll, StatusDone, StatusNotDone}
)

type Criteria struct {
	SearchTerm string
	Difficulty Difficulty
	Status     Status
}

// IsZero reports whether c keeps every item. Whitespace in the search term is
// significant, so a term of spaces is not zero.
func (c Criteria) IsZero() bool {
	return c.SearchTerm == "" && c.difficulty() == DifficultyAll && c.status() == StatusAll
}

func (c Criteria) difficulty() Difficulty {
	if c.Difficulty == "" {
		return DifficultyAll
	}
	return c.Difficulty
}

func (c Criteria) status() Status {
	if c.Status == "" {
		return StatusAll
	}
	return c.Status
}

func ParseDifficulty(raw string) (Difficulty, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, string(DifficultyAll)) {
		return DifficultyAll, nil
	}
	d, err := model.ParseDifficulty(trimmed)
	if err != nil {
		return "", fmt.Errorf("filter: unknown difficulty %q", raw)
	}
	return Difficulty(d), nil
}

func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return StatusAll, nil
	case "done", "complete", "completed":
		return StatusDone, nil
	case "undone", "notdone", "not-done", "todo", "pending":
		return StatusNotDone, nil
	default:
		return "", fmt.Errorf("filter: unknown status %q", raw)
	}
}

// Next cycles through Difficulties in order.
func (d Difficulty) Next() Difficulty {
	for i, v := range Difficulties {
		if v == d {
			return Difficulties[(i+1)%len(Difficulties)]
		}
	}
	return DifficultyAll
}

func (s Status) Next() Status {
	for i, v := range Statuses {
		if v == s {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return StatusAll
}

// Apply returns a new catalog holding only matching items. Categories left
// with no items are dropped. Order is preserved and the input is not touched.
func Apply(catalog model.Catalog, m progress.Map, criteria Criteria) model.Catalog {
	term := strings.ToLower(criteria.SearchTerm)
	difficulty := criteria.difficulty()
	status := criteria.status()

	out := model.Catalog{Categories: make([]model.Category, 0, len(catalog.Categories))}
	for _, cat := range catalog.Categories {
		var kept []model.Item
		for _, item := range cat.Items {
			if !matchesTerm(item, term) {
				continue
			}
			if difficulty != DifficultyAll && Difficulty(item.Difficulty) != difficulty {
				continue
			}
			if !matchesStatus(status, m.Done(item.ID)) {
				continue
			}
			kept = append(kept, item)
		}
		if len(kept) == 0 {
			continue
		}
		out.Categories = append(out.Categories, model.Category{ID: cat.ID, Name: cat.Name, Items: kept})
	}
	return out
}

func matchesTerm(item model.Item, term string) bool {
	return term == "" || strings.Contains(strings.ToLower(item.Name), term)
}

func matchesStatus(status Status, done bool) bool {
	switch status {
	case StatusDone:
		return done
	case StatusNotDone:
		return !done
	default:
		return true
	}
}
