package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDifficulty = errors.New("model: invalid item difficulty")
	ErrDuplicateID       = errors.New("model: duplicate id")
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// ParseDifficulty accepts any letter case ("easy", "HARD").
func ParseDifficulty(raw string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, raw)
	}
}

type Item struct {
	ID         string
	Name       string
	Difficulty Difficulty
}

type Category struct {
	ID    string
	Name  string
	Items []Item
}

// ItemIDs returns the ids of the category's items in display order.
func (c Category) ItemIDs() []string {
	ids := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// Catalog is the ordered, read-only list of categories. Nothing mutates it
// after load; derived views build new catalogs instead.
type Catalog struct {
	Categories []Category
}

func (c Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

func (c Catalog) Item(id string) (Item, Category, bool) {
	for _, cat := range c.Categories {
		for _, item := range cat.Items {
			if item.ID == id {
				return item, cat, true
			}
		}
	}
	return Item{}, Category{}, false
}

func (c Catalog) HasItem(id string) bool {
	_, _, ok := c.Item(id)
	return ok
}

func (c Catalog) ItemCount() int {
	total := 0
	for _, cat := range c.Categories {
		total += len(cat.Items)
	}
	return total
}

func (c Catalog) Validate() error {
	categoryIDs := make(map[string]bool, len(c.Categories))
	itemIDs := make(map[string]bool)
	for i, cat := range c.Categories {
		if strings.TrimSpace(cat.ID) == "" {
			return fmt.Errorf("model: category %d: id is required", i)
		}
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("model: category %q: name is required", cat.ID)
		}
		if categoryIDs[cat.ID] {
			return fmt.Errorf("%w: category %q", ErrDuplicateID, cat.ID)
		}
		categoryIDs[cat.ID] = true
		for j, item := range cat.Items {
			if strings.TrimSpace(item.ID) == "" {
				return fmt.Errorf("model: category %q item %d: id is required", cat.ID, j)
			}
			if strings.TrimSpace(item.Name) == "" {
				return fmt.Errorf("model: item %q: name is required", item.ID)
			}
			if !item.Difficulty.IsValid() {
				return fmt.Errorf("%w: item %q: %q", ErrInvalidDifficulty, item.ID, item.Difficulty)
			}
			if itemIDs[item.ID] {
				return fmt.Errorf("%w: item %q", ErrDuplicateID, item.ID)
			}
			itemIDs[item.ID] = true
		}
	}
	return nil
}
