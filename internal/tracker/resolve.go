package tracker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sfuzzy "github.com/sahilm/fuzzy"
	"github.com/sandeepkv93/leettrack/internal/model"
)

const maxCandidates = 5

// ResolveCategory finds a category by exact id, then by name ignoring case,
// then by fuzzy name match. A fuzzy query must match exactly one category;
// otherwise the error lists what it matched.
func (t *Tracker) ResolveCategory(query string) (model.Category, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return model.Category{}, fmt.Errorf("%w: empty query", ErrCategoryNotFound)
	}
	if cat, ok := t.catalog.Category(q); ok {
		return cat, nil
	}
	names := make([]string, 0, len(t.catalog.Categories))
	for _, cat := range t.catalog.Categories {
		if strings.EqualFold(cat.Name, q) {
			return cat, nil
		}
		names = append(names, strings.ToLower(cat.Name))
	}

	matches := sfuzzy.Find(strings.ToLower(q), names)
	switch len(matches) {
	case 0:
		return model.Category{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, query)
	case 1:
		return t.catalog.Categories[matches[0].Index], nil
	}
	candidates := make([]string, 0, len(matches))
	for _, match := range matches {
		candidates = append(candidates, t.catalog.Categories[match.Index].Name)
	}
	return model.Category{}, ambiguous(ErrCategoryNotFound, query, candidates)
}

// ResolveItem finds an item by exact id, then by name ignoring case, then by
// fuzzy name match. A fuzzy query must match exactly one item; otherwise the
// error lists the closest names.
func (t *Tracker) ResolveItem(query string) (model.Item, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return model.Item{}, fmt.Errorf("%w: empty query", ErrItemNotFound)
	}
	if item, _, ok := t.catalog.Item(q); ok {
		return item, nil
	}

	var items []model.Item
	var names []string
	for _, cat := range t.catalog.Categories {
		for _, item := range cat.Items {
			if strings.EqualFold(item.Name, q) {
				return item, nil
			}
			items = append(items, item)
			names = append(names, item.Name)
		}
	}

	ranks := fuzzy.RankFindFold(q, names)
	switch len(ranks) {
	case 0:
		return model.Item{}, fmt.Errorf("%w: %q", ErrItemNotFound, query)
	case 1:
		return items[ranks[0].OriginalIndex], nil
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	candidates := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		candidates = append(candidates, rank.Target)
	}
	return model.Item{}, ambiguous(ErrItemNotFound, query, candidates)
}

func ambiguous(sentinel error, query string, candidates []string) error {
	more := ""
	if len(candidates) > maxCandidates {
		more = fmt.Sprintf(" and %d more", len(candidates)-maxCandidates)
		candidates = candidates[:maxCandidates]
	}
	return fmt.Errorf("%w: %q matches %s%s", sentinel, query, strings.Join(candidates, ", "), more)
}
