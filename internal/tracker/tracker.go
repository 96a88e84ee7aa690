// Package tracker composes the catalog with the progress store: single item
// toggles, category-wide marks, the confirmed reset, and the derived views the
// TUI and CLI render.
package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandeepkv93/leettrack/internal/filter"
	"github.com/sandeepkv93/leettrack/internal/model"
	"github.com/sandeepkv93/leettrack/internal/progress"
	"github.com/sandeepkv93/leettrack/internal/stats"
	"go.uber.org/zap"
)

var (
	ErrCategoryNotFound = errors.New("tracker: category not found")
	ErrItemNotFound     = errors.New("tracker: item not found")
)

const ResetPrompt = "Are you sure you want to reset all progress?"

// Confirmer gates destructive operations.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

type Tracker struct {
	catalog model.Catalog
	store   *progress.Store
	logger  *zap.Logger
}

func New(catalog model.Catalog, store *progress.Store, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{catalog: catalog, store: store, logger: logger}
}

func (t *Tracker) Catalog() model.Catalog {
	return t.catalog
}

// Toggle flips one item. An id missing from the catalog is stored anyway and
// stays invisible to every count and filter.
func (t *Tracker) Toggle(ctx context.Context, itemID string) progress.Map {
	if !t.catalog.HasItem(itemID) {
		t.logger.Warn("toggling id outside catalog", zap.String("item", itemID))
	}
	m := t.store.Toggle(ctx, itemID)
	t.logger.Info("item toggled", zap.String("item", itemID), zap.Bool("done", m.Done(itemID)))
	return m
}

func (t *Tracker) MarkAllDone(ctx context.Context, categoryID string) error {
	return t.markAll(ctx, categoryID, true)
}

func (t *Tracker) MarkAllUndone(ctx context.Context, categoryID string) error {
	return t.markAll(ctx, categoryID, false)
}

func (t *Tracker) markAll(ctx context.Context, categoryID string, value bool) error {
	cat, ok := t.catalog.Category(categoryID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, categoryID)
	}
	t.store.SetMany(ctx, cat.ItemIDs(), value)
	t.logger.Info("category marked",
		zap.String("category", cat.ID),
		zap.Bool("done", value),
		zap.Int("items", len(cat.Items)),
	)
	return nil
}

// ResetAll clears every entry after confirm accepts ResetPrompt. Declining,
// or passing no confirmer, leaves progress untouched and returns false.
func (t *Tracker) ResetAll(ctx context.Context, confirm Confirmer) bool {
	if confirm == nil || !confirm.Confirm(ResetPrompt) {
		t.logger.Debug("reset declined")
		return false
	}
	t.store.Reset(ctx)
	t.logger.Info("progress reset")
	return true
}

func (t *Tracker) Progress() progress.Map {
	return t.store.Snapshot()
}

func (t *Tracker) Summary() stats.Summary {
	return stats.Summarize(t.catalog, t.store.Snapshot())
}

func (t *Tracker) Filtered(criteria filter.Criteria) model.Catalog {
	return filter.Apply(t.catalog, t.store.Snapshot(), criteria)
}
