package progress

import (
	"context"
	"errors"
	"strings"

	"github.com/sandeepkv93/leettrack/internal/storage"
	"go.uber.org/zap"
)

const DefaultSlotKey = "leetcode-progress"

// Store is the single owner of the completion map. Every mutation replaces the
// map, marks it dirty and writes it back; Load leaves it clean so opening the
// tracker never rewrites unchanged state.
//
// A Store is not safe for concurrent use. Callers serialize mutations (the TUI
// update loop, or one CLI command per process).
type Store struct {
	slot   storage.Slot
	key    string
	logger *zap.Logger

	current Map
	dirty   bool
}

func NewStore(slot storage.Slot, key string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(key) == "" {
		key = DefaultSlotKey
	}
	return &Store{slot: slot, key: key, logger: logger, current: Map{}}
}

// Load replaces the in-memory map with the stored one. Missing, corrupt or
// unreadable storage yields an empty map; the cause is only logged.
func (s *Store) Load(ctx context.Context) Map {
	s.current = s.read(ctx)
	s.dirty = false
	return s.current.Clone()
}

func (s *Store) read(ctx context.Context) Map {
	if s.slot == nil {
		return Map{}
	}
	raw, err := s.slot.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("progress slot unreadable, starting empty", zap.String("key", s.key), zap.Error(err))
		}
		return Map{}
	}
	m, err := Decode(raw)
	if err != nil {
		s.logger.Warn("progress slot corrupt, starting empty", zap.String("key", s.key), zap.Error(err))
		return Map{}
	}
	return m
}

// Snapshot returns a copy of the current map for read-only derivations.
func (s *Store) Snapshot() Map {
	return s.current.Clone()
}

func (s *Store) Dirty() bool {
	return s.dirty
}

func (s *Store) Toggle(ctx context.Context, id string) Map {
	return s.apply(ctx, Toggle(s.current, id))
}

func (s *Store) SetMany(ctx context.Context, ids []string, value bool) Map {
	return s.apply(ctx, SetMany(s.current, ids, value))
}

func (s *Store) Reset(ctx context.Context) Map {
	return s.apply(ctx, Reset())
}

func (s *Store) apply(ctx context.Context, next Map) Map {
	s.current = next
	s.dirty = true
	s.Persist(ctx)
	return s.current.Clone()
}

// Persist writes the full map when it changed since load or since the last
// successful write. Failures are logged and the map stays dirty, so the next
// mutation retries; the in-memory state remains authoritative either way.
func (s *Store) Persist(ctx context.Context) {
	if !s.dirty || s.slot == nil {
		return
	}
	raw, err := Encode(s.current)
	if err != nil {
		s.logger.Error("encode progress", zap.Error(err))
		return
	}
	if err := s.slot.Put(ctx, s.key, raw); err != nil {
		s.logger.Error("persist progress", zap.String("key", s.key), zap.Error(err))
		return
	}
	s.dirty = false
	s.logger.Debug("progress persisted", zap.String("key", s.key), zap.Int("entries", len(s.current)))
}
