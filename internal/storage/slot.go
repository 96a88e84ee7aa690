package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrNotFound = errors.New("storage: not found")

// Slot is a local key/value store holding whole serialized values under fixed
// names. Writes replace the previous value; there is no versioning.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendBolt   Backend = "bolt"
	BackendFile   Backend = "file"
	BackendMemory Backend = "memory"
)

func (b Backend) IsValid() bool {
	switch b {
	case BackendSQLite, BackendBolt, BackendFile, BackendMemory:
		return true
	default:
		return false
	}
}

// Open returns the slot for backend. path is the database file for sqlite and
// bolt, the directory for file, and ignored for memory.
func Open(backend Backend, path string) (Slot, error) {
	backend = Backend(strings.ToLower(strings.TrimSpace(string(backend))))
	if !backend.IsValid() {
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
	if backend != BackendMemory && strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage: %s backend requires a path", backend)
	}

	switch backend {
	case BackendSQLite:
		slot, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return slot, nil
	case BackendBolt:
		slot, err := OpenBolt(path)
		if err != nil {
			return nil, err
		}
		return slot, nil
	case BackendFile:
		slot, err := NewFileSlot(path)
		if err != nil {
			return nil, err
		}
		return slot, nil
	default:
		return NewMemorySlot(), nil
	}
}

// Timestamped is implemented by slots that record when a key was last written.
type Timestamped interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, error)
}
