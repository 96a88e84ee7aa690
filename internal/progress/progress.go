// Package progress owns the completion map: pure operations that return new
// maps, the JSON codec for the persisted slot, and the Store that ties the two
// to a storage backend.
package progress

import (
	"sort"

	"github.com/sandeepkv93/leettrack/internal/model"
)

// Map records completion per item id. A missing key means not done.
type Map map[string]bool

func (m Map) Done(id string) bool {
	return m[id]
}

func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Equal compares completion state, so an explicit false and a missing key
// are the same.
func (m Map) Equal(other Map) bool {
	for k, v := range m {
		if other[k] != v {
			return false
		}
	}
	for k, v := range other {
		if m[k] != v {
			return false
		}
	}
	return true
}

// Orphans lists keys with no matching catalog item, sorted.
func (m Map) Orphans(catalog model.Catalog) []string {
	var out []string
	for id := range m {
		if !catalog.HasItem(id) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func Toggle(m Map, id string) Map {
	out := m.Clone()
	out[id] = !m[id]
	return out
}

func SetMany(m Map, ids []string, value bool) Map {
	out := m.Clone()
	for _, id := range ids {
		out[id] = value
	}
	return out
}

func Reset() Map {
	return Map{}
}
