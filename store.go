package sheetcalc

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"
)

// Store maps cell identifiers to stored values. Identifiers are opaque;
// any string is accepted. Entries are listed in first-insertion order.
type Store struct {
	mu    sync.RWMutex
	cells *orderedmap.OrderedMap[string, Value]
}

func NewStore() *Store {
	return &Store{
		cells: orderedmap.NewOrderedMap[string, Value](),
	}
}

// Set stores v under id, replacing any prior value.
func (s *Store) Set(id string, v Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cells.Set(id, v)
}

// GetRaw returns the stored value without evaluating it.
func (s *Store) GetRaw(id string) (Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.cells.Get(id)
	if !ok {
		return Value{}, notFound(id)
	}
	return v, nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cells.Len()
}

// Entry is one stored cell as returned by Cells.
type Entry struct {
	ID    string
	Value Value
}

func (s *Store) Cells() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]Entry, 0, s.cells.Len())
	for el := s.cells.Front(); el != nil; el = el.Next() {
		entries = append(entries, Entry{ID: el.Key, Value: el.Value})
	}
	return entries
}
