package lastgood

import (
	"sync"
	"sync/atomic"

	"github.com/vk/livegrid/internal/fieldpath"
)

// Store maps field path strings to the last value that resolved for them.
type Store struct {
	values sync.Map // Key: field path string, Value: any
	size   atomic.Int64
}

// New creates a new, empty store.
func New() *Store {
	return &Store{}
}

// Set records a successful value for a field.
func (s *Store) Set(path fieldpath.Address, v any) {
	if _, loaded := s.values.Swap(path.String(), v); !loaded {
		s.size.Add(1)
	}
}

// Get retrieves the last value recorded for a field.
func (s *Store) Get(path fieldpath.Address) (any, bool) {
	return s.values.Load(path.String())
}

// Lookup is Get with a type check; a value of another type is a miss.
func Lookup[T any](s *Store, path fieldpath.Address) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	v, ok := s.Get(path)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Len is the number of fields with a recorded value.
func (s *Store) Len() int { return int(s.size.Load()) }

// Reset forgets everything.
func (s *Store) Reset() {
	s.values.Range(func(k, _ any) bool {
		if _, loaded := s.values.LoadAndDelete(k); loaded {
			s.size.Add(-1)
		}
		return true
	})
}
