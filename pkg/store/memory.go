package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps orderings in a map. It is safe for concurrent use.
type MemoryStore struct {
	mu        sync.RWMutex
	orderings map[string]*Ordering
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orderings: make(map[string]*Ordering)}
}

func (s *MemoryStore) Get(ctx context.Context, name string) (*Ordering, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orderings[name]
	if !ok {
		return nil, notFound(name)
	}
	return o.Clone(), nil
}

func (s *MemoryStore) Put(ctx context.Context, o *Ordering) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderings[o.Name] = o.Clone()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orderings[name]; !ok {
		return notFound(name)
	}
	delete(s.orderings, name)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]*Ordering, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Ordering, 0, len(s.orderings))
	for _, o := range s.orderings {
		out = append(out, o.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
