package store

import (
	"context"
	"slices"
	"sync"
)

type memCollection struct {
	order   []string
	records map[string]Raw
}

func (m *memCollection) clone() *memCollection {
	out := &memCollection{
		order:   slices.Clone(m.order),
		records: make(map[string]Raw, len(m.records)),
	}
	for k, v := range m.records {
		out.records[k] = v
	}
	return out
}

// MemoryStore menyimpan record di memori proses. Urutan GetAll = urutan insert.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memCollection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: map[string]*memCollection{}}
}

func (s *MemoryStore) coll(name string) *memCollection {
	c, ok := s.collections[name]
	if !ok {
		c = &memCollection{records: map[string]Raw{}}
		s.collections[name] = c
	}
	return c
}

func (s *MemoryStore) Add(_ context.Context, collection, id string, data Raw) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.coll(collection)
	if _, ok := c.records[id]; ok {
		return ErrDuplicate
	}
	c.records[id] = slices.Clone(data)
	c.order = append(c.order, id)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) (Raw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	b, ok := c.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(b), nil
}

func (s *MemoryStore) GetAll(_ context.Context, collection string) ([]Raw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.collections[collection]
	if !ok {
		return []Raw{}, nil
	}
	out := make([]Raw, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, slices.Clone(c.records[id]))
	}
	return out, nil
}

func (s *MemoryStore) GetAllByIndex(_ context.Context, collection, field, value string) ([]Raw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.collections[collection]
	if !ok {
		return []Raw{}, nil
	}
	out := make([]Raw, 0)
	for _, id := range c.order {
		if b := c.records[id]; fieldEquals(b, field, value) {
			out = append(out, slices.Clone(b))
		}
	}
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, collection, id string, data Raw) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[collection]
	if !ok {
		return ErrNotFound
	}
	if _, ok := c.records[id]; !ok {
		return ErrNotFound
	}
	c.records[id] = slices.Clone(data)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[collection]
	if !ok {
		return nil
	}
	if _, ok := c.records[id]; !ok {
		return nil
	}
	delete(c.records, id)
	c.order = slices.DeleteFunc(c.order, func(v string) bool { return v == id })
	return nil
}

// Transaction: fn jalan di atas salinan state; commit = tukar state.
// Selama fn berjalan store dikunci, jadi fn hanya boleh memakai tx.
func (s *MemoryStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]*memCollection, len(s.collections))
	for k, v := range s.collections {
		snapshot[k] = v.clone()
	}
	tx := &MemoryStore{collections: snapshot}
	if err := fn(tx); err != nil {
		return err
	}
	s.collections = tx.collections
	return nil
}
