package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/canopymap/canopy/pkg/mindmap"
)

// MemStore is an in-memory map store for development and testing.
// Maps are stored serialized so callers never share node pointers with
// the store.
type MemStore struct {
	mu   sync.RWMutex
	maps map[string][]byte
}

// NewMemStore creates an in-memory map store.
func NewMemStore() *MemStore {
	return &MemStore{maps: make(map[string][]byte)}
}

func (s *MemStore) Save(ctx context.Context, name string, m *mindmap.Map) error {
	if err := checkName(name); err != nil {
		return err
	}
	data, err := encode(m)
	if err != nil {
		return fmt.Errorf("marshal map: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.maps[name] = data
	return nil
}

func (s *MemStore) Load(ctx context.Context, name string) (*mindmap.Map, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	s.mu.RLock()
	data, ok := s.maps[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	m, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse map %q: %w", name, err)
	}
	return m, nil
}

func (s *MemStore) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.maps[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(s.maps, name)
	return nil
}

func (s *MemStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.maps))
	for name := range s.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemStore) Close() error { return nil }

var _ Store = (*MemStore)(nil)
