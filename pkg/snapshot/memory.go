package snapshot

import (
	"context"
	"sort"
	"sync"

	"github.com/mlietz/pagezone/pkg/zone"
)

// MemStore is an in-memory snapshot store for development and testing.
type MemStore struct {
	mu    sync.RWMutex
	snaps map[string]*Snapshot
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{snaps: make(map[string]*Snapshot)}
}

func (s *MemStore) Save(ctx context.Context, snap *Snapshot) (err error) {
	defer func() { observeSave(ctx, "memory", snap, err) }()
	if err = ValidateName(snap.Name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *snap
	cp.Zones = append([]zone.Data(nil), snap.Zones...)
	s.snaps[snap.Name] = &cp
	return nil
}

func (s *MemStore) Load(ctx context.Context, name string) (snap *Snapshot, err error) {
	defer func() { observeLoad(ctx, "memory", name, err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.snaps[name]
	if !ok {
		return nil, notFound(name)
	}
	cp := *stored
	cp.Zones = append([]zone.Data(nil), stored.Zones...)
	return &cp, nil
}

func (s *MemStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.snaps))
	for name := range s.snaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snaps, name)
	return nil
}

func (s *MemStore) Close() error { return nil }

var _ Store = (*MemStore)(nil)
