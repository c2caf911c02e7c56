// Package uistate manages process-wide UI state for the zone layout engine.
//
// The only state today is the edit-mode flag: interactive resize affordances
// are functionally active only while edit mode is enabled. The flag is set
// once per toggle and read on every hover/interaction check, so reads are
// cheap and lock-free contention is irrelevant in the single-threaded UI
// model; the mutex exists so background frontends (the HTTP API) stay safe.
//
// Two backends are provided:
//   - MemStore: process-local state, the default
//   - FileStore: JSON-persisted state so edit mode survives CLI invocations
//
// A package-level default store backs the Get/Set convenience functions used
// by interactive frontends.
package uistate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// State is the process-wide UI state snapshot.
type State struct {
	EditMode bool `json:"edit_mode"`
}

// Partial is a partial state update. Nil fields are left unchanged.
type Partial struct {
	EditMode *bool `json:"edit_mode,omitempty"`
}

// Store is the interface for UI-state backends.
type Store interface {
	// State returns the current state snapshot.
	State() State

	// Update applies a partial update and returns the resulting state.
	Update(p Partial) State
}

// =============================================================================
// Memory Store
// =============================================================================

// MemStore is an in-memory UI-state store.
type MemStore struct {
	mu    sync.RWMutex
	state State
}

// NewMemStore creates an in-memory store with zero-valued state.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// State returns the current state snapshot.
func (s *MemStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Update applies a partial update and returns the resulting state.
func (s *MemStore) Update(p Partial) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.EditMode != nil {
		s.state.EditMode = *p.EditMode
	}
	return s.state
}

var _ Store = (*MemStore)(nil)

// =============================================================================
// File Store
// =============================================================================

// FileStore persists UI state as a JSON file so preferences such as edit
// mode survive across CLI invocations.
type FileStore struct {
	mu   sync.Mutex
	path string
	mem  MemStore
}

// NewFileStore creates a file-backed store.
// If baseDir is empty, defaults to ~/.config/pagezone/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "pagezone")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	s := &FileStore{path: filepath.Join(baseDir, "uistate.json")}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads the persisted state. A missing file leaves zero-valued state.
func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read state file: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("parse state file: %w", err)
	}
	s.mem.Update(Partial{EditMode: &st.EditMode})
	return nil
}

// State returns the current state snapshot.
func (s *FileStore) State() State {
	return s.mem.State()
}

// Update applies a partial update, persists the result, and returns it.
// Persistence failures are swallowed: UI state is a preference, not data.
func (s *FileStore) Update(p Partial) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.mem.Update(p)
	if data, err := json.MarshalIndent(st, "", "  "); err == nil {
		_ = os.WriteFile(s.path, data, 0600)
	}
	return st
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

var _ Store = (*FileStore)(nil)

// =============================================================================
// Package-level default
// =============================================================================

var (
	defaultMu    sync.RWMutex
	defaultStore Store = NewMemStore()
)

// SetDefault replaces the package-level default store.
// This should be called once at application startup.
func SetDefault(s Store) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if s != nil {
		defaultStore = s
	}
}

// Default returns the package-level default store.
func Default() Store {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultStore
}

// Get returns the current state from the default store.
func Get() State {
	return Default().State()
}

// Set applies a partial update to the default store.
func Set(p Partial) State {
	return Default().Update(p)
}

// Bool is a helper for building Partial values.
func Bool(v bool) *bool { return &v }
