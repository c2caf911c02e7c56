package uistate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemStoreUpdate(t *testing.T) {
	s := NewMemStore()

	if s.State().EditMode {
		t.Error("fresh store should have edit mode disabled")
	}

	got := s.Update(Partial{EditMode: Bool(true)})
	if !got.EditMode {
		t.Error("Update should enable edit mode")
	}
	if !s.State().EditMode {
		t.Error("State should reflect the update")
	}

	// Empty partial changes nothing.
	got = s.Update(Partial{})
	if !got.EditMode {
		t.Error("empty partial should leave edit mode enabled")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	s.Update(Partial{EditMode: Bool(true)})

	// A second store over the same directory sees the persisted flag.
	s2, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore (reopen): %v", err)
	}
	if !s2.State().EditMode {
		t.Error("persisted edit mode should survive reopen")
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "uistate.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileStore(dir); err == nil {
		t.Error("corrupt state file should be reported")
	}
}

func TestDefaultStore(t *testing.T) {
	orig := Default()
	t.Cleanup(func() { SetDefault(orig) })

	SetDefault(NewMemStore())
	if Get().EditMode {
		t.Error("fresh default store should have edit mode disabled")
	}

	Set(Partial{EditMode: Bool(true)})
	if !Get().EditMode {
		t.Error("Set should update the default store")
	}

	// Nil is ignored.
	SetDefault(nil)
	if !Get().EditMode {
		t.Error("SetDefault(nil) should be ignored")
	}
}
