package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mlietz/pagezone/pkg/surface"
)

// writeDoc writes a three-zone page document and returns its path.
func writeDoc(t *testing.T, regions ...surface.DocumentRegion) string {
	t.Helper()
	if regions == nil {
		regions = []surface.DocumentRegion{
			{ID: "pg-header", Kind: "header", HeightPx: surface.MMToPx(60)},
			{ID: "pg-content", Kind: "content", HeightPx: surface.MMToPx(180), TopPx: surface.MMToPx(60)},
			{ID: "pg-footer", Kind: "footer", HeightPx: surface.MMToPx(40), TopPx: surface.MMToPx(240)},
		}
	}
	path := filepath.Join(t.TempDir(), "page.json")
	if err := surface.WriteDocumentFile(surface.Document{Name: "test", Regions: regions}, path); err != nil {
		t.Fatalf("write document: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestRootCommandStructure(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	want := map[string]bool{
		"inspect": false, "validate": false, "edit": false,
		"snapshot": false, "render": false, "serve": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestInspectCommand(t *testing.T) {
	if err := runCommand(t, "inspect", writeDoc(t)); err != nil {
		t.Fatalf("inspect: %v", err)
	}
}

func TestInspectRejectsMissingDocument(t *testing.T) {
	if err := runCommand(t, "inspect", filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("inspect of a missing document should fail")
	}
}

func TestValidateCommand(t *testing.T) {
	if err := runCommand(t, "validate", writeDoc(t)); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateStrictFailsOnWarnings(t *testing.T) {
	// No content zone: validation warns, --strict turns it into an error.
	doc := writeDoc(t, surface.DocumentRegion{Kind: "header", HeightPx: surface.MMToPx(60)})

	if err := runCommand(t, "validate", doc); err != nil {
		t.Fatalf("advisory validate should not fail: %v", err)
	}
	if err := runCommand(t, "validate", "--strict", doc); err == nil {
		t.Fatal("strict validate should fail on warnings")
	}
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "page.svg")
	if err := runCommand(t, "render", writeDoc(t), "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("output is not svg")
	}
}

func TestSnapshotSaveRestore(t *testing.T) {
	doc := writeDoc(t)
	storeDir := t.TempDir()

	if err := runCommand(t, "snapshot", "save", doc, "--name", "draft", "--store-dir", storeDir); err != nil {
		t.Fatalf("snapshot save: %v", err)
	}
	if err := runCommand(t, "snapshot", "list", "--store-dir", storeDir); err != nil {
		t.Fatalf("snapshot list: %v", err)
	}

	out := filepath.Join(t.TempDir(), "restored.json")
	if err := runCommand(t, "snapshot", "restore", doc, "--name", "draft", "--store-dir", storeDir, "-o", out); err != nil {
		t.Fatalf("snapshot restore: %v", err)
	}

	restored, err := surface.ReadDocumentFile(out)
	if err != nil {
		t.Fatalf("read restored document: %v", err)
	}
	if len(restored.Regions) != 3 {
		t.Errorf("restored regions = %d, want 3", len(restored.Regions))
	}

	if err := runCommand(t, "snapshot", "delete", "draft", "--store-dir", storeDir); err != nil {
		t.Fatalf("snapshot delete: %v", err)
	}
	if err := runCommand(t, "snapshot", "restore", doc, "--name", "draft", "--store-dir", storeDir, "-o", out); err == nil {
		t.Fatal("restoring a deleted snapshot should fail")
	}
}

func TestEngineOptionsRejectBadProfiles(t *testing.T) {
	c := New(io.Discard, LogInfo)
	if _, err := c.engineOptions(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("missing profiles file should fail")
	}
}
