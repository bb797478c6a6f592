package formats

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/canopymap/canopy/pkg/format"
	"github.com/canopymap/canopy/pkg/mindmap"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "map.json", want: "native"},
		{path: "map.canopy", want: "native"},
		{path: "map.mm", want: "freemind"},
		{path: "map.opml", want: "opml"},
		{path: "map.smmx", want: "smmx"},
		{path: "map.xmind", want: "xmind"},
		{path: "map.mindnode", want: "mindnode"},
		{path: "map.mmap", want: "mmap"},
	}
	for _, tt := range tests {
		c, err := Detect(tt.path)
		if err != nil {
			t.Errorf("Detect(%q): %v", tt.path, err)
			continue
		}
		if c.Name() != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.path, c.Name(), tt.want)
		}
	}

	if _, err := Detect("map.txt"); !errors.Is(err, format.ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, name := range format.Names(All) {
		if seen[name] {
			t.Errorf("duplicate codec name %q", name)
		}
		seen[name] = true
	}
}

func TestReadWriteFile(t *testing.T) {
	m := mindmap.NewWithContent("Disk")
	if _, err := m.AddChild(m.RootID, "Child"); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "map.mm")
	if err := WriteFile(m, path, ""); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path, "")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got.Len() != 2 || got.Root().Content != "Disk" {
		t.Errorf("round-trip = %d nodes, root %q", got.Len(), got.Root().Content)
	}

	// An explicit format name overrides the extension.
	if _, err := ReadFile(path, "freemind"); err != nil {
		t.Errorf("explicit name: %v", err)
	}
	if _, err := ReadFile(path, "nope"); !errors.Is(err, format.ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.mm"), ""); err == nil {
		t.Error("expected error for missing file")
	}
}
