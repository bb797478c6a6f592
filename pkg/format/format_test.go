package format

import (
	"errors"
	"testing"

	"github.com/canopymap/canopy/pkg/mindmap"
)

type stubCodec struct {
	name string
	exts []string
}

func (c *stubCodec) Name() string                        { return c.name }
func (c *stubCodec) Extensions() []string                { return c.exts }
func (c *stubCodec) Encode(*mindmap.Map) ([]byte, error) { return nil, nil }
func (c *stubCodec) Decode([]byte) (*mindmap.Map, error) { return nil, nil }

var stubs = []Codec{
	&stubCodec{name: "alpha", exts: []string{".a", ".alpha"}},
	&stubCodec{name: "beta", exts: []string{".b"}},
}

func TestFind(t *testing.T) {
	c, err := Find("beta", stubs)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if c.Name() != "beta" {
		t.Errorf("name = %q, want beta", c.Name())
	}
	if _, err := Find("gamma", stubs); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "out/map.alpha", want: "alpha"},
		{path: "Map.B", want: "beta"}, // extension matching is case-insensitive
		{path: "map.c", wantErr: true},
		{path: "noext", wantErr: true},
	}
	for _, tt := range tests {
		c, err := Detect(tt.path, stubs)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("Detect(%q) err = %v, want ErrUnknownFormat", tt.path, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Detect(%q): %v", tt.path, err)
			continue
		}
		if c.Name() != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.path, c.Name(), tt.want)
		}
	}
}

func TestNewDecoded(t *testing.T) {
	id := mindmap.NewID()
	nodes := map[string]*mindmap.Node{id: {ID: id, Content: "root"}}

	m, err := NewDecoded(nodes, id)
	if err != nil {
		t.Fatalf("NewDecoded: %v", err)
	}
	if m.SelectedID != id {
		t.Errorf("selected = %q, want root", m.SelectedID)
	}

	// A broken arena must surface as ErrDecode, not as a corrupt map.
	nodes[id].Children = []string{"ghost"}
	if _, err := NewDecoded(nodes, id); !errors.Is(err, ErrDecode) {
		t.Errorf("err = %v, want ErrDecode", err)
	}
}
