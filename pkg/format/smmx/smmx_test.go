package smmx

import (
	"errors"
	"testing"

	"github.com/canopymap/canopy/pkg/format"
	"github.com/canopymap/canopy/pkg/mindmap"
)

func TestRoundTripStructure(t *testing.T) {
	m := mindmap.NewWithContent("Project")
	a, err := m.AddChild(m.RootID, "Alpha")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddChild(a, "Detail"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddChild(m.RootID, "Beta"); err != nil {
		t.Fatal(err)
	}

	codec := New()
	data, err := codec.Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.Len() != m.Len() {
		t.Fatalf("node count = %d, want %d", got.Len(), m.Len())
	}
	root := got.Root()
	if root.Content != "Project" {
		t.Errorf("root = %q, want Project", root.Content)
	}
	// SimpleMind ids are file-scoped integers, so decode renumbers.
	if root.ID == m.RootID {
		t.Error("decode should synthesize fresh ids")
	}
	if len(root.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(root.Children))
	}
	alpha, _ := got.Node(root.Children[0])
	if alpha.Content != "Alpha" || len(alpha.Children) != 1 {
		t.Errorf("first child = %q with %d children, want Alpha with 1",
			alpha.Content, len(alpha.Children))
	}
}

func TestDecodeErrors(t *testing.T) {
	codec := New()
	for name, doc := range map[string]string{
		"Garbage":  "<simplemind",
		"NoTopics": `<simplemind-mindmaps><mindmap><topics/></mindmap></simplemind-mindmaps>`,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := codec.Decode([]byte(doc)); !errors.Is(err, format.ErrDecode) {
				t.Errorf("err = %v, want ErrDecode", err)
			}
		})
	}
}
