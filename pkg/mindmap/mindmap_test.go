package mindmap

import (
	"errors"
	"math/rand"
	"testing"
)

// buildSample creates the tree used across tests:
//
//	root ── a ── c
//	     └─ b
func buildSample(t *testing.T) (m *Map, a, b, c string) {
	t.Helper()
	m = New()
	var err error
	if a, err = m.AddChild(m.RootID, "A"); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if b, err = m.AddChild(m.RootID, "B"); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if c, err = m.AddChild(a, "C"); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	return m, a, b, c
}

func TestNew(t *testing.T) {
	m := New()

	if m.Len() != 1 {
		t.Fatalf("len = %d, want 1", m.Len())
	}
	root := m.Root()
	if root == nil {
		t.Fatal("root missing")
	}
	if root.Content != DefaultRootContent {
		t.Errorf("content = %q, want %q", root.Content, DefaultRootContent)
	}
	if !root.IsRoot() {
		t.Error("root has a parent")
	}
	if m.SelectedID != m.RootID {
		t.Errorf("selected = %q, want root %q", m.SelectedID, m.RootID)
	}
	if root.Modified < root.Created {
		t.Errorf("modified %d < created %d", root.Modified, root.Created)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestAddChild(t *testing.T) {
	m := New()

	id, err := m.AddChild(m.RootID, "first")
	if err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	n, ok := m.Node(id)
	if !ok {
		t.Fatal("new node missing")
	}
	if n.Parent != m.RootID {
		t.Errorf("parent = %q, want root", n.Parent)
	}
	if got := m.Root().Children; len(got) != 1 || got[0] != id {
		t.Errorf("root children = %v, want [%s]", got, id)
	}

	if _, err := m.AddChild("no-such-id", "x"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("err = %v, want ErrNodeNotFound", err)
	}
}

func TestAddSibling(t *testing.T) {
	t.Run("InsertsAfterAnchor", func(t *testing.T) {
		m, a, b, _ := buildSample(t)

		s, err := m.AddSibling(a, "S")
		if err != nil {
			t.Fatalf("AddSibling: %v", err)
		}
		want := []string{a, s, b}
		got := m.Root().Children
		if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
			t.Errorf("children = %v, want %v", got, want)
		}
		n, _ := m.Node(s)
		if n.Parent != m.RootID {
			t.Errorf("parent = %q, want root", n.Parent)
		}
	})

	t.Run("LastSiblingAppends", func(t *testing.T) {
		m, a, b, _ := buildSample(t)

		s, err := m.AddSibling(b, "S")
		if err != nil {
			t.Fatalf("AddSibling: %v", err)
		}
		got := m.Root().Children
		if len(got) != 3 || got[0] != a || got[1] != b || got[2] != s {
			t.Errorf("children = %v, want [%s %s %s]", got, a, b, s)
		}
	})

	t.Run("RootForbidden", func(t *testing.T) {
		m := New()
		if _, err := m.AddSibling(m.RootID, "x"); !errors.Is(err, ErrRootNode) {
			t.Errorf("err = %v, want ErrRootNode", err)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		m := New()
		if _, err := m.AddSibling("ghost", "x"); !errors.Is(err, ErrNodeNotFound) {
			t.Errorf("err = %v, want ErrNodeNotFound", err)
		}
	})
}

func TestSetContent(t *testing.T) {
	m, a, _, _ := buildSample(t)

	if err := m.SetContent(a, "renamed"); err != nil {
		t.Fatalf("SetContent: %v", err)
	}
	n, _ := m.Node(a)
	if n.Content != "renamed" {
		t.Errorf("content = %q", n.Content)
	}
	if n.Modified < n.Created {
		t.Errorf("modified %d < created %d", n.Modified, n.Created)
	}
	if err := m.SetContent("ghost", "x"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("err = %v, want ErrNodeNotFound", err)
	}
}

func TestRemove(t *testing.T) {
	t.Run("CascadesThroughSubtree", func(t *testing.T) {
		m, a, b, c := buildSample(t)

		if err := m.Remove(a); err != nil {
			t.Fatalf("Remove: %v", err)
		}
		if m.Len() != 2 {
			t.Errorf("len = %d, want 2 (root and B)", m.Len())
		}
		for _, id := range []string{a, c} {
			if _, ok := m.Node(id); ok {
				t.Errorf("node %s survived removal", id)
			}
		}
		if got := m.Root().Children; len(got) != 1 || got[0] != b {
			t.Errorf("root children = %v, want [%s]", got, b)
		}
		if err := m.Validate(); err != nil {
			t.Errorf("Validate after remove: %v", err)
		}
	})

	t.Run("RepairsCursor", func(t *testing.T) {
		m, a, _, c := buildSample(t)

		// Select deep inside the subtree that is about to go away.
		if err := m.Select(c); err != nil {
			t.Fatalf("Select: %v", err)
		}
		if err := m.Remove(a); err != nil {
			t.Fatalf("Remove: %v", err)
		}
		if m.SelectedID != m.RootID {
			t.Errorf("selected = %q, want former parent (root) %q", m.SelectedID, m.RootID)
		}
	})

	t.Run("CursorOutsideSubtreeUntouched", func(t *testing.T) {
		m, a, b, _ := buildSample(t)

		if err := m.Select(b); err != nil {
			t.Fatalf("Select: %v", err)
		}
		if err := m.Remove(a); err != nil {
			t.Fatalf("Remove: %v", err)
		}
		if m.SelectedID != b {
			t.Errorf("selected = %q, want %q", m.SelectedID, b)
		}
	})

	t.Run("RootForbidden", func(t *testing.T) {
		m := New()
		if err := m.Remove(m.RootID); !errors.Is(err, ErrRootNode) {
			t.Errorf("err = %v, want ErrRootNode", err)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		m := New()
		if err := m.Remove("ghost"); !errors.Is(err, ErrNodeNotFound) {
			t.Errorf("err = %v, want ErrNodeNotFound", err)
		}
	})
}

func TestIcons(t *testing.T) {
	m, a, _, _ := buildSample(t)

	if err := m.AddIcon(a, "idea"); err != nil {
		t.Fatalf("AddIcon: %v", err)
	}
	if err := m.AddIcon(a, "flag"); err != nil {
		t.Fatalf("AddIcon: %v", err)
	}
	n, _ := m.Node(a)
	if len(n.Icons) != 2 || n.Icons[0] != "idea" || n.Icons[1] != "flag" {
		t.Errorf("icons = %v, want [idea flag]", n.Icons)
	}

	if err := m.RemoveLastIcon(a); err != nil {
		t.Fatalf("RemoveLastIcon: %v", err)
	}
	if len(n.Icons) != 1 || n.Icons[0] != "idea" {
		t.Errorf("icons = %v, want [idea]", n.Icons)
	}

	// Popping an empty icon list is a no-op, not an error.
	if err := m.RemoveLastIcon(a); err != nil {
		t.Fatalf("RemoveLastIcon: %v", err)
	}
	if err := m.RemoveLastIcon(a); err != nil {
		t.Fatalf("RemoveLastIcon on empty: %v", err)
	}
	if len(n.Icons) != 0 {
		t.Errorf("icons = %v, want empty", n.Icons)
	}

	if err := m.AddIcon("ghost", "x"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("err = %v, want ErrNodeNotFound", err)
	}
}

func TestSelect(t *testing.T) {
	m, a, _, _ := buildSample(t)

	if err := m.Select(a); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if m.SelectedID != a {
		t.Errorf("selected = %q, want %q", m.SelectedID, a)
	}
	if err := m.Select("ghost"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("err = %v, want ErrNodeNotFound", err)
	}
}

func TestDescendants(t *testing.T) {
	m, a, _, c := buildSample(t)

	got := m.Descendants(a)
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("descendants = %v, want [%s %s]", got, a, c)
	}
	if all := m.Descendants(m.RootID); len(all) != m.Len() {
		t.Errorf("descendants of root = %d, want %d", len(all), m.Len())
	}
	if m.Descendants("ghost") != nil {
		t.Error("descendants of unknown id should be nil")
	}
}

// TestInvariantsUnderRandomOps drives a long random sequence of valid
// operations and checks the structural invariants after every step.
func TestInvariantsUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := New()
	ids := []string{m.RootID}

	refresh := func() {
		ids = ids[:0]
		for id := range m.Nodes {
			ids = append(ids, id)
		}
	}

	for step := 0; step < 500; step++ {
		id := ids[rng.Intn(len(ids))]
		switch rng.Intn(6) {
		case 0, 1:
			if _, err := m.AddChild(id, "n"); err != nil {
				t.Fatalf("step %d AddChild: %v", step, err)
			}
		case 2:
			if _, err := m.AddSibling(id, "s"); err != nil && !errors.Is(err, ErrRootNode) {
				t.Fatalf("step %d AddSibling: %v", step, err)
			}
		case 3:
			if err := m.Remove(id); err != nil && !errors.Is(err, ErrRootNode) {
				t.Fatalf("step %d Remove: %v", step, err)
			}
		case 4:
			if err := m.SetContent(id, "edited"); err != nil {
				t.Fatalf("step %d SetContent: %v", step, err)
			}
		case 5:
			if err := m.Select(id); err != nil {
				t.Fatalf("step %d Select: %v", step, err)
			}
		}
		refresh()

		if err := m.Validate(); err != nil {
			t.Fatalf("step %d: invariants violated: %v", step, err)
		}
		if _, ok := m.Nodes[m.SelectedID]; !ok {
			t.Fatalf("step %d: dangling cursor %q", step, m.SelectedID)
		}
	}
}
