package mindmap

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRoot is returned by [Map.Validate] when RootID does not
	// resolve to a node, or the map has no nodes at all.
	ErrMissingRoot = errors.New("root node missing")

	// ErrDanglingReference is returned by [Map.Validate] when a child,
	// parent or selection reference points at an id that is not in the map.
	ErrDanglingReference = errors.New("dangling node reference")

	// ErrLinkMismatch is returned by [Map.Validate] when parent/child links
	// disagree: a child's Parent does not name the node listing it, or a
	// children list contains duplicates.
	ErrLinkMismatch = errors.New("parent/child link mismatch")

	// ErrNotATree is returned by [Map.Validate] when the structure is not a
	// single connected tree: multiple parentless nodes, a cycle, or nodes
	// unreachable from the root.
	ErrNotATree = errors.New("structure is not a tree")
)

// Validate checks the map's structural invariants and returns nil if they
// all hold:
//
//  1. RootID and SelectedID resolve, and every parent/child reference does.
//  2. Children lists are duplicate-free and bidirectionally consistent
//     with Parent links.
//  3. The links form one connected acyclic tree rooted at RootID.
//  4. Only the root has an empty Parent.
//
// Decoders run Validate on every tree they build from external input;
// editing operations preserve these invariants by construction.
func (m *Map) Validate() error {
	root, ok := m.Nodes[m.RootID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingRoot, m.RootID)
	}
	if !root.IsRoot() {
		return fmt.Errorf("%w: root %q has parent %q", ErrLinkMismatch, root.ID, root.Parent)
	}
	if _, ok := m.Nodes[m.SelectedID]; !ok {
		return fmt.Errorf("%w: selected id %q", ErrDanglingReference, m.SelectedID)
	}

	for id, n := range m.Nodes {
		if n.ID != id {
			return fmt.Errorf("%w: node keyed %q carries id %q", ErrLinkMismatch, id, n.ID)
		}
		if id != m.RootID {
			if n.Parent == "" {
				return fmt.Errorf("%w: %s", ErrOrphanedNode, id)
			}
			parent, ok := m.Nodes[n.Parent]
			if !ok {
				return fmt.Errorf("%w: node %s has parent %q", ErrDanglingReference, id, n.Parent)
			}
			if !containsOnce(parent.Children, id) {
				return fmt.Errorf("%w: node %s not listed exactly once by parent %s", ErrLinkMismatch, id, parent.ID)
			}
		}
		seen := make(map[string]bool, len(n.Children))
		for _, c := range n.Children {
			if seen[c] {
				return fmt.Errorf("%w: node %s lists child %s twice", ErrLinkMismatch, id, c)
			}
			seen[c] = true
			child, ok := m.Nodes[c]
			if !ok {
				return fmt.Errorf("%w: node %s lists child %q", ErrDanglingReference, id, c)
			}
			if child.Parent != id {
				return fmt.Errorf("%w: child %s of %s claims parent %q", ErrLinkMismatch, c, id, child.Parent)
			}
		}
	}

	// Bidirectional consistency plus a single parentless node means the
	// only remaining failure mode is disconnection (which implies a cycle
	// among the unreachable nodes).
	reached := len(m.Descendants(m.RootID))
	if reached != len(m.Nodes) {
		return fmt.Errorf("%w: %d of %d nodes reachable from root", ErrNotATree, reached, len(m.Nodes))
	}
	return nil
}

func containsOnce(list []string, id string) bool {
	count := 0
	for _, v := range list {
		if v == id {
			count++
		}
	}
	return count == 1
}
