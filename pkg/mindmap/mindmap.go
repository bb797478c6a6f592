package mindmap

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNodeNotFound is returned when a referenced node id is absent from
	// the map. All operations that take an id can fail with it.
	ErrNodeNotFound = errors.New("node not found")

	// ErrRootNode is returned by operations that are forbidden on the root:
	// [Map.Remove] (the root is never removable) and [Map.AddSibling]
	// (the root has no siblings by definition).
	ErrRootNode = errors.New("operation not allowed on root node")

	// ErrOrphanedNode is returned when a non-root node has no resolvable
	// parent. Unreachable for maps built through this package; it can
	// surface when a decoder assembled the tree from untrusted input.
	ErrOrphanedNode = errors.New("non-root node has no parent")
)

// DefaultRootContent is the content assigned to the root of a fresh map.
const DefaultRootContent = "Central Node"

// Node is the atomic unit of a mind map.
//
// The id is assigned at creation and immutable afterwards; it is the sole
// addressing key. Children is ordered - sibling order drives both
// navigation and left-to-right layout. X/Y are derived data, recomputed by
// [Map.ComputeLayout] and zero until the first layout pass.
type Node struct {
	ID       string   `json:"id"`
	Content  string   `json:"content"`
	Children []string `json:"children"`
	Parent   string   `json:"parent,omitempty"` // empty only for the root
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Created  int64    `json:"created"`  // Unix milliseconds
	Modified int64    `json:"modified"` // Unix milliseconds, always >= Created
	Icons    []string `json:"icons,omitempty"`
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.Parent == "" }

// Map is a full mind-map tree: the node arena plus the root and selection
// pointers.
//
// Invariants maintained by every operation:
//
//  1. Every id referenced as a child, parent, RootID or SelectedID exists
//     in Nodes.
//  2. Each node's Children lists exactly the nodes whose Parent is that
//     node, in order, with no duplicates.
//  3. The parent/child links form a single connected, acyclic tree.
//  4. Only the RootID node has an empty Parent.
//
// The zero value is not usable - use [New] or a format decoder.
// Map is not safe for concurrent use without external synchronization.
type Map struct {
	Nodes      map[string]*Node `json:"nodes"`
	RootID     string           `json:"root_id"`
	SelectedID string           `json:"selected_id"`
}

// New creates a map containing a single root node with default content,
// current timestamps and no children or icons. The root starts selected.
func New() *Map {
	return NewWithContent(DefaultRootContent)
}

// NewWithContent is [New] with explicit root content.
func NewWithContent(content string) *Map {
	id := NewID()
	now := nowMillis()
	root := &Node{
		ID:       id,
		Content:  content,
		Created:  now,
		Modified: now,
	}
	return &Map{
		Nodes:      map[string]*Node{id: root},
		RootID:     id,
		SelectedID: id,
	}
}

// NewID returns a fresh globally unique node identifier.
// Random 128-bit UUIDs make collisions negligible for any realistic tree.
func NewID() string { return uuid.NewString() }

func nowMillis() int64 { return time.Now().UnixMilli() }

// Node returns the node with the given id and true, or nil and false.
// The returned pointer refers to the live node; content mutations should
// go through [Map.SetContent] so the modified timestamp stays accurate.
func (m *Map) Node(id string) (*Node, bool) {
	n, ok := m.Nodes[id]
	return n, ok
}

// Root returns the root node. It panics only if the map violates its own
// invariants (RootID always resolves on a valid map).
func (m *Map) Root() *Node { return m.Nodes[m.RootID] }

// Selected returns the currently selected node.
func (m *Map) Selected() *Node { return m.Nodes[m.SelectedID] }

// Len returns the number of nodes in the map.
func (m *Map) Len() int { return len(m.Nodes) }

// AddChild creates a new node under parentID and appends it to the end of
// the parent's children. It returns the new node's id, or ErrNodeNotFound
// if the parent does not exist.
func (m *Map) AddChild(parentID, content string) (string, error) {
	parent, ok := m.Nodes[parentID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNodeNotFound, parentID)
	}

	id := NewID()
	now := nowMillis()
	m.Nodes[id] = &Node{
		ID:       id,
		Content:  content,
		Parent:   parentID,
		Created:  now,
		Modified: now,
	}
	parent.Children = append(parent.Children, id)
	parent.Modified = now
	return id, nil
}

// AddSibling creates a new node sharing nodeID's parent, inserted
// immediately after nodeID in the parent's children. The root has no
// siblings: ErrRootNode. If nodeID is somehow missing from its parent's
// children list the new node is appended at the end instead.
func (m *Map) AddSibling(nodeID, content string) (string, error) {
	if nodeID == m.RootID {
		return "", fmt.Errorf("%w: root has no siblings", ErrRootNode)
	}
	node, ok := m.Nodes[nodeID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNodeNotFound, nodeID)
	}
	parent, ok := m.Nodes[node.Parent]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrOrphanedNode, nodeID)
	}

	id := NewID()
	now := nowMillis()
	m.Nodes[id] = &Node{
		ID:       id,
		Content:  content,
		Parent:   parent.ID,
		Created:  now,
		Modified: now,
	}

	at := len(parent.Children)
	for i, c := range parent.Children {
		if c == nodeID {
			at = i + 1
			break
		}
	}
	parent.Children = append(parent.Children, "")
	copy(parent.Children[at+1:], parent.Children[at:])
	parent.Children[at] = id
	parent.Modified = now
	return id, nil
}

// SetContent replaces the node's text and bumps its modified timestamp.
func (m *Map) SetContent(nodeID, content string) error {
	node, ok := m.Nodes[nodeID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, nodeID)
	}
	node.Content = content
	node.Modified = nowMillis()
	return nil
}

// Remove deletes the node and its entire subtree.
//
// The node is detached from its parent's children first, then the subtree
// is swept in one pass, so no intermediate state is ever observable. If the
// selection cursor pointed inside the removed subtree it is reset to the
// removed node's former parent (or the root if that cannot be resolved).
//
// Removing the root is forbidden (ErrRootNode).
func (m *Map) Remove(nodeID string) error {
	if nodeID == m.RootID {
		return fmt.Errorf("%w: root is not removable", ErrRootNode)
	}
	node, ok := m.Nodes[nodeID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, nodeID)
	}
	parent, ok := m.Nodes[node.Parent]
	if !ok {
		return fmt.Errorf("%w: %s", ErrOrphanedNode, nodeID)
	}

	doomed := m.Descendants(nodeID)

	for i, c := range parent.Children {
		if c == nodeID {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			break
		}
	}
	parent.Modified = nowMillis()

	selectedRemoved := false
	for _, id := range doomed {
		if id == m.SelectedID {
			selectedRemoved = true
		}
		delete(m.Nodes, id)
	}
	if selectedRemoved {
		if _, ok := m.Nodes[parent.ID]; ok {
			m.SelectedID = parent.ID
		} else {
			m.SelectedID = m.RootID
		}
	}
	return nil
}

// AddIcon appends an opaque icon tag to the node. Insertion order is
// display order.
func (m *Map) AddIcon(nodeID, icon string) error {
	node, ok := m.Nodes[nodeID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, nodeID)
	}
	node.Icons = append(node.Icons, icon)
	node.Modified = nowMillis()
	return nil
}

// RemoveLastIcon pops the most recently added icon. Removing from a node
// with no icons is a no-op, not an error.
func (m *Map) RemoveLastIcon(nodeID string) error {
	node, ok := m.Nodes[nodeID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, nodeID)
	}
	if len(node.Icons) == 0 {
		return nil
	}
	node.Icons = node.Icons[:len(node.Icons)-1]
	node.Modified = nowMillis()
	return nil
}

// Select moves the selection cursor to the given node.
func (m *Map) Select(nodeID string) error {
	if _, ok := m.Nodes[nodeID]; !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, nodeID)
	}
	m.SelectedID = nodeID
	return nil
}

// Descendants returns nodeID and every node reachable below it, in
// breadth-first order. Returns nil if the node does not exist.
func (m *Map) Descendants(nodeID string) []string {
	if _, ok := m.Nodes[nodeID]; !ok {
		return nil
	}
	result := []string{nodeID}
	for i := 0; i < len(result); i++ {
		if n, ok := m.Nodes[result[i]]; ok {
			result = append(result, n.Children...)
		}
	}
	return result
}

// Walk visits every node in depth-first pre-order starting at the root,
// calling fn with the node and its depth. Children are visited in sibling
// order. Nodes unreachable from the root are not visited.
func (m *Map) Walk(fn func(n *Node, depth int)) {
	var visit func(id string, depth int)
	visit = func(id string, depth int) {
		n, ok := m.Nodes[id]
		if !ok {
			return
		}
		fn(n, depth)
		for _, c := range n.Children {
			visit(c, depth+1)
		}
	}
	visit(m.RootID, 0)
}
