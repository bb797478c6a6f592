package mindmap

// Direction identifies one of the four directional navigation moves.
type Direction int

const (
	// Up moves to the previous sibling.
	Up Direction = iota
	// Down moves to the next sibling.
	Down
	// Left moves to the parent.
	Left
	// Right moves to the first child.
	Right
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Navigate moves the selection cursor one step in the given direction and
// reports whether it moved. Navigating past an edge (left/up/down from the
// root, right from a leaf, up from a first sibling, down from a last
// sibling) leaves the cursor unchanged - it never wraps and never errors.
func (m *Map) Navigate(dir Direction) bool {
	current, ok := m.Nodes[m.SelectedID]
	if !ok {
		return false
	}

	var next string
	switch dir {
	case Right:
		if len(current.Children) > 0 {
			next = current.Children[0]
		}
	case Left:
		next = current.Parent
	case Up:
		next = m.sibling(current, -1)
	case Down:
		next = m.sibling(current, +1)
	}

	if next == "" {
		return false
	}
	if _, ok := m.Nodes[next]; !ok {
		return false
	}
	m.SelectedID = next
	return true
}

// sibling returns the id of the sibling delta positions away from n in its
// parent's children, or "" if n has no parent or the position is out of
// range.
func (m *Map) sibling(n *Node, delta int) string {
	parent, ok := m.Nodes[n.Parent]
	if !ok {
		return ""
	}
	for i, c := range parent.Children {
		if c == n.ID {
			j := i + delta
			if j >= 0 && j < len(parent.Children) {
				return parent.Children[j]
			}
			return ""
		}
	}
	return ""
}
