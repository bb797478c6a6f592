package mindmap

import "github.com/mattn/go-runewidth"

// Layout constants, in abstract layout units. The width formula is a
// content-proportional heuristic, not a rendering contract.
const (
	// NodeHeight is the vertical extent a childless node occupies.
	NodeHeight = 50.0
	// NodeGapX is the horizontal gap between a node and its children.
	NodeGapX = 50.0
	// MinNodeWidth is the floor for the estimated node width.
	MinNodeWidth = 100.0

	widthPerCell = 8.0
	widthPerIcon = 20.0
	widthPadding = 20.0
)

// NodeWidth estimates the rendered width of a node from its content size
// and icon count. Content is measured in display cells so wide runes count
// double; for ASCII this equals the character count.
func NodeWidth(n *Node) float64 {
	w := float64(runewidth.StringWidth(n.Content))*widthPerCell +
		float64(len(n.Icons))*widthPerIcon + widthPadding
	if w < MinNodeWidth {
		return MinNodeWidth
	}
	return w
}

// ComputeLayout recomputes X/Y for every node reachable from the root.
//
// The layout is top-down and left-to-right: the root sits at the origin,
// each node's children start at x + own width + gap, and siblings stack
// vertically in order, each offset by the running sum of the subtree
// heights placed before it. A parent is centered over the vertical extent
// of its children. The whole pass is a single depth-first traversal and is
// idempotent: the same tree content always yields the same positions.
//
// Positions are a cache, not state - rerun after any structural or content
// mutation. The pass is linear in node count, so there is no incremental
// variant.
func (m *Map) ComputeLayout() {
	m.layoutSubtree(m.RootID, 0, 0)
}

// layoutSubtree places the node at x and its subtree below startY, and
// returns the subtree's total vertical extent.
func (m *Map) layoutSubtree(id string, x, startY float64) float64 {
	node, ok := m.Nodes[id]
	if !ok {
		return 0
	}

	node.X = x
	if len(node.Children) == 0 {
		node.Y = startY
		return NodeHeight
	}

	childX := x + NodeWidth(node) + NodeGapX
	var total float64
	for _, c := range node.Children {
		total += m.layoutSubtree(c, childX, startY+total)
	}
	node.Y = startY + total/2
	return total
}
