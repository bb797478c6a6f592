// Package mindmap implements the in-memory mind-map tree model.
//
// A [Map] is an arena of [Node] records keyed by id. Parent/child
// relationships are expressed purely through id lookups, never through
// direct pointers, so the structure stays acyclic by construction and is
// trivially serializable. Exactly one node (the root) has no parent.
//
// The package covers three concerns:
//
//   - Structural editing: AddChild, AddSibling, SetContent, Remove (with
//     cascading deletion of the whole subtree), icon edits and selection.
//   - Layout: [Map.ComputeLayout] assigns X/Y coordinates to every node
//     from content size alone, top-down and left-to-right.
//   - Navigation: [Map.Navigate] moves the selection cursor along the
//     tree's parent/child/sibling links.
//
// A Map is owned by a single logical session and is not safe for concurrent
// use without external synchronization.
package mindmap
