// Package freemind implements the FreeMind .mm XML codec.
//
// FreeMind documents are a single nested <node> tree inside a <map>
// element, with content, ids, timestamps and builtin icons carried as
// attributes. Node ids from the file are preserved on decode.
package freemind

import (
	"encoding/xml"
	"fmt"

	"github.com/canopymap/canopy/pkg/format"
	"github.com/canopymap/canopy/pkg/mindmap"
)

// header mirrors the comment FreeMind itself writes at the top of .mm files.
const header = "<!-- To view this file, download free mind mapping software FreeMind from http://freemind.sourceforge.net -->\n"

type xmlMap struct {
	XMLName xml.Name `xml:"map"`
	Version string   `xml:"version,attr"`
	Root    xmlNode  `xml:"node"`
}

type xmlNode struct {
	ID       string    `xml:"ID,attr"`
	Text     string    `xml:"TEXT,attr"`
	Created  int64     `xml:"CREATED,attr"`
	Modified int64     `xml:"MODIFIED,attr"`
	Position string    `xml:"POSITION,attr,omitempty"`
	Icons    []xmlIcon `xml:"icon"`
	Children []xmlNode `xml:"node"`
}

type xmlIcon struct {
	Builtin string `xml:"BUILTIN,attr"`
}

// Codec is the FreeMind codec.
type Codec struct{}

// New returns the FreeMind codec.
func New() *Codec { return &Codec{} }

func (*Codec) Name() string         { return "freemind" }
func (*Codec) Extensions() []string { return []string{".mm"} }

// Encode writes the map as FreeMind XML. Depth-1 nodes get
// POSITION="right", matching how FreeMind lays out maps exported by other
// tools.
func (*Codec) Encode(m *mindmap.Map) ([]byte, error) {
	root, ok := m.Node(m.RootID)
	if !ok {
		return nil, fmt.Errorf("%w: root %q missing", format.ErrEncode, m.RootID)
	}

	doc := xmlMap{Version: "1.0.1", Root: toXMLNode(root, m, true)}
	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrEncode, err)
	}
	return append([]byte(header), body...), nil
}

func toXMLNode(n *mindmap.Node, m *mindmap.Map, isRoot bool) xmlNode {
	out := xmlNode{
		ID:       n.ID,
		Text:     n.Content,
		Created:  n.Created,
		Modified: n.Modified,
	}
	if !isRoot && n.Parent == m.RootID {
		out.Position = "right"
	}
	for _, icon := range n.Icons {
		out.Icons = append(out.Icons, xmlIcon{Builtin: icon})
	}
	for _, id := range n.Children {
		if child, ok := m.Node(id); ok {
			out.Children = append(out.Children, toXMLNode(child, m, false))
		}
	}
	return out
}

// Decode parses FreeMind XML. File ids are kept when present; nodes
// without an ID attribute get a fresh one.
func (*Codec) Decode(data []byte) (*mindmap.Map, error) {
	var doc xmlMap
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrDecode, err)
	}

	nodes := make(map[string]*mindmap.Node)
	rootID := flatten(&doc.Root, "", nodes)
	return format.NewDecoded(nodes, rootID)
}

// flatten converts the nested XML node into arena entries and returns the
// node's id.
func flatten(xn *xmlNode, parentID string, nodes map[string]*mindmap.Node) string {
	id := xn.ID
	if id == "" {
		id = mindmap.NewID()
	}

	n := &mindmap.Node{
		ID:       id,
		Content:  xn.Text,
		Parent:   parentID,
		Created:  xn.Created,
		Modified: xn.Modified,
	}
	if n.Modified < n.Created {
		n.Modified = n.Created
	}
	for _, icon := range xn.Icons {
		n.Icons = append(n.Icons, icon.Builtin)
	}
	nodes[id] = n

	for i := range xn.Children {
		childID := flatten(&xn.Children[i], id, nodes)
		n.Children = append(n.Children, childID)
	}
	return id
}

var _ format.Codec = (*Codec)(nil)
