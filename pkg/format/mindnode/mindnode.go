// Package mindnode implements the MindNode codec.
//
// MindNode documents are zip archives with the topic tree in contents.xml
// (mindMap/document/nodes). MindNode ids are UUIDs and are preserved on
// decode. Icons are not representable in this format.
package mindnode

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/canopymap/canopy/pkg/format"
	"github.com/canopymap/canopy/pkg/format/internal/zipfile"
	"github.com/canopymap/canopy/pkg/mindmap"
)

const xmlHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

type mnMap struct {
	XMLName  xml.Name   `xml:"mindMap"`
	Document mnDocument `xml:"document"`
}

type mnDocument struct {
	Nodes mnNodes `xml:"nodes"`
}

type mnNodes struct {
	Node []mnNode `xml:"node"`
}

type mnNode struct {
	ID       string   `xml:"id,attr"`
	Title    mnTitle  `xml:"title"`
	Children *mnNodes `xml:"nodes"`
}

type mnTitle struct {
	Text string `xml:"text"`
}

// Codec is the MindNode codec.
type Codec struct{}

// New returns the MindNode codec.
func New() *Codec { return &Codec{} }

func (*Codec) Name() string         { return "mindnode" }
func (*Codec) Extensions() []string { return []string{".mindnode"} }

// Encode writes the map as a MindNode archive.
func (*Codec) Encode(m *mindmap.Map) ([]byte, error) {
	root, ok := m.Node(m.RootID)
	if !ok {
		return nil, fmt.Errorf("%w: root %q missing", format.ErrEncode, m.RootID)
	}

	doc := mnMap{Document: mnDocument{Nodes: mnNodes{Node: []mnNode{toMNNode(root, m)}}}}
	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrEncode, err)
	}

	data, err := zipfile.Build(zipfile.Entry{
		Name: "contents.xml",
		Data: append([]byte(xmlHeader), body...),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrEncode, err)
	}
	return data, nil
}

func toMNNode(n *mindmap.Node, m *mindmap.Map) mnNode {
	out := mnNode{ID: n.ID, Title: mnTitle{Text: n.Content}}
	var kids []mnNode
	for _, id := range n.Children {
		if child, ok := m.Node(id); ok {
			kids = append(kids, toMNNode(child, m))
		}
	}
	if len(kids) > 0 {
		out.Children = &mnNodes{Node: kids}
	}
	return out
}

// Decode reads contents.xml from the archive. MindNode files may carry
// several top-level nodes; the first is taken as the root, matching how
// the desktop app treats the main map.
func (*Codec) Decode(data []byte) (*mindmap.Map, error) {
	content, err := zipfile.Read(data, "contents.xml")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrDecode, err)
	}

	var doc mnMap
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrDecode, err)
	}
	if len(doc.Document.Nodes.Node) == 0 {
		return nil, fmt.Errorf("%w: document has no nodes", format.ErrDecode)
	}

	nodes := make(map[string]*mindmap.Node)
	rootID := flatten(&doc.Document.Nodes.Node[0], "", nodes, time.Now().UnixMilli())
	return format.NewDecoded(nodes, rootID)
}

func flatten(mn *mnNode, parentID string, nodes map[string]*mindmap.Node, now int64) string {
	id := mn.ID
	if id == "" {
		id = mindmap.NewID()
	}

	n := &mindmap.Node{
		ID:       id,
		Content:  mn.Title.Text,
		Parent:   parentID,
		Created:  now,
		Modified: now,
	}
	nodes[id] = n

	if mn.Children != nil {
		for i := range mn.Children.Node {
			n.Children = append(n.Children, flatten(&mn.Children.Node[i], id, nodes, now))
		}
	}
	return id
}

var _ format.Codec = (*Codec)(nil)
