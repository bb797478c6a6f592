// Package opml implements the OPML 2.0 outline codec.
//
// OPML carries text only: no ids, timestamps or icons. Decode synthesizes
// fresh ids for every node, so two decodes of the same bytes differ in ids
// while agreeing in structure. A document with several top-level outlines
// decodes under a synthesized root taking its content from the head title.
package opml

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/canopymap/canopy/pkg/format"
	"github.com/canopymap/canopy/pkg/mindmap"
)

const xmlHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

type opmlDoc struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    opmlHead `xml:"head"`
	Body    opmlBody `xml:"body"`
}

type opmlHead struct {
	Title        string `xml:"title"`
	DateCreated  string `xml:"dateCreated,omitempty"`
	DateModified string `xml:"dateModified,omitempty"`
}

type opmlBody struct {
	Outlines []outline `xml:"outline"`
}

type outline struct {
	Text     string    `xml:"text,attr"`
	Children []outline `xml:"outline"`
}

// Codec is the OPML codec.
type Codec struct{}

// New returns the OPML codec.
func New() *Codec { return &Codec{} }

func (*Codec) Name() string         { return "opml" }
func (*Codec) Extensions() []string { return []string{".opml"} }

// Encode writes the map as an OPML 2.0 outline. The head title mirrors the
// root content and the root's timestamps fill the head dates.
func (*Codec) Encode(m *mindmap.Map) ([]byte, error) {
	root, ok := m.Node(m.RootID)
	if !ok {
		return nil, fmt.Errorf("%w: root %q missing", format.ErrEncode, m.RootID)
	}

	doc := opmlDoc{
		Version: "2.0",
		Head: opmlHead{
			Title:        root.Content,
			DateCreated:  time.UnixMilli(root.Created).UTC().Format(time.RFC1123Z),
			DateModified: time.UnixMilli(root.Modified).UTC().Format(time.RFC1123Z),
		},
		Body: opmlBody{Outlines: []outline{toOutline(root, m)}},
	}

	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrEncode, err)
	}
	return append([]byte(xmlHeader), body...), nil
}

func toOutline(n *mindmap.Node, m *mindmap.Map) outline {
	out := outline{Text: n.Content}
	for _, id := range n.Children {
		if child, ok := m.Node(id); ok {
			out.Children = append(out.Children, toOutline(child, m))
		}
	}
	return out
}

// Decode parses an OPML document into a fresh map.
func (*Codec) Decode(data []byte) (*mindmap.Map, error) {
	var doc opmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrDecode, err)
	}
	if len(doc.Body.Outlines) == 0 {
		return nil, fmt.Errorf("%w: document has no outlines", format.ErrDecode)
	}

	nodes := make(map[string]*mindmap.Node)
	now := time.Now().UnixMilli()

	var rootID string
	if len(doc.Body.Outlines) == 1 {
		rootID = fromOutline(&doc.Body.Outlines[0], "", nodes, now)
	} else {
		// Several top-level outlines: synthesize a root from the title.
		rootID = mindmap.NewID()
		root := &mindmap.Node{
			ID:       rootID,
			Content:  doc.Head.Title,
			Created:  now,
			Modified: now,
		}
		nodes[rootID] = root
		for i := range doc.Body.Outlines {
			root.Children = append(root.Children, fromOutline(&doc.Body.Outlines[i], rootID, nodes, now))
		}
	}
	return format.NewDecoded(nodes, rootID)
}

func fromOutline(o *outline, parentID string, nodes map[string]*mindmap.Node, now int64) string {
	id := mindmap.NewID()
	n := &mindmap.Node{
		ID:       id,
		Content:  o.Text,
		Parent:   parentID,
		Created:  now,
		Modified: now,
	}
	nodes[id] = n
	for i := range o.Children {
		n.Children = append(n.Children, fromOutline(&o.Children[i], id, nodes, now))
	}
	return id
}

var _ format.Codec = (*Codec)(nil)
