// Package mmap implements the MindManager .mmap codec.
//
// MindManager documents are zip archives with the topic tree in
// Document.xml under the ap: namespace. The format carries topic text
// only, so decode synthesizes fresh ids and timestamps.
//
// Marshal and unmarshal use separate struct families: encoding/xml strips
// namespace prefixes while parsing, but emitting the ap: prefix requires
// it to be part of the element name.
package mmap

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/canopymap/canopy/pkg/format"
	"github.com/canopymap/canopy/pkg/format/internal/zipfile"
	"github.com/canopymap/canopy/pkg/mindmap"
)

const (
	xmlHeader   = "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n"
	apNamespace = "http://schemas.mindjet.com/MindManager/Application/2003"
)

// Encode-side structs: element names carry the ap: prefix literally.

type outMap struct {
	XMLName xml.Name `xml:"ap:Map"`
	XMLNS   string   `xml:"xmlns:ap,attr"`
	Root    outTopic `xml:"ap:OneTopic"`
}

type outTopic struct {
	Text      outText       `xml:"ap:Text"`
	SubTopics *outSubTopics `xml:"ap:SubTopics,omitempty"`
}

type outText struct {
	PlainText string `xml:"PlainText,attr"`
}

type outSubTopics struct {
	Topics []outTopic `xml:"ap:Topic"`
}

// Decode-side structs: matched by local name regardless of prefix.

type inMap struct {
	XMLName xml.Name `xml:"Map"`
	Root    inTopic  `xml:"OneTopic"`
}

type inTopic struct {
	Text      inText       `xml:"Text"`
	SubTopics *inSubTopics `xml:"SubTopics"`
}

type inText struct {
	PlainText string `xml:"PlainText,attr"`
}

type inSubTopics struct {
	Topics []inTopic `xml:"Topic"`
}

// Codec is the MindManager codec.
type Codec struct{}

// New returns the MindManager codec.
func New() *Codec { return &Codec{} }

func (*Codec) Name() string         { return "mmap" }
func (*Codec) Extensions() []string { return []string{".mmap"} }

// Encode writes the map as a MindManager archive.
func (*Codec) Encode(m *mindmap.Map) ([]byte, error) {
	root, ok := m.Node(m.RootID)
	if !ok {
		return nil, fmt.Errorf("%w: root %q missing", format.ErrEncode, m.RootID)
	}

	doc := outMap{XMLNS: apNamespace, Root: toTopic(root, m)}
	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrEncode, err)
	}

	data, err := zipfile.Build(zipfile.Entry{
		Name: "Document.xml",
		Data: append([]byte(xmlHeader), body...),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrEncode, err)
	}
	return data, nil
}

func toTopic(n *mindmap.Node, m *mindmap.Map) outTopic {
	out := outTopic{Text: outText{PlainText: n.Content}}
	var kids []outTopic
	for _, id := range n.Children {
		if child, ok := m.Node(id); ok {
			kids = append(kids, toTopic(child, m))
		}
	}
	if len(kids) > 0 {
		out.SubTopics = &outSubTopics{Topics: kids}
	}
	return out
}

// Decode reads Document.xml from the archive (MindManager writes it
// capitalized, but some exporters do not).
func (*Codec) Decode(data []byte) (*mindmap.Map, error) {
	content, err := zipfile.Read(data, "Document.xml", "document.xml")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrDecode, err)
	}

	var doc inMap
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrDecode, err)
	}

	nodes := make(map[string]*mindmap.Node)
	rootID := flatten(&doc.Root, "", nodes, time.Now().UnixMilli())
	return format.NewDecoded(nodes, rootID)
}

func flatten(t *inTopic, parentID string, nodes map[string]*mindmap.Node, now int64) string {
	id := mindmap.NewID()
	n := &mindmap.Node{
		ID:       id,
		Content:  t.Text.PlainText,
		Parent:   parentID,
		Created:  now,
		Modified: now,
	}
	nodes[id] = n

	if t.SubTopics != nil {
		for i := range t.SubTopics.Topics {
			n.Children = append(n.Children, flatten(&t.SubTopics.Topics[i], id, nodes, now))
		}
	}
	return id
}

var _ format.Codec = (*Codec)(nil)
