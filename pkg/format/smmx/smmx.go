// Package smmx implements the SimpleMind XML codec.
//
// SimpleMind nests topics under simplemind-mindmaps/mindmap/topics.
// Its topic ids are small integers scoped to the file, so decode
// synthesizes fresh ids instead of trusting them.
package smmx

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/canopymap/canopy/pkg/format"
	"github.com/canopymap/canopy/pkg/mindmap"
)

const xmlHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

type smmxRoot struct {
	XMLName xml.Name `xml:"simplemind-mindmaps"`
	MindMap smmxMap  `xml:"mindmap"`
}

type smmxMap struct {
	Topics smmxTopics `xml:"topics"`
}

type smmxTopics struct {
	Topic []smmxTopic `xml:"topic"`
}

type smmxTopic struct {
	ID       string        `xml:"id,attr"`
	Text     string        `xml:"text,attr"`
	Children *smmxChildren `xml:"children"`
}

type smmxChildren struct {
	Topics smmxTopics `xml:"topics"`
}

// Codec is the SimpleMind codec.
type Codec struct{}

// New returns the SimpleMind codec.
func New() *Codec { return &Codec{} }

func (*Codec) Name() string         { return "smmx" }
func (*Codec) Extensions() []string { return []string{".smmx"} }

// Encode writes the map as SimpleMind XML, carrying node ids in the id
// attribute for reference even though SimpleMind itself renumbers them.
func (*Codec) Encode(m *mindmap.Map) ([]byte, error) {
	root, ok := m.Node(m.RootID)
	if !ok {
		return nil, fmt.Errorf("%w: root %q missing", format.ErrEncode, m.RootID)
	}

	doc := smmxRoot{
		MindMap: smmxMap{
			Topics: smmxTopics{Topic: []smmxTopic{toTopic(root, m)}},
		},
	}
	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrEncode, err)
	}
	return append([]byte(xmlHeader), body...), nil
}

func toTopic(n *mindmap.Node, m *mindmap.Map) smmxTopic {
	out := smmxTopic{ID: n.ID, Text: n.Content}
	var kids []smmxTopic
	for _, id := range n.Children {
		if child, ok := m.Node(id); ok {
			kids = append(kids, toTopic(child, m))
		}
	}
	if len(kids) > 0 {
		out.Children = &smmxChildren{Topics: smmxTopics{Topic: kids}}
	}
	return out
}

// Decode parses SimpleMind XML into a fresh map with synthesized ids.
func (*Codec) Decode(data []byte) (*mindmap.Map, error) {
	var doc smmxRoot
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrDecode, err)
	}
	if len(doc.MindMap.Topics.Topic) == 0 {
		return nil, fmt.Errorf("%w: document has no topics", format.ErrDecode)
	}

	nodes := make(map[string]*mindmap.Node)
	rootID := fromTopic(&doc.MindMap.Topics.Topic[0], "", nodes, time.Now().UnixMilli())
	return format.NewDecoded(nodes, rootID)
}

func fromTopic(topic *smmxTopic, parentID string, nodes map[string]*mindmap.Node, now int64) string {
	id := mindmap.NewID()
	n := &mindmap.Node{
		ID:       id,
		Content:  topic.Text,
		Parent:   parentID,
		Created:  now,
		Modified: now,
	}
	nodes[id] = n
	if topic.Children != nil {
		for i := range topic.Children.Topics.Topic {
			n.Children = append(n.Children, fromTopic(&topic.Children.Topics.Topic[i], id, nodes, now))
		}
	}
	return id
}

var _ format.Codec = (*Codec)(nil)
