// Package xmind implements the XMind codec.
//
// XMind files are zip archives whose content.json holds an array of
// sheets, each with a nested rootTopic. Only the first sheet is read.
// Topic ids are preserved on decode. XMind markers map to and from
// FreeMind-style icon names through the tables in markers.go.
package xmind

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/canopymap/canopy/pkg/format"
	"github.com/canopymap/canopy/pkg/format/internal/zipfile"
	"github.com/canopymap/canopy/pkg/mindmap"
)

type sheet struct {
	ID        string `json:"id"`
	Class     string `json:"class,omitempty"`
	RootTopic topic  `json:"rootTopic"`
	Title     string `json:"title,omitempty"`
}

type topic struct {
	ID       string    `json:"id"`
	Class    string    `json:"class,omitempty"`
	Title    string    `json:"title"`
	Markers  []marker  `json:"markers,omitempty"`
	Children *children `json:"children,omitempty"`
}

type marker struct {
	MarkerID string `json:"markerId"`
}

type children struct {
	Attached []topic `json:"attached"`
}

// Codec is the XMind codec.
type Codec struct{}

// New returns the XMind codec.
func New() *Codec { return &Codec{} }

func (*Codec) Name() string         { return "xmind" }
func (*Codec) Extensions() []string { return []string{".xmind"} }

// Encode writes the map as an XMind archive with a single sheet titled
// after the root node.
func (*Codec) Encode(m *mindmap.Map) ([]byte, error) {
	root, ok := m.Node(m.RootID)
	if !ok {
		return nil, fmt.Errorf("%w: root %q missing", format.ErrEncode, m.RootID)
	}

	sheets := []sheet{{
		ID:        mindmap.NewID(),
		Class:     "sheet",
		RootTopic: toTopic(root, m),
		Title:     root.Content,
	}}
	content, err := json.Marshal(sheets)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrEncode, err)
	}

	metadata, _ := json.Marshal(map[string]any{
		"dataStructureVersion": "2",
		"creator":              map[string]string{"name": "canopy"},
	})
	manifest, _ := json.Marshal(map[string]any{
		"file-entries": map[string]any{
			"content.json":  map[string]any{},
			"metadata.json": map[string]any{},
		},
	})

	data, err := zipfile.Build(
		zipfile.Entry{Name: "content.json", Data: content},
		zipfile.Entry{Name: "metadata.json", Data: metadata},
		zipfile.Entry{Name: "manifest.json", Data: manifest},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrEncode, err)
	}
	return data, nil
}

func toTopic(n *mindmap.Node, m *mindmap.Map) topic {
	out := topic{ID: n.ID, Class: "topic", Title: n.Content}
	for _, icon := range n.Icons {
		out.Markers = append(out.Markers, marker{MarkerID: iconToMarker(icon)})
	}
	var kids []topic
	for _, id := range n.Children {
		if child, ok := m.Node(id); ok {
			kids = append(kids, toTopic(child, m))
		}
	}
	if len(kids) > 0 {
		out.Children = &children{Attached: kids}
	}
	return out
}

// Decode reads content.json from the archive and flattens the first
// sheet's topic tree.
func (*Codec) Decode(data []byte) (*mindmap.Map, error) {
	content, err := zipfile.Read(data, "content.json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrDecode, err)
	}

	var sheets []sheet
	if err := json.Unmarshal(content, &sheets); err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrDecode, err)
	}
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets in document", format.ErrDecode)
	}

	nodes := make(map[string]*mindmap.Node)
	rootID := flatten(&sheets[0].RootTopic, "", nodes, time.Now().UnixMilli())
	return format.NewDecoded(nodes, rootID)
}

func flatten(t *topic, parentID string, nodes map[string]*mindmap.Node, now int64) string {
	id := t.ID
	if id == "" {
		id = mindmap.NewID()
	}

	n := &mindmap.Node{
		ID:       id,
		Content:  t.Title,
		Parent:   parentID,
		Created:  now,
		Modified: now,
	}
	for _, mk := range t.Markers {
		if icon, ok := markerToIcon(mk.MarkerID); ok {
			n.Icons = append(n.Icons, icon)
		}
	}
	nodes[id] = n

	if t.Children != nil {
		for i := range t.Children.Attached {
			n.Children = append(n.Children, flatten(&t.Children.Attached[i], id, nodes, now))
		}
	}
	return id
}

var _ format.Codec = (*Codec)(nil)
