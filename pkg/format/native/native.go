// Package native implements the canonical JSON codec.
//
// It is the only format that carries the full Map verbatim: ids,
// timestamps, icons, selection and computed positions all survive a
// round-trip unchanged. The store backends persist maps through it.
package native

import (
	"encoding/json"
	"fmt"

	"github.com/canopymap/canopy/pkg/format"
	"github.com/canopymap/canopy/pkg/mindmap"
)

// Codec is the native JSON codec.
type Codec struct{}

// New returns the native codec.
func New() *Codec { return &Codec{} }

func (*Codec) Name() string         { return "native" }
func (*Codec) Extensions() []string { return []string{".json", ".canopy"} }

// Encode serializes the map as indented JSON. Object keys are emitted in
// sorted order, so output is deterministic for a given tree.
func (*Codec) Encode(m *mindmap.Map) ([]byte, error) {
	if _, ok := m.Node(m.RootID); !ok {
		return nil, fmt.Errorf("%w: root %q missing", format.ErrEncode, m.RootID)
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrEncode, err)
	}
	return data, nil
}

// Decode parses the JSON document and validates the resulting tree.
// Ids are stable: decoding the same bytes twice yields identical maps,
// except that the selection is always reset to the root.
func (*Codec) Decode(data []byte) (*mindmap.Map, error) {
	var m mindmap.Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrDecode, err)
	}
	if m.Nodes == nil {
		return nil, fmt.Errorf("%w: document has no nodes", format.ErrDecode)
	}
	return format.NewDecoded(m.Nodes, m.RootID)
}

var _ format.Codec = (*Codec)(nil)
