// Package format defines the codec contract for mind-map interchange
// formats.
//
// A Codec is a pair of pure functions between serialized bytes and the
// in-memory [mindmap.Map]. Codecs never mutate a map they are given and
// never keep a reference to one they return. Every decoder yields a tree
// that passes [mindmap.Map.Validate] and has the root selected.
//
// The individual format packages (freemind, opml, xmind, ...) import this
// package, so the canonical codec list lives in pkg/format/formats to
// break the cycle.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/canopymap/canopy/pkg/mindmap"
)

var (
	// ErrEncode wraps all encoder failures (e.g. missing root).
	ErrEncode = errors.New("encode failed")

	// ErrDecode wraps all decoder failures: malformed input, missing
	// required substructure, or a decoded tree that fails validation.
	ErrDecode = errors.New("decode failed")

	// ErrUnknownFormat is returned by [Find] and [Detect] when no codec
	// matches the requested name or file extension.
	ErrUnknownFormat = errors.New("unknown format")
)

// Codec converts between a serialized document and a mind map.
//
// Id stability is format-specific: codecs whose wire format carries usable
// node ids (native, freemind, xmind, mindnode) preserve them; the rest
// synthesize fresh ids on every decode, so two decodes of the same bytes
// may legitimately differ in ids while agreeing in structure.
type Codec interface {
	// Name is the codec identifier used on the command line (e.g. "opml").
	Name() string

	// Extensions lists the file extensions handled by this codec,
	// lowercase with leading dot (e.g. ".mm").
	Extensions() []string

	// Encode serializes the map. Fails with an error wrapping ErrEncode.
	Encode(m *mindmap.Map) ([]byte, error)

	// Decode parses the bytes into a fresh map with the root selected.
	// Fails with an error wrapping ErrDecode.
	Decode(data []byte) (*mindmap.Map, error)
}

// Find returns the codec with the given name from the list.
func Find(name string, codecs []Codec) (Codec, error) {
	for _, c := range codecs {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: name %q", ErrUnknownFormat, name)
}

// Detect returns the codec matching the path's file extension.
func Detect(path string, codecs []Codec) (Codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, c := range codecs {
		for _, e := range c.Extensions() {
			if e == ext {
				return c, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
}

// NewDecoded assembles a decoder's node arena into a Map with the root
// selected, and validates it. Every decoder finishes through this helper so
// malformed input surfaces as ErrDecode rather than as a corrupt tree.
func NewDecoded(nodes map[string]*mindmap.Node, rootID string) (*mindmap.Map, error) {
	m := &mindmap.Map{Nodes: nodes, RootID: rootID, SelectedID: rootID}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return m, nil
}

// Names returns the codec names in list order.
func Names(codecs []Codec) []string {
	names := make([]string, len(codecs))
	for i, c := range codecs {
		names[i] = c.Name()
	}
	return names
}
