// Package formats provides the canonical list of built-in codecs.
//
// This package exists to break import cycles: the individual codec
// packages import pkg/format, so pkg/format cannot import them back.
// Consumers that need the full codec list import this package.
package formats

import (
	"fmt"
	"os"

	"github.com/canopymap/canopy/pkg/format"
	"github.com/canopymap/canopy/pkg/format/freemind"
	"github.com/canopymap/canopy/pkg/format/mindnode"
	"github.com/canopymap/canopy/pkg/format/mmap"
	"github.com/canopymap/canopy/pkg/format/native"
	"github.com/canopymap/canopy/pkg/format/opml"
	"github.com/canopymap/canopy/pkg/format/smmx"
	"github.com/canopymap/canopy/pkg/format/xmind"
	"github.com/canopymap/canopy/pkg/mindmap"
)

// All is the canonical codec list. Native comes first so it wins ties and
// shows up first in help output.
var All = []format.Codec{
	native.New(),
	freemind.New(),
	opml.New(),
	smmx.New(),
	xmind.New(),
	mindnode.New(),
	mmap.New(),
}

// Find returns the built-in codec with the given name.
func Find(name string) (format.Codec, error) {
	return format.Find(name, All)
}

// Detect returns the built-in codec matching the path's extension.
func Detect(path string) (format.Codec, error) {
	return format.Detect(path, All)
}

// ReadFile decodes the file at path, choosing the codec by name if given
// or by file extension otherwise.
func ReadFile(path, name string) (*mindmap.Map, error) {
	codec, err := pick(path, name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	m, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// WriteFile encodes the map to the file at path, choosing the codec by
// name if given or by file extension otherwise.
func WriteFile(m *mindmap.Map, path, name string) error {
	codec, err := pick(path, name)
	if err != nil {
		return err
	}
	data, err := codec.Encode(m)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func pick(path, name string) (format.Codec, error) {
	if name != "" {
		return Find(name)
	}
	return Detect(path)
}
