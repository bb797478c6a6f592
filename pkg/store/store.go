// Package store provides named persistence for mind maps.
//
// This package defines an interface for map storage with implementations
// for different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI usage (the default)
//   - redis: Redis-backed storage for the HTTP server
//   - mongo: MongoDB-backed storage for multi-instance deployments
//
// Maps are stored under a user-chosen name and serialized through the
// native JSON codec, so everything the codec preserves (ids, icons,
// positions) survives a save/load cycle.
//
// # Usage
//
//	st, err := store.NewFileStore("") // Uses ~/.config/canopy/maps/
//	if err != nil {
//	    return err
//	}
//	if err := st.Save(ctx, "trip", m); err != nil {
//	    return err
//	}
//	m, err = st.Load(ctx, "trip")
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canopymap/canopy/pkg/format/native"
	"github.com/canopymap/canopy/pkg/mindmap"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when no map is stored under the given name.
	ErrNotFound = errors.New("map not found")

	// ErrBadName is returned for names that cannot serve as storage keys.
	ErrBadName = errors.New("invalid map name")
)

// Store is the interface for map storage backends.
type Store interface {
	// Save stores the map under the given name, replacing any previous
	// version.
	Save(ctx context.Context, name string, m *mindmap.Map) error

	// Load retrieves the map stored under the given name.
	// Returns ErrNotFound if no such map exists.
	Load(ctx context.Context, name string) (*mindmap.Map, error)

	// Delete removes the map stored under the given name.
	// Returns ErrNotFound if no such map exists.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored maps in lexical order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

// checkName rejects names that would break file paths or key schemes.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrBadName)
	}
	if strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return nil
}

var codec = native.New()

// encode serializes a map for storage.
func encode(m *mindmap.Map) ([]byte, error) {
	return codec.Encode(m)
}

// decode deserializes a stored map.
func decode(data []byte) (*mindmap.Map, error) {
	return codec.Decode(data)
}
