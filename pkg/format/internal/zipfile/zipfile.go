// Package zipfile provides the small zip-container helpers shared by the
// archive-based codecs (xmind, mindnode, mmap).
package zipfile

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// Entry is a named file inside a zip container.
type Entry struct {
	Name string
	Data []byte
}

// Build assembles the entries into a zip archive in order.
func Build(entries ...Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		f, err := w.Create(e.Name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", e.Name, err)
		}
		if _, err := f.Write(e.Data); err != nil {
			return nil, fmt.Errorf("write %s: %w", e.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read returns the contents of the first archive entry matching any of the
// candidate names, tried in order.
func Read(data []byte, names ...string) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	for _, name := range names {
		f, err := r.Open(name)
		if err != nil {
			continue
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return nil, fmt.Errorf("no entry named %v in archive", names)
}
