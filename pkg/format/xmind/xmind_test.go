package xmind

import (
	"errors"
	"testing"

	"github.com/canopymap/canopy/pkg/format"
	"github.com/canopymap/canopy/pkg/format/internal/zipfile"
	"github.com/canopymap/canopy/pkg/mindmap"
)

func TestRoundTrip(t *testing.T) {
	m := mindmap.NewWithContent("Project")
	a, err := m.AddChild(m.RootID, "Alpha")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddChild(a, "Detail"); err != nil {
		t.Fatal(err)
	}
	if err := m.AddIcon(a, "idea"); err != nil {
		t.Fatal(err)
	}

	codec := New()
	data, err := codec.Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.Len() != m.Len() {
		t.Fatalf("node count = %d, want %d", got.Len(), m.Len())
	}
	// XMind topic ids are UUIDs and survive the trip.
	if got.RootID != m.RootID {
		t.Errorf("root id changed: %q != %q", got.RootID, m.RootID)
	}
	alpha, ok := got.Node(a)
	if !ok {
		t.Fatalf("node %q lost in round-trip", a)
	}
	// idea -> other-lightbulb -> idea.
	if len(alpha.Icons) != 1 || alpha.Icons[0] != "idea" {
		t.Errorf("icons = %v, want [idea]", alpha.Icons)
	}
}

func TestMarkerTranslation(t *testing.T) {
	tests := []struct {
		icon   string
		marker string
		back   string
	}{
		{icon: "idea", marker: "other-lightbulb", back: "idea"},
		{icon: "full-3", marker: "priority-3", back: "full-3"},
		// Unknown icons fall back to the generic question marker, which
		// decodes as help.
		{icon: "no-such-icon", marker: "other-question", back: "help"},
	}
	for _, tt := range tests {
		if got := iconToMarker(tt.icon); got != tt.marker {
			t.Errorf("iconToMarker(%q) = %q, want %q", tt.icon, got, tt.marker)
		}
		back, ok := markerToIcon(tt.marker)
		if !ok || back != tt.back {
			t.Errorf("markerToIcon(%q) = %q/%v, want %q", tt.marker, back, ok, tt.back)
		}
	}

	if _, ok := markerToIcon("month-jan"); ok {
		t.Error("markers without a counterpart should be dropped")
	}
}

func TestDecodeErrors(t *testing.T) {
	codec := New()

	if _, err := codec.Decode([]byte("not a zip")); !errors.Is(err, format.ErrDecode) {
		t.Errorf("err = %v, want ErrDecode", err)
	}

	// A valid archive without content.json.
	data, err := zipfile.Build(zipfile.Entry{Name: "metadata.json", Data: []byte("{}")})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := codec.Decode(data); !errors.Is(err, format.ErrDecode) {
		t.Errorf("missing content.json: err = %v, want ErrDecode", err)
	}

	// An empty sheet list.
	data, err = zipfile.Build(zipfile.Entry{Name: "content.json", Data: []byte("[]")})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := codec.Decode(data); !errors.Is(err, format.ErrDecode) {
		t.Errorf("no sheets: err = %v, want ErrDecode", err)
	}
}
