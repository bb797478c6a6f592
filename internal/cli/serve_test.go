package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canopymap/canopy/pkg/mindmap"
)

func TestServeMux(t *testing.T) {
	m := mindmap.NewWithContent("Served")
	if _, err := m.AddChild(m.RootID, "Child"); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(newServeMux(m))
	defer srv.Close()

	t.Run("Healthz", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/healthz")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("MapJSON", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/map.json")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}

		var got mindmap.Map
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(got.Nodes) != 2 || got.RootID != m.RootID {
			t.Errorf("served %d nodes root %q, want 2 root %q",
				len(got.Nodes), got.RootID, m.RootID)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/nope")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}
