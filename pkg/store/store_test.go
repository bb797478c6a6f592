package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/canopymap/canopy/pkg/mindmap"
)

// backends returns every store implementation that can run without
// external services.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	mr := miniredis.RunT(t)
	redisStore := NewRedisStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	return map[string]Store{
		"File":  fileStore,
		"Mem":   NewMemStore(),
		"Redis": redisStore,
	}
}

func sample(t *testing.T) *mindmap.Map {
	t.Helper()
	m := mindmap.NewWithContent("Stored")
	a, err := m.AddChild(m.RootID, "Alpha")
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AddIcon(a, "idea"); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestStoreCycle(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			m := sample(t)

			if err := st.Save(ctx, "trip", m); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := st.Load(ctx, "trip")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got.Len() != m.Len() || got.RootID != m.RootID {
				t.Errorf("loaded %d nodes root %q, want %d root %q",
					got.Len(), got.RootID, m.Len(), m.RootID)
			}

			// Save is a replace.
			if _, err := m.AddChild(m.RootID, "Beta"); err != nil {
				t.Fatal(err)
			}
			if err := st.Save(ctx, "trip", m); err != nil {
				t.Fatalf("re-Save: %v", err)
			}
			got, err = st.Load(ctx, "trip")
			if err != nil {
				t.Fatalf("re-Load: %v", err)
			}
			if got.Len() != m.Len() {
				t.Errorf("after re-save: %d nodes, want %d", got.Len(), m.Len())
			}

			if err := st.Delete(ctx, "trip"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := st.Load(ctx, "trip"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Load after delete: %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreList(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			m := sample(t)

			for _, n := range []string{"zebra", "apple", "mango"} {
				if err := st.Save(ctx, n, m); err != nil {
					t.Fatalf("Save %q: %v", n, err)
				}
			}
			names, err := st.List(ctx)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			want := []string{"apple", "mango", "zebra"}
			if !reflect.DeepEqual(names, want) {
				t.Errorf("List = %v, want %v", names, want)
			}
		})
	}
}

func TestStoreNotFound(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if _, err := st.Load(ctx, "absent"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Load: %v, want ErrNotFound", err)
			}
			if err := st.Delete(ctx, "absent"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Delete: %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreBadNames(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()
	m := sample(t)

	for _, name := range []string{"", "a/b", `a\b`, ".", ".."} {
		if err := st.Save(ctx, name, m); !errors.Is(err, ErrBadName) {
			t.Errorf("Save(%q): %v, want ErrBadName", name, err)
		}
	}
}
