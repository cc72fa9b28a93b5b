package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/smartpack/internal/storage"
)

func TestJSONStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "smartpack.json")

	store := NewStore(path)
	if err := store.Load(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Fatalf("Load() before Init error = %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if _, err := store.Get(ctx, "k"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get() error = %v", err)
	}
	if err := store.Set(ctx, "k", `{"a":1}`); err != nil {
		t.Fatal(err)
	}

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if v, err := reopened.Get(ctx, "k"); err != nil || v != `{"a":1}` {
		t.Errorf("Get() = %q, %v", v, err)
	}

	if err := reopened.Remove(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), `"k"`) {
		t.Errorf("removed key still on disk: %s", raw)
	}
}

func TestJSONStoreInitKeepsExisting(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "smartpack.json")

	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}

	again := NewStore(path)
	if err := again.Init(); err != nil {
		t.Fatal(err)
	}
	if v, _ := again.Get(ctx, "k"); v != "v" {
		t.Errorf("Init() on existing file lost data, got %q", v)
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smartpack.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := NewStore(path).Load(); err == nil {
		t.Error("expected parse error")
	}
}
