package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/smartpack/internal/config"
	apperrors "github.com/julianstephens/smartpack/internal/errors"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/storage/jsonfile"
	"github.com/julianstephens/smartpack/internal/storage/sqlite"
)

func setupTestContext(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	store := sqlite.NewStore(filepath.Join(dir, "test.db"))
	t.Cleanup(func() { store.Close() })

	cfg := config.Default()
	cfg.ExportDir = dir

	out := &bytes.Buffer{}
	ctx := NewContext(store, cfg, filepath.Join(dir, "config.yaml"))
	ctx.Out = out
	ctx.Now = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }
	return ctx, out
}

func mustLoad(t *testing.T, ctx *Context) models.TripState {
	t.Helper()
	state, err := ctx.load()
	if err != nil {
		t.Fatalf("failed to load state: %v", err)
	}
	return state
}

func TestOpenStoreSelectsProvider(t *testing.T) {
	dir := t.TempDir()

	store, err := OpenStore(filepath.Join(dir, "trip.json"))
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	if _, ok := store.(*jsonfile.Store); !ok {
		t.Errorf("expected a JSON store for a .json path, got %T", store)
	}

	store, err = OpenStore(filepath.Join(dir, "trip.db"))
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	if _, ok := store.(*sqlite.Store); !ok {
		t.Errorf("expected a SQLite store, got %T", store)
	}
}

func TestGatewayInitializesMissingStore(t *testing.T) {
	ctx, _ := setupTestContext(t)

	state := mustLoad(t, ctx)
	if state.TripDays != 1 || len(state.SelectedModules) != 0 {
		t.Errorf("expected default state, got %+v", state)
	}
}

func TestItemIndex(t *testing.T) {
	tests := []struct {
		name     string
		position int
		length   int
		want     int
		wantErr  bool
	}{
		{"first", 1, 3, 0, false},
		{"last", 3, 3, 2, false},
		{"zero", 0, 3, 0, true},
		{"past end", 4, 3, 0, true},
		{"empty", 1, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := itemIndex(tt.position, tt.length)
			if tt.wantErr {
				var idxErr *apperrors.IndexError
				if !errors.As(err, &idxErr) {
					t.Fatalf("expected IndexError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("itemIndex(%d, %d) = %d, want %d", tt.position, tt.length, got, tt.want)
			}
		})
	}
}

func TestSnapshotIndex(t *testing.T) {
	state := models.DefaultTripState()
	state.TripHistory = []models.TripSnapshot{
		{ID: "aaa", TripName: "Paris"},
		{ID: "bbb", TripName: "Oslo"},
	}

	if i, err := snapshotIndex(state, "bbb"); err != nil || i != 1 {
		t.Errorf("snapshotIndex by id = %d, %v; want 1", i, err)
	}
	if i, err := snapshotIndex(state, "1"); err != nil || i != 0 {
		t.Errorf("snapshotIndex by number = %d, %v; want 0", i, err)
	}
	if _, err := snapshotIndex(state, "3"); err == nil {
		t.Error("expected error for out of range number")
	}
	var nf *apperrors.NotFoundError
	if _, err := snapshotIndex(state, "zzz"); !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError for unknown id, got %v", err)
	}
}

func TestDestructiveCommandsRequireConfirmation(t *testing.T) {
	ctx, _ := setupTestContext(t)

	cmds := []interface{ Run(*Context) error }{
		&ClearCmd{},
		&ModuleDeleteCmd{Key: "x"},
		&ModuleResetCmd{Key: "essentials"},
		&ItemDeleteCmd{Key: "essentials", Position: 1},
		&HistoryDeleteCmd{Ref: "1"},
		&HistoryDuplicateCmd{Ref: "1"},
		&ImportCmd{Path: "missing.json"},
	}
	for _, c := range cmds {
		if err := c.Run(ctx); !errors.Is(err, ErrNotConfirmed) {
			t.Errorf("%T: expected ErrNotConfirmed, got %v", c, err)
		}
	}
}

func TestInitWritesConfig(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&InitCmd{WriteConfig: true}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out.String(), "Wrote config file") {
		t.Errorf("expected config file to be written, got %q", out.String())
	}

	cfg, err := config.Load(ctx.ConfigPath)
	if err != nil {
		t.Fatalf("failed to read written config: %v", err)
	}
	if cfg.ExportDir != ctx.Config.ExportDir {
		t.Errorf("ExportDir = %q, want %q", cfg.ExportDir, ctx.Config.ExportDir)
	}

	out.Reset()
	if err := (&InitCmd{WriteConfig: true}).Run(ctx); err != nil {
		t.Fatalf("second init failed: %v", err)
	}
	if strings.Contains(out.String(), "Wrote config file") {
		t.Error("existing config file should not be overwritten")
	}
}
