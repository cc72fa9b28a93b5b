package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/smartpack/internal/constants"
)

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(EnvStore, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvStore, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "store: /tmp/trips.json\ndebug: true\nexport_dir: /tmp/out\nautosave_delay: 2s\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Config{Store: "/tmp/trips.json", Debug: true, ExportDir: "/tmp/out", AutosaveDelay: 2 * time.Second}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv(EnvStore, "redis://localhost:6379/0")
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Store != "redis://localhost:6379/0" {
		t.Errorf("Store = %q", cfg.Store)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("colour: blue\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	t.Setenv(EnvStore, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AutosaveDelay != constants.AutosaveDelay {
		t.Errorf("AutosaveDelay = %v", cfg.AutosaveDelay)
	}
}

func TestWriteThenLoad(t *testing.T) {
	t.Setenv(EnvStore, "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Debug = true
	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandPath("~/x/y.db"); got != filepath.Join(home, "x/y.db") {
		t.Errorf("ExpandPath() = %q", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandPath() = %q", got)
	}
}
