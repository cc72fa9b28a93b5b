package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/smartpack/internal/backup"
	"github.com/julianstephens/smartpack/internal/catalog"
	"github.com/julianstephens/smartpack/internal/config"
	"github.com/julianstephens/smartpack/internal/keyring"
	"github.com/julianstephens/smartpack/internal/notifier"
	"github.com/julianstephens/smartpack/internal/storage"
	"github.com/julianstephens/smartpack/internal/storage/sqlite"
	"github.com/julianstephens/smartpack/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name    string
	run     func(ctx *Context) error
	warning bool
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	checks := []check{
		{name: "Config file", run: checkConfigFile, warning: true},
		{name: "Storage reachable", run: checkStorage},
		{name: "Schema version", run: checkSchemaVersion},
		{name: "Data validation", run: checkData},
		{name: "Storage quota", run: checkQuota, warning: true},
		{name: "Backups present", run: checkBackupsPresent, warning: true},
		{name: "OS keyring", run: checkKeyring, warning: true},
		{name: "Tray companion", run: checkTray, warning: true},
	}

	hasError := false
	storageOK := true
	for _, c := range checks {
		if !storageOK && c.name != "Config file" && c.name != "OS keyring" && c.name != "Tray companion" {
			ctx.printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.printf("✓ %s: OK\n", c.name)
		case c.warning:
			ctx.printf("⚠ %s: WARNING\n", c.name)
			ctx.printf("   %v\n", err)
		default:
			ctx.printf("❌ %s: FAIL\n", c.name)
			ctx.printf("   Error: %v\n", err)
			hasError = true
			if c.name == "Storage reachable" {
				storageOK = false
			}
		}
	}

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.println("All diagnostics passed!")
	return nil
}

func checkConfigFile(ctx *Context) error {
	if ctx.ConfigPath == "" {
		return nil
	}
	if _, err := os.Stat(config.ExpandPath(ctx.ConfigPath)); err != nil {
		return fmt.Errorf("no config file at %s, defaults are in use ('smartpack init' writes one)", ctx.ConfigPath)
	}
	return nil
}

func checkStorage(ctx *Context) error {
	if ctx.Store == nil {
		return errors.New("no store configured")
	}
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load %s: %w", ctx.Store.GetConfigPath(), err)
	}
	if p, ok := ctx.Store.(storage.Pinger); ok {
		pctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.Ping(pctx); err != nil {
			return fmt.Errorf("failed to reach %s: %w", ctx.Store.GetConfigPath(), err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	v, ok := ctx.Store.(storage.Versioned)
	if !ok {
		return nil
	}
	current, latest, err := v.SchemaVersion(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkData(ctx *Context) error {
	state, err := ctx.load()
	if err != nil {
		return err
	}
	if err := validation.TripDays(state.TripDays); err != nil {
		return err
	}
	for key, m := range state.CustomModules {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("custom module %q has no name", key)
		}
	}
	for _, key := range state.SelectedModules {
		if !catalog.Exists(key, state.CustomModules) {
			return fmt.Errorf("selected module %q does not exist", key)
		}
	}
	return nil
}

func checkQuota(ctx *Context) error {
	g, err := ctx.Gateway()
	if err != nil {
		return err
	}
	if !g.CheckQuota(context.Background()) {
		return errors.New("stored data is approaching the size limit; consider deleting old trips from history")
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}
	backups, err := backup.NewManager(store.GetConfigPath()).List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return errors.New("no backups found - consider creating one with 'smartpack backup create'")
	}
	return nil
}

func checkKeyring(_ *Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}

func checkTray(_ *Context) error {
	dir, err := notifier.TrayConfigDir()
	if err != nil {
		return fmt.Errorf("%w: %v", notifier.ErrTrayNotRunning, err)
	}
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("%w: notifications are disabled", notifier.ErrTrayNotRunning)
	}
	return nil
}
