// Package cli holds the kong command handlers. Every command that changes the
// trip loads it through the gateway, applies one transition and saves it
// explicitly.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/smartpack/internal/backup"
	"github.com/julianstephens/smartpack/internal/config"
	apperrors "github.com/julianstephens/smartpack/internal/errors"
	"github.com/julianstephens/smartpack/internal/keyring"
	"github.com/julianstephens/smartpack/internal/logger"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/persistence"
	"github.com/julianstephens/smartpack/internal/storage"
	"github.com/julianstephens/smartpack/internal/storage/jsonfile"
	"github.com/julianstephens/smartpack/internal/storage/postgres"
	redisstore "github.com/julianstephens/smartpack/internal/storage/redis"
	"github.com/julianstephens/smartpack/internal/storage/sqlite"
	"github.com/julianstephens/smartpack/internal/trip"
)

// ErrNotConfirmed is returned by destructive commands run without --yes.
var ErrNotConfirmed = errors.New("this command changes or removes data; re-run with --yes to confirm")

type Context struct {
	Store      storage.Provider
	Config     config.Config
	ConfigPath string
	Out        io.Writer
	Now        func() time.Time

	gateway *persistence.Gateway
}

// NewContext wraps the configured store. Nothing is opened until a command
// needs it.
func NewContext(store storage.Provider, cfg config.Config, configPath string) *Context {
	return &Context{
		Store:      store,
		Config:     cfg,
		ConfigPath: configPath,
		Out:        os.Stdout,
		Now:        time.Now,
	}
}

// OpenStore picks a provider from the shape of location: a postgres URL or
// DSN, a redis URL, a .json file, or otherwise a SQLite file. Passwords for
// remote stores come from the OS keyring.
func OpenStore(location string) (storage.Provider, error) {
	location = strings.TrimSpace(location)
	switch {
	case postgres.IsConnString(location) || strings.Contains(location, "host="):
		if _, err := postgres.ValidateConnString(location); err != nil {
			return nil, err
		}
		return postgres.New(location).WithPassword(keyring.Lookup(keyring.AccountPostgres)), nil
	case redisstore.IsURL(location):
		if _, err := redisstore.ValidateURL(location); err != nil {
			return nil, err
		}
		return redisstore.New(location, keyring.Lookup(keyring.AccountRedis)), nil
	case strings.HasSuffix(strings.ToLower(location), ".json"):
		return jsonfile.NewStore(config.ExpandPath(location)), nil
	default:
		return sqlite.NewStore(config.ExpandPath(location)), nil
	}
}

// Gateway opens the store on first use, creating it if it doesn't exist yet.
func (c *Context) Gateway() (*persistence.Gateway, error) {
	if c.gateway != nil {
		return c.gateway, nil
	}
	if c.Store == nil {
		return nil, apperrors.ErrStorageUnavailable
	}

	err := c.Store.Load()
	if errors.Is(err, storage.ErrNotInitialized) {
		logger.Info("Initializing storage", "store", c.Store.GetConfigPath())
		err = c.Store.Init()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}
	c.gateway = persistence.New(c.Store)
	return c.gateway, nil
}

func (c *Context) load() (models.TripState, error) {
	g, err := c.Gateway()
	if err != nil {
		return models.TripState{}, err
	}
	return g.Load(context.Background()), nil
}

func (c *Context) save(state models.TripState) error {
	g, err := c.Gateway()
	if err != nil {
		return err
	}
	if !g.Save(context.Background(), state) {
		return fmt.Errorf("failed to save changes to %s", c.Store.GetConfigPath())
	}
	return nil
}

// update loads the trip, applies fn and saves the result.
func (c *Context) update(fn func(models.TripState) (models.TripState, error)) (models.TripState, error) {
	state, err := c.load()
	if err != nil {
		return state, err
	}
	next, err := fn(state)
	if err != nil {
		return state, err
	}
	return next, c.save(next)
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}

// PerformAutomaticBackup snapshots a SQLite store and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	store, ok := c.Store.(*sqlite.Store)
	if !ok {
		return
	}
	if _, err := os.Stat(store.GetConfigPath()); err != nil {
		return
	}
	if _, err := backup.NewManager(store.GetConfigPath()).Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func confirmed(yes bool) error {
	if !yes {
		return ErrNotConfirmed
	}
	return nil
}

// itemIndex converts a 1-based position typed by the user into a slice index.
func itemIndex(position, length int) (int, error) {
	i := position - 1
	if i < 0 || i >= length {
		return 0, apperrors.NewIndex(position, length)
	}
	return i, nil
}

// snapshotIndex accepts a snapshot id or a 1-based position in the history.
func snapshotIndex(state models.TripState, ref string) (int, error) {
	if i, ok := trip.FindSnapshot(state, ref); ok {
		return i, nil
	}
	position, err := strconv.Atoi(ref)
	if err != nil {
		return 0, apperrors.NewNotFound("trip", ref)
	}
	return itemIndex(position, len(state.TripHistory))
}
