// Package persistence mirrors the TripState into a key-value store and
// converts it to and from export documents.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"github.com/julianstephens/smartpack/internal/constants"
	apperrors "github.com/julianstephens/smartpack/internal/errors"
	"github.com/julianstephens/smartpack/internal/logger"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/storage"
)

const quotaProbeKey = "storage-test"

// Gateway reads and writes the whole TripState under one fixed key. Store
// failures never escape Load; Save and Clear report them as false.
type Gateway struct {
	store storage.Provider
}

// New wraps store. A nil store behaves as unavailable storage.
func New(store storage.Provider) *Gateway {
	return &Gateway{store: store}
}

// Store returns the underlying provider, which may be nil.
func (g *Gateway) Store() storage.Provider {
	return g.store
}

// Load returns the persisted state merged over the defaults, or the defaults
// when nothing usable is stored.
func (g *Gateway) Load(ctx context.Context) models.TripState {
	if g.store == nil {
		logger.Warn("Loading default state", "error", apperrors.ErrStorageUnavailable)
		return models.DefaultTripState()
	}

	raw, err := g.store.Get(ctx, constants.StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Error("Error loading data from storage", "error", err)
		}
		return models.DefaultTripState()
	}

	state, err := decodeStored([]byte(raw))
	if err != nil {
		logger.Error("Error parsing stored data", "error", err)
		return models.DefaultTripState()
	}
	logger.Debug("Data loaded from storage", "store", g.store.GetConfigPath())
	return state
}

// Save writes the full state. It returns false when the store is missing or
// the write fails.
func (g *Gateway) Save(ctx context.Context, state models.TripState) bool {
	if g.store == nil {
		logger.Warn("Skipping save", "error", apperrors.ErrStorageUnavailable)
		return false
	}
	data, err := json.Marshal(state)
	if err != nil {
		logger.Error("Error serializing state", "error", err)
		return false
	}
	if err := g.store.Set(ctx, constants.StorageKey, string(data)); err != nil {
		logger.Error("Error saving data to storage", "error", err)
		return false
	}
	logger.Debug("Data saved to storage", "bytes", len(data))
	return true
}

// Clear removes the stored state.
func (g *Gateway) Clear(ctx context.Context) bool {
	if g.store == nil {
		return false
	}
	if err := g.store.Remove(ctx, constants.StorageKey); err != nil {
		logger.Error("Error clearing storage", "error", err)
		return false
	}
	logger.Info("Storage cleared")
	return true
}

// Size estimates how much room the stored state takes, measured on the state
// as Load would return it.
func (g *Gateway) Size(ctx context.Context) (models.StorageSize, error) {
	if g.store == nil {
		return models.StorageSize{}, apperrors.ErrStorageUnavailable
	}
	state := g.Load(ctx)
	data, err := json.Marshal(state)
	if err != nil {
		return models.StorageSize{}, err
	}
	return models.StorageSize{
		Bytes:         len(data),
		Characters:    utf8.RuneCount(data),
		TripHistory:   len(state.TripHistory),
		CustomModules: len(state.CustomModules),
		PackingData:   len(state.PackingData),
	}, nil
}

// CheckQuota probes the store with a write and remove of a scratch key.
func (g *Gateway) CheckQuota(ctx context.Context) bool {
	if g.store == nil {
		return false
	}
	if err := g.store.Set(ctx, quotaProbeKey, quotaProbeKey); err != nil {
		logger.Warn("Storage quota exceeded or unavailable", "error", err)
		return false
	}
	if err := g.store.Remove(ctx, quotaProbeKey); err != nil {
		logger.Warn("Storage quota exceeded or unavailable", "error", err)
		return false
	}
	return true
}
