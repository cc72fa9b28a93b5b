package persistence

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/julianstephens/smartpack/internal/catalog"
	"github.com/julianstephens/smartpack/internal/constants"
	apperrors "github.com/julianstephens/smartpack/internal/errors"
	"github.com/julianstephens/smartpack/internal/models"
)

// Import failure reasons.
const (
	ReasonUnreadable             = "could not read file"
	ReasonInvalidJSON            = "invalid JSON"
	ReasonNotObject              = "document is not an object"
	ReasonMissingTripName        = "missing string field tripName"
	ReasonMissingSelectedModules = "missing array field selectedModules"
	ReasonMissingPackingData     = "missing object field packingData"
)

// decodeImport parses an import document. The required fields must be present
// with the right types; everything else is coerced.
func decodeImport(data []byte) (models.TripState, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.TripState{}, &apperrors.ImportError{Reason: ReasonInvalidJSON, Err: err}
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return models.TripState{}, &apperrors.ImportError{Reason: ReasonNotObject}
	}
	if _, ok := obj["tripName"].(string); !ok {
		return models.TripState{}, &apperrors.ImportError{Reason: ReasonMissingTripName}
	}
	if _, ok := obj["selectedModules"].([]any); !ok {
		return models.TripState{}, &apperrors.ImportError{Reason: ReasonMissingSelectedModules}
	}
	if _, ok := obj["packingData"].(map[string]any); !ok {
		return models.TripState{}, &apperrors.ImportError{Reason: ReasonMissingPackingData}
	}
	return coerceState(obj), nil
}

// decodeStored parses a document previously written by Save. Only the top
// level has to be an object.
func decodeStored(data []byte) (models.TripState, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.TripState{}, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return models.TripState{}, &apperrors.ImportError{Reason: ReasonNotObject}
	}
	return coerceState(obj), nil
}

func coerceState(obj map[string]any) models.TripState {
	state := models.DefaultTripState()
	if name, ok := obj["tripName"].(string); ok {
		state.TripName = name
	}
	state.TripDays = coerceDays(obj["tripDays"])
	state.SelectedModules = coerceKeys(obj["selectedModules"])
	state.PackingData = coercePackingData(obj["packingData"])
	state.CustomModules = coerceModules(obj["customModules"])
	state.TripHistory = coerceHistory(obj["tripHistory"])
	if settings, ok := obj["settings"].(map[string]any); ok {
		state.Settings = models.MapToSettings(settings)
	}
	return state
}

func coerceDays(v any) int {
	var n float64
	switch d := v.(type) {
	case float64:
		n = d
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(d), 64)
		if err != nil {
			return constants.MinTripDays
		}
		n = parsed
	default:
		return constants.MinTripDays
	}
	if n == 0 || math.IsNaN(n) {
		return constants.MinTripDays
	}
	days := int(math.Trunc(n))
	if days < constants.MinTripDays {
		return constants.MinTripDays
	}
	if days > constants.MaxTripDays {
		return constants.MaxTripDays
	}
	return days
}

// coerceKeys keeps string entries in order, dropping duplicates.
func coerceKeys(v any) []string {
	arr, _ := v.([]any)
	out := make([]string, 0, len(arr))
	seen := make(map[string]bool, len(arr))
	for _, e := range arr {
		k, ok := e.(string)
		if !ok || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

func coercePackingData(v any) map[string][]models.PackingItem {
	obj, _ := v.(map[string]any)
	out := make(map[string][]models.PackingItem, len(obj))
	for key, raw := range obj {
		arr, ok := raw.([]any)
		if !ok {
			continue
		}
		items := make([]models.PackingItem, 0, len(arr))
		for _, e := range arr {
			if item, ok := coerceItem(e); ok {
				items = append(items, item)
			}
		}
		out[key] = items
	}
	return out
}

func coerceItem(v any) (models.PackingItem, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return models.PackingItem{}, false
	}
	name, ok := obj["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return models.PackingItem{}, false
	}
	checked, _ := obj["checked"].(bool)
	custom, _ := obj["custom"].(bool)
	return models.PackingItem{Name: name, Checked: checked, Custom: custom}, true
}

func coerceModules(v any) map[string]models.PackingModule {
	obj, _ := v.(map[string]any)
	out := make(map[string]models.PackingModule, len(obj))
	for key, raw := range obj {
		if !catalog.Validate(raw) {
			continue
		}
		m := raw.(map[string]any)
		module := models.PackingModule{
			Name:  m["name"].(string),
			Icon:  m["icon"].(string),
			Items: []string{},
		}
		for _, item := range m["items"].([]any) {
			if s, ok := item.(string); ok {
				module.Items = append(module.Items, s)
			}
		}
		out[key] = module
	}
	return out
}

func coerceHistory(v any) []models.TripSnapshot {
	arr, _ := v.([]any)
	out := make([]models.TripSnapshot, 0, len(arr))
	for _, e := range arr {
		obj, ok := e.(map[string]any)
		if !ok {
			continue
		}
		name, _ := obj["tripName"].(string)
		date, _ := obj["date"].(string)
		id, _ := obj["id"].(string)
		out = append(out, models.TripSnapshot{
			ID:              id,
			TripName:        name,
			TripDays:        coerceDays(obj["tripDays"]),
			SelectedModules: coerceKeys(obj["selectedModules"]),
			PackingData:     coercePackingData(obj["packingData"]),
			Date:            date,
		})
		if len(out) == constants.MaxTripHistory {
			break
		}
	}
	return out
}
