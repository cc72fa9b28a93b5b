// Package trip holds the state transitions of a TripState. Every function
// takes the current state by value and returns the next one; inputs are never
// mutated, so callers replace their reference wholesale.
package trip

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/smartpack/internal/catalog"
	"github.com/julianstephens/smartpack/internal/constants"
	apperrors "github.com/julianstephens/smartpack/internal/errors"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/validation"
)

// ClampDays forces n into [MinTripDays, MaxTripDays].
func ClampDays(n int) int {
	if n < constants.MinTripDays {
		return constants.MinTripDays
	}
	if n > constants.MaxTripDays {
		return constants.MaxTripDays
	}
	return n
}

// SetTripName stores name as typed. Blank names are allowed while editing.
func SetTripName(s models.TripState, name string) models.TripState {
	s.TripName = name
	return s
}

// SetTripDays stores the clamped day count.
func SetTripDays(s models.TripState, days int) models.TripState {
	s.TripDays = ClampDays(days)
	return s
}

// ToggleModule removes key from the selection if present, otherwise appends
// it. Packing data is never dropped on removal; on first selection it is
// seeded from the catalog.
func ToggleModule(s models.TripState, key string) models.TripState {
	if s.IsSelected(key) {
		selected := make([]string, 0, len(s.SelectedModules))
		for _, k := range s.SelectedModules {
			if k != key {
				selected = append(selected, k)
			}
		}
		s.SelectedModules = selected
		return s
	}

	s.SelectedModules = append(models.CloneKeys(s.SelectedModules), key)
	if _, ok := s.PackingData[key]; !ok {
		if m, found := catalog.Get(key, s.CustomModules); found {
			s.PackingData = models.ClonePackingData(s.PackingData)
			s.PackingData[key] = models.ItemsFromModule(m)
		}
	}
	return s
}

// CreateCustomModule adds a new custom module and returns its key. Names that
// produce an empty key or a key already in the merged catalog are rejected.
func CreateCustomModule(s models.TripState, name, icon string) (models.TripState, string, error) {
	if err := validation.ModuleName(name); err != nil {
		return s, "", err
	}
	key, m, err := catalog.Create(name, icon)
	if err != nil {
		return s, "", err
	}
	if key == "" {
		return s, "", apperrors.NewValidation("module name", "name must contain at least one letter or digit")
	}
	if catalog.Exists(key, s.CustomModules) {
		return s, "", apperrors.NewValidation("module name", "a module with key \""+key+"\" already exists")
	}
	s.CustomModules = cloneCustom(s.CustomModules)
	s.CustomModules[key] = m
	return s, key, nil
}

// DeleteCustomModule removes a custom module together with its selection and
// packing data. Built-in keys are left alone.
func DeleteCustomModule(s models.TripState, key string) models.TripState {
	if _, ok := s.CustomModules[key]; !ok || !catalog.IsCustom(key) {
		return s
	}
	s.CustomModules = cloneCustom(s.CustomModules)
	delete(s.CustomModules, key)

	selected := make([]string, 0, len(s.SelectedModules))
	for _, k := range s.SelectedModules {
		if k != key {
			selected = append(selected, k)
		}
	}
	s.SelectedModules = selected

	s.PackingData = models.ClonePackingData(s.PackingData)
	delete(s.PackingData, key)
	return s
}

// ResetModule drops a custom override of a built-in module so the built-in
// template applies again. Selection and packing data are kept.
func ResetModule(s models.TripState, key string) models.TripState {
	if _, ok := s.CustomModules[key]; !ok || catalog.IsCustom(key) {
		return s
	}
	s.CustomModules = cloneCustom(s.CustomModules)
	delete(s.CustomModules, key)
	return s
}

// ToggleItem flips the checked flag of one item. Absent keys or indexes are
// ignored.
func ToggleItem(s models.TripState, key string, index int) models.TripState {
	items, ok := s.PackingData[key]
	if !ok || index < 0 || index >= len(items) {
		return s
	}
	s.PackingData = models.ClonePackingData(s.PackingData)
	s.PackingData[key][index].Checked = !s.PackingData[key][index].Checked
	return s
}

// AddCustomItem appends a user item to a module's checklist.
func AddCustomItem(s models.TripState, key, name string) models.TripState {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return s
	}
	s.PackingData = models.ClonePackingData(s.PackingData)
	s.PackingData[key] = append(s.PackingData[key], models.PackingItem{Name: trimmed, Custom: true})
	return s
}

// EditItem renames one item, keeping its checked and custom flags.
func EditItem(s models.TripState, key string, index int, name string) models.TripState {
	trimmed := strings.TrimSpace(name)
	items, ok := s.PackingData[key]
	if trimmed == "" || !ok || index < 0 || index >= len(items) {
		return s
	}
	s.PackingData = models.ClonePackingData(s.PackingData)
	s.PackingData[key][index].Name = trimmed
	return s
}

// DeleteItem removes a custom item. Default items stay; they can only be
// unchecked.
func DeleteItem(s models.TripState, key string, index int) models.TripState {
	items, ok := s.PackingData[key]
	if !ok || index < 0 || index >= len(items) || !items[index].Custom {
		return s
	}
	s.PackingData = models.ClonePackingData(s.PackingData)
	list := s.PackingData[key]
	s.PackingData[key] = append(list[:index], list[index+1:]...)
	return s
}

// AddModuleItem appends an item to a module template, storing the result as
// a custom override.
func AddModuleItem(s models.TripState, key, name string) (models.TripState, error) {
	if err := validation.ItemName(name); err != nil {
		return s, err
	}
	res, err := catalog.AddItem(key, name, s.CustomModules)
	if err != nil {
		return s, err
	}
	return withModule(s, key, res.Module), nil
}

// RemoveModuleItem drops an item from a module template.
func RemoveModuleItem(s models.TripState, key string, index int) (models.TripState, error) {
	res, err := catalog.RemoveItem(key, index, s.CustomModules)
	if err != nil {
		return s, err
	}
	return withModule(s, key, res.Module), nil
}

// UpdateModuleItem renames an item in a module template.
func UpdateModuleItem(s models.TripState, key string, index int, name string) (models.TripState, error) {
	if err := validation.ItemName(name); err != nil {
		return s, err
	}
	res, err := catalog.UpdateItem(key, index, name, s.CustomModules)
	if err != nil {
		return s, err
	}
	return withModule(s, key, res.Module), nil
}

// SaveCurrentTrip prepends a deep-copied snapshot of the live trip to the
// history, keeping at most MaxTripHistory entries.
func SaveCurrentTrip(s models.TripState, now time.Time) (models.TripState, error) {
	if err := validation.TripName(s.TripName); err != nil {
		return s, err
	}
	snap := models.TripSnapshot{
		ID:              uuid.NewString(),
		TripName:        s.TripName,
		TripDays:        s.TripDays,
		SelectedModules: models.CloneKeys(s.SelectedModules),
		PackingData:     models.ClonePackingData(s.PackingData),
		Date:            now.UTC().Format(time.RFC3339Nano),
	}

	history := make([]models.TripSnapshot, 0, len(s.TripHistory)+1)
	history = append(history, snap)
	history = append(history, s.TripHistory...)
	if len(history) > constants.MaxTripHistory {
		history = history[:constants.MaxTripHistory]
	}
	s.TripHistory = history
	return s, nil
}

// DuplicateTrip replaces the live trip with a copy of a history entry, every
// item unchecked.
func DuplicateTrip(s models.TripState, index int) (models.TripState, error) {
	if index < 0 || index >= len(s.TripHistory) {
		return s, apperrors.NewIndex(index, len(s.TripHistory))
	}
	snap := s.TripHistory[index]
	data := models.ClonePackingData(snap.PackingData)
	for _, items := range data {
		for i := range items {
			items[i].Checked = false
		}
	}
	s.TripName = snap.TripName + constants.CopySuffix
	s.TripDays = ClampDays(snap.TripDays)
	s.SelectedModules = models.CloneKeys(snap.SelectedModules)
	s.PackingData = data
	return s, nil
}

// DeleteTripFromHistory removes one history entry.
func DeleteTripFromHistory(s models.TripState, index int) (models.TripState, error) {
	if index < 0 || index >= len(s.TripHistory) {
		return s, apperrors.NewIndex(index, len(s.TripHistory))
	}
	history := make([]models.TripSnapshot, 0, len(s.TripHistory)-1)
	history = append(history, s.TripHistory[:index]...)
	history = append(history, s.TripHistory[index+1:]...)
	s.TripHistory = history
	return s, nil
}

// FindSnapshot returns the history index of the snapshot with the given id.
func FindSnapshot(s models.TripState, id string) (int, bool) {
	for i, snap := range s.TripHistory {
		if snap.ID != "" && snap.ID == id {
			return i, true
		}
	}
	return -1, false
}

// UpdateSetting overwrites a single preference flag.
func UpdateSetting(s models.TripState, name string, value bool) (models.TripState, error) {
	next, err := s.Settings.With(name, value)
	if err != nil {
		return s, apperrors.NewValidation("setting", err.Error())
	}
	s.Settings = next
	return s, nil
}

func withModule(s models.TripState, key string, m models.PackingModule) models.TripState {
	s.CustomModules = cloneCustom(s.CustomModules)
	s.CustomModules[key] = m
	return s
}

func cloneCustom(in map[string]models.PackingModule) map[string]models.PackingModule {
	out := make(map[string]models.PackingModule, len(in))
	for k, m := range in {
		out[k] = m.Clone()
	}
	return out
}
