package models

import "github.com/julianstephens/smartpack/internal/constants"

// TripState is the single root aggregate the whole application reads and
// replaces. Values are treated as immutable by the trip package: every
// transition returns a new TripState.
type TripState struct {
	TripName        string                   `json:"tripName"`
	TripDays        int                      `json:"tripDays"`
	SelectedModules []string                 `json:"selectedModules"`
	PackingData     map[string][]PackingItem `json:"packingData"`
	CustomModules   map[string]PackingModule `json:"customModules"`
	TripHistory     []TripSnapshot           `json:"tripHistory"`
	Settings        Settings                 `json:"settings"`
}

// TripSnapshot is a frozen copy of a trip saved to history.
type TripSnapshot struct {
	ID              string                   `json:"id,omitempty"`
	TripName        string                   `json:"tripName"`
	TripDays        int                      `json:"tripDays"`
	SelectedModules []string                 `json:"selectedModules"`
	PackingData     map[string][]PackingItem `json:"packingData"`
	Date            string                   `json:"date"`
}

// DefaultTripState returns the state of a first launch.
func DefaultTripState() TripState {
	return TripState{
		TripName:        "",
		TripDays:        constants.MinTripDays,
		SelectedModules: []string{},
		PackingData:     map[string][]PackingItem{},
		CustomModules:   map[string]PackingModule{},
		TripHistory:     []TripSnapshot{},
		Settings:        DefaultSettings(),
	}
}

// IsSelected reports whether key is in the selection list.
func (s TripState) IsSelected(key string) bool {
	for _, k := range s.SelectedModules {
		if k == key {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the state.
func (s TripState) Clone() TripState {
	out := s
	out.SelectedModules = CloneKeys(s.SelectedModules)
	out.PackingData = ClonePackingData(s.PackingData)
	out.CustomModules = make(map[string]PackingModule, len(s.CustomModules))
	for k, m := range s.CustomModules {
		out.CustomModules[k] = m.Clone()
	}
	out.TripHistory = make([]TripSnapshot, len(s.TripHistory))
	for i, snap := range s.TripHistory {
		out.TripHistory[i] = snap.Clone()
	}
	return out
}

// Clone returns a deep copy of the snapshot.
func (s TripSnapshot) Clone() TripSnapshot {
	out := s
	out.SelectedModules = CloneKeys(s.SelectedModules)
	out.PackingData = ClonePackingData(s.PackingData)
	return out
}

// CloneKeys copies a key list, never returning nil.
func CloneKeys(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// ClonePackingData copies every item list so the result shares nothing with
// the input.
func ClonePackingData(data map[string][]PackingItem) map[string][]PackingItem {
	out := make(map[string][]PackingItem, len(data))
	for k, items := range data {
		cp := make([]PackingItem, len(items))
		copy(cp, items)
		out[k] = cp
	}
	return out
}
