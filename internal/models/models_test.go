package models

import (
	"testing"

	"github.com/julianstephens/smartpack/internal/constants"
)

func TestDefaultTripState(t *testing.T) {
	s := DefaultTripState()
	if s.TripName != "" || s.TripDays != 1 {
		t.Errorf("unexpected defaults: name=%q days=%d", s.TripName, s.TripDays)
	}
	if s.SelectedModules == nil || s.PackingData == nil || s.CustomModules == nil || s.TripHistory == nil {
		t.Error("collections must be non-nil")
	}
	if s.Settings != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", s.Settings)
	}
}

func TestDefaultSettings(t *testing.T) {
	want := Settings{Autosave: true, Suggestions: true, Compact: false, Notifications: true, DarkMode: false}
	if got := DefaultSettings(); got != want {
		t.Errorf("DefaultSettings() = %+v, want %+v", got, want)
	}
}

func TestMapToSettings(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want Settings
	}{
		{
			name: "empty map yields defaults",
			data: map[string]any{},
			want: DefaultSettings(),
		},
		{
			name: "partial override",
			data: map[string]any{constants.SettingAutosave: false, constants.SettingDarkMode: true},
			want: Settings{Autosave: false, Suggestions: true, Notifications: true, DarkMode: true},
		},
		{
			name: "unknown keys and bad values ignored",
			data: map[string]any{"theme": "blue", constants.SettingCompact: 3, constants.SettingSuggestions: "false"},
			want: Settings{Autosave: true, Suggestions: false, Notifications: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapToSettings(tt.data); got != tt.want {
				t.Errorf("MapToSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSettingsWithUnknown(t *testing.T) {
	if _, err := DefaultSettings().With("bogus", true); err == nil {
		t.Error("expected error for unknown setting")
	}
	if IsSettingName("bogus") {
		t.Error("IsSettingName(bogus) = true")
	}
	for _, name := range constants.SettingNames {
		if !IsSettingName(name) {
			t.Errorf("IsSettingName(%q) = false", name)
		}
	}
}

func TestSettingsToMapHasFiveKeys(t *testing.T) {
	m := SettingsToMap(DefaultSettings())
	if len(m) != 5 {
		t.Fatalf("len = %d, want 5", len(m))
	}
	if !m[constants.SettingAutosave] || m[constants.SettingCompact] {
		t.Errorf("unexpected map %v", m)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := DefaultTripState()
	s.SelectedModules = []string{"essentials"}
	s.PackingData["essentials"] = []PackingItem{{Name: "Passport"}}
	s.CustomModules["mine"] = PackingModule{Name: "Mine", Items: []string{"a"}}
	s.TripHistory = []TripSnapshot{{TripName: "t", PackingData: map[string][]PackingItem{"x": {{Name: "y"}}}}}

	c := s.Clone()
	c.SelectedModules[0] = "changed"
	c.PackingData["essentials"][0].Checked = true
	c.CustomModules["mine"].Items[0] = "b"
	c.TripHistory[0].PackingData["x"][0].Name = "z"

	if s.SelectedModules[0] != "essentials" {
		t.Error("selected modules shared")
	}
	if s.PackingData["essentials"][0].Checked {
		t.Error("packing data shared")
	}
	if s.CustomModules["mine"].Items[0] != "a" {
		t.Error("custom module items shared")
	}
	if s.TripHistory[0].PackingData["x"][0].Name != "y" {
		t.Error("history packing data shared")
	}
}

func TestStorageSizeKB(t *testing.T) {
	if got := (StorageSize{Bytes: 2048}).KB(); got != 2 {
		t.Errorf("KB() = %v, want 2", got)
	}
}
