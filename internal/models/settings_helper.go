package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/smartpack/internal/constants"
)

// DefaultSettings returns the first-launch preference values.
func DefaultSettings() Settings {
	return Settings{
		Autosave:      constants.DefaultAutosave,
		Suggestions:   constants.DefaultSuggestions,
		Compact:       constants.DefaultCompact,
		Notifications: constants.DefaultNotifications,
		DarkMode:      constants.DefaultDarkMode,
	}
}

// IsSettingName reports whether name is one of the five known flags.
func IsSettingName(name string) bool {
	for _, n := range constants.SettingNames {
		if n == name {
			return true
		}
	}
	return false
}

// Get returns the value of a flag by name.
func (s Settings) Get(name string) (bool, error) {
	switch name {
	case constants.SettingAutosave:
		return s.Autosave, nil
	case constants.SettingSuggestions:
		return s.Suggestions, nil
	case constants.SettingCompact:
		return s.Compact, nil
	case constants.SettingNotifications:
		return s.Notifications, nil
	case constants.SettingDarkMode:
		return s.DarkMode, nil
	}
	return false, fmt.Errorf("unknown setting %q", name)
}

// With returns a copy of s with the named flag set to value.
func (s Settings) With(name string, value bool) (Settings, error) {
	switch name {
	case constants.SettingAutosave:
		s.Autosave = value
	case constants.SettingSuggestions:
		s.Suggestions = value
	case constants.SettingCompact:
		s.Compact = value
	case constants.SettingNotifications:
		s.Notifications = value
	case constants.SettingDarkMode:
		s.DarkMode = value
	default:
		return s, fmt.Errorf("unknown setting %q", name)
	}
	return s, nil
}

// MapToSettings merges a partial map of flags over the defaults. Unknown keys
// and non-boolean values are ignored so older or hand-edited documents still
// load.
func MapToSettings(data map[string]any) Settings {
	settings := DefaultSettings()
	for key, value := range data {
		var b bool
		switch v := value.(type) {
		case bool:
			b = v
		case string:
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				continue
			}
			b = parsed
		default:
			continue
		}
		if next, err := settings.With(key, b); err == nil {
			settings = next
		}
	}
	return settings
}

// SettingsToMap converts settings to a name to value map.
func SettingsToMap(settings Settings) map[string]bool {
	out := make(map[string]bool, len(constants.SettingNames))
	for _, name := range constants.SettingNames {
		v, _ := settings.Get(name)
		out[name] = v
	}
	return out
}
