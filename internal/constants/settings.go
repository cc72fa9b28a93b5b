package constants

const (
	// Setting names, as stored in the persisted settings object
	SettingAutosave      = "autosave"
	SettingSuggestions   = "suggestions"
	SettingCompact       = "compact"
	SettingNotifications = "notifications"
	SettingDarkMode      = "darkMode"

	// Default Settings Values
	DefaultAutosave      = true
	DefaultSuggestions   = true
	DefaultCompact       = false
	DefaultNotifications = true
	DefaultDarkMode      = false
)

// SettingNames lists every recognized setting in display order.
var SettingNames = []string{
	SettingAutosave,
	SettingSuggestions,
	SettingCompact,
	SettingNotifications,
	SettingDarkMode,
}
