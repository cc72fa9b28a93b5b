package models

// Settings holds the five user preference flags.
type Settings struct {
	Autosave      bool `json:"autosave"`      // mirror state to storage after each change
	Suggestions   bool `json:"suggestions"`   // show module suggestions on the setup tab
	Compact       bool `json:"compact"`       // denser layout
	Notifications bool `json:"notifications"` // notify when packing completes
	DarkMode      bool `json:"darkMode"`      // dark color theme
}
