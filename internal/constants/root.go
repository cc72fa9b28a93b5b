package constants

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SessionState represents the current state of the TUI application
type SessionState int

// ConfirmationMsg is a message to trigger a confirmation dialog
type ConfirmationMsg struct {
	Message string
	Action  func() tea.Cmd
}

const (
	AppName            = "smartpack"
	DefaultKeyringUser = "store-connection"
	DefaultConfigPath  = "~/.config/smartpack/smartpack.db"
	DefaultConfigFile  = "~/.config/smartpack/config.yaml"
	Version            = "v1.0.0"

	// StorageKey is the single key the trip state is persisted under
	StorageKey = "smartPackingApp"

	// ExportVersion is written into every exported document
	ExportVersion = "1.0.0"

	// History and trip limits
	MaxTripHistory = 50
	MinTripDays    = 1
	MaxTripDays    = 365

	// Name limits
	MaxModuleNameLen = 50
	MaxItemNameLen   = 100
	MaxModuleKeyLen  = 20

	// DefaultModuleIcon is used when a custom module is created without an icon
	DefaultModuleIcon = "fas fa-star"

	// CopySuffix is appended to a duplicated trip's name
	CopySuffix = " (Copy)"

	// AutosaveDelay is the quiet period before a pending autosave is written
	AutosaveDelay = 500 * time.Millisecond

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "smartpack-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "smartpack-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.smartpack"
	TrayExecutablePrefix   = "smartpack-tray"

	// Redis key prefix for the redis store
	RedisKeyPrefix = "smartpack:"
)

// Session States
const (
	StateSetup SessionState = iota
	StatePacking
	StateModules
	StateHistory
	StateSettings
	StateForm
	StateConfirmation
)

// TabTitles lists the main tabs in display order. The index of each title
// matches its SessionState.
var TabTitles = []string{"Setup", "Packing", "Modules", "History", "Settings"}
