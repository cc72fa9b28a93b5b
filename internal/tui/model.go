// Package tui is the five-tab terminal interface over a TripState.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/smartpack/internal/constants"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/persistence"
	"github.com/julianstephens/smartpack/internal/trip"
	"github.com/julianstephens/smartpack/internal/tui/components/history"
	"github.com/julianstephens/smartpack/internal/tui/components/modules"
	"github.com/julianstephens/smartpack/internal/tui/components/packing"
	"github.com/julianstephens/smartpack/internal/tui/components/settings"
	"github.com/julianstephens/smartpack/internal/tui/components/setup"
)

// Notifier announces a fully packed trip.
type Notifier interface {
	PackingComplete(ctx context.Context, tripName string) error
}

type Options struct {
	Gateway       *persistence.Gateway
	Notifier      Notifier
	ExportDir     string
	AutosaveDelay time.Duration
	Now           func() time.Time
}

type Model struct {
	gateway   *persistence.Gateway
	autosaver *persistence.AutoSaver
	notifier  Notifier
	exportDir string
	now       func() time.Time

	trip        models.TripState
	wasComplete bool

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	setupModel    setup.Model
	packingModel  packing.Model
	modulesModel  modules.Model
	historyModel  history.Model
	settingsModel settings.Model

	form          *huh.Form
	formValues    *FormModel
	onSubmit      func(Model) (Model, tea.Cmd)
	pendingAction func() tea.Cmd

	status    string
	statusErr bool
	quitting  bool
	width     int
	height    int
}

// New loads the saved trip through the gateway and builds every tab.
func New(opts Options) Model {
	gateway := opts.Gateway
	if gateway == nil {
		gateway = persistence.New(nil)
	}
	delay := opts.AutosaveDelay
	if delay <= 0 {
		delay = constants.AutosaveDelay
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	exportDir := opts.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	state := gateway.Load(context.Background())

	m := Model{
		gateway:       gateway,
		autosaver:     persistence.NewAutoSaver(gateway, delay),
		notifier:      opts.Notifier,
		exportDir:     exportDir,
		now:           now,
		trip:          state,
		wasComplete:   trip.IsComplete(trip.CalculateProgress(state)),
		state:         constants.StateSetup,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		setupModel:    setup.New(state, 0, 0),
		packingModel:  packing.New(state, 0, 0),
		modulesModel:  modules.New(state, 0, 0),
		historyModel:  history.New(state.TripHistory, 0, 0),
		settingsModel: settings.New(state.Settings, 0, 0),
		formValues:    &FormModel{},
	}
	return m
}

// Trip returns the state currently shown.
func (m Model) Trip() models.TripState {
	return m.trip
}

// Run starts the program in the alternate screen and writes any pending
// autosave once it exits.
func Run(opts Options) error {
	m := New(opts)
	defer m.autosaver.Stop()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.autosaver.Flush()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.refreshStorage()
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateSetup:
		k := m.setupModel.Keys()
		keys = append(keys, k.Toggle, k.Edit, k.More, k.Less)
	case constants.StatePacking:
		k := m.packingModel.Keys()
		keys = append(keys, k.Toggle, k.Add, k.Save)
	case constants.StateModules:
		k := m.modulesModel.Keys()
		if m.modulesModel.Editing() {
			keys = append(keys, k.Add, k.Edit, k.Delete, k.Back)
		} else {
			keys = append(keys, k.Open, k.New, k.Delete, k.Reset)
		}
	case constants.StateHistory:
		k := m.historyModel.Keys()
		keys = append(keys, k.Use, k.Delete, k.Save)
	case constants.StateSettings:
		k := m.settingsModel.Keys()
		keys = append(keys, k.Toggle, k.Export, k.Import, k.Clear)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Jump, m.keys.Save, m.keys.Quit, m.keys.Help}

	var actions []key.Binding
	switch m.state {
	case constants.StateSetup:
		k := m.setupModel.Keys()
		actions = []key.Binding{k.Up, k.Down, k.Toggle, k.Edit, k.More, k.Less}
	case constants.StatePacking:
		k := m.packingModel.Keys()
		actions = []key.Binding{k.Up, k.Down, k.Toggle, k.Add, k.Edit, k.Delete, k.Save}
	case constants.StateModules:
		k := m.modulesModel.Keys()
		actions = []key.Binding{k.Up, k.Down, k.Open, k.Back, k.New, k.Add, k.Edit, k.Delete, k.Reset}
	case constants.StateHistory:
		k := m.historyModel.Keys()
		actions = []key.Binding{k.Use, k.Delete, k.Save}
	case constants.StateSettings:
		k := m.settingsModel.Keys()
		actions = []key.Binding{k.Up, k.Down, k.Toggle, k.Export, k.ExportPDF, k.Import, k.Clear}
	}

	return [][]key.Binding{global, actions}
}

// sync pushes the current trip into every tab.
func (m *Model) sync() {
	m.setupModel.SetState(m.trip)
	m.packingModel.SetState(m.trip)
	m.modulesModel.SetState(m.trip)
	m.historyModel.SetHistory(m.trip.TripHistory)
	m.settingsModel.SetSettings(m.trip.Settings)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	w, h := width-4, height-6
	if m.trip.Settings.Compact {
		w, h = width-2, height-4
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	m.setupModel.SetSize(w, h)
	m.packingModel.SetSize(w, h)
	m.modulesModel.SetSize(w, h)
	m.historyModel.SetSize(w, h)
	m.settingsModel.SetSize(w, h)
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

// capturing reports whether the active tab wants raw keys, such as the
// history filter input.
func (m Model) capturing() bool {
	return m.state == constants.StateHistory && m.historyModel.Filtering()
}
