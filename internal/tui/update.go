package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/smartpack/internal/catalog"
	"github.com/julianstephens/smartpack/internal/constants"
	"github.com/julianstephens/smartpack/internal/logger"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/trip"
	"github.com/julianstephens/smartpack/internal/tui/components/history"
	"github.com/julianstephens/smartpack/internal/tui/components/modules"
	"github.com/julianstephens/smartpack/internal/tui/components/packing"
	"github.com/julianstephens/smartpack/internal/tui/components/settings"
	"github.com/julianstephens/smartpack/internal/tui/components/setup"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case constants.ConfirmationMsg:
		fm := m.resetForm()
		m.pendingAction = msg.Action
		return m.openForm(constants.StateConfirmation, NewConfirmationForm(msg.Message, fm), nil)

	case importedMsg:
		if msg.err != nil {
			logger.Warn("Import failed", "path", msg.path, "error", msg.err)
			m.setError(msg.err)
			return m, nil
		}
		cmd := m.apply(msg.state)
		m.setStatus("Imported " + msg.path)
		return m, tea.Batch(cmd, m.refreshStorage())

	case exportedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.setStatus("Exported to " + msg.path)
		return m, nil

	case savedMsg:
		if msg.ok {
			m.setStatus("Saved")
		} else {
			m.setError(fmt.Errorf("save failed, changes are only in memory"))
		}
		return m, m.refreshStorage()

	case storageMsg:
		if msg.err != nil {
			logger.Debug("Storage size unavailable", "error", msg.err)
		}
		m.settingsModel.SetStorage(msg.size, msg.location)
		return m, nil

	case notifiedMsg:
		return m, nil
	}

	if m.state == constants.StateForm || m.state == constants.StateConfirmation {
		return m.updateForm(msg)
	}

	if next, cmd, ok := m.handleIntent(msg); ok {
		return next, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.capturing() {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.autosaver.Flush()
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Tab):
			return m.switchTab((m.state + 1) % constants.SessionState(len(constants.TabTitles)))
		case key.Matches(keyMsg, m.keys.ShiftTab):
			n := constants.SessionState(len(constants.TabTitles))
			return m.switchTab((m.state - 1 + n) % n)
		case key.Matches(keyMsg, m.keys.Jump):
			i, _ := strconv.Atoi(keyMsg.String())
			return m.switchTab(constants.SessionState(i - 1))
		case key.Matches(keyMsg, m.keys.Save):
			m.autosaver.Cancel()
			return m, m.saveCmd()
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateSetup:
		m.setupModel, cmd = m.setupModel.Update(msg)
	case constants.StatePacking:
		m.packingModel, cmd = m.packingModel.Update(msg)
	case constants.StateModules:
		m.modulesModel, cmd = m.modulesModel.Update(msg)
	case constants.StateHistory:
		m.historyModel, cmd = m.historyModel.Update(msg)
	case constants.StateSettings:
		m.settingsModel, cmd = m.settingsModel.Update(msg)
	}
	return m, cmd
}

func (m Model) switchTab(state constants.SessionState) (tea.Model, tea.Cmd) {
	m.state = state
	if state == constants.StateSettings {
		return m, m.refreshStorage()
	}
	return m, nil
}

// apply replaces the trip, refreshes every tab and queues an autosave. The
// returned command sends the packing notification when this change completed
// the list.
func (m *Model) apply(next models.TripState) tea.Cmd {
	compactChanged := next.Settings.Compact != m.trip.Settings.Compact
	m.trip = next
	m.sync()
	if compactChanged {
		m.resize(m.width, m.height)
	}
	m.autosaver.Schedule(next)

	was := m.wasComplete
	m.wasComplete = trip.IsComplete(trip.CalculateProgress(next))
	if m.wasComplete && !was && next.Settings.Notifications {
		m.setStatus("Everything is packed!")
		return m.notifyCmd(next.TripName)
	}
	return nil
}

func (m Model) handleIntent(msg tea.Msg) (Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case setup.ToggleModuleMsg:
		next, cmd := m.applied(trip.ToggleModule(m.trip, msg.Key))
		return next, cmd, true
	case setup.SetDaysMsg:
		next, cmd := m.applied(trip.SetTripDays(m.trip, msg.Days))
		return next, cmd, true
	case setup.EditTripMsg:
		fm := m.resetForm()
		fm.Name = m.trip.TripName
		fm.Days = strconv.Itoa(m.trip.TripDays)
		next, cmd := m.openForm(constants.StateForm, NewTripForm(fm), func(m Model) (Model, tea.Cmd) {
			days, _ := strconv.Atoi(strings.TrimSpace(m.formValues.Days))
			next := trip.SetTripName(m.trip, strings.TrimSpace(m.formValues.Name))
			return m.applied(trip.SetTripDays(next, days))
		})
		return next, cmd, true

	case packing.ToggleItemMsg:
		next, cmd := m.applied(trip.ToggleItem(m.trip, msg.Key, msg.Index))
		return next, cmd, true
	case packing.AddItemMsg:
		fm := m.resetForm()
		title := "New item for " + moduleName(m.trip, msg.Key)
		next, cmd := m.openForm(constants.StateForm, NewItemForm(title, fm), func(m Model) (Model, tea.Cmd) {
			return m.applied(trip.AddCustomItem(m.trip, msg.Key, m.formValues.Name))
		})
		return next, cmd, true
	case packing.EditItemMsg:
		fm := m.resetForm()
		fm.Name = msg.Name
		next, cmd := m.openForm(constants.StateForm, NewItemForm("Rename item", fm), func(m Model) (Model, tea.Cmd) {
			return m.applied(trip.EditItem(m.trip, msg.Key, msg.Index, m.formValues.Name))
		})
		return next, cmd, true
	case packing.DeleteItemMsg:
		next, cmd := m.applied(trip.DeleteItem(m.trip, msg.Key, msg.Index))
		return next, cmd, true
	case packing.SaveTripMsg, history.SaveCurrentMsg:
		next, cmd := m.saveToHistory()
		return next, cmd, true

	case modules.CreateModuleMsg:
		fm := m.resetForm()
		fm.Icon = constants.DefaultModuleIcon
		next, cmd := m.openForm(constants.StateForm, NewModuleForm(fm), func(m Model) (Model, tea.Cmd) {
			state, k, err := trip.CreateCustomModule(m.trip, m.formValues.Name, m.formValues.Icon)
			if err != nil {
				m.setError(err)
				return m, nil
			}
			cmd := m.apply(state)
			m.setStatus(fmt.Sprintf("Created module %q", k))
			return m, cmd
		})
		return next, cmd, true
	case modules.DeleteModuleMsg:
		next, cmd := m.applied(trip.DeleteCustomModule(m.trip, msg.Key))
		return next, cmd, true
	case modules.ResetModuleMsg:
		next, cmd := m.applied(trip.ResetModule(m.trip, msg.Key))
		return next, cmd, true
	case modules.AddTemplateItemMsg:
		fm := m.resetForm()
		title := "New template item for " + moduleName(m.trip, msg.Key)
		next, cmd := m.openForm(constants.StateForm, NewItemForm(title, fm), func(m Model) (Model, tea.Cmd) {
			return m.applyErr(trip.AddModuleItem(m.trip, msg.Key, m.formValues.Name))
		})
		return next, cmd, true
	case modules.EditTemplateItemMsg:
		fm := m.resetForm()
		fm.Name = msg.Name
		next, cmd := m.openForm(constants.StateForm, NewItemForm("Rename template item", fm), func(m Model) (Model, tea.Cmd) {
			return m.applyErr(trip.UpdateModuleItem(m.trip, msg.Key, msg.Index, m.formValues.Name))
		})
		return next, cmd, true
	case modules.RemoveTemplateItemMsg:
		next, cmd := m.applyErr(trip.RemoveModuleItem(m.trip, msg.Key, msg.Index))
		return next, cmd, true

	case history.DuplicateTripMsg:
		state, err := trip.DuplicateTrip(m.trip, msg.Index)
		if err != nil {
			m.setError(err)
			return m, nil, true
		}
		cmd := m.apply(state)
		m.setStatus("Loaded " + state.TripName)
		m.state = constants.StatePacking
		return m, cmd, true
	case history.DeleteSnapshotMsg:
		next, cmd := m.applyErr(trip.DeleteTripFromHistory(m.trip, msg.Index))
		return next, cmd, true

	case settings.ToggleSettingMsg:
		state, err := trip.UpdateSetting(m.trip, msg.Name, msg.Value)
		if err != nil {
			m.setError(err)
			return m, nil, true
		}
		cmd := m.apply(state)
		if msg.Name == constants.SettingAutosave {
			// The autosaver skips states with autosave off, so persist the
			// flag itself right away.
			m.autosaver.Cancel()
			return m, tea.Batch(cmd, m.saveCmd()), true
		}
		return m, cmd, true
	case settings.ExportMsg:
		return m, exportCmd(m.exportDir, m.trip, m.now(), msg.PDF), true
	case settings.ImportMsg:
		fm := m.resetForm()
		next, cmd := m.openForm(constants.StateForm, NewImportForm(fm), func(m Model) (Model, tea.Cmd) {
			path := strings.TrimSpace(m.formValues.Path)
			return m, func() tea.Msg {
				return constants.ConfirmationMsg{
					Message: fmt.Sprintf("Replace the current trip with %s?", path),
					Action:  func() tea.Cmd { return importCmd(path) },
				}
			}
		})
		return next, cmd, true
	case settings.ClearMsg:
		next, cmd := m.clear()
		return next, cmd, true
	}
	return m, nil, false
}

func (m Model) applied(state models.TripState) (Model, tea.Cmd) {
	cmd := m.apply(state)
	return m, cmd
}

func (m Model) applyErr(state models.TripState, err error) (Model, tea.Cmd) {
	if err != nil {
		m.setError(err)
		return m, nil
	}
	return m.applied(state)
}

func (m Model) saveToHistory() (Model, tea.Cmd) {
	state, err := trip.SaveCurrentTrip(m.trip, m.now())
	if err != nil {
		m.setError(err)
		return m, nil
	}
	cmd := m.apply(state)
	m.setStatus(fmt.Sprintf("Saved %q to history", state.TripName))
	return m, cmd
}

// clear wipes the store and resets to defaults. Nothing is scheduled, so the
// empty store stays empty until the next change.
func (m Model) clear() (Model, tea.Cmd) {
	m.autosaver.Cancel()
	if !m.gateway.Clear(context.Background()) {
		m.setError(fmt.Errorf("could not clear saved data"))
		return m, nil
	}
	m.trip = models.DefaultTripState()
	m.wasComplete = false
	m.sync()
	m.resize(m.width, m.height)
	m.setStatus("All data cleared")
	return m, m.refreshStorage()
}

func (m *Model) resetForm() *FormModel {
	m.formValues = &FormModel{}
	return m.formValues
}

func (m Model) openForm(state constants.SessionState, form *huh.Form, onSubmit func(Model) (Model, tea.Cmd)) (Model, tea.Cmd) {
	if m.state != constants.StateForm && m.state != constants.StateConfirmation {
		m.previousState = m.state
	}
	m.form = form.WithTheme(formTheme(m.trip.Settings.DarkMode)).WithShowHelp(true)
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width - 4)
	}
	m.onSubmit = onSubmit
	m.state = state
	return m, m.form.Init()
}

func (m Model) closeForm() Model {
	m.form = nil
	m.onSubmit = nil
	m.pendingAction = nil
	m.state = m.previousState
	return m
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m.closeForm(), nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == constants.StateConfirmation {
			action := m.pendingAction
			m = m.closeForm()
			if m.formValues.Confirmed && action != nil {
				return m, tea.Batch(cmd, action())
			}
			return m, cmd
		}
		submit := m.onSubmit
		m = m.closeForm()
		if submit != nil {
			next, submitCmd := submit(m)
			return next, tea.Batch(cmd, submitCmd)
		}
		return m, cmd
	case huh.StateAborted:
		return m.closeForm(), cmd
	}
	return m, cmd
}

func moduleName(s models.TripState, key string) string {
	if mod, ok := catalog.Get(key, s.CustomModules); ok {
		return mod.Name
	}
	return key
}
