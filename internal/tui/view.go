package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smartpack/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateSetup:
		content = m.setupModel.View()
	case constants.StatePacking:
		content = m.packingModel.View()
	case constants.StateModules:
		content = m.modulesModel.View()
	case constants.StateHistory:
		content = m.historyModel.View()
	case constants.StateSettings:
		content = m.settingsModel.View()
	case constants.StateForm, constants.StateConfirmation:
		if m.form != nil {
			content = m.form.View()
		}
	}

	doc := docStyle
	if m.trip.Settings.Compact {
		doc = compactDocStyle
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		doc.Render(content),
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := activeTabStyle
	if m.trip.Settings.DarkMode {
		active = activeTabDarkStyle
	}

	current := m.state
	if current == constants.StateForm || current == constants.StateConfirmation {
		current = m.previousState
	}

	var tabs []string
	for i, title := range constants.TabTitles {
		if current == constants.SessionState(i) {
			tabs = append(tabs, active.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	switch {
	case m.status != "" && m.statusErr:
		return errorStyle.Render("✗ " + m.status)
	case m.status != "":
		return statusStyle.Render("✓ " + m.status)
	case m.autosaver.Pending():
		return dirtyStyle.Render("saving…")
	case !m.trip.Settings.Autosave:
		return dirtyStyle.Render("autosave off, ctrl+s to save")
	}
	return ""
}
