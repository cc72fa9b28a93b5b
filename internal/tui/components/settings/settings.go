// Package settings shows the five preference toggles and the data actions.
package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smartpack/internal/constants"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/tui/components/cursor"
)

type ToggleSettingMsg struct {
	Name  string
	Value bool
}

type ExportMsg struct {
	PDF bool
}

type ImportMsg struct{}

type ClearMsg struct{}

var labels = map[string][2]string{
	constants.SettingAutosave:      {"Auto-save", "Save changes automatically"},
	constants.SettingSuggestions:   {"Smart suggestions", "Show packing tips on the setup tab"},
	constants.SettingCompact:       {"Compact view", "Tighter spacing"},
	constants.SettingNotifications: {"Notifications", "Notify when everything is packed"},
	constants.SettingDarkMode:      {"Dark mode", "Dark palette for forms and tabs"},
}

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Export    key.Binding
	ExportPDF key.Binding
	Import    key.Binding
	Clear     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export json"),
		),
		ExportPDF: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "export pdf"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear data"),
		),
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Width(20)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	onStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	offStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1)
)

type Model struct {
	settings models.Settings
	storage  models.StorageSize
	location string
	cursor   cursor.Cursor
	keys     KeyMap
	width    int
	height   int
}

func New(settings models.Settings, width, height int) Model {
	m := Model{settings: settings, keys: DefaultKeyMap(), width: width, height: height}
	m.cursor.SetLen(len(constants.SettingNames))
	return m
}

func (m *Model) SetSettings(settings models.Settings) {
	m.settings = settings
}

// SetStorage records what the store currently holds, shown under Data.
func (m *Model) SetStorage(size models.StorageSize, location string) {
	m.storage = size
	m.location = location
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor.Up()
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor.Down()
	case key.Matches(keyMsg, m.keys.Toggle):
		name := constants.SettingNames[m.cursor.Index]
		current, _ := m.settings.Get(name)
		return m, func() tea.Msg { return ToggleSettingMsg{Name: name, Value: !current} }
	case key.Matches(keyMsg, m.keys.Export):
		return m, func() tea.Msg { return ExportMsg{} }
	case key.Matches(keyMsg, m.keys.ExportPDF):
		return m, func() tea.Msg { return ExportMsg{PDF: true} }
	case key.Matches(keyMsg, m.keys.Import):
		return m, func() tea.Msg { return ImportMsg{} }
	case key.Matches(keyMsg, m.keys.Clear):
		return m, func() tea.Msg {
			return constants.ConfirmationMsg{
				Message: "Clear all saved data? This cannot be undone.",
				Action: func() tea.Cmd {
					return func() tea.Msg { return ClearMsg{} }
				},
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Preferences") + "\n")
	for i, name := range constants.SettingNames {
		pointer := "  "
		if i == m.cursor.Index {
			pointer = cursorStyle.Render("› ")
		}
		value, _ := m.settings.Get(name)
		state := offStyle.Render("off")
		if value {
			state = onStyle.Render("on ")
		}
		l := labels[name]
		fmt.Fprintf(&b, "%s%s %s  %s\n", pointer, labelStyle.Render(l[0]), state, descStyle.Render(l[1]))
	}

	var data strings.Builder
	data.WriteString(titleStyle.Render("Data") + "\n")
	fmt.Fprintf(&data, "%s %s\n", labelStyle.Render("Store:"), m.location)
	fmt.Fprintf(&data, "%s %.1f KB (%d characters)\n", labelStyle.Render("Saved size:"), m.storage.KB(), m.storage.Characters)
	fmt.Fprintf(&data, "%s %d trip(s), %d custom module(s), %d checklist(s)\n", labelStyle.Render("Contents:"),
		m.storage.TripHistory, m.storage.CustomModules, m.storage.PackingData)
	data.WriteString(descStyle.Render("x export json · p export pdf · i import · c clear"))

	return lipgloss.JoinVertical(lipgloss.Left, b.String(), sectionStyle.Render(data.String()))
}
