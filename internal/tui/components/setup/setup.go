// Package setup renders the trip details and the module picker.
package setup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smartpack/internal/catalog"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/tui/components/cursor"
)

type ToggleModuleMsg struct {
	Key string
}

type EditTripMsg struct{}

type SetDaysMsg struct {
	Days int
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Edit   key.Binding
	More   key.Binding
	Less   key.Binding
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
			key.WithHelp("space", "select module"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit trip"),
		),
		More: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add day"),
		),
		Less: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "remove day"),
		),
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(12)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	tipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)
)

type Model struct {
	state  models.TripState
	keys   []string
	cursor cursor.Cursor
	km     KeyMap
	width  int
	height int
}

func New(state models.TripState, width, height int) Model {
	m := Model{km: DefaultKeyMap(), width: width, height: height}
	m.SetState(state)
	return m
}

func (m *Model) SetState(state models.TripState) {
	m.state = state
	m.keys = catalog.Keys(state.CustomModules)
	m.cursor.SetLen(len(m.keys))
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Keys() KeyMap {
	return m.km
}

// Selected returns the module key under the cursor.
func (m Model) Selected() (string, bool) {
	if !m.cursor.Valid() {
		return "", false
	}
	return m.keys[m.cursor.Index], true
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
	case key.Matches(keyMsg, m.km.Up):
		m.cursor.Up()
	case key.Matches(keyMsg, m.km.Down):
		m.cursor.Down()
	case key.Matches(keyMsg, m.km.Toggle):
		if k, ok := m.Selected(); ok {
			return m, func() tea.Msg { return ToggleModuleMsg{Key: k} }
		}
	case key.Matches(keyMsg, m.km.Edit):
		return m, func() tea.Msg { return EditTripMsg{} }
	case key.Matches(keyMsg, m.km.More):
		days := m.state.TripDays + 1
		return m, func() tea.Msg { return SetDaysMsg{Days: days} }
	case key.Matches(keyMsg, m.km.Less):
		days := m.state.TripDays - 1
		return m, func() tea.Msg { return SetDaysMsg{Days: days} }
	}
	return m, nil
}

func (m Model) View() string {
	compact := m.state.Settings.Compact
	var b strings.Builder

	name := m.state.TripName
	if strings.TrimSpace(name) == "" {
		name = "(unnamed trip)"
	}
	b.WriteString(titleStyle.Render("Trip"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Name:"), name)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Days:"), m.state.TripDays)
	if !compact {
		b.WriteString("\n")
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("Modules (%d selected)", len(m.state.SelectedModules))))
	b.WriteString("\n")

	tips := m.tips()
	rows := m.height - 6 - len(tips)
	if len(tips) > 0 {
		rows -= 2
	}
	all := catalog.GetAll(m.state.CustomModules)
	start, end := m.cursor.Window(rows)
	for i := start; i < end; i++ {
		k := m.keys[i]
		mod := all[k]

		pointer := "  "
		if i == m.cursor.Index {
			pointer = cursorStyle.Render("› ")
		}
		box := "[ ]"
		label := fmt.Sprintf("%s %s", catalog.IconGlyph(mod.Icon), mod.Name)
		if m.state.IsSelected(k) {
			box = "[x]"
			label = selectedStyle.Render(label)
		}
		suffix := fmt.Sprintf(" (%d items)", len(mod.Items))
		if catalog.IsCustom(k) {
			suffix += " custom"
		}
		fmt.Fprintf(&b, "%s%s %s%s\n", pointer, box, label, suffix)
	}

	if len(tips) > 0 {
		if !compact {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render("Suggestions"))
		b.WriteString("\n")
		for _, tip := range tips {
			b.WriteString(tipStyle.Render("💡 " + tip))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) tips() []string {
	if !m.state.Settings.Suggestions {
		return nil
	}
	return catalog.AllSuggestions(m.state.TripName, m.state.TripDays, m.state.SelectedModules)
}
