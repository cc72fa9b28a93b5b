// Package modules manages the merged catalog: creating and deleting custom
// modules and editing module templates.
package modules

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smartpack/internal/catalog"
	"github.com/julianstephens/smartpack/internal/constants"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/tui/components/cursor"
)

type CreateModuleMsg struct{}

type DeleteModuleMsg struct {
	Key string
}

type ResetModuleMsg struct {
	Key string
}

type AddTemplateItemMsg struct {
	Key string
}

type EditTemplateItemMsg struct {
	Key   string
	Index int
	Name  string
}

type RemoveTemplateItemMsg struct {
	Key   string
	Index int
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Back   key.Binding
	New    key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Reset  key.Binding
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
		Open: key.NewBinding(
			key.WithKeys("enter", "right"),
			key.WithHelp("enter", "edit items"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "left"),
			key.WithHelp("esc", "back"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new module"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add item"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "rename item"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset to built-in"),
		),
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(lipgloss.Color("205"))
)

type Model struct {
	state     models.TripState
	keys      []string
	modules   map[string]models.PackingModule
	list      cursor.Cursor
	items     cursor.Cursor
	itemFocus bool
	km        KeyMap
	width     int
	height    int
}

func New(state models.TripState, width, height int) Model {
	m := Model{km: DefaultKeyMap(), width: width, height: height}
	m.SetState(state)
	return m
}

func (m *Model) SetState(state models.TripState) {
	m.state = state
	m.keys = catalog.Keys(state.CustomModules)
	m.modules = catalog.GetAll(state.CustomModules)
	m.list.SetLen(len(m.keys))
	m.syncItems()
}

func (m *Model) syncItems() {
	k, ok := m.Selected()
	if !ok {
		m.items.SetLen(0)
		m.itemFocus = false
		return
	}
	m.items.SetLen(len(m.modules[k].Items))
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Keys() KeyMap {
	return m.km
}

// Editing reports whether the item pane has focus.
func (m Model) Editing() bool {
	return m.itemFocus
}

func (m Model) Selected() (string, bool) {
	if !m.list.Valid() {
		return "", false
	}
	return m.keys[m.list.Index], true
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.itemFocus {
		return m.updateItems(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.km.Up):
		m.list.Up()
		m.items = cursor.Cursor{}
		m.syncItems()
		return m, nil
	case key.Matches(keyMsg, m.km.Down):
		m.list.Down()
		m.items = cursor.Cursor{}
		m.syncItems()
		return m, nil
	case key.Matches(keyMsg, m.km.New):
		return m, func() tea.Msg { return CreateModuleMsg{} }
	}

	k, ok := m.Selected()
	if !ok {
		return m, nil
	}
	mod := m.modules[k]

	switch {
	case key.Matches(keyMsg, m.km.Open):
		m.itemFocus = true
	case key.Matches(keyMsg, m.km.Delete):
		if catalog.IsCustom(k) {
			return m, confirm(
				fmt.Sprintf("Delete custom module %q? Its checklist is removed from the trip.", mod.Name),
				DeleteModuleMsg{Key: k},
			)
		}
	case key.Matches(keyMsg, m.km.Reset):
		if _, overridden := m.state.CustomModules[k]; overridden && !catalog.IsCustom(k) {
			return m, confirm(
				fmt.Sprintf("Reset %q to its built-in item list?", mod.Name),
				ResetModuleMsg{Key: k},
			)
		}
	}
	return m, nil
}

func (m Model) updateItems(keyMsg tea.KeyMsg) (Model, tea.Cmd) {
	k, _ := m.Selected()
	items := m.modules[k].Items

	switch {
	case key.Matches(keyMsg, m.km.Back):
		m.itemFocus = false
	case key.Matches(keyMsg, m.km.Up):
		m.items.Up()
	case key.Matches(keyMsg, m.km.Down):
		m.items.Down()
	case key.Matches(keyMsg, m.km.Add):
		return m, func() tea.Msg { return AddTemplateItemMsg{Key: k} }
	case key.Matches(keyMsg, m.km.Edit):
		if m.items.Valid() {
			i := m.items.Index
			return m, func() tea.Msg { return EditTemplateItemMsg{Key: k, Index: i, Name: items[i]} }
		}
	case key.Matches(keyMsg, m.km.Delete):
		if m.items.Valid() {
			i := m.items.Index
			return m, confirm(
				fmt.Sprintf("Remove %q from the %s template?", items[i], m.modules[k].Name),
				RemoveTemplateItemMsg{Key: k, Index: i},
			)
		}
	}
	return m, nil
}

func confirm(message string, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return constants.ConfirmationMsg{
			Message: message,
			Action: func() tea.Cmd {
				return func() tea.Msg { return msg }
			},
		}
	}
}

func (m Model) View() string {
	rows := m.height - 6
	half := m.width/2 - 2
	if half < 20 {
		half = 20
	}

	var left strings.Builder
	left.WriteString(titleStyle.Render("Modules") + "\n")
	start, end := m.list.Window(rows)
	for i := start; i < end; i++ {
		k := m.keys[i]
		mod := m.modules[k]
		pointer := "  "
		if i == m.list.Index {
			pointer = cursorStyle.Render("› ")
		}
		tag := ""
		switch {
		case catalog.IsCustom(k):
			tag = mutedStyle.Render(" custom")
		case hasOverride(m.state, k):
			tag = mutedStyle.Render(" edited")
		}
		fmt.Fprintf(&left, "%s%s %s%s\n", pointer, catalog.IconGlyph(mod.Icon), mod.Name, tag)
	}

	var right strings.Builder
	if k, ok := m.Selected(); ok {
		mod := m.modules[k]
		right.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d items)", mod.Name, len(mod.Items))) + "\n")
		if len(mod.Items) == 0 {
			right.WriteString(mutedStyle.Render("No items. Press enter, then 'a' to add one.") + "\n")
		}
		start, end := m.items.Window(rows)
		for i := start; i < end; i++ {
			pointer := "  "
			if m.itemFocus && i == m.items.Index {
				pointer = cursorStyle.Render("› ")
			}
			right.WriteString(pointer + mod.Items[i] + "\n")
		}
	}

	lp, rp := paneStyle, paneStyle
	if m.itemFocus {
		rp = focusedPaneStyle
	} else {
		lp = focusedPaneStyle
	}
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		lp.Width(half).Render(left.String()),
		rp.Width(half).Render(right.String()),
	)

	stats := catalog.Stats(m.state.CustomModules)
	footer := mutedStyle.Render(fmt.Sprintf("%d modules (%d built-in, %d custom), %d template items",
		stats.Total, stats.Default, stats.Custom, stats.TotalItems))
	return lipgloss.JoinVertical(lipgloss.Left, panes, footer)
}

func hasOverride(s models.TripState, k string) bool {
	_, ok := s.CustomModules[k]
	return ok
}
