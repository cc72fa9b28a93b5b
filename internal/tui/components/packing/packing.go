// Package packing renders the checklists of the selected modules with an
// overall progress bar.
package packing

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smartpack/internal/catalog"
	"github.com/julianstephens/smartpack/internal/constants"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/trip"
	"github.com/julianstephens/smartpack/internal/tui/components/cursor"
)

type ToggleItemMsg struct {
	Key   string
	Index int
}

type AddItemMsg struct {
	Key string
}

type EditItemMsg struct {
	Key   string
	Index int
	Name  string
}

type DeleteItemMsg struct {
	Key   string
	Index int
}

type SaveTripMsg struct{}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Save   key.Binding
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
			key.WithHelp("space", "check"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add item"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "rename"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete custom item"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save to history"),
		),
	}
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	customStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// row is either a module header (index -1) or an item of that module.
type row struct {
	key   string
	index int
}

type Model struct {
	state  models.TripState
	rows   []row
	cursor cursor.Cursor
	bar    progress.Model
	km     KeyMap
	width  int
	height int
}

func New(state models.TripState, width, height int) Model {
	m := Model{
		bar:    progress.New(progress.WithDefaultGradient()),
		km:     DefaultKeyMap(),
		width:  width,
		height: height,
	}
	m.SetState(state)
	return m
}

// SetState rebuilds the rows. Selected keys missing from both the catalog and
// the packing data are skipped.
func (m *Model) SetState(state models.TripState) {
	m.state = state
	m.rows = m.rows[:0]
	for _, k := range state.SelectedModules {
		_, inCatalog := catalog.Get(k, state.CustomModules)
		items, hasData := state.PackingData[k]
		if !inCatalog && !hasData {
			continue
		}
		m.rows = append(m.rows, row{key: k, index: -1})
		for i := range items {
			m.rows = append(m.rows, row{key: k, index: i})
		}
	}
	m.cursor.SetLen(len(m.rows))
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.bar.Width = width - 12
	if m.bar.Width < 10 {
		m.bar.Width = 10
	}
}

func (m Model) Keys() KeyMap {
	return m.km
}

func (m Model) current() (row, bool) {
	if !m.cursor.Valid() {
		return row{}, false
	}
	return m.rows[m.cursor.Index], true
}

func (m Model) item(r row) (models.PackingItem, bool) {
	items := m.state.PackingData[r.key]
	if r.index < 0 || r.index >= len(items) {
		return models.PackingItem{}, false
	}
	return items[r.index], true
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
		return m, nil
	case key.Matches(keyMsg, m.km.Down):
		m.cursor.Down()
		return m, nil
	case key.Matches(keyMsg, m.km.Save):
		return m, func() tea.Msg { return SaveTripMsg{} }
	}

	r, ok := m.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.km.Toggle):
		if r.index >= 0 {
			return m, func() tea.Msg { return ToggleItemMsg{Key: r.key, Index: r.index} }
		}
	case key.Matches(keyMsg, m.km.Add):
		return m, func() tea.Msg { return AddItemMsg{Key: r.key} }
	case key.Matches(keyMsg, m.km.Edit):
		if it, ok := m.item(r); ok {
			return m, func() tea.Msg { return EditItemMsg{Key: r.key, Index: r.index, Name: it.Name} }
		}
	case key.Matches(keyMsg, m.km.Delete):
		if it, ok := m.item(r); ok && it.Custom {
			return m, func() tea.Msg {
				return constants.ConfirmationMsg{
					Message: fmt.Sprintf("Delete %q from this trip?", it.Name),
					Action: func() tea.Cmd {
						return func() tea.Msg { return DeleteItemMsg{Key: r.key, Index: r.index} }
					},
				}
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	p := trip.CalculateProgress(m.state)
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %d/%d packed\n", m.bar.ViewAs(float64(p.Percentage)/100), p.CheckedItems, p.TotalItems)
	if !m.state.Settings.Compact {
		b.WriteString("\n")
	}

	if len(m.rows) == 0 {
		b.WriteString(emptyStyle.Render("No modules selected. Pick some on the Setup tab."))
		return b.String()
	}

	start, end := m.cursor.Window(m.height - 3)
	for i := start; i < end; i++ {
		r := m.rows[i]
		pointer := "  "
		if i == m.cursor.Index {
			pointer = cursorStyle.Render("› ")
		}
		if r.index < 0 {
			b.WriteString(pointer + m.header(r.key) + "\n")
			continue
		}
		it, _ := m.item(r)
		box := "[ ]"
		name := it.Name
		if it.Checked {
			box = "[✓]"
			name = checkedStyle.Render(name)
		}
		if it.Custom {
			name += customStyle.Render(" *")
		}
		fmt.Fprintf(&b, "%s  %s %s\n", pointer, box, name)
	}
	return b.String()
}

func (m Model) header(k string) string {
	name, icon := k, ""
	if mod, ok := catalog.Get(k, m.state.CustomModules); ok {
		name, icon = mod.Name, catalog.IconGlyph(mod.Icon)+" "
	}
	mp := trip.ModuleProgress(m.state, k)
	return headerStyle.Render(fmt.Sprintf("%s%s (%d/%d)", icon, name, mp.CheckedItems, mp.TotalItems))
}
