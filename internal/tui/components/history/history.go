// Package history lists saved trip snapshots.
package history

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/smartpack/internal/constants"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/trip"
)

type DuplicateTripMsg struct {
	Index int
}

type DeleteSnapshotMsg struct {
	Index int
}

type SaveCurrentMsg struct{}

type Item struct {
	Index    int
	Snapshot models.TripSnapshot
}

func (i Item) Title() string {
	if i.Snapshot.TripName == "" {
		return "Untitled trip"
	}
	return i.Snapshot.TripName
}

func (i Item) Description() string {
	p := trip.CalculateProgress(models.TripState{
		SelectedModules: i.Snapshot.SelectedModules,
		PackingData:     i.Snapshot.PackingData,
	})
	return fmt.Sprintf("%d day(s) | %d module(s) | %d%% packed | %s",
		i.Snapshot.TripDays, len(i.Snapshot.SelectedModules), p.Percentage, formatDate(i.Snapshot.Date))
}

func (i Item) FilterValue() string { return i.Snapshot.TripName }

func formatDate(raw string) string {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return raw
	}
	return t.Local().Format("Jan 2, 2006 15:04")
}

type KeyMap struct {
	Use    key.Binding
	Delete key.Binding
	Save   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Use: key.NewBinding(
			key.WithKeys("u", "enter"),
			key.WithHelp("u", "use as new trip"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save current trip"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(history []models.TripSnapshot, width, height int) Model {
	l := list.New(items(history), list.NewDefaultDelegate(), width, height)
	l.Title = "History"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Use, keys.Delete, keys.Save}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Use, keys.Delete, keys.Save}
	}

	return Model{list: l, keys: keys}
}

func items(history []models.TripSnapshot) []list.Item {
	out := make([]list.Item, len(history))
	for i, s := range history {
		out[i] = Item{Index: i, Snapshot: s}
	}
	return out
}

func (m *Model) SetHistory(history []models.TripSnapshot) {
	m.list.SetItems(items(history))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Keys() KeyMap {
	return m.keys
}

// Filtering reports whether the filter input is capturing keys.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() {
		switch {
		case key.Matches(keyMsg, m.keys.Save):
			return m, func() tea.Msg { return SaveCurrentMsg{} }
		case key.Matches(keyMsg, m.keys.Use):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, confirm(
					fmt.Sprintf("Replace the current trip with a copy of %q?", i.Title()),
					DuplicateTripMsg{Index: i.Index},
				)
			}
		case key.Matches(keyMsg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, confirm(
					fmt.Sprintf("Delete %q from history?", i.Title()),
					DeleteSnapshotMsg{Index: i.Index},
				)
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
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
	if len(m.list.Items()) == 0 && !m.Filtering() {
		return "\n  No saved trips yet.\n  Press 's' to save the current trip."
	}
	return m.list.View()
}
