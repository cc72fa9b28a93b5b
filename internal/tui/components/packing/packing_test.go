package packing

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/smartpack/internal/constants"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/trip"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func packedState() models.TripState {
	s := trip.ToggleModule(models.DefaultTripState(), "essentials")
	s = trip.AddCustomItem(s, "essentials", "Snacks")
	return s
}

func TestRowsSkipDanglingSelections(t *testing.T) {
	s := packedState()
	s.SelectedModules = append(s.SelectedModules, "gone")
	m := New(s, 80, 40)

	want := 1 + len(s.PackingData["essentials"])
	if len(m.rows) != want {
		t.Errorf("rows = %d, want %d", len(m.rows), want)
	}
}

func TestToggleOnItemRow(t *testing.T) {
	m := New(packedState(), 80, 40)

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace}); cmd != nil {
		t.Error("toggle on a header row should do nothing")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	msg, ok := cmd().(ToggleItemMsg)
	if !ok || msg.Key != "essentials" || msg.Index != 0 {
		t.Errorf("got %#v", cmd())
	}
}

func TestAddFromHeader(t *testing.T) {
	m := New(packedState(), 80, 40)
	_, cmd := m.Update(runes("a"))
	if msg, ok := cmd().(AddItemMsg); !ok || msg.Key != "essentials" {
		t.Errorf("got %#v", cmd())
	}
}

func TestDeleteOnlyCustomItems(t *testing.T) {
	s := packedState()
	m := New(s, 80, 40)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if _, cmd := m.Update(runes("d")); cmd != nil {
		t.Error("delete offered for a default item")
	}

	last := len(s.PackingData["essentials"]) - 1
	for i := 0; i < last; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	_, cmd := m.Update(runes("d"))
	if cmd == nil {
		t.Fatal("delete not offered for a custom item")
	}
	confirm, ok := cmd().(constants.ConfirmationMsg)
	if !ok {
		t.Fatalf("got %T, want ConfirmationMsg", cmd())
	}
	msg, ok := confirm.Action()().(DeleteItemMsg)
	if !ok || msg.Index != last {
		t.Errorf("confirmed action produced %#v", confirm.Action()())
	}
}

func TestEditCarriesCurrentName(t *testing.T) {
	m := New(packedState(), 80, 40)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(runes("e"))
	msg, ok := cmd().(EditItemMsg)
	if !ok || msg.Name != "Passport/ID" {
		t.Errorf("got %#v", cmd())
	}
}

func TestViewShowsProgress(t *testing.T) {
	s := trip.ToggleItem(packedState(), "essentials", 0)
	m := New(s, 80, 40)
	m.SetSize(80, 40)

	view := m.View()
	p := trip.CalculateProgress(s)
	if !strings.Contains(view, fmt.Sprintf("1/%d packed", p.TotalItems)) {
		t.Errorf("view missing progress:\n%s", view)
	}
	if !strings.Contains(view, "[✓]") {
		t.Error("view missing checked item")
	}
}

func TestViewEmpty(t *testing.T) {
	m := New(models.DefaultTripState(), 80, 40)
	if !strings.Contains(m.View(), "No modules selected") {
		t.Error("empty view missing hint")
	}
}
