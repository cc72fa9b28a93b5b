package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/smartpack/internal/constants"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/persistence"
	"github.com/julianstephens/smartpack/internal/storage"
	"github.com/julianstephens/smartpack/internal/storage/memory"
	"github.com/julianstephens/smartpack/internal/trip"
	"github.com/julianstephens/smartpack/internal/tui/components/history"
	"github.com/julianstephens/smartpack/internal/tui/components/packing"
	"github.com/julianstephens/smartpack/internal/tui/components/settings"
	"github.com/julianstephens/smartpack/internal/tui/components/setup"
)

type fakeNotifier struct {
	calls []string
}

func (f *fakeNotifier) PackingComplete(_ context.Context, tripName string) error {
	f.calls = append(f.calls, tripName)
	return nil
}

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func setupTestModel(t *testing.T, initial *models.TripState) (Model, *persistence.Gateway, *fakeNotifier) {
	t.Helper()
	gateway := persistence.New(memory.New())
	if initial != nil {
		if !gateway.Save(context.Background(), *initial) {
			t.Fatal("failed to seed store")
		}
	}
	notifier := &fakeNotifier{}
	m := New(Options{
		Gateway:       gateway,
		Notifier:      notifier,
		ExportDir:     t.TempDir(),
		AutosaveDelay: time.Hour,
		Now:           func() time.Time { return fixedNow },
	})
	t.Cleanup(m.autosaver.Stop)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, gateway, notifier
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func stored(t *testing.T, gateway *persistence.Gateway) models.TripState {
	t.Helper()
	return gateway.Load(context.Background())
}

func TestNewLoadsSavedTrip(t *testing.T) {
	s := models.DefaultTripState()
	s.TripName = "Lisbon"
	s.TripDays = 4
	m, _, _ := setupTestModel(t, &s)

	if m.Trip().TripName != "Lisbon" || m.Trip().TripDays != 4 {
		t.Errorf("got %+v", m.Trip())
	}
	if m.state != constants.StateSetup {
		t.Errorf("expected setup tab, got %d", m.state)
	}
}

func TestTabNavigation(t *testing.T) {
	m, _, _ := setupTestModel(t, nil)

	m = update(t, m, keyPress("tab"))
	if m.state != constants.StatePacking {
		t.Errorf("tab: got %d", m.state)
	}
	m = update(t, m, keyPress("shift+tab"))
	m = update(t, m, keyPress("shift+tab"))
	if m.state != constants.StateSettings {
		t.Errorf("shift+tab wrap: got %d", m.state)
	}
	m = update(t, m, keyPress("3"))
	if m.state != constants.StateModules {
		t.Errorf("jump: got %d", m.state)
	}
}

func TestTransitionsScheduleAutosave(t *testing.T) {
	m, gateway, _ := setupTestModel(t, nil)

	m = update(t, m, setup.ToggleModuleMsg{Key: "beach"})
	if !m.Trip().IsSelected("beach") {
		t.Fatal("module not selected")
	}
	if !m.autosaver.Pending() {
		t.Fatal("expected a pending autosave")
	}
	if _, err := gateway.Store().Get(context.Background(), constants.StorageKey); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("nothing should be written before the delay, got %v", err)
	}

	m.autosaver.Flush()
	if !stored(t, gateway).IsSelected("beach") {
		t.Error("flushed state missing the selection")
	}
}

func TestQuitFlushesPendingSave(t *testing.T) {
	m, gateway, _ := setupTestModel(t, nil)
	m = update(t, m, setup.SetDaysMsg{Days: 9})

	next, cmd := m.Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !next.(Model).quitting {
		t.Error("model not marked as quitting")
	}
	if got := stored(t, gateway).TripDays; got != 9 {
		t.Errorf("stored days = %d, want 9", got)
	}
}

func TestNotificationOnCompletion(t *testing.T) {
	s := trip.ToggleModule(models.DefaultTripState(), "essentials")
	s.TripName = "Lisbon"
	items := s.PackingData["essentials"]
	for i := 0; i < len(items)-1; i++ {
		items[i].Checked = true
	}
	last := len(items) - 1

	t.Run("notifies when the last item is checked", func(t *testing.T) {
		m, _, notifier := setupTestModel(t, &s)
		next, cmd := m.Update(packing.ToggleItemMsg{Key: "essentials", Index: last})
		if cmd == nil {
			t.Fatal("expected a notification command")
		}
		if _, ok := cmd().(notifiedMsg); !ok {
			t.Fatal("expected notifiedMsg")
		}
		if len(notifier.calls) != 1 || notifier.calls[0] != "Lisbon" {
			t.Errorf("calls = %v", notifier.calls)
		}
		if !next.(Model).wasComplete {
			t.Error("completion not recorded")
		}
	})

	t.Run("no notification without a transition to complete", func(t *testing.T) {
		m, _, _ := setupTestModel(t, &s)
		_, cmd := m.Update(packing.ToggleItemMsg{Key: "essentials", Index: 0})
		if cmd != nil {
			t.Error("unexpected command")
		}
	})

	t.Run("respects the notifications setting", func(t *testing.T) {
		quiet := s
		quiet.Settings.Notifications = false
		m, _, notifier := setupTestModel(t, &quiet)
		_, cmd := m.Update(packing.ToggleItemMsg{Key: "essentials", Index: last})
		if cmd != nil {
			cmd()
		}
		if len(notifier.calls) != 0 {
			t.Errorf("calls = %v", notifier.calls)
		}
	})
}

func TestSaveAndDuplicateTrip(t *testing.T) {
	s := trip.ToggleModule(models.DefaultTripState(), "beach")
	s.TripName = "Crete"
	s.PackingData["beach"][0].Checked = true
	m, _, _ := setupTestModel(t, &s)

	m = update(t, m, history.SaveCurrentMsg{})
	if len(m.Trip().TripHistory) != 1 {
		t.Fatalf("history = %d entries", len(m.Trip().TripHistory))
	}

	m = update(t, m, history.DuplicateTripMsg{Index: 0})
	if m.Trip().TripName != "Crete"+constants.CopySuffix {
		t.Errorf("name = %q", m.Trip().TripName)
	}
	if m.Trip().PackingData["beach"][0].Checked {
		t.Error("duplicated items should be unchecked")
	}
	if m.state != constants.StatePacking {
		t.Errorf("expected packing tab, got %d", m.state)
	}
}

func TestSaveWithoutNameShowsError(t *testing.T) {
	m, _, _ := setupTestModel(t, nil)
	m = update(t, m, packing.SaveTripMsg{})
	if !m.statusErr {
		t.Error("expected an error status")
	}
	if len(m.Trip().TripHistory) != 0 {
		t.Error("history should be unchanged")
	}
}

func TestFormOpensAndEscCancels(t *testing.T) {
	s := models.DefaultTripState()
	s.TripName = "Oslo"
	m, _, _ := setupTestModel(t, &s)

	m = update(t, m, setup.EditTripMsg{})
	if m.state != constants.StateForm {
		t.Fatalf("expected form state, got %d", m.state)
	}
	if m.formValues.Name != "Oslo" || m.formValues.Days != "1" {
		t.Errorf("form not prefilled: %+v", m.formValues)
	}

	m = update(t, m, keyPress("q"))
	if m.quitting {
		t.Fatal("q must not quit while a form is open")
	}

	m = update(t, m, keyPress("esc"))
	if m.state != constants.StateSetup {
		t.Errorf("esc should return to setup, got %d", m.state)
	}
	if m.Trip().TripName != "Oslo" {
		t.Error("cancelled form changed the trip")
	}
}

func TestConfirmationEscDropsAction(t *testing.T) {
	m, _, _ := setupTestModel(t, nil)
	m = update(t, m, keyPress("5"))

	called := false
	m = update(t, m, constants.ConfirmationMsg{
		Message: "Sure?",
		Action: func() tea.Cmd {
			called = true
			return nil
		},
	})
	if m.state != constants.StateConfirmation {
		t.Fatalf("expected confirmation state, got %d", m.state)
	}

	m = update(t, m, keyPress("esc"))
	if m.state != constants.StateSettings {
		t.Errorf("expected settings tab, got %d", m.state)
	}
	if called || m.pendingAction != nil {
		t.Error("action should be dropped")
	}
}

func TestClear(t *testing.T) {
	s := trip.ToggleModule(models.DefaultTripState(), "camping")
	s.TripName = "Yosemite"
	m, gateway, _ := setupTestModel(t, &s)

	m = update(t, m, setup.SetDaysMsg{Days: 5})
	m = update(t, m, settings.ClearMsg{})

	if m.Trip().TripName != "" || len(m.Trip().SelectedModules) != 0 {
		t.Errorf("trip not reset: %+v", m.Trip())
	}
	if m.autosaver.Pending() {
		t.Error("pending autosave should be cancelled")
	}
	if _, err := gateway.Store().Get(context.Background(), constants.StorageKey); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("store should be empty, got %v", err)
	}
}

func TestImportReplacesTrip(t *testing.T) {
	m, _, _ := setupTestModel(t, nil)

	src := trip.ToggleModule(models.DefaultTripState(), "business")
	src.TripName = "Berlin"
	path, err := persistence.ExportToFile(t.TempDir(), src, fixedNow)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	msg := importCmd(path)()
	m = update(t, m, msg)
	if m.Trip().TripName != "Berlin" || !m.Trip().IsSelected("business") {
		t.Errorf("got %+v", m.Trip())
	}
	if m.statusErr {
		t.Errorf("unexpected error status %q", m.status)
	}

	m = update(t, m, importCmd(path+".missing")())
	if !m.statusErr {
		t.Error("expected error status for a missing file")
	}
	if m.Trip().TripName != "Berlin" {
		t.Error("failed import must leave the trip untouched")
	}
}

func TestExport(t *testing.T) {
	s := models.DefaultTripState()
	s.TripName = "Rome"
	m, _, _ := setupTestModel(t, &s)

	for _, pdf := range []bool{false, true} {
		_, cmd := m.Update(settings.ExportMsg{PDF: pdf})
		res, ok := cmd().(exportedMsg)
		if !ok || res.err != nil {
			t.Fatalf("pdf=%v: got %+v", pdf, res)
		}
		m = update(t, m, res)
		if m.statusErr {
			t.Errorf("pdf=%v: status %q", pdf, m.status)
		}
	}
}

func TestDisablingAutosaveIsPersisted(t *testing.T) {
	m, gateway, _ := setupTestModel(t, nil)

	next, cmd := m.Update(settings.ToggleSettingMsg{Name: constants.SettingAutosave, Value: false})
	m = next.(Model)
	if m.Trip().Settings.Autosave {
		t.Fatal("setting not applied")
	}
	runAll(cmd)

	if stored(t, gateway).Settings.Autosave {
		t.Error("autosave=false should be written immediately")
	}

	m = update(t, m, setup.SetDaysMsg{Days: 3})
	if m.autosaver.Pending() {
		t.Error("nothing should be scheduled with autosave off")
	}
}

func TestViewRendersTabs(t *testing.T) {
	m, _, _ := setupTestModel(t, nil)
	view := m.View()
	for _, title := range constants.TabTitles {
		if !strings.Contains(view, title) {
			t.Errorf("view missing tab %q", title)
		}
	}
}

// runAll executes cmd and any commands batched inside it.
func runAll(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			runAll(c)
		}
	}
}
