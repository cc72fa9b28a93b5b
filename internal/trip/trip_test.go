package trip

import (
	"fmt"
	"testing"
	"time"

	apperrors "github.com/julianstephens/smartpack/internal/errors"
	"github.com/julianstephens/smartpack/internal/models"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func selectEssentials(t *testing.T) models.TripState {
	t.Helper()
	s := ToggleModule(models.DefaultTripState(), "essentials")
	if len(s.PackingData["essentials"]) != 5 {
		t.Fatalf("essentials seeded with %d items, want 5", len(s.PackingData["essentials"]))
	}
	return s
}

func TestSetTripDaysClamps(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-10, 1},
		{0, 1},
		{1, 1},
		{14, 14},
		{365, 365},
		{366, 365},
		{10000, 365},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			if got := SetTripDays(models.DefaultTripState(), tt.in).TripDays; got != tt.want {
				t.Errorf("SetTripDays(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetTripName(t *testing.T) {
	s := SetTripName(models.DefaultTripState(), "  ")
	if s.TripName != "  " {
		t.Errorf("blank names should be stored while editing, got %q", s.TripName)
	}
}

func TestToggleModuleIsItsOwnInverse(t *testing.T) {
	s := selectEssentials(t)
	s = ToggleItem(s, "essentials", 0)

	off := ToggleModule(s, "essentials")
	if off.IsSelected("essentials") {
		t.Fatal("module still selected after toggle off")
	}
	if len(off.PackingData["essentials"]) != 5 {
		t.Error("packing data must be retained on deselect")
	}

	on := ToggleModule(off, "essentials")
	if !on.IsSelected("essentials") || len(on.SelectedModules) != 1 {
		t.Fatalf("selected = %v", on.SelectedModules)
	}
	if !on.PackingData["essentials"][0].Checked {
		t.Error("re-selecting should reuse prior checked state")
	}
}

func TestToggleModuleDoesNotMutateInput(t *testing.T) {
	base := models.DefaultTripState()
	_ = ToggleModule(base, "beach")
	if len(base.SelectedModules) != 0 || len(base.PackingData) != 0 {
		t.Error("input state was mutated")
	}
}

func TestToggleModuleUnknownKey(t *testing.T) {
	s := ToggleModule(models.DefaultTripState(), "ghost")
	if !s.IsSelected("ghost") {
		t.Error("unknown key should still be selected")
	}
	if _, ok := s.PackingData["ghost"]; ok {
		t.Error("unknown key should have no packing data")
	}
}

func TestProgressEmptySelection(t *testing.T) {
	s := models.DefaultTripState()
	s.PackingData["essentials"] = []models.PackingItem{{Name: "x", Checked: true}}
	if got := CalculateProgress(s); got != (models.Progress{}) {
		t.Errorf("CalculateProgress() = %+v, want zero", got)
	}
}

func TestProgressScenario(t *testing.T) {
	s := selectEssentials(t)
	s = ToggleItem(s, "essentials", 0)
	s = ToggleItem(s, "essentials", 3)

	want := models.Progress{TotalItems: 5, CheckedItems: 2, Percentage: 40}
	if got := CalculateProgress(s); got != want {
		t.Errorf("CalculateProgress() = %+v, want %+v", got, want)
	}
	if got := ModuleProgress(s, "essentials"); got != want {
		t.Errorf("ModuleProgress() = %+v, want %+v", got, want)
	}
}

func TestProgressAllChecked(t *testing.T) {
	s := selectEssentials(t)
	s = ToggleModule(s, "camping")
	for _, key := range s.SelectedModules {
		for i := range s.PackingData[key] {
			s = ToggleItem(s, key, i)
		}
	}
	p := CalculateProgress(s)
	if p.Percentage != 100 || !IsComplete(p) {
		t.Errorf("CalculateProgress() = %+v, want 100%%", p)
	}
}

func TestProgressIgnoresDeselected(t *testing.T) {
	s := selectEssentials(t)
	s = ToggleModule(s, "beach")
	s = ToggleModule(s, "beach")
	if got := CalculateProgress(s).TotalItems; got != 5 {
		t.Errorf("TotalItems = %d, want 5", got)
	}
}

func TestProgressRounding(t *testing.T) {
	s := models.DefaultTripState()
	s.SelectedModules = []string{"m"}
	s.PackingData["m"] = []models.PackingItem{{Checked: true}, {}, {}}
	if got := CalculateProgress(s).Percentage; got != 33 {
		t.Errorf("Percentage = %d, want 33", got)
	}
	s.PackingData["m"] = []models.PackingItem{{Checked: true}, {Checked: true}, {}}
	if got := CalculateProgress(s).Percentage; got != 67 {
		t.Errorf("Percentage = %d, want 67", got)
	}
}

func TestItemTransitionsIgnoreStaleIndexes(t *testing.T) {
	s := selectEssentials(t)
	for _, idx := range []int{-1, 5, 99} {
		if got := ToggleItem(s, "essentials", idx); CalculateProgress(got).CheckedItems != 0 {
			t.Errorf("ToggleItem(%d) changed state", idx)
		}
	}
	if got := ToggleItem(s, "missing", 0); len(got.PackingData) != 1 {
		t.Error("ToggleItem on missing key changed state")
	}
	if got := EditItem(s, "essentials", 10, "x"); got.PackingData["essentials"][0].Name != "Passport/ID" {
		t.Error("EditItem out of range changed state")
	}
}

func TestAddCustomItem(t *testing.T) {
	s := selectEssentials(t)
	s = AddCustomItem(s, "essentials", "  Snacks ")
	items := s.PackingData["essentials"]
	last := items[len(items)-1]
	if last.Name != "Snacks" || !last.Custom || last.Checked {
		t.Errorf("added item = %+v", last)
	}

	if got := AddCustomItem(s, "essentials", "   "); len(got.PackingData["essentials"]) != 6 {
		t.Error("blank item should be a no-op")
	}

	fresh := AddCustomItem(models.DefaultTripState(), "hike", "Boots")
	if len(fresh.PackingData["hike"]) != 1 {
		t.Error("AddCustomItem should create the list when absent")
	}
}

func TestEditItemKeepsFlags(t *testing.T) {
	s := selectEssentials(t)
	s = ToggleItem(s, "essentials", 1)
	s = EditItem(s, "essentials", 1, " Cards ")
	item := s.PackingData["essentials"][1]
	if item.Name != "Cards" || !item.Checked || item.Custom {
		t.Errorf("edited item = %+v", item)
	}
	if got := EditItem(s, "essentials", 1, " "); got.PackingData["essentials"][1].Name != "Cards" {
		t.Error("blank rename should be a no-op")
	}
}

func TestDeleteItemCustomOnly(t *testing.T) {
	s := selectEssentials(t)
	s = AddCustomItem(s, "essentials", "Snacks")

	kept := DeleteItem(s, "essentials", 0)
	if len(kept.PackingData["essentials"]) != 6 {
		t.Error("default items must not be deleted")
	}

	removed := DeleteItem(s, "essentials", 5)
	if len(removed.PackingData["essentials"]) != 5 {
		t.Errorf("custom item not deleted: %v", removed.PackingData["essentials"])
	}
	if len(s.PackingData["essentials"]) != 6 {
		t.Error("DeleteItem mutated its input")
	}
	if got := DeleteItem(s, "essentials", 42); len(got.PackingData["essentials"]) != 6 {
		t.Error("out of range delete should be a no-op")
	}
}

func TestCreateCustomModule(t *testing.T) {
	s, key, err := CreateCustomModule(models.DefaultTripState(), "Hiking Gear", "fas fa-mountain")
	if err != nil {
		t.Fatalf("CreateCustomModule() error = %v", err)
	}
	if key != "hikinggear" {
		t.Errorf("key = %q", key)
	}
	if s.CustomModules[key].Name != "Hiking Gear" {
		t.Errorf("module = %+v", s.CustomModules[key])
	}

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no alphanumerics", "!!!"},
		{"built-in collision", "Beach"},
		{"custom collision", "hiking   gear"},
		{"too long", "This module name is far too long to be accepted by the app"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _, err := CreateCustomModule(s, tt.in, "")
			if !apperrors.IsValidation(err) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if len(next.CustomModules) != 1 {
				t.Error("state changed on failure")
			}
		})
	}
}

func TestDeleteCustomModule(t *testing.T) {
	s, key, err := CreateCustomModule(models.DefaultTripState(), "Hike", "")
	if err != nil {
		t.Fatal(err)
	}
	s = ToggleModule(s, key)
	s = AddCustomItem(s, key, "Boots")
	s = ToggleModule(s, "beach")

	s = DeleteCustomModule(s, key)
	if _, ok := s.CustomModules[key]; ok {
		t.Error("module still present")
	}
	if s.IsSelected(key) {
		t.Error("module still selected")
	}
	if _, ok := s.PackingData[key]; ok {
		t.Error("packing data still present")
	}
	if !s.IsSelected("beach") {
		t.Error("other selections lost")
	}

	if got := DeleteCustomModule(s, "beach"); !got.IsSelected("beach") {
		t.Error("deleting a built-in should be a no-op")
	}
}

func TestModuleItemEditsPromoteBuiltins(t *testing.T) {
	s, err := AddModuleItem(models.DefaultTripState(), "beach", "Kite")
	if err != nil {
		t.Fatalf("AddModuleItem() error = %v", err)
	}
	override, ok := s.CustomModules["beach"]
	if !ok || len(override.Items) != 9 {
		t.Fatalf("override = %+v", override)
	}

	s, err = UpdateModuleItem(s, "beach", 8, "Big kite")
	if err != nil || s.CustomModules["beach"].Items[8] != "Big kite" {
		t.Fatalf("UpdateModuleItem() = %v, %v", s.CustomModules["beach"].Items, err)
	}

	s, err = RemoveModuleItem(s, "beach", 0)
	if err != nil || len(s.CustomModules["beach"].Items) != 8 {
		t.Fatalf("RemoveModuleItem() = %v, %v", s.CustomModules["beach"].Items, err)
	}

	s = ResetModule(s, "beach")
	if _, ok := s.CustomModules["beach"]; ok {
		t.Error("ResetModule left the override")
	}

	if _, err := RemoveModuleItem(s, "beach", 50); !apperrors.IsIndex(err) {
		t.Errorf("error = %v, want IndexError", err)
	}
	if _, err := AddModuleItem(s, "ghost", "x"); !apperrors.IsNotFound(err) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
	if _, err := UpdateModuleItem(s, "beach", 0, ""); !apperrors.IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}

func TestSaveCurrentTrip(t *testing.T) {
	s := selectEssentials(t)
	if _, err := SaveCurrentTrip(s, testNow); !apperrors.IsValidation(err) {
		t.Fatalf("blank trip name error = %v", err)
	}

	s = SetTripName(s, "Lisbon")
	s, err := SaveCurrentTrip(s, testNow)
	if err != nil {
		t.Fatalf("SaveCurrentTrip() error = %v", err)
	}
	if len(s.TripHistory) != 1 {
		t.Fatalf("history len = %d", len(s.TripHistory))
	}
	snap := s.TripHistory[0]
	if snap.TripName != "Lisbon" || snap.ID == "" || snap.Date != "2025-06-01T12:00:00Z" {
		t.Errorf("snapshot = %+v", snap)
	}

	live := ToggleItem(s, "essentials", 0)
	live = ToggleModule(live, "beach")
	if live.TripHistory[0].PackingData["essentials"][0].Checked {
		t.Error("mutating the live trip changed the snapshot")
	}
	if len(live.TripHistory[0].SelectedModules) != 1 {
		t.Error("snapshot selection shares storage with live trip")
	}
}

func TestHistoryCap(t *testing.T) {
	s := SetTripName(models.DefaultTripState(), "Trip")
	var err error
	for i := 0; i < 51; i++ {
		s = SetTripName(s, fmt.Sprintf("Trip %d", i))
		s, err = SaveCurrentTrip(s, testNow.Add(time.Duration(i)*time.Minute))
		if err != nil {
			t.Fatal(err)
		}
	}
	if len(s.TripHistory) != 50 {
		t.Fatalf("history len = %d, want 50", len(s.TripHistory))
	}
	if s.TripHistory[0].TripName != "Trip 50" {
		t.Errorf("newest = %q", s.TripHistory[0].TripName)
	}
	if s.TripHistory[49].TripName != "Trip 1" {
		t.Errorf("oldest = %q, want Trip 1", s.TripHistory[49].TripName)
	}
}

func TestDuplicateTrip(t *testing.T) {
	s := selectEssentials(t)
	for i := 0; i < 3; i++ {
		s = ToggleItem(s, "essentials", i)
	}
	s = SetTripDays(SetTripName(s, "Rome"), 4)
	s, err := SaveCurrentTrip(s, testNow)
	if err != nil {
		t.Fatal(err)
	}
	s = ToggleModule(SetTripName(s, "Other"), "beach")

	dup, err := DuplicateTrip(s, 0)
	if err != nil {
		t.Fatalf("DuplicateTrip() error = %v", err)
	}
	if dup.TripName != "Rome (Copy)" || dup.TripDays != 4 {
		t.Errorf("dup = %q/%d", dup.TripName, dup.TripDays)
	}
	if len(dup.SelectedModules) != 1 || dup.SelectedModules[0] != "essentials" {
		t.Errorf("selected = %v", dup.SelectedModules)
	}
	for _, item := range dup.PackingData["essentials"] {
		if item.Checked {
			t.Errorf("item %q still checked", item.Name)
		}
	}
	if CalculateProgress(models.TripState{SelectedModules: []string{"essentials"}, PackingData: dup.TripHistory[0].PackingData}).CheckedItems != 3 {
		t.Error("duplicate changed the snapshot")
	}

	if _, err := DuplicateTrip(s, 3); !apperrors.IsIndex(err) {
		t.Errorf("error = %v, want IndexError", err)
	}
}

func TestDeleteTripFromHistory(t *testing.T) {
	s := SetTripName(models.DefaultTripState(), "A")
	s, _ = SaveCurrentTrip(s, testNow)
	s = SetTripName(s, "B")
	s, _ = SaveCurrentTrip(s, testNow)

	next, err := DeleteTripFromHistory(s, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(next.TripHistory) != 1 || next.TripHistory[0].TripName != "A" {
		t.Errorf("history = %+v", next.TripHistory)
	}
	if len(s.TripHistory) != 2 {
		t.Error("input history mutated")
	}
	if _, err := DeleteTripFromHistory(s, -1); !apperrors.IsIndex(err) {
		t.Errorf("error = %v, want IndexError", err)
	}

	idx, ok := FindSnapshot(s, s.TripHistory[1].ID)
	if !ok || idx != 1 {
		t.Errorf("FindSnapshot() = %d, %v", idx, ok)
	}
	if _, ok := FindSnapshot(s, ""); ok {
		t.Error("empty id should not match")
	}
}

func TestUpdateSetting(t *testing.T) {
	s, err := UpdateSetting(models.DefaultTripState(), "darkMode", true)
	if err != nil || !s.Settings.DarkMode {
		t.Fatalf("UpdateSetting() = %+v, %v", s.Settings, err)
	}
	if _, err := UpdateSetting(s, "theme", true); !apperrors.IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}
