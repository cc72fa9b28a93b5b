package persistence

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	apperrors "github.com/julianstephens/smartpack/internal/errors"
	"github.com/julianstephens/smartpack/internal/models"
)

var exportNow = time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

func TestExportFilename(t *testing.T) {
	s := models.DefaultTripState()
	if got := ExportFilename(s, exportNow); got != "packing-list-trip-1741064767000.json" {
		t.Errorf("ExportFilename() = %q", got)
	}
	s.TripName = "Rome/Naples"
	if got := ExportFilename(s, exportNow); got != "packing-list-Rome-Naples-1741064767000.json" {
		t.Errorf("ExportFilename() = %q", got)
	}
	if got := PDFFilename(s, exportNow); !strings.HasSuffix(got, "1741064767000.pdf") {
		t.Errorf("PDFFilename() = %q", got)
	}
}

func TestExportDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, reachableState(t), exportNow); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"tripName\": \"Lisbon\"") {
		t.Errorf("expected two-space indented output, got:\n%s", buf.String())
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc["version"] != "1.0.0" {
		t.Errorf("version = %v", doc["version"])
	}
	if doc["exportDate"] != "2025-03-04T05:06:07Z" {
		t.Errorf("exportDate = %v", doc["exportDate"])
	}
	for _, field := range []string{"tripName", "tripDays", "selectedModules", "packingData", "customModules", "tripHistory", "settings"} {
		if _, ok := doc[field]; !ok {
			t.Errorf("missing field %q", field)
		}
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestExportErrorWrapping(t *testing.T) {
	err := Export(brokenWriter{}, models.DefaultTripState(), exportNow)
	if !apperrors.IsExport(err) {
		t.Errorf("Export() error = %v, want ExportError", err)
	}
}

func TestExportImportFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	state := reachableState(t)

	path, err := ExportToFile(dir, state, exportNow)
	if err != nil {
		t.Fatalf("ExportToFile() error = %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path = %q", path)
	}

	got, err := ImportFromFile(path)
	if err != nil {
		t.Fatalf("ImportFromFile() error = %v", err)
	}
	if !reflect.DeepEqual(got, state) {
		t.Errorf("import(export(s)) mismatch\n got: %+v\nwant: %+v", got, state)
	}
}

func TestImportRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		reason string
	}{
		{"not json", "{nope", ReasonInvalidJSON},
		{"array", "[]", ReasonNotObject},
		{"null", "null", ReasonNotObject},
		{"missing tripName", `{"selectedModules":[],"packingData":{}}`, ReasonMissingTripName},
		{"numeric tripName", `{"tripName":5,"selectedModules":[],"packingData":{}}`, ReasonMissingTripName},
		{"selectedModules object", `{"tripName":"x","selectedModules":{},"packingData":{}}`, ReasonMissingSelectedModules},
		{"missing packingData", `{"tripName":"x","selectedModules":[]}`, ReasonMissingPackingData},
		{"packingData array", `{"tripName":"x","selectedModules":[],"packingData":[]}`, ReasonMissingPackingData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(strings.NewReader(tt.doc))
			var ie *apperrors.ImportError
			if !errors.As(err, &ie) {
				t.Fatalf("Import() error = %v, want ImportError", err)
			}
			if ie.Reason != tt.reason {
				t.Errorf("reason = %q, want %q", ie.Reason, tt.reason)
			}
		})
	}
}

func TestImportMissingFile(t *testing.T) {
	if _, err := ImportFromFile(filepath.Join(t.TempDir(), "none.json")); !apperrors.IsImport(err) {
		t.Errorf("ImportFromFile() error = %v", err)
	}
}

func TestImportCoercion(t *testing.T) {
	doc := `{
		"tripName": "Oslo",
		"tripDays": "not a number",
		"selectedModules": ["essentials", 7, "essentials", "beach"],
		"packingData": {
			"essentials": [{"name":"Passport","checked":true}, {"checked":true}, "junk", {"name":"  "}],
			"beach": "not an array"
		},
		"customModules": {
			"good": {"name":"Good","icon":"fas fa-star","items":["a", 3, "b"]},
			"bad": {"name":"","icon":"x","items":[]}
		},
		"tripHistory": "nope",
		"settings": {"autosave": false, "unknown": true},
		"extra": {"dropped": true},
		"exportDate": "2025-01-01T00:00:00Z",
		"version": "1.0.0"
	}`
	got, err := Import(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if got.TripName != "Oslo" || got.TripDays != 1 {
		t.Errorf("name/days = %q/%d", got.TripName, got.TripDays)
	}
	if !reflect.DeepEqual(got.SelectedModules, []string{"essentials", "beach"}) {
		t.Errorf("selected = %v", got.SelectedModules)
	}
	if len(got.PackingData["essentials"]) != 1 || !got.PackingData["essentials"][0].Checked {
		t.Errorf("essentials = %+v", got.PackingData["essentials"])
	}
	if _, ok := got.PackingData["beach"]; ok {
		t.Error("non-array packing data should be dropped")
	}
	if len(got.CustomModules) != 1 || !reflect.DeepEqual(got.CustomModules["good"].Items, []string{"a", "b"}) {
		t.Errorf("custom = %+v", got.CustomModules)
	}
	if got.TripHistory == nil || len(got.TripHistory) != 0 {
		t.Errorf("history = %+v", got.TripHistory)
	}
	want := models.DefaultSettings()
	want.Autosave = false
	if got.Settings != want {
		t.Errorf("settings = %+v", got.Settings)
	}
}

func TestImportTripDays(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"0", 1},
		{"7", 7},
		{"7.9", 7},
		{"-4", 1},
		{"1000", 365},
		{`"12"`, 12},
		{"null", 1},
		{"true", 1},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			doc := `{"tripName":"x","selectedModules":[],"packingData":{},"tripDays":` + tt.raw + `}`
			got, err := Import(strings.NewReader(doc))
			if err != nil {
				t.Fatal(err)
			}
			if got.TripDays != tt.want {
				t.Errorf("tripDays = %d, want %d", got.TripDays, tt.want)
			}
		})
	}
}

func TestImportHistoryWithoutIDs(t *testing.T) {
	doc := `{"tripName":"x","selectedModules":[],"packingData":{},
		"tripHistory":[{"tripName":"Old","tripDays":3,"selectedModules":["beach"],
		"packingData":{"beach":[{"name":"Towel","checked":true,"custom":false}]},"date":"2024-05-01T10:00:00.000Z"}, 5]}`
	got, err := Import(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.TripHistory) != 1 {
		t.Fatalf("history = %+v", got.TripHistory)
	}
	snap := got.TripHistory[0]
	if snap.ID != "" || snap.TripName != "Old" || snap.TripDays != 3 || snap.Date != "2024-05-01T10:00:00.000Z" {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestExportPDF(t *testing.T) {
	var buf bytes.Buffer
	state := reachableState(t)
	state.SelectedModules = append(state.SelectedModules, "deleted-module")
	if err := ExportPDF(&buf, state, exportNow); err != nil {
		t.Fatalf("ExportPDF() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
}

func TestExportPDFToFile(t *testing.T) {
	dir := t.TempDir()
	path, err := ExportPDFToFile(dir, reachableState(t), exportNow)
	if err != nil {
		t.Fatalf("ExportPDFToFile() error = %v", err)
	}
	if filepath.Dir(path) != dir || filepath.Ext(path) != ".pdf" {
		t.Errorf("unexpected path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("file is not a PDF")
	}
}
