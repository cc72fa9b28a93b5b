package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/smartpack/internal/constants"
	apperrors "github.com/julianstephens/smartpack/internal/errors"
	"github.com/julianstephens/smartpack/internal/logger"
	"github.com/julianstephens/smartpack/internal/models"
)

type exportDocument struct {
	models.TripState
	ExportDate string `json:"exportDate"`
	Version    string `json:"version"`
}

// ExportFilename builds packing-list-<trip>-<epoch millis>.json. Path
// separators in the trip name are replaced so the result is a single file
// name.
func ExportFilename(state models.TripState, now time.Time) string {
	name := state.TripName
	if name == "" {
		name = "trip"
	}
	name = strings.NewReplacer("/", "-", "\\", "-").Replace(name)
	return fmt.Sprintf("packing-list-%s-%d.json", name, now.UnixMilli())
}

// Export writes the state as an indented JSON export document.
func Export(w io.Writer, state models.TripState, now time.Time) error {
	doc := exportDocument{
		TripState:  state,
		ExportDate: now.UTC().Format(time.RFC3339Nano),
		Version:    constants.ExportVersion,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &apperrors.ExportError{Err: err}
	}
	if _, err := w.Write(data); err != nil {
		return &apperrors.ExportError{Err: err}
	}
	return nil
}

// ExportToFile writes an export document into dir and returns its path.
func ExportToFile(dir string, state models.TripState, now time.Time) (string, error) {
	var buf bytes.Buffer
	if err := Export(&buf, state, now); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &apperrors.ExportError{Err: err}
	}
	path := filepath.Join(dir, ExportFilename(state, now))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", &apperrors.ExportError{Err: err}
	}
	logger.Info("Data exported", "path", path)
	return path, nil
}

// Import decodes an export document. On failure the error is an ImportError
// and no state is returned.
func Import(r io.Reader) (models.TripState, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.TripState{}, &apperrors.ImportError{Reason: ReasonUnreadable, Err: err}
	}
	state, err := decodeImport(data)
	if err != nil {
		logger.Warn("Rejected import", "error", err)
		return models.TripState{}, err
	}
	return state, nil
}

// ImportFromFile opens path and decodes it with Import.
func ImportFromFile(path string) (models.TripState, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.TripState{}, &apperrors.ImportError{Reason: ReasonUnreadable, Err: err}
	}
	defer f.Close()
	return Import(f)
}
