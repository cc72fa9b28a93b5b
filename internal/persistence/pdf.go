package persistence

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/julianstephens/smartpack/internal/catalog"
	apperrors "github.com/julianstephens/smartpack/internal/errors"
	"github.com/julianstephens/smartpack/internal/logger"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/trip"
)

const (
	pdfLineHeight = 7.0
	pdfBoxSize    = 4.0
)

// PDFFilename mirrors ExportFilename for the printable checklist.
func PDFFilename(state models.TripState, now time.Time) string {
	name := ExportFilename(state, now)
	return name[:len(name)-len(".json")] + ".pdf"
}

// ExportPDF renders the selected modules as a printable checklist with one
// box per item. Dangling selections are skipped.
func ExportPDF(w io.Writer, state models.TripState, now time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	title := state.TripName
	if title == "" {
		title = "Packing list"
	}
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)

	progress := trip.CalculateProgress(state)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("%d day(s)  |  %d/%d packed (%d%%)  |  %s",
		state.TripDays, progress.CheckedItems, progress.TotalItems, progress.Percentage,
		now.Format("2006-01-02")))
	pdf.Ln(10)

	for _, key := range state.SelectedModules {
		module, ok := catalog.Get(key, state.CustomModules)
		if !ok {
			continue
		}
		mp := trip.ModuleProgress(state, key)

		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, tr(fmt.Sprintf("%s (%d/%d)", module.Name, mp.CheckedItems, mp.TotalItems)))
		pdf.Ln(9)

		pdf.SetFont("Helvetica", "", 11)
		for _, item := range state.PackingData[key] {
			x, y := pdf.GetX(), pdf.GetY()
			boxY := y + (pdfLineHeight-pdfBoxSize)/2
			pdf.Rect(x, boxY, pdfBoxSize, pdfBoxSize, "D")
			if item.Checked {
				pdf.Line(x, boxY, x+pdfBoxSize, boxY+pdfBoxSize)
				pdf.Line(x, boxY+pdfBoxSize, x+pdfBoxSize, boxY)
			}
			pdf.SetX(x + pdfBoxSize + 3)
			label := item.Name
			if item.Custom {
				label += " *"
			}
			pdf.Cell(0, pdfLineHeight, tr(label))
			pdf.Ln(pdfLineHeight)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "* custom item", "", "", false)

	if err := pdf.Output(w); err != nil {
		return &apperrors.ExportError{Err: err}
	}
	return nil
}

// ExportPDFToFile writes the printable checklist into dir and returns its path.
func ExportPDFToFile(dir string, state models.TripState, now time.Time) (string, error) {
	var buf bytes.Buffer
	if err := ExportPDF(&buf, state, now); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &apperrors.ExportError{Err: err}
	}
	path := filepath.Join(dir, PDFFilename(state, now))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", &apperrors.ExportError{Err: err}
	}
	logger.Info("PDF exported", "path", path)
	return path, nil
}
