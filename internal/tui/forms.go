package tui

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/smartpack/internal/catalog"
	apperrors "github.com/julianstephens/smartpack/internal/errors"
	"github.com/julianstephens/smartpack/internal/validation"
)

var errPathRequired = apperrors.NewValidation("import file", "path is required")

// FormModel holds the values bound to whichever form is open. huh writes
// through the pointers, so the struct is shared by pointer across Model
// copies.
type FormModel struct {
	Name      string
	Days      string
	Icon      string
	Path      string
	Confirmed bool
}

func NewTripForm(fm *FormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Trip name").
				Placeholder("Weekend in Lisbon").
				Value(&fm.Name),
			huh.NewInput().
				Title("Days").
				Value(&fm.Days).
				Validate(validation.TripDaysString),
		),
	)
}

func NewItemForm(title string, fm *FormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&fm.Name).
				Validate(validation.ItemName),
		),
	)
}

func NewModuleForm(fm *FormModel) *huh.Form {
	options := make([]huh.Option[string], 0, len(catalog.Icons))
	for _, icon := range catalog.Icons {
		options = append(options, huh.NewOption(icon.Label, icon.Value))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Module name").
				Value(&fm.Name).
				Validate(validation.ModuleName),
			huh.NewSelect[string]().
				Title("Icon").
				Options(options...).
				Value(&fm.Icon),
		),
	)
}

func NewImportForm(fm *FormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Import file").
				Placeholder("packing-list-trip-1700000000000.json").
				Value(&fm.Path).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errPathRequired
					}
					return nil
				}),
		),
	)
}

func NewConfirmationForm(message string, fm *FormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("Yes").
				Negative("No").
				Value(&fm.Confirmed),
		),
	)
}
