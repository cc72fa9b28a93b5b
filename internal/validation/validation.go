// Package validation checks user-entered names and numbers before they reach
// a state transition.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/smartpack/internal/constants"
	apperrors "github.com/julianstephens/smartpack/internal/errors"
)

var validate = validator.New()

var (
	tripNameRule   = "required"
	tripDaysRule   = fmt.Sprintf("min=%d,max=%d", constants.MinTripDays, constants.MaxTripDays)
	moduleNameRule = fmt.Sprintf("required,max=%d", constants.MaxModuleNameLen)
	itemNameRule   = fmt.Sprintf("required,max=%d", constants.MaxItemNameLen)
)

// TripName requires a non-blank trip name.
func TripName(name string) error {
	return check("trip name", strings.TrimSpace(name), tripNameRule)
}

// TripDays requires a day count within [MinTripDays, MaxTripDays].
func TripDays(days int) error {
	return check("trip days", days, tripDaysRule)
}

// TripDaysString parses and checks a day count typed into a form.
func TripDaysString(s string) error {
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return apperrors.NewValidation("trip days", "must be a whole number")
	}
	return TripDays(days)
}

// ModuleName requires a non-blank module name of at most MaxModuleNameLen
// characters.
func ModuleName(name string) error {
	return check("module name", strings.TrimSpace(name), moduleNameRule)
}

// ItemName requires a non-blank item name of at most MaxItemNameLen characters.
func ItemName(name string) error {
	return check("item name", strings.TrimSpace(name), itemNameRule)
}

func check(field string, value any, rule string) error {
	if err := validate.Var(value, rule); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return apperrors.NewValidation(field, describe(field, verrs[0]))
		}
		return apperrors.NewValidation(field, err.Error())
	}
	return nil
}

func describe(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("must be at most %s", e.Param())
	default:
		return "is invalid"
	}
}
