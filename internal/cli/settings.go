package cli

import (
	"strconv"

	"github.com/julianstephens/smartpack/internal/constants"
	apperrors "github.com/julianstephens/smartpack/internal/errors"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/trip"
)

// SettingsCmd lists the preferences, prints one, or sets one.
type SettingsCmd struct {
	Name  string `arg:"" optional:"" help:"Setting name: autosave, suggestions, compact, notifications or darkMode."`
	Value string `arg:"" optional:"" help:"New value (true/false, on/off)."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	if c.Name != "" && !models.IsSettingName(c.Name) {
		return apperrors.NewNotFound("setting", c.Name)
	}

	if c.Value == "" {
		state, err := ctx.load()
		if err != nil {
			return err
		}
		for _, name := range constants.SettingNames {
			if c.Name != "" && name != c.Name {
				continue
			}
			v, _ := state.Settings.Get(name)
			ctx.printf("%-14s %s\n", name, onOff(v))
		}
		return nil
	}

	value, err := parseBool(c.Value)
	if err != nil {
		return err
	}
	if _, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		return trip.UpdateSetting(s, c.Name, value)
	}); err != nil {
		return err
	}
	ctx.printf("✓ %s %s\n", c.Name, onOff(value))
	return nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, apperrors.NewValidation("value", "expected true/false or on/off")
	}
	return v, nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
