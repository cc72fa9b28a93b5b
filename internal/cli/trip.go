package cli

import (
	"encoding/json"
	"strings"

	"github.com/julianstephens/smartpack/internal/catalog"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/trip"
	"github.com/julianstephens/smartpack/internal/validation"
)

type TripShowCmd struct {
	JSON bool `help:"Print the whole trip state as JSON."`
}

func (c *TripShowCmd) Run(ctx *Context) error {
	state, err := ctx.load()
	if err != nil {
		return err
	}
	if c.JSON {
		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return err
		}
		ctx.println(string(data))
		return nil
	}

	name := state.TripName
	if strings.TrimSpace(name) == "" {
		name = "(unnamed trip)"
	}
	p := trip.CalculateProgress(state)
	ctx.printf("Trip:     %s\n", name)
	ctx.printf("Days:     %d\n", state.TripDays)
	ctx.printf("Progress: %d/%d packed (%d%%)\n", p.CheckedItems, p.TotalItems, p.Percentage)
	ctx.printf("Modules:  %s\n", moduleNames(state))
	ctx.printf("History:  %d saved trip(s)\n", len(state.TripHistory))
	return nil
}

type TripNameCmd struct {
	Name string `arg:"" help:"New trip name."`
}

func (c *TripNameCmd) Run(ctx *Context) error {
	name := strings.TrimSpace(c.Name)
	if err := validation.TripName(name); err != nil {
		return err
	}
	if _, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		return trip.SetTripName(s, name), nil
	}); err != nil {
		return err
	}
	ctx.printf("✓ Trip renamed to %q\n", name)
	return nil
}

type TripDaysCmd struct {
	Days int `arg:"" help:"Trip length in days (1-365)."`
}

func (c *TripDaysCmd) Run(ctx *Context) error {
	if err := validation.TripDays(c.Days); err != nil {
		return err
	}
	if _, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		return trip.SetTripDays(s, c.Days), nil
	}); err != nil {
		return err
	}
	ctx.printf("✓ Trip length set to %d day(s)\n", c.Days)
	return nil
}

type ProgressCmd struct{}

func (c *ProgressCmd) Run(ctx *Context) error {
	state, err := ctx.load()
	if err != nil {
		return err
	}
	p := trip.CalculateProgress(state)
	ctx.printf("Overall: %d/%d packed (%d%%)\n", p.CheckedItems, p.TotalItems, p.Percentage)
	for _, k := range state.SelectedModules {
		mp := trip.ModuleProgress(state, k)
		ctx.printf("  %-24s %d/%d (%d%%)\n", moduleLabel(state, k), mp.CheckedItems, mp.TotalItems, mp.Percentage)
	}
	if trip.IsComplete(p) {
		ctx.println("✓ Everything is packed!")
	}
	return nil
}

func moduleLabel(s models.TripState, key string) string {
	if m, ok := catalog.Get(key, s.CustomModules); ok {
		return m.Name
	}
	return key
}

func moduleNames(s models.TripState) string {
	if len(s.SelectedModules) == 0 {
		return "none"
	}
	names := make([]string, 0, len(s.SelectedModules))
	for _, k := range s.SelectedModules {
		names = append(names, moduleLabel(s, k))
	}
	return strings.Join(names, ", ")
}
