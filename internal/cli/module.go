package cli

import (
	"github.com/julianstephens/smartpack/internal/catalog"
	apperrors "github.com/julianstephens/smartpack/internal/errors"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/trip"
)

type ModuleListCmd struct {
	Selected bool `help:"Only list modules selected for the current trip."`
}

func (c *ModuleListCmd) Run(ctx *Context) error {
	state, err := ctx.load()
	if err != nil {
		return err
	}
	all := catalog.GetAll(state.CustomModules)
	for _, k := range catalog.Keys(state.CustomModules) {
		selected := state.IsSelected(k)
		if c.Selected && !selected {
			continue
		}
		mark := " "
		if selected {
			mark = "x"
		}
		kind := "built-in"
		switch {
		case catalog.IsCustom(k):
			kind = "custom"
		case hasOverride(state, k):
			kind = "built-in, edited"
		}
		m := all[k]
		ctx.printf("[%s] %-14s %s %s (%d items, %s)\n", mark, k, catalog.IconGlyph(m.Icon), m.Name, len(m.Items), kind)
	}
	return nil
}

type ModuleShowCmd struct {
	Key string `arg:"" help:"Module key."`
}

func (c *ModuleShowCmd) Run(ctx *Context) error {
	state, err := ctx.load()
	if err != nil {
		return err
	}
	m, ok := catalog.Get(c.Key, state.CustomModules)
	if !ok {
		return apperrors.NewNotFound("module", c.Key)
	}
	ctx.printf("%s %s\n", catalog.IconGlyph(m.Icon), m.Name)
	for i, item := range m.Items {
		ctx.printf("  %2d. %s\n", i+1, item)
	}
	return nil
}

type ModuleToggleCmd struct {
	Key string `arg:"" help:"Module key to select or deselect."`
}

func (c *ModuleToggleCmd) Run(ctx *Context) error {
	next, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		if !catalog.Exists(c.Key, s.CustomModules) && !s.IsSelected(c.Key) {
			return s, apperrors.NewNotFound("module", c.Key)
		}
		return trip.ToggleModule(s, c.Key), nil
	})
	if err != nil {
		return err
	}
	if next.IsSelected(c.Key) {
		ctx.printf("✓ Selected %s\n", moduleLabel(next, c.Key))
	} else {
		ctx.printf("✓ Deselected %s (checklist kept)\n", moduleLabel(next, c.Key))
	}
	return nil
}

type ModuleCreateCmd struct {
	Name  string   `arg:"" help:"Module name."`
	Icon  string   `help:"Icon identifier, e.g. 'fas fa-camera'." default:"fas fa-star"`
	Items []string `help:"Template items to start with." sep:","`
}

func (c *ModuleCreateCmd) Run(ctx *Context) error {
	var key string
	if _, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		next, k, err := trip.CreateCustomModule(s, c.Name, c.Icon)
		if err != nil {
			return s, err
		}
		for _, item := range c.Items {
			if next, err = trip.AddModuleItem(next, k, item); err != nil {
				return s, err
			}
		}
		key = k
		return next, nil
	}); err != nil {
		return err
	}
	ctx.printf("✓ Created module %q (key: %s)\n", c.Name, key)
	return nil
}

type ModuleDeleteCmd struct {
	Key string `arg:"" help:"Custom module key."`
	Yes bool   `help:"Confirm deletion." short:"y"`
}

func (c *ModuleDeleteCmd) Run(ctx *Context) error {
	if err := confirmed(c.Yes); err != nil {
		return err
	}
	if _, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		if !catalog.IsCustom(c.Key) {
			return s, apperrors.NewValidation("module", "built-in modules cannot be deleted; use 'module reset'")
		}
		if _, ok := s.CustomModules[c.Key]; !ok {
			return s, apperrors.NewNotFound("module", c.Key)
		}
		return trip.DeleteCustomModule(s, c.Key), nil
	}); err != nil {
		return err
	}
	ctx.printf("✓ Deleted module %s\n", c.Key)
	return nil
}

type ModuleResetCmd struct {
	Key string `arg:"" help:"Built-in module key."`
	Yes bool   `help:"Confirm reset." short:"y"`
}

func (c *ModuleResetCmd) Run(ctx *Context) error {
	if err := confirmed(c.Yes); err != nil {
		return err
	}
	if _, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		if catalog.IsCustom(c.Key) {
			return s, apperrors.NewValidation("module", "only built-in modules can be reset")
		}
		return trip.ResetModule(s, c.Key), nil
	}); err != nil {
		return err
	}
	ctx.printf("✓ Reset %s to its built-in items\n", c.Key)
	return nil
}

type ModuleAddItemCmd struct {
	Key  string `arg:"" help:"Module key."`
	Name string `arg:"" help:"Item name."`
}

func (c *ModuleAddItemCmd) Run(ctx *Context) error {
	if _, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		return trip.AddModuleItem(s, c.Key, c.Name)
	}); err != nil {
		return err
	}
	ctx.printf("✓ Added %q to %s\n", c.Name, c.Key)
	return nil
}

type ModuleRemoveItemCmd struct {
	Key      string `arg:"" help:"Module key."`
	Position int    `arg:"" help:"Item number as shown by 'module show'."`
}

func (c *ModuleRemoveItemCmd) Run(ctx *Context) error {
	if _, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		return trip.RemoveModuleItem(s, c.Key, c.Position-1)
	}); err != nil {
		return err
	}
	ctx.printf("✓ Removed item %d from %s\n", c.Position, c.Key)
	return nil
}

type ModuleEditItemCmd struct {
	Key      string `arg:"" help:"Module key."`
	Position int    `arg:"" help:"Item number as shown by 'module show'."`
	Name     string `arg:"" help:"New item name."`
}

func (c *ModuleEditItemCmd) Run(ctx *Context) error {
	if _, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		return trip.UpdateModuleItem(s, c.Key, c.Position-1, c.Name)
	}); err != nil {
		return err
	}
	ctx.printf("✓ Renamed item %d of %s to %q\n", c.Position, c.Key, c.Name)
	return nil
}

type ModuleStatsCmd struct{}

func (c *ModuleStatsCmd) Run(ctx *Context) error {
	state, err := ctx.load()
	if err != nil {
		return err
	}
	st := catalog.Stats(state.CustomModules)
	ctx.printf("Modules:  %d (%d built-in, %d custom)\n", st.Total, st.Default, st.Custom)
	ctx.printf("Items:    %d across all templates\n", st.TotalItems)
	return nil
}

func hasOverride(s models.TripState, key string) bool {
	_, ok := s.CustomModules[key]
	return ok && !catalog.IsCustom(key)
}
