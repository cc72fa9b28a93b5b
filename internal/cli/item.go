package cli

import (
	apperrors "github.com/julianstephens/smartpack/internal/errors"
	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/trip"
	"github.com/julianstephens/smartpack/internal/validation"
)

type ItemListCmd struct {
	Key string `arg:"" optional:"" help:"Only list this module's checklist."`
}

func (c *ItemListCmd) Run(ctx *Context) error {
	state, err := ctx.load()
	if err != nil {
		return err
	}
	keys := state.SelectedModules
	if c.Key != "" {
		keys = []string{c.Key}
	}
	for _, k := range keys {
		items, ok := state.PackingData[k]
		if !ok {
			if c.Key != "" {
				return apperrors.NewNotFound("checklist", k)
			}
			continue
		}
		mp := trip.ModuleProgress(state, k)
		ctx.printf("%s (%d/%d)\n", moduleLabel(state, k), mp.CheckedItems, mp.TotalItems)
		for i, item := range items {
			box := "[ ]"
			if item.Checked {
				box = "[x]"
			}
			suffix := ""
			if item.Custom {
				suffix = " (custom)"
			}
			ctx.printf("  %2d. %s %s%s\n", i+1, box, item.Name, suffix)
		}
	}
	return nil
}

// checklist returns the items of key, or NotFound when the trip has none.
func checklist(s models.TripState, key string) ([]models.PackingItem, error) {
	items, ok := s.PackingData[key]
	if !ok {
		return nil, apperrors.NewNotFound("checklist", key)
	}
	return items, nil
}

type ItemToggleCmd struct {
	Key      string `arg:"" help:"Module key."`
	Position int    `arg:"" help:"Item number as shown by 'item list'."`
}

func (c *ItemToggleCmd) Run(ctx *Context) error {
	var item models.PackingItem
	next, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		items, err := checklist(s, c.Key)
		if err != nil {
			return s, err
		}
		i, err := itemIndex(c.Position, len(items))
		if err != nil {
			return s, err
		}
		next := trip.ToggleItem(s, c.Key, i)
		item = next.PackingData[c.Key][i]
		return next, nil
	})
	if err != nil {
		return err
	}
	state := "unchecked"
	if item.Checked {
		state = "checked"
	}
	ctx.printf("✓ %s %s\n", item.Name, state)
	if trip.IsComplete(trip.CalculateProgress(next)) {
		ctx.println("✓ Everything is packed!")
	}
	return nil
}

type ItemAddCmd struct {
	Key  string `arg:"" help:"Module key."`
	Name string `arg:"" help:"Item name."`
}

func (c *ItemAddCmd) Run(ctx *Context) error {
	if err := validation.ItemName(c.Name); err != nil {
		return err
	}
	if _, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		if _, err := checklist(s, c.Key); err != nil {
			return s, err
		}
		return trip.AddCustomItem(s, c.Key, c.Name), nil
	}); err != nil {
		return err
	}
	ctx.printf("✓ Added %q to %s\n", c.Name, c.Key)
	return nil
}

type ItemEditCmd struct {
	Key      string `arg:"" help:"Module key."`
	Position int    `arg:"" help:"Item number as shown by 'item list'."`
	Name     string `arg:"" help:"New item name."`
}

func (c *ItemEditCmd) Run(ctx *Context) error {
	if err := validation.ItemName(c.Name); err != nil {
		return err
	}
	if _, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		items, err := checklist(s, c.Key)
		if err != nil {
			return s, err
		}
		i, err := itemIndex(c.Position, len(items))
		if err != nil {
			return s, err
		}
		return trip.EditItem(s, c.Key, i, c.Name), nil
	}); err != nil {
		return err
	}
	ctx.printf("✓ Renamed item %d to %q\n", c.Position, c.Name)
	return nil
}

type ItemDeleteCmd struct {
	Key      string `arg:"" help:"Module key."`
	Position int    `arg:"" help:"Item number as shown by 'item list'."`
	Yes      bool   `help:"Confirm deletion." short:"y"`
}

func (c *ItemDeleteCmd) Run(ctx *Context) error {
	if err := confirmed(c.Yes); err != nil {
		return err
	}
	var name string
	if _, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		items, err := checklist(s, c.Key)
		if err != nil {
			return s, err
		}
		i, err := itemIndex(c.Position, len(items))
		if err != nil {
			return s, err
		}
		if !items[i].Custom {
			return s, apperrors.NewValidation("item", "only custom items can be deleted; uncheck default items instead")
		}
		name = items[i].Name
		return trip.DeleteItem(s, c.Key, i), nil
	}); err != nil {
		return err
	}
	ctx.printf("✓ Deleted %q\n", name)
	return nil
}
