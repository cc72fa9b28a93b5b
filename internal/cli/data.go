package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/smartpack/internal/persistence"
)

type ExportCmd struct {
	PDF bool   `help:"Write a printable PDF checklist instead of JSON."`
	Dir string `help:"Directory to write the file to. Defaults to export_dir from the config." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	state, err := ctx.load()
	if err != nil {
		return err
	}
	dir := c.Dir
	if dir == "" {
		dir = ctx.Config.ExportDir
	}

	var path string
	if c.PDF {
		path, err = persistence.ExportPDFToFile(dir, state, ctx.Now())
	} else {
		path, err = persistence.ExportToFile(dir, state, ctx.Now())
	}
	if err != nil {
		return err
	}
	ctx.printf("✓ Exported to %s\n", path)
	return nil
}

type ImportCmd struct {
	Path string `arg:"" help:"Export file to import." type:"existingfile"`
	Yes  bool   `help:"Confirm replacing all current data." short:"y"`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := confirmed(c.Yes); err != nil {
		return err
	}
	state, err := persistence.ImportFromFile(c.Path)
	if err != nil {
		return err
	}
	if err := ctx.save(state); err != nil {
		return err
	}
	ctx.printf("✓ Imported %q with %d module(s) and %d saved trip(s)\n",
		state.TripName, len(state.SelectedModules), len(state.TripHistory))
	return nil
}

type ClearCmd struct {
	Yes bool `help:"Confirm removing all saved data." short:"y"`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if err := confirmed(c.Yes); err != nil {
		return err
	}
	g, err := ctx.Gateway()
	if err != nil {
		return err
	}
	if !g.Clear(context.Background()) {
		return fmt.Errorf("failed to clear %s", ctx.Store.GetConfigPath())
	}
	ctx.println("✓ All saved data cleared")
	return nil
}
