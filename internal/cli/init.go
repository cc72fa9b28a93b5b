package cli

import (
	"os"

	"github.com/julianstephens/smartpack/internal/config"
)

type InitCmd struct {
	WriteConfig bool `help:"Also write a config file with the current settings if none exists." default:"true" negatable:""`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.printf("Initialized smartpack storage at: %s\n", ctx.Store.GetConfigPath())

	if !c.WriteConfig || ctx.ConfigPath == "" {
		return nil
	}
	path := config.ExpandPath(ctx.ConfigPath)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := config.Write(path, ctx.Config); err != nil {
		return err
	}
	ctx.printf("Wrote config file: %s\n", path)
	return nil
}
