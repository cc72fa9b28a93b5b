package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/smartpack/internal/logger"
	"github.com/julianstephens/smartpack/internal/notifier"
	"github.com/julianstephens/smartpack/internal/persistence"
	"github.com/julianstephens/smartpack/internal/storage/memory"
	"github.com/julianstephens/smartpack/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	gateway, err := ctx.Gateway()
	if err != nil {
		// Keep the app usable; nothing will be persisted.
		logger.Warn("Store unavailable, running in memory", "error", err)
		fmt.Fprintf(os.Stderr, "⚠ %v\n  Changes in this session will not be saved.\n", err)
		gateway = persistence.New(memory.New())
	} else {
		ctx.PerformAutomaticBackup()
	}

	return tui.Run(tui.Options{
		Gateway:       gateway,
		Notifier:      notifier.New(),
		ExportDir:     ctx.Config.ExportDir,
		AutosaveDelay: ctx.Config.AutosaveDelay,
		Now:           ctx.Now,
	})
}
