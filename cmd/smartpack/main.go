package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/smartpack/internal/cli"
	"github.com/julianstephens/smartpack/internal/config"
	"github.com/julianstephens/smartpack/internal/constants"
	apperrors "github.com/julianstephens/smartpack/internal/errors"
	"github.com/julianstephens/smartpack/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/smartpack/config.yaml"`
	Store   string `help:"Store location: a SQLite path, a .json path, or a postgres:// or redis:// URL. Overrides the config file." env:"SMARTPACK_STORE"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize smartpack storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Trip     struct {
		Show cli.TripShowCmd `cmd:"" help:"Show the current trip." default:"1"`
		Name cli.TripNameCmd `cmd:"" help:"Rename the current trip."`
		Days cli.TripDaysCmd `cmd:"" help:"Set the trip length."`
	} `cmd:"" help:"Show or edit the current trip."`
	Progress cli.ProgressCmd `cmd:"" help:"Show packing progress."`
	Module   struct {
		List       cli.ModuleListCmd       `cmd:"" help:"List all modules." default:"1"`
		Show       cli.ModuleShowCmd       `cmd:"" help:"Show a module's items."`
		Toggle     cli.ModuleToggleCmd     `cmd:"" help:"Select or deselect a module for the trip."`
		Create     cli.ModuleCreateCmd     `cmd:"" help:"Create a custom module."`
		Delete     cli.ModuleDeleteCmd     `cmd:"" help:"Delete a custom module."`
		Reset      cli.ModuleResetCmd      `cmd:"" help:"Drop edits to a built-in module's template."`
		AddItem    cli.ModuleAddItemCmd    `cmd:"" name:"add-item" help:"Add an item to a module's catalog entry."`
		RemoveItem cli.ModuleRemoveItemCmd `cmd:"" name:"remove-item" help:"Remove an item from a module's catalog entry."`
		EditItem   cli.ModuleEditItemCmd   `cmd:"" name:"edit-item" help:"Rename an item in a module's catalog entry."`
		Stats      cli.ModuleStatsCmd      `cmd:"" help:"Show catalog statistics."`
	} `cmd:"" help:"Manage packing modules."`
	Item struct {
		List   cli.ItemListCmd   `cmd:"" help:"List checklist items." default:"1"`
		Toggle cli.ItemToggleCmd `cmd:"" help:"Check or uncheck an item."`
		Add    cli.ItemAddCmd    `cmd:"" help:"Add a custom item to a checklist."`
		Edit   cli.ItemEditCmd   `cmd:"" help:"Rename a checklist item."`
		Delete cli.ItemDeleteCmd `cmd:"" help:"Delete a custom checklist item."`
	} `cmd:"" help:"Manage checklist items of the current trip."`
	History struct {
		List      cli.HistoryListCmd      `cmd:"" help:"List saved trips." default:"1"`
		Save      cli.HistorySaveCmd      `cmd:"" help:"Save the current trip to history."`
		Duplicate cli.HistoryDuplicateCmd `cmd:"" help:"Load a saved trip as the current trip."`
		Delete    cli.HistoryDeleteCmd    `cmd:"" help:"Delete a saved trip."`
	} `cmd:"" help:"Manage saved trips."`
	Settings cli.SettingsCmd `cmd:"" help:"Show or change preferences."`
	Suggest  cli.SuggestCmd  `cmd:"" help:"Show packing suggestions for the trip."`
	Export   cli.ExportCmd   `cmd:"" help:"Export all data to a JSON or PDF file."`
	Import   cli.ImportCmd   `cmd:"" help:"Replace all data with an export file."`
	Clear    cli.ClearCmd    `cmd:"" help:"Remove all saved data."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the database."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups." default:"1"`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the database from a backup."`
	} `cmd:"" help:"Manage SQLite backups."`
	Keyring struct {
		Set    cli.KeyringSetCmd    `cmd:"" help:"Store a backend password."`
		Get    cli.KeyringGetCmd    `cmd:"" help:"Show a stored backend password."`
		Delete cli.KeyringDeleteCmd `cmd:"" help:"Remove a stored backend password."`
		Status cli.KeyringStatusCmd `cmd:"" help:"Show keyring availability and stored accounts." default:"1"`
	} `cmd:"" help:"Manage backend passwords in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Packing checklist builder for your trips"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if CLI.Store != "" {
		cfg.Store = CLI.Store
	}
	cfg.Debug = cfg.Debug || CLI.Debug

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: config.Dir(),
		Stderr:    ctx.Command() != "tui",
	}); err != nil {
		fmt.Fprintln(os.Stderr, apperrors.Formatf("failed to initialize logger: %v", err))
	}

	store, err := cli.OpenStore(cfg.Store)
	apperrors.Fatal(err)

	appCtx := cli.NewContext(store, cfg, CLI.Config)
	err = ctx.Run(appCtx)
	if cerr := store.Close(); cerr != nil {
		logger.Debug("Failed to close store", "error", cerr)
	}
	apperrors.Fatal(err)
}
