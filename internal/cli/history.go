package cli

import (
	"time"

	"github.com/julianstephens/smartpack/internal/models"
	"github.com/julianstephens/smartpack/internal/trip"
)

type HistoryListCmd struct{}

func (c *HistoryListCmd) Run(ctx *Context) error {
	state, err := ctx.load()
	if err != nil {
		return err
	}
	if len(state.TripHistory) == 0 {
		ctx.println("No saved trips. Use 'smartpack history save' to save the current one.")
		return nil
	}
	for i, snap := range state.TripHistory {
		p := trip.CalculateProgress(models.TripState{
			SelectedModules: snap.SelectedModules,
			PackingData:     snap.PackingData,
		})
		date := snap.Date
		if t, err := time.Parse(time.RFC3339Nano, snap.Date); err == nil {
			date = t.Local().Format("2006-01-02 15:04")
		}
		ctx.printf("%2d. %-28s %3d day(s)  %2d module(s)  %3d%%  %s\n",
			i+1, snap.TripName, snap.TripDays, len(snap.SelectedModules), p.Percentage, date)
	}
	return nil
}

type HistorySaveCmd struct{}

func (c *HistorySaveCmd) Run(ctx *Context) error {
	next, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		return trip.SaveCurrentTrip(s, ctx.Now())
	})
	if err != nil {
		return err
	}
	ctx.printf("✓ Saved %q to history (%d trip(s))\n", next.TripName, len(next.TripHistory))
	return nil
}

type HistoryDuplicateCmd struct {
	Ref string `arg:"" help:"Trip number from 'history list', or its id."`
	Yes bool   `help:"Confirm replacing the current trip." short:"y"`
}

func (c *HistoryDuplicateCmd) Run(ctx *Context) error {
	if err := confirmed(c.Yes); err != nil {
		return err
	}
	next, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		i, err := snapshotIndex(s, c.Ref)
		if err != nil {
			return s, err
		}
		return trip.DuplicateTrip(s, i)
	})
	if err != nil {
		return err
	}
	ctx.printf("✓ Loaded %q as the current trip\n", next.TripName)
	return nil
}

type HistoryDeleteCmd struct {
	Ref string `arg:"" help:"Trip number from 'history list', or its id."`
	Yes bool   `help:"Confirm deletion." short:"y"`
}

func (c *HistoryDeleteCmd) Run(ctx *Context) error {
	if err := confirmed(c.Yes); err != nil {
		return err
	}
	var name string
	if _, err := ctx.update(func(s models.TripState) (models.TripState, error) {
		i, err := snapshotIndex(s, c.Ref)
		if err != nil {
			return s, err
		}
		name = s.TripHistory[i].TripName
		return trip.DeleteTripFromHistory(s, i)
	}); err != nil {
		return err
	}
	ctx.printf("✓ Deleted %q from history\n", name)
	return nil
}
