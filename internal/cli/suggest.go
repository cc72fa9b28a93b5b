package cli

import (
	"github.com/julianstephens/smartpack/internal/catalog"
)

// SuggestCmd prints packing advice for the current trip. The flags try out
// another destination, length or module selection without saving anything.
type SuggestCmd struct {
	Name    string   `help:"Destination or trip name to use instead of the saved one."`
	Days    int      `help:"Trip length to use instead of the saved one."`
	Modules []string `help:"Module keys to use instead of the selected ones." sep:","`
}

func (c *SuggestCmd) Run(ctx *Context) error {
	state, err := ctx.load()
	if err != nil {
		return err
	}
	name, days, selected := state.TripName, state.TripDays, state.SelectedModules
	if c.Name != "" {
		name = c.Name
	}
	if c.Days > 0 {
		days = c.Days
	}
	if len(c.Modules) > 0 {
		selected = c.Modules
	}

	suggestions := catalog.AllSuggestions(name, days, selected)
	if len(suggestions) == 0 {
		ctx.println("No suggestions. Your selection looks good!")
		return nil
	}
	for _, s := range suggestions {
		ctx.printf("💡 %s\n", s)
	}
	return nil
}
