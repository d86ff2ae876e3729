package show

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/daygrid/pkg/nav"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/projection"
	"tableflip.dev/daygrid/pkg/store"
)

// Show renders one projection of the calendar.
type Show struct {
	ShowID bool
	Mode   nav.ViewMode
	On     *time.Time

	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show, no persistence")
	}

	now := time.Now()
	focus := now
	if n.On != nil {
		focus = *n.On
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	lookup := n.Persistence.Lookup

	switch n.Mode {
	case nav.ViewYear:
		pp.Title(focus.Format("2006"))
		pp.NewLine()
		pp.Year(focus.Year(), projection.YearGrid(focus.Year(), now, lookup))
	case nav.ViewMonth:
		cells := projection.MonthGrid(focus.Year(), focus.Month(), now, lookup)
		pp.Month(focus.Year(), focus.Month(), cells)
	case nav.ViewWeek:
		pp.Week(projection.Week(focus, now, lookup))
	case nav.ViewDay:
		pp.Day(projection.Day(focus, now, lookup))
	}

	return nil
}
