package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daygrid/pkg/dates"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/record"
	"tableflip.dev/daygrid/pkg/store"
)

// Add schedules a time block on a day. Blocks are kept sorted by start time;
// overlapping blocks are allowed.
type Add struct {
	Start    string
	End      string
	Title    string
	Category record.Category
	On       *time.Time

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not schedule, no persistence")
	}

	block, err := record.NewTimeBlock(n.Start, n.End, n.Title, n.Category)
	if err != nil {
		return err
	}

	on := time.Now()
	if n.On != nil {
		on = *n.On
	}
	y, m, d := on.Date()

	r := n.Persistence.Get(y, m, d)
	r.AddTimeBlock(block)
	n.Persistence.Set(y, m, d, r)

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title(on.Format(dates.LayoutUS))
	pp.TimeBlocks(r.TimeBlocks)
	return nil
}

// Remove deletes a time block by id.
type Remove struct {
	ID string
	On *time.Time

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not unschedule, no persistence")
	}

	on := time.Now()
	if n.On != nil {
		on = *n.On
	}
	y, m, d := on.Date()

	r := n.Persistence.Get(y, m, d)
	if !r.RemoveTimeBlock(n.ID) {
		return fmt.Errorf("schedule: no time block %q on %s", n.ID, on.Format(dates.LayoutISO))
	}
	n.Persistence.Set(y, m, d, r)

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title(on.Format(dates.LayoutUS))
	pp.TimeBlocks(r.TimeBlocks)
	return nil
}
