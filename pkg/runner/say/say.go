package say

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daygrid/pkg/interpret"
	"tableflip.dev/daygrid/pkg/nav"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/projection"
	"tableflip.dev/daygrid/pkg/store"
)

// Say runs one free-text command through the interpreter and applies the
// resulting action: navigations render the target projection, annotations
// mutate today's record.
type Say struct {
	Text string

	Persistence store.Persistence
}

func (n *Say) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not interpret, no persistence")
	}

	now := time.Now()
	action, response := interpret.Interpret(n.Text, now)
	fmt.Println(response)

	pp := printers.PrettyPrint{}
	lookup := n.Persistence.Lookup

	switch action.Kind {
	case interpret.KindNone:
		return nil

	case interpret.KindNavigate:
		mode := nav.ViewDay
		if action.SwitchView {
			mode = action.View
		}
		switch mode {
		case nav.ViewYear:
			pp.Year(action.Date.Year(), projection.YearGrid(action.Date.Year(), now, lookup))
		case nav.ViewMonth:
			cells := projection.MonthGrid(action.Date.Year(), action.Date.Month(), now, lookup)
			pp.Month(action.Date.Year(), action.Date.Month(), cells)
		case nav.ViewWeek:
			pp.Week(projection.Week(action.Date, now, lookup))
		case nav.ViewDay:
			pp.Day(projection.Day(action.Date, now, lookup))
		}
		return nil

	case interpret.KindSetView:
		// Without a running UI a bare view switch has nothing to re-render
		// beyond today's slice of that view.
		switch action.View {
		case nav.ViewYear:
			pp.Year(now.Year(), projection.YearGrid(now.Year(), now, lookup))
		case nav.ViewMonth:
			pp.Month(now.Year(), now.Month(), projection.MonthGrid(now.Year(), now.Month(), now, lookup))
		case nav.ViewWeek:
			pp.Week(projection.Week(now, now, lookup))
		case nav.ViewDay:
			pp.Day(projection.Day(now, now, lookup))
		}
		return nil

	case interpret.KindAddNote:
		y, m, d := now.Date()
		r := n.Persistence.Get(y, m, d)
		r.AppendNote(action.Note)
		n.Persistence.Set(y, m, d, r)
		return nil

	case interpret.KindAddDot:
		y, m, d := now.Date()
		r := n.Persistence.Get(y, m, d)
		r.AddDot(action.Color)
		n.Persistence.Set(y, m, d, r)
		return nil
	}

	return nil
}
