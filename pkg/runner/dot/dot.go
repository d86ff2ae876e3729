package dot

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/daygrid/pkg/dates"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/record"
	"tableflip.dev/daygrid/pkg/store"
)

// Dot adds or removes a colored marker on a day. Dots are a set: adding a
// present color changes nothing.
type Dot struct {
	Color  record.ColorCode
	Remove bool
	On     *time.Time

	Persistence store.Persistence
}

func (n *Dot) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not mark, no persistence")
	}
	if !n.Color.Valid() {
		return errors.New("dot: a color is required")
	}

	on := time.Now()
	if n.On != nil {
		on = *n.On
	}
	y, m, d := on.Date()

	r := n.Persistence.Get(y, m, d)
	if n.Remove {
		r.RemoveDot(n.Color)
	} else {
		r.AddDot(n.Color)
	}
	n.Persistence.Set(y, m, d, r)

	pp := printers.PrettyPrint{}
	pp.Title(on.Format(dates.LayoutUS))
	pp.Dots(r.Dots)
	return nil
}

// DayColor sets or clears the theme color applied to the whole day cell.
type DayColor struct {
	Color record.ColorCode
	Clear bool
	On    *time.Time

	Persistence store.Persistence
}

func (n *DayColor) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not color, no persistence")
	}
	if !n.Clear && !n.Color.Valid() {
		return errors.New("color: a color is required")
	}

	on := time.Now()
	if n.On != nil {
		on = *n.On
	}
	y, m, d := on.Date()

	r := n.Persistence.Get(y, m, d)
	if n.Clear {
		r.DayColor = 0
	} else {
		r.DayColor = n.Color
	}
	n.Persistence.Set(y, m, d, r)

	pp := printers.PrettyPrint{}
	pp.Title(on.Format(dates.LayoutUS))
	if r.DayColor != 0 {
		pp.Dots([]record.ColorCode{r.DayColor})
	}
	return nil
}
