package note

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/daygrid/pkg/dates"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/store"
)

// Note appends note text to a day's record.
type Note struct {
	Message string
	On      *time.Time

	Persistence store.Persistence
}

func (n *Note) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add note, no persistence")
	}

	on := time.Now()
	if n.On != nil {
		on = *n.On
	}
	y, m, d := on.Date()

	r := n.Persistence.Get(y, m, d)
	r.AppendNote(n.Message)
	n.Persistence.Set(y, m, d, r)

	pp := printers.PrettyPrint{}
	pp.Title(on.Format(dates.LayoutUS))
	pp.Note(r.Note)
	return nil
}
