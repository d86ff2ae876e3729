package ui

import (
	"context"
	"errors"

	"tableflip.dev/daygrid/pkg/store"
	"tableflip.dev/daygrid/pkg/tui"
)

// UI launches the interactive calendar.
type UI struct {
	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not start ui, no persistence")
	}
	return tui.Run(n.Persistence)
}
