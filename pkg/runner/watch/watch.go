package watch

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/daygrid/pkg/store"
)

// Watch follows storage change events until the context is cancelled. With
// whole-store writes the last writer wins; watching is how a second process
// learns it should reload rather than clobber.
type Watch struct {
	Persistence store.Persistence
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}

	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	fmt.Println("watching for changes, ctrl-c to stop")
	for ev := range events {
		switch ev.Type {
		case store.EventDaysChanged:
			fmt.Println("day records changed")
		case store.EventPrefsChanged:
			fmt.Printf("preference %q changed\n", ev.Key)
		}
	}
	return nil
}
