package prefs

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/daygrid/pkg/store"
)

// Theme shows or sets the color theme. With no Value it prints the current
// theme.
type Theme struct {
	Value string

	Persistence store.Persistence
}

func (n *Theme) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set theme, no persistence")
	}

	if n.Value == "" {
		fmt.Println(n.Persistence.Theme())
		return nil
	}

	switch store.Theme(n.Value) {
	case store.ThemeLight, store.ThemeDark:
		n.Persistence.SetTheme(store.Theme(n.Value))
		fmt.Println(n.Value)
		return nil
	default:
		return fmt.Errorf("theme must be %q or %q, got %q",
			store.ThemeLight, store.ThemeDark, n.Value)
	}
}

// Panel shows or sets the sidebar panel width. Widths outside the allowed
// range are clamped, not rejected.
type Panel struct {
	Width int
	Set   bool

	Persistence store.Persistence
}

func (n *Panel) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set panel width, no persistence")
	}

	if n.Set {
		n.Persistence.SetPanelWidth(n.Width)
	}
	fmt.Printf("%dpx\n", n.Persistence.PanelWidth())
	return nil
}
