package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/runner/prefs"
	"tableflip.dev/daygrid/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addTheme(topLevel *cobra.Command) {
	var value string
	cmd := &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the color theme",
		Example: `
daygrid theme
daygrid theme dark
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("requires at most one theme name")
			}
			if len(args) == 1 {
				value = args[0]
			}
			return nil
		},
		ValidArgs: []string{string(store.ThemeLight), string(store.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := prefs.Theme{
				Value:       value,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addPanel(topLevel *cobra.Command) {
	width := 0
	set := false
	cmd := &cobra.Command{
		Use:   "panel [width]",
		Short: "Show or set the sidebar panel width in pixels",
		Example: `
daygrid panel
daygrid panel 400
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("requires at most one width")
			}
			if len(args) == 1 {
				w, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				width = w
				set = true
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := prefs.Panel{
				Width:       width,
				Set:         set,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
