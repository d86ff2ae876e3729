package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/commands/options"
	"tableflip.dev/daygrid/pkg/nav"
	"tableflip.dev/daygrid/pkg/runner/show"
	"tableflip.dev/daygrid/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addShow(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	mode := nav.ViewMonth
	cmd := &cobra.Command{
		Use:     "show [year|month|week|day]",
		Aliases: []string{"view"},
		Short:   "Show a calendar projection",
		Example: `
daygrid show month
daygrid show day --on="2026-09-01"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			m, err := nav.ParseViewMode(args[0])
			if err != nil {
				return err
			}
			mode = m
			return nil
		},
		ValidArgs: []string{"year", "month", "week", "day"},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := show.Show{
				ShowID:      io.ShowID,
				Mode:        mode,
				On:          on,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
