package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/commands/options"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/record"
	"tableflip.dev/daygrid/pkg/runner/dot"
	"tableflip.dev/daygrid/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func colorCompletions() []string {
	names := make([]string, 0, len(record.AllColors()))
	for _, c := range record.AllColors() {
		names = append(names, c.String())
	}
	return names
}

func addDot(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	var color record.ColorCode
	remove := false
	cmd := &cobra.Command{
		Use:     "dot <color>",
		Aliases: []string{"mark"},
		Short:   "Mark a day with a colored dot",
		Example: `
daygrid dot red
daygrid dot green --on="2026-09-01"
daygrid dot blue --remove
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a color")
			}
			c, err := record.ColorByName(args[0])
			if err != nil {
				pp := printers.PrettyPrint{}
				pp.Legend()
				return err
			}
			color = c
			return nil
		},
		ValidArgs: colorCompletions(),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := dot.Dot{
				Color:       color,
				Remove:      remove,
				On:          on,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVar(&remove, "remove", false, "Remove the dot instead of adding it.")
	options.AddOnArgs(cmd, oo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addDayColor(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	var color record.ColorCode
	clear := false
	cmd := &cobra.Command{
		Use:   "color [color]",
		Short: "Tint a whole day cell",
		Example: `
daygrid color purple
daygrid color --clear
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if clear {
				return nil
			}
			if len(args) != 1 {
				return errors.New("requires a color, or --clear")
			}
			c, err := record.ColorByName(args[0])
			if err != nil {
				pp := printers.PrettyPrint{}
				pp.Legend()
				return err
			}
			color = c
			return nil
		},
		ValidArgs: colorCompletions(),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := dot.DayColor{
				Color:       color,
				Clear:       clear,
				On:          on,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the day color.")
	options.AddOnArgs(cmd, oo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
