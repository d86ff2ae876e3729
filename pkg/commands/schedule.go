package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/commands/options"
	"tableflip.dev/daygrid/pkg/record"
	"tableflip.dev/daygrid/pkg/runner/schedule"
	"tableflip.dev/daygrid/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addSchedule(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"block"},
		Short:   "Manage a day's time blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addScheduleAdd(cmd)
	addScheduleRemove(cmd)
	topLevel.AddCommand(cmd)
}

func addScheduleAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	var start, end, title string
	category := ""
	cmd := &cobra.Command{
		Use:   "add <start> <end> <title>",
		Short: "Add a time block",
		Example: `
daygrid schedule add 09:00 10:30 standup --category=work
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				return errors.New("requires a start time, an end time, and a title")
			}
			start, end = args[0], args[1]
			title = strings.Join(args[2:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := record.ParseCategory(category)
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := schedule.Add{
				Start:       start,
				End:         end,
				Title:       title,
				Category:    cat,
				On:          on,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "",
		"Block category, one of focus, health, work, personal, other.")
	options.AddOnArgs(cmd, oo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addScheduleRemove(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	var id string
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a time block by id",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a block id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := schedule.Remove{
				ID:          id,
				On:          on,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, oo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
