package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daygrid",
		Short: base.Wrap80("A calendar journal on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addNote(topLevel)
	addDot(topLevel)
	addDayColor(topLevel)
	addSchedule(topLevel)
	addContent(topLevel)
	addSay(topLevel)
	addTheme(topLevel)
	addPanel(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}
