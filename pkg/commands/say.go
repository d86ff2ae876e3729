package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/runner/say"
	"tableflip.dev/daygrid/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addSay(topLevel *cobra.Command) {
	var text string
	cmd := &cobra.Command{
		Use:   "say <command>",
		Short: "Run a free-text command",
		Example: `
daygrid say today
daygrid say "note: remember the milk"
daygrid say "dot red"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a command")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := say.Say{
				Text:        text,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
