package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/commands/options"
	"tableflip.dev/daygrid/pkg/record"
	"tableflip.dev/daygrid/pkg/runner/content"
	"tableflip.dev/daygrid/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addContent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "content",
		Aliases: []string{"blocks"},
		Short:   "Manage a day's content blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addContentText(cmd)
	addContentHeading(cmd)
	addContentChecklist(cmd)
	addContentBullets(cmd)
	addContentCode(cmd)
	addContentLink(cmd)
	addContentDivider(cmd)
	addContentRemove(cmd)
	addContentMove(cmd)
	addContentCheck(cmd)
	topLevel.AddCommand(cmd)
}

func runContentAdd(oo *options.OnOptions, a content.Add) error {
	on, err := oo.GetOn()
	if err != nil {
		return err
	}
	p, err := store.Load(nil)
	if err != nil {
		return err
	}
	a.On = on
	a.Persistence = p
	return output.HandleError(a.Do(context.Background()))
}

func addContentText(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	var text string
	cmd := &cobra.Command{
		Use:   "text <text>",
		Short: "Add a text block",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires text")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContentAdd(oo, content.Add{Kind: record.KindText, Text: text})
		},
	}

	options.AddOnArgs(cmd, oo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addContentHeading(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	var text string
	cmd := &cobra.Command{
		Use:   "heading <text>",
		Short: "Add a heading block",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires heading text")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContentAdd(oo, content.Add{Kind: record.KindHeading, Text: text})
		},
	}

	options.AddOnArgs(cmd, oo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addContentChecklist(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "checklist <item> [item...]",
		Short: "Add a checklist block, one item per argument",
		Example: `
daygrid content checklist "buy milk" "call bob"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires at least one item")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContentAdd(oo, content.Add{Kind: record.KindChecklist, Items: args})
		},
	}

	options.AddOnArgs(cmd, oo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addContentBullets(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "bullets <item> [item...]",
		Short: "Add a bulleted list block, one item per argument",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires at least one item")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContentAdd(oo, content.Add{Kind: record.KindBullets, Items: args})
		},
	}

	options.AddOnArgs(cmd, oo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addContentCode(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	var code, language string
	cmd := &cobra.Command{
		Use:   "code <code>",
		Short: "Add a code block",
		Example: `
daygrid content code --language=go 'fmt.Println("hi")'
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires code")
			}
			code = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContentAdd(oo, content.Add{
				Kind: record.KindCode, Text: code, Language: language,
			})
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Language tag for the code block.")
	options.AddOnArgs(cmd, oo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addContentLink(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	var url, title string
	cmd := &cobra.Command{
		Use:   "link <url>",
		Short: "Add a link block",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a url")
			}
			url = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContentAdd(oo, content.Add{
				Kind: record.KindLink, Text: url, Title: title,
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Display title for the link.")
	options.AddOnArgs(cmd, oo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addContentDivider(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "divider",
		Short: "Add a divider block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContentAdd(oo, content.Add{Kind: record.KindDivider})
		},
	}

	options.AddOnArgs(cmd, oo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addContentRemove(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	var id string
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a content block by id",
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
			s := content.Remove{
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

func addContentMove(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	var id, direction string
	cmd := &cobra.Command{
		Use:   "move <id> <up|down>",
		Short: "Move a content block one position",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a block id and a direction")
			}
			id, direction = args[0], args[1]
			return nil
		},
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := content.Move{
				ID:          id,
				Direction:   direction,
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

func addContentCheck(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	var blockID, itemID string
	cmd := &cobra.Command{
		Use:     "check <block-id> <item-id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle a checklist item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a block id and an item id")
			}
			blockID, itemID = args[0], args[1]
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
			s := content.Check{
				BlockID:     blockID,
				ItemID:      itemID,
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
