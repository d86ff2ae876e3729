package options

import (
	"github.com/spf13/cobra"
)

// IDOptions toggles printing record and block ids.
type IDOptions struct {
	ShowID bool
}

func AddIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "id", "i", false,
		"Show ids for schedule and content blocks.")
}
