package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/dates"
)

const layoutShort = "1/2"

// OnOptions selects the day a command operates on. Empty means today.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-02-28" or --on="2/28".`)
}

func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.Parse(dates.LayoutISO, o.OnString)
	if err != nil {
		t, err = time.Parse(layoutShort, o.OnString)
		if err != nil {
			return nil, err
		}
		// Short form has no year; the nearest future occurrence is meant.
		t = t.AddDate(time.Now().Year(), 0, 0)
		if t.Before(time.Now()) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return &t, nil
}
