// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"github.com/planbook/planbook/pkg/dateutil"
)

// OnOptions selects the date a command operates on.
type OnOptions struct {
	OnString string
}

// AddOnArgs wires the date selection flag on the provided command.
func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-02-28". Defaults to today.`)
}

// GetOn resolves the flag to a date key. "today", "tomorrow", and
// "yesterday" are accepted shorthands.
func (o *OnOptions) GetOn() (dateutil.Key, error) {
	switch o.OnString {
	case "", "today":
		return dateutil.Today(), nil
	case "tomorrow":
		return dateutil.Today().AddDays(1), nil
	case "yesterday":
		return dateutil.Today().AddDays(-1), nil
	}
	return dateutil.Parse(o.OnString)
}
