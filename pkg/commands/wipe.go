package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/planbook/planbook/pkg/runner/wipe"
)

func addWipe(topLevel *cobra.Command) {
	confirm := false

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Erase all planner data",
		Example: `
planbook wipe --confirm
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			s := wipe.Wipe{
				Confirm: confirm,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Really erase everything.")
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
