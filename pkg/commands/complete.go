package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/planbook/planbook/pkg/commands/options"
	"github.com/planbook/planbook/pkg/runner/toggle"
)

func addDone(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	id := ""

	cmd := &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle a task's completion",
		Long: base.Wrap80("Flips the completion flag of the task with the " +
			"given id. Running it again restores the previous state. An " +
			"unknown id does nothing."),
		Example: `
planbook done m1abc2-4f9e8d7c
planbook done m1abc2-4f9e8d7c --on=yesterday
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}

			s := toggle.Toggle{
				On:      on,
				ID:      id,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
