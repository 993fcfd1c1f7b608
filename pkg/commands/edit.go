package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/planbook/planbook/pkg/commands/options"
	"github.com/planbook/planbook/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	id := ""
	name := ""

	cmd := &cobra.Command{
		Use:   "edit <id> <name>",
		Short: "Rewrite a task's fields",
		Long: base.Wrap80("Overwrites the name, times, and category of the " +
			"task with the given id. The completion flag is untouched and " +
			"unknown ids do nothing."),
		Example: `
planbook edit m1abc2-4f9e8d7c standup --start=09:30 --end=09:45
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 2 {
				return errors.New("requires an id and a task name")
			}
			id = args[0]
			name = strings.Join(args[1:], " ")
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

			s := edit.Edit{
				On:      on,
				ID:      id,
				Input:   to.Input(name),
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
