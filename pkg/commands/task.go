package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/planbook/planbook/pkg/commands/options"
	"github.com/planbook/planbook/pkg/runner/add"
)

func addAddTask(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	name := ""

	cmd := &cobra.Command{
		Use:   "task <name>",
		Short: "Add a timed task",
		Example: `
planbook add task standup --start=09:00 --end=09:15 --category=Work
planbook add task "morning run" --start=07:00 --repeat=5
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task name")
			}
			name = strings.Join(args, " ")
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

			s := add.Task{
				On:      on,
				Input:   to.Input(name),
				Repeat:  to.Repeat,
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)
	options.AddRepeatArg(cmd, to)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
