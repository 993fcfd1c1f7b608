package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/planbook/planbook/pkg/commands/options"
	"github.com/planbook/planbook/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	s := remove.Remove{}

	cmd := &cobra.Command{
		Use:       "rm <task|study|practice> <id>",
		Aliases:   []string{"remove", "delete"},
		Short:     "Remove an item from a day",
		ValidArgs: []string{string(remove.KindTask), string(remove.KindStudy), string(remove.KindPractice)},
		Example: `
planbook rm task m1abc2-4f9e8d7c
planbook rm study m1abc2-9d8c7b6a --on=yesterday
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 2 {
				return errors.New("requires a kind and an id")
			}
			var err error
			s.Kind, err = remove.ParseKind(args[0])
			s.ID = args[1]
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s.On, err = oo.GetOn()
			if err != nil {
				return err
			}
			s.ShowID = io.ShowID
			s.Service = svc

			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
