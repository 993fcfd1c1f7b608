package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/planbook/planbook/pkg/commands/options"
	"github.com/planbook/planbook/pkg/plan"
	"github.com/planbook/planbook/pkg/runner/add"
)

func addAddStudy(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	in := plan.TopicInput{}
	difficulty := ""

	cmd := &cobra.Command{
		Use:   "study <topic>",
		Short: "Log a study session",
		Example: `
planbook add study "Linear Algebra" --minutes=45 --difficulty=Advanced --resource=Book
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a topic")
			}
			in.Topic = strings.Join(args, " ")
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
			in.Difficulty = plan.Difficulty(difficulty)

			s := add.Study{
				On:      on,
				Input:   in,
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&in.Minutes, "minutes", "m", "",
		"Session length in minutes.")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "",
		"One of Beginner, Intermediate, or Advanced. Defaults to Intermediate.")
	cmd.Flags().StringVarP(&in.Resource, "resource", "r", "",
		`Resource used, example: --resource=Book. Defaults to "Other".`)
	cmd.Flags().StringVarP(&in.Notes, "notes", "n", "", "Free-form notes.")
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
