package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/planbook/planbook/pkg/commands/options"
	"github.com/planbook/planbook/pkg/plan"
	"github.com/planbook/planbook/pkg/runner/add"
)

func addAddPractice(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}
	in := plan.ActivityInput{}
	done := false

	cmd := &cobra.Command{
		Use:   "practice <type>",
		Short: "Log a practice activity",
		Example: `
planbook add practice Podcast --minutes=25 --content="ep 12" --done
planbook add practice Writing --minutes=20
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an activity type")
			}
			in.Type = strings.Join(args, " ")
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
			in.Done = strconv.FormatBool(done)

			s := add.Practice{
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
		"Activity length in minutes.")
	cmd.Flags().BoolVar(&done, "done", false, "Mark the activity completed.")
	cmd.Flags().StringVarP(&in.Content, "content", "c", "", "What the activity covered.")
	cmd.Flags().StringVarP(&in.Notes, "notes", "n", "", "Free-form notes.")
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
