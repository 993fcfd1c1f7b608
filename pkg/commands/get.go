package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/planbook/planbook/pkg/commands/options"
	"github.com/planbook/planbook/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get [date]",
		Aliases: []string{"show", "day"},
		Short:   "Show the planner for a day",
		Example: `
planbook get
planbook get 2026-08-29
planbook get --on=tomorrow
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 1 {
				return errors.New("at most one date")
			}
			if len(args) == 1 {
				if oo.OnString != "" {
					return errors.New("date given twice, confused")
				}
				oo.OnString = args[0]
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return dayCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
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

			s := get.Get{
				On:      on,
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

// dayCompletions offers recorded day keys for shell completion.
func dayCompletions(toComplete string) []string {
	svc, err := loadService()
	if err != nil {
		return nil
	}
	keys := svc.Persistence.Keys(context.Background())
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if strings.HasPrefix(string(k), toComplete) {
			out = append(out, string(k))
		}
	}
	return out
}
