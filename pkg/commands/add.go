package commands

import (
	"github.com/spf13/cobra"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something to a day",
		Example: `
planbook add task standup --start=09:00 --end=09:15
planbook add study "Linear Algebra" --minutes=45
planbook add practice Podcast --minutes=25 --done
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddTask(cmd)
	addAddStudy(cmd)
	addAddPractice(cmd)

	topLevel.AddCommand(cmd)
}
