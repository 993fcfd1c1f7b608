package options

import (
	"github.com/spf13/cobra"

	"github.com/planbook/planbook/pkg/plan"
)

// TaskOptions captures the editable task fields as flags.
type TaskOptions struct {
	Start    string
	End      string
	Category string
	Repeat   int
}

// AddTaskArgs wires the task field flags.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Start, "start", "s", "",
		`Start time as zero-padded 24h "HH:MM", example: --start=09:00.`)
	cmd.Flags().StringVarP(&o.End, "end", "e", "",
		`End time as zero-padded 24h "HH:MM".`)
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		`Free-form category tag, example: --category=Study.`)
}

// AddRepeatArg registers the recurring-task flag.
func AddRepeatArg(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().IntVarP(&o.Repeat, "repeat", "r", 1,
		"Repeat the task over this many consecutive days.")
}

// Input assembles the task input from the flags and the given name.
func (o *TaskOptions) Input(name string) plan.TaskInput {
	return plan.TaskInput{
		Start:    o.Start,
		End:      o.End,
		Name:     name,
		Category: o.Category,
	}
}
