package add

import (
	"context"
	"errors"
	"fmt"

	"github.com/planbook/planbook/pkg/app"
	"github.com/planbook/planbook/pkg/dateutil"
	"github.com/planbook/planbook/pkg/plan"
	"github.com/planbook/planbook/pkg/printers"
)

// Task adds a scheduled task, optionally repeated over consecutive days.
type Task struct {
	On      dateutil.Key
	Input   plan.TaskInput
	Repeat  int
	ShowID  bool
	Service *app.Service
}

func (n *Task) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("add: no service configured")
	}
	if n.Repeat > 1 {
		if _, err := n.Service.AddRecurringTask(ctx, n.On, n.Input, n.Repeat); err != nil {
			return err
		}
	} else {
		if _, err := n.Service.AddTask(ctx, n.On, n.Input); err != nil {
			return err
		}
	}

	// The active day may have been one of the recurring targets, so
	// always reload before rendering.
	r, err := n.Service.Day(ctx, n.On)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(fmt.Sprintf("%s (%s)", n.On.Label(), n.On.DayName()))
	pp.Tasks(r)
	return nil
}

// Study logs a study session.
type Study struct {
	On      dateutil.Key
	Input   plan.TopicInput
	ShowID  bool
	Service *app.Service
}

func (n *Study) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("add: no service configured")
	}
	st, err := n.Service.AddTopic(ctx, n.On, n.Input)
	if err != nil {
		return err
	}
	if st == nil {
		return errors.New("add: study topic is required")
	}
	r, err := n.Service.Day(ctx, n.On)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(fmt.Sprintf("%s (%s)", n.On.Label(), n.On.DayName()))
	pp.Study(r)
	return nil
}

// Practice logs a practice activity.
type Practice struct {
	On      dateutil.Key
	Input   plan.ActivityInput
	ShowID  bool
	Service *app.Service
}

func (n *Practice) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("add: no service configured")
	}
	if _, err := n.Service.AddActivity(ctx, n.On, n.Input); err != nil {
		return err
	}
	r, err := n.Service.Day(ctx, n.On)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(fmt.Sprintf("%s (%s)", n.On.Label(), n.On.DayName()))
	pp.Practice(r)
	return nil
}
