package toggle

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/planbook/planbook/pkg/app"
	"github.com/planbook/planbook/pkg/dateutil"
)

// Toggle flips the completion flag of one task.
type Toggle struct {
	On      dateutil.Key
	ID      string
	Service *app.Service
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("toggle: no service configured")
	}
	t, err := n.Service.ToggleTask(ctx, n.On, n.ID)
	if err != nil {
		return err
	}
	if t == nil {
		f := color.New(color.Faint)
		_, _ = f.Fprintf(color.Output, "no task %s on %s\n", n.ID, n.On)
		return nil
	}
	if t.Done {
		_, _ = fmt.Fprintf(color.Output, "%s %s\n", color.GreenString("✔"), t.Name)
	} else {
		_, _ = fmt.Fprintf(color.Output, "%s %s\n", color.New(color.Faint).Sprint("·"), t.Name)
	}
	return nil
}
