package edit

import (
	"context"
	"errors"
	"fmt"

	"github.com/planbook/planbook/pkg/app"
	"github.com/planbook/planbook/pkg/dateutil"
	"github.com/planbook/planbook/pkg/plan"
	"github.com/planbook/planbook/pkg/printers"
)

// Edit overwrites the editable fields of one task. The completion flag
// is left alone; unknown ids do nothing.
type Edit struct {
	On      dateutil.Key
	ID      string
	Input   plan.TaskInput
	ShowID  bool
	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("edit: no service configured")
	}
	r, err := n.Service.UpdateTask(ctx, n.On, n.ID, n.Input)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(fmt.Sprintf("%s (%s)", n.On.Label(), n.On.DayName()))
	pp.Tasks(r)
	return nil
}
