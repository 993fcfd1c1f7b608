package get

import (
	"context"
	"errors"

	"github.com/planbook/planbook/pkg/app"
	"github.com/planbook/planbook/pkg/dateutil"
	"github.com/planbook/planbook/pkg/printers"
)

// Get renders the full planner view for one day.
type Get struct {
	On      dateutil.Key
	ShowID  bool
	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("get: no service configured")
	}
	r, err := n.Service.Day(ctx, n.On)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Day(n.On, r)
	return nil
}
