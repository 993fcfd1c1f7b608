package week

import (
	"context"
	"errors"

	"github.com/planbook/planbook/pkg/app"
	"github.com/planbook/planbook/pkg/dateutil"
	"github.com/planbook/planbook/pkg/printers"
)

// Week renders the completion overview for the week containing the anchor.
type Week struct {
	Anchor  dateutil.Key
	Service *app.Service
}

func (n *Week) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("week: no service configured")
	}
	days, err := n.Service.Week(ctx, n.Anchor)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Week(days)
	return nil
}
