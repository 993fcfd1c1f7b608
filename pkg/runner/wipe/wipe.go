package wipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/planbook/planbook/pkg/app"
)

// Wipe erases every stored day. Refuses to run without Confirm.
type Wipe struct {
	Confirm bool
	Service *app.Service
}

func (n *Wipe) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("wipe: no service configured")
	}
	if !n.Confirm {
		return errors.New("wipe: refusing to erase everything without --confirm")
	}
	if err := n.Service.ClearAll(ctx); err != nil {
		return err
	}
	fmt.Println("all planner data erased")
	return nil
}
