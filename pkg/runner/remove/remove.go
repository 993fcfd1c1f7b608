package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/planbook/planbook/pkg/app"
	"github.com/planbook/planbook/pkg/dateutil"
	"github.com/planbook/planbook/pkg/printers"
)

// Kind selects which collection of the day an id is removed from.
type Kind string

const (
	KindTask     Kind = "task"
	KindStudy    Kind = "study"
	KindPractice Kind = "practice"
)

// ParseKind maps a command argument to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindTask, KindStudy, KindPractice:
		return Kind(s), nil
	}
	return "", fmt.Errorf("remove: unknown kind %q, want task, study, or practice", s)
}

// Remove deletes one item from a day's record. Removing an id that does
// not exist is a quiet success.
type Remove struct {
	On      dateutil.Key
	Kind    Kind
	ID      string
	ShowID  bool
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("remove: no service configured")
	}
	var err error
	switch n.Kind {
	case KindTask:
		err = n.Service.DeleteTask(ctx, n.On, n.ID)
	case KindStudy:
		err = n.Service.DeleteTopic(ctx, n.On, n.ID)
	case KindPractice:
		err = n.Service.DeleteActivity(ctx, n.On, n.ID)
	default:
		err = fmt.Errorf("remove: unknown kind %q", n.Kind)
	}
	if err != nil {
		return err
	}
	r, err := n.Service.Day(ctx, n.On)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Day(n.On, r)
	return nil
}
