package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/planbook/planbook/pkg/app"
	"github.com/planbook/planbook/pkg/dateutil"
)

// Run launches the interactive day browser starting on the given day.
func Run(svc *app.Service, day dateutil.Key) error {
	if svc == nil || svc.Persistence == nil {
		return errors.New("tui: no service configured")
	}
	p := tea.NewProgram(NewModel(svc, day), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
