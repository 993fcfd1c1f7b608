// Package tui is a small interactive day browser over the planner:
// arrow keys move between days and tasks, space toggles completion.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/planbook/planbook/pkg/app"
	"github.com/planbook/planbook/pkg/dateutil"
	"github.com/planbook/planbook/pkg/plan"
)

// Model is the Bubble Tea model for the day browser.
type Model struct {
	svc    *app.Service
	day    dateutil.Key
	record *plan.DayRecord
	cursor int
	err    error
	width  int
}

// NewModel creates a browser positioned on the given day.
func NewModel(svc *app.Service, day dateutil.Key) Model {
	m := Model{svc: svc, day: day}
	m.reload()
	return m
}

func (m *Model) reload() {
	r, err := m.svc.Day(context.Background(), m.day)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.record = r
	if m.cursor >= len(r.Tasks) {
		m.cursor = len(r.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "left", "h":
			m.day = m.day.AddDays(-1)
			m.cursor = 0
			m.reload()
			return m, nil

		case "right", "l":
			m.day = m.day.AddDays(1)
			m.cursor = 0
			m.reload()
			return m, nil

		case "t":
			m.day = dateutil.Today()
			m.cursor = 0
			m.reload()
			return m, nil

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "j":
			if m.record != nil && m.cursor < len(m.record.Tasks)-1 {
				m.cursor++
			}
			return m, nil

		case " ", "enter":
			if m.record == nil || m.cursor >= len(m.record.Tasks) {
				return m, nil
			}
			id := m.record.Tasks[m.cursor].ID
			if _, err := m.svc.ToggleTask(context.Background(), m.day, id); err != nil {
				m.err = err
				return m, nil
			}
			m.reload()
			return m, nil

		case "r":
			m.reload()
			return m, nil
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n" + helpStyle.Render("q quit")
	}
	if m.record == nil {
		return helpStyle.Render("loading")
	}

	s := titleStyle.Render(fmt.Sprintf("%s (%s)", m.day.Label(), m.day.DayName())) + "\n\n"

	if len(m.record.Tasks) == 0 {
		s += emptyStyle.Render("no tasks") + "\n"
	}
	for i, t := range m.record.Tasks {
		mark := "·"
		line := ""
		if t.Done {
			mark = "✔"
		}
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line = fmt.Sprintf("%s%s %s-%s  %s", cursor, mark, t.Start, t.End, t.Name)
		if t.Category != "" {
			line += "  " + faintStyle.Render(t.Category)
		}
		switch {
		case i == m.cursor:
			s += selectedStyle.Render(line) + "\n"
		case t.Done:
			s += doneStyle.Render(line) + "\n"
		default:
			s += line + "\n"
		}
	}

	stats := m.record.Stats()
	study := m.record.StudySummary()
	practice := m.record.PracticeSummary()
	s += "\n" + faintStyle.Render(fmt.Sprintf(
		"%d of %d tasks done (%d%%)  |  study %d min  |  practice %d min",
		stats.Completed, stats.Total, stats.Rate, study.Minutes, practice.Minutes)) + "\n"

	s += "\n" + helpStyle.Render("←/→ day  ↑/↓ task  space toggle  t today  q quit") + "\n"
	return s
}
