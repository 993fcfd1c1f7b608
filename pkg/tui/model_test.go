package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/planbook/planbook/pkg/app"
	"github.com/planbook/planbook/pkg/dateutil"
	"github.com/planbook/planbook/pkg/plan"
	"github.com/planbook/planbook/pkg/store"
)

const day = dateutil.Key("2026-08-26")

func seeded(t *testing.T) *app.Service {
	t.Helper()
	svc := &app.Service{Persistence: store.NewMemory()}
	ctx := context.Background()
	if _, err := svc.AddTask(ctx, day, plan.TaskInput{Start: "09:00", End: "09:15", Name: "standup"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.AddTask(ctx, day, plan.TaskInput{Start: "11:00", End: "12:00", Name: "review"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return svc
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewShowsDay(t *testing.T) {
	m := NewModel(seeded(t), day)

	view := m.View()
	if !strings.Contains(view, "August 26, 2026") {
		t.Fatalf("view missing day label:\n%s", view)
	}
	if !strings.Contains(view, "standup") || !strings.Contains(view, "review") {
		t.Fatalf("view missing tasks:\n%s", view)
	}
	if !strings.Contains(view, "0 of 2 tasks done") {
		t.Fatalf("view missing stats:\n%s", view)
	}
}

func TestToggleThroughUI(t *testing.T) {
	svc := seeded(t)
	var m tea.Model = NewModel(svc, day)

	m, _ = m.Update(key(" "))

	r, err := svc.Day(context.Background(), day)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !r.Tasks[0].Done {
		t.Fatalf("space must toggle the task under the cursor")
	}
	if !strings.Contains(m.View(), "1 of 2 tasks done") {
		t.Fatalf("view not refreshed after toggle:\n%s", m.View())
	}
}

func TestDayNavigation(t *testing.T) {
	var m tea.Model = NewModel(seeded(t), day)

	m, _ = m.Update(key("l"))
	if !strings.Contains(m.View(), "August 27, 2026") {
		t.Fatalf("expected next day:\n%s", m.View())
	}
	if !strings.Contains(m.View(), "no tasks") {
		t.Fatalf("next day should be empty:\n%s", m.View())
	}

	m, _ = m.Update(key("h"))
	if !strings.Contains(m.View(), "August 26, 2026") {
		t.Fatalf("expected original day back:\n%s", m.View())
	}
}

func TestCursorBounds(t *testing.T) {
	var m tea.Model = NewModel(seeded(t), day)

	// Never moves past the last task or before the first.
	for i := 0; i < 5; i++ {
		m, _ = m.Update(key("j"))
	}
	m, _ = m.Update(key(" "))

	r, _ := (&app.Service{Persistence: m.(Model).svc.Persistence}).Day(context.Background(), day)
	if !r.Tasks[1].Done {
		t.Fatalf("cursor should be clamped to the last task")
	}

	for i := 0; i < 5; i++ {
		m, _ = m.Update(key("k"))
	}
	m, _ = m.Update(key(" "))
	r, _ = (&app.Service{Persistence: m.(Model).svc.Persistence}).Day(context.Background(), day)
	if !r.Tasks[0].Done {
		t.Fatalf("cursor should be clamped to the first task")
	}
}

func TestQuit(t *testing.T) {
	var m tea.Model = NewModel(seeded(t), day)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}
