package store

import (
	"context"
	"testing"

	"github.com/planbook/planbook/pkg/dateutil"
	"github.com/planbook/planbook/pkg/plan"
)

type pathConfig string

func (p pathConfig) BasePath() string { return string(p) }

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(pathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return p
}

func testPersistence(t *testing.T, p Persistence) {
	t.Helper()
	key := dateutil.Key("2026-08-29")

	r, err := p.Day(key)
	if err != nil {
		t.Fatalf("read absent day: %v", err)
	}
	if r == nil || len(r.Tasks) != 0 || len(r.Topics) != 0 || len(r.Practice) != 0 {
		t.Fatalf("absent day must be an empty record, got %+v", r)
	}

	r.AddTask(plan.TaskInput{Start: "09:00", End: "10:00", Name: "standup"})
	r.AddTopic(key, plan.TopicInput{Topic: "Algebra", Minutes: "45"})
	r.AddActivity(key, plan.ActivityInput{Type: "Podcast", Done: "true"})
	if err := p.Save(key, r); err != nil {
		t.Fatalf("save: %v", err)
	}

	back, err := p.Day(key)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(back.Tasks) != 1 || back.Tasks[0].Name != "standup" {
		t.Fatalf("tasks lost: %+v", back.Tasks)
	}
	if len(back.Topics) != 1 || back.Topics[0].Minutes.Minutes() != 45 {
		t.Fatalf("topics lost: %+v", back.Topics)
	}
	if len(back.Practice) != 1 || !back.Practice[0].Done {
		t.Fatalf("practice lost: %+v", back.Practice)
	}

	// Full replace: a save drops anything not in the record.
	back.RemoveTask(back.Tasks[0].ID)
	if err := p.Save(key, back); err != nil {
		t.Fatalf("save replacement: %v", err)
	}
	again, err := p.Day(key)
	if err != nil {
		t.Fatalf("read replacement: %v", err)
	}
	if len(again.Tasks) != 0 || len(again.Topics) != 1 {
		t.Fatalf("save must replace wholesale, got %+v", again)
	}

	other := key.AddDays(1)
	if err := p.Save(other, plan.NewDayRecord()); err != nil {
		t.Fatalf("save second day: %v", err)
	}
	keys := p.Keys(context.Background())
	if len(keys) != 2 || keys[0] != key || keys[1] != other {
		t.Fatalf("expected sorted keys [%s %s], got %v", key, other, keys)
	}

	if err := p.ClearAll(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if keys := p.Keys(context.Background()); len(keys) != 0 {
		t.Fatalf("expected no keys after clear, got %v", keys)
	}
	r, err = p.Day(key)
	if err != nil || len(r.Topics) != 0 {
		t.Fatalf("expected empty record after clear, got %+v (%v)", r, err)
	}
}

func TestDiskvPersistence(t *testing.T) {
	testPersistence(t, load(t))
}

func TestMemoryPersistence(t *testing.T) {
	testPersistence(t, NewMemory())
}

func TestMemoryIsolation(t *testing.T) {
	p := NewMemory()
	key := dateutil.Key("2026-08-29")

	r, _ := p.Day(key)
	r.AddTask(plan.TaskInput{Start: "09:00", Name: "saved"})
	if err := p.Save(key, r); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Mutating a loaded record must not leak into the store before Save.
	loaded, _ := p.Day(key)
	loaded.AddTask(plan.TaskInput{Start: "10:00", Name: "unsaved"})

	again, _ := p.Day(key)
	if len(again.Tasks) != 1 {
		t.Fatalf("unsaved mutation leaked into the store: %+v", again.Tasks)
	}
}
