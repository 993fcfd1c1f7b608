package plan

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/planbook/planbook/pkg/dateutil"
)

const day = dateutil.Key("2026-08-29")

func TestAddTaskKeepsSorted(t *testing.T) {
	r := NewDayRecord()
	starts := []string{"14:00", "09:00", "22:15", "07:30", "11:45"}
	for _, s := range starts {
		r.AddTask(TaskInput{Start: s, End: "23:59", Name: "task at " + s})
		if !sort.SliceIsSorted(r.Tasks, func(i, j int) bool {
			return r.Tasks[i].Start < r.Tasks[j].Start
		}) {
			t.Fatalf("tasks out of order after adding %s", s)
		}
	}
	if len(r.Tasks) != len(starts) {
		t.Fatalf("expected %d tasks, got %d", len(starts), len(r.Tasks))
	}
	if r.Tasks[0].Start != "07:30" || r.Tasks[4].Start != "22:15" {
		t.Fatalf("unexpected order: %s .. %s", r.Tasks[0].Start, r.Tasks[4].Start)
	}
}

func TestAddTaskStableOnEqualStarts(t *testing.T) {
	r := NewDayRecord()
	r.AddTask(TaskInput{Start: "09:00", Name: "first"})
	r.AddTask(TaskInput{Start: "09:00", Name: "second"})
	r.AddTask(TaskInput{Start: "09:00", Name: "third"})

	want := []string{"first", "second", "third"}
	for i, name := range want {
		if r.Tasks[i].Name != name {
			t.Fatalf("expected %s at %d, got %s", name, i, r.Tasks[i].Name)
		}
	}
}

func TestAddTaskFreshIncomplete(t *testing.T) {
	r := NewDayRecord()
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		task := r.AddTask(TaskInput{Start: "08:00", Name: "t"})
		if task.Done {
			t.Fatalf("new task must start incomplete")
		}
		if task.ID == "" || seen[task.ID] {
			t.Fatalf("expected fresh id, got %q", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestUpdateTask(t *testing.T) {
	r := NewDayRecord()
	task := r.AddTask(TaskInput{Start: "10:00", End: "11:00", Name: "old", Category: "Study"})
	task.Done = true

	if !r.UpdateTask(task.ID, TaskInput{Start: "06:00", End: "07:00", Name: "new", Category: "Travel"}) {
		t.Fatalf("expected update to hit")
	}
	got := r.Tasks[0]
	if got.Name != "new" || got.Start != "06:00" || got.Category != "Travel" {
		t.Fatalf("fields not overwritten: %+v", got)
	}
	if !got.Done {
		t.Fatalf("update must not touch the completion flag")
	}

	if r.UpdateTask("missing", TaskInput{Name: "x"}) {
		t.Fatalf("unknown id must be a no-op")
	}
}

func TestToggleTaskIsItsOwnInverse(t *testing.T) {
	r := NewDayRecord()
	task := r.AddTask(TaskInput{Start: "10:00", Name: "t"})

	if got := r.ToggleTask(task.ID); got == nil || !got.Done {
		t.Fatalf("expected first toggle to complete the task")
	}
	if got := r.ToggleTask(task.ID); got == nil || got.Done {
		t.Fatalf("expected second toggle to restore the task")
	}
	if got := r.ToggleTask("missing"); got != nil {
		t.Fatalf("unknown id must return nil")
	}
}

func TestStatsRounding(t *testing.T) {
	cases := []struct {
		total, completed, rate int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{3, 1, 33},
		{3, 2, 67},
		{2, 1, 50},
		{8, 1, 13}, // 12.5 rounds up
		{4, 4, 100},
	}
	for _, tc := range cases {
		r := NewDayRecord()
		for i := 0; i < tc.total; i++ {
			task := r.AddTask(TaskInput{Start: "09:00", Name: "t"})
			if i < tc.completed {
				task.Done = true
			}
		}
		s := r.Stats()
		if s.Total != tc.total || s.Completed != tc.completed || s.Rate != tc.rate {
			t.Fatalf("%d/%d: expected rate %d, got %+v", tc.completed, tc.total, tc.rate, s)
		}
	}
}

func TestRemoveTaskUnknownIDNoOp(t *testing.T) {
	r := NewDayRecord()
	r.AddTask(TaskInput{Start: "09:00", Name: "keep"})

	if r.RemoveTask("missing") {
		t.Fatalf("unknown id must not remove anything")
	}
	if len(r.Tasks) != 1 || r.Tasks[0].Name != "keep" {
		t.Fatalf("collection changed by a no-op delete")
	}
}

func TestAddTopicBlankDeclined(t *testing.T) {
	r := NewDayRecord()
	for _, topic := range []string{"", "   ", "\t"} {
		if st := r.AddTopic(day, TopicInput{Topic: topic}); st != nil {
			t.Fatalf("expected blank topic %q to be declined", topic)
		}
	}
	if len(r.Topics) != 0 {
		t.Fatalf("topic collection must stay empty")
	}
}

func TestAddTopicDefaults(t *testing.T) {
	r := NewDayRecord()
	st := r.AddTopic(day, TopicInput{Topic: "  Linear Algebra  "})
	if st == nil {
		t.Fatalf("expected topic to be added")
	}
	if st.Topic != "Linear Algebra" {
		t.Fatalf("expected trimmed topic, got %q", st.Topic)
	}
	if st.Minutes.IsSet() {
		t.Fatalf("expected minutes to stay unset")
	}
	if st.Difficulty != Intermediate {
		t.Fatalf("expected default difficulty, got %s", st.Difficulty)
	}
	if st.Resource != DefaultResource {
		t.Fatalf("expected default resource, got %s", st.Resource)
	}
	if st.Date != day {
		t.Fatalf("expected date stamp %s, got %s", day, st.Date)
	}
}

func TestStudySummaryLenient(t *testing.T) {
	r := NewDayRecord()
	r.AddTopic(day, TopicInput{Topic: "Algebra", Minutes: "30"})
	r.AddTopic(day, TopicInput{Topic: "Calculus"})
	r.AddTopic(day, TopicInput{Topic: "Geometry", Minutes: "abc"})

	s := r.StudySummary()
	if s.Sessions != 3 {
		t.Fatalf("expected 3 sessions, got %d", s.Sessions)
	}
	if s.Minutes != 30 {
		t.Fatalf("expected 30 minutes, got %d", s.Minutes)
	}
}

func TestAddActivityNoGuard(t *testing.T) {
	r := NewDayRecord()
	a := r.AddActivity(day, ActivityInput{Type: "", Minutes: "", Done: ""})
	if a == nil || len(r.Practice) != 1 {
		t.Fatalf("activity adds have no empty guard")
	}
	if a.Done {
		t.Fatalf("empty done input must not complete the activity")
	}
}

func TestActivityDoneLiteral(t *testing.T) {
	r := NewDayRecord()
	cases := map[string]bool{
		"true": true,
		"TRUE": false,
		"yes":  false,
		"1":    false,
		"":     false,
	}
	for in, want := range cases {
		a := r.AddActivity(day, ActivityInput{Type: "Podcast", Done: in})
		if a.Done != want {
			t.Fatalf("done input %q: expected %v", in, want)
		}
	}
}

func TestPracticeSummary(t *testing.T) {
	r := NewDayRecord()
	r.AddActivity(day, ActivityInput{Type: "Podcast", Minutes: "25", Done: "true"})
	r.AddActivity(day, ActivityInput{Type: "Writing", Minutes: "oops"})
	r.AddActivity(day, ActivityInput{Type: "Reading", Minutes: "15"})

	s := r.PracticeSummary()
	if s.Total != 3 || s.Completed != 1 || s.Minutes != 40 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestDayRecordRoundTrip(t *testing.T) {
	r := NewDayRecord()
	r.AddTask(TaskInput{Start: "09:00", End: "10:00", Name: "standup", Category: "Work"})
	done := r.AddTask(TaskInput{Start: "07:00", End: "07:30", Name: "run"})
	r.ToggleTask(done.ID)
	r.AddTopic(day, TopicInput{Topic: "Algebra", Minutes: "45", Difficulty: Advanced, Resource: "Book", Notes: "ch. 3"})
	r.AddTopic(day, TopicInput{Topic: "Calculus", Minutes: "abc"})
	r.AddActivity(day, ActivityInput{Type: "Podcast", Minutes: "25", Done: "true", Content: "ep 12"})

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back := NewDayRecord()
	if err := json.Unmarshal(data, back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	again, err := json.Marshal(back)
	if err != nil {
		t.Fatalf("marshal again: %v", err)
	}
	if string(data) != string(again) {
		t.Fatalf("round trip changed the record:\n%s\n%s", data, again)
	}
	if len(back.Tasks) != 2 || back.Tasks[0].Name != "run" || !back.Tasks[0].Done {
		t.Fatalf("task order or state lost: %+v", back.Tasks)
	}
	if back.Topics[1].Minutes.Minutes() != 0 || back.Topics[1].Minutes.String() != "abc" {
		t.Fatalf("lenient duration not preserved: %+v", back.Topics[1].Minutes)
	}
	if back.StudySummary().Minutes != 45 {
		t.Fatalf("expected 45 study minutes after round trip")
	}
}

func TestDurationControlCharactersSurviveEncoding(t *testing.T) {
	r := NewDayRecord()
	r.AddTopic(day, TopicInput{Topic: "Focus", Minutes: "\x1bweird"})

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal with control-character minutes: %v", err)
	}
	back := NewDayRecord()
	if err := json.Unmarshal(data, back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := back.Topics[0].Minutes
	if !got.IsSet() {
		t.Fatalf("expected minutes to stay set")
	}
	if got.String() != "\x1bweird" {
		t.Fatalf("stored text changed: %q", got.String())
	}
	if got.Minutes() != 0 {
		t.Fatalf("non-numeric minutes must sum as 0, got %d", got.Minutes())
	}
}

func TestDurationParse(t *testing.T) {
	cases := []struct {
		in      string
		set     bool
		minutes int
	}{
		{"", false, 0},
		{"  ", false, 0},
		{"30", true, 30},
		{" 45 ", true, 45},
		{"abc", true, 0},
		{"-10", true, 0},
	}
	for _, tc := range cases {
		d := ParseDuration(tc.in)
		if d.IsSet() != tc.set || d.Minutes() != tc.minutes {
			t.Fatalf("%q: expected set=%v minutes=%d, got set=%v minutes=%d",
				tc.in, tc.set, tc.minutes, d.IsSet(), d.Minutes())
		}
	}
}
