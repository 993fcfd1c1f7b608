package plan

import (
	"strings"

	"github.com/planbook/planbook/pkg/dateutil"
)

// PracticeActivity is one practice entry logged against a day, like a
// podcast listened to or a writing session.
type PracticeActivity struct {
	ID      string       `json:"id"`
	Type    string       `json:"type"`
	Minutes Duration     `json:"minutes"`
	Done    bool         `json:"completed"`
	Content string       `json:"content,omitempty"`
	Notes   string       `json:"notes,omitempty"`
	Date    dateutil.Key `json:"date"`
}

// ActivityInput carries the caller-provided fields for an activity.
// Done arrives as a string; only the literal "true" marks the activity
// completed.
type ActivityInput struct {
	Type    string
	Minutes string
	Done    string
	Content string
	Notes   string
}

// PracticeSummary aggregates a day's practice activities.
type PracticeSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Minutes   int `json:"minutes"`
}

// AddActivity appends a practice activity stamped with the given day.
// Unlike study topics there is no empty guard; every call records an
// activity.
func (r *DayRecord) AddActivity(on dateutil.Key, in ActivityInput) *PracticeActivity {
	a := &PracticeActivity{
		ID:      NewID(),
		Type:    in.Type,
		Minutes: ParseDuration(in.Minutes),
		Done:    in.Done == "true",
		Content: strings.TrimSpace(in.Content),
		Notes:   strings.TrimSpace(in.Notes),
		Date:    stamp(on),
	}
	r.Practice = append(r.Practice, a)
	return a
}

// RemoveActivity deletes the activity with the given id if present.
func (r *DayRecord) RemoveActivity(id string) bool {
	for i, a := range r.Practice {
		if a.ID == id {
			r.Practice = append(r.Practice[:i], r.Practice[i+1:]...)
			return true
		}
	}
	return false
}

// PracticeSummary totals the day's activities with the same lenient
// minute handling as study sessions.
func (r *DayRecord) PracticeSummary() PracticeSummary {
	s := PracticeSummary{Total: len(r.Practice)}
	for _, a := range r.Practice {
		if a.Done {
			s.Completed++
		}
		s.Minutes += a.Minutes.Minutes()
	}
	return s
}
