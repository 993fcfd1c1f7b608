package plan

import (
	"strings"

	"github.com/planbook/planbook/pkg/dateutil"
)

// Difficulty rates a study topic.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// DefaultResource is recorded when no study resource was named.
const DefaultResource = "Other"

// StudyTopic is one study session logged against a day.
type StudyTopic struct {
	ID         string       `json:"id"`
	Topic      string       `json:"topic"`
	Minutes    Duration     `json:"minutes"`
	Difficulty Difficulty   `json:"difficulty"`
	Resource   string       `json:"resource"`
	Notes      string       `json:"notes,omitempty"`
	Date       dateutil.Key `json:"date"`
}

// TopicInput carries the caller-provided fields for a study topic.
// Minutes is kept as entered; see Duration.
type TopicInput struct {
	Topic      string
	Minutes    string
	Difficulty Difficulty
	Resource   string
	Notes      string
}

// StudySummary aggregates a day's study sessions.
type StudySummary struct {
	Sessions int `json:"sessions"`
	Minutes  int `json:"minutes"`
}

// AddTopic appends a study topic stamped with the given day. A topic
// that trims to empty is silently declined and nil is returned. Append
// order is display order.
func (r *DayRecord) AddTopic(on dateutil.Key, in TopicInput) *StudyTopic {
	topic := strings.TrimSpace(in.Topic)
	if topic == "" {
		return nil
	}
	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = Intermediate
	}
	resource := in.Resource
	if resource == "" {
		resource = DefaultResource
	}
	st := &StudyTopic{
		ID:         NewID(),
		Topic:      topic,
		Minutes:    ParseDuration(in.Minutes),
		Difficulty: difficulty,
		Resource:   resource,
		Notes:      strings.TrimSpace(in.Notes),
		Date:       stamp(on),
	}
	r.Topics = append(r.Topics, st)
	return st
}

// RemoveTopic deletes the study topic with the given id if present.
func (r *DayRecord) RemoveTopic(id string) bool {
	for i, st := range r.Topics {
		if st.ID == id {
			r.Topics = append(r.Topics[:i], r.Topics[i+1:]...)
			return true
		}
	}
	return false
}

// StudySummary totals the day's sessions. Unset and non-numeric minute
// values contribute nothing to the sum.
func (r *DayRecord) StudySummary() StudySummary {
	s := StudySummary{Sessions: len(r.Topics)}
	for _, st := range r.Topics {
		s.Minutes += st.Minutes.Minutes()
	}
	return s
}
