// Package plan holds the per-day planner record and the pure operations
// over it. Nothing here touches persistence; callers load a DayRecord,
// operate on it, and store it back.
package plan

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/planbook/planbook/pkg/dateutil"
)

// DayRecord is everything recorded for one calendar day.
type DayRecord struct {
	Tasks    []*Task             `json:"tasks"`
	Topics   []*StudyTopic       `json:"topics"`
	Practice []*PracticeActivity `json:"practice"`
}

// NewDayRecord returns an empty record.
func NewDayRecord() *DayRecord {
	return &DayRecord{}
}

// NewID returns an opaque unique token: millisecond timestamp in base 36
// plus a random suffix. Unique enough for a single user on one device.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + "-" + uuid.NewString()[:8]
}

// sortTasks keeps tasks ascending by start time. Start times are
// zero-padded "HH:MM" strings, so the lexicographic compare is the
// chronological one. The stable sort preserves insertion order on ties.
func sortTasks(tasks []*Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Start < tasks[j].Start
	})
}

func stamp(on dateutil.Key) dateutil.Key {
	if on == "" {
		return dateutil.Today()
	}
	return on
}
