// Package app wires the pure record operations to persistence. Every
// mutation loads the day's record, operates on it, and writes it back,
// so persistence always holds the latest copy.
package app

import (
	"context"
	"errors"

	"github.com/planbook/planbook/pkg/dateutil"
	"github.com/planbook/planbook/pkg/plan"
	"github.com/planbook/planbook/pkg/store"
)

// Service provides high-level planner operations for CLIs and UIs.
type Service struct {
	Persistence store.Persistence
}

var errNoPersistence = errors.New("app: no persistence configured")

// WeekDay is one row of the weekly overview.
type WeekDay struct {
	Key        dateutil.Key `json:"date"`
	Name       string       `json:"dayName"`
	Label      string       `json:"dateLabel"`
	Completion int          `json:"completionRate"`
}

// Day loads the record for the key, defaulting to an empty record.
func (s *Service) Day(ctx context.Context, key dateutil.Key) (*plan.DayRecord, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Day(key)
}

// AddTask adds a task to the day and persists the record.
func (s *Service) AddTask(ctx context.Context, key dateutil.Key, in plan.TaskInput) (*plan.Task, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	r, err := s.Persistence.Day(key)
	if err != nil {
		return nil, err
	}
	t := r.AddTask(in)
	if err := s.Persistence.Save(key, r); err != nil {
		return nil, err
	}
	return t, nil
}

// AddRecurringTask adds the task to each of the days consecutive days
// starting at start. Each day's record is loaded and saved independently
// and each day gets its own task id; the copies are not linked. Callers
// holding a record for one of the target days should reload it. A day
// count below one creates nothing and is not an error.
func (s *Service) AddRecurringTask(ctx context.Context, start dateutil.Key, in plan.TaskInput, days int) ([]*plan.Task, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	if days < 1 {
		return nil, nil
	}
	created := make([]*plan.Task, 0, days)
	for i := 0; i < days; i++ {
		key := start.AddDays(i)
		r, err := s.Persistence.Day(key)
		if err != nil {
			return created, err
		}
		t := r.AddTask(in)
		if err := s.Persistence.Save(key, r); err != nil {
			return created, err
		}
		created = append(created, t)
	}
	return created, nil
}

// UpdateTask overwrites the task's editable fields. Unknown ids are a
// silent no-op; the record is persisted either way.
func (s *Service) UpdateTask(ctx context.Context, key dateutil.Key, id string, in plan.TaskInput) (*plan.DayRecord, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	r, err := s.Persistence.Day(key)
	if err != nil {
		return nil, err
	}
	r.UpdateTask(id, in)
	if err := s.Persistence.Save(key, r); err != nil {
		return nil, err
	}
	return r, nil
}

// DeleteTask removes the task if present and persists regardless.
func (s *Service) DeleteTask(ctx context.Context, key dateutil.Key, id string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	r, err := s.Persistence.Day(key)
	if err != nil {
		return err
	}
	r.RemoveTask(id)
	return s.Persistence.Save(key, r)
}

// ToggleTask flips a task's completion flag. Returns the task, or nil
// for an unknown id.
func (s *Service) ToggleTask(ctx context.Context, key dateutil.Key, id string) (*plan.Task, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	r, err := s.Persistence.Day(key)
	if err != nil {
		return nil, err
	}
	t := r.ToggleTask(id)
	if err := s.Persistence.Save(key, r); err != nil {
		return nil, err
	}
	return t, nil
}

// AddTopic records a study topic for the day. A blank topic is silently
// declined and nothing is persisted.
func (s *Service) AddTopic(ctx context.Context, key dateutil.Key, in plan.TopicInput) (*plan.StudyTopic, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	r, err := s.Persistence.Day(key)
	if err != nil {
		return nil, err
	}
	st := r.AddTopic(key, in)
	if st == nil {
		return nil, nil
	}
	if err := s.Persistence.Save(key, r); err != nil {
		return nil, err
	}
	return st, nil
}

// DeleteTopic removes the study topic if present and persists regardless.
func (s *Service) DeleteTopic(ctx context.Context, key dateutil.Key, id string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	r, err := s.Persistence.Day(key)
	if err != nil {
		return err
	}
	r.RemoveTopic(id)
	return s.Persistence.Save(key, r)
}

// AddActivity records a practice activity for the day.
func (s *Service) AddActivity(ctx context.Context, key dateutil.Key, in plan.ActivityInput) (*plan.PracticeActivity, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	r, err := s.Persistence.Day(key)
	if err != nil {
		return nil, err
	}
	a := r.AddActivity(key, in)
	if err := s.Persistence.Save(key, r); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteActivity removes the activity if present and persists regardless.
func (s *Service) DeleteActivity(ctx context.Context, key dateutil.Key, id string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	r, err := s.Persistence.Day(key)
	if err != nil {
		return err
	}
	r.RemoveActivity(id)
	return s.Persistence.Save(key, r)
}

// Week computes the Monday-start week containing the anchor and returns
// seven completion-rate entries. Read-only; nothing is persisted.
func (s *Service) Week(ctx context.Context, anchor dateutil.Key) ([]WeekDay, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	start := anchor.StartOfWeek()
	week := make([]WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		key := start.AddDays(i)
		r, err := s.Persistence.Day(key)
		if err != nil {
			return nil, err
		}
		week = append(week, WeekDay{
			Key:        key,
			Name:       key.DayName(),
			Label:      key.Label(),
			Completion: r.Stats().Rate,
		})
	}
	return week, nil
}

// ClearAll wipes every stored day.
func (s *Service) ClearAll(ctx context.Context) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	return s.Persistence.ClearAll()
}
