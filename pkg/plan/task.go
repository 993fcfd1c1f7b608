package plan

// Task is a timed entry in the day's schedule. Start and End are
// zero-padded 24h "HH:MM" strings. End is not validated against Start;
// a task may record end before start and that is kept as entered.
type Task struct {
	ID       string `json:"id"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Done     bool   `json:"completed"`
}

// TaskInput carries the caller-provided fields for a task.
type TaskInput struct {
	Start    string
	End      string
	Name     string
	Category string
}

// TaskStats summarizes completion for one day's tasks.
type TaskStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Rate      int `json:"rate"` // percent, rounded half-up
}

// AddTask appends a new incomplete task with a fresh id and keeps the
// list sorted by start time.
func (r *DayRecord) AddTask(in TaskInput) *Task {
	t := &Task{
		ID:       NewID(),
		Start:    in.Start,
		End:      in.End,
		Name:     in.Name,
		Category: in.Category,
	}
	r.Tasks = append(r.Tasks, t)
	sortTasks(r.Tasks)
	return t
}

// UpdateTask overwrites the editable fields of the task with the given id
// and re-sorts. The completion flag is untouched. Unknown ids are a
// silent no-op; the return reports whether anything changed.
func (r *DayRecord) UpdateTask(id string, in TaskInput) bool {
	for _, t := range r.Tasks {
		if t.ID == id {
			t.Start = in.Start
			t.End = in.End
			t.Name = in.Name
			t.Category = in.Category
			sortTasks(r.Tasks)
			return true
		}
	}
	return false
}

// RemoveTask deletes the task with the given id if present.
func (r *DayRecord) RemoveTask(id string) bool {
	for i, t := range r.Tasks {
		if t.ID == id {
			r.Tasks = append(r.Tasks[:i], r.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleTask flips the completion flag for the given id. Returns the
// task, or nil when the id is unknown.
func (r *DayRecord) ToggleTask(id string) *Task {
	for _, t := range r.Tasks {
		if t.ID == id {
			t.Done = !t.Done
			return t
		}
	}
	return nil
}

// Stats computes the day's task completion numbers. Rate is the percent
// of tasks done, rounded half-up, and 0 for an empty day.
func (r *DayRecord) Stats() TaskStats {
	s := TaskStats{Total: len(r.Tasks)}
	for _, t := range r.Tasks {
		if t.Done {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Rate = (s.Completed*100*2 + s.Total) / (s.Total * 2)
	}
	return s
}
