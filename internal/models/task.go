package models

import (
	"fmt"
	"strings"
	"time"
)

// DayLayout is the calendar day format used to group tasks by creation date
const DayLayout = "2006-01-02"

// Task represents a single to-do item
type Task struct {
	ID        string
	Title     string
	Completed bool
	CreatedAt time.Time
}

// Day returns the local calendar day the task was created on
func (t Task) Day() string {
	return t.CreatedAt.Local().Format(DayLayout)
}

// TaskCounts is the active/completed breakdown shown in list headers
type TaskCounts struct {
	Active    int
	Completed int
}

// Total returns the number of tasks counted
func (c TaskCounts) Total() int {
	return c.Active + c.Completed
}

// String renders counts as "N active, M completed"
func (c TaskCounts) String() string {
	return fmt.Sprintf("%d active, %d completed", c.Active, c.Completed)
}

// TaskFilter selects a projection of the task list
type TaskFilter int

const (
	FilterAll TaskFilter = iota
	FilterActive
	FilterCompleted
)

// TaskFilters lists filters in tab order
var TaskFilters = []TaskFilter{FilterAll, FilterActive, FilterCompleted}

// String returns the filter's canonical lowercase name
func (f TaskFilter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Label returns the title-cased tab label
func (f TaskFilter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// EmptyMessage is shown when the filter selects nothing
func (f TaskFilter) EmptyMessage() string {
	switch f {
	case FilterActive:
		return "No active tasks"
	case FilterCompleted:
		return "No completed tasks"
	default:
		return "No tasks yet. Add one to get started!"
	}
}

// Matches reports whether a task belongs to the filter's projection
func (f TaskFilter) Matches(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Next returns the filter after f in tab order, wrapping around
func (f TaskFilter) Next() TaskFilter {
	return TaskFilters[(int(f)+1)%len(TaskFilters)]
}

// Prev returns the filter before f in tab order, wrapping around
func (f TaskFilter) Prev() TaskFilter {
	return TaskFilters[(int(f)+len(TaskFilters)-1)%len(TaskFilters)]
}

// ParseTaskFilter maps a filter name to its TaskFilter
func ParseTaskFilter(s string) (TaskFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "active":
		return FilterActive, nil
	case "completed", "done":
		return FilterCompleted, nil
	}
	return FilterAll, Errorf(ErrValidation, "invalid filter '%s' (must be: all, active, completed)", s)
}
