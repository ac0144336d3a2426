package task

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/listo/internal/cli/styles"
	"github.com/thenoetrevino/listo/internal/models"
)

// taskResult is a single task plus the line shown to humans
type taskResult struct {
	TaskJSON
	message string
}

func (r taskResult) String() string {
	return r.message
}

type deletedResult struct {
	ID string `json:"id"`
}

func (r deletedResult) GetID() string {
	return r.ID
}

func (r deletedResult) String() string {
	return fmt.Sprintf("✓ Task %s deleted", r.ID)
}

type clearedResult struct {
	Removed int `json:"removed"`
}

// GetID makes quiet mode print the count
func (r clearedResult) GetID() string {
	return strconv.Itoa(r.Removed)
}

func (r clearedResult) String() string {
	if r.Removed == 0 {
		return "No completed tasks"
	}
	return fmt.Sprintf("✓ Cleared %d completed task(s)", r.Removed)
}

// CountsJSON is the JSON shape of the active/completed breakdown
type CountsJSON struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

type listResult struct {
	Filter string     `json:"filter"`
	Counts CountsJSON `json:"counts"`
	Tasks  []TaskJSON `json:"tasks"`

	filter models.TaskFilter
	counts models.TaskCounts
	tasks  []models.Task
}

func newListResult(filter models.TaskFilter, counts models.TaskCounts, tasks []models.Task) listResult {
	return listResult{
		Filter: filter.String(),
		Counts: CountsJSON{Active: counts.Active, Completed: counts.Completed},
		Tasks:  ListToJSON(tasks),
		filter: filter,
		counts: counts,
		tasks:  tasks,
	}
}

func (r listResult) GetIDs() []string {
	ids := make([]string, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func (r listResult) String() string {
	lines := []string{styles.TitleStyle.Render(r.filter.Label()+" tasks") +
		"  " + styles.SubtitleStyle.Render(r.counts.String())}

	if len(r.tasks) == 0 {
		lines = append(lines, styles.SubtitleStyle.Render(r.filter.EmptyMessage()))
		return strings.Join(lines, "\n")
	}
	for _, t := range r.tasks {
		lines = append(lines, FormatLine(t))
	}
	return strings.Join(lines, "\n")
}
