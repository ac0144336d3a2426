package task

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/models"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ToggleCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ClearCmd())

	return cmd
}

// TaskJSON is the JSON shape of a task in command output
type TaskJSON struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID lets quiet mode print just the id
func (t TaskJSON) GetID() string {
	return t.ID
}

// ToJSON converts a task to its output shape
func ToJSON(task models.Task) TaskJSON {
	return TaskJSON{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
	}
}

// ListToJSON converts tasks to their output shape, never nil
func ListToJSON(tasks []models.Task) []TaskJSON {
	out := make([]TaskJSON, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ToJSON(t))
	}
	return out
}
