package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
)

// ToggleCmd returns the task toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a task completed, or active again",
		Long: `Flip a task between active and completed.

Examples:
  listo task toggle 3f2a...
  listo task toggle 3f2a... --json
`,
		Args: cli.Args(cobra.ExactArgs(1)),
		RunE: runToggle,
	}

	cli.OutputFlags(cmd)

	return cmd
}

func runToggle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	task, err := cliInstance.App.TaskService.Toggle(ctx, args[0])
	if err != nil {
		return formatter.Fail(err, "Use 'listo task list' to see task ids")
	}

	state := "active"
	if task.Completed {
		state = "completed"
	}
	return formatter.Success(taskResult{
		TaskJSON: ToJSON(task),
		message:  fmt.Sprintf("Task '%s' marked %s", task.Title, state),
	})
}
