package task

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long: `Add a new active task to the end of the list.

Examples:
  # Simple task (human-readable output)
  listo task add "Buy milk"

  # JSON output for scripts
  listo task add "Buy milk" --json

  # Quiet mode for bash capture
  TASK_ID=$(listo task add "Buy milk" --quiet)
`,
		Args: cli.Args(cobra.MinimumNArgs(1)),
		RunE: runAdd,
	}

	cli.OutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
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

	task, err := cliInstance.App.TaskService.Create(ctx, strings.Join(args, " "))
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(taskResult{
		TaskJSON: ToJSON(task),
		message:  fmt.Sprintf("✓ Task '%s' added (ID: %s)", task.Title, task.ID),
	})
}
