package task

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Change a task's title",
		Long: `Replace the title of a task, keeping its position and status.

Examples:
  listo task edit 3f2a... "Buy oat milk"
`,
		Args: cli.Args(cobra.MinimumNArgs(2)),
		RunE: runEdit,
	}

	cli.OutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	task, err := cliInstance.App.TaskService.Edit(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(taskResult{
		TaskJSON: ToJSON(task),
		message:  fmt.Sprintf("✓ Task %s renamed to '%s'", task.ID, task.Title),
	})
}
