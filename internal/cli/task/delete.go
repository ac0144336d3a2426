package task

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cli.Args(cobra.ExactArgs(1)),
		RunE:  runDelete,
	}

	cli.OutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	taskID := args[0]

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

	if err := cliInstance.App.TaskService.Delete(ctx, taskID); err != nil {
		return formatter.Fail(err, "Use 'listo task list' to see task ids")
	}

	return formatter.Success(deletedResult{ID: taskID})
}
