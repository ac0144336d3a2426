package task

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
)

// ClearCmd returns the task clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every completed task",
		Args:  cli.Args(cobra.NoArgs),
		RunE:  runClear,
	}

	cli.OutputFlags(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
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

	removed, err := cliInstance.App.TaskService.ClearCompleted(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	return formatter.Success(clearedResult{Removed: removed})
}
