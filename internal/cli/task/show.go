package task

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/cli/styles"
	"github.com/thenoetrevino/listo/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long:  "Display a task as a card with its status and creation time.",
		Args:  cli.Args(cobra.ExactArgs(1)),
		RunE:  runShow,
	}

	cli.OutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	svc := cliInstance.App.TaskService
	if _, err := svc.Load(ctx); err != nil {
		return formatter.Fail(err, "")
	}

	task, err := svc.Get(args[0])
	if err != nil {
		return formatter.Fail(err, "Use 'listo task list' to see task ids")
	}

	message := TaskMarkdown(task)
	if !formatter.JSON && !formatter.Quiet {
		rendered, err := cli.RenderMarkdown(message, styles.CardWidth-10)
		if err != nil {
			// Fall back to the raw markdown rather than failing the command
			rendered = message
		}
		message = styles.RenderCard(strings.TrimSpace(rendered))
	}
	return formatter.Success(taskResult{TaskJSON: ToJSON(task), message: message})
}

// TaskMarkdown describes a task as a small markdown document
func TaskMarkdown(task models.Task) string {
	status := "Active"
	if task.Completed {
		status = "Completed"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", task.Title)
	fmt.Fprintf(&b, "- **Status:** %s\n", status)
	fmt.Fprintf(&b, "- **Created:** %s\n", cli.FormatCreatedAt(task.CreatedAt))
	fmt.Fprintf(&b, "- **ID:** `%s`\n", task.ID)
	return b.String()
}
