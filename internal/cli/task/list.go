package task

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/cli/styles"
	"github.com/thenoetrevino/listo/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks in the order they were added.

Examples:
  # All tasks
  listo task list

  # Only tasks still to do
  listo task list --filter=active

  # Ids of completed tasks
  listo task list --filter=completed --quiet
`,
		Args: cli.Args(cobra.NoArgs),
		RunE: runList,
	}

	cmd.Flags().String("filter", "all", "Filter: all, active, completed")
	cli.OutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	filterFlag, _ := cmd.Flags().GetString("filter")
	filter, err := models.ParseTaskFilter(filterFlag)
	if err != nil {
		return formatter.Fail(err, "Valid filters are: all, active, completed")
	}

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
	return formatter.Success(newListResult(filter, svc.Counts(), svc.Filter(filter)))
}

// FormatLine renders one task as "[✓] title  (date)  id", wrapped for the terminal
func FormatLine(t models.Task) string {
	title := cli.Wrap(t.Title, cli.WrapWidth, 4)
	if t.Completed {
		title = styles.MutedStyle.Render(title)
	}
	return fmt.Sprintf("%s %s\n    %s",
		styles.CheckMark(t.Completed),
		title,
		styles.SubtitleStyle.Render(cli.FormatCreatedAt(t.CreatedAt)+"  "+t.ID))
}
