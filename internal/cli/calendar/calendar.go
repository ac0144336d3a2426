package calendar

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/cli/styles"
	"github.com/thenoetrevino/listo/internal/cli/task"
	"github.com/thenoetrevino/listo/internal/models"
)

const monthLayout = "2006-01"

// CalendarCmd returns the calendar command
func CalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show tasks laid over a month calendar",
		Long: `Render a month grid marking the days tasks were created on, and list
the tasks of a selected day.

Examples:
  # Current month
  listo calendar

  # A given month
  listo calendar --month=2025-09

  # Tasks created on a day (its month is shown)
  listo calendar --date=2025-09-25 --json
`,
		Args: cli.Args(cobra.NoArgs),
		RunE: runCalendar,
	}

	cmd.Flags().String("month", "", "Month to show, YYYY-MM (defaults to the current month)")
	cmd.Flags().String("date", "", "Day to list tasks for, YYYY-MM-DD")
	cli.OutputFlags(cmd)

	return cmd
}

// selection is the month on screen and the optional selected day
type selection struct {
	month time.Time
	date  *time.Time
}

// parseSelection resolves the flags against now, in now's location
func parseSelection(monthFlag, dateFlag string, now time.Time) (selection, error) {
	loc := now.Location()
	sel := selection{month: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)}

	if dateFlag != "" {
		day, err := time.ParseInLocation(models.DayLayout, dateFlag, loc)
		if err != nil {
			return sel, models.Errorf(models.ErrValidation, "invalid date '%s' (must be YYYY-MM-DD)", dateFlag)
		}
		sel.date = &day
		sel.month = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, loc)
	}

	if monthFlag != "" {
		month, err := time.ParseInLocation(monthLayout, monthFlag, loc)
		if err != nil {
			return sel, models.Errorf(models.ErrValidation, "invalid month '%s' (must be YYYY-MM)", monthFlag)
		}
		sel.month = month
	}

	return sel, nil
}

func runCalendar(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	monthFlag, _ := cmd.Flags().GetString("month")
	dateFlag, _ := cmd.Flags().GetString("date")

	sel, err := parseSelection(monthFlag, dateFlag, time.Now())
	if err != nil {
		return formatter.Fail(err, "")
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

	days := svc.DaysWithTasks(sel.month)
	var tasks []models.Task
	if sel.date != nil {
		tasks = svc.OnDate(*sel.date)
	}

	marked := make(map[string]int, len(days))
	for d, n := range days {
		marked[strconv.Itoa(d)] = n
	}
	result := calendarResult{
		Month: sel.month.Format(monthLayout),
		Days:  marked,
		Tasks: task.ListToJSON(tasks),
		sel:   sel,
		days:  days,
		tasks: tasks,
	}
	if sel.date != nil {
		result.Date = sel.date.Format(models.DayLayout)
	}
	return formatter.Success(result)
}

// calendarResult is the month grid with the tasks of the selected day
type calendarResult struct {
	Month string          `json:"month"`
	Days  map[string]int  `json:"days"`
	Date  string          `json:"date,omitempty"`
	Tasks []task.TaskJSON `json:"tasks"`

	sel   selection
	days  map[int]int
	tasks []models.Task
}

func (r calendarResult) GetIDs() []string {
	ids := make([]string, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func (r calendarResult) String() string {
	selected := 0
	if r.sel.date != nil && r.sel.date.Year() == r.sel.month.Year() && r.sel.date.Month() == r.sel.month.Month() {
		selected = r.sel.date.Day()
	}

	return strings.Join([]string{
		styles.TitleStyle.Render("Task Calendar"),
		RenderMonth(r.sel.month, r.days, selected),
		RenderDay(r.sel.date, r.tasks),
	}, "\n")
}

// RenderMonth draws a Sunday-first month grid. Days with tasks carry a "*"
// and the selected day (if non-zero) is highlighted.
func RenderMonth(month time.Time, days map[int]int, selected int) string {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysIn := first.AddDate(0, 1, -1).Day()

	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(first.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString("Su  Mo  Tu  We  Th  Fr  Sa\n")

	col := int(first.Weekday())
	b.WriteString(strings.Repeat("    ", col))
	for d := 1; d <= daysIn; d++ {
		marker := " "
		if days[d] > 0 {
			marker = "*"
		}
		cell := fmt.Sprintf("%2d%s", d, marker)
		switch {
		case d == selected:
			cell = styles.SelectedDayStyle.Render(cell)
		case days[d] > 0:
			cell = styles.MarkedDayStyle.Render(cell)
		}
		b.WriteString(cell)

		col++
		if col == 7 && d != daysIn {
			b.WriteString("\n")
			col = 0
		} else if d != daysIn {
			b.WriteString(" ")
		}
	}

	return b.String()
}

// RenderDay lists the tasks of the selected day, or asks for a selection
func RenderDay(date *time.Time, tasks []models.Task) string {
	if date == nil {
		return styles.SubtitleStyle.Render("Select a date")
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Tasks on " + date.Format(models.DayLayout)))
	if len(tasks) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Render("No tasks on this day"))
		return b.String()
	}
	for _, t := range tasks {
		b.WriteString("\n")
		b.WriteString("• " + styles.RenderTaskTitle(models.Task{
			Title:     cli.Wrap(t.Title, cli.WrapWidth, 2),
			Completed: t.Completed,
		}))
	}
	return b.String()
}
