package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/listo/internal/app"
	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/models"
	testcli "github.com/thenoetrevino/listo/internal/testutil/cli"
)

func seedSeptember(t *testing.T) *app.App {
	t.Helper()
	store, testApp := testcli.SetupCLITest(t)
	at := func(d int) time.Time { return time.Date(2025, time.September, d, 10, 0, 0, 0, time.Local) }
	testcli.SeedTasks(t, store,
		models.Task{ID: "1", Title: "Finish To-Do List", CreatedAt: at(24)},
		models.Task{ID: "2", Title: "Plan UI Theme", CreatedAt: at(25)},
		models.Task{ID: "3", Title: "Integrate Calendar", CreatedAt: at(25), Completed: true},
	)
	return testApp
}

func TestParseSelection(t *testing.T) {
	now := time.Date(2025, time.October, 17, 15, 0, 0, 0, time.UTC)

	sel, err := parseSelection("", "", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-10", sel.month.Format(monthLayout))
	assert.Nil(t, sel.date)

	sel, err = parseSelection("", "2025-09-25", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-09", sel.month.Format(monthLayout))
	require.NotNil(t, sel.date)
	assert.Equal(t, 25, sel.date.Day())

	sel, err = parseSelection("2024-02", "2025-09-25", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-02", sel.month.Format(monthLayout), "--month wins over the date's month")

	_, err = parseSelection("2025-13", "", now)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = parseSelection("", "25/09/2025", now)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRenderMonth(t *testing.T) {
	month := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	grid := RenderMonth(month, map[int]int{24: 1, 25: 2}, 0)

	assert.Contains(t, grid, "September 2025")
	assert.Contains(t, grid, "Su  Mo  Tu  We  Th  Fr  Sa")
	assert.Contains(t, grid, "24*")
	assert.Contains(t, grid, "25*")
	assert.NotContains(t, grid, "26*")
	assert.Contains(t, grid, "30")
	assert.NotContains(t, grid, "31 ")

	// September 2025 starts on a Monday: one empty Sunday cell
	lines := strings.Split(grid, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[2], "     1"), "first week line: %q", lines[2])
}

func TestRenderDay(t *testing.T) {
	assert.Contains(t, RenderDay(nil, nil), "Select a date")

	day := time.Date(2025, time.September, 26, 0, 0, 0, 0, time.UTC)
	assert.Contains(t, RenderDay(&day, nil), "No tasks on this day")

	out := RenderDay(&day, []models.Task{{ID: "x", Title: "Walk dog"}})
	assert.Contains(t, out, "Tasks on 2025-09-26")
	assert.Contains(t, out, "• Walk dog")
}

func TestCalendarCmd(t *testing.T) {
	testApp := seedSeptember(t)

	t.Run("month without selection", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, testApp, CalendarCmd(), []string{"--month=2025-09"})

		require.NoError(t, err)
		assert.Contains(t, output, "Task Calendar")
		assert.Contains(t, output, "September 2025")
		assert.Contains(t, output, "Select a date")
	})

	t.Run("selected day", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, testApp, CalendarCmd(), []string{"--date=2025-09-25"})

		require.NoError(t, err)
		assert.Contains(t, output, "Tasks on 2025-09-25")
		assert.Contains(t, output, "Plan UI Theme")
		assert.Contains(t, output, "Integrate Calendar")
		assert.NotContains(t, output, "Finish To-Do List")
	})

	t.Run("JSON output", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, testApp, CalendarCmd(), []string{"--date=2025-09-25", "--json"})

		require.NoError(t, err)
		result := testcli.ParseData(t, output)
		assert.Equal(t, "2025-09", result["month"])
		assert.Equal(t, "2025-09-25", result["date"])

		days := result["days"].(map[string]interface{})
		assert.Equal(t, float64(1), days["24"])
		assert.Equal(t, float64(2), days["25"])

		tasks := result["tasks"].([]interface{})
		assert.Len(t, tasks, 2)
	})

	t.Run("quiet mode lists ids of the day", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, testApp, CalendarCmd(), []string{"--date=2025-09-24", "--quiet"})

		require.NoError(t, err)
		assert.Equal(t, "1\n", output)
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, testApp, CalendarCmd(), []string{"--month=September"})

		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
	})
}
