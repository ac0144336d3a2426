package converters

import (
	"strings"
	"testing"
	"time"

	"github.com/thenoetrevino/listo/internal/models"
)

// ============================================================================
// TEST CASES - TaskToRecord / TaskFromRecord
// ============================================================================

func TestTaskRecordConversion(t *testing.T) {
	created := time.UnixMilli(1727164800123)

	task := models.Task{
		ID:        "a1",
		Title:     "Finish To-Do List",
		Completed: true,
		CreatedAt: created,
	}

	record := TaskToRecord(task)
	if record.CreatedAt != 1727164800123 {
		t.Errorf("Expected createdAt 1727164800123, got %d", record.CreatedAt)
	}

	back := TaskFromRecord(record)
	if back.ID != task.ID || back.Title != task.Title || back.Completed != task.Completed {
		t.Errorf("Round trip mismatch: got %+v, want %+v", back, task)
	}
	if !back.CreatedAt.Equal(created) {
		t.Errorf("Expected createdAt %v, got %v", created, back.CreatedAt)
	}
}

// ============================================================================
// TEST CASES - EncodeTasks / DecodeTasks
// ============================================================================

func TestEncodeDecodeTasks_PreservesOrder(t *testing.T) {
	tasks := []models.Task{
		{ID: "3", Title: "Integrate Calendar", CreatedAt: time.UnixMilli(3000)},
		{ID: "1", Title: "Finish To-Do List", Completed: true, CreatedAt: time.UnixMilli(1000)},
		{ID: "2", Title: "Plan UI Theme", CreatedAt: time.UnixMilli(2000)},
	}

	data, err := EncodeTasks(tasks)
	if err != nil {
		t.Fatalf("EncodeTasks failed: %v", err)
	}

	decoded, err := DecodeTasks(data)
	if err != nil {
		t.Fatalf("DecodeTasks failed: %v", err)
	}

	if len(decoded) != len(tasks) {
		t.Fatalf("Expected %d tasks, got %d", len(tasks), len(decoded))
	}
	for i := range tasks {
		if decoded[i].ID != tasks[i].ID {
			t.Errorf("Index %d: expected id %s, got %s", i, tasks[i].ID, decoded[i].ID)
		}
		if decoded[i].Completed != tasks[i].Completed {
			t.Errorf("Index %d: expected completed %v, got %v", i, tasks[i].Completed, decoded[i].Completed)
		}
		if !decoded[i].CreatedAt.Equal(tasks[i].CreatedAt) {
			t.Errorf("Index %d: expected createdAt %v, got %v", i, tasks[i].CreatedAt, decoded[i].CreatedAt)
		}
	}
}

func TestEncodeTasks_EmptyIsArray(t *testing.T) {
	data, err := EncodeTasks(nil)
	if err != nil {
		t.Fatalf("EncodeTasks failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Expected [], got %s", data)
	}
}

func TestEncodeTasks_WireFieldNames(t *testing.T) {
	data, err := EncodeTasks([]models.Task{{ID: "x", Title: "Buy milk", CreatedAt: time.UnixMilli(42)}})
	if err != nil {
		t.Fatalf("EncodeTasks failed: %v", err)
	}
	want := `[{"id":"x","title":"Buy milk","completed":false,"createdAt":42}]`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}

func TestDecodeTasks_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: `not json`},
		{name: "object instead of array", input: `{"id":"1"}`},
		{name: "missing title", input: `[{"id":"1","completed":false,"createdAt":1}]`},
		{name: "blank title", input: `[{"id":"1","title":"   ","completed":false,"createdAt":1}]`},
		{name: "empty id", input: `[{"id":"","title":"a","completed":false,"createdAt":1}]`},
		{name: "fractional createdAt", input: `[{"id":"1","title":"a","completed":false,"createdAt":1.5}]`},
		{name: "string completed", input: `[{"id":"1","title":"a","completed":"yes","createdAt":1}]`},
		{name: "duplicate ids", input: `[{"id":"1","title":"a","completed":false,"createdAt":1},{"id":"1","title":"b","completed":false,"createdAt":2}]`},
		{name: "trailing data", input: `[] []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := DecodeTasks([]byte(tt.input))
			if err == nil {
				t.Fatalf("Expected error, got tasks %+v", tasks)
			}
		})
	}
}

func TestDecodeTasks_DuplicateIDMessage(t *testing.T) {
	_, err := DecodeTasks([]byte(`[{"id":"7","title":"a","completed":false,"createdAt":1},{"id":"7","title":"b","completed":true,"createdAt":2}]`))
	if err == nil || !strings.Contains(err.Error(), `duplicate id "7"`) {
		t.Errorf("Expected duplicate id error, got %v", err)
	}
}
