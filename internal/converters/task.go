// Package converters translates between the JSON records kept in the
// key-value byte store and the domain models.
//
// Persisted layout:
//
//	"tasks" -> [{"id": "...", "title": "...", "completed": false, "createdAt": 1727164800000}, ...]
//	"user"  -> {"username": "...", "email": "...", "password": "..."}
//
// Decoding is strict: bytes that fail JSON parsing, fail the record schema or
// break a collection invariant (duplicate ids) are rejected, never repaired.
package converters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/thenoetrevino/listo/internal/models"
)

// TaskRecord is the on-disk shape of a task
type TaskRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"`
}

const taskCollectionSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "title", "completed", "createdAt"],
		"properties": {
			"id":        {"type": "string", "minLength": 1},
			"title":     {"type": "string", "pattern": "\\S"},
			"completed": {"type": "boolean"},
			"createdAt": {"type": "integer"}
		}
	}
}`

var taskCollection = jsonschema.MustCompileString("listo://schemas/tasks.json", taskCollectionSchema)

// TaskToRecord converts a domain task to its persisted record
func TaskToRecord(t models.Task) TaskRecord {
	return TaskRecord{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.UnixMilli(),
	}
}

// TaskFromRecord converts a persisted record to a domain task.
// createdAt is interpreted as epoch milliseconds.
func TaskFromRecord(r TaskRecord) models.Task {
	return models.Task{
		ID:        r.ID,
		Title:     r.Title,
		Completed: r.Completed,
		CreatedAt: time.UnixMilli(r.CreatedAt),
	}
}

// EncodeTasks serializes the full ordered collection
func EncodeTasks(tasks []models.Task) ([]byte, error) {
	records := make([]TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, TaskToRecord(t))
	}
	return json.Marshal(records)
}

// DecodeTasks parses and validates a persisted collection, preserving order
func DecodeTasks(data []byte) ([]models.Task, error) {
	if err := validate(taskCollection, data); err != nil {
		return nil, err
	}

	var records []TaskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}

	seen := make(map[string]struct{}, len(records))
	tasks := make([]models.Task, 0, len(records))
	for i, r := range records {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("decode tasks: duplicate id %q at index %d", r.ID, i)
		}
		seen[r.ID] = struct{}{}
		tasks = append(tasks, TaskFromRecord(r))
	}
	return tasks, nil
}

// validate checks raw JSON against a compiled schema. Numbers are kept as
// json.Number so large epoch values are checked as integers exactly.
func validate(schema *jsonschema.Schema, data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("invalid json: trailing data after document")
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema mismatch: %w", err)
	}
	return nil
}
