package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/listo/internal/converters"
	"github.com/thenoetrevino/listo/internal/database"
	"github.com/thenoetrevino/listo/internal/models"
)

// StorageKey is the byte-store key holding the serialized task collection
const StorageKey = "tasks"

// Service defines all task-related operations.
//
// Mutations re-read the persisted collection, apply the change and write the
// full collection once, atomically when the store implements
// database.Updater. When that write fails the returned error is a
// *models.StorageError, the updated record is still returned and the
// in-memory change is kept.
//
// Read operations are projections over the in-memory collection and never
// touch storage; call Load before relying on them.
type Service interface {
	// Read operations
	Load(ctx context.Context) ([]models.Task, error)
	Filter(filter models.TaskFilter) []models.Task
	Get(id string) (models.Task, error)
	Counts() models.TaskCounts
	OnDate(day time.Time) []models.Task
	DaysWithTasks(month time.Time) map[int]int

	// Write operations
	Create(ctx context.Context, title string) (models.Task, error)
	Toggle(ctx context.Context, id string) (models.Task, error)
	Edit(ctx context.Context, id, title string) (models.Task, error)
	Delete(ctx context.Context, id string) error
	ClearCompleted(ctx context.Context) (int, error)
}

// Option configures the task service
type Option func(*service)

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// WithClock overrides the creation timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithIDGenerator overrides how new task ids are minted
func WithIDGenerator(newID func() string) Option {
	return func(s *service) {
		s.newID = newID
	}
}

// service implements Service interface
type service struct {
	store  database.KeyValueStore
	logger *slog.Logger
	now    func() time.Time
	newID  func() string

	// mu serializes every operation so read-modify-write cycles never interleave
	mu    sync.Mutex
	tasks []models.Task
	// dirty is set while tasks holds changes whose write failed
	dirty bool
}

// NewService creates a new task service over the given byte store
func NewService(store database.KeyValueStore, opts ...Option) Service {
	s := &service{
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted collection, replacing the in-memory one.
// A missing key is an empty collection; unreadable or undecodable bytes are
// a StorageError and leave the in-memory collection untouched.
func (s *service) Load(ctx context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, found, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Error("failed to read tasks", "error", err)
		return nil, err
	}
	tasks, err := s.decode(data, found)
	if err != nil {
		return nil, err
	}

	s.tasks = tasks
	s.dirty = false
	return s.snapshot(models.FilterAll), nil
}

func (s *service) decode(data []byte, found bool) ([]models.Task, error) {
	if !found {
		return []models.Task{}, nil
	}
	tasks, err := converters.DecodeTasks(data)
	if err != nil {
		s.logger.Error("persisted tasks are corrupt", "error", err, "bytes", len(data))
		return nil, models.NewStorageError("decode", StorageKey, err)
	}
	return tasks, nil
}

// mutate applies one change and writes the full collection in a single store
// update. The collection is re-read inside that update, so writes made through
// another handle on the same store are never overwritten. After a failed
// write the in-memory collection holds unsaved changes and is used as is.
// Errors from apply or from reading come back with nothing written.
func (s *service) mutate(ctx context.Context, apply func() error) error {
	applied := false
	err := database.Update(ctx, s.store, StorageKey, func(data []byte, found bool) ([]byte, error) {
		if !s.dirty {
			tasks, err := s.decode(data, found)
			if err != nil {
				return nil, err
			}
			s.tasks = tasks
		}

		if err := apply(); err != nil {
			return nil, err
		}
		applied = true

		encoded, err := converters.EncodeTasks(s.tasks)
		if err != nil {
			return nil, models.NewStorageError("encode", StorageKey, err)
		}
		return encoded, nil
	})

	switch {
	case err == nil:
		s.dirty = false
	case applied:
		s.dirty = true
		s.logger.Error("failed to persist tasks", "error", err, "count", len(s.tasks))
	}
	return err
}

// Create appends a new task with a trimmed title
func (s *service) Create(ctx context.Context, title string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var task models.Task
	err := s.mutate(ctx, func() error {
		task = models.Task{
			ID:    s.uniqueID(),
			Title: title,
			// Millisecond precision is what survives persistence
			CreatedAt: time.UnixMilli(s.now().UnixMilli()),
		}
		s.tasks = append(s.tasks, task)
		s.logger.Debug("task created", "id", task.ID)
		return nil
	})
	return task, err
}

// uniqueID mints ids until one is unused in the collection
func (s *service) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
}

// Toggle flips the completion flag of a task
func (s *service) Toggle(ctx context.Context, id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var task models.Task
	err := s.mutate(ctx, func() error {
		i := s.indexOf(id)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
		}
		s.tasks[i].Completed = !s.tasks[i].Completed
		task = s.tasks[i]
		s.logger.Debug("task toggled", "id", id, "completed", task.Completed)
		return nil
	})
	return task, err
}

// Edit replaces a task's title in place
func (s *service) Edit(ctx context.Context, id, title string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var task models.Task
	err := s.mutate(ctx, func() error {
		i := s.indexOf(id)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
		}
		s.tasks[i].Title = title
		task = s.tasks[i]
		s.logger.Debug("task edited", "id", id)
		return nil
	})
	return task, err
}

// Delete removes a task, keeping the order of the rest
func (s *service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, func() error {
		i := s.indexOf(id)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
		}
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		s.logger.Debug("task deleted", "id", id)
		return nil
	})
}

// ClearCompleted removes every completed task and returns how many went
func (s *service) ClearCompleted(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	err := s.mutate(ctx, func() error {
		kept := make([]models.Task, 0, len(s.tasks))
		for _, t := range s.tasks {
			if !t.Completed {
				kept = append(kept, t)
			}
		}
		removed = len(s.tasks) - len(kept)
		s.tasks = kept
		s.logger.Debug("completed tasks cleared", "removed", removed)
		return nil
	})
	return removed, err
}

// Filter returns the tasks selected by filter, in collection order
func (s *service) Filter(filter models.TaskFilter) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(filter)
}

// Get returns a single task by id
func (s *service) Get(id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return s.tasks[i], nil
}

// Counts returns the active/completed breakdown
func (s *service) Counts() models.TaskCounts {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c models.TaskCounts
	for _, t := range s.tasks {
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}

// OnDate returns the tasks created on the calendar day of day, in day's location
func (s *service) OnDate(day time.Time) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := day.Format(models.DayLayout)
	result := []models.Task{}
	for _, t := range s.tasks {
		if t.CreatedAt.In(day.Location()).Format(models.DayLayout) == want {
			result = append(result, t)
		}
	}
	return result
}

// DaysWithTasks maps day-of-month to task count for the month containing month
func (s *service) DaysWithTasks(month time.Time) map[int]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	days := make(map[int]int)
	for _, t := range s.tasks {
		created := t.CreatedAt.In(month.Location())
		if created.Year() == month.Year() && created.Month() == month.Month() {
			days[created.Day()]++
		}
	}
	return days
}

func (s *service) snapshot(filter models.TaskFilter) []models.Task {
	result := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Matches(t) {
			result = append(result, t)
		}
	}
	return result
}

func (s *service) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
