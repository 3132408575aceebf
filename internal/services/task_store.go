package services

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/validation"
)

// DefaultStorageKey is the local storage key the task array lives under
const DefaultStorageKey = "tasks"

// taskStoreImpl implements the TaskStore interface
type taskStoreImpl struct {
	mu            sync.Mutex
	repo          sqlite.Repository
	key           string
	timeService   TimeService
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	logger        zerolog.Logger
	tasks         []domain.Task
}

// NewTaskStore creates an empty TaskStore. Call Load to read the persisted collection.
func NewTaskStore(repo sqlite.Repository, key string, timeService TimeService, logger zerolog.Logger) TaskStore {
	if key == "" {
		key = DefaultStorageKey
	}
	return &taskStoreImpl{
		repo:          repo,
		key:           key,
		timeService:   timeService,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
		logger:        logger.With().Str("component", "task_store").Logger(),
	}
}

// Load reads the persisted collection. Missing data yields an empty collection;
// unreadable data yields an empty collection and a warning.
func (s *taskStoreImpl) Load(ctx context.Context) error {
	value, ok, err := s.repo.GetItem(ctx, s.key)
	if err != nil {
		return errors.FromStorageError("read tasks", err)
	}

	var tasks []domain.Task
	if ok {
		tasks = s.decode(value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	return nil
}

func (s *taskStoreImpl) decode(value string) []domain.Task {
	records, err := sqlite.DecodeTasks(value)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", s.key).Msg("ignoring unreadable task data")
		return nil
	}

	tasks := make([]domain.Task, 0, len(records))
	for _, record := range records {
		task := s.mapper.Task.FromDatabase(record)
		if err := s.taskValidator.ValidateTask(task); err != nil {
			s.logger.Warn().Err(err).Int64("id", record.ID).Msg("dropping malformed task")
			continue
		}
		s.timeService.Observe(task.ID)
		tasks = append(tasks, task)
	}

	s.logger.Debug().Int("count", len(tasks)).Msg("loaded tasks")
	return tasks
}

// Tasks returns a copy of the collection in insertion order
func (s *taskStoreImpl) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Task(nil), s.tasks...)
}

// Get looks up a task by id
func (s *taskStoreImpl) Get(id int64) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return domain.Task{}, false
}

// Add appends a new task. Blank text is ignored and returns a nil task.
func (s *taskStoreImpl) Add(ctx context.Context, input domain.NewTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeService.Now()
	task := domain.NewTask(s.timeService.NextID(now), input, now)

	next := make([]domain.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	next = append(next, task)

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("id", task.ID).Msg("added task")
	return &task, nil
}

// Toggle flips completion. An unknown id changes nothing and reports found=false.
func (s *taskStoreImpl) Toggle(ctx context.Context, id int64) (*domain.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug().Int64("id", id).Msg("toggle ignored, no such task")
		return nil, false, nil
	}

	next := append([]domain.Task(nil), s.tasks...)
	next[i] = next[i].Toggled(s.timeService.Now())

	if err := s.commit(ctx, next); err != nil {
		return nil, true, err
	}

	task := next[i]
	return &task, true, nil
}

// Remove deletes a task. An unknown id changes nothing and reports false.
func (s *taskStoreImpl) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug().Int64("id", id).Msg("remove ignored, no such task")
		return false, nil
	}

	next := make([]domain.Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:i]...)
	next = append(next, s.tasks[i+1:]...)

	if err := s.commit(ctx, next); err != nil {
		return true, err
	}
	return true, nil
}

// ClearCompleted removes every completed task in one write and returns how many went
func (s *taskStoreImpl) ClearCompleted(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if !task.Completed {
			next = append(next, task)
		}
	}

	removed := len(s.tasks) - len(next)
	if removed == 0 {
		return 0, nil
	}

	if err := s.commit(ctx, next); err != nil {
		return 0, err
	}
	return removed, nil
}

// commit persists next and only then makes it the current collection. Callers hold mu.
func (s *taskStoreImpl) commit(ctx context.Context, next []domain.Task) error {
	value, err := sqlite.EncodeTasks(s.mapper.Task.ToDatabaseSlice(next))
	if err != nil {
		return errors.NewStorageError("encode tasks", err)
	}

	if err := s.repo.SetItem(ctx, s.key, value); err != nil {
		s.logger.Error().Err(err).Str("key", s.key).Msg("failed to persist tasks")
		return errors.FromStorageError("write tasks", err)
	}

	s.tasks = next
	return nil
}

func (s *taskStoreImpl) indexOf(id int64) int {
	for i, task := range s.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}
