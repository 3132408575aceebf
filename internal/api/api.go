package api

import (
	"context"
	"strings"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/services"
	"task-tracker/internal/validation"
)

// ViewOptions is the raw, unvalidated view selection from a caller
type ViewOptions struct {
	Search        string
	Category      string
	HideCompleted bool
	SortBy        string
	Direction     string
}

// API is the facade the CLI and the interactive board talk to.
type API interface {
	// Load reads the persisted task collection
	Load(ctx context.Context) error

	// ========== Task Store ==========

	// AddTask validates the optional fields and appends a task. Blank text returns (nil, nil).
	AddTask(ctx context.Context, input domain.NewTaskInput) (*domain.Task, error)
	// ToggleTask flips completion. found is false for an unknown id, which is not an error.
	ToggleTask(ctx context.Context, id int64) (task *domain.Task, found bool, err error)
	// DeleteTask removes a task. It reports false for an unknown id, which is not an error.
	DeleteTask(ctx context.Context, id int64) (bool, error)
	// ClearCompleted removes all completed tasks and returns the count
	ClearCompleted(ctx context.Context) (int, error)

	// ========== Queries ==========

	// GetTask returns a single task or a not found error
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	// ListTasks returns every task in insertion order
	ListTasks(ctx context.Context) []domain.Task
	// BuildView validates raw view options
	BuildView(opts ViewOptions) (domain.ViewState, error)
	// Project returns the filtered, sorted tasks and whole-collection stats
	Project(ctx context.Context, view domain.ViewState) (*services.Projection, error)
	// Stats returns statistics over the whole collection
	Stats(ctx context.Context) domain.Stats

	// ========== Share ==========

	// ShareTask shares a task. Only an unknown id is an error.
	ShareTask(ctx context.Context, id int64) (*services.ShareResult, error)
	// ShareText returns the share text without sharing
	ShareText(ctx context.Context, id int64) (string, error)
}

// apiImpl implements the API interface
type apiImpl struct {
	services      *services.ServiceContainer
	taskValidator *validation.TaskValidator
	viewValidator *validation.ViewValidator
}

// New creates a new API over a service container
func New(container *services.ServiceContainer) API {
	return &apiImpl{
		services:      container,
		taskValidator: validation.NewTaskValidator(),
		viewValidator: validation.NewViewValidator(),
	}
}

// NewFromRepository wires the default services over repo
func NewFromRepository(repo sqlite.Repository, opts services.ContainerOptions) API {
	return New(services.NewServiceContainer(repo, opts))
}

func (a *apiImpl) Load(ctx context.Context) error {
	return a.services.Store.Load(ctx)
}

// ========== Task Store ==========

func (a *apiImpl) AddTask(ctx context.Context, input domain.NewTaskInput) (*domain.Task, error) {
	if err := a.taskValidator.ValidateNewTask(input); err != nil {
		return nil, errors.NewValidationError(validationMessage(err), err)
	}

	input.Category = strings.TrimSpace(input.Category)
	input.Priority = strings.TrimSpace(input.Priority)
	return a.services.Store.Add(ctx, input)
}

func (a *apiImpl) ToggleTask(ctx context.Context, id int64) (*domain.Task, bool, error) {
	return a.services.Store.Toggle(ctx, id)
}

func (a *apiImpl) DeleteTask(ctx context.Context, id int64) (bool, error) {
	return a.services.Store.Remove(ctx, id)
}

func (a *apiImpl) ClearCompleted(ctx context.Context) (int, error) {
	return a.services.Store.ClearCompleted(ctx)
}

// ========== Queries ==========

func (a *apiImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError(validationMessage(err), err)
	}

	task, ok := a.services.Store.Get(id)
	if !ok {
		return nil, errors.NewTaskNotFoundError(id)
	}
	return &task, nil
}

func (a *apiImpl) ListTasks(ctx context.Context) []domain.Task {
	return a.services.Store.Tasks()
}

func (a *apiImpl) BuildView(opts ViewOptions) (domain.ViewState, error) {
	view := domain.DefaultViewState()
	view.SearchQuery = opts.Search
	view.ShowCompleted = !opts.HideCompleted

	if category := strings.TrimSpace(opts.Category); category != "" {
		view.SelectedCategory = category
	}

	if opts.SortBy != "" {
		key, err := a.viewValidator.ParseSortKey(opts.SortBy)
		if err != nil {
			return view, errors.NewValidationError(validationMessage(err), err)
		}
		view.SortBy = key
	}

	if opts.Direction != "" {
		direction, err := a.viewValidator.ParseSortDirection(opts.Direction)
		if err != nil {
			return view, errors.NewValidationError(validationMessage(err), err)
		}
		view.SortDirection = direction
	}

	if err := a.viewValidator.ValidateViewState(view); err != nil {
		return view, errors.NewValidationError(validationMessage(err), err)
	}
	return view, nil
}

func (a *apiImpl) Project(ctx context.Context, view domain.ViewState) (*services.Projection, error) {
	if err := a.viewValidator.ValidateViewState(view); err != nil {
		return nil, errors.NewValidationError(validationMessage(err), err)
	}

	projection := a.services.Projector.Project(a.services.Store.Tasks(), view)
	return &projection, nil
}

func (a *apiImpl) Stats(ctx context.Context) domain.Stats {
	return a.services.Projector.Stats(a.services.Store.Tasks())
}

// ========== Share ==========

func (a *apiImpl) ShareTask(ctx context.Context, id int64) (*services.ShareResult, error) {
	task, err := a.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	result := a.services.Share.Share(ctx, *task)
	return &result, nil
}

func (a *apiImpl) ShareText(ctx context.Context, id int64) (string, error) {
	task, err := a.GetTask(ctx, id)
	if err != nil {
		return "", err
	}
	return a.services.Share.FormatShareText(*task), nil
}

// validationMessage surfaces the field-level message users should see
func validationMessage(err error) string {
	if ve, ok := err.(*validation.ValidationError); ok {
		return ve.UserMessage()
	}
	return err.Error()
}
