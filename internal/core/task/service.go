// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/RaynerdTech/ToDo/internal/platform/apperr"
	"github.com/RaynerdTech/ToDo/internal/platform/validate"
	"github.com/RaynerdTech/ToDo/pkg/pagination"
	"github.com/RaynerdTech/ToDo/pkg/slice"
	"github.com/RaynerdTech/ToDo/pkg/uuid"
)

// Service implements the task use cases for a single owner at a time.
type Service struct {
	repository Repository
	planner    *Planner
	logger     *slog.Logger
}

// NewService constructs a new task [Service].
func NewService(repository Repository, planner *Planner, logger *slog.Logger) *Service {
	return &Service{repository: repository, planner: planner, logger: logger}
}

// # Writes

// Input is the client payload for create and update. Empty strings mean
// "not provided"; dates use the planner's formats.
type Input struct {
	Title       string
	Description string
	Category    string
	Priority    string
	Deadline    string
	Completed   *bool
	CompletedAt string
}

// checked holds an [Input] after validation and date parsing.
type checked struct {
	deadline    *time.Time
	completedAt *time.Time
}

func (service *Service) check(input *Input) (checked, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)

	if input.Title == "" || input.Description == "" {
		return checked{}, apperr.ValidationError(MsgTitleDescription)
	}

	validator := &validate.Validator{}
	if input.Category != "" {
		validator.OneOf(FieldCategory, input.Category, CategoryNames()...)
	}
	if input.Priority != "" {
		validator.OneOf(FieldPriority, input.Priority, PriorityNames()...)
	}
	if err := validator.Err(); err != nil {
		return checked{}, err
	}

	var result checked
	if input.Deadline != "" {
		deadline, err := service.planner.ParseTime(FieldDeadline, input.Deadline)
		if err != nil {
			return checked{}, err
		}
		result.deadline = &deadline
	}
	if input.CompletedAt != "" {
		completedAt, err := service.planner.ParseTime(FieldCompletedAt, input.CompletedAt)
		if err != nil {
			return checked{}, err
		}
		result.completedAt = &completedAt
	}

	return result, nil
}

/*
Create stores a new task for userID, applying defaults.

Parameters:
  - context: context.Context
  - userID: string (owner)
  - input: Input

Returns:
  - *View: Created task with time remaining
  - error: ValidationError or storage failures
*/
func (service *Service) Create(context context.Context, userID string, input Input) (*View, error) {
	values, err := service.check(&input)
	if err != nil {
		return nil, err
	}

	t := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Category:    DefaultCategory,
		Priority:    DefaultPriority,
		Deadline:    values.deadline,
		Completed:   input.Completed != nil && *input.Completed,
		CompletedAt: values.completedAt,
	}
	if input.Category != "" {
		t.Category = Category(input.Category)
	}
	if input.Priority != "" {
		t.Priority = Priority(input.Priority)
	}
	// Completing without a timestamp stamps now.
	if t.Completed && t.CompletedAt == nil {
		now := service.planner.Now()
		t.CompletedAt = &now
	}

	if err := service.repository.Create(context, t); err != nil {
		return nil, fmt.Errorf("task_service_create_failed: %w", err)
	}

	service.logger.InfoContext(context, "task_created",
		slog.String("user_id", userID),
		slog.String("task_id", t.ID),
	)

	view := NewView(t, service.planner.Now())
	return &view, nil
}

/*
Update rewrites title and description and patches whichever optional fields
input carries.

Parameters:
  - context: context.Context
  - userID: string (owner)
  - id: string
  - input: Input

Returns:
  - *View: Updated task
  - error: ValidationError, NotFound (missing or foreign task)
*/
func (service *Service) Update(context context.Context, userID, id string, input Input) (*View, error) {
	values, err := service.check(&input)
	if err != nil {
		return nil, err
	}
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Task")
	}

	patch := Patch{
		Title:       input.Title,
		Description: input.Description,
		Deadline:    values.deadline,
		Completed:   input.Completed,
		CompletedAt: values.completedAt,
		At:          service.planner.Now(),
	}
	if input.Category != "" {
		category := Category(input.Category)
		patch.Category = &category
	}
	if input.Priority != "" {
		priority := Priority(input.Priority)
		patch.Priority = &priority
	}

	t, err := service.repository.Update(context, id, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("task_service_update_failed: %w", err)
	}

	service.logger.InfoContext(context, "task_updated",
		slog.String("user_id", userID),
		slog.String("task_id", id),
	)

	view := NewView(t, service.planner.Now())
	return &view, nil
}

// Delete removes one of the owner's tasks.
func (service *Service) Delete(context context.Context, userID, id string) error {
	if !uuid.Valid(id) {
		return apperr.NotFound("Task")
	}

	if _, err := service.repository.Delete(context, id, userID); err != nil {
		return fmt.Errorf("task_service_delete_failed: %w", err)
	}

	service.logger.InfoContext(context, "task_deleted",
		slog.String("user_id", userID),
		slog.String("task_id", id),
	)

	return nil
}

// # Reads

// Get returns one of the owner's tasks.
func (service *Service) Get(context context.Context, userID, id string) (*View, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Task")
	}

	t, err := service.repository.FindOne(context, id, userID)
	if err != nil {
		return nil, fmt.Errorf("task_service_get_failed: %w", err)
	}

	view := NewView(t, service.planner.Now())
	return &view, nil
}

// Page is a list result. All is set when the whole result set was returned.
type Page struct {
	Tasks       []View
	TotalTasks  int
	TotalPages  int
	CurrentPage int
	All         bool
}

/*
List plans query for userID and runs it.

Description: In paginated mode a separate count query sizes the result; in
all mode the count is the length of the result and it forms a single page.

Parameters:
  - context: context.Context
  - userID: string
  - query: Query

Returns:
  - *Page: Tasks with pagination metadata
  - error: ValidationError (bad date) or storage failures
*/
func (service *Service) List(context context.Context, userID string, query Query) (*Page, error) {
	plan, err := service.planner.Plan(userID, query)
	if err != nil {
		return nil, err
	}

	tasks, err := service.repository.List(context, plan)
	if err != nil {
		return nil, fmt.Errorf("task_service_list_failed: %w", err)
	}

	now := service.planner.Now()
	page := &Page{
		Tasks:       slice.Map(tasks, func(t *Task) View { return NewView(t, now) }),
		TotalTasks:  len(tasks),
		TotalPages:  1,
		CurrentPage: plan.Page,
		All:         !plan.Paginate,
	}
	if page.Tasks == nil {
		page.Tasks = []View{}
	}

	if plan.Paginate {
		total, err := service.repository.Count(context, plan.Filter)
		if err != nil {
			return nil, fmt.Errorf("task_service_count_failed: %w", err)
		}
		page.TotalTasks = total
		page.TotalPages = pagination.TotalPages(total, plan.Limit)
	}

	return page, nil
}
