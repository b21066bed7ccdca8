// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package task

import (
	"context"
	"time"
)

// Patch holds the changes of an update. Title and Description are always
// written; nil pointers keep the stored value.
//
// At stamps updated_at. It also becomes completed_at when the patch completes
// a task that was open and carries no CompletedAt of its own.
type Patch struct {
	Title       string
	Description string
	Category    *Category
	Priority    *Priority
	Deadline    *time.Time
	Completed   *bool
	CompletedAt *time.Time
	At          time.Time
}

// Repository defines the owner-scoped persistence contract for tasks.
type Repository interface {

	/*
		List returns the tasks matching plan, newest first.

		Parameters:
		  - context: context.Context
		  - plan: Plan (filter + optional limit/offset)

		Returns:
		  - []*Task: Matching page (empty, never nil)
		  - error: Database failures
	*/
	List(context context.Context, plan Plan) ([]*Task, error)

	/*
		Count returns how many tasks match filter.

		Parameters:
		  - context: context.Context
		  - filter: Filter

		Returns:
		  - int: Total matches
		  - error: Database failures
	*/
	Count(context context.Context, filter Filter) (int, error)

	/*
		FindOne returns the task with id owned by userID.

		Returns:
		  - *Task: Hydrated entity
		  - error: apperr.NotFound for missing or foreign tasks
	*/
	FindOne(context context.Context, id, userID string) (*Task, error)

	// Create persists a new task.
	Create(context context.Context, task *Task) error

	/*
		Update applies patch to the task with id owned by userID in one statement.

		Parameters:
		  - context: context.Context
		  - id: string
		  - userID: string
		  - patch: Patch

		Returns:
		  - *Task: The task after the update
		  - error: apperr.NotFound for missing or foreign tasks
	*/
	Update(context context.Context, id, userID string, patch Patch) (*Task, error)

	/*
		Delete removes the task with id owned by userID.

		Returns:
		  - *Task: The removed task
		  - error: apperr.NotFound for missing or foreign tasks
	*/
	Delete(context context.Context, id, userID string) (*Task, error)
}
