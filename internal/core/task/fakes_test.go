// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package task_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/RaynerdTech/ToDo/internal/core/task"
	"github.com/RaynerdTech/ToDo/internal/platform/apperr"
)

// memoryTasks is an in-memory task.Repository honouring owner scope and plan windows.
type memoryTasks struct {
	mu      sync.Mutex
	tasks   map[string]*task.Task
	created int
}

func newMemoryTasks() *memoryTasks {
	return &memoryTasks{tasks: map[string]*task.Task{}}
}

func matches(filter task.Filter, t *task.Task) bool {
	switch {
	case t.UserID != filter.UserID:
		return false
	case filter.Category != "" && string(t.Category) != filter.Category:
		return false
	case filter.Priority != "" && string(t.Priority) != filter.Priority:
		return false
	case filter.Completed != nil && t.Completed != *filter.Completed:
		return false
	case filter.CreatedAt != nil && !t.CreatedAt.Equal(*filter.CreatedAt):
		return false
	case filter.Deadline != nil:
		if t.Deadline == nil || t.Deadline.Before(filter.Deadline.From) || t.Deadline.After(filter.Deadline.To) {
			return false
		}
	}
	return true
}

func (m *memoryTasks) selectSorted(filter task.Filter) []*task.Task {
	var result []*task.Task
	for _, t := range m.tasks {
		if matches(filter, t) {
			clone := *t
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result
}

func (m *memoryTasks) List(_ context.Context, plan task.Plan) ([]*task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := m.selectSorted(plan.Filter)
	if !plan.Paginate {
		return result, nil
	}
	if plan.Offset >= len(result) {
		return []*task.Task{}, nil
	}
	end := plan.Offset + plan.Limit
	if end > len(result) {
		end = len(result)
	}
	return result[plan.Offset:end], nil
}

func (m *memoryTasks) Count(_ context.Context, filter task.Filter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.selectSorted(filter)), nil
}

func (m *memoryTasks) FindOne(_ context.Context, id, userID string) (*task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return nil, apperr.NotFound("Task")
	}
	clone := *t
	return &clone, nil
}

// Create stamps strictly increasing creation times so ordering is deterministic.
func (m *memoryTasks) Create(_ context.Context, t *task.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
	t.CreatedAt = time.Date(2026, 1, 1, 0, 0, m.created, 0, time.UTC)
	t.UpdatedAt = t.CreatedAt
	clone := *t
	m.tasks[t.ID] = &clone
	return nil
}

func (m *memoryTasks) Update(_ context.Context, id, userID string, patch task.Patch) (*task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return nil, apperr.NotFound("Task")
	}

	t.Title = patch.Title
	t.Description = patch.Description
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Deadline != nil {
		t.Deadline = patch.Deadline
	}
	wasCompleted := t.Completed
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	switch {
	case patch.Completed != nil && !*patch.Completed:
		t.CompletedAt = patch.CompletedAt
	case patch.CompletedAt != nil:
		t.CompletedAt = patch.CompletedAt
	case patch.Completed != nil && !wasCompleted:
		at := patch.At
		t.CompletedAt = &at
	}
	t.UpdatedAt = patch.At

	clone := *t
	return &clone, nil
}

func (m *memoryTasks) Delete(_ context.Context, id, userID string) (*task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return nil, apperr.NotFound("Task")
	}
	delete(m.tasks, id)
	return t, nil
}

func newService(t *testing.T) (*task.Service, *memoryTasks) {
	t.Helper()
	store := newMemoryTasks()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return task.NewService(store, newPlanner(), logger), store
}
