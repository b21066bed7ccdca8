// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package schema

// TaskTable represents the 'tasks' table
type TaskTable struct {
	Table       string
	ID          string
	UserID      string
	Title       string
	Description string
	Category    string
	Priority    string
	Deadline    string
	Completed   string
	CompletedAt string
	CreatedAt   string
	UpdatedAt   string
}

// Task is the schema definition for tasks
var Task = TaskTable{
	Table:       "tasks",
	ID:          "id",
	UserID:      "user_id",
	Title:       "title",
	Description: "description",
	Category:    "category",
	Priority:    "priority",
	Deadline:    "deadline",
	Completed:   "completed",
	CompletedAt: "completed_at",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// Columns returns all standard column names
func (t TaskTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.Title, t.Description, t.Category, t.Priority,
		t.Deadline, t.Completed, t.CompletedAt, t.CreatedAt, t.UpdatedAt,
	}
}
