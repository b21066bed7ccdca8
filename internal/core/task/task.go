// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

/*
Package task implements the owner-scoped task domain.

It defines the Task entity, the query planner that turns optional list
filters into one deterministic store query, and the CRUD service and HTTP
layer built on top of it.

# Ownership

Every read, update and delete is keyed by (task id, owner id). A task that
belongs to someone else is indistinguishable from one that does not exist.
*/
package task

import "time"

// # Enumerations

// Category groups tasks by area of life.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
	CategoryShopping Category = "shopping"
	CategoryFitness  Category = "fitness"
	CategoryFinance  Category = "finance"
	CategorySocial   Category = "social"
	CategoryChores   Category = "chores"
	CategoryHobbies  Category = "hobbies"
	CategoryUrgent   Category = "urgent"

	DefaultCategory = CategoryWork
)

// Categories lists every accepted [Category].
var Categories = []Category{
	CategoryWork, CategoryPersonal, CategoryStudy, CategoryShopping, CategoryFitness,
	CategoryFinance, CategorySocial, CategoryChores, CategoryHobbies, CategoryUrgent,
}

// Priority ranks how pressing a task is.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"

	DefaultPriority = PriorityMedium
)

// Priorities lists every accepted [Priority].
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// CategoryNames returns the string form of [Categories].
func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, category := range Categories {
		names[i] = string(category)
	}
	return names
}

// PriorityNames returns the string form of [Priorities].
func PriorityNames() []string {
	names := make([]string, len(Priorities))
	for i, priority := range Priorities {
		names[i] = string(priority)
	}
	return names
}

// # Domain Entities

// Task is a unit of work owned by exactly one identity.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Priority    Priority   `json:"priority"`
	Deadline    *time.Time `json:"deadline"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// View is a task as served to its owner, with the derived time remaining.
type View struct {
	*Task
	TimeRemaining string `json:"timeRemaining"`
}

// NewView derives the time remaining of t relative to now.
func NewView(t *Task, now time.Time) View {
	return View{Task: t, TimeRemaining: TimeRemaining(t.Deadline, now)}
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldPriority    = "priority"
	FieldDeadline    = "deadline"
	FieldCompletedAt = "completedAt"
	FieldDueDate     = "dueDate"
	FieldCreatedAt   = "createdAt"
	FieldStartDate   = "startDate"
	FieldEndDate     = "endDate"
	FieldMessage     = "message"
	FieldTask        = "task"
)

// # Client Messages

const (
	MsgCreated          = "Task created successfully"
	MsgDeleted          = "Task deleted successfully."
	MsgTitleDescription = "Title and description are required."
	MsgInvalidDate      = "Invalid date"
	MsgAllTasks         = "Here are all your tasks so far: %d total tasks."
)
