// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RaynerdTech/ToDo/internal/platform/database/schema"
	"github.com/RaynerdTech/ToDo/internal/platform/dberr"
)

// taskColumns is the select list understood by scanTask.
var taskColumns = strings.Join(schema.Task.Columns(), ", ")

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL task repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func scanTask(row pgx.Row) (*Task, error) {
	var t Task
	var category, priority string

	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.Description,
		&category,
		&priority,
		&t.Deadline,
		&t.Completed,
		&t.CompletedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Category = Category(category)
	t.Priority = Priority(priority)
	return &t, nil
}

/*
buildWhere renders filter as a WHERE clause with positional arguments
starting at $1. The owner predicate is always first.

Returns:
  - string: " WHERE ..." fragment
  - []any: Arguments in placeholder order
*/
func buildWhere(filter Filter) (string, []any) {
	var conditions []string
	var args []any

	add := func(format string, values ...any) {
		placeholders := make([]any, len(values))
		for i, value := range values {
			args = append(args, value)
			placeholders[i] = len(args)
		}
		conditions = append(conditions, fmt.Sprintf(format, placeholders...))
	}

	add(schema.Task.UserID+" = $%d", filter.UserID)

	if filter.Category != "" {
		add(schema.Task.Category+" = $%d", filter.Category)
	}
	if filter.Completed != nil {
		add(schema.Task.Completed+" = $%d", *filter.Completed)
	}
	if filter.Deadline != nil {
		add(schema.Task.Deadline+" BETWEEN $%d AND $%d", filter.Deadline.From, filter.Deadline.To)
	}
	if filter.CreatedAt != nil {
		add(schema.Task.CreatedAt+" = $%d", *filter.CreatedAt)
	}
	if filter.Priority != "" {
		add(schema.Task.Priority+" = $%d", filter.Priority)
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

/*
List executes a planned query.

Description: In paginated mode the window is applied with LIMIT/OFFSET; the
id tiebreaker keeps pages stable when creation times collide.

Parameters:
  - context: context.Context
  - plan: Plan

Returns:
  - []*Task: Matching tasks
  - error: Database execution errors
*/
func (repository *PostgresRepository) List(context context.Context, plan Plan) ([]*Task, error) {
	var queryBuilder strings.Builder

	where, args := buildWhere(plan.Filter)
	queryBuilder.WriteString(fmt.Sprintf("SELECT %s FROM %s", taskColumns, schema.Task.Table))
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s DESC, %s DESC", schema.Task.CreatedAt, schema.Task.ID))

	if plan.Paginate {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
		args = append(args, plan.Limit, plan.Offset)
	}

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("postgres_task_repo_list_failed: %w", dberr.Wrap(err, "Task"))
	}
	defer rows.Close()

	tasks := []*Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_task_repo_scan_failed: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_task_repo_rows_failed: %w", err)
	}

	return tasks, nil
}

// Count returns the number of tasks matching filter.
func (repository *PostgresRepository) Count(context context.Context, filter Filter) (int, error) {
	where, args := buildWhere(filter)
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", schema.Task.Table, where)

	var total int
	if err := repository.pool.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("postgres_task_repo_count_failed: %w", dberr.Wrap(err, "Task"))
	}

	return total, nil
}

// FindOne returns one owner-scoped task. Malformed ids read as not found.
func (repository *PostgresRepository) FindOne(context context.Context, id, userID string) (*Task, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 AND %s = $2",
		taskColumns, schema.Task.Table, schema.Task.ID, schema.Task.UserID)

	t, err := scanTask(repository.pool.QueryRow(context, query, id, userID))
	if err != nil {
		return nil, fmt.Errorf("postgres_task_repo_find_failed: %w", dberr.Wrap(err, "Task"))
	}

	return t, nil
}

/*
Create inserts a task.

Parameters:
  - context: context.Context
  - task: *Task (ID, owner and defaults already set)

Returns:
  - error: Constraint or connectivity errors
*/
func (repository *PostgresRepository) Create(context context.Context, task *Task) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		schema.Task.Table, taskColumns)

	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		string(task.Category),
		string(task.Priority),
		task.Deadline,
		task.Completed,
		task.CompletedAt,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_task_repo_create_failed: %w", dberr.Wrap(err, "Task"))
	}

	return nil
}

// updateStatement patches one owned task; see [PostgresRepository.Update].
var updateStatement = fmt.Sprintf(`
	UPDATE %[1]s SET
		%[2]s = $3,
		%[3]s = $4,
		%[4]s = COALESCE($5::text, %[4]s),
		%[5]s = COALESCE($6::text, %[5]s),
		%[6]s = COALESCE($7::timestamptz, %[6]s),
		%[7]s = COALESCE($8::boolean, %[7]s),
		%[8]s = CASE
			WHEN $8::boolean IS FALSE THEN $9::timestamptz
			WHEN $9::timestamptz IS NOT NULL THEN $9::timestamptz
			WHEN $8::boolean IS TRUE AND NOT %[7]s THEN $10::timestamptz
			ELSE %[8]s
		END,
		%[9]s = $10::timestamptz
	WHERE %[10]s = $1 AND %[11]s = $2
	RETURNING %[12]s`,
	schema.Task.Table,
	schema.Task.Title,
	schema.Task.Description,
	schema.Task.Category,
	schema.Task.Priority,
	schema.Task.Deadline,
	schema.Task.Completed,
	schema.Task.CompletedAt,
	schema.Task.UpdatedAt,
	schema.Task.ID,
	schema.Task.UserID,
	taskColumns,
)

/*
Update applies a patch atomically.

Description: Optional columns fall back to their stored value through
COALESCE. Marking a task open clears completed_at unless one is supplied.
Completing an open task without a timestamp stamps patch.At; a task that was
already completed keeps its completion time.

Parameters:
  - context: context.Context
  - id: string
  - userID: string
  - patch: Patch

Returns:
  - *Task: Row after the update
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) Update(context context.Context, id, userID string, patch Patch) (*Task, error) {

	var category, priority *string
	if patch.Category != nil {
		value := string(*patch.Category)
		category = &value
	}
	if patch.Priority != nil {
		value := string(*patch.Priority)
		priority = &value
	}

	updatedAt := patch.At
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	t, err := scanTask(repository.pool.QueryRow(context, updateStatement,
		id,
		userID,
		patch.Title,
		patch.Description,
		category,
		priority,
		patch.Deadline,
		patch.Completed,
		patch.CompletedAt,
		updatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("postgres_task_repo_update_failed: %w", dberr.Wrap(err, "Task"))
	}

	return t, nil
}

// Delete removes one owner-scoped task and returns it.
func (repository *PostgresRepository) Delete(context context.Context, id, userID string) (*Task, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = $2 RETURNING %s",
		schema.Task.Table, schema.Task.ID, schema.Task.UserID, taskColumns)

	t, err := scanTask(repository.pool.QueryRow(context, query, id, userID))
	if err != nil {
		return nil, fmt.Errorf("postgres_task_repo_delete_failed: %w", dberr.Wrap(err, "Task"))
	}

	return t, nil
}
