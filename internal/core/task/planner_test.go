// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package task_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaynerdTech/ToDo/internal/core/task"
	"github.com/RaynerdTech/ToDo/internal/platform/apperr"
)

// Wednesday afternoon.
var plannerNow = time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC)

func newPlanner() *task.Planner {
	return task.NewPlanner(time.UTC).WithClock(func() time.Time { return plannerNow })
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOf(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

/*
TestPlanner_DeadlinePrecedence feeds overlapping deadline filters and checks
that the later step in the pipeline wins.
*/
func TestPlanner_DeadlinePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		query task.Query
		want  *task.TimeRange
	}{
		{
			name:  "none",
			query: task.Query{},
			want:  nil,
		},
		{
			name:  "due_date_only",
			query: task.Query{DueDate: "2026-03-10"},
			want:  &task.TimeRange{From: day(2026, 3, 10), To: endOf(2026, 3, 10)},
		},
		{
			name:  "range_beats_due_date",
			query: task.Query{DueDate: "2026-03-10", StartDate: "2026-03-01", EndDate: "2026-03-05"},
			want:  &task.TimeRange{From: day(2026, 3, 1), To: endOf(2026, 3, 5)},
		},
		{
			name:  "half_range_is_ignored",
			query: task.Query{DueDate: "2026-03-10", StartDate: "2026-03-01"},
			want:  &task.TimeRange{From: day(2026, 3, 10), To: endOf(2026, 3, 10)},
		},
		{
			name:  "relative_today_beats_everything",
			query: task.Query{DueDate: "2026-03-10", StartDate: "2026-03-01", EndDate: "2026-03-05", RelativeDate: "today"},
			want:  &task.TimeRange{From: day(2026, 3, 4), To: endOf(2026, 3, 4)},
		},
		{
			name:  "relative_this_week_starts_sunday",
			query: task.Query{RelativeDate: "thisWeek"},
			want:  &task.TimeRange{From: day(2026, 3, 1), To: endOf(2026, 3, 7)},
		},
		{
			name:  "unknown_relative_is_ignored",
			query: task.Query{DueDate: "2026-03-10", RelativeDate: "nextYear"},
			want:  &task.TimeRange{From: day(2026, 3, 10), To: endOf(2026, 3, 10)},
		},
		{
			name:  "timestamp_range_kept_exact",
			query: task.Query{StartDate: "2026-03-01T08:00:00Z", EndDate: "2026-03-02T08:00:00Z"},
			want: &task.TimeRange{
				From: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
				To:   time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := newPlanner().Plan("owner", tt.query)
			require.NoError(t, err)

			if tt.want == nil {
				assert.Nil(t, plan.Filter.Deadline)
				return
			}
			require.NotNil(t, plan.Filter.Deadline)
			assert.True(t, tt.want.From.Equal(plan.Filter.Deadline.From), "from: %s", plan.Filter.Deadline.From)
			assert.True(t, tt.want.To.Equal(plan.Filter.Deadline.To), "to: %s", plan.Filter.Deadline.To)
		})
	}
}

/*
TestPlanner_ScalarFilters covers owner scope, category, status, priority and createdAt.
*/
func TestPlanner_ScalarFilters(t *testing.T) {
	plan, err := newPlanner().Plan("owner", task.Query{
		Category:  "study",
		Status:    "true",
		Priority:  "high",
		CreatedAt: "2026-03-02T10:30:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "owner", plan.Filter.UserID)
	assert.Equal(t, "study", plan.Filter.Category)
	assert.Equal(t, "high", plan.Filter.Priority)
	require.NotNil(t, plan.Filter.Completed)
	assert.True(t, *plan.Filter.Completed)
	require.NotNil(t, plan.Filter.CreatedAt)
	assert.True(t, time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC).Equal(*plan.Filter.CreatedAt))

	for _, status := range []string{"false", "yes", "TRUE", "1"} {
		plan, err := newPlanner().Plan("owner", task.Query{Status: status})
		require.NoError(t, err)
		require.NotNil(t, plan.Filter.Completed, status)
		assert.False(t, *plan.Filter.Completed, status)
	}
}

/*
TestPlanner_Pagination checks page parsing and all-mode.
*/
func TestPlanner_Pagination(t *testing.T) {
	tests := []struct {
		name     string
		query    task.Query
		paginate bool
		page     int
		offset   int
	}{
		{"default", task.Query{}, true, 1, 0},
		{"third_page", task.Query{Page: "3"}, true, 3, 20},
		{"negative_page", task.Query{Page: "-2"}, true, 1, 0},
		{"garbage_page", task.Query{Page: "abc"}, true, 1, 0},
		{"huge_page", task.Query{Page: "1000000000000000000"}, true, 1_000_000_000, 9_999_999_990},
		{"all", task.Query{All: "true", Page: "4"}, false, 1, 0},
		{"all_not_true", task.Query{All: "yes"}, true, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := newPlanner().Plan("owner", tt.query)
			require.NoError(t, err)

			assert.Equal(t, tt.paginate, plan.Paginate)
			assert.Equal(t, tt.page, plan.Page)
			assert.Equal(t, tt.offset, plan.Offset)
			if tt.paginate {
				assert.Equal(t, task.PageSize, plan.Limit)
			}
		})
	}
}

/*
TestPlanner_BadDates rejects unparseable dates with a 400 naming the field.
*/
func TestPlanner_BadDates(t *testing.T) {
	tests := []struct {
		name  string
		query task.Query
		field string
	}{
		{"due_date", task.Query{DueDate: "tomorrow"}, task.FieldDueDate},
		{"created_at", task.Query{CreatedAt: "2026-13-01"}, task.FieldCreatedAt},
		{"start_date", task.Query{StartDate: "x", EndDate: "2026-03-01"}, task.FieldStartDate},
		{"end_date", task.Query{StartDate: "2026-03-01", EndDate: "x"}, task.FieldEndDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newPlanner().Plan("owner", tt.query)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
			require.Len(t, ae.Details, 1)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

/*
TestPlanner_Location resolves calendar days in the configured zone.
*/
func TestPlanner_Location(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)
	// 02:00 UTC on the 5th is still the 4th in UTC-5.
	planner := task.NewPlanner(zone).WithClock(func() time.Time {
		return time.Date(2026, 3, 5, 2, 0, 0, 0, time.UTC)
	})

	plan, err := planner.Plan("owner", task.Query{RelativeDate: "today"})
	require.NoError(t, err)
	require.NotNil(t, plan.Filter.Deadline)

	assert.True(t, time.Date(2026, 3, 4, 0, 0, 0, 0, zone).Equal(plan.Filter.Deadline.From))
	assert.True(t, time.Date(2026, 3, 4, 23, 59, 59, int(999*time.Millisecond), zone).Equal(plan.Filter.Deadline.To))
}
