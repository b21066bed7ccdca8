// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package task

import (
	"time"

	"github.com/RaynerdTech/ToDo/internal/platform/apperr"
	"github.com/RaynerdTech/ToDo/pkg/convert"
	"github.com/RaynerdTech/ToDo/pkg/pagination"
)

// # Query Planning

// PageSize is the fixed number of tasks per page in paginated mode.
const PageSize = 10

// Relative date buckets understood by the planner.
const (
	RelativeToday    = "today"
	RelativeThisWeek = "thisWeek"
)

// dayLayout is the calendar-day form accepted wherever a date is expected.
const dayLayout = "2006-01-02"

// Query is the raw, all-optional list query as received from the client.
type Query struct {
	ID           string
	Category     string
	Status       string
	DueDate      string
	CreatedAt    string
	StartDate    string
	EndDate      string
	Priority     string
	Page         string
	All          string
	RelativeDate string
}

// TimeRange is an inclusive instant range.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Filter is the store-level predicate. Nil or empty members do not constrain.
type Filter struct {
	UserID    string
	Category  string
	Completed *bool
	Deadline  *TimeRange
	CreatedAt *time.Time
	Priority  string
}

// Plan is a filter plus the pagination window it is read with.
// Results are always ordered by creation time, newest first.
type Plan struct {
	Filter   Filter
	Paginate bool
	Page     int
	Limit    int
	Offset   int
}

// Planner turns a [Query] into a [Plan]. Calendar days are resolved in its location.
type Planner struct {
	location *time.Location
	now      func() time.Time
}

// NewPlanner constructs a [Planner] resolving days in location (UTC when nil).
func NewPlanner(location *time.Location) *Planner {
	if location == nil {
		location = time.UTC
	}
	return &Planner{location: location, now: time.Now}
}

// WithClock returns a copy of the planner that reads time from now.
func (planner *Planner) WithClock(now func() time.Time) *Planner {
	clone := *planner
	clone.now = now
	return &clone
}

// Now reports the planner's current time in its location.
func (planner *Planner) Now() time.Time {
	return planner.now().In(planner.location)
}

// step narrows the filter with one query parameter.
type step func(planner *Planner, query Query, filter *Filter) error

// steps run in this order. Steps that set the deadline range overwrite it,
// so relativeDate beats startDate+endDate, which beats dueDate.
var steps = []step{
	applyCategory,
	applyStatus,
	applyDueDate,
	applyCreatedAt,
	applyDateRange,
	applyPriority,
	applyRelativeDate,
}

/*
Plan builds the store plan for an owner's list query. The id parameter is
not considered here; single-task lookups bypass planning.

Parameters:
  - userID: string (owner scope)
  - query: Query

Returns:
  - Plan: Filter and pagination window
  - error: apperr.ValidationError when a date parameter cannot be parsed
*/
func (planner *Planner) Plan(userID string, query Query) (Plan, error) {
	filter := Filter{UserID: userID}

	for _, apply := range steps {
		if err := apply(planner, query, &filter); err != nil {
			return Plan{}, err
		}
	}

	if convert.IsTrue(query.All) {
		return Plan{Filter: filter, Page: pagination.DefaultPage}, nil
	}

	params := pagination.Params{Page: pagination.ParsePage(query.Page), Limit: PageSize}
	return Plan{
		Filter:   filter,
		Paginate: true,
		Page:     params.Page,
		Limit:    params.Limit,
		Offset:   params.Offset(),
	}, nil
}

// # Filter Steps

func applyCategory(_ *Planner, query Query, filter *Filter) error {
	if query.Category != "" {
		filter.Category = query.Category
	}
	return nil
}

// applyStatus treats "true" as completed and any other non-empty value as open.
func applyStatus(_ *Planner, query Query, filter *Filter) error {
	if query.Status != "" {
		completed := convert.IsTrue(query.Status)
		filter.Completed = &completed
	}
	return nil
}

func applyDueDate(planner *Planner, query Query, filter *Filter) error {
	if query.DueDate == "" {
		return nil
	}

	day, err := planner.ParseTime(FieldDueDate, query.DueDate)
	if err != nil {
		return err
	}

	filter.Deadline = planner.wholeDay(day)
	return nil
}

func applyCreatedAt(planner *Planner, query Query, filter *Filter) error {
	if query.CreatedAt == "" {
		return nil
	}

	createdAt, err := planner.ParseTime(FieldCreatedAt, query.CreatedAt)
	if err != nil {
		return err
	}

	filter.CreatedAt = &createdAt
	return nil
}

// applyDateRange needs both bounds. A calendar-day endDate includes that whole day.
func applyDateRange(planner *Planner, query Query, filter *Filter) error {
	if query.StartDate == "" || query.EndDate == "" {
		return nil
	}

	from, err := planner.ParseTime(FieldStartDate, query.StartDate)
	if err != nil {
		return err
	}

	to, err := planner.ParseTime(FieldEndDate, query.EndDate)
	if err != nil {
		return err
	}

	if isDay(query.EndDate) {
		to = planner.endOfDay(to)
	}

	filter.Deadline = &TimeRange{From: from, To: to}
	return nil
}

func applyPriority(_ *Planner, query Query, filter *Filter) error {
	if query.Priority != "" {
		filter.Priority = query.Priority
	}
	return nil
}

// applyRelativeDate ignores buckets it does not know.
func applyRelativeDate(planner *Planner, query Query, filter *Filter) error {
	today := planner.Now()

	switch query.RelativeDate {
	case RelativeToday:
		filter.Deadline = planner.wholeDay(today)

	case RelativeThisWeek:
		// Weeks start on Sunday.
		start := planner.startOfDay(today).AddDate(0, 0, -int(today.Weekday()))
		filter.Deadline = &TimeRange{
			From: start,
			To:   planner.endOfDay(start.AddDate(0, 0, 6)),
		}
	}

	return nil
}

// # Time Helpers

/*
ParseTime accepts a calendar day (YYYY-MM-DD, midnight in the planner's
location) or an RFC 3339 timestamp.

Parameters:
  - field: string (reported on failure)
  - value: string

Returns:
  - time.Time: Parsed instant in the planner's location
  - error: apperr.ValidationError naming field
*/
func (planner *Planner) ParseTime(field, value string) (time.Time, error) {
	if day, err := time.ParseInLocation(dayLayout, value, planner.location); err == nil {
		return day, nil
	}

	if instant, err := time.Parse(time.RFC3339, value); err == nil {
		return instant.In(planner.location), nil
	}

	return time.Time{}, apperr.ValidationError(MsgInvalidDate, apperr.FieldError{
		Field:   field,
		Message: "Must be a date (YYYY-MM-DD) or an RFC 3339 timestamp",
	})
}

func isDay(value string) bool {
	_, err := time.Parse(dayLayout, value)
	return err == nil
}

func (planner *Planner) startOfDay(t time.Time) time.Time {
	t = t.In(planner.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, planner.location)
}

func (planner *Planner) endOfDay(t time.Time) time.Time {
	t = t.In(planner.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), planner.location)
}

func (planner *Planner) wholeDay(t time.Time) *TimeRange {
	return &TimeRange{From: planner.startOfDay(t), To: planner.endOfDay(t)}
}
