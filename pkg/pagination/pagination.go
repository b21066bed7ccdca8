// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

// Package pagination provides shared helpers for page-based list endpoints.
package pagination

import (
	"math"

	"github.com/RaynerdTech/ToDo/pkg/convert"
)

const (
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1

	// MaxPage caps requested pages so offsets stay representable.
	MaxPage = 1_000_000_000
)

// Params holds a page number and a fixed page size.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
// It saturates at math.MaxInt instead of overflowing.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// ParsePage reads a page number from a raw query value.
//
// Empty, malformed, zero and negative values all resolve to [DefaultPage].
// Values above [MaxPage] are clamped to it.
func ParsePage(raw string) int {
	page := convert.ToIntD(raw, DefaultPage)
	switch {
	case page < 1:
		return DefaultPage
	case page > MaxPage:
		return MaxPage
	}
	return page
}

// TotalPages returns ceil(total / limit), or zero when limit is not positive.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
