// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package task

import (
	"fmt"
	"time"
)

const dayLength = 24 * time.Hour

// NoDeadline is reported for tasks without a deadline.
const NoDeadline = "No deadline"

// TimeRemaining renders the distance from now to deadline in whole hours
// (under a day, or overdue) or whole days. Values are floored.
func TimeRemaining(deadline *time.Time, now time.Time) string {
	if deadline == nil {
		return NoDeadline
	}

	diff := deadline.Sub(now)

	switch {
	case diff <= 0:
		return fmt.Sprintf("Overdue by %d hours", int64(-diff/time.Hour))
	case diff < dayLength:
		return fmt.Sprintf("%d hours left", int64(diff/time.Hour))
	default:
		return fmt.Sprintf("%d days left", int64(diff/dayLength))
	}
}
