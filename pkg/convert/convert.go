// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

/*
Package convert provides quick type-conversion utilities for query parameters.

Conversions are fault-tolerant: malformed input falls back to a default
instead of producing an error. Do not use this package where malformed data
must be told apart from a zero value.
*/
package convert

import (
	"strconv"
)

// ToIntD converts a string to an int, returning the provided default if parsing fails or string is empty.
func ToIntD(str string, def int) int {

	// If the string is empty, return the default value
	if str == "" {
		return def
	}

	// Try to parse the string as an integer
	if v, err := strconv.Atoi(str); err == nil {
		return v
	}

	// If parsing fails, return the default value
	return def
}

// IsTrue reports whether s is exactly the string "true".
//
// Query flags compare literally; "1", "TRUE" and "yes" are all false.
func IsTrue(s string) bool {
	return s == "true"
}
