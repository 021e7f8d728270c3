// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// AtoiDefault converts a string to an int using strconv.Atoi.
// If the string is empty or cannot be parsed as an integer,
// it returns the provided default value instead.
//
// Example:
//
//	n := utils.AtoiDefault("42", 0) // returns 42
//	n = utils.AtoiDefault("", 10)   // returns 10
//	n = utils.AtoiDefault("x", 5)   // returns 5
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// PageBounds computes the half-open slice range [start, end) for the given
// 1-based page over a sequence of total elements. Out-of-range pages clamp
// to an empty or shorter window rather than erroring, matching the behavior
// of slicing past the end of a list.
func PageBounds(page, limit, total int) (start, end int) {
	start = (page - 1) * limit
	end = page * limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return start, end
}

// TotalPages returns ceil(total/limit), the number of pages needed to cover
// total elements at the given page size. A non-positive limit yields 0.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
