package utils

import (
	"strconv"
	"strings"
)

func ParseIntSafe(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, _ := strconv.Atoi(s)
	return v
}

// ParsePage coerces a ?page value to a positive page number (min 1).
func ParsePage(s string) int {
	page := ParseIntSafe(s)
	if page < 1 {
		return 1
	}
	return page
}

// ParseLimit coerces a ?limit value into [1, max], falling back to def
// when the value is missing or not a number.
func ParseLimit(s string, def, max int) int {
	limit := ParseIntSafe(s)
	if limit == 0 {
		limit = def
	}
	if limit < 1 {
		limit = 1
	}
	if limit > max {
		limit = max
	}
	return limit
}

// TotalPages returns ceil(total/limit) with a floor of 1, so empty
// result sets still report a single page.
func TotalPages(total int64, limit int) int64 {
	if limit < 1 {
		limit = 1
	}
	pages := (total + int64(limit) - 1) / int64(limit)
	if pages < 1 {
		return 1
	}
	return pages
}
