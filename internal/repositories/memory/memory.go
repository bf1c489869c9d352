// Package memory implements every repository interface in process memory.
// It backs demo mode when no database is reachable and the service tests.
// Lists are kept in insertion order; "newest first" reads walk them in
// reverse, matching the createdAt sort of the MongoDB implementation.
package memory

import (
	"strings"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// paginate slices a total count into the [start, end) window for a page
func paginate(page, limit, length int) (int, int) {
	start := (page - 1) * limit
	if start > length {
		start = length
	}
	end := start + limit
	if end > length {
		end = length
	}
	return start, end
}
