package util

import "strconv"

// QuestionsPerPage is the fixed page size for every paginated listing.
const QuestionsPerPage = 10

// Paginate returns the 1-based page of items. Pages before the first or past
// the last yield an empty slice rather than an error.
func Paginate[T any](items []T, page int) []T {
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	// compared before multiplying so huge pages cannot overflow the offset
	if page < 1 || page > pages {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}

// ParsePage reads a page query value. Missing or non-integer values fall back to page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}
