// Package result shapes raw catalog hits into a paginated response.
package result

import "github.com/coursefind/coursefind/internal/domain/course"

// Page is the shaped search response: one page of hits plus derived
// pagination metadata.
type Page struct {
	Results         []course.Course `json:"results"`
	TotalHits       int             `json:"totalHits"`
	Page            int             `json:"page"`
	Size            int             `json:"size"`
	TotalPages      int             `json:"totalPages"`
	HasNextPage     bool            `json:"hasNextPage"`
	HasPreviousPage bool            `json:"hasPreviousPage"`
}

// NewPage derives pagination metadata from the raw hit list and exact
// total match count. Hits are passed through in executor order, never
// re-sorted or re-filtered. totalPages is 0 when totalHits is 0, which
// also makes hasNextPage false on page 0 (page < -1 never holds).
func NewPage(hits []course.Course, totalHits, page, size int) Page {
	if hits == nil {
		hits = []course.Course{}
	}

	totalPages := 0
	if totalHits > 0 {
		totalPages = (totalHits + size - 1) / size
	}

	return Page{
		Results:         hits,
		TotalHits:       totalHits,
		Page:            page,
		Size:            size,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages-1,
		HasPreviousPage: page > 0,
	}
}
