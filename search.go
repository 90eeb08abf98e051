package coursefind

import (
	"context"
	"time"

	"github.com/coursefind/coursefind/internal/domain/course"
	"github.com/coursefind/coursefind/internal/domain/search/request"
)

// Course is a catalog record.
type Course struct {
	ID              string
	Title           string
	Description     string
	Category        string
	Type            string
	GradeRange      string
	MinAge          int
	MaxAge          int
	Price           float64
	NextSessionDate time.Time
}

// SearchOptions configures a catalog search. Nil pointer fields mean
// "not set"; zero is a meaningful value for ages, prices, and page.
type SearchOptions struct {
	Query    string
	MinAge   *int
	MaxAge   *int
	MinPrice *float64
	MaxPrice *float64
	Category string
	Type     string
	Sort     string
	Fuzzy    bool
	Page     *int
	Size     *int
}

// Page is one page of search results plus pagination metadata.
type Page struct {
	Results         []Course
	TotalHits       int
	Page            int
	Size            int
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
}

// Search executes a catalog search.
func (c *Client) Search(ctx context.Context, opts SearchOptions) (Page, error) {
	page, err := c.searchSvc.Search(ctx, request.Params{
		Query:    opts.Query,
		MinAge:   opts.MinAge,
		MaxAge:   opts.MaxAge,
		MinPrice: opts.MinPrice,
		MaxPrice: opts.MaxPrice,
		Category: opts.Category,
		Type:     opts.Type,
		Sort:     opts.Sort,
		Fuzzy:    opts.Fuzzy,
		Page:     opts.Page,
		Size:     opts.Size,
	})
	if err != nil {
		return Page{}, err
	}

	results := make([]Course, len(page.Results))
	for i, dc := range page.Results {
		results[i] = fromInternalCourse(dc)
	}

	return Page{
		Results:         results,
		TotalHits:       page.TotalHits,
		Page:            page.Page,
		Size:            page.Size,
		TotalPages:      page.TotalPages,
		HasNextPage:     page.HasNextPage,
		HasPreviousPage: page.HasPreviousPage,
	}, nil
}

func fromInternalCourse(dc course.Course) Course {
	return Course{
		ID:              dc.ID,
		Title:           dc.Title,
		Description:     dc.Description,
		Category:        dc.Category,
		Type:            dc.Type,
		GradeRange:      dc.GradeRange,
		MinAge:          dc.MinAge,
		MaxAge:          dc.MaxAge,
		Price:           dc.Price,
		NextSessionDate: dc.NextSessionDate,
	}
}

func toInternalCourses(courses []Course) []course.Course {
	out := make([]course.Course, len(courses))
	for i, c := range courses {
		out[i] = course.Course{
			ID:              c.ID,
			Title:           c.Title,
			Description:     c.Description,
			Category:        c.Category,
			Type:            c.Type,
			GradeRange:      c.GradeRange,
			MinAge:          c.MinAge,
			MaxAge:          c.MaxAge,
			Price:           c.Price,
			NextSessionDate: c.NextSessionDate,
		}
	}
	return out
}
