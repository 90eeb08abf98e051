package search

import (
	"context"

	"github.com/coursefind/coursefind/internal/domain/course"
	"github.com/coursefind/coursefind/internal/domain/search/plan"
)

// Repository defines the storage contract for catalog search.
type Repository interface {
	Search(ctx context.Context, p plan.Plan) (hits []course.Course, totalHits int, err error)
	Get(ctx context.Context, id string) (course.Course, error)
}
