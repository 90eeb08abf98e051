package ingest

import (
	"context"

	"github.com/coursefind/coursefind/internal/domain/course"
)

// Repository defines the storage contract for catalog ingestion.
type Repository interface {
	EnsureIndex(ctx context.Context) (created bool, err error)
	BulkUpsert(ctx context.Context, courses []course.Course) error
	Count(ctx context.Context) (int, error)
}
