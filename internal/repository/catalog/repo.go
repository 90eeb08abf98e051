package catalog

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/coursefind/coursefind/internal/db"
	"github.com/coursefind/coursefind/internal/domain"
	"github.com/coursefind/coursefind/internal/domain/course"
	"github.com/coursefind/coursefind/internal/domain/search/plan"
)

// store is the consumer interface for catalog operations.
type store interface {
	Search(ctx context.Context, q *db.Query) (*db.SearchResult, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

const defaultSearchTimeout = 5 * time.Second

// Repo executes compiled query plans against the catalog store and
// owns the course index lifecycle.
type Repo struct {
	store   store
	index   string
	timeout time.Duration
}

// New creates a catalog repository over the given index.
func New(s store, indexName string) *Repo {
	return &Repo{store: s, index: indexName, timeout: defaultSearchTimeout}
}

// WithTimeout overrides the per-call search timeout.
func (r *Repo) WithTimeout(d time.Duration) *Repo {
	if d > 0 {
		r.timeout = d
	}
	return r
}

// Search executes a single attempt of the compiled plan and returns
// the page of hits plus the exact total match count. Backend failures
// are classified into domain.ErrBackendUnavailable (unreachable or
// timed out) and domain.ErrBackendError (malformed or rejected reply);
// no failure is ever folded into an empty result.
func (r *Repo) Search(ctx context.Context, p plan.Plan) ([]course.Course, int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	sr, err := r.store.Search(ctx, &db.Query{
		IndexName:    r.index,
		Plan:         p,
		ReturnFields: returnFields,
	})
	if err != nil {
		return nil, 0, classify(fmt.Errorf("search %s: %w", r.index, err))
	}

	hits := make([]course.Course, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		id := extractDocID(entry.Key, r.index)
		hits = append(hits, parseHashFields(id, entry.Fields))
	}

	return hits, sr.Total, nil
}

// Get returns a single course by id.
func (r *Repo) Get(ctx context.Context, id string) (course.Course, error) {
	m, err := r.store.HGetAll(ctx, docKey(r.index, id))
	if err != nil {
		return course.Course{}, classify(fmt.Errorf("get %s: %w", id, err))
	}
	if len(m) == 0 {
		return course.Course{}, domain.ErrNotFound
	}
	return parseHashFields(id, m), nil
}

// EnsureIndex creates the course index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) (created bool, err error) {
	exists, err := r.store.IndexExists(ctx, r.index)
	if err != nil {
		return false, classify(fmt.Errorf("index exists %s: %w", r.index, err))
	}
	if exists {
		return false, nil
	}

	if err := r.store.CreateIndex(ctx, buildIndex(r.index)); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return false, nil
		}
		return false, classify(fmt.Errorf("create index %s: %w", r.index, err))
	}
	return true, nil
}

// BulkUpsert writes a batch of courses in one pipelined round-trip.
func (r *Repo) BulkUpsert(ctx context.Context, courses []course.Course) error {
	if len(courses) == 0 {
		return nil
	}

	items := make([]db.HashSetItem, len(courses))
	for i := range courses {
		items[i] = db.HashSetItem{
			Key:    docKey(r.index, courses[i].ID),
			Fields: buildHashFields(&courses[i]),
		}
	}

	if err := r.store.HSetMulti(ctx, items); err != nil {
		return classify(fmt.Errorf("bulk upsert %d courses: %w", len(courses), err))
	}
	return nil
}

// Count returns the number of indexed courses.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.SearchCount(ctx, r.index, "*")
	if err != nil {
		return 0, classify(fmt.Errorf("count %s: %w", r.index, err))
	}
	return n, nil
}

// classify maps a store failure onto the domain error taxonomy.
// Timeouts and transport-level failures are retryable unavailability;
// everything else means the store answered but the reply was unusable.
func classify(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	case errors.Is(err, db.ErrMalformedReply):
		return fmt.Errorf("%w: %w", domain.ErrBackendError, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}

	return fmt.Errorf("%w: %w", domain.ErrBackendError, err)
}
