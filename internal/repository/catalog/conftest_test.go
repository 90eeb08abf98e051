package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/coursefind/coursefind/internal/db"
	"github.com/coursefind/coursefind/internal/domain/course"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchFn      func(ctx context.Context, q *db.Query) (*db.SearchResult, error)
	createIndexFn func(ctx context.Context, def *db.IndexDefinition) error
	indexExistsFn func(ctx context.Context, name string) (bool, error)
	hSetMultiFn   func(ctx context.Context, items []db.HashSetItem) error
	hGetAllFn     func(ctx context.Context, key string) (map[string]string, error)
	searchCountFn func(ctx context.Context, index, query string) (int, error)
}

func (m *mockStore) Search(ctx context.Context, q *db.Query) (*db.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) IndexExists(ctx context.Context, name string) (bool, error) {
	if m.indexExistsFn != nil {
		return m.indexExistsFn(ctx, name)
	}
	return false, nil
}

func (m *mockStore) HSetMulti(ctx context.Context, items []db.HashSetItem) error {
	if m.hSetMultiFn != nil {
		return m.hSetMultiFn(ctx, items)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hGetAllFn != nil {
		return m.hGetAllFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) SearchCount(ctx context.Context, index, query string) (int, error) {
	if m.searchCountFn != nil {
		return m.searchCountFn(ctx, index, query)
	}
	return 0, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, "courses"), ms
}

func sampleCourse(id string) course.Course {
	return course.Course{
		ID:              id,
		Title:           "Algebra Foundations",
		Description:     "Equations and graphing for beginners",
		Category:        "Math",
		Type:            course.TypeCourse,
		GradeRange:      "1st-3rd",
		MinAge:          6,
		MaxAge:          10,
		Price:           49.99,
		NextSessionDate: time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
	}
}
