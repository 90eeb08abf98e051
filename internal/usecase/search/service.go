// Package search orchestrates catalog search: it compiles validated
// requests into query plans, executes them, and shapes the results
// into a paginated page.
package search

import (
	"context"
	"fmt"

	"github.com/coursefind/coursefind/internal/domain/course"
	"github.com/coursefind/coursefind/internal/domain/search/plan"
	"github.com/coursefind/coursefind/internal/domain/search/request"
	"github.com/coursefind/coursefind/internal/domain/search/result"
)

// Service handles course catalog search.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search validates the parameters, compiles them into a plan, runs a
// single search attempt, and shapes the hits into a page. Backend
// failures propagate to the caller; they are never folded into an
// empty page.
func (s *Service) Search(ctx context.Context, params request.Params) (result.Page, error) {
	req, err := request.New(params)
	if err != nil {
		return result.Page{}, err
	}

	p := plan.Compile(&req)

	hits, totalHits, err := s.repo.Search(ctx, p)
	if err != nil {
		return result.Page{}, fmt.Errorf("execute search: %w", err)
	}

	return result.NewPage(hits, totalHits, req.Page(), req.Size()), nil
}

// Get returns a single course by id.
func (s *Service) Get(ctx context.Context, id string) (course.Course, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return course.Course{}, fmt.Errorf("get course %s: %w", id, err)
	}
	return c, nil
}
