// Package suggest serves typeahead completions over indexed course fields.
package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursefind/coursefind/internal/domain"
)

const (
	// DefaultLimit caps the number of distinct suggestions returned.
	DefaultLimit = 10

	minPrefixLength = 2
	maxPrefixLength = 64
)

// Service handles autocomplete suggestions.
type Service struct {
	repo  Repository
	limit int
}

// New creates a suggest service. limit <= 0 uses DefaultLimit.
func New(repo Repository, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{repo: repo, limit: limit}
}

// Suggest returns distinct values of field starting with prefix.
// Prefixes shorter than two characters return an empty list rather
// than fanning a near-match-all query out to the store.
func (s *Service) Suggest(ctx context.Context, field, prefix string) ([]string, error) {
	prefix = strings.TrimSpace(prefix)
	if len(prefix) > maxPrefixLength {
		return nil, fmt.Errorf("%w: prefix too long (max %d chars)", domain.ErrInvalidRequest, maxPrefixLength)
	}
	if len(prefix) < minPrefixLength {
		return []string{}, nil
	}

	values, err := s.repo.Suggest(ctx, field, prefix, s.limit)
	if err != nil {
		return nil, fmt.Errorf("suggest %s: %w", field, err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}
