// Package request defines the validated search input.
package request

import (
	"fmt"
	"strings"

	"github.com/coursefind/coursefind/internal/domain"
	"github.com/coursefind/coursefind/internal/domain/search/sort"
)

// Pagination limits.
const (
	MaxQueryLength = 1024
	DefaultSize    = 10
	MaxSize        = 100
	MaxAgeBound    = 150
)

// Params are the raw caller parameters before validation. Nil pointers
// mean "not set"; zero is a meaningful value for several fields.
type Params struct {
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

// Request is a validated, immutable search query.
type Request struct {
	query    string
	minAge   *int
	maxAge   *int
	minPrice *float64
	maxPrice *float64
	category string
	courseType string
	sortKey  sort.Key
	fuzzy    bool
	page     int
	size     int
}

// New validates and normalizes search parameters.
// Defaults: page=0, size=10, sort=relevance. Out-of-range page or size
// is rejected with domain.ErrInvalidRequest, never clamped. Age and
// price bounds must be non-negative; an inverted age interval is
// accepted (it compiles to an empty overlap, not an error).
func New(p Params) (Request, error) {
	if len(p.Query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidRequest, MaxQueryLength)
	}

	page := 0
	if p.Page != nil {
		if *p.Page < 0 {
			return Request{}, fmt.Errorf("%w: page must be non-negative, got %d", domain.ErrInvalidRequest, *p.Page)
		}
		page = *p.Page
	}

	size := DefaultSize
	if p.Size != nil {
		if *p.Size < 1 || *p.Size > MaxSize {
			return Request{}, fmt.Errorf("%w: size must be in [1,%d], got %d", domain.ErrInvalidRequest, MaxSize, *p.Size)
		}
		size = *p.Size
	}

	if p.MinAge != nil && (*p.MinAge < 0 || *p.MinAge > MaxAgeBound) {
		return Request{}, fmt.Errorf("%w: minAge must be in [0,%d]", domain.ErrInvalidRequest, MaxAgeBound)
	}
	if p.MaxAge != nil && (*p.MaxAge < 0 || *p.MaxAge > MaxAgeBound) {
		return Request{}, fmt.Errorf("%w: maxAge must be in [0,%d]", domain.ErrInvalidRequest, MaxAgeBound)
	}
	if p.MinPrice != nil && *p.MinPrice < 0 {
		return Request{}, fmt.Errorf("%w: minPrice must be non-negative", domain.ErrInvalidRequest)
	}
	if p.MaxPrice != nil && *p.MaxPrice < 0 {
		return Request{}, fmt.Errorf("%w: maxPrice must be non-negative", domain.ErrInvalidRequest)
	}

	return Request{
		query:      strings.TrimSpace(p.Query),
		minAge:     p.MinAge,
		maxAge:     p.MaxAge,
		minPrice:   p.MinPrice,
		maxPrice:   p.MaxPrice,
		category:   strings.TrimSpace(p.Category),
		courseType: strings.TrimSpace(p.Type),
		sortKey:    sort.Key(p.Sort),
		fuzzy:      p.Fuzzy,
		page:       page,
		size:       size,
	}, nil
}

// Query returns the free-text query, trimmed. Empty means no text clause.
func (r *Request) Query() string { return r.query }

// MinAge returns the requested lower age bound (nil when unset).
func (r *Request) MinAge() *int { return r.minAge }

// MaxAge returns the requested upper age bound (nil when unset).
func (r *Request) MaxAge() *int { return r.maxAge }

// MinPrice returns the lower price bound (nil when unset).
func (r *Request) MinPrice() *float64 { return r.minPrice }

// MaxPrice returns the upper price bound (nil when unset).
func (r *Request) MaxPrice() *float64 { return r.maxPrice }

// Category returns the exact-match category discriminator.
func (r *Request) Category() string { return r.category }

// Type returns the exact-match course type discriminator.
func (r *Request) Type() string { return r.courseType }

// Sort returns the caller's sort key, possibly unrecognized.
func (r *Request) Sort() sort.Key { return r.sortKey }

// Fuzzy reports whether approximate term matching was requested.
func (r *Request) Fuzzy() bool { return r.fuzzy }

// Page returns the zero-based page number.
func (r *Request) Page() int { return r.page }

// Size returns the page size.
func (r *Request) Size() int { return r.size }
