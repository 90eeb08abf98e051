package catalog

import (
	"context"
	"fmt"

	"github.com/coursefind/coursefind/internal/db"
	"github.com/coursefind/coursefind/internal/domain"
	"github.com/coursefind/coursefind/internal/domain/search/plan"
	"github.com/coursefind/coursefind/internal/domain/search/sort"
)

// suggestFields maps the autocomplete-capable fields to their index
// representation. category is a tag field and needs tag prefix syntax.
var suggestFields = map[string]bool{
	fieldTitle:       false,
	fieldDescription: false,
	fieldCategory:    true,
}

// Suggest returns up to limit distinct stored values of field that
// begin with prefix, in backend relevance order (first hit per value).
func (r *Repo) Suggest(ctx context.Context, field, prefix string, limit int) ([]string, error) {
	tag, ok := suggestFields[field]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported suggest field %q", domain.ErrInvalidRequest, field)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p := plan.Plan{
		Prefixes: []plan.PrefixClause{{Field: field, Prefix: prefix, Tag: tag}},
		Sort:     sort.Resolve(sort.Relevance),
		Limit:    limit,
	}

	sr, err := r.store.Search(ctx, &db.Query{
		IndexName:    r.index,
		Plan:         p,
		ReturnFields: []string{field},
	})
	if err != nil {
		return nil, classify(fmt.Errorf("suggest %s %q: %w", field, prefix, err))
	}

	seen := make(map[string]bool, len(sr.Entries))
	values := make([]string, 0, limit)
	for _, entry := range sr.Entries {
		v := entry.Fields[field]
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
		if len(values) == limit {
			break
		}
	}

	return values, nil
}
