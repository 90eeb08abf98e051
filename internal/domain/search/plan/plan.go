// Package plan compiles a validated search request into a
// backend-agnostic boolean query plan.
package plan

import (
	"github.com/coursefind/coursefind/internal/domain/search/request"
	"github.com/coursefind/coursefind/internal/domain/search/sort"
)

// TextClause is a scoring, required-to-match full-text condition over
// one or more fields (disjunctive: at least one field must match).
type TextClause struct {
	Fields []string
	Query  string
	Fuzzy  bool
}

// RangeClause is a non-scoring numeric bound on a single field.
// Nil bounds are open; both bounds are inclusive.
type RangeClause struct {
	Field string
	GTE   *float64
	LTE   *float64
}

// TermClause is a non-scoring exact, case-sensitive token match.
type TermClause struct {
	Field string
	Value string
}

// PrefixClause matches values starting with Prefix. Tag selects
// tag-field syntax over full-text syntax. Never produced by Compile;
// used by the autocomplete path.
type PrefixClause struct {
	Field  string
	Prefix string
	Tag    bool
}

// Plan is the compiled query: a conjunction of every clause, a single
// sort directive, and a pagination window. Built and consumed within
// one request.
type Plan struct {
	Must     []TextClause
	Ranges   []RangeClause
	Terms    []TermClause
	Prefixes []PrefixClause
	Sort     sort.Directive
	Offset   int
	Limit    int
}

// Compile deterministically maps a request onto a Plan. Pure and
// total: inverted or empty ranges compile to clauses that may match
// nothing, never to an error. An empty request compiles to a
// match-everything plan with the requested sort and window.
func Compile(req *request.Request) Plan {
	p := Plan{
		Sort:   sort.Resolve(req.Sort()),
		Offset: req.Page() * req.Size(),
		Limit:  req.Size(),
	}

	if q := req.Query(); q != "" {
		p.Must = append(p.Must, TextClause{
			Fields: []string{"title", "description"},
			Query:  q,
			Fuzzy:  req.Fuzzy(),
		})
	}

	// Age filters use overlap semantics: a course qualifies when its
	// age interval intersects the requested one.
	if min := req.MinAge(); min != nil {
		v := float64(*min)
		p.Ranges = append(p.Ranges, RangeClause{Field: "max_age", GTE: &v})
	}
	if max := req.MaxAge(); max != nil {
		v := float64(*max)
		p.Ranges = append(p.Ranges, RangeClause{Field: "min_age", LTE: &v})
	}

	if min := req.MinPrice(); min != nil {
		v := *min
		p.Ranges = append(p.Ranges, RangeClause{Field: "price", GTE: &v})
	}
	if max := req.MaxPrice(); max != nil {
		v := *max
		p.Ranges = append(p.Ranges, RangeClause{Field: "price", LTE: &v})
	}

	if c := req.Category(); c != "" {
		p.Terms = append(p.Terms, TermClause{Field: "category", Value: c})
	}
	if t := req.Type(); t != "" {
		p.Terms = append(p.Terms, TermClause{Field: "type", Value: t})
	}

	return p
}

// IsMatchAll reports whether the plan has no restricting clauses.
func (p *Plan) IsMatchAll() bool {
	return len(p.Must) == 0 && len(p.Ranges) == 0 && len(p.Terms) == 0 && len(p.Prefixes) == 0
}
