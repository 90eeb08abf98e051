// Package sort maps caller sort keys onto catalog sort directives.
package sort

// Key is a caller-supplied sort key.
type Key string

// Accepted sort keys. Anything else falls back to relevance.
const (
	Relevance Key = "relevance"
	DateAsc   Key = "dateAsc"
	PriceAsc  Key = "priceAsc"
	PriceDesc Key = "priceDesc"
)

// Directive is a resolved sort instruction for the catalog store.
// An empty Field means relevance-score descending.
type Directive struct {
	Field      string
	Descending bool
}

// Resolve maps a sort key to its directive. The mapping is total:
// unknown or empty keys resolve to relevance-score descending.
func Resolve(k Key) Directive {
	switch k {
	case PriceAsc:
		return Directive{Field: "price"}
	case PriceDesc:
		return Directive{Field: "price", Descending: true}
	case DateAsc:
		return Directive{Field: "next_session_date"}
	default:
		return Directive{Descending: true}
	}
}

// ByRelevance reports whether the directive sorts by relevance score.
func (d Directive) ByRelevance() bool { return d.Field == "" }
