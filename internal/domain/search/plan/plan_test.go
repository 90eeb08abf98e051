package plan

import (
	"testing"

	"github.com/coursefind/coursefind/internal/domain/search/request"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func mustRequest(t *testing.T, p request.Params) request.Request {
	t.Helper()
	req, err := request.New(p)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return req
}

func TestCompile_EmptyRequest(t *testing.T) {
	req := mustRequest(t, request.Params{})
	p := Compile(&req)

	if !p.IsMatchAll() {
		t.Errorf("expected match-all plan, got %+v", p)
	}
	if !p.Sort.ByRelevance() {
		t.Errorf("expected relevance sort, got %+v", p.Sort)
	}
	if p.Offset != 0 || p.Limit != request.DefaultSize {
		t.Errorf("window = (%d,%d), want (0,%d)", p.Offset, p.Limit, request.DefaultSize)
	}
}

func TestCompile_TextClauseSpansTitleAndDescription(t *testing.T) {
	req := mustRequest(t, request.Params{Query: "robotics lab"})
	p := Compile(&req)

	if len(p.Must) != 1 {
		t.Fatalf("expected 1 text clause, got %d", len(p.Must))
	}
	tc := p.Must[0]
	if len(tc.Fields) != 2 || tc.Fields[0] != "title" || tc.Fields[1] != "description" {
		t.Errorf("unexpected fields: %v", tc.Fields)
	}
	if tc.Query != "robotics lab" || tc.Fuzzy {
		t.Errorf("unexpected clause: %+v", tc)
	}
}

func TestCompile_FuzzyFlagCarried(t *testing.T) {
	req := mustRequest(t, request.Params{Query: "algerba", Fuzzy: true})
	p := Compile(&req)

	if len(p.Must) != 1 || !p.Must[0].Fuzzy {
		t.Errorf("fuzzy flag lost: %+v", p.Must)
	}
}

func TestCompile_AgeOverlapSemantics(t *testing.T) {
	req := mustRequest(t, request.Params{MinAge: intPtr(6), MaxAge: intPtr(10)})
	p := Compile(&req)

	if len(p.Ranges) != 2 {
		t.Fatalf("expected 2 range clauses, got %d", len(p.Ranges))
	}
	// Requested minAge bounds the course's max_age from below.
	if p.Ranges[0].Field != "max_age" || p.Ranges[0].GTE == nil || *p.Ranges[0].GTE != 6 || p.Ranges[0].LTE != nil {
		t.Errorf("unexpected minAge clause: %+v", p.Ranges[0])
	}
	// Requested maxAge bounds the course's min_age from above.
	if p.Ranges[1].Field != "min_age" || p.Ranges[1].LTE == nil || *p.Ranges[1].LTE != 10 || p.Ranges[1].GTE != nil {
		t.Errorf("unexpected maxAge clause: %+v", p.Ranges[1])
	}
}

func TestCompile_InvertedAgesStillCompile(t *testing.T) {
	req := mustRequest(t, request.Params{MinAge: intPtr(12), MaxAge: intPtr(5)})
	p := Compile(&req)

	if len(p.Ranges) != 2 {
		t.Fatalf("expected 2 range clauses, got %d", len(p.Ranges))
	}
	// max_age >= 12 AND min_age <= 5 can still match a wide interval
	// like [4,13]; compilation never errors on it.
}

func TestCompile_PriceBounds(t *testing.T) {
	req := mustRequest(t, request.Params{MinPrice: floatPtr(0), MaxPrice: floatPtr(99.5)})
	p := Compile(&req)

	if len(p.Ranges) != 2 {
		t.Fatalf("expected 2 range clauses, got %d", len(p.Ranges))
	}
	if p.Ranges[0].Field != "price" || *p.Ranges[0].GTE != 0 {
		t.Errorf("unexpected minPrice clause: %+v", p.Ranges[0])
	}
	if p.Ranges[1].Field != "price" || *p.Ranges[1].LTE != 99.5 {
		t.Errorf("unexpected maxPrice clause: %+v", p.Ranges[1])
	}
}

func TestCompile_TermClauses(t *testing.T) {
	req := mustRequest(t, request.Params{Category: "Math", Type: "CLUB"})
	p := Compile(&req)

	if len(p.Terms) != 2 {
		t.Fatalf("expected 2 term clauses, got %d", len(p.Terms))
	}
	if p.Terms[0].Field != "category" || p.Terms[0].Value != "Math" {
		t.Errorf("unexpected category clause: %+v", p.Terms[0])
	}
	if p.Terms[1].Field != "type" || p.Terms[1].Value != "CLUB" {
		t.Errorf("unexpected type clause: %+v", p.Terms[1])
	}
}

func TestCompile_Window(t *testing.T) {
	req := mustRequest(t, request.Params{Page: intPtr(3), Size: intPtr(25)})
	p := Compile(&req)

	if p.Offset != 75 || p.Limit != 25 {
		t.Errorf("window = (%d,%d), want (75,25)", p.Offset, p.Limit)
	}
}

func TestCompile_Deterministic(t *testing.T) {
	req := mustRequest(t, request.Params{
		Query:    "chess",
		MinAge:   intPtr(7),
		Category: "Games",
		Sort:     "priceAsc",
	})

	a := Compile(&req)
	b := Compile(&req)

	if len(a.Must) != len(b.Must) || len(a.Ranges) != len(b.Ranges) || len(a.Terms) != len(b.Terms) {
		t.Fatal("identical requests must compile to identical plans")
	}
	if a.Sort != b.Sort || a.Offset != b.Offset || a.Limit != b.Limit {
		t.Fatal("identical requests must compile to identical plans")
	}
}

func TestIsMatchAll(t *testing.T) {
	p := Plan{}
	if !p.IsMatchAll() {
		t.Error("empty plan must be match-all")
	}
	p.Prefixes = []PrefixClause{{Field: "title", Prefix: "ro"}}
	if p.IsMatchAll() {
		t.Error("prefix clause must make the plan restrictive")
	}
}
