package sort

import "testing"

func TestResolve(t *testing.T) {
	cases := []struct {
		key  Key
		want Directive
	}{
		{PriceAsc, Directive{Field: "price"}},
		{PriceDesc, Directive{Field: "price", Descending: true}},
		{DateAsc, Directive{Field: "next_session_date"}},
		{Relevance, Directive{Descending: true}},
		{Key(""), Directive{Descending: true}},
		{Key("bogus"), Directive{Descending: true}},
	}
	for _, tc := range cases {
		if got := Resolve(tc.key); got != tc.want {
			t.Errorf("Resolve(%q) = %+v, want %+v", tc.key, got, tc.want)
		}
	}
}

func TestByRelevance(t *testing.T) {
	if !Resolve(Relevance).ByRelevance() {
		t.Error("relevance directive must report ByRelevance")
	}
	if Resolve(PriceAsc).ByRelevance() {
		t.Error("field sort must not report ByRelevance")
	}
}
