package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/rueidis"

	"github.com/coursefind/coursefind/internal/db"
	"github.com/coursefind/coursefind/internal/domain/search/plan"
)

// Search runs a compiled query plan via FT.SEARCH with offset/limit
// pagination and an exact total match count.
func (s *Store) Search(ctx context.Context, q *db.Query) (*db.SearchResult, error) {
	if q.IndexName == "" {
		return nil, fmt.Errorf("index name is required")
	}

	p := &q.Plan
	args := []string{q.IndexName, buildQueryString(p)}

	if len(q.ReturnFields) > 0 {
		args = append(args, "RETURN", strconv.Itoa(len(q.ReturnFields)))
		args = append(args, q.ReturnFields...)
	}

	withScores := p.Sort.ByRelevance()
	if withScores {
		args = append(args, "WITHSCORES")
	} else {
		order := "ASC"
		if p.Sort.Descending {
			order = "DESC"
		}
		args = append(args, "SORTBY", p.Sort.Field, order)
	}

	args = append(args,
		"LIMIT", strconv.Itoa(p.Offset), strconv.Itoa(p.Limit),
		"DIALECT", "2",
	)

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	return parseSearchResult(raw, withScores)
}

// SearchCount returns the match count via FT.SEARCH with LIMIT 0 0.
func (s *Store) SearchCount(ctx context.Context, index, query string) (int, error) {
	cmd := s.b().Arbitrary("FT.SEARCH").Args(index, query, "LIMIT", "0", "0").Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return 0, &db.Error{Op: db.OpSearch, Err: err}
	}
	if len(raw) == 0 {
		return 0, fmt.Errorf("%w: empty FT.SEARCH reply", db.ErrMalformedReply)
	}
	total, err := raw[0].AsInt64()
	if err != nil {
		return 0, fmt.Errorf("%w: parse count: %w", db.ErrMalformedReply, err)
	}
	return int(total), nil
}

// --- Result parsing ---

// parseSearchResult decodes the RESP2 FT.SEARCH array.
// With scores: 3-stride [total, key1, score1, fields1, ...].
// With SORTBY: 2-stride [total, key1, fields1, ...].
func parseSearchResult(raw []rueidis.RedisMessage, withScores bool) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty FT.SEARCH reply", db.ErrMalformedReply)
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("%w: parse total: %w", db.ErrMalformedReply, err)
	}
	if total == 0 {
		return &db.SearchResult{}, nil
	}

	stride := 2
	if withScores {
		stride = 3
	}

	entries := make([]db.SearchEntry, 0, (len(raw)-1)/stride)
	for i := 1; i+stride-1 < len(raw); i += stride {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		entry := db.SearchEntry{Key: key}

		fieldsIdx := i + 1
		if withScores {
			scoreStr, err := raw[i+1].ToString()
			if err != nil {
				continue
			}
			score, err := strconv.ParseFloat(scoreStr, 64)
			if err != nil {
				continue
			}
			entry.Score = score
			fieldsIdx = i + 2
		}

		fields, err := raw[fieldsIdx].ToArray()
		if err != nil {
			continue
		}
		entry.Fields = parseFieldPairs(fields)

		entries = append(entries, entry)
	}

	return &db.SearchResult{Total: int(total), Entries: entries}, nil
}

func parseFieldPairs(fields []rueidis.RedisMessage) map[string]string {
	m := make(map[string]string, len(fields)/2)
	for j := 0; j+1 < len(fields); j += 2 {
		name, err := fields[j].ToString()
		if err != nil {
			continue
		}
		value, err := fields[j+1].ToString()
		if err != nil {
			continue
		}
		m[name] = value
	}
	return m
}

// --- Query string building ---

// buildQueryString translates the plan's clause tree into an FT.SEARCH
// query. All clauses are combined conjunctively; an empty plan matches
// everything.
func buildQueryString(p *plan.Plan) string {
	if p.IsMatchAll() {
		return "*"
	}

	var parts []string

	for _, c := range p.Must {
		parts = append(parts, buildTextClause(c))
	}
	for _, c := range p.Ranges {
		parts = append(parts, buildRangeClause(c))
	}
	for _, c := range p.Terms {
		parts = append(parts, buildTermClause(c))
	}
	for _, c := range p.Prefixes {
		parts = append(parts, buildPrefixClause(c))
	}

	return strings.Join(parts, " ")
}

// buildTextClause produces @f1|f2:(t1 t2), requiring every term to
// match in at least one of the listed fields. Fuzzy wraps each term in
// %...% (Levenshtein distance 1).
func buildTextClause(c plan.TextClause) string {
	terms := strings.Fields(c.Query)
	escaped := make([]string, 0, len(terms))
	for _, t := range terms {
		e := escapeQuery(t)
		if c.Fuzzy {
			e = "%" + e + "%"
		}
		escaped = append(escaped, e)
	}
	return fmt.Sprintf("@%s:(%s)", strings.Join(c.Fields, "|"), strings.Join(escaped, " "))
}

func buildRangeClause(c plan.RangeClause) string {
	minBound := "-inf"
	maxBound := "+inf"
	if c.GTE != nil {
		minBound = fmt.Sprintf("%g", *c.GTE)
	}
	if c.LTE != nil {
		maxBound = fmt.Sprintf("%g", *c.LTE)
	}
	return fmt.Sprintf("@%s:[%s %s]", c.Field, minBound, maxBound)
}

func buildTermClause(c plan.TermClause) string {
	return fmt.Sprintf("@%s:{%s}", c.Field, tagEscaper.Replace(c.Value))
}

func buildPrefixClause(c plan.PrefixClause) string {
	if c.Tag {
		return fmt.Sprintf("@%s:{%s*}", c.Field, tagEscaper.Replace(c.Prefix))
	}
	return fmt.Sprintf("@%s:(%s*)", c.Field, escapeQuery(c.Prefix))
}

// --- Query helpers ---

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)

func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}

var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
)
