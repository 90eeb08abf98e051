package catalog

import "github.com/coursefind/coursefind/internal/db"

// buildIndex returns the FT index definition for the course catalog.
// title/description are analyzed text; category/type/grade_range are
// exact-match tags (case-sensitive, matching the original keyword
// mapping); the numeric fields are sortable so the store can order by
// price and session date.
func buildIndex(name string) *db.IndexDefinition {
	return &db.IndexDefinition{
		Name:        name,
		StorageType: db.StorageHash,
		Prefixes:    []string{keyPrefix(name)},
		Fields: []db.IndexField{
			{Name: fieldTitle, Type: db.IndexFieldText},
			{Name: fieldDescription, Type: db.IndexFieldText},
			{Name: fieldCategory, Type: db.IndexFieldTag, TagCaseSensitive: true},
			{Name: fieldType, Type: db.IndexFieldTag, TagCaseSensitive: true},
			{Name: fieldGradeRange, Type: db.IndexFieldTag, TagCaseSensitive: true},
			{Name: fieldMinAge, Type: db.IndexFieldNumeric},
			{Name: fieldMaxAge, Type: db.IndexFieldNumeric},
			{Name: fieldPrice, Type: db.IndexFieldNumeric, Sortable: true},
			{Name: fieldSessionDate, Type: db.IndexFieldNumeric, Sortable: true},
		},
	}
}
