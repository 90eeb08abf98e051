package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/coursefind/coursefind/internal/domain"
	"github.com/coursefind/coursefind/internal/domain/course"
)

// Hash field names. Numeric fields carry stringified numbers;
// next_session_date carries epoch milliseconds so the index can range
// and sort over it.
const (
	fieldID          = "id"
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldCategory    = "category"
	fieldType        = "type"
	fieldGradeRange  = "grade_range"
	fieldMinAge      = "min_age"
	fieldMaxAge      = "max_age"
	fieldPrice       = "price"
	fieldSessionDate = "next_session_date"
)

// returnFields lists every hash field the executor asks the store to return.
var returnFields = []string{
	fieldID, fieldTitle, fieldDescription, fieldCategory, fieldType,
	fieldGradeRange, fieldMinAge, fieldMaxAge, fieldPrice, fieldSessionDate,
}

// buildHashFields converts a course into a flat map[string]string for HSET.
func buildHashFields(c *course.Course) map[string]string {
	m := map[string]string{
		fieldID:          c.ID,
		fieldTitle:       c.Title,
		fieldDescription: c.Description,
		fieldCategory:    c.Category,
		fieldType:        c.Type,
		fieldMinAge:      strconv.Itoa(c.MinAge),
		fieldMaxAge:      strconv.Itoa(c.MaxAge),
		fieldPrice:       strconv.FormatFloat(c.Price, 'f', -1, 64),
		fieldSessionDate: strconv.FormatInt(c.NextSessionDate.UnixMilli(), 10),
	}
	if c.GradeRange != "" {
		m[fieldGradeRange] = c.GradeRange
	}
	return m
}

// parseHashFields converts a flat hash map back into a course record.
func parseHashFields(id string, m map[string]string) course.Course {
	c := course.Course{
		ID:          id,
		Title:       m[fieldTitle],
		Description: m[fieldDescription],
		Category:    m[fieldCategory],
		Type:        m[fieldType],
		GradeRange:  m[fieldGradeRange],
	}
	if v, err := strconv.Atoi(m[fieldMinAge]); err == nil {
		c.MinAge = v
	}
	if v, err := strconv.Atoi(m[fieldMaxAge]); err == nil {
		c.MaxAge = v
	}
	if v, err := strconv.ParseFloat(m[fieldPrice], 64); err == nil {
		c.Price = v
	}
	if ms, err := strconv.ParseInt(m[fieldSessionDate], 10, 64); err == nil {
		c.NextSessionDate = time.UnixMilli(ms).UTC()
	}
	return c
}

func docKey(index, id string) string {
	return fmt.Sprintf("%s%s:%s", domain.KeyPrefix, index, id)
}

func keyPrefix(index string) string {
	return fmt.Sprintf("%s%s:", domain.KeyPrefix, index)
}

func extractDocID(key, index string) string {
	return strings.TrimPrefix(key, keyPrefix(index))
}
