// Package course defines the catalog record served by the search API.
package course

import (
	"fmt"
	"time"
)

// Course types observed in the catalog.
const (
	TypeOneTime = "ONE_TIME"
	TypeCourse  = "COURSE"
	TypeClub    = "CLUB"
)

// Course is a read-only catalog record. Instances are materialized from
// the catalog store per call and never mutated by the service.
type Course struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Type            string    `json:"type"`
	GradeRange      string    `json:"gradeRange,omitempty"`
	MinAge          int       `json:"minAge"`
	MaxAge          int       `json:"maxAge"`
	Price           float64   `json:"price"`
	NextSessionDate time.Time `json:"nextSessionDate"`
}

// Validate checks invariants produced by ingestion.
func (c *Course) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("course id is required")
	}
	if c.Title == "" {
		return fmt.Errorf("course %s: title is required", c.ID)
	}
	if c.MinAge < 0 || c.MaxAge < 0 {
		return fmt.Errorf("course %s: ages must be non-negative", c.ID)
	}
	if c.MinAge > c.MaxAge {
		return fmt.Errorf("course %s: minAge %d exceeds maxAge %d", c.ID, c.MinAge, c.MaxAge)
	}
	if c.Price < 0 {
		return fmt.Errorf("course %s: price must be non-negative", c.ID)
	}
	return nil
}
