package movie

import (
	"fmt"
	"strings"
	"time"

	"moviestore/errs"
)

// Films predate 1888 only apocryphally; Roundhay Garden Scene sets the floor.
const MinYear = 1888

var ErrNotFound = errs.Errorf(errs.ENOTFOUND, "Movie not found")

type Movie struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Director string `json:"director"`
	Year     int    `json:"year"`
}

// Candidate is unvalidated input proposed for a create or update. Fields are
// trimmed on conversion to a Movie, never before validation reports on them.
type Candidate struct {
	Title    string
	Director string
	Year     int
}

// Validate checks every rule and collects all violations rather than
// stopping at the first. The year upper bound is read from the live clock so
// it stays correct in a long-running process.
func (c Candidate) Validate() []string {
	var violations []string

	if strings.TrimSpace(c.Title) == "" {
		violations = append(violations, "Title is required")
	}
	if strings.TrimSpace(c.Director) == "" {
		violations = append(violations, "Director is required")
	}

	currentYear := time.Now().Year()
	switch {
	case c.Year == 0:
		violations = append(violations, "Year is required")
	case c.Year < MinYear || c.Year > currentYear:
		violations = append(violations,
			fmt.Sprintf("Year must be a number between %d and %d", MinYear, currentYear))
	}

	return violations
}

// ToMovie converts a validated candidate into an entity. id is assigned by
// the repository; callers pass 0 on create.
func (c Candidate) ToMovie(id int) Movie {
	return Movie{
		ID:       id,
		Title:    strings.TrimSpace(c.Title),
		Director: strings.TrimSpace(c.Director),
		Year:     c.Year,
	}
}

// ValidationError carries the full list of rule violations for a candidate.
// It is always surfaced whole; a failing write is never partially applied.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// Filter holds the optional list criteria. All supplied criteria must match
// (logical AND). Nil year bounds mean the criterion is absent.
type Filter struct {
	Title    string
	Director string
	Year     *int
	MinYear  *int
	MaxYear  *int
}

// Matches reports whether m satisfies every criterion set on f.
func (f Filter) Matches(m Movie) bool {
	if f.Title != "" && !containsFold(m.Title, f.Title) {
		return false
	}
	if f.Director != "" && !containsFold(m.Director, f.Director) {
		return false
	}
	if f.Year != nil && m.Year != *f.Year {
		return false
	}
	if f.MinYear != nil && m.Year < *f.MinYear {
		return false
	}
	if f.MaxYear != nil && m.Year > *f.MaxYear {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
