// Package seed writes computed standings to the optional Postgres sink.
package seed

import "fmt"

// Result tracks counts and errors from a seeding operation.
type Result struct {
	TeamsUpserted    int
	RankingsUpserted int
	Errors           []string
}

// Add merges another Result into this one.
func (r *Result) Add(other Result) {
	r.TeamsUpserted += other.TeamsUpserted
	r.RankingsUpserted += other.RankingsUpserted
	r.Errors = append(r.Errors, other.Errors...)
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the seed operation.
func (r *Result) Summary() string {
	return fmt.Sprintf("teams=%d rankings=%d errors=%d",
		r.TeamsUpserted, r.RankingsUpserted, len(r.Errors))
}
