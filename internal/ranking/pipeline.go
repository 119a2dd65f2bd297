package ranking

import (
	"fmt"
	"strings"

	"github.com/diazpablogon/footballstats/internal/dataset"
)

// Diagnostic reports degraded input alongside a valid result, instead of an
// error. MissingRoles is non-empty only when column resolution failed;
// SkippedRows counts unplayed or malformed rows on the success path.
type Diagnostic struct {
	MissingRoles     []Role
	AvailableColumns []string
	SkippedRows      int
}

// Unresolved reports whether column resolution failed entirely.
func (d *Diagnostic) Unresolved() bool {
	return d != nil && len(d.MissingRoles) > 0
}

// String renders the diagnostic for operator logs.
func (d *Diagnostic) String() string {
	if d == nil {
		return ""
	}
	if d.Unresolved() {
		roles := make([]string, len(d.MissingRoles))
		for i, r := range d.MissingRoles {
			roles[i] = string(r)
		}
		return fmt.Sprintf("unresolved roles [%s], available columns [%s]",
			strings.Join(roles, ", "), strings.Join(d.AvailableColumns, ", "))
	}
	return fmt.Sprintf("skipped %d unplayed or malformed rows", d.SkippedRows)
}

// Pipeline derives a standings table from one league-season schedule.
// It is safe to run many Pipelines concurrently: Compute touches no shared
// state beyond the per-call accumulators.
type Pipeline struct {
	resolver *Resolver
}

// NewPipeline creates a Pipeline. Pass nil synonyms to accept the default
// column naming conventions.
func NewPipeline(synonyms Synonyms) *Pipeline {
	return &Pipeline{resolver: NewResolver(synonyms)}
}

// Compute resolves columns, extracts finished matches, and aggregates them
// into a standings table. It never returns an error:
//
//   - empty input yields an empty table and no diagnostic
//   - unresolved columns yield an empty table plus a diagnostic naming the
//     missing roles and the columns that were available
//   - a resolved schedule yields the table, plus a diagnostic carrying the
//     skip count when any rows were passed over
func (p *Pipeline) Compute(rows []dataset.Row) (Table, *Diagnostic) {
	if len(rows) == 0 {
		return Table{}, nil
	}

	columns := columnSet(rows)
	mapping, missing := p.resolver.Resolve(columns)
	if mapping == nil {
		return Table{}, &Diagnostic{
			MissingRoles:     missing,
			AvailableColumns: columns,
		}
	}

	results, skipped := Extract(rows, mapping)
	table := Aggregate(results)
	if skipped > 0 {
		return table, &Diagnostic{SkippedRows: skipped}
	}
	return table, nil
}

// ComputeFrame is a convenience for callers holding a dataset.Frame.
func (p *Pipeline) ComputeFrame(f *dataset.Frame) (Table, *Diagnostic) {
	if f == nil {
		return Table{}, nil
	}
	return p.Compute(f.Rows)
}
