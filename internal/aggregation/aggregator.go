// Package aggregation groups derived records by configurable key tuples and
// sums their indicator and count columns into named summary tables.
package aggregation

import (
	"fmt"
	"sort"
	"strings"

	"stanpulse/pkg/contracts/domain"
)

// Column identifies a record field usable as a grouping key or a summed
// value in a GroupSpec.
type Column string

const (
	// Key columns
	ColOrganization   Column = "organization"
	ColDivision       Column = "division"
	ColUnit           Column = "unit"
	ColStrategicField Column = "strategic_field"
	ColDetailedField  Column = "detailed_field"

	// Summable value columns
	ColPlanned          Column = "status_planned"
	ColProposed         Column = "status_proposed"
	ColInDev            Column = "status_in_dev"
	ColCompleted        Column = "status_completed"
	ColStopped          Column = "status_stopped"
	ColContributorCount Column = "contributor_count"
	ColEditorCount      Column = "editor_count"
	ColChairCount       Column = "chair_count"
)

// StatusColumns lists the indicator columns in canonical order.
var StatusColumns = []Column{ColPlanned, ColProposed, ColInDev, ColCompleted, ColStopped}

// RoleColumns lists the participant count columns in canonical order.
var RoleColumns = []Column{ColContributorCount, ColEditorCount, ColChairCount}

// GroupSpec describes one aggregation: group rows by the exact tuple of key
// column values and sum the value columns per group. Key matching is exact:
// values differing in case or whitespace form distinct groups.
type GroupSpec struct {
	Name   string
	Keys   []Column
	Values []Column
}

// Row is one output row of an aggregation.
type Row struct {
	Keys []string
	Sums []int
}

// Aggregate is the result of applying one GroupSpec.
type Aggregate struct {
	Spec GroupSpec
	Rows []Row
}

// Sum returns the summed value for a column in a row, by position in the
// spec's value list.
func (a *Aggregate) Sum(row Row, col Column) (int, bool) {
	for i, c := range a.Spec.Values {
		if c == col {
			return row.Sums[i], true
		}
	}
	return 0, false
}

// Headers returns the CSV header row for the aggregate: key columns followed
// by value columns.
func (a *Aggregate) Headers() []string {
	headers := make([]string, 0, len(a.Spec.Keys)+len(a.Spec.Values))
	for _, c := range a.Spec.Keys {
		headers = append(headers, string(c))
	}
	for _, c := range a.Spec.Values {
		headers = append(headers, string(c))
	}
	return headers
}

// Records returns the aggregate rows as CSV records matching Headers.
func (a *Aggregate) Records() [][]string {
	records := make([][]string, 0, len(a.Rows))
	for _, row := range a.Rows {
		record := make([]string, 0, len(row.Keys)+len(row.Sums))
		record = append(record, row.Keys...)
		for _, sum := range row.Sums {
			record = append(record, fmt.Sprintf("%d", sum))
		}
		records = append(records, record)
	}
	return records
}

// Apply groups the records per the spec. Grouping is exhaustive: every
// distinct key tuple present in the data yields exactly one row, and no
// tuple is invented. Output rows are sorted by key tuple for determinism.
func Apply(spec GroupSpec, records []domain.ActivityRecord) (*Aggregate, error) {
	keyFns := make([]func(domain.ActivityRecord) string, len(spec.Keys))
	for i, col := range spec.Keys {
		fn, ok := keyAccessors[col]
		if !ok {
			return nil, fmt.Errorf("spec %q: column %q is not a grouping key", spec.Name, col)
		}
		keyFns[i] = fn
	}

	valueFns := make([]func(domain.ActivityRecord) int, len(spec.Values))
	for i, col := range spec.Values {
		fn, ok := valueAccessors[col]
		if !ok {
			return nil, fmt.Errorf("spec %q: column %q is not a summable value", spec.Name, col)
		}
		valueFns[i] = fn
	}

	groups := make(map[string]*Row)
	for _, rec := range records {
		keys := make([]string, len(keyFns))
		for i, fn := range keyFns {
			keys[i] = fn(rec)
		}
		id := strings.Join(keys, "\x1f")

		row, ok := groups[id]
		if !ok {
			row = &Row{Keys: keys, Sums: make([]int, len(valueFns))}
			groups[id] = row
		}
		for i, fn := range valueFns {
			row.Sums[i] += fn(rec)
		}
	}

	rows := make([]Row, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		for k := range rows[i].Keys {
			if rows[i].Keys[k] != rows[j].Keys[k] {
				return rows[i].Keys[k] < rows[j].Keys[k]
			}
		}
		return false
	})

	return &Aggregate{Spec: spec, Rows: rows}, nil
}

var keyAccessors = map[Column]func(domain.ActivityRecord) string{
	ColOrganization:   func(r domain.ActivityRecord) string { return r.Organization },
	ColDivision:       func(r domain.ActivityRecord) string { return r.Division },
	ColUnit:           func(r domain.ActivityRecord) string { return r.Unit },
	ColStrategicField: func(r domain.ActivityRecord) string { return r.StrategicField },
	ColDetailedField:  func(r domain.ActivityRecord) string { return r.DetailedField },
}

var valueAccessors = map[Column]func(domain.ActivityRecord) int{
	ColPlanned:          func(r domain.ActivityRecord) int { return r.Indicator(domain.StatusPlanned) },
	ColProposed:         func(r domain.ActivityRecord) int { return r.Indicator(domain.StatusProposed) },
	ColInDev:            func(r domain.ActivityRecord) int { return r.Indicator(domain.StatusInDev) },
	ColCompleted:        func(r domain.ActivityRecord) int { return r.Indicator(domain.StatusCompleted) },
	ColStopped:          func(r domain.ActivityRecord) int { return r.Indicator(domain.StatusStopped) },
	ColContributorCount: func(r domain.ActivityRecord) int { return r.ContributorCount },
	ColEditorCount:      func(r domain.ActivityRecord) int { return r.EditorCount },
	ColChairCount:       func(r domain.ActivityRecord) int { return r.ChairCount },
}
