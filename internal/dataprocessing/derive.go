package dataprocessing

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"stanpulse/pkg/contracts/domain"
)

// DefaultRoleSplitPattern separates entries in the free-text participant
// columns: one or more commas or newlines.
const DefaultRoleSplitPattern = `[,\n]+`

// RoleCounter counts participants in a free-text role cell. Counting is a
// pure function of the cell value.
type RoleCounter struct {
	split *regexp.Regexp
}

// NewRoleCounter compiles the split pattern. An empty pattern selects the
// default.
func NewRoleCounter(pattern string) (*RoleCounter, error) {
	if pattern == "" {
		pattern = DefaultRoleSplitPattern
	}

	split, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid role split pattern %q: %w", pattern, err)
	}

	return &RoleCounter{split: split}, nil
}

// Count returns the number of non-empty entries in a role cell. A missing
// value or a literal zero counts as no participants.
func (c *RoleCounter) Count(value string) int {
	value = strings.TrimSpace(value)
	if value == "" || value == "0" {
		return 0
	}

	count := 0
	for _, token := range c.split.Split(value, -1) {
		if strings.TrimSpace(token) != "" {
			count++
		}
	}
	return count
}

// DeriveRoleCounts fills the participant count fields on every record.
func DeriveRoleCounts(records []domain.ActivityRecord, counter *RoleCounter) {
	for i := range records {
		records[i].ContributorCount = counter.Count(records[i].Contributors)
		records[i].EditorCount = counter.Count(records[i].Editors)
		records[i].ChairCount = counter.Count(records[i].Chairs)
	}
}

// ExpandStatus fills the binary indicator columns from the fixed status
// mapping. At most one indicator is set per record; a label outside the
// mapping leaves all five at zero, silently removing the record from every
// stage bucket without excluding it from the table.
func ExpandStatus(records []domain.ActivityRecord) {
	for i := range records {
		indicators := make(map[domain.StatusTag]int, len(domain.StatusMappings))
		for _, m := range domain.StatusMappings {
			if records[i].Status == m.Label {
				indicators[m.Tag] = 1
			} else {
				indicators[m.Tag] = 0
			}
		}
		records[i].StatusIndicators = indicators
	}
}

// FormatYear normalizes a numeric integral year to its display form: a tick
// mark plus the zero-padded two-digit year ("2025" becomes "'25"). Anything
// else passes through unchanged.
func FormatYear(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return value
	}

	year, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return value
	}
	if year != math.Trunc(year) {
		return value
	}

	short := int(year) % 100
	if short < 0 {
		short += 100
	}
	return fmt.Sprintf("'%02d", short)
}

// FormatYears applies FormatYear to the start and end year columns.
func FormatYears(records []domain.ActivityRecord) {
	for i := range records {
		records[i].StartYear = FormatYear(records[i].StartYear)
		records[i].EndYear = FormatYear(records[i].EndYear)
	}
}
