package dataprocessing

import (
	"log/slog"
	"strconv"
	"strings"

	"stanpulse/pkg/contracts/domain"
)

// SanitizeResult carries the surviving records plus the exclusion counts the
// caller needs for visibility. Exclusions are a design choice, not errors.
type SanitizeResult struct {
	Records         []domain.ActivityRecord
	MissingDivision int
	BadSequence     int
}

// Dropped returns the total number of excluded rows.
func (r SanitizeResult) Dropped() int {
	return r.MissingDivision + r.BadSequence
}

// Sanitize validates and filters raw records, preserving row order among
// survivors:
//
//   - the organization field is trimmed of surrounding whitespace
//   - a row with a present division but an absent sequence gets sequence "0"
//   - a row with an absent division is dropped
//   - a row whose sequence is neither the "new" sentinel nor numeric is dropped
func Sanitize(records []domain.ActivityRecord) SanitizeResult {
	result := SanitizeResult{Records: make([]domain.ActivityRecord, 0, len(records))}

	for _, rec := range records {
		rec.Organization = strings.TrimSpace(rec.Organization)

		if strings.TrimSpace(rec.Division) == "" {
			result.MissingDivision++
			continue
		}

		seq := strings.TrimSpace(rec.Sequence)
		if seq == "" {
			rec.Sequence = "0"
			result.Records = append(result.Records, rec)
			continue
		}

		if !isNewSequence(seq) && !isNumeric(seq) {
			result.BadSequence++
			continue
		}

		rec.Sequence = seq
		result.Records = append(result.Records, rec)
	}

	if dropped := result.Dropped(); dropped > 0 {
		slog.Info("sanitizer excluded rows",
			slog.Int("missing_division", result.MissingDivision),
			slog.Int("bad_sequence", result.BadSequence),
			slog.Int("kept", len(result.Records)))
	}

	return result
}

// isNewSequence reports whether the trimmed sequence value is the sentinel
// for items without a round number yet.
func isNewSequence(value string) bool {
	for _, sentinel := range domain.SequenceNew {
		if strings.EqualFold(value, sentinel) {
			return true
		}
	}
	return false
}

// isNumeric reports whether the value parses as a number.
func isNumeric(value string) bool {
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}
