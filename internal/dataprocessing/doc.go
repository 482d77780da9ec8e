// Package dataprocessing reads the standardization-activity workbook and
// turns raw rows into cleaned, derived records: it locates the header row,
// enforces the named-column contract, filters invalid rows, and derives the
// participant counts, status indicators, and display years the aggregation
// and scoring stages consume.
//
// Validity rules are deliberately forgiving: malformed rows and unknown
// status labels are excluded or zero-filled and counted, never raised as
// errors. Only a missing required column aborts a run.
package dataprocessing
