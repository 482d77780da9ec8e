// Package pipeline orchestrates one batch run: discover the source workbook,
// parse and sanitize it, derive indicator and count columns, aggregate at
// three granularities, score the field-level aggregate, build the chair
// rosters, and persist every table as a CSV report.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"stanpulse/internal/aggregation"
	"stanpulse/internal/config"
	"stanpulse/internal/dataprocessing"
	"stanpulse/internal/exporter"
	"stanpulse/internal/files"
	"stanpulse/internal/infrastructure"
	"stanpulse/internal/roster"
	"stanpulse/internal/scoring"
	"stanpulse/pkg/contracts/domain"
)

// Options configures one pipeline run.
type Options struct {
	Paths            *config.Paths
	SheetName        string
	RoleSplitPattern string
	Logger           *slog.Logger
	Metrics          *infrastructure.PipelineMetrics
}

// RunReport summarizes one run for the caller: every silent exclusion and
// per-group degeneracy is counted here even though none of them abort a run.
type RunReport struct {
	InputFile                 string   `json:"input_file"`
	CandidateFiles            int      `json:"candidate_files"`
	RowsRead                  int      `json:"rows_read"`
	RowsKept                  int      `json:"rows_kept"`
	MissingDivision           int      `json:"missing_division"`
	BadSequence               int      `json:"bad_sequence"`
	FieldsScored              int      `json:"fields_scored"`
	DegenerateStrategicFields []string `json:"degenerate_strategic_fields"`
	ReportsWritten            []string `json:"reports_written"`
}

// Run executes the full pipeline against the first Excel file in the input
// directory. A missing input or a schema violation aborts the run; row-level
// and group-level data-quality findings are reported, not raised.
func Run(ctx context.Context, opts Options) (*RunReport, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	discovery := files.NewDiscovery(opts.Paths.InputDir)
	input, candidates, err := discovery.FirstExcelFile(".")
	if err != nil {
		return nil, fmt.Errorf("input discovery: %w", err)
	}
	if candidates > 1 {
		logger.WarnContext(ctx, "multiple input files found, processing the first only",
			slog.String("selected", input.Name),
			slog.Int("candidates", candidates))
	}

	records, err := dataprocessing.ParseWorkbook(input.Path, opts.SheetName)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", input.Name, err)
	}

	report, err := Process(ctx, records, opts)
	if err != nil {
		return nil, err
	}

	report.InputFile = input.Name
	report.CandidateFiles = candidates
	return report, nil
}

// Process runs the cleaning, derivation, aggregation, scoring, and roster
// stages over already-parsed records and persists every output table.
func Process(ctx context.Context, records []domain.ActivityRecord, opts Options) (*RunReport, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	report := &RunReport{RowsRead: len(records)}
	if opts.Metrics != nil {
		opts.Metrics.RowsRead.Add(ctx, int64(len(records)))
	}

	sanitized := dataprocessing.Sanitize(records)
	cleaned := sanitized.Records
	report.RowsKept = len(cleaned)
	report.MissingDivision = sanitized.MissingDivision
	report.BadSequence = sanitized.BadSequence
	if opts.Metrics != nil {
		opts.Metrics.RowsDropped.Add(ctx, int64(sanitized.Dropped()))
	}

	counter, err := dataprocessing.NewRoleCounter(opts.RoleSplitPattern)
	if err != nil {
		return nil, err
	}
	dataprocessing.DeriveRoleCounts(cleaned, counter)
	dataprocessing.ExpandStatus(cleaned)
	dataprocessing.FormatYears(cleaned)

	writer := exporter.NewCSVWriter(opts.Paths)
	if err := writeCleanedTable(writer, cleaned); err != nil {
		return nil, fmt.Errorf("persist cleaned table: %w", err)
	}
	report.ReportsWritten = append(report.ReportsWritten, config.CleanedReportCSV)

	// The aggregates and rosters read the same immutable slice and write
	// disjoint outputs, so they fan out without locking.
	var (
		divisionAgg, orgUnitAgg, fieldAgg *aggregation.Aggregate
		byField, byOrg                    []roster.Entry
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		divisionAgg, err = aggregation.Apply(aggregation.DivisionSpec, cleaned)
		return err
	})
	g.Go(func() error {
		var err error
		orgUnitAgg, err = aggregation.Apply(aggregation.OrgUnitSpec, cleaned)
		return err
	})
	g.Go(func() error {
		var err error
		fieldAgg, err = aggregation.Apply(aggregation.FieldSpec, cleaned)
		return err
	})
	g.Go(func() error {
		extractor := roster.NewExtractor()
		byField = roster.Build(cleaned, roster.ByStrategicField, extractor)
		byOrg = roster.Build(cleaned, roster.ByOrganization, extractor)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("aggregation: %w", err)
	}

	scorer, err := scoring.NewScorer(scoring.DefaultRoleWeights(), logger)
	if err != nil {
		return nil, err
	}
	metrics, degenerate, err := scorer.Score(ctx, fieldAgg)
	if err != nil {
		return nil, fmt.Errorf("scoring: %w", err)
	}
	report.FieldsScored = len(metrics)
	report.DegenerateStrategicFields = degenerate
	if opts.Metrics != nil {
		opts.Metrics.DegenerateGroups.Add(ctx, int64(len(degenerate)))
	}

	outputs := []struct {
		name    string
		headers []string
		records [][]string
	}{
		{config.DivisionAggregateCSV, divisionAgg.Headers(), divisionAgg.Records()},
		{config.OrgUnitAggregateCSV, orgUnitAgg.Headers(), orgUnitAgg.Records()},
		{config.FieldAggregateCSV, fieldAgg.Headers(), fieldAgg.Records()},
		{config.ScoredFieldsCSV, scoring.CSVHeaders(), scoring.CSVRecords(metrics)},
		{config.RosterByFieldCSV, roster.CSVHeaders("strategic_field"), roster.CSVRecords(byField)},
		{config.RosterByOrganizationCSV, roster.CSVHeaders("organization"), roster.CSVRecords(byOrg)},
	}
	for _, out := range outputs {
		if err := writer.WriteSimpleCSV(out.name, out.headers, out.records); err != nil {
			return nil, fmt.Errorf("persist %s: %w", out.name, err)
		}
		report.ReportsWritten = append(report.ReportsWritten, out.name)
	}

	if err := writeRunSummary(writer, report); err != nil {
		return nil, fmt.Errorf("persist run summary: %w", err)
	}
	report.ReportsWritten = append(report.ReportsWritten, config.RunSummaryCSV)

	if opts.Metrics != nil {
		opts.Metrics.ReportsWritten.Add(ctx, int64(len(report.ReportsWritten)))
	}

	logger.InfoContext(ctx, "pipeline run completed",
		slog.Int("rows_read", report.RowsRead),
		slog.Int("rows_kept", report.RowsKept),
		slog.Int("rows_dropped", report.MissingDivision+report.BadSequence),
		slog.Int("fields_scored", report.FieldsScored),
		slog.Int("degenerate_strategic_fields", len(report.DegenerateStrategicFields)),
		slog.Int("reports_written", len(report.ReportsWritten)))

	return report, nil
}

// writeCleanedTable streams the full cleaned and derived table. Source
// columns keep their workbook headers; derived columns get tagged names.
func writeCleanedTable(writer *exporter.CSVWriter, records []domain.ActivityRecord) error {
	headers := []string{
		config.ColOrganization, config.ColDivision, config.ColUnit,
		config.ColStrategicField, config.ColDetailedField,
		config.ColStatus, config.ColSequence,
		config.ColContributors, config.ColEditors, config.ColChairs,
		config.ColStartYear, config.ColEndYear,
		config.ColContributors + "_건수", config.ColEditors + "_건수", config.ColChairs + "_건수",
	}
	for _, m := range domain.StatusMappings {
		headers = append(headers, "status_"+string(m.Tag))
	}

	sw, err := writer.CreateStreamWriter(config.CleanedReportCSV, headers)
	if err != nil {
		return err
	}

	for _, r := range records {
		record := []string{
			r.Organization, r.Division, r.Unit,
			r.StrategicField, r.DetailedField,
			r.Status, r.Sequence,
			r.Contributors, r.Editors, r.Chairs,
			r.StartYear, r.EndYear,
			strconv.Itoa(r.ContributorCount), strconv.Itoa(r.EditorCount), strconv.Itoa(r.ChairCount),
		}
		for _, m := range domain.StatusMappings {
			record = append(record, strconv.Itoa(r.Indicator(m.Tag)))
		}
		if err := sw.WriteRecord(record); err != nil {
			sw.Close()
			return err
		}
	}

	return sw.Close()
}

// writeRunSummary persists the run counters for the caller's visibility.
func writeRunSummary(writer *exporter.CSVWriter, report *RunReport) error {
	return writer.WriteSimpleCSV(config.RunSummaryCSV,
		[]string{"metric", "value"},
		[][]string{
			{"rows_read", strconv.Itoa(report.RowsRead)},
			{"rows_kept", strconv.Itoa(report.RowsKept)},
			{"rows_dropped_missing_division", strconv.Itoa(report.MissingDivision)},
			{"rows_dropped_bad_sequence", strconv.Itoa(report.BadSequence)},
			{"fields_scored", strconv.Itoa(report.FieldsScored)},
			{"degenerate_strategic_fields", strconv.Itoa(len(report.DegenerateStrategicFields))},
		})
}
