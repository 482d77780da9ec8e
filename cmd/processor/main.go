package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"stanpulse/internal/config"
	"stanpulse/internal/dataprocessing"
	"stanpulse/internal/infrastructure"
	"stanpulse/internal/pipeline"
)

func main() {
	os.Exit(run())
}

func run() int {
	inDir := flag.String("in", "", "input directory for .xlsx files (defaults to data/input relative to executable)")
	outDir := flag.String("out", "", "output directory for CSV reports (defaults to data/reports relative to executable)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		return 1
	}
	paths.ApplyOverrides(cfg.Paths)
	if *inDir != "" {
		paths.InputDir = *inDir
	}
	if *outDir != "" {
		paths.ReportsDir = *outDir
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create directories", "error", err)
		return 1
	}

	cfg.Logging.FilePath = paths.GetLogPath("processor.log")
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		return 1
	}
	defer infrastructure.CloseLogFile()

	metrics, err := infrastructure.InitializeMetrics()
	if err != nil {
		logger.Error("Failed to initialize metrics", "error", err)
		return 1
	}
	defer metrics.Shutdown(context.Background())

	pipelineMetrics, err := infrastructure.NewPipelineMetrics(metrics.Meter)
	if err != nil {
		logger.Error("Failed to create pipeline counters", "error", err)
		return 1
	}

	ctx, traceID := infrastructure.WithNewTraceID(context.Background())
	logger.InfoContext(ctx, "processor starting",
		slog.String("trace_id", traceID),
		slog.String("input_dir", paths.InputDir),
		slog.String("reports_dir", paths.ReportsDir))

	report, err := pipeline.Run(ctx, pipeline.Options{
		Paths:            paths,
		SheetName:        cfg.Pipeline.SheetName,
		RoleSplitPattern: cfg.Pipeline.RoleSplitPattern,
		Logger:           logger,
		Metrics:          pipelineMetrics,
	})
	if err != nil {
		var schemaErr *dataprocessing.SchemaError
		if errors.As(err, &schemaErr) {
			logger.ErrorContext(ctx, "input table is missing a required column",
				slog.String("column", schemaErr.Column))
		} else {
			logger.ErrorContext(ctx, "pipeline run failed", slog.String("error", err.Error()))
		}
		return 1
	}

	logger.InfoContext(ctx, "processor finished",
		slog.String("input_file", report.InputFile),
		slog.Int("rows_read", report.RowsRead),
		slog.Int("rows_kept", report.RowsKept),
		slog.Int("reports_written", len(report.ReportsWritten)))
	return 0
}
