package infrastructure

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	ServiceName    = "stanpulse"
	ServiceVersion = "1.0.0"
	MeterName      = "stanpulse"
)

// MetricsProvider holds the OpenTelemetry meter provider and the Prometheus
// exposition handler backed by it.
type MetricsProvider struct {
	MeterProvider  *sdkmetric.MeterProvider
	Meter          metric.Meter
	PrometheusHTTP http.Handler
}

// InitializeMetrics sets up an OpenTelemetry meter provider with a Prometheus
// exporter and registers it globally.
func InitializeMetrics() (*MetricsProvider, error) {
	res, err := resource.Merge(resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(ServiceName),
			semconv.ServiceVersion(ServiceVersion),
		))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(provider)

	return &MetricsProvider{
		MeterProvider:  provider,
		Meter:          provider.Meter(MeterName),
		PrometheusHTTP: promhttp.Handler(),
	}, nil
}

// Shutdown flushes and stops the meter provider.
func (p *MetricsProvider) Shutdown(ctx context.Context) error {
	if p == nil || p.MeterProvider == nil {
		return nil
	}
	return p.MeterProvider.Shutdown(ctx)
}

// PipelineMetrics carries the counters the pipeline records for caller
// visibility: silent data-quality exclusions and degenerate score groups are
// dropped from output but never from telemetry.
type PipelineMetrics struct {
	RowsRead         metric.Int64Counter
	RowsDropped      metric.Int64Counter
	DegenerateGroups metric.Int64Counter
	ReportsWritten   metric.Int64Counter
}

// NewPipelineMetrics creates the pipeline counters on the given meter.
func NewPipelineMetrics(meter metric.Meter) (*PipelineMetrics, error) {
	rowsRead, err := meter.Int64Counter("stanpulse_rows_read_total",
		metric.WithDescription("Rows read from the source workbook"))
	if err != nil {
		return nil, fmt.Errorf("create rows_read counter: %w", err)
	}

	rowsDropped, err := meter.Int64Counter("stanpulse_rows_dropped_total",
		metric.WithDescription("Rows excluded by the sanitizer"))
	if err != nil {
		return nil, fmt.Errorf("create rows_dropped counter: %w", err)
	}

	degenerate, err := meter.Int64Counter("stanpulse_degenerate_groups_total",
		metric.WithDescription("Strategic fields with an undefined capability normalizer"))
	if err != nil {
		return nil, fmt.Errorf("create degenerate_groups counter: %w", err)
	}

	reports, err := meter.Int64Counter("stanpulse_reports_written_total",
		metric.WithDescription("CSV report files written"))
	if err != nil {
		return nil, fmt.Errorf("create reports_written counter: %w", err)
	}

	return &PipelineMetrics{
		RowsRead:         rowsRead,
		RowsDropped:      rowsDropped,
		DegenerateGroups: degenerate,
		ReportsWritten:   reports,
	}, nil
}
