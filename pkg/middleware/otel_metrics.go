package middleware

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hyp3rd/rtanalysis"
	"github.com/hyp3rd/rtanalysis/internal/telemetry/attrs"
	"github.com/hyp3rd/rtanalysis/stats"
)

// OTelMetricsMiddleware emits OpenTelemetry metrics for service methods.
type OTelMetricsMiddleware struct {
	next  rtanalysis.Service
	meter metric.Meter

	// instruments
	fits      metric.Int64Counter
	durations metric.Float64Histogram
}

// NewOTelMetricsMiddleware constructs a metrics middleware using the provided meter.
func NewOTelMetricsMiddleware(next rtanalysis.Service, meter metric.Meter) (rtanalysis.Service, error) {
	fits, err := meter.Int64Counter("rtanalysis.fits")
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	durations, err := meter.Float64Histogram("rtanalysis.fit.duration.ms")
	if err != nil {
		return nil, fmt.Errorf("create histogram: %w", err)
	}

	return &OTelMetricsMiddleware{next: next, meter: meter, fits: fits, durations: durations}, nil
}

// Fit implements Service.Fit with metrics.
func (mw *OTelMetricsMiddleware) Fit(ctx context.Context, responseTimes []float64, accuracy []bool) (rtanalysis.FitResult, error) {
	start := time.Now()
	result, err := mw.next.Fit(ctx, responseTimes, accuracy)
	mw.rec(ctx, start,
		attribute.Int(attrs.AttrTrialCount, len(responseTimes)),
		attribute.Int(attrs.AttrOutliersExcluded, result.OutliersExcluded),
		attribute.Bool(attrs.AttrFailed, err != nil))

	return result, err
}

// FitTable implements Service.FitTable with metrics.
func (mw *OTelMetricsMiddleware) FitTable(ctx context.Context, table rtanalysis.TrialTable) (rtanalysis.FitResult, error) {
	start := time.Now()
	result, err := mw.next.FitTable(ctx, table)
	mw.rec(ctx, start,
		attribute.Int(attrs.AttrTrialCount, table.Len()),
		attribute.Int(attrs.AttrOutliersExcluded, result.OutliersExcluded),
		attribute.Bool(attrs.AttrFailed, err != nil))

	return result, err
}

// Result implements Service.Result.
func (mw *OTelMetricsMiddleware) Result() (rtanalysis.FitResult, bool) {
	return mw.next.Result()
}

// GetStats implements Service.GetStats.
func (mw *OTelMetricsMiddleware) GetStats() stats.Stats {
	return mw.next.GetStats()
}

func (mw *OTelMetricsMiddleware) rec(ctx context.Context, start time.Time, kv ...attribute.KeyValue) {
	opts := metric.WithAttributes(kv...)
	mw.fits.Add(ctx, 1, opts)
	mw.durations.Record(ctx, float64(time.Since(start).Microseconds())/1000.0, opts)
}
