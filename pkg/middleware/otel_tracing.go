package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyp3rd/rtanalysis"
	"github.com/hyp3rd/rtanalysis/internal/telemetry/attrs"
	"github.com/hyp3rd/rtanalysis/stats"
)

// OTelTracingMiddleware wraps rtanalysis.Service methods with OpenTelemetry spans.
type OTelTracingMiddleware struct {
	next   rtanalysis.Service
	tracer trace.Tracer
	// static attributes applied to all spans
	commonAttrs []attribute.KeyValue
}

// OTelTracingOption allows configuring the tracing middleware.
type OTelTracingOption func(*OTelTracingMiddleware)

// WithCommonAttributes sets attributes applied to all spans.
func WithCommonAttributes(attributes ...attribute.KeyValue) OTelTracingOption {
	return func(m *OTelTracingMiddleware) { m.commonAttrs = append(m.commonAttrs, attributes...) }
}

// NewOTelTracingMiddleware creates a tracing middleware.
func NewOTelTracingMiddleware(next rtanalysis.Service, tracer trace.Tracer, opts ...OTelTracingOption) rtanalysis.Service {
	mw := &OTelTracingMiddleware{next: next, tracer: tracer}
	for _, o := range opts {
		o(mw)
	}

	return mw
}

// Fit implements Service.Fit with tracing.
func (mw *OTelTracingMiddleware) Fit(ctx context.Context, responseTimes []float64, accuracy []bool) (rtanalysis.FitResult, error) {
	ctx, span := mw.startSpan(ctx, "rtanalysis.Fit", attribute.Int(attrs.AttrTrialCount, len(responseTimes)))
	defer span.End()

	result, err := mw.next.Fit(ctx, responseTimes, accuracy)
	mw.endSpan(span, result, err)

	return result, err
}

// FitTable implements Service.FitTable with tracing.
func (mw *OTelTracingMiddleware) FitTable(ctx context.Context, table rtanalysis.TrialTable) (rtanalysis.FitResult, error) {
	ctx, span := mw.startSpan(ctx, "rtanalysis.FitTable", attribute.Int(attrs.AttrTrialCount, table.Len()))
	defer span.End()

	result, err := mw.next.FitTable(ctx, table)
	mw.endSpan(span, result, err)

	return result, err
}

// Result implements Service.Result.
func (mw *OTelTracingMiddleware) Result() (rtanalysis.FitResult, bool) {
	return mw.next.Result()
}

// GetStats implements Service.GetStats.
func (mw *OTelTracingMiddleware) GetStats() stats.Stats {
	return mw.next.GetStats()
}

func (mw *OTelTracingMiddleware) startSpan(ctx context.Context, name string, kv ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := mw.tracer.Start(ctx, name)
	span.SetAttributes(mw.commonAttrs...)
	span.SetAttributes(kv...)

	return ctx, span
}

func (mw *OTelTracingMiddleware) endSpan(span trace.Span, result rtanalysis.FitResult, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return
	}

	span.SetAttributes(
		attribute.Int(attrs.AttrOutliersExcluded, result.OutliersExcluded),
		attribute.Float64(attrs.AttrMeanAccuracy, result.MeanAccuracy))
}
