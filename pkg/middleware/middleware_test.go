package middleware

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hyp3rd/rtanalysis"
	rterrors "github.com/hyp3rd/rtanalysis/errors"
	"github.com/hyp3rd/rtanalysis/stats"
)

type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Infof(format string, v ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Errorf(format string, v ...any) {
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

func TestLoggingMiddlewarePassThrough(t *testing.T) {
	logger := &recordingLogger{}
	analyzer := rtanalysis.New(rtanalysis.WithLogger(rtanalysis.NopLogger{}))
	svc := NewLoggingMiddleware(analyzer, logger)

	result, err := svc.Fit(context.TODO(), []float64{1, 2}, []bool{true, true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MeanResponseTime != 1.5 {
		t.Errorf("expected mean RT 1.5, got %v", result.MeanResponseTime)
	}
	if len(logger.infos) == 0 {
		t.Error("expected the middleware to log the invocation")
	}

	stored, ok := svc.Result()
	if !ok || stored != result {
		t.Errorf("expected the stored result to pass through, got %+v (ok=%v)", stored, ok)
	}
}

func TestLoggingMiddlewareForwardsErrors(t *testing.T) {
	logger := &recordingLogger{}
	analyzer := rtanalysis.New(rtanalysis.WithLogger(rtanalysis.NopLogger{}))
	svc := NewLoggingMiddleware(analyzer, logger)

	_, err := svc.Fit(context.TODO(), []float64{1, 2}, []bool{true})
	if !errors.Is(err, rterrors.ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch to propagate, got %v", err)
	}
	if len(logger.errors) == 0 {
		t.Error("expected the middleware to log the failure")
	}
}

func TestStatsCollectorMiddleware(t *testing.T) {
	collector := stats.NewHistogramStatsCollector()
	analyzer := rtanalysis.New(rtanalysis.WithLogger(rtanalysis.NopLogger{}))
	svc := NewStatsCollectorMiddleware(analyzer, collector)

	if _, err := svc.Fit(context.TODO(), []float64{1, 2}, []bool{true, true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Fit(context.TODO(), []float64{1, 2}, []bool{true}); err == nil {
		t.Fatal("expected the mismatched fit to fail")
	}

	if got := collector.Mean(stats.StatFitCount); got != 1 {
		t.Errorf("expected every call counted once, got mean %v", got)
	}
	if got := collector.Mean(stats.StatFitFailures); got != 1 {
		t.Errorf("expected one failure recorded, got mean %v", got)
	}
}

func TestApplyMiddlewareChain(t *testing.T) {
	logger := &recordingLogger{}
	collector := stats.NewHistogramStatsCollector()
	analyzer := rtanalysis.New(rtanalysis.WithLogger(rtanalysis.NopLogger{}))

	svc := rtanalysis.ApplyMiddleware(analyzer,
		func(next rtanalysis.Service) rtanalysis.Service {
			return NewStatsCollectorMiddleware(next, collector)
		},
		func(next rtanalysis.Service) rtanalysis.Service {
			return NewLoggingMiddleware(next, logger)
		},
	)

	table := rtanalysis.TrialTable{
		ResponseTimes: []float64{2, 2, 2},
		Accuracy:      []bool{true, false, true},
	}

	result, err := svc.FitTable(context.TODO(), table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MeanResponseTime != 2 {
		t.Errorf("expected mean RT 2, got %v", result.MeanResponseTime)
	}
	if len(logger.infos) == 0 {
		t.Error("expected the logging layer to observe the call")
	}
	if got := collector.Mean(stats.StatFitCount); got != 1 {
		t.Errorf("expected the stats layer to observe the call, got mean %v", got)
	}
}
