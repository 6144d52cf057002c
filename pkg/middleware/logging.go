// Package middleware contains service middlewares for rtanalysis.
package middleware

import (
	"context"
	"time"

	"github.com/hyp3rd/rtanalysis"
	"github.com/hyp3rd/rtanalysis/stats"
)

// LoggingMiddleware is a middleware that logs the invocation and duration of
// each service method. Must implement the rtanalysis.Service interface.
type LoggingMiddleware struct {
	next   rtanalysis.Service
	logger rtanalysis.Logger
}

// NewLoggingMiddleware returns a new LoggingMiddleware.
func NewLoggingMiddleware(next rtanalysis.Service, logger rtanalysis.Logger) rtanalysis.Service {
	return &LoggingMiddleware{next: next, logger: logger}
}

// Fit logs the time it takes to execute the next middleware.
func (mw *LoggingMiddleware) Fit(ctx context.Context, responseTimes []float64, accuracy []bool) (rtanalysis.FitResult, error) {
	defer func(begin time.Time) {
		mw.logger.Infof("method Fit took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Infof("Fit method called with %d trials", len(responseTimes))

	result, err := mw.next.Fit(ctx, responseTimes, accuracy)
	if err != nil {
		mw.logger.Errorf("Fit failed: %v", err)
	}

	return result, err
}

// FitTable logs the time it takes to execute the next middleware.
func (mw *LoggingMiddleware) FitTable(ctx context.Context, table rtanalysis.TrialTable) (rtanalysis.FitResult, error) {
	defer func(begin time.Time) {
		mw.logger.Infof("method FitTable took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Infof("FitTable method called with %d trials", table.Len())

	result, err := mw.next.FitTable(ctx, table)
	if err != nil {
		mw.logger.Errorf("FitTable failed: %v", err)
	}

	return result, err
}

// Result forwards to the next middleware.
func (mw *LoggingMiddleware) Result() (rtanalysis.FitResult, bool) {
	return mw.next.Result()
}

// GetStats forwards to the next middleware.
func (mw *LoggingMiddleware) GetStats() stats.Stats {
	return mw.next.GetStats()
}
