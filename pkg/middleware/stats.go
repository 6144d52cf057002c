package middleware

import (
	"context"
	"time"

	"github.com/hyp3rd/rtanalysis"
	"github.com/hyp3rd/rtanalysis/stats"
)

// StatsCollectorMiddleware is a middleware that records call counts and
// durations into a histogram-style stats collector.
// Must implement the rtanalysis.Service interface.
type StatsCollectorMiddleware struct {
	next           rtanalysis.Service
	statsCollector stats.StatsCollector
}

// NewStatsCollectorMiddleware returns a new StatsCollectorMiddleware.
func NewStatsCollectorMiddleware(next rtanalysis.Service, statsCollector stats.StatsCollector) rtanalysis.Service {
	return &StatsCollectorMiddleware{next: next, statsCollector: statsCollector}
}

// Fit records the count, duration, and outlier volume of the call.
func (mw *StatsCollectorMiddleware) Fit(ctx context.Context, responseTimes []float64, accuracy []bool) (rtanalysis.FitResult, error) {
	start := time.Now()

	result, err := mw.next.Fit(ctx, responseTimes, accuracy)

	mw.statsCollector.Timing(stats.StatFitDuration, time.Since(start).Nanoseconds())
	mw.statsCollector.Incr(stats.StatFitCount, 1)

	if err != nil {
		mw.statsCollector.Incr(stats.StatFitFailures, 1)
	} else {
		mw.statsCollector.Histogram(stats.StatOutliersExcluded, int64(result.OutliersExcluded))
	}

	return result, err
}

// FitTable records the count and duration of the call.
func (mw *StatsCollectorMiddleware) FitTable(ctx context.Context, table rtanalysis.TrialTable) (rtanalysis.FitResult, error) {
	return mw.Fit(ctx, table.ResponseTimes, table.Accuracy)
}

// Result forwards to the next middleware.
func (mw *StatsCollectorMiddleware) Result() (rtanalysis.FitResult, bool) {
	return mw.next.Result()
}

// GetStats forwards to the next middleware.
func (mw *StatsCollectorMiddleware) GetStats() stats.Stats {
	return mw.next.GetStats()
}
