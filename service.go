package rtanalysis

import (
	"context"

	"github.com/hyp3rd/rtanalysis/stats"
)

// Service is the service interface for the Analyzer.
// It enables middleware to be added to the service.
type Service interface {
	// Fit validates the trial data and computes the summary statistics
	Fit(ctx context.Context, responseTimes []float64, accuracy []bool) (FitResult, error)
	// FitTable runs Fit over the columns of a trial table
	FitTable(ctx context.Context, table TrialTable) (FitResult, error)
	// Result returns the result of the last successful fit
	Result() (FitResult, bool)
	// GetStats returns the statistics collected across fits
	GetStats() stats.Stats
}

// Middleware describes a service middleware.
type Middleware func(Service) Service

// ApplyMiddleware applies middlewares to a service.
func ApplyMiddleware(svc Service, mw ...Middleware) Service {
	// Apply each middleware in the chain
	for _, m := range mw {
		svc = m(svc)
	}
	// Return the decorated service
	return svc
}
