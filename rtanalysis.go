// Copyright 2023 F. All rights reserved.
// Use of this source code is governed by a Mozilla Public License 2.0
// license that can be found in the LICENSE file.
// RTAnalysis computes summary statistics from per-trial behavioral data: the mean
// response time across correct trials and the mean accuracy, with optional
// rejection of long response-time outliers.
package rtanalysis

import (
	"context"
	"fmt"

	"github.com/hyp3rd/ewrap"
	"gonum.org/v1/gonum/stat"

	rterrors "github.com/hyp3rd/rtanalysis/errors"
	"github.com/hyp3rd/rtanalysis/stats"
)

// Analyzer validates a trial table and derives its summary statistics.
// Construction sets the configuration; each Fit call runs the full
// validate, reject-outliers, aggregate pipeline and, on success, replaces
// the stored result. A failed call leaves any prior result untouched.
//
// The stored result is the only mutable state across calls and is not
// synchronized: callers using one instance from multiple goroutines must
// serialize Fit calls, or use one Analyzer per logical fit.
type Analyzer struct {
	outlierCutoffSD float64        // multiple of the sample SD above which a response time is excluded; 0 disables rejection
	logger          Logger         // receives the progress and result lines
	statsCollector  StatsCollector // collects fit statistics
	result          *FitResult     // result of the last successful Fit, nil before the first
}

// New creates an Analyzer with the given options applied.
// Outlier rejection is disabled unless WithOutlierCutoffSD is provided.
func New(options ...Option) *Analyzer {
	analyzer := &Analyzer{
		logger:         NewStdLogger(),
		statsCollector: stats.NewCollector(),
	}

	for _, option := range options {
		option(analyzer)
	}

	return analyzer
}

// Fit validates the response-time and accuracy sequences and computes the mean
// response time over correct, non-outlier trials and the mean accuracy over
// all trials. The returned FitResult is also stored as the analyzer's current
// result. Validation order is fixed so error precedence is deterministic:
// length, outlier rejection, zero accuracy, response-time positivity.
//
// The context is accepted for interface and middleware symmetry; the pipeline
// has no suspension points and does not observe cancellation.
func (a *Analyzer) Fit(ctx context.Context, responseTimes []float64, accuracy []bool) (FitResult, error) {
	_ = ctx

	if len(responseTimes) != len(accuracy) {
		return a.fail(ewrap.Wrap(
			rterrors.ErrLengthMismatch,
			fmt.Sprintf("%d response times, %d accuracy values", len(responseTimes), len(accuracy)),
		))
	}

	responses := newSample(responseTimes)

	excluded := 0
	if a.outlierCutoffSD > 0 {
		cutoff := stat.StdDev(responses.values, nil) * a.outlierCutoffSD
		for i, value := range responses.values {
			if value > cutoff {
				responses.mask(i)
				excluded++
			}
		}

		a.logger.Infof("outlier rejection excluded %d trials", excluded)
	}

	correct := 0
	for _, ok := range accuracy {
		if ok {
			correct++
		}
	}

	meanAccuracy := float64(correct) / float64(len(accuracy))
	if !(meanAccuracy > 0) {
		return a.fail(ewrap.Wrap(rterrors.ErrZeroAccuracy, "no correct trials"))
	}

	// Incorrect trials never contribute to the response-time mean.
	for i, ok := range accuracy {
		if !ok {
			responses.mask(i)
		}
	}

	if minRT, ok := responses.min(); ok && minRT <= 0 {
		return a.fail(ewrap.Wrap(rterrors.ErrNegativeRT, fmt.Sprintf("minimum response time %v", minRT)))
	}

	// NaN when the outlier cutoff masked every correct trial.
	meanRT := responses.mean()

	a.logger.Infof("mean RT: %v", meanRT)
	a.logger.Infof("mean accuracy: %v", meanAccuracy)

	result := FitResult{
		MeanResponseTime: meanRT,
		MeanAccuracy:     meanAccuracy,
		OutliersExcluded: excluded,
		Trials:           len(responseTimes),
	}
	a.result = &result

	a.statsCollector.IncrementFits()
	a.statsCollector.AddTrialsAnalyzed(uint64(len(responseTimes)))
	a.statsCollector.AddOutliersExcluded(uint64(excluded))

	return result, nil
}

// FitTable runs Fit over the columns of a trial table.
func (a *Analyzer) FitTable(ctx context.Context, table TrialTable) (FitResult, error) {
	return a.Fit(ctx, table.ResponseTimes, table.Accuracy)
}

// Result returns the result of the last successful Fit call.
// The boolean is false before the first successful fit.
func (a *Analyzer) Result() (FitResult, bool) {
	if a.result == nil {
		return FitResult{}, false
	}

	return *a.result, true
}

// GetStats returns the statistics collected across Fit calls.
func (a *Analyzer) GetStats() stats.Stats {
	return a.statsCollector.GetStats()
}

// fail records and reports a validation failure without touching the stored result.
func (a *Analyzer) fail(err error) (FitResult, error) {
	a.statsCollector.IncrementFailures()
	a.logger.Errorf("fit failed: %v", err)

	return FitResult{}, err
}
