package rtanalysis

// FitResult is the immutable summary produced by a successful Fit call.
type FitResult struct {
	// MeanResponseTime is the mean response time across correct, non-outlier
	// trials. NaN when the outlier cutoff excluded every correct trial.
	MeanResponseTime float64
	// MeanAccuracy is the proportion of correct trials, in [0, 1], computed
	// over all trials regardless of outlier rejection.
	MeanAccuracy float64
	// OutliersExcluded is the number of trials masked by outlier rejection.
	OutliersExcluded int
	// Trials is the number of trials in the fitted table.
	Trials int
}
