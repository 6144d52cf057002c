// Package attrs provides reusable OpenTelemetry attribute key constants
// to avoid duplication across middlewares.
package attrs

const (
	// AttrTrialCount is the telemetry attribute key for the number of trials
	// in the fitted table.
	AttrTrialCount = "trials.count"
	// AttrOutliersExcluded is the telemetry attribute key for the number of
	// trials excluded by outlier rejection in a fit.
	AttrOutliersExcluded = "outliers.excluded"
	// AttrFailed is the telemetry attribute key flagging a failed fit.
	AttrFailed = "failed"
	// AttrMeanAccuracy is the telemetry attribute key for the mean accuracy
	// of a successful fit.
	AttrMeanAccuracy = "mean.accuracy"
)
