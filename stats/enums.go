package stats

// Stat is a type that represents the named statistic values that can be
// collected by a histogram stats collector.
type Stat string

const (
	// StatFitCount counts Fit invocations through the stats middleware.
	StatFitCount Stat = "rtanalysis_fit_count"
	// StatFitDuration records the duration of Fit invocations in nanoseconds.
	StatFitDuration Stat = "rtanalysis_fit_duration"
	// StatFitFailures counts failed Fit invocations.
	StatFitFailures Stat = "rtanalysis_fit_failures"
	// StatOutliersExcluded records the per-fit count of excluded outlier trials.
	StatOutliersExcluded Stat = "rtanalysis_outliers_excluded"
)

// String returns the string representation of a Stat.
func (s Stat) String() string {
	return string(s)
}
