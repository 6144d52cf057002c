package rtanalysis

// Option is a function type that can be used to configure the `Analyzer` struct.
type Option func(*Analyzer)

// WithOutlierCutoffSD is an option that enables outlier rejection on response
// times. The cutoff is the sample standard deviation of all response times
// multiplied by `cutoffSD`; trials above it are excluded from the
// response-time mean. Values less than or equal to zero leave rejection
// disabled.
func WithOutlierCutoffSD(cutoffSD float64) Option {
	return func(analyzer *Analyzer) {
		if cutoffSD < 0 {
			cutoffSD = 0
		}

		analyzer.outlierCutoffSD = cutoffSD
	}
}

// WithLogger is an option that sets the logger receiving the progress and
// result lines. Use NopLogger to silence the analyzer.
func WithLogger(logger Logger) Option {
	return func(analyzer *Analyzer) {
		if logger == nil {
			return
		}

		analyzer.logger = logger
	}
}

// WithStatsCollector is an option that sets the stats collector field of the
// `Analyzer` struct. The stats collector is used to collect statistics about
// the fits performed by the analyzer.
func WithStatsCollector(statsCollector StatsCollector) Option {
	return func(analyzer *Analyzer) {
		if statsCollector == nil {
			return
		}

		analyzer.statsCollector = statsCollector
	}
}
