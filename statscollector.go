package rtanalysis

import (
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/rtanalysis/internal/sentinel"
	"github.com/hyp3rd/rtanalysis/stats"
)

// StatsCollector is an interface that defines the methods that a stats collector should implement.
// It is used by the Analyzer struct to allow users to collect fit statistics using their own implementation.
type StatsCollector interface {
	// IncrementFits increments the number of successful fits.
	IncrementFits()
	// IncrementFailures increments the number of failed fits.
	IncrementFailures()
	// AddOutliersExcluded adds to the number of trials excluded by outlier rejection.
	AddOutliersExcluded(n uint64)
	// AddTrialsAnalyzed adds to the number of trials analyzed.
	AddTrialsAnalyzed(n uint64)
	// GetStats returns the collected statistics.
	GetStats() stats.Stats
}

// StatsCollectorRegistry holds the a registry of stats collectors.
var StatsCollectorRegistry = make(map[string]func() (StatsCollector, error))

// NewStatsCollector creates a new stats collector.
// The statsCollectorName parameter is used to select the stats collector from the registry.
func NewStatsCollector(statsCollectorName string) (StatsCollector, error) {
	if statsCollectorName == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "statsCollectorName")
	}

	createFunc, ok := StatsCollectorRegistry[statsCollectorName]
	if !ok {
		return nil, ewrap.Wrap(sentinel.ErrStatsCollectorNotFound, statsCollectorName)
	}

	return createFunc()
}

// RegisterStatsCollector registers a new stats collector with the given name.
func RegisterStatsCollector(name string, createFunc func() (StatsCollector, error)) {
	StatsCollectorRegistry[name] = createFunc
}

func init() {
	// Register the default stats collector.
	RegisterStatsCollector("default", func() (StatsCollector, error) {
		return stats.NewCollector(), nil
	})
}
