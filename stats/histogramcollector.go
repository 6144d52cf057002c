package stats

import (
	"sort"
	"sync"
)

// StatsCollector is an interface for histogram-style collectors fed by the
// stats middleware. Implementations must be safe for concurrent use.
type StatsCollector interface {
	// Incr increments the count of a statistic by the given value.
	Incr(stat Stat, value int64)
	// Decr decrements the count of a statistic by the given value.
	Decr(stat Stat, value int64)
	// Timing records the time it took for an event to occur.
	Timing(stat Stat, value int64)
	// Gauge records the current value of a statistic.
	Gauge(stat Stat, value int64)
	// Histogram records the statistical distribution of a set of values.
	Histogram(stat Stat, value int64)
}

// HistogramStatsCollector is a stats collector that collects histogram stats.
type HistogramStatsCollector struct {
	mu    sync.RWMutex // mutex to protect concurrent access to the stats
	stats map[string][]int64
}

// NewHistogramStatsCollector creates a new histogram stats collector.
func NewHistogramStatsCollector() *HistogramStatsCollector {
	return &HistogramStatsCollector{
		stats: make(map[string][]int64),
	}
}

// Incr increments the count of a statistic by the given value.
func (c *HistogramStatsCollector) Incr(stat Stat, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats[stat.String()] = append(c.stats[stat.String()], value)
}

// Decr decrements the count of a statistic by the given value.
func (c *HistogramStatsCollector) Decr(stat Stat, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats[stat.String()] = append(c.stats[stat.String()], -value)
}

// Timing records the time it took for an event to occur.
func (c *HistogramStatsCollector) Timing(stat Stat, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats[stat.String()] = append(c.stats[stat.String()], value)
}

// Gauge records the current value of a statistic.
func (c *HistogramStatsCollector) Gauge(stat Stat, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats[stat.String()] = append(c.stats[stat.String()], value)
}

// Histogram records the statistical distribution of a set of values.
func (c *HistogramStatsCollector) Histogram(stat Stat, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats[stat.String()] = append(c.stats[stat.String()], value)
}

// Mean returns the mean value of a statistic.
func (c *HistogramStatsCollector) Mean(stat Stat) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	values := c.stats[stat.String()]
	if len(values) == 0 {
		return 0
	}

	var sum int64
	for _, value := range values {
		sum += value
	}

	return float64(sum) / float64(len(values))
}

// Median returns the median value of a statistic.
func (c *HistogramStatsCollector) Median(stat Stat) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	values := c.stats[stat.String()]
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int64, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return float64(sorted[mid-1]+sorted[mid]) / 2
	}

	return float64(sorted[mid])
}

// Percentile returns the pth percentile value of a statistic.
func (c *HistogramStatsCollector) Percentile(stat Stat, p float64) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	values := c.stats[stat.String()]
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int64, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	index := int(float64(len(sorted)) * p)
	if index >= len(sorted) {
		index = len(sorted) - 1
	}

	return float64(sorted[index])
}
