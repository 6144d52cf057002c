// Package stats contains collectors for fit statistics.
package stats

import "sync"

// Stats contains fit statistics.
type Stats struct {
	Fits             uint64 // number of successful fits
	Failures         uint64 // number of failed fits
	OutliersExcluded uint64 // number of trials excluded by outlier rejection
	TrialsAnalyzed   uint64 // number of trials analyzed across successful fits
}

// Collector is a struct for collecting fit statistics.
type Collector struct {
	mu    sync.RWMutex // mutex to protect concurrent access to the stats
	stats Stats        // fit statistics
}

// NewCollector creates a new stats collector.
func NewCollector() *Collector {
	return &Collector{
		stats: Stats{},
	}
}

// IncrementFits increments the number of successful fits.
func (c *Collector) IncrementFits() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Fits++
}

// IncrementFailures increments the number of failed fits.
func (c *Collector) IncrementFailures() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Failures++
}

// AddOutliersExcluded adds to the number of trials excluded by outlier rejection.
func (c *Collector) AddOutliersExcluded(n uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.OutliersExcluded += n
}

// AddTrialsAnalyzed adds to the number of trials analyzed.
func (c *Collector) AddTrialsAnalyzed(n uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.TrialsAnalyzed += n
}

// GetStats returns the fit statistics.
func (c *Collector) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}
