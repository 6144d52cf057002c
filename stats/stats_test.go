package stats

import "testing"

func TestCollector(t *testing.T) {
	collector := NewCollector()

	collector.IncrementFits()
	collector.IncrementFits()
	collector.IncrementFailures()
	collector.AddOutliersExcluded(3)
	collector.AddTrialsAnalyzed(200)

	got := collector.GetStats()
	if got.Fits != 2 {
		t.Errorf("expected 2 fits, got %d", got.Fits)
	}
	if got.Failures != 1 {
		t.Errorf("expected 1 failure, got %d", got.Failures)
	}
	if got.OutliersExcluded != 3 {
		t.Errorf("expected 3 excluded outliers, got %d", got.OutliersExcluded)
	}
	if got.TrialsAnalyzed != 200 {
		t.Errorf("expected 200 trials analyzed, got %d", got.TrialsAnalyzed)
	}
}

func TestHistogramStatsCollector(t *testing.T) {
	collector := NewHistogramStatsCollector()

	for _, value := range []int64{10, 20, 30, 40} {
		collector.Timing(StatFitDuration, value)
	}

	if got := collector.Mean(StatFitDuration); got != 25 {
		t.Errorf("expected mean 25, got %v", got)
	}
	if got := collector.Median(StatFitDuration); got != 25 {
		t.Errorf("expected median 25, got %v", got)
	}
	if got := collector.Percentile(StatFitDuration, 0.5); got != 30 {
		t.Errorf("expected 50th percentile 30, got %v", got)
	}
}

func TestHistogramStatsCollectorEmpty(t *testing.T) {
	collector := NewHistogramStatsCollector()

	if got := collector.Mean(StatFitCount); got != 0 {
		t.Errorf("expected 0 mean for an empty stat, got %v", got)
	}
	if got := collector.Median(StatFitCount); got != 0 {
		t.Errorf("expected 0 median for an empty stat, got %v", got)
	}
}
