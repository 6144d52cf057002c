package rtanalysis

import "gonum.org/v1/gonum/stat"

// sample is a numeric sequence with a parallel validity mask. Masked slots
// keep their position but carry zero weight in every aggregate, so positional
// correspondence with the accuracy sequence is never lost.
type sample struct {
	values  []float64
	weights []float64 // 1 for valid slots, 0 for masked slots
}

// newSample copies the values and marks every slot valid.
func newSample(values []float64) sample {
	copied := make([]float64, len(values))
	copy(copied, values)

	weights := make([]float64, len(values))
	for i := range weights {
		weights[i] = 1
	}

	return sample{values: copied, weights: weights}
}

// mask marks slot i as missing for aggregation purposes.
func (s sample) mask(i int) {
	s.weights[i] = 0
}

// mean returns the weighted mean over valid slots. NaN when every slot is masked.
func (s sample) mean() float64 {
	return stat.Mean(s.values, s.weights)
}

// min returns the smallest value among valid slots.
// The boolean is false when every slot is masked.
func (s sample) min() (float64, bool) {
	found := false

	var minValue float64

	for i, value := range s.values {
		if s.weights[i] == 0 {
			continue
		}

		if !found || value < minValue {
			minValue = value
			found = true
		}
	}

	return minValue, found
}
