// Package synth generates synthetic trial tables with statistically
// controlled properties, for exercising the analyzer.
package synth

import (
	"sort"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hyp3rd/rtanalysis"
)

// defaultTrialCount is the number of trials generated when WithTrialCount is not provided.
const defaultTrialCount = 100

type config struct {
	trialCount int
	src        rand.Source
}

// Option is a function type that can be used to configure a generation run.
type Option func(*config)

// WithTrialCount sets the number of trials to generate.
func WithTrialCount(n int) Option {
	return func(cfg *config) {
		cfg.trialCount = n
	}
}

// WithSource sets the random source consumed by the distribution draws.
// Generation is not seeded internally; pass a seeded source for
// deterministic tables.
func WithSource(src rand.Source) Option {
	return func(cfg *config) {
		cfg.src = src
	}
}

// Generate produces a trial table whose correct-trial response times have the
// prescribed mean and standard deviation, and whose accuracy proportion
// matches the prescribed target.
//
// Raw latencies are drawn from a Weibull distribution with shape 2, shifted so
// the minimum support is 1: right-skewed and strictly positive regardless of
// the targets. Correctness is assigned by thresholding independent uniform
// draws at the empirical quantile matching meanAccuracy, keeping per-trial
// correctness independent of response time. Only the correct-trial response
// times are then rescaled to the targets; incorrect trials keep their raw
// draw, which carries no meaning for consumers.
//
// Degenerate inputs (zero trials, zero sdRT) produce NaN statistics rather
// than errors; this is a test-fixture generator, not a validated production
// path.
func Generate(meanRT, sdRT, meanAccuracy float64, options ...Option) rtanalysis.TrialTable {
	cfg := config{trialCount: defaultTrialCount}
	for _, option := range options {
		option(&cfg)
	}

	if cfg.src == nil {
		cfg.src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	weibull := distuv.Weibull{K: 2, Lambda: 1, Src: cfg.src}

	responseTimes := make([]float64, cfg.trialCount)
	for i := range responseTimes {
		responseTimes[i] = weibull.Rand() + 1
	}

	uniform := distuv.Uniform{Min: 0, Max: 1, Src: cfg.src}

	draws := make([]float64, cfg.trialCount)
	for i := range draws {
		draws[i] = uniform.Rand()
	}

	sorted := make([]float64, len(draws))
	copy(sorted, draws)
	sort.Float64s(sorted)

	threshold := stat.Quantile(meanAccuracy, stat.LinInterp, sorted, nil)

	accuracy := make([]bool, cfg.trialCount)
	for i, draw := range draws {
		accuracy[i] = draw < threshold
	}

	return rtanalysis.TrialTable{
		ResponseTimes: scaleMasked(responseTimes, accuracy, meanRT, sdRT),
		Accuracy:      accuracy,
	}
}

// Scale forces the empirical mean and population standard deviation of the
// values to the given targets with a linear scale-and-shift transform. The
// transform is pure, stateless, and order-preserving.
func Scale(values []float64, targetMean, targetSD float64) []float64 {
	include := make([]bool, len(values))
	for i := range include {
		include[i] = true
	}

	return scaleMasked(values, include, targetMean, targetSD)
}

// scaleMasked applies the scale-and-shift transform to the included slots
// only. Excluded slots do not contribute to the moments and keep their
// original value at their original position.
func scaleMasked(values []float64, include []bool, targetMean, targetSD float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	var selected []float64

	for i, ok := range include {
		if ok {
			selected = append(selected, values[i])
		}
	}

	if len(selected) == 0 {
		return out
	}

	ratio := targetSD / stat.PopStdDev(selected, nil)
	for i := range selected {
		selected[i] *= ratio
	}

	shift := targetMean - stat.Mean(selected, nil)
	for i := range selected {
		selected[i] += shift
	}

	next := 0

	for i, ok := range include {
		if ok {
			out[i] = selected[next]
			next++
		}
	}

	return out
}
