package tests

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/longbridgeapp/assert"
	"golang.org/x/exp/rand"

	"github.com/hyp3rd/rtanalysis"
	rterrors "github.com/hyp3rd/rtanalysis/errors"
	"github.com/hyp3rd/rtanalysis/internal/libs/serializer"
	"github.com/hyp3rd/rtanalysis/synth"
)

func TestFit_SynthesizedTable(t *testing.T) {
	table := synth.Generate(2.1, 0.9, 0.8, synth.WithSource(rand.NewSource(1)))
	analyzer := rtanalysis.New(rtanalysis.WithLogger(rtanalysis.NopLogger{}))

	result, err := analyzer.FitTable(context.TODO(), table)
	assert.Nil(t, err)

	assert.True(t, math.Abs(result.MeanResponseTime-2.1) < 1e-6,
		"mean RT %v should match the synthesis target 2.1", result.MeanResponseTime)
	assert.True(t, math.Abs(result.MeanAccuracy-0.8) < 0.05,
		"mean accuracy %v should match the synthesis target 0.8", result.MeanAccuracy)

	stored, ok := analyzer.Result()
	assert.True(t, ok)
	assert.Equal(t, result, stored)
}

func TestFit_TruncatedAccuracy(t *testing.T) {
	table := synth.Generate(2, 1, 0.8, synth.WithSource(rand.NewSource(2)))
	analyzer := rtanalysis.New(rtanalysis.WithLogger(rtanalysis.NopLogger{}))

	// Omit the first accuracy value.
	_, err := analyzer.Fit(context.TODO(), table.ResponseTimes, table.Accuracy[1:])
	assert.True(t, errors.Is(err, rterrors.ErrLengthMismatch), "expected %v, got %v", rterrors.ErrLengthMismatch, err)
}

func TestFit_ZeroAccuracyTable(t *testing.T) {
	table := synth.Generate(1.5, 1.0, 0.0, synth.WithSource(rand.NewSource(3)))
	analyzer := rtanalysis.New(rtanalysis.WithLogger(rtanalysis.NopLogger{}))

	_, err := analyzer.FitTable(context.TODO(), table)
	assert.True(t, errors.Is(err, rterrors.ErrZeroAccuracy), "expected %v, got %v", rterrors.ErrZeroAccuracy, err)
}

func TestFit_ParameterLevels(t *testing.T) {
	tests := []struct {
		name         string
		meanRT       float64
		sdRT         float64
		meanAccuracy float64
		expectedErr  error
	}{
		{
			name:         "typical latencies in seconds",
			meanRT:       1.5,
			sdRT:         0.5,
			meanAccuracy: 0.9,
		},
		{
			name:         "latencies in milliseconds",
			meanRT:       1500,
			sdRT:         500,
			meanAccuracy: 0.9,
		},
		{
			name:         "zero accuracy",
			meanRT:       1.5,
			sdRT:         1.0,
			meanAccuracy: 0,
			expectedErr:  rterrors.ErrZeroAccuracy,
		},
	}

	for i, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			table := synth.Generate(test.meanRT, test.sdRT, test.meanAccuracy,
				synth.WithSource(rand.NewSource(uint64(10+i))))
			analyzer := rtanalysis.New(rtanalysis.WithLogger(rtanalysis.NopLogger{}))

			result, err := analyzer.FitTable(context.TODO(), table)
			if test.expectedErr != nil {
				assert.True(t, errors.Is(err, test.expectedErr), "expected %v, got %v", test.expectedErr, err)

				return
			}

			assert.Nil(t, err)
			assert.True(t, math.Abs(result.MeanResponseTime-test.meanRT) < 1e-6*test.meanRT+1e-6,
				"mean RT %v should match the target %v", result.MeanResponseTime, test.meanRT)
			assert.True(t, math.Abs(result.MeanAccuracy-test.meanAccuracy) < 0.05,
				"mean accuracy %v should match the target %v", result.MeanAccuracy, test.meanAccuracy)
		})
	}
}

func TestFit_SerializedFixtureRoundTrip(t *testing.T) {
	table := synth.Generate(2.1, 0.9, 0.8, synth.WithSource(rand.NewSource(4)))

	for _, name := range []string{"default", "msgpack", "cbor"} {
		t.Run(name, func(t *testing.T) {
			codec, err := serializer.New(name)
			assert.Nil(t, err)

			data, err := codec.Marshal(table)
			assert.Nil(t, err)

			var decoded rtanalysis.TrialTable
			assert.Nil(t, codec.Unmarshal(data, &decoded))
			assert.Equal(t, table.Len(), decoded.Len())

			analyzer := rtanalysis.New(rtanalysis.WithLogger(rtanalysis.NopLogger{}))

			result, err := analyzer.FitTable(context.TODO(), decoded)
			assert.Nil(t, err)
			assert.True(t, math.Abs(result.MeanResponseTime-2.1) < 1e-6,
				"mean RT %v should survive the %s round trip", result.MeanResponseTime, name)
		})
	}
}

func TestFit_OutlierCutoffOnSynthesizedTable(t *testing.T) {
	table := synth.Generate(2.1, 0.9, 0.8,
		synth.WithSource(rand.NewSource(5)), synth.WithTrialCount(200))

	loose := rtanalysis.New(rtanalysis.WithLogger(rtanalysis.NopLogger{}), rtanalysis.WithOutlierCutoffSD(4))
	tight := rtanalysis.New(rtanalysis.WithLogger(rtanalysis.NopLogger{}), rtanalysis.WithOutlierCutoffSD(1))

	looseResult, err := loose.FitTable(context.TODO(), table)
	assert.Nil(t, err)

	tightResult, err := tight.FitTable(context.TODO(), table)
	assert.Nil(t, err)

	assert.True(t, looseResult.OutliersExcluded <= tightResult.OutliersExcluded,
		"loosening the cutoff excluded more trials: %d > %d",
		looseResult.OutliersExcluded, tightResult.OutliersExcluded)
}
