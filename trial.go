package rtanalysis

import (
	"fmt"

	"github.com/hyp3rd/ewrap"

	rterrors "github.com/hyp3rd/rtanalysis/errors"
)

// TrialTable holds per-trial behavioral data as two parallel sequences with
// positional correspondence: trial i's accuracy applies to trial i's response
// time. The response time of an incorrect trial is recorded but semantically
// meaningless. The table is read-only to the analyzer.
type TrialTable struct {
	ResponseTimes []float64 `codec:"rt"       json:"rt"       msgpack:"rt"`
	Accuracy      []bool    `codec:"accuracy" json:"accuracy" msgpack:"accuracy"`
}

// Len returns the number of trials in the table.
func (t TrialTable) Len() int {
	return len(t.ResponseTimes)
}

// NewTrialTable builds a table from typed columns, rejecting mismatched lengths.
func NewTrialTable(responseTimes []float64, accuracy []bool) (TrialTable, error) {
	if len(responseTimes) != len(accuracy) {
		return TrialTable{}, ewrap.Wrap(
			rterrors.ErrLengthMismatch,
			fmt.Sprintf("%d response times, %d accuracy values", len(responseTimes), len(accuracy)),
		)
	}

	return TrialTable{ResponseTimes: responseTimes, Accuracy: accuracy}, nil
}

// TableFromRecords normalizes loosely typed columns, as produced by generic
// decoding, into a typed trial table. The internal pipeline stays strictly
// typed; this adapter is the only place where domain coercion happens.
func TableFromRecords(responseTimes, accuracy []any) (TrialTable, error) {
	rts, err := CoerceResponseTimes(responseTimes)
	if err != nil {
		return TrialTable{}, err
	}

	accs, err := CoerceAccuracy(accuracy)
	if err != nil {
		return TrialTable{}, err
	}

	return NewTrialTable(rts, accs)
}

// CoerceAccuracy converts a loosely typed accuracy column into booleans.
// The domain is strict: only boolean values are accepted, 0/1-like values are
// rejected with ErrInvalidAccuracy.
func CoerceAccuracy(values []any) ([]bool, error) {
	out := make([]bool, len(values))

	for i, value := range values {
		ok, isBool := value.(bool)
		if !isBool {
			return nil, ewrap.Wrap(
				rterrors.ErrInvalidAccuracy,
				fmt.Sprintf("index %d holds %T", i, value),
			)
		}

		out[i] = ok
	}

	return out, nil
}

// CoerceResponseTimes converts a loosely typed response-time column into
// floats. Numeric values are accepted regardless of width; anything else is
// rejected with ErrInvalidResponseTime.
func CoerceResponseTimes(values []any) ([]float64, error) {
	out := make([]float64, len(values))

	for i, value := range values {
		switch v := value.(type) {
		case float64:
			out[i] = v
		case float32:
			out[i] = float64(v)
		case int:
			out[i] = float64(v)
		case int64:
			out[i] = float64(v)
		case uint64:
			out[i] = float64(v)
		default:
			return nil, ewrap.Wrap(
				rterrors.ErrInvalidResponseTime,
				fmt.Sprintf("index %d holds %T", i, value),
			)
		}
	}

	return out, nil
}
