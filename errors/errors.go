// Package errors defines the public error taxonomy of rtanalysis.
// Every error is a local input-validation failure: it aborts the current fit
// entirely, commits no partial state, and is never retried internally. The
// caller decides whether to retry with corrected input.
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities; match them with errors.Is.
package errors

import "github.com/hyp3rd/ewrap"

var (
	// ErrLengthMismatch is returned when the response-time and accuracy
	// sequences differ in length.
	ErrLengthMismatch = ewrap.New("response times and accuracy must be the same length")

	// ErrInvalidAccuracy is returned when an accuracy value is outside the
	// boolean domain. The domain is strict: 0/1-like values are rejected.
	ErrInvalidAccuracy = ewrap.New("accuracy contains a non-boolean value")

	// ErrZeroAccuracy is returned when no correct trials are present; the
	// response-time mean would be undefined.
	ErrZeroAccuracy = ewrap.New("accuracy is zero")

	// ErrNegativeRT is returned when a non-excluded response time is not
	// strictly positive. A time of exactly zero is not physically meaningful.
	ErrNegativeRT = ewrap.New("non-positive response times found")

	// ErrInvalidResponseTime is returned when a response-time value is not
	// numeric.
	ErrInvalidResponseTime = ewrap.New("response time is not numeric")
)
