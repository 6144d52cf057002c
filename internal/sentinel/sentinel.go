// Package sentinel provides standardized error definitions for the rtanalysis
// infrastructure components: the serializer registry and the stats collector
// registry. Domain validation errors live in the public errors package.
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")

	// ErrSerializerNotFound is returned when a serializer is not found.
	ErrSerializerNotFound = ewrap.New("serializer not found")

	// ErrStatsCollectorNotFound is returned when a stats collector is not found.
	ErrStatsCollectorNotFound = ewrap.New("stats collector not found")

	// ErrNilService is returned when a nil service is passed to a middleware.
	ErrNilService = ewrap.New("nil service")
)
