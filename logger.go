package rtanalysis

import (
	"fmt"
	"os"
)

// Logger describes a logging interface allowing to implement different external, or custom logger.
// Tested with logrus, and Uber's Zap (high-performance), but should work with any other logger that matches the interface.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

// StdLogger writes log lines to stdout and stderr. It is the default logger
// of the Analyzer, matching the verbose behavior of the fitting procedure.
type StdLogger struct{}

// NewStdLogger returns a logger writing to the standard streams.
func NewStdLogger() StdLogger {
	return StdLogger{}
}

// Infof writes an informational line to stdout.
func (StdLogger) Infof(format string, v ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", v...)
}

// Errorf writes an error line to stderr.
func (StdLogger) Errorf(format string, v ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", v...)
}

// NopLogger discards every line. Configure it with WithLogger for silent fits.
type NopLogger struct{}

// Infof implements Logger and discards the line.
func (NopLogger) Infof(string, ...any) {}

// Errorf implements Logger and discards the line.
func (NopLogger) Errorf(string, ...any) {}
