// Package logging provides structured logging for adventcode.
//
// This package wraps a zap logger with convenience functions used
// throughout the runner. By default logging is silent so that puzzle
// answers and the interactive UI are the only output; set the
// ADVENTCODE_LOG_LEVEL environment variable to "debug", "info",
// "warn" or "error" to see what the scanner, input resolver and
// dispatcher are doing.
//
// All output goes to stderr so that piped puzzle answers stay clean:
//
//	ADVENTCODE_LOG_LEVEL=debug adventcode --day 3 < day3.txt
package logging
