// Package parser loads delimited text and spreadsheet files into datasets.
package parser

import (
	"strconv"
	"strings"
)

// missingMarkers are cell values read as missing rather than as text.
var missingMarkers = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// isMissing reports whether s is a missing-value marker.
func isMissing(s string) bool {
	_, ok := missingMarkers[s]
	return ok
}

// parseValue attempts to parse a string value as a number.
// Returns nil for missing markers, int64 for integers, float64 for
// decimals, or the original string.
func parseValue(s string) interface{} {
	if isMissing(s) {
		return nil
	}
	trimmed := strings.TrimSpace(s)
	// Try integer first
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
