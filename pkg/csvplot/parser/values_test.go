package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{" 42 ", int64(42)},
		{"1e3", 1000.0},
		{"hello", "hello"},
		{"True", "True"},
		{"", nil},
		{"NA", nil},
		{"null", nil},
		{"#N/A", nil},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		assert.Equal(t, tt.expected, result, "parseValue(%q)", tt.input)
	}
}

func TestMissingMarkers(t *testing.T) {
	assert.True(t, isMissing(""))
	assert.True(t, isMissing("NaN"))
	assert.True(t, isMissing("<NA>"))
	assert.False(t, isMissing("0"))
	assert.False(t, isMissing(" "))
}
