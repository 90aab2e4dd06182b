package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindDataBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", "", ""},
		{"", "x", "y"},
		{"", "1", ""},
		{"", "", "3", ""},
	}

	region, ok := findDataBounds(rows)
	assert.True(t, ok)
	assert.Equal(t, dataRegion{minRow: 2, maxRow: 4, minCol: 1, maxCol: 2}, region)
	assert.Equal(t, 2, region.width())
	assert.Equal(t, []string{"1", ""}, cropRow(rows[3], region))
	assert.Equal(t, []string{"", "3"}, cropRow(rows[4], region))
}

func TestFindDataBoundsEmpty(t *testing.T) {
	_, ok := findDataBounds([][]string{{}, {"", ""}})
	assert.False(t, ok)

	_, ok = findDataBounds(nil)
	assert.False(t, ok)
}

func TestIsBlank(t *testing.T) {
	assert.True(t, isBlank([]string{"", ""}))
	assert.True(t, isBlank(nil))
	assert.False(t, isBlank([]string{"", "a"}))
}
