// Package csvplot renders the numeric columns of a tabular file as a line
// chart with a logarithmic y-axis.
package csvplot

import "github.com/ukaji3/csvplot-go/pkg/csvplot/models"

// Options configures loading and display.
type Options struct {
	// Title is the chart title. Empty means no title.
	Title string
	// Comma is the field delimiter for delimited text input.
	Comma rune
	// Sheet selects the workbook sheet for spreadsheet input.
	// If empty, the first sheet is used.
	Sheet string
	// YScale is the initial y-axis scale.
	YScale models.Scale
	// Width is the initial window width in pixels.
	Width int
	// Height is the initial window height in pixels.
	Height int
}

// DefaultOptions returns default options: comma-separated input, log
// y-axis, 640x480 window.
func DefaultOptions() Options {
	return Options{
		Comma:  ',',
		YScale: models.ScaleLog,
		Width:  640,
		Height: 480,
	}
}

// Validate checks option values that cannot be fixed up silently.
func (o Options) Validate() error {
	if !validDelimiter(o.Comma) {
		return ErrInvalidDelimiter
	}
	if o.Width <= 0 || o.Height <= 0 {
		return ErrInvalidSize
	}
	return nil
}

func validDelimiter(r rune) bool {
	switch r {
	case 0, '\r', '\n', '"', 0xFFFD:
		return false
	}
	return true
}
