// Package plotting turns charts into gonum plots and raster images.
package plotting

import "gonum.org/v1/plot/vg"

// DPI is the resolution charts are rasterized at.
// 1 inch = 72 points, and at 96 DPI, 1 inch = 96 pixels.
const DPI = 96

// PixelsToLength converts a pixel count at DPI to a vg length.
func PixelsToLength(px int) vg.Length {
	return vg.Length(px) * vg.Inch / DPI
}
