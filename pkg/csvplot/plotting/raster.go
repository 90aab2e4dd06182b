package plotting

import (
	"image"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ukaji3/csvplot-go/pkg/csvplot/models"
)

// Rasterize draws the chart into an image of width x height pixels.
// Axis, tick label and legend placement is laid out by the plot itself.
func Rasterize(c *models.Chart, v View, width, height int) (image.Image, error) {
	p, err := New(c, v)
	if err != nil {
		return nil, err
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(PixelsToLength(width), PixelsToLength(height)),
		vgimg.UseDPI(DPI),
	)
	p.Draw(draw.New(canvas))

	return canvas.Image(), nil
}
