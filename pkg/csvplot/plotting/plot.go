package plotting

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ukaji3/csvplot-go/pkg/csvplot/models"
)

// LineWidth is the stroke width of every series.
var LineWidth = vg.Points(1.5)

// logMargin is the fraction of the log-space data span added above and
// below the data on a log axis. A single distinct value gets one decade.
const logMargin = 0.05

// New builds a gonum plot drawing one line per chart series against the
// row index. On a log axis, points that cannot be placed (zero, negative,
// missing) split the line into separate segments.
func New(c *models.Chart, v View) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.Legend.Top = true

	if v.Grid {
		p.Add(plotter.NewGrid())
	}

	for i, s := range c.Series {
		style := draw.LineStyle{
			Color: plotutil.Color(i),
			Width: LineWidth,
		}

		for _, seg := range segments(s.Points, v.LogY) {
			// a lone point has no line to draw
			if len(seg) < 2 {
				continue
			}
			line, err := plotter.NewLine(seg)
			if err != nil {
				return nil, fmt.Errorf("series %q: %w", s.Name, err)
			}
			line.LineStyle = style
			p.Add(line)
		}

		p.Legend.Add(s.Name, &plotter.Line{LineStyle: style})
	}

	p.X.Min = 0
	p.X.Max = math.Max(float64(c.Rows-1), 1)

	if v.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Y.Min, p.Y.Max = LogRange(c)
	}

	return p, nil
}

// segments splits points into runs of drawable points.
func segments(points []models.Point, logY bool) []plotter.XYs {
	var (
		out []plotter.XYs
		cur plotter.XYs
	)

	for _, pt := range points {
		if !drawable(pt.Y, logY) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: pt.X, Y: pt.Y})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}

	return out
}

func drawable(y float64, logY bool) bool {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return false
	}
	return !logY || y > 0
}

// LogRange returns a strictly positive, finite y range covering every
// positive value of the chart. Without positive values it returns [1, 10].
// The margin is added in log10 space and clamped to the float64 range.
func LogRange(c *models.Chart) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, pt := range s.Points {
			if !drawable(pt.Y, true) {
				continue
			}
			lo = math.Min(lo, pt.Y)
			hi = math.Max(hi, pt.Y)
		}
	}

	if math.IsInf(lo, 1) {
		return 1, 10
	}

	l, h := math.Log10(lo), math.Log10(hi)
	m := (h - l) * logMargin
	if m == 0 {
		m = 1
	}

	lo = math.Max(math.Pow(10, l-m), math.SmallestNonzeroFloat64)
	hi = math.Min(math.Pow(10, h+m), math.MaxFloat64)
	return lo, hi
}
