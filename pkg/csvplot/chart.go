package csvplot

import (
	log "github.com/sirupsen/logrus"

	"github.com/ukaji3/csvplot-go/pkg/csvplot/models"
)

// BuildChart creates one series per numeric column of ds, using the
// 0-based row index as x. Text columns are left out.
func BuildChart(ds *models.Dataset, opts Options) *models.Chart {
	rows := ds.NRows()
	chart := &models.Chart{
		Title:  opts.Title,
		Source: ds.Name,
		Rows:   rows,
		YScale: opts.YScale,
	}
	if chart.YScale == "" {
		chart.YScale = models.ScaleLog
	}

	for _, col := range ds.Columns {
		if !col.Kind.Numeric() {
			log.WithField("column", col.Name).Debug("skipping non-numeric column")
			continue
		}

		values, _ := ds.Float64s(col.Name)
		points := make([]models.Point, len(values))
		for i, v := range values {
			points[i] = models.Point{X: float64(i), Y: v}
		}
		chart.Series = append(chart.Series, models.Series{Name: col.Name, Points: points})
	}

	return chart
}
