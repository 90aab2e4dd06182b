package csvplot

import (
	log "github.com/sirupsen/logrus"

	"github.com/ukaji3/csvplot-go/pkg/csvplot/models"
	"github.com/ukaji3/csvplot-go/pkg/csvplot/parser"
)

// Display presents a chart. Show blocks until the user dismisses it.
type Display interface {
	Show(chart *models.Chart) error
}

// Load reads the file at path into a dataset. Workbooks (.xlsx and
// friends) go through the spreadsheet loader, anything else is read as
// delimited text.
func Load(path string, opts Options) (*models.Dataset, error) {
	var (
		ds  *models.Dataset
		err error
	)
	if parser.IsSpreadsheet(path) {
		ds, err = parser.LoadXLSX(path, opts.Sheet)
	} else {
		ds, err = parser.LoadCSV(path, opts.Comma)
	}
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"file":    ds.Name,
		"rows":    ds.NRows(),
		"columns": len(ds.Columns),
		"numeric": len(ds.NumericColumns()),
	}).Debug("loaded dataset")

	return ds, nil
}

// Render loads the file at path, builds its chart and hands it to d.
// Nothing is displayed when loading fails.
func Render(path string, opts Options, d Display) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	ds, err := Load(path, opts)
	if err != nil {
		return NewRenderError(path, "load", err)
	}

	chart := BuildChart(ds, opts)
	log.WithFields(log.Fields{
		"series": len(chart.Series),
		"rows":   chart.Rows,
		"scale":  chart.YScale,
	}).Debug("built chart")

	if err := d.Show(chart); err != nil {
		return NewRenderError(path, "display", err)
	}
	return nil
}
