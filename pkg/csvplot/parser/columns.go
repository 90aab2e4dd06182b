package parser

import (
	"github.com/rocketlaunchr/dataframe-go"
	log "github.com/sirupsen/logrus"

	"github.com/ukaji3/csvplot-go/pkg/csvplot/models"
)

// buildDataset infers a kind for every column and stores the values in a
// DataFrame. Records must all have len(header) fields.
func buildDataset(name string, header []string, records [][]string) *models.Dataset {
	names := normalizeHeaders(header)
	columns := make([]models.Column, len(names))
	series := make([]dataframe.Series, len(names))

	for col, colName := range names {
		raw := make([]string, len(records))
		parsed := make([]interface{}, len(records))
		for row, rec := range records {
			raw[row] = rec[col]
			parsed[row] = parseValue(rec[col])
		}

		kind, missing := inferKind(parsed)
		columns[col] = models.Column{Name: colName, Kind: kind, Missing: missing}
		series[col] = newSeries(colName, kind, raw, parsed)

		log.WithFields(log.Fields{
			"column":  colName,
			"kind":    kind,
			"missing": missing,
		}).Debug("inferred column type")
	}

	return &models.Dataset{
		Name:    name,
		Frame:   dataframe.NewDataFrame(series...),
		Columns: columns,
	}
}

// inferKind picks the narrowest kind holding every parsed value and counts
// missing values. A column with missing values, or with no values at all,
// is never integer.
func inferKind(values []interface{}) (models.ColumnKind, int) {
	kind := models.KindInteger
	missing := 0

	for _, v := range values {
		switch v.(type) {
		case nil:
			missing++
		case int64:
		case float64:
			kind = models.KindFloat
		default:
			kind = models.KindText
		}
	}

	if kind == models.KindInteger && (missing > 0 || len(values) == 0) {
		kind = models.KindFloat
	}
	return kind, missing
}

func newSeries(name string, kind models.ColumnKind, raw []string, parsed []interface{}) dataframe.Series {
	vals := make([]interface{}, len(parsed))

	switch kind {
	case models.KindInteger:
		copy(vals, parsed)
		return dataframe.NewSeriesInt64(name, nil, vals...)
	case models.KindFloat:
		for i, v := range parsed {
			switch n := v.(type) {
			case int64:
				vals[i] = float64(n)
			case float64:
				vals[i] = n
			default:
				vals[i] = nil
			}
		}
		return dataframe.NewSeriesFloat64(name, nil, vals...)
	default:
		for i, v := range parsed {
			if v == nil {
				vals[i] = nil
				continue
			}
			vals[i] = raw[i]
		}
		return dataframe.NewSeriesString(name, nil, vals...)
	}
}
