package parser

import (
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/csvplot-go/pkg/csvplot/models"
)

var spreadsheetExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// IsSpreadsheet reports whether path names an OOXML workbook.
func IsSpreadsheet(path string) bool {
	return spreadsheetExts[strings.ToLower(filepath.Ext(path))]
}

// LoadXLSX reads one sheet of a workbook. An empty sheet name selects the
// first sheet. The first non-empty row of the sheet's data region is the
// header; fully blank rows are skipped.
func LoadXLSX(path string, sheet string) (*models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		if list := f.GetSheetList(); len(list) > 0 {
			sheet = list[0]
		}
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	region, ok := findDataBounds(rows)
	if !ok {
		return nil, ErrNoColumns
	}

	start, _ := excelize.CoordinatesToCellName(region.minCol+1, region.minRow+1)
	end, _ := excelize.CoordinatesToCellName(region.maxCol+1, region.maxRow+1)
	log.WithFields(log.Fields{
		"sheet": sheet,
		"range": start + ":" + end,
	}).Debug("detected data region")

	header := cropRow(rows[region.minRow], region)
	var records [][]string
	for rowIdx := region.minRow + 1; rowIdx <= region.maxRow; rowIdx++ {
		rec := cropRow(rows[rowIdx], region)
		if isBlank(rec) {
			continue
		}
		records = append(records, rec)
	}

	return buildDataset(filepath.Base(path), header, records), nil
}
