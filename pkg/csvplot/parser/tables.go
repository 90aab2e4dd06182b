package parser

// dataRegion is the bounding box of the non-empty cells of a sheet,
// 0-based and inclusive.
type dataRegion struct {
	minRow, maxRow int
	minCol, maxCol int
}

// width returns the number of columns spanned by the region.
func (r dataRegion) width() int {
	return r.maxCol - r.minCol + 1
}

// findDataBounds finds the bounding box of non-empty cells.
// ok is false when every cell is empty.
func findDataBounds(rows [][]string) (region dataRegion, ok bool) {
	region = dataRegion{minRow: -1, maxRow: -1, minCol: -1, maxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if region.minRow < 0 || rowIdx < region.minRow {
				region.minRow = rowIdx
			}
			if region.maxRow < 0 || rowIdx > region.maxRow {
				region.maxRow = rowIdx
			}
			if region.minCol < 0 || colIdx < region.minCol {
				region.minCol = colIdx
			}
			if region.maxCol < 0 || colIdx > region.maxCol {
				region.maxCol = colIdx
			}
		}
	}

	return region, region.minRow >= 0
}

// cropRow returns the cells of row inside the region's columns, padded with
// empty strings where the row is shorter than the region.
func cropRow(row []string, region dataRegion) []string {
	out := make([]string, region.width())
	for colIdx := region.minCol; colIdx <= region.maxCol && colIdx < len(row); colIdx++ {
		out[colIdx-region.minCol] = row[colIdx]
	}
	return out
}

// isBlank reports whether every cell is empty.
func isBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
