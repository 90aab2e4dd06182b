package plotting

import "github.com/ukaji3/csvplot-go/pkg/csvplot/models"

// View holds the interactive display settings applied on top of a chart.
type View struct {
	// LogY draws the y-axis on a log scale.
	LogY bool
	// Grid draws major grid lines.
	Grid bool
}

// ViewFor returns the initial view of a chart.
func ViewFor(c *models.Chart) View {
	return View{LogY: c.YScale == models.ScaleLog}
}

// ToggleLogY switches the y-axis between log and linear scale.
func (v View) ToggleLogY() View {
	v.LogY = !v.LogY
	return v
}

// ToggleGrid shows or hides the grid.
func (v View) ToggleGrid() View {
	v.Grid = !v.Grid
	return v
}
