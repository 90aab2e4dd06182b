package models

// Scale is the y-axis scale of a chart.
type Scale string

const (
	// ScaleLinear places values proportionally to their magnitude.
	ScaleLinear Scale = "linear"
	// ScaleLog places values proportionally to their base-10 logarithm.
	ScaleLog Scale = "log"
)

// Point is one sample of a series. Y is NaN for a missing value.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is one plotted line, built from a single numeric column.
type Series struct {
	// Name is the source column name, shown in the legend.
	Name string `json:"name"`
	// Points holds one point per dataset row, ordered by row index.
	Points []Point `json:"points"`
}

// Chart is a multi-series line chart sharing the row index as x-axis.
type Chart struct {
	// Title is the chart title (may be empty).
	Title string `json:"title,omitempty"`
	// Source is the name of the file the chart was built from.
	Source string `json:"source"`
	// Rows is the number of dataset rows, i.e. the length of every series.
	Rows int `json:"rows"`
	// YScale is the initial y-axis scale.
	YScale Scale `json:"y_scale"`
	// Series is the list of plotted series in column order.
	Series []Series `json:"series"`
}
