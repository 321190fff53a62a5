package schema

// TablePage is one page of the tabular report.
type TablePage struct {
	Number int        `json:"number"` // 1-based
	Total  int        `json:"total"`
	Title  string     `json:"title"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// SeriesAnnotation is one plotted series with optional statistics.
type SeriesAnnotation struct {
	Label    SeriesLabel
	ColorHex string
	Values   []float64
	Stats    *SeriesStats // nil skips markers and the average line
}

// ChartModel is everything the chart renderer needs.
type ChartModel struct {
	Title     string
	XLabel    string
	Positions []int
	TickStep  int
	Primary   SeriesAnnotation // drawn against the left axis
	Secondary SeriesAnnotation // drawn against the right axis
}

// Span returns the axis half-range for the annotation, or 1 when it has no stats.
func (a SeriesAnnotation) Span() float64 {
	if a.Stats == nil {
		return 1
	}
	return a.Stats.Span
}
