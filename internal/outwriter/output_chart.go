package outwriter

import (
	"fmt"
	"strconv"

	"github.com/huangsam/kdstats/schema"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Raster size of the chart image. 11x8.5 inches at 150 DPI.
const (
	chartWidth  = 1650
	chartHeight = 1275
	chartDPI    = 150
)

// Line and marker styling.
const (
	seriesStrokeWidth = 2.0
	averageDashOn     = 8.0
	averageDashOff    = 5.0
	markerDotWidth    = 7.0
	symmetricTicks    = 4 // ticks on each side of zero
)

// tickedRange is a continuous range that supplies its own ticks.
// Ticks set on the axis itself would override the range bounds.
type tickedRange struct {
	*chart.ContinuousRange
	ticks []chart.Tick
}

// GetTicks implements chart.TicksProvider.
func (r *tickedRange) GetTicks(_ chart.Renderer, _ chart.Style, _ chart.ValueFormatter) []chart.Tick {
	return r.ticks
}

// BuildChart lays out the dual-axis chart for model.
// go-chart draws its primary Y axis on the right, so model.Primary goes on the
// secondary axis to end up on the left.
func BuildChart(model schema.ChartModel) chart.Chart {
	n := len(model.Positions)
	xValues := make([]float64, n)
	for i, p := range model.Positions {
		xValues[i] = float64(p)
	}
	xMin, xMax := 0.5, float64(n)+0.5

	var series []chart.Series
	series = append(series, buildSeries(model.Primary, xValues, xMin, xMax, chart.YAxisSecondary)...)
	series = append(series, buildSeries(model.Secondary, xValues, xMin, xMax, chart.YAxisPrimary)...)

	ch := chart.Chart{
		Title:  model.Title,
		Width:  chartWidth,
		Height: chartHeight,
		DPI:    chartDPI,
		Background: chart.Style{
			Padding: chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  model.XLabel,
			Range: &tickedRange{ContinuousRange: &chart.ContinuousRange{Min: xMin, Max: xMax}, ticks: positionTicks(n, model.TickStep)},
		},
		YAxis: chart.YAxis{ // right
			Name:  string(model.Secondary.Label),
			Range: symmetricRange(model.Secondary.Span()),
		},
		YAxisSecondary: chart.YAxis{ // left
			Name:  string(model.Primary.Label),
			Range: symmetricRange(model.Primary.Span()),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// buildSeries returns the line plus min, max and average overlays for one annotation.
// An empty annotation becomes one hidden point so its axis is still drawn.
func buildSeries(a schema.SeriesAnnotation, xValues []float64, xMin, xMax float64, axis chart.YAxisType) []chart.Series {
	color := drawing.ColorFromHex(a.ColorHex)
	if len(a.Values) == 0 || len(xValues) != len(a.Values) {
		return []chart.Series{chart.ContinuousSeries{
			Name:    string(a.Label),
			YAxis:   axis,
			Style:   chart.Style{Hidden: true},
			XValues: []float64{xMin},
			YValues: []float64{0},
		}}
	}

	out := []chart.Series{chart.ContinuousSeries{
		Name:    string(a.Label),
		YAxis:   axis,
		Style:   chart.Style{StrokeColor: color, StrokeWidth: seriesStrokeWidth},
		XValues: xValues,
		YValues: a.Values,
	}}
	if a.Stats == nil {
		return out
	}

	stats := a.Stats
	marker := func(kind schema.AnnotationKind, pos int, value float64) chart.Series {
		return chart.ContinuousSeries{
			Name:    schema.AnnotationLabel(kind, a.Label, value),
			YAxis:   axis,
			Style:   chart.Style{StrokeColor: color, StrokeWidth: seriesStrokeWidth, DotColor: color, DotWidth: markerDotWidth},
			XValues: []float64{xValues[pos]},
			YValues: []float64{value},
		}
	}
	out = append(out,
		marker(schema.MinAnnotation, stats.MinPosition, stats.Min),
		marker(schema.MaxAnnotation, stats.MaxPosition, stats.Max),
		chart.ContinuousSeries{
			Name:  schema.AnnotationLabel(schema.AvgAnnotation, a.Label, stats.Average),
			YAxis: axis,
			Style: chart.Style{
				StrokeColor:     color,
				StrokeWidth:     seriesStrokeWidth,
				StrokeDashArray: []float64{averageDashOn, averageDashOff},
			},
			XValues: []float64{xMin, xMax},
			YValues: []float64{stats.Average, stats.Average},
		},
	)
	return out
}

// positionTicks returns ticks at 1, 1+step, 1+2*step and so on up to n.
func positionTicks(n, step int) []chart.Tick {
	if step <= 0 {
		step = schema.DefaultTickStep
	}
	var ticks []chart.Tick
	for p := 1; p <= n; p += step {
		ticks = append(ticks, chart.Tick{Value: float64(p), Label: strconv.Itoa(p)})
	}
	return ticks
}

// symmetricRange spans [-span, span] with evenly spaced ticks through zero.
func symmetricRange(span float64) *tickedRange {
	ticks := make([]chart.Tick, 0, 2*symmetricTicks+1)
	for i := -symmetricTicks; i <= symmetricTicks; i++ {
		v := span * float64(i) / symmetricTicks
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.2f", v)})
	}
	return &tickedRange{ContinuousRange: &chart.ContinuousRange{Min: -span, Max: span}, ticks: ticks}
}
