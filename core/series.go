package core

import "github.com/huangsam/kdstats/schema"

// ExtractSeries projects ds onto parallel slices ordered by ascending timestamp.
// Positions run from 1 to N. An empty dataset yields empty, non-nil slices.
func ExtractSeries(ds schema.Dataset) schema.Series {
	keys := ds.SortedKeys()
	series := schema.Series{
		Keys:      keys,
		Ratio:     make([]float64, len(keys)),
		Skill:     make([]float64, len(keys)),
		Positions: make([]int, len(keys)),
	}
	for i, k := range keys {
		record := ds[k]
		series.Ratio[i] = record.Ratio
		series.Skill[i] = record.Skill
		series.Positions[i] = i + 1
	}
	return series
}

// annotate pairs values with their label, color and statistics.
// Stats stay nil for an empty sequence so the renderer skips its markers.
func annotate(label schema.SeriesLabel, colorHex string, values []float64) schema.SeriesAnnotation {
	annotation := schema.SeriesAnnotation{Label: label, ColorHex: colorHex, Values: values}
	if stats, err := ComputeSeriesStats(values); err == nil {
		annotation.Stats = &stats
	}
	return annotation
}

// BuildChartModel assembles the chart input for a series.
func BuildChartModel(series schema.Series, tickStep int) schema.ChartModel {
	return schema.ChartModel{
		Title:     schema.ChartTitle,
		XLabel:    schema.ChartXLabel,
		Positions: series.Positions,
		TickStep:  tickStep,
		Primary:   annotate(schema.KDLabel, schema.KDColorHex, series.Ratio),
		Secondary: annotate(schema.SkillLabel, schema.SkillColorHex, series.Skill),
	}
}
