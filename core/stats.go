package core

import (
	"math"

	"github.com/huangsam/kdstats/schema"
)

// ComputeSeriesStats returns the extrema, mean and symmetric axis span of values.
// Ties resolve to the first occurrence. Span is never below schema.MinSpan.
func ComputeSeriesStats(values []float64) (schema.SeriesStats, error) {
	if len(values) == 0 {
		return schema.SeriesStats{}, ErrEmptySeries
	}

	stats := schema.SeriesStats{Min: values[0], Max: values[0]}
	sum := 0.0
	for i, v := range values {
		if v < stats.Min {
			stats.Min, stats.MinPosition = v, i
		}
		if v > stats.Max {
			stats.Max, stats.MaxPosition = v, i
		}
		sum += v
	}
	stats.Average = sum / float64(len(values))
	stats.Span = math.Max(math.Max(math.Abs(stats.Min), math.Abs(stats.Max)), schema.MinSpan)
	return stats, nil
}
