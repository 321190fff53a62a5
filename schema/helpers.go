package schema

import (
	"fmt"
	"slices"
	"strconv"
)

// KDRatio returns kills/deaths. With zero deaths it returns kills as a float,
// which is a defined result rather than a division error.
func KDRatio(kills, deaths int) float64 {
	if deaths == 0 {
		return float64(kills)
	}
	return float64(kills) / float64(deaths)
}

// NewRecord builds a record and derives its ratio.
func NewRecord(timestamp string, skill float64, kills, deaths int) Record {
	return Record{
		Timestamp: timestamp,
		Skill:     skill,
		Kills:     kills,
		Deaths:    deaths,
		Ratio:     KDRatio(kills, deaths),
	}
}

// SortedKeys returns the dataset keys in ascending string order.
func (d Dataset) SortedKeys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// PageCount returns ceil(n/perPage). perPage must be positive.
func PageCount(n, perPage int) int {
	if n <= 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

// FormatFixed2 formats a value with two decimals.
func FormatFixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// AnnotationLabel renders a legend label such as "Max Skill: 2.00".
func AnnotationLabel(kind AnnotationKind, label SeriesLabel, value float64) string {
	return fmt.Sprintf(AnnotationFmt, kind, label, value)
}

// TableRow formats a record as a table row in TableHeaders order.
func (r Record) TableRow() []string {
	return []string{
		r.Timestamp,
		FormatFixed2(r.Skill),
		strconv.Itoa(r.Kills),
		strconv.Itoa(r.Deaths),
		FormatFixed2(r.Ratio),
	}
}
