// Package schema has the models and constants shared by all parts of kdstats.
package schema

import "time"

// Record is one parsed game session.
// Ratio is derived from Kills and Deaths at parse time and never recomputed.
type Record struct {
	Timestamp string  `json:"timestamp"` // Raw timestamp cell, also the dataset key
	Skill     float64 `json:"skill"`     // Skill rating reported by the game
	Kills     int     `json:"kills"`     // Kills in the session
	Deaths    int     `json:"deaths"`    // Deaths in the session
	Ratio     float64 `json:"ratio"`     // Kills/Deaths, or Kills when Deaths is zero
}

// Dataset maps a timestamp to its record. Iteration order is irrelevant;
// consumers sort keys through SortedKeys.
type Dataset map[string]Record

// Series holds the dataset projected onto parallel slices ordered by timestamp.
type Series struct {
	Keys      []string  `json:"keys"`
	Ratio     []float64 `json:"ratio"`
	Skill     []float64 `json:"skill"`
	Positions []int     `json:"positions"` // 1-based game index
}

// SeriesStats describes a non-empty numeric sequence.
type SeriesStats struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Average     float64 `json:"average"`
	Span        float64 `json:"span"`         // max(|Min|, |Max|, MinSpan)
	MinPosition int     `json:"min_position"` // 0-based, first occurrence
	MaxPosition int     `json:"max_position"` // 0-based, first occurrence
}

// ParseReport counts what the parser did with each input row.
type ParseReport struct {
	RowsRead         int `json:"rows_read"`
	MissingTimestamp int `json:"missing_timestamp"`
	Malformed        int `json:"malformed"`
	Duplicates       int `json:"duplicates"`
}

// SeriesSummary pairs a label with its statistics. Stats is nil for an empty series.
type SeriesSummary struct {
	Label SeriesLabel  `json:"label"`
	Stats *SeriesStats `json:"stats,omitempty"`
}

// RunSummary is what a successful report run produced.
type RunSummary struct {
	InputPath string          `json:"input_path"`
	ChartPath string          `json:"chart_path"`
	TablePath string          `json:"table_path"`
	Records   int             `json:"records"`
	Pages     int             `json:"pages"`
	Series    []SeriesSummary `json:"series"`
	Parse     ParseReport     `json:"parse"`
	Duration  time.Duration   `json:"duration"`
}
