package schema

// Custom string types for type safety.
type (
	// SeriesLabel names a plotted series; it is also the legend label.
	SeriesLabel string

	// AnnotationKind names one of the per-series statistic annotations.
	AnnotationKind string
)

// Series labels used across the chart, the table and the console summary.
const (
	KDLabel    SeriesLabel = "K/D Ratio"
	SkillLabel SeriesLabel = "Skill"
)

// Annotation kinds drawn for each non-empty series.
const (
	MinAnnotation AnnotationKind = "Min"
	MaxAnnotation AnnotationKind = "Max"
	AvgAnnotation AnnotationKind = "Avg"
)

// Input column names.
const (
	TimestampColumn = "UTC Timestamp"
	SkillColumn     = "Skill"
	KillsColumn     = "Kills"
	DeathsColumn    = "Deaths"
)

// Header prefixes that some spreadsheet exports leave on the first column.
const (
	BOMPrefix        = "\ufeff"             // UTF-8 byte-order mark decoded as a rune
	MisdecodedPrefix = "\u00ef\u00bb\u00bf" // UTF-8 byte-order mark decoded as Latin-1
)

// Chart and document text.
const (
	ChartTitle      = "Game Statistics Over Time"
	ChartXLabel     = "Game Number"
	TableTitleFmt   = "Game Data Table - Page %d of %d"
	AnnotationFmt   = "%s %s: %.2f"
	DefaultCreator  = "kdstats"
	MinSpan         = 1e-9 // Lower bound of a symmetric axis half-range
	DefaultTickStep = 25
	DefaultPageRows = 40
)

// Series colors as hex triplets.
const (
	KDColorHex    = "6495ED" // cornflowerblue
	SkillColorHex = "CD5C5C" // indianred
)

// TableHeaders lists the table columns in display order.
var TableHeaders = []string{"Timestamp", "Skill", "Kills", "Deaths", "K/D Ratio"}

// TableColumnWidths holds each column's share of the table width.
var TableColumnWidths = []float64{0.3, 0.15, 0.15, 0.15, 0.15}
