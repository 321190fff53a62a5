// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "github.com/huangsam/kdstats/schema"

// ReportWriter persists the two report documents and the console summary.
// This allows the pipeline to be tested without rendering real PDFs.
type ReportWriter interface {
	// WriteChart renders the dual-axis chart and writes it to path as one landscape page.
	WriteChart(model schema.ChartModel, path string) error

	// WriteTable renders the dataset as a paginated table and writes every page to path.
	WriteTable(ds schema.Dataset, path string) error

	// WriteSummary prints the outcome of a successful run.
	WriteSummary(summary schema.RunSummary) error
}
