// Package outwriter has output and writer logic.
package outwriter

import (
	"io"
	"os"
	"time"

	"github.com/huangsam/kdstats/internal/contract"
	"github.com/huangsam/kdstats/schema"
)

// OutWriter renders report documents and console output for one run.
// It is the production implementation of contract.ReportWriter.
type OutWriter struct {
	cfg     *contract.Config
	out     io.Writer // status lines and the run summary
	created time.Time // stamped into document metadata
}

var _ contract.ReportWriter = &OutWriter{} // Compile-time check

// NewOutWriter creates a writer that prints to out. A nil out means stdout.
func NewOutWriter(cfg *contract.Config, out io.Writer) *OutWriter {
	if out == nil {
		out = os.Stdout
	}
	return &OutWriter{cfg: cfg, out: out, created: time.Now()}
}

// WriteChart renders the chart model to a one-page landscape PDF at path.
func (ow *OutWriter) WriteChart(model schema.ChartModel, path string) error {
	return writeChartDocument(ow, model, path)
}

// WriteTable renders the dataset to a multi-page portrait PDF at path.
func (ow *OutWriter) WriteTable(ds schema.Dataset, path string) error {
	return writeTableDocument(ow, ds, path)
}

// WriteSummary prints the run summary table.
func (ow *OutWriter) WriteSummary(summary schema.RunSummary) error {
	return printRunSummary(ow.out, summary, ow.cfg)
}
