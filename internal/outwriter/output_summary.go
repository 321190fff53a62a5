package outwriter

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/huangsam/kdstats/internal/contract"
	"github.com/huangsam/kdstats/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

// printRunSummary prints per-series statistics and parse counters as a table.
func printRunSummary(w io.Writer, summary schema.RunSummary, cfg *contract.Config) error {
	fmtFloat := createFormatter(2)
	pathWidth := getMaxSummaryPathWidth(cfg)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Series", "Min", "Max", "Avg", "Records"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range summary.Series {
		row := []string{contract.Paint(seriesColor(s.Label), string(s.Label), cfg.UseColors)}
		if s.Stats == nil {
			row = append(row, "-", "-", "-", "0")
		} else {
			row = append(row,
				fmtFloat(s.Stats.Min),
				fmtFloat(s.Stats.Max),
				fmtFloat(s.Stats.Average),
				strconv.Itoa(summary.Records),
			)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	p := summary.Parse
	skipped := fmt.Sprintf("%d without timestamp, %d malformed, %d duplicates replaced", p.MissingTimestamp, p.Malformed, p.Duplicates)
	if p.MissingTimestamp+p.Malformed+p.Duplicates > 0 {
		skipped = contract.Paint(contract.WarnColor, skipped, cfg.UseColors)
	}
	_, _ = fmt.Fprintf(w, "Read %d rows from %s (%s)\n", p.RowsRead, contract.TruncatePath(summary.InputPath, pathWidth), skipped)
	_, _ = fmt.Fprintf(w, "Wrote %s (%s) and %s (%s) in %v\n",
		contract.Paint(contract.SuccessColor, contract.TruncatePath(summary.ChartPath, pathWidth), cfg.UseColors), pageCount(1),
		contract.Paint(contract.SuccessColor, contract.TruncatePath(summary.TablePath, pathWidth), cfg.UseColors), pageCount(summary.Pages),
		summary.Duration)
	return nil
}

func pageCount(n int) string {
	if n == 1 {
		return "1 page"
	}
	return fmt.Sprintf("%d pages", n)
}

// seriesColor matches console labels to the chart line colors.
func seriesColor(label schema.SeriesLabel) *color.Color {
	if label == schema.SkillLabel {
		return contract.SkillColor
	}
	return contract.KDColor
}

// createFormatter returns a fixed-precision float formatter.
func createFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}

// getMaxSummaryPathWidth calculates the maximum width for paths in the summary
// based on terminal width.
func getMaxSummaryPathWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from config/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the surrounding sentence
	available := termWidth - 50
	if available < 20 {
		return 20
	}
	if available > 100 {
		return 100
	}
	return available
}
