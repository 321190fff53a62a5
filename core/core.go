// Package core has the report pipeline: parsing, series extraction and statistics.
package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/kdstats/internal/contract"
	"github.com/huangsam/kdstats/schema"
)

// ExecuteReport runs one report for inputPath and hands the results to writer.
// It returns ErrInputNotFound before touching the filesystem when the input is missing,
// and ErrEmptyDataset when nothing usable was parsed.
func ExecuteReport(ctx context.Context, cfg *contract.Config, inputPath string, writer contract.ReportWriter) (schema.RunSummary, error) {
	start := time.Now()
	summary := schema.RunSummary{
		InputPath: inputPath,
		ChartPath: cfg.ChartPath(),
		TablePath: cfg.TablePath(),
	}

	if _, err := os.Stat(inputPath); err != nil {
		return summary, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}
	if err := contract.EnsureDir(cfg.OutputDir); err != nil {
		return summary, err
	}

	opts := ParseOptions{SkipMalformed: cfg.SkipMalformed, OnSkip: warnSkipped}
	ds, report, err := ReadGameData(inputPath, opts)
	if err != nil {
		return summary, fmt.Errorf("failed to parse %s: %w", inputPath, err)
	}
	summary.Parse = report
	if report.Duplicates > 0 {
		contract.LogWarn("Duplicate timestamps", fmt.Errorf("%d earlier rows were replaced by later ones", report.Duplicates))
	}
	if len(ds) == 0 {
		return summary, ErrEmptyDataset
	}

	series := ExtractSeries(ds)
	model := BuildChartModel(series, cfg.XTickStep)
	summary.Records = len(ds)
	summary.Pages = schema.PageCount(len(ds), cfg.RowsPerPage)
	summary.Series = []schema.SeriesSummary{
		{Label: model.Primary.Label, Stats: model.Primary.Stats},
		{Label: model.Secondary.Label, Stats: model.Secondary.Stats},
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	if err := writer.WriteChart(model, summary.ChartPath); err != nil {
		return summary, fmt.Errorf("failed to write chart: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	if err := writer.WriteTable(ds, summary.TablePath); err != nil {
		return summary, fmt.Errorf("failed to write table: %w", err)
	}

	summary.Duration = time.Since(start)
	if cfg.ShowSummary {
		if err := writer.WriteSummary(summary); err != nil {
			return summary, fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return summary, nil
}
