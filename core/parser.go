package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/huangsam/kdstats/internal/contract"
	"github.com/huangsam/kdstats/schema"
)

// ParseOptions controls how the parser treats bad rows.
type ParseOptions struct {
	// SkipMalformed drops rows whose numbers fail to parse instead of aborting.
	SkipMalformed bool

	// OnSkip is called for every dropped malformed row. Nil means silent.
	OnSkip func(err *ParseError)
}

// columnIndex records where each known column sits in the header; -1 when absent.
type columnIndex struct {
	bomTimestamp   int
	plainTimestamp int
	skill          int
	kills          int
	deaths         int
}

// ReadGameData opens path and parses it with ParseGameData.
func ReadGameData(path string, opts ParseOptions) (schema.Dataset, schema.ParseReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, schema.ParseReport{}, fmt.Errorf("could not open input: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ParseGameData(file, opts)
}

// ParseGameData reads CSV game records keyed by timestamp.
// Rows without a timestamp are skipped. Later rows with the same timestamp replace
// earlier ones. A header missing Skill, Kills or Deaths is always an error.
func ParseGameData(r io.Reader, opts ParseOptions) (schema.Dataset, schema.ParseReport, error) {
	var report schema.ParseReport

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return schema.Dataset{}, report, nil
	}
	if err != nil {
		return nil, report, &ParseError{Line: csvErrorLine(err), Err: err}
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, report, err
	}

	ds := make(schema.Dataset)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, report, &ParseError{Line: csvErrorLine(err), Err: err}
		}
		line, _ := reader.FieldPos(0)
		report.RowsRead++

		timestamp := cols.timestamp(row)
		if timestamp == "" {
			report.MissingTimestamp++
			continue
		}

		record, perr := parseRow(row, cols, timestamp, line)
		if perr != nil {
			if !opts.SkipMalformed {
				return nil, report, perr
			}
			report.Malformed++
			if opts.OnSkip != nil {
				opts.OnSkip(perr)
			}
			continue
		}

		if _, exists := ds[timestamp]; exists {
			report.Duplicates++
		}
		ds[timestamp] = record
	}

	return ds, report, nil
}

// resolveColumns maps header names to positions. Duplicate names resolve to the last one.
func resolveColumns(header []string) (columnIndex, error) {
	cols := columnIndex{bomTimestamp: -1, plainTimestamp: -1, skill: -1, kills: -1, deaths: -1}
	for i, raw := range header {
		name := strings.TrimSpace(raw)
		switch name {
		case schema.BOMPrefix + schema.TimestampColumn, schema.MisdecodedPrefix + schema.TimestampColumn:
			cols.bomTimestamp = i
		case schema.TimestampColumn:
			cols.plainTimestamp = i
		case schema.SkillColumn:
			cols.skill = i
		case schema.KillsColumn:
			cols.kills = i
		case schema.DeathsColumn:
			cols.deaths = i
		}
	}

	var missing []string
	if cols.skill < 0 {
		missing = append(missing, schema.SkillColumn)
	}
	if cols.kills < 0 {
		missing = append(missing, schema.KillsColumn)
	}
	if cols.deaths < 0 {
		missing = append(missing, schema.DeathsColumn)
	}
	if len(missing) > 0 {
		return cols, &ParseError{Line: 1, Err: fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))}
	}
	return cols, nil
}

// timestamp prefers the BOM-prefixed column and falls back to the plain one.
func (c columnIndex) timestamp(row []string) string {
	if ts := cell(row, c.bomTimestamp); ts != "" {
		return ts
	}
	return cell(row, c.plainTimestamp)
}

// parseRow coerces the numeric cells of one row.
func parseRow(row []string, cols columnIndex, timestamp string, line int) (schema.Record, *ParseError) {
	kills, err := parseCount(cell(row, cols.kills))
	if err != nil {
		return schema.Record{}, &ParseError{Line: line, Column: schema.KillsColumn, Value: cell(row, cols.kills), Err: err}
	}
	deaths, err := parseCount(cell(row, cols.deaths))
	if err != nil {
		return schema.Record{}, &ParseError{Line: line, Column: schema.DeathsColumn, Value: cell(row, cols.deaths), Err: err}
	}
	skill, err := strconv.ParseFloat(strings.TrimSpace(cell(row, cols.skill)), 64)
	if err != nil {
		return schema.Record{}, &ParseError{Line: line, Column: schema.SkillColumn, Value: cell(row, cols.skill), Err: err}
	}
	if math.IsNaN(skill) || math.IsInf(skill, 0) {
		return schema.Record{}, &ParseError{Line: line, Column: schema.SkillColumn, Value: cell(row, cols.skill), Err: ErrNotFinite}
	}
	return schema.NewRecord(timestamp, skill, kills, deaths), nil
}

// parseCount parses a non-negative integer count.
func parseCount(s string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 31)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// csvErrorLine extracts the line number from a csv read error, or 0 when unknown.
func csvErrorLine(err error) int {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return perr.Line
	}
	return 0
}

// cell returns row[i], or "" when the column is absent or the row is short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// warnSkipped reports a dropped row on stderr.
func warnSkipped(err *ParseError) {
	contract.LogWarn("Skipping malformed row", err)
}
