package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/kdstats/internal/outwriter"
	"github.com/huangsam/kdstats/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGameData(t *testing.T) {
	t.Run("round trip of three rows", func(t *testing.T) {
		input := "UTC Timestamp,Skill,Kills,Deaths\n" +
			"2024-01-02,2.0,0,3\n" +
			"2024-01-01,1.0,5,0\n" +
			"2024-01-03,0.5,3,4\n"
		ds, report, err := ParseGameData(strings.NewReader(input), ParseOptions{})
		require.NoError(t, err)
		require.Len(t, ds, 3)
		assert.Equal(t, 3, report.RowsRead)

		series := ExtractSeries(ds)
		assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, series.Keys)
		assert.Equal(t, []float64{5.0, 0.0, 0.75}, series.Ratio)
		assert.Equal(t, []float64{1.0, 2.0, 0.5}, series.Skill)
	})

	t.Run("ratio scenario from three records", func(t *testing.T) {
		input := "UTC Timestamp,Skill,Kills,Deaths\n" +
			"t1,1.50,10,2\n" +
			"t2,2.00,0,0\n" +
			"t3,0.75,5,5\n"
		ds, _, err := ParseGameData(strings.NewReader(input), ParseOptions{})
		require.NoError(t, err)
		series := ExtractSeries(ds)
		assert.Equal(t, []float64{5.0, 0.0, 1.0}, series.Ratio)
		assert.Equal(t, []float64{1.50, 2.00, 0.75}, series.Skill)

		pages := outwriter.PaginateTable(ds, schema.DefaultPageRows)
		require.Len(t, pages, 1)
		assert.Equal(t, [][]string{
			{"t1", "1.50", "10", "2", "5.00"},
			{"t2", "2.00", "0", "0", "0.00"},
			{"t3", "0.75", "5", "5", "1.00"},
		}, pages[0].Rows)
	})

	t.Run("duplicate timestamps keep the last row", func(t *testing.T) {
		input := "UTC Timestamp,Skill,Kills,Deaths\n" +
			"t1,1.0,1,1\n" +
			"t2,1.0,2,1\n" +
			"t1,3.0,9,3\n"
		ds, report, err := ParseGameData(strings.NewReader(input), ParseOptions{})
		require.NoError(t, err)
		assert.Len(t, ds, 2)
		assert.Equal(t, 1, report.Duplicates)
		assert.Equal(t, schema.NewRecord("t1", 3.0, 9, 3), ds["t1"])
	})

	t.Run("rows without timestamp are skipped", func(t *testing.T) {
		input := "UTC Timestamp,Skill,Kills,Deaths\n" +
			",1.0,1,1\n" +
			"t2,1.0,2,1\n"
		ds, report, err := ParseGameData(strings.NewReader(input), ParseOptions{})
		require.NoError(t, err)
		assert.Len(t, ds, 1)
		assert.Equal(t, 1, report.MissingTimestamp)
		assert.Equal(t, 2, report.RowsRead)
	})

	t.Run("header only yields empty dataset", func(t *testing.T) {
		ds, _, err := ParseGameData(strings.NewReader("UTC Timestamp,Skill,Kills,Deaths\n"), ParseOptions{})
		require.NoError(t, err)
		assert.Empty(t, ds)
	})

	t.Run("empty input yields empty dataset", func(t *testing.T) {
		ds, _, err := ParseGameData(strings.NewReader(""), ParseOptions{})
		require.NoError(t, err)
		assert.Empty(t, ds)
	})

	t.Run("values and header names are trimmed", func(t *testing.T) {
		input := " UTC Timestamp , Skill ,Kills , Deaths\n" +
			"t1, 1.25 , 4 , 2 \n"
		ds, _, err := ParseGameData(strings.NewReader(input), ParseOptions{})
		require.NoError(t, err)
		assert.Equal(t, schema.NewRecord("t1", 1.25, 4, 2), ds["t1"])
	})

	t.Run("short rows read missing cells as empty", func(t *testing.T) {
		input := "UTC Timestamp,Skill,Kills,Deaths\n" +
			"t1,1.0,2\n" +
			"t2,1.0,2,1\n"
		ds, report, err := ParseGameData(strings.NewReader(input), ParseOptions{SkipMalformed: true})
		require.NoError(t, err)
		assert.Len(t, ds, 1)
		assert.Equal(t, 1, report.Malformed)
	})
}

func TestParseGameDataTimestampHeaders(t *testing.T) {
	tests := []struct {
		name   string
		header string
		row    string
		want   string
	}{
		{"plain", "UTC Timestamp,Skill,Kills,Deaths", "plain,1,1,1", "plain"},
		{"byte order mark", schema.BOMPrefix + "UTC Timestamp,Skill,Kills,Deaths", "bom,1,1,1", "bom"},
		{"misdecoded mark", schema.MisdecodedPrefix + "UTC Timestamp,Skill,Kills,Deaths", "mis,1,1,1", "mis"},
		{"mark wins when set", schema.BOMPrefix + "UTC Timestamp,UTC Timestamp,Skill,Kills,Deaths", "bom,plain,1,1,1", "bom"},
		{"plain used when mark empty", schema.BOMPrefix + "UTC Timestamp,UTC Timestamp,Skill,Kills,Deaths", ",plain,1,1,1", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, _, err := ParseGameData(strings.NewReader(tt.header+"\n"+tt.row+"\n"), ParseOptions{})
			require.NoError(t, err)
			require.Len(t, ds, 1)
			_, ok := ds[tt.want]
			assert.True(t, ok, "expected key %q in %v", tt.want, ds.SortedKeys())
		})
	}

	t.Run("no timestamp column skips every row", func(t *testing.T) {
		ds, report, err := ParseGameData(strings.NewReader("Skill,Kills,Deaths\n1,1,1\n"), ParseOptions{})
		require.NoError(t, err)
		assert.Empty(t, ds)
		assert.Equal(t, 1, report.MissingTimestamp)
	})
}

func TestParseGameDataErrors(t *testing.T) {
	t.Run("missing required column", func(t *testing.T) {
		_, _, err := ParseGameData(strings.NewReader("UTC Timestamp,Skill,Kills\nt1,1,1\n"), ParseOptions{SkipMalformed: true})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingColumn)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 1, perr.Line)
		assert.Contains(t, err.Error(), "Deaths")
	})

	tests := []struct {
		name   string
		row    string
		column string
	}{
		{"bad skill", "t1,abc,1,1", schema.SkillColumn},
		{"bad kills", "t1,1.0,x,1", schema.KillsColumn},
		{"negative deaths", "t1,1.0,1,-2", schema.DeathsColumn},
		{"fractional kills", "t1,1.0,1.5,1", schema.KillsColumn},
		{"NaN skill", "t1,NaN,1,1", schema.SkillColumn},
		{"infinite skill", "t1,Inf,1,1", schema.SkillColumn},
		{"negative infinite skill", "t1,-Infinity,1,1", schema.SkillColumn},
	}
	for _, tt := range tests {
		t.Run(tt.name+" aborts", func(t *testing.T) {
			input := "UTC Timestamp,Skill,Kills,Deaths\nt0,1,1,1\n" + tt.row + "\n"
			_, _, err := ParseGameData(strings.NewReader(input), ParseOptions{})
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, 3, perr.Line)
			assert.Equal(t, tt.column, perr.Column)
		})

		t.Run(tt.name+" skipped", func(t *testing.T) {
			var skipped []*ParseError
			opts := ParseOptions{SkipMalformed: true, OnSkip: func(err *ParseError) { skipped = append(skipped, err) }}
			input := "UTC Timestamp,Skill,Kills,Deaths\nt0,1,1,1\n" + tt.row + "\n"
			ds, report, err := ParseGameData(strings.NewReader(input), opts)
			require.NoError(t, err)
			assert.Len(t, ds, 1)
			assert.Equal(t, 1, report.Malformed)
			require.Len(t, skipped, 1)
			assert.Equal(t, tt.column, skipped[0].Column)
		})
	}

	t.Run("non-finite skill wraps sentinel", func(t *testing.T) {
		_, _, err := ParseGameData(strings.NewReader("UTC Timestamp,Skill,Kills,Deaths\nt1, nan ,1,1\n"), ParseOptions{})
		assert.ErrorIs(t, err, ErrNotFinite)
		assert.Contains(t, err.Error(), `invalid value " nan "`)
	})
}

func TestReadGameData(t *testing.T) {
	t.Run("reads file from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "games.csv")
		require.NoError(t, os.WriteFile(path, []byte("UTC Timestamp,Skill,Kills,Deaths\nt1,1,2,1\n"), 0o644))
		ds, _, err := ReadGameData(path, ParseOptions{})
		require.NoError(t, err)
		assert.Equal(t, 2.0, ds["t1"].Ratio)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := ReadGameData(filepath.Join(t.TempDir(), "nope.csv"), ParseOptions{})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Line: 4, Column: "Kills", Value: "x", Err: assert.AnError}
	assert.Contains(t, err.Error(), "line 4")
	assert.Contains(t, err.Error(), `"Kills"`)
	assert.ErrorIs(t, err, assert.AnError)

	structural := &ParseError{Line: 1, Err: ErrMissingColumn}
	assert.Equal(t, "line 1: missing required column", structural.Error())
}
