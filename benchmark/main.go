// Package main provides a performance benchmarking tool for the kdstats CLI.
// It generates synthetic game exports of increasing size, runs kdstats on each
// several times, treats the first successful run as cold and averages the rest as warm,
// and writes the timings to CSV.
//
// Prerequisites:
// - kdstats binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for generated inputs and reports (default: a temp dir)
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the timings for one input size.
type BenchmarkResult struct {
	Rows     int
	Pages    int
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir     string
	Timeout     time.Duration
	Runs        int
	RowsPerPage int
	Sizes       []int
}

func main() {
	if len(os.Args) > 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	workDir := ""
	if len(os.Args) == 2 {
		workDir = os.Args[1]
	} else {
		dir, err := os.MkdirTemp("", "kdstats-benchmark-*")
		if err != nil {
			fmt.Printf("Failed to create work dir: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = os.RemoveAll(dir) }()
		workDir = dir
	}

	config := BenchmarkConfig{
		WorkDir:     workDir,
		Timeout:     2 * time.Minute,
		Runs:        4,
		RowsPerPage: 40,
		Sizes:       []int{100, 1000, 10000, 50000},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the kdstats binary and the work dir exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("kdstats"); err != nil {
		return fmt.Errorf("kdstats binary not found in PATH")
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("work dir %s is not usable: %w", config.WorkDir, err)
	}
	return nil
}

// runBenchmarks generates an input per size and times kdstats on it
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d sizes, %v timeout, %d runs each\n", len(config.Sizes), config.Timeout, config.Runs)

	for _, rows := range config.Sizes {
		inputPath := filepath.Join(config.WorkDir, fmt.Sprintf("games_%d.csv", rows))
		if err := generateInput(inputPath, rows); err != nil {
			fmt.Printf("Skipping %d rows: %v\n", rows, err)
			continue
		}

		fmt.Printf("Benchmarking %d rows\n", rows)
		cold, warm := runBenchmark(config, inputPath, rows)
		coldTimeStr := "TIMEOUT"
		if cold > 0 {
			coldTimeStr = fmt.Sprintf("%.3fs", cold)
		}
		warmAvg := "TIMEOUT"
		if len(warm) > 0 {
			var sum float64
			for _, t := range warm {
				sum += t
			}
			warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warm)))
		}
		fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)

		results = append(results, BenchmarkResult{
			Rows:     rows,
			Pages:    (rows + config.RowsPerPage - 1) / config.RowsPerPage,
			ColdTime: coldTimeStr,
			WarmTime: warmAvg,
		})
	}

	return results
}

// generateInput writes a synthetic export with the given number of sessions
func generateInput(path string, rows int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	rng := rand.New(rand.NewPCG(uint64(rows), 42))
	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"\ufeffUTC Timestamp", "Skill", "Kills", "Deaths"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range rows {
		record := []string{
			start.Add(time.Duration(i) * 17 * time.Minute).Format("2006-01-02 15:04:05"),
			strconv.FormatFloat(rng.NormFloat64()*0.4+1.5, 'f', 4, 64),
			strconv.Itoa(rng.IntN(30)),
			strconv.Itoa(rng.IntN(25)),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// runBenchmark executes kdstats multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, inputPath string, rows int) (coldTime float64, warmTimes []float64) {
	outputDir := filepath.Join(config.WorkDir, fmt.Sprintf("output_%d", rows))

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("kdstats", inputPath)
		cmd.Env = append(os.Environ(),
			"KDSTATS_OUTPUT_DIR="+outputDir,
			"KDSTATS_SUMMARY=no",
			"KDSTATS_COLOR=no",
			"KDSTATS_ROWS_PER_PAGE="+strconv.Itoa(config.RowsPerPage),
		)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates both documents were written
func isSuccess(output []byte) bool {
	return strings.Count(string(output), "PDF saved as") == 2
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("kdstats_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"rows", "pages", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{strconv.Itoa(result.Rows), strconv.Itoa(result.Pages), result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %6d rows (%4d pages): Cold: %s, Warm: %s\n", result.Rows, result.Pages, result.ColdTime, result.WarmTime)
	}
}
