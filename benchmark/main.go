// Package main provides a performance benchmarking tool for the Parley CLI.
// It measures session scoring times across different session sizes and worker
// counts against a local stub embedding service, running each configuration
// multiple times and averaging the results, generating CSV output for
// performance analysis and documentation.
//
// Prerequisites:
// - parley binary installed and available in PATH
//
// Usage: go run benchmark/main.go
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the averaged timing for one configuration.
type BenchmarkResult struct {
	Questions int
	Workers   int
	Backend   string
	AvgTime   string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Timeout      time.Duration
	Runs         int
	SessionSizes []int
	WorkerCounts []int
	Backends     []string
}

func main() {
	config := BenchmarkConfig{
		Timeout:      2 * time.Minute,
		Runs:         3,
		SessionSizes: []int{4, 16, 64},
		WorkerCounts: []int{1, 4, 8},
		Backends:     []string{"none", "sqlite"},
	}

	if _, err := exec.LookPath("parley"); err != nil {
		fmt.Println("Prerequisites check failed: parley binary not found in PATH")
		os.Exit(1)
	}

	// Stub embedding service so benchmarks measure parley, not a model
	embedServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"embeddings": [][]float64{{0.1, 0.2, 0.3}},
		})
	}))
	defer embedServer.Close()

	workDir, err := os.MkdirTemp("", "parley-benchmark-*")
	if err != nil {
		fmt.Printf("Failed to create work dir: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	results := runBenchmarks(config, embedServer.URL, workDir)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// runBenchmarks executes all benchmark configurations.
func runBenchmarks(config BenchmarkConfig, embedURL, workDir string) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: sizes %v, workers %v, backends %v, %d runs each\n",
		config.SessionSizes, config.WorkerCounts, config.Backends, config.Runs)

	for _, size := range config.SessionSizes {
		inputPath, err := writeSessionFile(workDir, size)
		if err != nil {
			fmt.Printf("Failed to write session input: %v\n", err)
			os.Exit(1)
		}

		for _, backend := range config.Backends {
			for _, workers := range config.WorkerCounts {
				fmt.Printf("Benchmarking %d questions, %d workers, %s backend\n", size, workers, backend)
				avg := runBenchmark(config, inputPath, embedURL, workDir, backend, workers)
				results = append(results, BenchmarkResult{
					Questions: size,
					Workers:   workers,
					Backend:   backend,
					AvgTime:   avg,
				})
			}
		}
	}

	return results
}

// writeSessionFile generates a session input of the given size.
func writeSessionFile(workDir string, questions int) (string, error) {
	type exchange struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}

	answer := strings.Repeat("In that situation my task was clear and the result spoke for itself. ", 10)
	exchanges := make([]exchange, questions)
	for i := range exchanges {
		exchanges[i] = exchange{
			Question: fmt.Sprintf("Benchmark question %d: describe a project you led.", i+1),
			Answer:   answer,
		}
	}

	data, err := json.Marshal(exchanges)
	if err != nil {
		return "", err
	}

	path := filepath.Join(workDir, fmt.Sprintf("session_%d.json", questions))
	return path, os.WriteFile(path, data, 0o600)
}

// runBenchmark executes a parley session multiple times and returns the average duration.
func runBenchmark(config BenchmarkConfig, inputPath, embedURL, workDir, backend string, workers int) string {
	args := []string{
		"session",
		"--input", inputPath,
		"--embed-url", embedURL,
		"--history-backend", backend,
		"--workers", strconv.Itoa(workers),
		"--width", "120",
	}
	if backend == "sqlite" {
		args = append(args, "--history-db-connect", filepath.Join(workDir, "benchmark_history.db"))
	}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("parley", args...)

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

	if len(times) == 0 {
		return "TIMEOUT"
	}
	var sum float64
	for _, t := range times {
		sum += t
	}
	return fmt.Sprintf("%.3fs", sum/float64(len(times)))
}

// isSuccess checks if command output indicates successful completion.
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Scored") &&
		strings.Contains(outputStr, "workers") &&
		strings.Contains(outputStr, "Overall Performance:")
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/parley_benchmark_%s.csv", timestamp)

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

	// Write header
	if err := writer.Write([]string{"questions", "workers", "backend", "avg_time"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		record := []string{
			strconv.Itoa(result.Questions),
			strconv.Itoa(result.Workers),
			result.Backend,
			result.AvgTime,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %3d questions, %2d workers, %-6s backend: %s\n",
			result.Questions, result.Workers, result.Backend, result.AvgTime)
	}
	fmt.Printf("Benchmark script completed successfully\n")
}
