package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	sessionsPerFile = 250           // Enter/leave pairs written per file
	sessionMillis   = 90_000        // Duration of every session (1min 30s)
	gapMillis       = 10_000        // Idle time between two sessions
	startMillis     = 1766944995000 // 2025-12-28T18:03:15Z, first enter
)

var files = []string{
	"/home/dev/project/main.go",
	"/home/dev/project/README.md",
	"/home/dev/project/internal/app/app.go",
	"/home/dev/project/go.mod",
}

// ### End - fixed configs

type summary struct {
	TotalMillis int64  `json:"totalMillis"`
	Total       string `json:"total"`
}

// main runs the e2e scenario: 001_concurrent_ingest
//
// This scenario writes one event log with sessionsPerFile enter/leave pairs per file,
// then fires concurrent POST /ingest calls at a running server whose ingestion.log_path
// points at the same file.
//
// What it tests:
//   - Event log consumption via POST /ingest
//   - Ingest jobs for one log path are serialized, so the log is consumed exactly once
//   - Pairing of enter/leave events into intervals
//   - Total time reported by GET /summary
//
// Expected results:
//   - Exactly one POST /ingest answers 200, every other call answers 204
//   - The event log file no longer exists
//   - totalMillis grows by len(files) * sessionsPerFile * sessionMillis (25h exactly)
func main() {
	// these configs can be changed to run the scenario
	baseURL := getEnv("BASE_URL", "http://localhost:8080") // Base URL of the code-time service
	logPath := getEnv("EVENT_LOG_PATH", ".tmp/e2e/.time")  // Must match ingestion.log_path of the server
	parallel := getEnvInt("PARALLEL", 8)                   // Number of concurrent POST /ingest calls
	wantCleanLog := getEnvBool("WANT_CLEAN_LOG", true)     // If true, remove a leftover event log before writing

	logPath, err := filepath.Abs(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to resolve event log path: %v\n", err)
		os.Exit(1)
	}

	if wantCleanLog {
		if err := os.Remove(logPath); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to remove leftover event log: %v\n", err)
		}
	}

	fmt.Println("Starting e2e scenario: 001_concurrent_ingest")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("EVENT_LOG_PATH: %s\n", logPath)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("SESSIONS: %d\n", sessionsPerFile*len(files))
	fmt.Println()

	before, err := fetchSummary(baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to fetch summary: %v\n", err)
		os.Exit(1)
	}

	if err := writeEventLog(logPath); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write event log: %v\n", err)
		os.Exit(1)
	}

	var wg sync.WaitGroup
	var okRequest int64        // 200 status code
	var noContentRequest int64 // 204 status code
	var failedRequest int64    // anything else

	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			statusCode, err := postIngest(baseURL)
			switch {
			case err != nil:
				atomic.AddInt64(&failedRequest, 1)
				fmt.Fprintf(os.Stderr, "ERROR: Ingest %d failed: %v\n", i, err)
			case statusCode == http.StatusOK:
				atomic.AddInt64(&okRequest, 1)
			case statusCode == http.StatusNoContent:
				atomic.AddInt64(&noContentRequest, 1)
			default:
				atomic.AddInt64(&failedRequest, 1)
				fmt.Fprintf(os.Stderr, "ERROR: Ingest %d answered status %d\n", i, statusCode)
			}
		}(i)
	}
	wg.Wait()

	after, err := fetchSummary(baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to fetch summary: %v\n", err)
		os.Exit(1)
	}

	expectedDelta := int64(len(files)) * sessionsPerFile * sessionMillis
	delta := after.TotalMillis - before.TotalMillis

	fmt.Println("=== Statistics ===")
	fmt.Printf("OK request: %d\n", okRequest)
	fmt.Printf("No content request: %d\n", noContentRequest)
	fmt.Printf("Failed request: %d\n", failedRequest)
	fmt.Printf("Total before: %s\n", before.Total)
	fmt.Printf("Total after: %s\n", after.Total)
	fmt.Printf("Added millis: %d (expected %d)\n", delta, expectedDelta)
	fmt.Println()

	if failedRequest > 0 || okRequest != 1 || noContentRequest != int64(parallel-1) {
		fmt.Fprintf(os.Stderr, "ERROR: expected exactly one 200 and %d 204 answers\n", parallel-1)
		os.Exit(1)
	}
	if delta != expectedDelta {
		fmt.Fprintf(os.Stderr, "ERROR: total grew by %dms, expected %dms\n", delta, expectedDelta)
		os.Exit(1)
	}
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "ERROR: event log %s was not consumed\n", logPath)
		os.Exit(1)
	}

	fmt.Println("Scenario completed successfully")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// writeEventLog interleaves files round-robin so that every leave closes the enter just before it.
func writeEventLog(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var b strings.Builder
	ts := int64(startMillis)
	for session := 0; session < sessionsPerFile; session++ {
		for _, file := range files {
			fmt.Fprintf(&b, "enter %d %q\n", ts, file)
			ts += sessionMillis
			fmt.Fprintf(&b, "leave %d %q\n", ts, file)
			ts += gapMillis
		}
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func postIngest(baseURL string) (int, error) {
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Post(baseURL+"/ingest", "application/json", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func fetchSummary(baseURL string) (*summary, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(baseURL + "/summary")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var s summary
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode summary: %w", err)
	}
	return &s, nil
}
