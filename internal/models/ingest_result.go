package models

// IngestResult describes one completed ingestion run.
type IngestResult struct {
	RunID         string `json:"runId"`
	EventCount    int    `json:"eventCount"`
	IntervalCount int    `json:"intervalCount"`
	ArchiveKey    string `json:"archiveKey,omitempty"`
}
