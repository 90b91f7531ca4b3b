package events

import "time"

// IngestJobEvent asks the ingestion workers to consume one event log.
//
// Example JSON:
//
//	{
//	  "jobId": "01HZX3NDEKTSV4RRFFQ69G5FAV",
//	  "logPath": "/home/dev/.time",
//	  "requestedAt": "2025-12-28T18:03:15Z"
//	}
//
// Jobs for the same log path always land on the same worker, so one file is never
// consumed by two runs at once.
type IngestJobEvent struct {
	JobID       string    `json:"jobId"`
	LogPath     string    `json:"logPath"`
	RequestedAt time.Time `json:"requestedAt"`
}

// PartitionKey routes the job. It is the log path.
func (e IngestJobEvent) PartitionKey() string {
	return e.LogPath
}
