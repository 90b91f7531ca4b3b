package models

// TimeSummary carries the three read-side aggregates computed over the stored intervals.
//
// Example JSON:
//
//	{
//	  "totalMillis": 93784000,
//	  "windowSeconds": 86400,
//	  "windowMillis": 5400000,
//	  "dailyAverageMillis": 7214153.85
//	}
type TimeSummary struct {
	TotalMillis        int64   `json:"totalMillis"`
	WindowSeconds      int64   `json:"windowSeconds"`
	WindowMillis       int64   `json:"windowMillis"`
	DailyAverageMillis float64 `json:"dailyAverageMillis"`
}
