package reports

import (
	"math"

	"code-time/internal/formatters"
	"code-time/internal/models"
)

// ReadableSummary is a TimeSummary with every duration also rendered as "{h}h {min}min {s}s".
//
// Example JSON:
//
//	{
//	  "totalMillis": 93784000,
//	  "windowSeconds": 86400,
//	  "windowMillis": 5400000,
//	  "dailyAverageMillis": 7214153.85,
//	  "windowLabel": "24h",
//	  "total": "26h 3min 4s",
//	  "window": "1h 30min 0s",
//	  "dailyAverage": "2h 0min 14s"
//	}
type ReadableSummary struct {
	models.TimeSummary
	WindowLabel  string `json:"windowLabel"`
	Total        string `json:"total"`
	Window       string `json:"window"`
	DailyAverage string `json:"dailyAverage"`
}

// NewReadableSummary formats summary. The daily average is rounded to the nearest ms first.
// A negative aggregate (possible when out-of-order leaves were paired) fails with a FormatError.
func NewReadableSummary(summary *models.TimeSummary) (*ReadableSummary, error) {
	total, err := formatters.MillisToReadable(summary.TotalMillis)
	if err != nil {
		return nil, err
	}
	window, err := formatters.MillisToReadable(summary.WindowMillis)
	if err != nil {
		return nil, err
	}
	dailyAverage, err := formatters.MillisToReadable(int64(math.Round(summary.DailyAverageMillis)))
	if err != nil {
		return nil, err
	}

	return &ReadableSummary{
		TimeSummary:  *summary,
		WindowLabel:  models.TrailingWindow{Seconds: summary.WindowSeconds}.Label(),
		Total:        total,
		Window:       window,
		DailyAverage: dailyAverage,
	}, nil
}
