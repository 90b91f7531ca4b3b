package formatters

import "fmt"

const (
	millisPerSecond = 1000
	secondsPerMin   = 60
	minsPerHour     = 60
)

// MillisToReadable renders a millisecond duration as "{h}h {min}min {s}s", e.g. 3723000 -> "1h 2min 3s".
// Values are truncated, never rounded, and hours are not capped at 24.
func MillisToReadable(ms int64) (string, error) {
	if ms < 0 {
		return "", errNegativeDuration(ms)
	}

	seconds := ms / millisPerSecond
	minutes := seconds / secondsPerMin
	hours := minutes / minsPerHour

	return fmt.Sprintf("%dh %dmin %ds", hours, minutes%minsPerHour, seconds%secondsPerMin), nil
}
