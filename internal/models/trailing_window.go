package models

import (
	"fmt"
	"time"
)

// TrailingWindow is the range [now - Seconds, now] used by the windowed total.
type TrailingWindow struct {
	Seconds int64
}

func NewTrailingWindow(seconds int64) (TrailingWindow, error) {
	if seconds < 0 {
		return TrailingWindow{}, fmt.Errorf("invalid trailing window: %d seconds", seconds)
	}
	return TrailingWindow{Seconds: seconds}, nil
}

// Since returns the lower bound of the window in ms. The current time is truncated to whole
// seconds before the window is subtracted, so the bound always falls on a second boundary.
func (w TrailingWindow) Since(now time.Time) int64 {
	return (now.Unix() - w.Seconds) * 1000
}

// Label renders the window for reports: "24h" for whole hours, "90min" for whole minutes, "45s" otherwise.
func (w TrailingWindow) Label() string {
	switch {
	case w.Seconds > 0 && w.Seconds%3600 == 0:
		return fmt.Sprintf("%dh", w.Seconds/3600)
	case w.Seconds > 0 && w.Seconds%60 == 0:
		return fmt.Sprintf("%dmin", w.Seconds/60)
	default:
		return fmt.Sprintf("%ds", w.Seconds)
	}
}
