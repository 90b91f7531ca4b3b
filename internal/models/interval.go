package models

import "time"

// dayKeyLayout buckets intervals by calendar day (UTC).
const dayKeyLayout = "2006-01-02"

// Interval is one paired enter/leave session on a file. Intervals are immutable once stored.
//
// Example JSON:
//
//	{
//	  "begin": 1735408983000,
//	  "duration": 754000,
//	  "file": "/home/dev/project/main.go"
//	}
//
// Duration is not guaranteed to be non-negative: a leave whose timestamp precedes the
// pending enter still pairs and yields a negative duration.
type Interval struct {
	Begin    int64  `bson:"begin" json:"begin"`       // ms since epoch
	Duration int64  `bson:"duration" json:"duration"` // ms
	File     string `bson:"file" json:"file"`
}

// BeginTime returns Begin as a UTC time.
func (i Interval) BeginTime() time.Time {
	return time.UnixMilli(i.Begin).UTC()
}

// DayKey returns the UTC calendar day of Begin, formatted YYYY-MM-DD.
func (i Interval) DayKey() string {
	return DayKey(i.Begin)
}

// DayKey returns the UTC calendar day of a ms timestamp, formatted YYYY-MM-DD.
func DayKey(millis int64) string {
	return time.UnixMilli(millis).UTC().Format(dayKeyLayout)
}
