package ingestors

import (
	"regexp"
	"strconv"

	"code-time/internal/models"
)

// eventLinePattern matches `<kind> <timestamp_ms> "<file>"`. It is applied to the whole
// content, so text that does not match anywhere is skipped rather than rejected.
var eventLinePattern = regexp.MustCompile(`([a-z]*) (\d*) "(.*)"`)

type EventLogParser interface {
	// Parse calls fn with one raw event per match, in log order. Each timestamp is parsed
	// just before its event is handed to fn, so events ahead of a bad timestamp have
	// already been delivered when ING_2000 is returned. An error from fn stops parsing
	// and is returned as is.
	Parse(content string, fn func(event *models.RawEvent) error) error
}

type eventLogParser struct{}

func NewEventLogParser() EventLogParser {
	return &eventLogParser{}
}

func (p *eventLogParser) Parse(content string, fn func(event *models.RawEvent) error) error {
	for _, match := range eventLinePattern.FindAllStringSubmatch(content, -1) {
		timestamp, err := strconv.ParseInt(match[2], 10, 64)
		if err != nil {
			return errTimestampInvalid(match[2], err)
		}
		event := &models.RawEvent{
			Kind:      models.EventKind(match[1]),
			Timestamp: timestamp,
			File:      match[3],
		}
		if err := fn(event); err != nil {
			return err
		}
	}
	return nil
}
