package ingestors

import (
	"code-time/internal/models"
)

// PairingState is the single pending-enter slot carried across the ordered event scan.
// The zero value is the initial state: timestamp 0 on the empty file name.
type PairingState struct {
	PendingTimestamp int64
	PendingFile      string
}

// Reduce folds one event into the state.
//
//   - enter replaces the pending slot, whatever it held.
//   - leave on the pending file emits an interval and keeps the slot, so a repeated leave
//     emits again. A leave on any other file is dropped.
//   - any other kind is a parse error.
func Reduce(state PairingState, event *models.RawEvent) (PairingState, *models.Interval, error) {
	switch event.Kind {
	case models.EventEnter:
		return PairingState{PendingTimestamp: event.Timestamp, PendingFile: event.File}, nil, nil
	case models.EventLeave:
		if event.File != state.PendingFile {
			return state, nil, nil
		}
		return state, &models.Interval{
			Begin:    state.PendingTimestamp,
			Duration: event.Timestamp - state.PendingTimestamp,
			File:     event.File,
		}, nil
	}
	return state, nil, errUnknownEventKind(string(event.Kind))
}
