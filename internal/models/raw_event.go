package models

// EventKind is the lowercase word leading a raw event log line.
type EventKind string

const (
	EventEnter EventKind = "enter"
	EventLeave EventKind = "leave"
)

// RawEvent is one parsed line of the editor event log, e.g.
//
//	enter 1735408983000 "/home/dev/project/main.go"
//
// Raw events only live in the store for the duration of one ingestion run.
// Kind is kept as written; anything other than enter/leave is rejected when pairing.
type RawEvent struct {
	Kind      EventKind `bson:"event" json:"event"`
	Timestamp int64     `bson:"timestamp" json:"timestamp"` // ms since epoch
	File      string    `bson:"file" json:"file"`
}
