package netsync

import (
	"fmt"

	"tunesync/internal/observe"
)

// Level indicates the severity/type of an emitted log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
)

// Line is one human-readable log line produced by the outbound stub.
type Line struct {
	Message string
	Level   Level
}

// Event is one outbound field change: which field changed, and its new
// value. This is the payload a real transport would serialize and send to
// the remote peer.
type Event struct {
	Ref   observe.Ref
	Value any
}

// String renders the event as a single debug line.
func (e Event) String() string {
	return fmt.Sprintf("%s = %v", e.Ref, e.Value)
}

// Sender receives outbound field changes.
//
// Send is fire-and-forget: no return value, called synchronously from
// within the update protocol. This interface is the sole extension point
// for substituting a real network transport.
type Sender interface {
	Send(Event)
}

// LogSender is the stub transport: it emits one debug line per event
// through a callback, standing in for a real network send.
//
// The callback style matches how the rest of the application surfaces
// progress: the CLI prints lines, the TUI appends them to its log pane.
//
// Example:
//
//	out := netsync.NewLogSender(func(line netsync.Line) {
//	    fmt.Println(line.Message)
//	})
type LogSender struct {
	onLine func(Line)
}

// NewLogSender creates a LogSender emitting through onLine. A nil callback
// discards lines, which makes a detached sender safe to use in tests.
func NewLogSender(onLine func(Line)) *LogSender {
	return &LogSender{onLine: onLine}
}

// Send implements Sender by formatting the event as a debug line.
func (s *LogSender) Send(e Event) {
	if s.onLine == nil {
		return
	}
	s.onLine(Line{Message: "outbound " + e.String(), Level: LevelDebug})
}

// Recorder is a Sender that captures events in order, for tests.
type Recorder struct {
	Events []Event
}

// Send implements Sender.
func (r *Recorder) Send(e Event) {
	r.Events = append(r.Events, e)
}
