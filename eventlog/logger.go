package eventlog

import (
	"fmt"
	"io"
	"strings"
)

// Logger is the interface for recording match events.
type Logger interface {
	Record(event Event)
	Events() []Event
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []Event
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Record(event Event) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []Event {
	return l.events
}

// Log implements core.LogSink: core diagnostics land in the same stream as
// game events.
func (l *MemoryLogger) Log(msg string) {
	l.Record(Event{Type: EventDiagnostic, Details: msg})
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []Event {
	var result []Event
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() Event {
	if len(l.events) == 0 {
		return Event{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Record(event Event) {
	l.MemoryLogger.Record(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

func (l *TextLogger) Log(msg string) {
	l.Record(Event{Type: EventDiagnostic, Details: msg})
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e Event) string {
	kind := e.Type.String()
	// Pad kind to 12 chars for alignment
	for len(kind) < 12 {
		kind += " "
	}
	return fmt.Sprintf("R%-2d %s| %s", e.Round, kind, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}
