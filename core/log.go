package core

import "fmt"

// LogSink receives diagnostic messages from the core. Implementations must
// not call back into the core from Log.
type LogSink interface {
	Log(msg string)
}

// sink is process-wide optional state. All core diagnostics are dropped
// while it is unset.
var sink LogSink

// SetLogSink installs the diagnostic sink.
func SetLogSink(s LogSink) {
	sink = s
}

// ClearLogSink removes the installed sink, if any.
func ClearLogSink() {
	sink = nil
}

// logf formats and forwards a diagnostic line to the installed sink.
func logf(format string, args ...any) {
	if sink == nil {
		return
	}
	sink.Log(fmt.Sprintf(format, args...))
}
