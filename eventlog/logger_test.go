package eventlog

import (
	"strings"
	"testing"
)

func TestMemoryLoggerSequencesEvents(t *testing.T) {
	l := NewMemoryLogger()
	l.Record(NewDrawEvent(1, "A", "Scrap Rat"))
	l.Record(NewDrawEvent(1, "B", "Gutter Hound"))

	events := l.Events()
	if len(events) != 2 {
		t.Fatalf("recorded %d events, want 2", len(events))
	}
	if events[0].Seq != 1 || events[1].Seq != 2 {
		t.Errorf("sequence numbers = %d, %d, want 1, 2", events[0].Seq, events[1].Seq)
	}
}

func TestEventsOfType(t *testing.T) {
	l := NewMemoryLogger()
	l.Record(NewDrawEvent(1, "A", "Scrap Rat"))
	l.Record(NewDeathEvent(2, "Scrap Rat"))
	l.Record(NewDrawEvent(2, "B", "Gutter Hound"))

	draws := l.EventsOfType(EventDraw)
	if len(draws) != 2 {
		t.Fatalf("found %d draw events, want 2", len(draws))
	}
	if draws[1].Card != "Gutter Hound" {
		t.Errorf("second draw card = %q, want Gutter Hound", draws[1].Card)
	}
}

func TestLastEvent(t *testing.T) {
	l := NewMemoryLogger()
	if got := l.LastEvent(); got.Type != EventDiagnostic || got.Seq != 0 {
		t.Errorf("LastEvent on empty logger = %+v, want zero event", got)
	}
	l.Record(NewVictoryEvent(3, "A"))
	if got := l.LastEvent(); got.Type != EventVictory {
		t.Errorf("LastEvent type = %v, want Victory", got.Type)
	}
}

func TestLogSinkAdapter(t *testing.T) {
	l := NewMemoryLogger()
	l.Log("deck: draw from empty deck")

	diags := l.EventsOfType(EventDiagnostic)
	if len(diags) != 1 {
		t.Fatalf("found %d diagnostic events, want 1", len(diags))
	}
	if diags[0].Details != "deck: draw from empty deck" {
		t.Errorf("diagnostic details = %q", diags[0].Details)
	}
}

func TestTextLoggerWritesLines(t *testing.T) {
	var sb strings.Builder
	l := NewTextLogger(&sb)
	l.Record(NewRoundStartEvent(1, "A"))
	l.Record(NewDrawEvent(1, "A", "Scrap Rat"))

	out := sb.String()
	if !strings.Contains(out, "A draws Scrap Rat") {
		t.Errorf("output missing draw line:\n%s", out)
	}
	if len(l.Events()) != 2 {
		t.Errorf("text logger kept %d events in memory, want 2", len(l.Events()))
	}
	if !strings.HasPrefix(out, "R1 ") {
		t.Errorf("line not prefixed with round: %q", out)
	}
}
