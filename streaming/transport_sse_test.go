package streaming

import (
	"testing"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/go-tradier/tradier-go/streaming/messages"
)

// spec §8 scenario 4: a heartbeat event is consumed silently and never
// reaches the data callback.
func TestSSEHeartbeatIsSuppressed(t *testing.T) {
	s := NewSession(nil, nil)
	var got []messages.Frame
	s.setCallbacks(func(f messages.Frame, _ cloudevents.Event) { got = append(got, f) }, nil)

	var ev sseEvent
	for _, line := range []string{"event: heartbeat", "data: {}", ""} {
		s.feedSSELine(&ev, line)
	}
	if len(got) != 0 {
		t.Fatalf("expected no dispatched frames for a heartbeat event, got %d", len(got))
	}
}

// A "session" event updates the session's sessionID rather than dispatching
// a data frame.
func TestSSESessionEventRefreshesSessionID(t *testing.T) {
	s := NewSession(nil, nil)
	var got []messages.Frame
	s.setCallbacks(func(f messages.Frame, _ cloudevents.Event) { got = append(got, f) }, nil)

	var ev sseEvent
	for _, line := range []string{"event: session", `data: {"sessionid":"abc-123"}`, ""} {
		s.feedSSELine(&ev, line)
	}
	if len(got) != 0 {
		t.Fatalf("expected no dispatched frames for a session event, got %d", len(got))
	}
	s.mu.Lock()
	id := s.sessionID
	s.mu.Unlock()
	if id != "abc-123" {
		t.Errorf("sessionID = %q, want %q", id, "abc-123")
	}
}

// An ordinary message-event (no event: line, per the SSE default) with a
// data payload dispatches exactly one frame.
func TestSSEOrdinaryEventDispatchesOneFrame(t *testing.T) {
	s := NewSession(nil, nil)
	var got []messages.Frame
	s.setCallbacks(func(f messages.Frame, _ cloudevents.Event) { got = append(got, f) }, nil)

	var ev sseEvent
	for _, line := range []string{`data: {"symbol":"AAPL","bid":150.1,"ask":150.2}`, ""} {
		s.feedSSELine(&ev, line)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 dispatched frame, got %d", len(got))
	}
}

// Multi-line data: fields join with a newline before the event dispatches,
// per the SSE grammar.
func TestSSEMultilineDataJoinsWithNewline(t *testing.T) {
	var ev sseEvent
	s := NewSession(nil, nil)
	for _, line := range []string{"data: line one", "data: line two"} {
		s.feedSSELine(&ev, line)
	}
	if ev.data.String() != "line one\nline two" {
		t.Errorf("joined data = %q, want %q", ev.data.String(), "line one\nline two")
	}
}
