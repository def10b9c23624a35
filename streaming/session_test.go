package streaming

import (
	"testing"

	"github.com/go-tradier/tradier-go/enum"
)

// Stop on a freshly constructed, never-started session must not panic and
// must leave the session in the Disconnected state.
func TestStopOnFreshSessionIsIdempotent(t *testing.T) {
	s := NewSession(nil, nil)
	s.Stop()
	s.Stop()
	if s.State() != enum.StateDisconnected {
		t.Errorf("State() = %v, want %v", s.State(), enum.StateDisconnected)
	}
}

// AddSymbols/RemoveSymbols mutate the subscription set even with no
// WebSocket transport attached (sendUpdate nil), and the change is
// reflected in symbolSnapshot for the next (re)connect.
func TestAddRemoveSymbolsPersistAcrossNoActiveTransport(t *testing.T) {
	s := NewSession(nil, nil)
	if err := s.AddSymbols([]string{"AAPL", "MSFT"}); err != nil {
		t.Fatalf("AddSymbols: %v", err)
	}
	snap := s.symbolSnapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 symbols, got %v", snap)
	}
	if err := s.RemoveSymbols([]string{"MSFT"}); err != nil {
		t.Fatalf("RemoveSymbols: %v", err)
	}
	snap = s.symbolSnapshot()
	if len(snap) != 1 || snap[0] != "AAPL" {
		t.Fatalf("expected [AAPL] after removal, got %v", snap)
	}
}

// A data filter restricts which data types shouldDispatch admits.
func TestDataFilterRestrictsDispatch(t *testing.T) {
	s := NewSession(nil, nil)
	if !s.shouldDispatch(enum.DataTypeQuote) {
		t.Fatal("expected no filter to admit every data type")
	}
	s.SetDataFilter([]enum.StreamingDataType{enum.DataTypeTrade})
	if s.shouldDispatch(enum.DataTypeQuote) {
		t.Error("expected quote frames to be excluded once filter is set to trade-only")
	}
	if !s.shouldDispatch(enum.DataTypeTrade) {
		t.Error("expected trade frames to pass the trade-only filter")
	}
	s.ClearDataFilter()
	if !s.shouldDispatch(enum.DataTypeQuote) {
		t.Error("expected clearing the filter to re-admit quote frames")
	}
}
