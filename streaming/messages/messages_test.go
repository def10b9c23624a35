package messages

import (
	"encoding/json"
	"testing"

	"github.com/go-tradier/tradier-go/enum"
)

func TestDetermineDataTypeUsesExplicitTypeField(t *testing.T) {
	got := DetermineDataType(json.RawMessage(`{"type":"trade","symbol":"AAPL"}`))
	if got != enum.DataTypeTrade {
		t.Errorf("got %v, want %v", got, enum.DataTypeTrade)
	}
}

func TestDetermineDataTypeFallsBackToOrderIDHeuristic(t *testing.T) {
	got := DetermineDataType(json.RawMessage(`{"order_id":"123","status":"filled"}`))
	if got != enum.DataTypeOrder {
		t.Errorf("got %v, want %v", got, enum.DataTypeOrder)
	}
}

func TestDetermineDataTypeFallsBackToBidHeuristic(t *testing.T) {
	got := DetermineDataType(json.RawMessage(`{"symbol":"AAPL","bid":150.1,"ask":150.2}`))
	if got != enum.DataTypeQuote {
		t.Errorf("got %v, want %v", got, enum.DataTypeQuote)
	}
}

func TestDetermineDataTypeFallsBackToPriceSizeHeuristic(t *testing.T) {
	got := DetermineDataType(json.RawMessage(`{"symbol":"AAPL","price":150.1,"size":100}`))
	if got != enum.DataTypeTrade {
		t.Errorf("got %v, want %v", got, enum.DataTypeTrade)
	}
}

func TestDetermineDataTypeDefaultsToQuoteOnUnrecognizedShape(t *testing.T) {
	got := DetermineDataType(json.RawMessage(`{"symbol":"AAPL"}`))
	if got != enum.DataTypeQuote {
		t.Errorf("got %v, want %v", got, enum.DataTypeQuote)
	}
}

func TestNewFrameRoundTripsRawBytes(t *testing.T) {
	raw := json.RawMessage(`{"symbol":"AAPL","price":150.1,"size":100}`)
	frame := NewFrame(raw)
	if frame.DataType != enum.DataTypeTrade {
		t.Errorf("DataType = %v, want %v", frame.DataType, enum.DataTypeTrade)
	}
	if string(frame.Raw) != string(raw) {
		t.Errorf("Raw = %s, want %s", frame.Raw, raw)
	}
}
