package enum

import "testing"

func TestStreamingDataTypeRoundTrip(t *testing.T) {
	types := []StreamingDataType{
		DataTypeQuote, DataTypeTrade, DataTypeSummary, DataTypeTimesale,
		DataTypeTradex, DataTypeOrder, DataTypeJournal, DataTypeFill,
	}
	for _, ty := range types {
		if got := ParseStreamingDataType(ty.String()); got != ty {
			t.Errorf("round trip failed for %q: got %q", ty, got)
		}
	}
}

func TestStreamingDataTypeDefaultsOnUnknown(t *testing.T) {
	if got := ParseStreamingDataType("unknown_frame_type"); got != DataTypeQuote {
		t.Errorf("expected DataTypeQuote default, got %q", got)
	}
}

func TestConnectionStateStringForm(t *testing.T) {
	if StateDisconnected.String() != "disconnected" {
		t.Errorf("unexpected string form: %q", StateDisconnected.String())
	}
	if StateError.String() != "error" {
		t.Errorf("unexpected string form: %q", StateError.String())
	}
}
