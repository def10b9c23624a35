package enum

// StreamingDataType discriminates decoded streaming frames. It is derived
// from the frame's own "type" field when present, or from a small set of
// field-presence heuristics when the server omits it (see streaming/messages).
type StreamingDataType string

// Values for StreamingDataType. DataTypeQuote is the zero-variant default
// since quote frames are by far the most common on the market stream.
const (
	DataTypeQuote    StreamingDataType = "quote"
	DataTypeTrade    StreamingDataType = "trade"
	DataTypeSummary  StreamingDataType = "summary"
	DataTypeTimesale StreamingDataType = "timesale"
	DataTypeTradex   StreamingDataType = "tradex"
	DataTypeOrder    StreamingDataType = "order"
	DataTypeJournal  StreamingDataType = "journal"
	DataTypeFill     StreamingDataType = "fill"
)

// String returns the canonical wire form of the data type.
func (t StreamingDataType) String() string { return string(t) }

// ParseStreamingDataType parses the canonical wire form, defaulting to
// DataTypeQuote for anything unrecognized.
func ParseStreamingDataType(s string) StreamingDataType {
	switch StreamingDataType(s) {
	case DataTypeQuote, DataTypeTrade, DataTypeSummary, DataTypeTimesale, DataTypeTradex, DataTypeOrder, DataTypeJournal, DataTypeFill:
		return StreamingDataType(s)
	default:
		return DataTypeQuote
	}
}

// ConnectionState is the lifecycle state of a streaming session, driven by
// the reconnect state machine in package streaming.
type ConnectionState string

// Values for ConnectionState. StateDisconnected is the zero-variant default
// and the state a freshly constructed session starts in.
const (
	StateDisconnected ConnectionState = "disconnected"
	StateConnecting   ConnectionState = "connecting"
	StateConnected    ConnectionState = "connected"
	StateReconnecting ConnectionState = "reconnecting"
	StateClosed       ConnectionState = "closed"
	StateError        ConnectionState = "error"
)

// String returns the canonical string form of the connection state.
func (s ConnectionState) String() string { return string(s) }
