// Package messages holds the streaming frame types and the type-discrimination
// heuristic of spec §4.K, grounded on original_source/include/oqdTradierpp/streaming.hpp's
// StreamingQuote/StreamingTrade/StreamingSummary/StreamingOrderStatus structs
// and on determine_data_type's field-presence fallback.
package messages

import (
	"encoding/json"
	"fmt"

	"github.com/go-tradier/tradier-go/enum"
	"github.com/shopspring/decimal"
)

// Quote is a decoded market-stream quote frame.
type Quote struct {
	Symbol   string          `json:"symbol"`
	Bid      decimal.Decimal `json:"bid"`
	Ask      decimal.Decimal `json:"ask"`
	Last     decimal.Decimal `json:"last"`
	BidSize  int64           `json:"bidsz"`
	AskSize  int64           `json:"asksz"`
	LastSize int64           `json:"size"`
	BidExch  string          `json:"bidexch"`
	AskExch  string          `json:"askexch"`
}

// Trade is a decoded market-stream trade frame.
type Trade struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
	Size   int64           `json:"size"`
	Exch   string          `json:"exch"`
	Cvol   string          `json:"cvol"`
}

// Summary is a decoded market-stream daily-summary frame.
type Summary struct {
	Symbol    string          `json:"symbol"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	PrevClose decimal.Decimal `json:"prevclose"`
}

// TimeSale is a decoded market-stream time-and-sales tick frame.
type TimeSale struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
	Size   int64           `json:"size"`
	Time   int64           `json:"time"`
	Seq    int64           `json:"seq"`
}

// OrderStatus is a decoded account-stream order-event frame.
type OrderStatus struct {
	OrderID        string           `json:"order_id"`
	Status         enum.OrderStatus `json:"status"`
	Symbol         string           `json:"symbol"`
	Quantity       decimal.Decimal  `json:"quantity"`
	FilledQuantity decimal.Decimal  `json:"filled_quantity"`
	AvgFillPrice   decimal.Decimal  `json:"avg_fill_price"`
	RemainingQty   decimal.Decimal  `json:"remaining_quantity"`
}

// AccountActivity is a decoded account-stream non-order activity frame
// (journal entries, balance changes); the broker's schema for these is the
// least uniform, so it is kept as a raw map rather than a typed struct.
type AccountActivity map[string]any

// Frame is one dispatched unit: its DataType, the originating transport's
// raw bytes, and a lazily-typed accessor is left to the caller via Decode.
type Frame struct {
	DataType enum.StreamingDataType
	Raw      json.RawMessage
}

// DetermineDataType classifies raw by its "type" field when present, or by
// field-presence heuristics otherwise: a "bid" field implies a quote, a
// "price"+"size" pair implies a trade, and an "order_id" field implies an
// order-status event. Unrecognized shapes default to DataTypeQuote, mirroring
// ParseStreamingDataType's documented zero-variant default.
func DetermineDataType(raw json.RawMessage) enum.StreamingDataType {
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(raw, &generic); err != nil {
		return enum.DataTypeQuote
	}
	if t, ok := generic["type"]; ok {
		var s string
		if err := json.Unmarshal(t, &s); err == nil && s != "" {
			return enum.ParseStreamingDataType(s)
		}
	}
	if _, ok := generic["order_id"]; ok {
		return enum.DataTypeOrder
	}
	if _, ok := generic["bid"]; ok {
		return enum.DataTypeQuote
	}
	_, hasPrice := generic["price"]
	_, hasSize := generic["size"]
	if hasPrice && hasSize {
		return enum.DataTypeTrade
	}
	return enum.DataTypeQuote
}

// NewFrame classifies raw and packages it for dispatch.
func NewFrame(raw json.RawMessage) Frame {
	return Frame{DataType: DetermineDataType(raw), Raw: raw}
}

// DecodeQuote, DecodeTrade, DecodeSummary, DecodeTimeSale, and
// DecodeOrderStatus unmarshal a frame's raw bytes into the named typed
// struct, tolerating missing fields by leaving them at their zero value per
// the codec's decode contract.

func DecodeQuote(raw json.RawMessage) (Quote, error) {
	var q Quote
	err := json.Unmarshal(raw, &q)
	return q, err
}

func DecodeTrade(raw json.RawMessage) (Trade, error) {
	var t Trade
	err := json.Unmarshal(raw, &t)
	return t, err
}

func DecodeSummary(raw json.RawMessage) (Summary, error) {
	var s Summary
	err := json.Unmarshal(raw, &s)
	return s, err
}

func DecodeTimeSale(raw json.RawMessage) (TimeSale, error) {
	var t TimeSale
	err := json.Unmarshal(raw, &t)
	return t, err
}

func DecodeOrderStatus(raw json.RawMessage) (OrderStatus, error) {
	var o OrderStatus
	err := json.Unmarshal(raw, &o)
	return o, err
}

// String renders a frame for logging without dumping its full payload.
func (f Frame) String() string {
	return fmt.Sprintf("Frame{type=%s, %d bytes}", f.DataType, len(f.Raw))
}
