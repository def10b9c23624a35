// Package market holds the decoded response types for the market-data
// endpoint group (component C's per-entity decoders for quotes, clock,
// calendar, history, time-and-sales, option chains, and symbol search),
// grounded on the field registry in package schema and on
// original_source/include/oqdTradierpp/market_data.hpp for field shape.
package market

import (
	"encoding/json"

	"github.com/go-tradier/tradier-go/enum"
	"github.com/shopspring/decimal"
)

// Greeks carries the option risk sensitivities of spec's GLOSSARY.
type Greeks struct {
	Delta     float64 `json:"delta"`
	Gamma     float64 `json:"gamma"`
	Theta     float64 `json:"theta"`
	Vega      float64 `json:"vega"`
	Rho       float64 `json:"rho"`
	Phi       float64 `json:"phi"`
	BidIV     float64 `json:"bid_iv"`
	MidIV     float64 `json:"mid_iv"`
	AskIV     float64 `json:"ask_iv"`
	SmvVol    float64 `json:"smv_vol"`
	UpdatedAt string  `json:"updated_at"`
}

// Quote is the symbol-keyed market snapshot of spec §3, including the
// optional option fields that are only populated for option symbols.
//
// Price-bearing fields use decimal.Decimal rather than float64: quotes are
// the one place in the codec where a caller is likely to compare a wire
// price against an order's limit price, and decimal avoids the float
// round-off that would otherwise leak into that comparison.
type Quote struct {
	Symbol        string          `json:"symbol"`
	Description   string          `json:"description"`
	Exchange      string          `json:"exch"`
	Type          string          `json:"type"`
	Last          decimal.Decimal `json:"last"`
	Change        decimal.Decimal `json:"change"`
	Volume        int64           `json:"volume"`
	Open          decimal.Decimal `json:"open"`
	High          decimal.Decimal `json:"high"`
	Low           decimal.Decimal `json:"low"`
	Close         decimal.Decimal `json:"close"`
	Bid           decimal.Decimal `json:"bid"`
	BidSize       int64           `json:"bidsize"`
	BidExchange   string          `json:"bid_exchange"`
	Ask           decimal.Decimal `json:"ask"`
	AskSize       int64           `json:"asksize"`
	AskExchange   string          `json:"ask_exchange"`
	PrevClose     decimal.Decimal `json:"prevclose"`
	Week52High    decimal.Decimal `json:"week_52_high"`
	Week52Low     decimal.Decimal `json:"week_52_low"`
	TradeDate     int64           `json:"trade_date"`
	ChangePercent decimal.Decimal `json:"change_percentage"`

	// Option-specific fields, zero/empty for equity quotes.
	Underlying     string          `json:"underlying"`
	Strike         decimal.Decimal `json:"strike"`
	ExpirationDate string          `json:"expiration_date"`
	ExpirationType string          `json:"expiration_type"`
	OptionType     enum.OptionType `json:"option_type"`
	RootSymbol     string          `json:"root_symbol"`
	OpenInterest   int64           `json:"open_interest"`
	ContractSize   int64           `json:"contract_size"`
	Greeks         *Greeks         `json:"greeks,omitempty"`
}

// rawQuote is the plain conversion target Decode unmarshals into; it adds
// no decoding rules of its own. Decimal fields accept JSON numbers or
// numeric strings (decimal.Decimal's own behavior); the other numeric
// fields must arrive as JSON numbers.
type rawQuote Quote

// Decode parses a single quote object, tolerating missing/null fields by
// leaving them at their zero value, per spec §4.C's decoder contract.
func Decode(raw json.RawMessage) (Quote, error) {
	var q rawQuote
	if len(raw) == 0 || string(raw) == "null" {
		return Quote{}, nil
	}
	if err := json.Unmarshal(raw, &q); err != nil {
		return Quote{}, err
	}
	return Quote(q), nil
}

// DecodeQuotes tolerates both the "single object" and "array" server
// shapes for the quotes collection endpoint, per spec §4.L.
func DecodeQuotes(raw json.RawMessage) ([]Quote, error) {
	return decodeOneOrMany(raw, Decode)
}

// decodeOneOrMany is the shared backbone for every collection endpoint
// that tolerates Tradier's inconsistent "single object vs array" schema
// (spec §4.L). It first tries an array of raw messages; if that fails it
// retries as a single raw message and wraps the one decoded value in a
// one-element slice.
func decodeOneOrMany[T any](raw json.RawMessage, decode func(json.RawMessage) (T, error)) ([]T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var many []json.RawMessage
	if err := json.Unmarshal(raw, &many); err == nil {
		out := make([]T, 0, len(many))
		for _, item := range many {
			v, err := decode(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}
	return []T{v}, nil
}

// DecodeOneOrMany is the exported form of decodeOneOrMany used by package
// account and by package rest's market operations, which need the same
// tolerance.
func DecodeOneOrMany[T any](raw json.RawMessage, decode func(json.RawMessage) (T, error)) ([]T, error) {
	return decodeOneOrMany(raw, decode)
}

// HistoricalBar is a single OHLCV bar from the history endpoint.
type HistoricalBar struct {
	Date   string          `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}

// DecodeHistoricalBar decodes a single bar, tolerant per spec §4.C.
func DecodeHistoricalBar(raw json.RawMessage) (HistoricalBar, error) {
	var b HistoricalBar
	if len(raw) == 0 || string(raw) == "null" {
		return b, nil
	}
	err := json.Unmarshal(raw, &b)
	return b, err
}

// TimeSalesTick is a single tick-level time-and-sales record.
type TimeSalesTick struct {
	Time   string          `json:"time"`
	Price  decimal.Decimal `json:"price"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
	VWAP   decimal.Decimal `json:"vwap"`
}

// DecodeTimeSalesTick decodes a single tick.
func DecodeTimeSalesTick(raw json.RawMessage) (TimeSalesTick, error) {
	var t TimeSalesTick
	if len(raw) == 0 || string(raw) == "null" {
		return t, nil
	}
	err := json.Unmarshal(raw, &t)
	return t, err
}

// Clock is the market clock/status snapshot.
type Clock struct {
	Date        string `json:"date"`
	State       string `json:"state"`
	Timestamp   int64  `json:"timestamp"`
	NextChange  string `json:"next_change"`
	NextState   string `json:"next_state"`
	Description string `json:"description"`
}

// DecodeClock decodes the market clock response.
func DecodeClock(raw json.RawMessage) (Clock, error) {
	var c Clock
	if len(raw) == 0 || string(raw) == "null" {
		return c, nil
	}
	err := json.Unmarshal(raw, &c)
	return c, err
}

// CalendarDay is a single trading-calendar day entry.
type CalendarDay struct {
	Date        string `json:"date"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// DecodeCalendarDay decodes a single day entry.
func DecodeCalendarDay(raw json.RawMessage) (CalendarDay, error) {
	var d CalendarDay
	if len(raw) == 0 || string(raw) == "null" {
		return d, nil
	}
	err := json.Unmarshal(raw, &d)
	return d, err
}

// SymbolSearchResult is a single symbol-search match.
type SymbolSearchResult struct {
	Symbol      string `json:"symbol"`
	Exchange    string `json:"exchange"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// DecodeSymbolSearchResult decodes a single search result row.
func DecodeSymbolSearchResult(raw json.RawMessage) (SymbolSearchResult, error) {
	var r SymbolSearchResult
	if len(raw) == 0 || string(raw) == "null" {
		return r, nil
	}
	err := json.Unmarshal(raw, &r)
	return r, err
}
