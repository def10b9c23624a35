// Package account holds the decoded response types for the account-data
// endpoint group (balances, positions, orders, history, gain/loss,
// watchlists), grounded on schema's field registry and on
// original_source/include/oqdTradierpp/account_data.hpp.
package account

import (
	"encoding/json"

	"github.com/go-tradier/tradier-go/enum"
	"github.com/go-tradier/tradier-go/rest/market"
)

// Balances is the account balances snapshot of spec §3. All numeric
// fields default to zero on absent/null.
type Balances struct {
	AccountNumber       string  `json:"account_number"`
	TotalEquity         float64 `json:"total_equity"`
	TotalCash           float64 `json:"total_cash"`
	OptionLongValue     float64 `json:"option_long_value"`
	OptionShortValue    float64 `json:"option_short_value"`
	StockLongValue      float64 `json:"stock_long_value"`
	DayTradeBuyingPower float64 `json:"day_trade_buying_power"`
	// MarginBalance/CashBalance/PDTBalance carry the account-type-specific
	// nested block; only the one matching the account's type is populated
	// by the broker, so all three are optional raw blobs the caller
	// re-decodes against the shape it expects.
	MarginBalance json.RawMessage `json:"margin_balance,omitempty"`
	CashBalance   json.RawMessage `json:"cash_balance,omitempty"`
	PDTBalance    json.RawMessage `json:"pdt_balance,omitempty"`
}

// DecodeBalances decodes the balances response.
func DecodeBalances(raw json.RawMessage) (Balances, error) {
	var b Balances
	if len(raw) == 0 || string(raw) == "null" {
		return b, nil
	}
	err := json.Unmarshal(raw, &b)
	return b, err
}

// Position is a single open position record.
type Position struct {
	ID           int64   `json:"id"`
	Symbol       string  `json:"symbol"`
	Quantity     float64 `json:"quantity"`
	CostBasis    float64 `json:"cost_basis"`
	DateAcquired string  `json:"date_acquired"`
}

// DecodePosition decodes a single position row.
func DecodePosition(raw json.RawMessage) (Position, error) {
	var p Position
	if len(raw) == 0 || string(raw) == "null" {
		return p, nil
	}
	err := json.Unmarshal(raw, &p)
	return p, err
}

// DecodePositions tolerates the single-object/array shape per spec §4.L.
func DecodePositions(raw json.RawMessage) ([]Position, error) {
	return market.DecodeOneOrMany(raw, DecodePosition)
}

// Leg is a child leg of a multileg/combo/bracket order record.
type Leg struct {
	Symbol     string          `json:"symbol"`
	Side       enum.OrderSide  `json:"side"`
	Quantity   float64         `json:"quantity"`
	Status     enum.OrderStatus `json:"status"`
	AvgFillPrice float64       `json:"avg_fill_price"`
}

// Order is the server-returned order record of spec §3.
type Order struct {
	ID                int64            `json:"id"`
	Class             enum.OrderClass  `json:"class"`
	Symbol            string           `json:"symbol"`
	Side              enum.OrderSide   `json:"side"`
	Quantity          float64          `json:"quantity"`
	Type              enum.OrderType   `json:"type"`
	Duration          enum.OrderDuration `json:"duration"`
	Status            enum.OrderStatus `json:"status"`
	Price             *float64         `json:"price,omitempty"`
	StopPrice         *float64         `json:"stop_price,omitempty"`
	AvgFillPrice      float64          `json:"avg_fill_price"`
	ExecQuantity      float64          `json:"exec_quantity"`
	LastFillPrice     float64          `json:"last_fill_price"`
	LastFillQuantity  float64          `json:"last_fill_quantity"`
	RemainingQuantity float64          `json:"remaining_quantity"`
	CreateDate        string           `json:"create_date"`
	TransactionDate   string           `json:"transaction_date"`
	Tag               string           `json:"tag"`
	Legs              []Leg            `json:"legs,omitempty"`
}

// QuantityReconciles reports the spec §3 invariant `exec_quantity +
// remaining_quantity == quantity`. Violation is a warning, never a decode
// failure — Decode always succeeds; callers that care call this
// separately, and schema.Validate's Paranoid level checks it too.
func (o Order) QuantityReconciles() bool {
	return o.ExecQuantity+o.RemainingQuantity == o.Quantity
}

// DecodeOrder decodes a single order record.
func DecodeOrder(raw json.RawMessage) (Order, error) {
	var o Order
	if len(raw) == 0 || string(raw) == "null" {
		return o, nil
	}
	err := json.Unmarshal(raw, &o)
	return o, err
}

// DecodeOrders tolerates the single-object/array shape.
func DecodeOrders(raw json.RawMessage) ([]Order, error) {
	return market.DecodeOneOrMany(raw, DecodeOrder)
}

// HistoryItem is a single account-history transaction entry.
type HistoryItem struct {
	Amount      float64         `json:"amount"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	TradeDetail json.RawMessage `json:"trade_details,omitempty"`
}

// DecodeHistoryItem decodes a single history entry.
func DecodeHistoryItem(raw json.RawMessage) (HistoryItem, error) {
	var h HistoryItem
	if len(raw) == 0 || string(raw) == "null" {
		return h, nil
	}
	err := json.Unmarshal(raw, &h)
	return h, err
}

// DecodeHistory tolerates the single-object/array shape.
func DecodeHistory(raw json.RawMessage) ([]HistoryItem, error) {
	return market.DecodeOneOrMany(raw, DecodeHistoryItem)
}

// GainLossItem is a single closed-position realized gain/loss row.
type GainLossItem struct {
	Symbol          string  `json:"symbol"`
	Quantity        float64 `json:"quantity"`
	GainLoss        float64 `json:"gain_loss"`
	GainLossPercent float64 `json:"gain_loss_percent"`
	CloseDate       string  `json:"close_date"`
	OpenDate        string  `json:"open_date"`
	Proceeds        float64 `json:"proceeds"`
	Cost            float64 `json:"cost"`
	Term            string  `json:"term"`
}

// DecodeGainLossItem decodes a single gain/loss row.
func DecodeGainLossItem(raw json.RawMessage) (GainLossItem, error) {
	var g GainLossItem
	if len(raw) == 0 || string(raw) == "null" {
		return g, nil
	}
	err := json.Unmarshal(raw, &g)
	return g, err
}

// DecodeGainLoss tolerates the single-object/array shape.
func DecodeGainLoss(raw json.RawMessage) ([]GainLossItem, error) {
	return market.DecodeOneOrMany(raw, DecodeGainLossItem)
}

// Watchlist is a watchlist summary/detail record.
type Watchlist struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	PublicID string   `json:"public_id"`
	Items    []string `json:"items,omitempty"`
}

// DecodeWatchlist decodes a single watchlist record.
func DecodeWatchlist(raw json.RawMessage) (Watchlist, error) {
	var w Watchlist
	if len(raw) == 0 || string(raw) == "null" {
		return w, nil
	}
	err := json.Unmarshal(raw, &w)
	return w, err
}

// DecodeWatchlists tolerates the single-object/array shape.
func DecodeWatchlists(raw json.RawMessage) ([]Watchlist, error) {
	return market.DecodeOneOrMany(raw, DecodeWatchlist)
}

// ExportStatus is the status of a requested account-history data export,
// grounded on the teacher's get_export_report_status.go.
type ExportStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	URL    string `json:"url,omitempty"`
}

// DecodeExportStatus decodes an export-status response.
func DecodeExportStatus(raw json.RawMessage) (ExportStatus, error) {
	var e ExportStatus
	if len(raw) == 0 || string(raw) == "null" {
		return e, nil
	}
	err := json.Unmarshal(raw, &e)
	return e, err
}
