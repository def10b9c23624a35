package rest

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-tradier/tradier-go/rest/market"
	"github.com/go-tradier/tradier-go/validate"
)

// Quotes fetches a quote snapshot for one or more symbols. Symbols are
// joined with a comma and percent-encoded as a single query parameter, per
// spec §8 scenario 1. greeks requests the option Greeks block be populated
// for option symbols in the result.
func (c *Client) Quotes(ctx context.Context, symbols []string, greeks bool) ([]market.Quote, error) {
	for _, s := range symbols {
		if _, err := validate.ValidateSymbol(s); err != nil && !validate.IsValidOptionSymbol(s) {
			return nil, err
		}
	}
	query := url.Values{}
	query.Set("symbols", strings.Join(symbols, ","))
	if greeks {
		query.Set("greeks", "true")
	}
	raw, _, err := c.Do(ctx, Catalog.Quotes, nil, query, nil)
	if err != nil {
		return nil, err
	}
	return market.DecodeQuotes(unwrap(raw, "quotes", "quote"))
}

// Clock fetches the market clock/status snapshot.
func (c *Client) Clock(ctx context.Context) (market.Clock, error) {
	raw, _, err := c.Do(ctx, Catalog.Clock, nil, nil, nil)
	if err != nil {
		return market.Clock{}, err
	}
	return market.DecodeClock(unwrapSingle(raw, "clock"))
}

// Calendar fetches the trading calendar for a given month/year (1-12,
// four-digit year). Zero values let the broker default to the current
// month.
func (c *Client) Calendar(ctx context.Context, month, year int) ([]market.CalendarDay, error) {
	query := url.Values{}
	if month != 0 {
		query.Set("month", strconv.Itoa(month))
	}
	if year != 0 {
		query.Set("year", strconv.Itoa(year))
	}
	raw, _, err := c.Do(ctx, Catalog.Calendar, nil, query, nil)
	if err != nil {
		return nil, err
	}
	return market.DecodeOneOrMany(unwrap(raw, "calendar", "days", "day"), market.DecodeCalendarDay)
}

// HistoryParams selects the symbol/interval/date range for History.
type HistoryParams struct {
	Symbol   string
	Interval string // daily|weekly|monthly
	Start    string // YYYY-MM-DD
	End      string // YYYY-MM-DD
}

// History fetches historical OHLCV bars for a symbol.
func (c *Client) History(ctx context.Context, params HistoryParams) ([]market.HistoricalBar, error) {
	if _, err := validate.ValidateSymbol(params.Symbol); err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("symbol", params.Symbol)
	if params.Interval != "" {
		query.Set("interval", params.Interval)
	}
	if params.Start != "" {
		query.Set("start", params.Start)
	}
	if params.End != "" {
		query.Set("end", params.End)
	}
	raw, _, err := c.Do(ctx, Catalog.History, nil, query, nil)
	if err != nil {
		return nil, err
	}
	return market.DecodeOneOrMany(unwrap(raw, "history", "day"), market.DecodeHistoricalBar)
}

// TimeSales fetches tick-level time-and-sales data for a symbol.
func (c *Client) TimeSales(ctx context.Context, symbol, interval, start, end string) ([]market.TimeSalesTick, error) {
	if _, err := validate.ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("symbol", symbol)
	if interval != "" {
		query.Set("interval", interval)
	}
	if start != "" {
		query.Set("start", start)
	}
	if end != "" {
		query.Set("end", end)
	}
	raw, _, err := c.Do(ctx, Catalog.TimeSales, nil, query, nil)
	if err != nil {
		return nil, err
	}
	return market.DecodeOneOrMany(unwrap(raw, "series", "data"), market.DecodeTimeSalesTick)
}

// OptionChains fetches the full option chain for an underlying and
// expiration date.
func (c *Client) OptionChains(ctx context.Context, underlying, expiration string, greeks bool) ([]market.Quote, error) {
	if _, err := validate.ValidateSymbol(underlying); err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("symbol", underlying)
	query.Set("expiration", expiration)
	if greeks {
		query.Set("greeks", "true")
	}
	raw, _, err := c.Do(ctx, Catalog.OptionChains, nil, query, nil)
	if err != nil {
		return nil, err
	}
	return market.DecodeOneOrMany(unwrap(raw, "options", "option"), market.Decode)
}

// OptionExpirations fetches the list of expiration dates available for an
// underlying.
func (c *Client) OptionExpirations(ctx context.Context, underlying string) ([]string, error) {
	if _, err := validate.ValidateSymbol(underlying); err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("symbol", underlying)
	raw, _, err := c.Do(ctx, Catalog.OptionExpirations, nil, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeStringList(unwrap(raw, "expirations", "date"))
}

// OptionStrikes fetches the list of strike prices available for an
// underlying/expiration pair.
func (c *Client) OptionStrikes(ctx context.Context, underlying, expiration string) ([]float64, error) {
	if _, err := validate.ValidateSymbol(underlying); err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("symbol", underlying)
	query.Set("expiration", expiration)
	raw, _, err := c.Do(ctx, Catalog.OptionStrikes, nil, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeFloatList(unwrap(raw, "strikes", "strike"))
}

// SearchSymbols performs a free-text symbol search, sanitizing the query
// per spec §4.F before it ever reaches the wire.
func (c *Client) SearchSymbols(ctx context.Context, query string) ([]market.SymbolSearchResult, error) {
	sanitized := validate.SanitizeSearchQuery(query)
	q := url.Values{}
	q.Set("q", sanitized)
	raw, _, err := c.Do(ctx, Catalog.SymbolSearch, nil, q, nil)
	if err != nil {
		return nil, err
	}
	return market.DecodeOneOrMany(unwrap(raw, "securities", "security"), market.DecodeSymbolSearchResult)
}
