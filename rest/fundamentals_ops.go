package rest

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/go-tradier/tradier-go/rest/fundamentals"
)

func symbolsQuery(symbols []string) url.Values {
	q := url.Values{}
	q.Set("symbols", strings.Join(symbols, ","))
	return q
}

// FundamentalsCompany fetches company-profile blocks for one or more
// symbols.
func (c *Client) FundamentalsCompany(ctx context.Context, symbols []string) ([]fundamentals.Company, error) {
	raw, _, err := c.Do(ctx, Catalog.FundamentalsCompany, nil, symbolsQuery(symbols), nil)
	if err != nil {
		return nil, err
	}
	return decodeFundamentalsResults(raw, fundamentals.DecodeCompany)
}

// FundamentalsRatios fetches valuation/profitability ratios.
func (c *Client) FundamentalsRatios(ctx context.Context, symbols []string) ([]fundamentals.Ratios, error) {
	raw, _, err := c.Do(ctx, Catalog.FundamentalsRatios, nil, symbolsQuery(symbols), nil)
	if err != nil {
		return nil, err
	}
	return decodeFundamentalsResults(raw, fundamentals.DecodeRatios)
}

// FundamentalsFinancials fetches statement-summary blocks.
func (c *Client) FundamentalsFinancials(ctx context.Context, symbols []string) ([]fundamentals.Financials, error) {
	raw, _, err := c.Do(ctx, Catalog.FundamentalsFinancials, nil, symbolsQuery(symbols), nil)
	if err != nil {
		return nil, err
	}
	return decodeFundamentalsResults(raw, fundamentals.DecodeFinancials)
}

// FundamentalsPriceStats fetches return/volatility statistics blocks.
func (c *Client) FundamentalsPriceStats(ctx context.Context, symbols []string) ([]fundamentals.PriceStats, error) {
	raw, _, err := c.Do(ctx, Catalog.FundamentalsPriceStats, nil, symbolsQuery(symbols), nil)
	if err != nil {
		return nil, err
	}
	return decodeFundamentalsResults(raw, fundamentals.DecodePriceStats)
}

// FundamentalsCorporateCalendar fetches upcoming corporate-calendar events.
func (c *Client) FundamentalsCorporateCalendar(ctx context.Context, symbols []string) ([]fundamentals.CorporateCalendarEvent, error) {
	raw, _, err := c.Do(ctx, Catalog.FundamentalsCorporateCalendar, nil, symbolsQuery(symbols), nil)
	if err != nil {
		return nil, err
	}
	return decodeFundamentalsResults(raw, fundamentals.DecodeCorporateCalendarEvent)
}

// FundamentalsDividends fetches declared/paid dividend records.
func (c *Client) FundamentalsDividends(ctx context.Context, symbols []string) ([]fundamentals.Dividend, error) {
	raw, _, err := c.Do(ctx, Catalog.FundamentalsDividends, nil, symbolsQuery(symbols), nil)
	if err != nil {
		return nil, err
	}
	return decodeFundamentalsResults(raw, fundamentals.DecodeDividend)
}

// fundamentalsResult is one element of the beta fundamentals endpoints'
// per-symbol envelope: `[{"request": "AAPL", "results": [{"type": "...",
// "tables": {...}}]}]`. The "tables" object's shape is exactly the flat
// record each package fundamentals Decode function expects.
type fundamentalsResult struct {
	Results []struct {
		Tables json.RawMessage `json:"tables"`
	} `json:"results"`
}

// decodeFundamentalsResults walks the beta envelope down to each entry's
// "tables" payload and decodes it with decode. The beta surface is less
// uniform than the v1 endpoints; unwrapping here (rather than in package
// fundamentals) keeps the decode functions themselves symmetrical with the
// rest of the codec, which always decodes a flat record.
func decodeFundamentalsResults[T any](raw json.RawMessage, decode func(json.RawMessage) (T, error)) ([]T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var entries []fundamentalsResult
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	var out []T
	for _, entry := range entries {
		for _, result := range entry.Results {
			v, err := decode(result.Tables)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}
