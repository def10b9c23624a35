package rest

import (
	"context"

	"github.com/go-tradier/tradier-go/rest/events"
)

// CreateMarketSession issues the session-creation POST the Streaming
// Session uses before opening a market-data stream, per spec §4.K/§6.
func (c *Client) CreateMarketSession(ctx context.Context) (events.SessionResponse, error) {
	raw, _, err := c.Do(ctx, Catalog.MarketEventsSession, nil, nil, nil)
	if err != nil {
		return events.SessionResponse{}, err
	}
	return events.DecodeSessionResponse(raw)
}

// CreateAccountSession issues the session-creation POST for an
// account-events stream.
func (c *Client) CreateAccountSession(ctx context.Context) (events.SessionResponse, error) {
	raw, _, err := c.Do(ctx, Catalog.AccountEventsSession, nil, nil, nil)
	if err != nil {
		return events.SessionResponse{}, err
	}
	return events.DecodeSessionResponse(raw)
}
