package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	apierrors "github.com/go-tradier/tradier-go/errors"
	"github.com/go-tradier/tradier-go/validate"
	"github.com/hashicorp/go-retryablehttp"
)

// BaseURL exposes the client's configured base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// OpenMarketSSE issues the authenticated GET that opens the market-data
// Server-Sent Events stream for sessionID, per spec §4.K's SSE transport
// worker. symbols is optional; when non-empty it is sent as the stream's
// initial symbol subscription. The returned *http.Response has its body
// left open for the caller to read line-by-line; the caller owns closing it.
func (c *Client) OpenMarketSSE(ctx context.Context, sessionID string, symbols []string) (*http.Response, error) {
	return c.openSSE(ctx, Catalog.MarketEventsSSE, sessionID, symbols)
}

// OpenAccountSSE is OpenMarketSSE for the account-events stream, which
// carries no symbol filter.
func (c *Client) OpenAccountSSE(ctx context.Context, sessionID string) (*http.Response, error) {
	return c.openSSE(ctx, Catalog.AccountEventsSSE, sessionID, nil)
}

func (c *Client) openSSE(ctx context.Context, ep Endpoint, sessionID string, symbols []string) (*http.Response, error) {
	sessionID, err := validate.ValidateSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	path, err := ResolvePath(ep, map[string]string{"session_id": sessionID})
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	var query url.Values
	if len(symbols) > 0 {
		query = url.Values{"symbols": {strings.Join(symbols, ",")}}
	}
	req, err := c.forge(ctx, path, ep.Method, query, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	req, err = c.authorize(ctx, req, ep.Auth)
	if err != nil {
		return nil, err
	}
	retryReq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, apierrors.NewTransportError("failed to prepare SSE request", err)
	}
	resp, err := c.http.Do(retryReq)
	if err != nil {
		return nil, apierrors.NewTransportError("SSE request failed", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, apierrors.NewHTTPStatusError(resp.StatusCode, fmt.Sprintf("SSE stream rejected for session %s", sessionID))
	}
	return resp, nil
}
