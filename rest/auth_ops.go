package rest

import (
	"context"
	"encoding/json"
	"net/url"
)

// AccessToken is the decoded response of the OAuth token-exchange endpoint
// (spec §6: Authorization: Basic on this endpoint only, thereafter Bearer).
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	ExpiresIn   int    `json:"expires_in"`
	IssuedAt    int64  `json:"issued_at"`
}

// ExchangeToken performs the OAuth token exchange. The client must be
// constructed with a BasicAuthorizer for this call to succeed (spec §3:
// bearer and basic credentials are mutually exclusive per request
// context); callers typically build one short-lived Client for this call
// and a second, bearer-authorized Client for everything else, or call
// SetAuthorizer(NewBearerAuthorizer(resp.AccessToken)) on this same client
// immediately afterward.
func (c *Client) ExchangeToken(ctx context.Context, grantType, code string) (AccessToken, error) {
	form := url.Values{"grant_type": {grantType}}
	if code != "" {
		form.Set("code", code)
	}
	raw, _, err := c.Do(ctx, Catalog.OAuthToken, nil, nil, form)
	if err != nil {
		return AccessToken{}, err
	}
	var tok AccessToken
	if err := json.Unmarshal(raw, &tok); err != nil {
		return AccessToken{}, err
	}
	return tok, nil
}
