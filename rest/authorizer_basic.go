package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-tradier/tradier-go/codec"
)

// BasicAuthorizer signs the OAuth token-exchange request with HTTP Basic
// auth built from a client id/secret pair, per spec §3/§6: "Authorization:
// Basic base64(client_id:client_secret)". Credentials are mutually
// exclusive with a bearer token per request context (spec §3); a client
// configured with a BasicAuthorizer is expected to call the token-exchange
// endpoint once and then switch to a BearerAuthorizer for every subsequent
// call, mirroring the broker's OAuth flow.
type BasicAuthorizer struct {
	clientID     string
	clientSecret string
}

// NewBasicAuthorizer returns an Authorizer that signs requests with the
// given client id/secret pair.
func NewBasicAuthorizer(clientID, clientSecret string) *BasicAuthorizer {
	return &BasicAuthorizer{clientID: clientID, clientSecret: clientSecret}
}

// Authorize implements Authorizer. It is a no-op for AuthNone and returns
// an error for AuthBearer, since a basic-only authorizer has no token to
// offer.
func (a *BasicAuthorizer) Authorize(ctx context.Context, req *http.Request, auth AuthRequirement) (*http.Request, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to authorize request: %w", ctx.Err())
	default:
	}
	switch auth {
	case AuthNone:
		return req, nil
	case AuthBasic:
		encoded := codec.Base64Encode([]byte(a.clientID + ":" + a.clientSecret))
		req.Header.Set("Authorization", "Basic "+encoded)
		return req, nil
	default:
		return nil, fmt.Errorf("failed to authorize request: basic authorizer cannot satisfy auth requirement %d", auth)
	}
}
