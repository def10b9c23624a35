package rest

import (
	"context"
	"fmt"
	"net/http"
)

// BearerAuthorizer attaches a static bearer token, per spec §3/§6:
// "Authorization: Bearer <token>" on all account/market/beta endpoints.
// Rotation is the caller's responsibility (spec §3) — this authorizer holds
// whatever token it was constructed with for its lifetime; callers that
// need to rotate a token construct a new BearerAuthorizer and swap it into
// the client's configuration (see Client.SetAuthorizer).
type BearerAuthorizer struct {
	token string
}

// NewBearerAuthorizer returns an Authorizer that injects token as a Bearer
// credential. An empty token is accepted (useful for public-endpoint-only
// clients) but Authorize will fail if it is ever asked to authorize an
// AuthBearer request.
func NewBearerAuthorizer(token string) *BearerAuthorizer {
	return &BearerAuthorizer{token: token}
}

// Authorize implements Authorizer. It is a no-op for AuthNone and returns
// an error for AuthBasic, since a bearer-only authorizer cannot satisfy the
// OAuth token-exchange endpoint's basic-auth requirement.
func (a *BearerAuthorizer) Authorize(ctx context.Context, req *http.Request, auth AuthRequirement) (*http.Request, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to authorize request: %w", ctx.Err())
	default:
	}
	switch auth {
	case AuthNone:
		return req, nil
	case AuthBearer:
		if a.token == "" {
			return nil, fmt.Errorf("failed to authorize request: no bearer token configured")
		}
		req.Header.Set("Authorization", "Bearer "+a.token)
		return req, nil
	default:
		return nil, fmt.Errorf("failed to authorize request: bearer authorizer cannot satisfy auth requirement %d", auth)
	}
}
