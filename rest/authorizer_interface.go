package rest

import (
	"context"
	"net/http"
)

// Authorizer attaches the credentials appropriate to an endpoint's declared
// AuthRequirement to an outgoing request. The shape mirrors the teacher's
// KrakenSpotRESTClientAuthorizerIface: a single Authorize method the client
// calls after forging the request and before dispatching it, so callers
// needing a non-default auth flow (a proxy, a credential broker) can supply
// their own implementation instead of BearerAuthorizer/BasicAuthorizer.
type Authorizer interface {
	// Authorize returns req with the appropriate Authorization header set,
	// or an error if the request cannot be authorized (e.g. context
	// cancellation, or an AuthRequirement this authorizer has no
	// credentials for).
	Authorize(ctx context.Context, req *http.Request, auth AuthRequirement) (*http.Request, error)
}
