package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// ClientIface is the HTTP Client Core's public contract: forge, authorize,
// rate-limit-gate, dispatch, and decode a single request against one
// catalog Endpoint. Package facade composes this with validation and
// typed decoding; package streaming uses it only to create/refresh a
// session ticket (component K's documented dependency on component G).
type ClientIface interface {
	// Do sends one request against ep, substituting pathParams into the
	// endpoint's path template, attaching query to the URL when non-empty
	// and encoding form as the request body (POST/PUT only). On 2xx it
	// returns the raw JSON body for the caller's typed decoder; on 4xx/5xx
	// it returns a *errors.APIError of Kind KindDomain when the body
	// carries a recognizable broker error code and KindHTTPStatus
	// otherwise; on a local rate-limit gate it returns a *errors.APIError
	// of Kind KindRateLimit without performing any I/O.
	Do(ctx context.Context, ep Endpoint, pathParams map[string]string, query url.Values, form url.Values) (json.RawMessage, *http.Response, error)

	// RateLimitSnapshot exposes the last-observed rate-limit record for an
	// endpoint group, for callers that want to inspect remaining budget
	// without issuing a request.
	RateLimitSnapshot(ep Endpoint) (available, used int, hasRecord bool)
}
