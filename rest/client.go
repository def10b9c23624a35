// Package rest implements component G (HTTP Client Core) and component E
// (Endpoint Catalog) of the spec: TLS transport, auth injection, per-
// endpoint rate-limit accounting, request dispatch, and JSON root-element
// decoding. It is grounded on the teacher's spot/rest/krakenapiclient.go
// for the forge -> authorize -> dispatch -> decode shape, generalized from
// Kraken's single always-POST-form convention to GET query / POST-PUT form
// / DELETE-no-body per spec §4.G.
package rest

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/go-tradier/tradier-go/codec"
	apierrors "github.com/go-tradier/tradier-go/errors"
	"github.com/go-tradier/tradier-go/rest/tracing"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Production and sandbox base URLs, per spec §6.
const (
	ProductionBaseURL = "https://api.tradier.com"
	SandboxBaseURL    = "https://sandbox.tradier.com"
)

// DefaultUserAgent is sent on every request unless overridden in
// Configuration.
const DefaultUserAgent = "tradier-go"

// DefaultTimeout is the per-request timeout of spec §4.G; override per
// call via context.WithTimeout.
const DefaultTimeout = 30 * time.Second

// Configuration configures a Client. A zero-value-aware factory
// (NewDefaultConfiguration) fills every unset field, mirroring the
// teacher's KrakenSpotRESTClientConfiguration/
// NewDefaultKrakenSpotRESTClientConfiguration pair.
type Configuration struct {
	// BaseURL for the API. Empty defaults to ProductionBaseURL.
	BaseURL string
	// Agent is the mandatory User-Agent value. Empty defaults to
	// DefaultUserAgent.
	Agent string
	// HTTPClient is the low-level client used to perform calls. Nil
	// defaults to a client with its own http.Transport requiring TLS 1.2
	// or later.
	HTTPClient *http.Client
	// Timeout is the per-request timeout. Zero defaults to DefaultTimeout.
	Timeout time.Duration
	// TracerProvider supplies the tracer used to instrument every exported
	// method. Nil uses the global provider (a no-op unless the caller has
	// configured one).
	TracerProvider trace.TracerProvider
	// Logger receives structured observability events (rate-limit gating).
	// Nil uses zap.NewNop().
	Logger *zap.Logger
}

// NewDefaultConfiguration returns a Configuration with every field set to
// its documented default.
func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		BaseURL: ProductionBaseURL,
		Agent:   DefaultUserAgent,
		HTTPClient: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
			},
		},
		Timeout:        DefaultTimeout,
		TracerProvider: otel.GetTracerProvider(),
		Logger:         zap.NewNop(),
	}
}

// Client is the HTTP Client Core. It owns the TLS/transport resources and
// the rate-limit table (spec §3 "Ownership") and is safe to share across
// goroutines (spec §5's concurrency contract) — the retryablehttp.Client it
// wraps pools connections internally and the rate-limit table is
// mutex-guarded.
type Client struct {
	baseURL    string
	agent      string
	authorizer Authorizer
	http       *retryablehttp.Client
	timeout    time.Duration
	rateLimits *rateLimitTable
	tracer     trace.Tracer
	logger     *zap.Logger
}

// New builds a Client. authorizer may be nil, in which case only endpoints
// declaring AuthNone can be called; a request to any other endpoint fails
// with an auth error before it is sent.
func New(authorizer Authorizer, cfg *Configuration) *Client {
	def := NewDefaultConfiguration()
	if cfg != nil {
		if cfg.BaseURL != "" {
			def.BaseURL = cfg.BaseURL
		}
		if cfg.Agent != "" {
			def.Agent = cfg.Agent
		}
		if cfg.HTTPClient != nil {
			def.HTTPClient = cfg.HTTPClient
		}
		if cfg.Timeout != 0 {
			def.Timeout = cfg.Timeout
		}
		if cfg.TracerProvider != nil {
			def.TracerProvider = cfg.TracerProvider
		}
		if cfg.Logger != nil {
			def.Logger = cfg.Logger
		}
	}
	// RetryMax: 0 means the wrapped client gets retryablehttp's connection
	// pooling and contextual logging without violating spec §4.G's "no
	// automatic retry at this layer" — retries are Streaming Session's job
	// (reconnection), never the HTTP Client's.
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = def.HTTPClient
	retryClient.RetryMax = 0
	// The default CheckRetry still flags 429/5xx as retryable and, with no
	// retries left, drops the response for a generic "giving up" error;
	// never retrying hands every response to Do's own status check.
	retryClient.CheckRetry = func(context.Context, *http.Response, error) (bool, error) {
		return false, nil
	}
	retryClient.Logger = nil

	if authorizer != nil {
		authorizer = DecorateAuthorizer(authorizer, def.TracerProvider)
	}

	return &Client{
		baseURL:    def.BaseURL,
		agent:      def.Agent,
		authorizer: authorizer,
		http:       retryClient,
		timeout:    def.Timeout,
		rateLimits: newRateLimitTable(),
		tracer:     def.TracerProvider.Tracer(tracing.PackageName, trace.WithInstrumentationVersion(tracing.PackageVersion)),
		logger:     def.Logger,
	}
}

// SetAuthorizer swaps the authorizer used by subsequent requests. Token
// rotation is the caller's responsibility (spec §3): the library performs
// no atomic handoff with in-flight requests, so a caller requiring
// transactional rotation must serialize this call with request submission.
func (c *Client) SetAuthorizer(authorizer Authorizer) { c.authorizer = authorizer }

// Do implements ClientIface.
func (c *Client) Do(ctx context.Context, ep Endpoint, pathParams map[string]string, query url.Values, form url.Values) (json.RawMessage, *http.Response, error) {
	ctx, span := c.tracer.Start(ctx, "rest.Do", trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", ep.Method),
			attribute.String("http.path_template", ep.PathTemplate),
		))
	defer span.End()

	group := ep.Group()
	now := time.Now()
	if c.rateLimits.gate(group, now) {
		c.logger.Warn("rate limit gate rejected request without I/O", zap.String("group", group))
		err := apierrors.NewRateLimitError(fmt.Sprintf("rate limit exhausted for %s; no request was sent", group))
		return nil, nil, tracing.HandleAndTraceError(span, err)
	}

	path, err := ResolvePath(ep, pathParams)
	if err != nil {
		return nil, nil, tracing.HandleAndTraceError(span, apierrors.NewValidationError(err.Error()))
	}

	req, err := c.forge(ctx, path, ep.Method, query, form)
	if err != nil {
		return nil, nil, tracing.HandleAndTraceError(span, err)
	}
	req, err = c.authorize(ctx, req, ep.Auth)
	if err != nil {
		return nil, nil, tracing.HandleAndTraceError(span, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
		req = req.WithContext(ctx)
	}

	retryReq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, nil, tracing.HandleAndTraceError(span, apierrors.NewTransportError("failed to prepare request", err))
	}
	resp, err := c.http.Do(retryReq)
	if err != nil {
		return nil, nil, tracing.HandleAndTraceError(span, apierrors.NewTransportError("request failed", err))
	}
	defer resp.Body.Close()

	c.rateLimits.update(group, resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp, tracing.HandleAndTraceError(span, apierrors.NewTransportError("failed to read response body", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newResponseError(resp.StatusCode, body)
		return nil, resp, tracing.HandleAndTraceError(span, apiErr)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	return json.RawMessage(body), resp, tracing.HandleAndTraceError(span, nil)
}

// RateLimitSnapshot implements ClientIface.
func (c *Client) RateLimitSnapshot(ep Endpoint) (available, used int, hasRecord bool) {
	record, ok := c.rateLimits.Snapshot(ep.Group())
	if !ok {
		return 0, 0, false
	}
	return record.Available, record.Used, true
}

// forge builds the absolute request for path/method with query appended
// (GET/DELETE) or form encoded as the application/x-www-form-urlencoded
// body (POST/PUT), per spec §4.G. Both are rendered through codec.EncodeForm
// (component A's percent-encoding, RFC 3986 unreserved set, uppercase hex)
// rather than net/url.Values.Encode, so every request this client sends and
// every fixture in spec §8 scenario 1 (symbols=AAPL%2CMSFT) are produced by
// the same encoder.
func (c *Client) forge(ctx context.Context, path, method string, query, form url.Values) (*http.Request, error) {
	full := c.baseURL + path
	var body io.Reader
	if len(form) > 0 && (method == http.MethodPost || method == http.MethodPut) {
		body = strings.NewReader(codec.EncodeForm(toKV(form)))
	}
	req, err := http.NewRequestWithContext(ctx, method, full, body)
	if err != nil {
		return nil, apierrors.NewTransportError("failed to forge request", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = codec.EncodeForm(toKV(query))
	}
	req.Header.Set("User-Agent", c.agent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req, nil
}

// toKV flattens a url.Values map into codec.KV pairs in deterministic
// (sorted-by-key) order, matching url.Values.Encode's own ordering
// guarantee so query strings stay stable across calls with the same
// parameters.
func toKV(values url.Values) []codec.KV {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]codec.KV, 0, len(values))
	for _, k := range keys {
		for _, v := range values[k] {
			pairs = append(pairs, codec.KV{Key: k, Value: v})
		}
	}
	return pairs
}

func (c *Client) authorize(ctx context.Context, req *http.Request, auth AuthRequirement) (*http.Request, error) {
	if c.authorizer == nil {
		if auth == AuthNone {
			return req, nil
		}
		return nil, apierrors.NewAuthError("no authorizer configured for an endpoint requiring authentication")
	}
	out, err := c.authorizer.Authorize(ctx, req, auth)
	if err != nil {
		return nil, apierrors.NewAuthError(err.Error())
	}
	return out, nil
}
