// Package facade implements component L (API Facade) of the spec: a thin
// typed entry point composing the HTTP Client Core (G), Enum Vocabulary
// (D), Endpoint Catalog (E), and Path/Input Validator (F) into the single
// object an application constructs, plus the Streaming Session Core (K)
// factory bound to the same underlying HTTP Client.
//
// Grounded on the teacher's krakenapiclient.go (one constructor taking an
// Authorizer and a Configuration, method list covering the whole endpoint
// surface) generalized from Kraken's REST-only surface to Tradier's
// REST-plus-streaming pair. rest.Client's exported methods already are the
// (endpoint, params)-mapping layer spec §4.L describes — each one is both
// the "async" and the "blocking" form in Go's idiom, since a context-first
// method called directly already blocks the caller's own goroutine without
// requiring a separate future type (spec §9's "mechanical" blocking
// adapter resolves, in Go, to simply calling the method). Client adds the
// handful of conveniences that are NOT mechanical: credential-aware
// construction, and Sync helpers for the calls an application is likeliest
// to reach for without a context already in hand.
package facade

import (
	"context"
	"time"

	"github.com/go-tradier/tradier-go/enum"
	"github.com/go-tradier/tradier-go/rest"
	"github.com/go-tradier/tradier-go/rest/account"
	"github.com/go-tradier/tradier-go/rest/market"
	"github.com/go-tradier/tradier-go/rest/trading"
	"github.com/go-tradier/tradier-go/rest/user"
	"github.com/go-tradier/tradier-go/streaming"
	"github.com/go-tradier/tradier-go/validate"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Environment selects the base URL per spec §6.
type Environment int

const (
	Production Environment = iota
	Sandbox
)

func (e Environment) baseURL() string {
	if e == Sandbox {
		return rest.SandboxBaseURL
	}
	return rest.ProductionBaseURL
}

// Credentials is the mutually-exclusive bearer-or-basic pair of spec §3.
// Exactly one of Token or (ClientID, ClientSecret) should be set; the
// library does no runtime validation of this beyond what the underlying
// Authorizer refuses at request time.
type Credentials struct {
	Token        string
	ClientID     string
	ClientSecret string
}

func (c Credentials) authorizer() rest.Authorizer {
	if c.Token != "" {
		return rest.NewBearerAuthorizer(c.Token)
	}
	return rest.NewBasicAuthorizer(c.ClientID, c.ClientSecret)
}

// Configuration is the explicit, caller-assembled configuration struct of
// spec §9's "shared library state" resolution: all state lives in the
// Client instance this builds, never in package-level globals, and the
// library never reads the process environment (spec §6).
type Configuration struct {
	Environment    Environment
	Credentials    Credentials
	Timeout        time.Duration
	TracerProvider trace.TracerProvider
	Logger         *zap.Logger
}

// Client is the API Facade: one REST client plus a factory for Streaming
// Sessions bound to it.
type Client struct {
	REST   *rest.Client
	logger *zap.Logger
}

// New builds a Client from cfg.
func New(cfg Configuration) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	restCfg := &rest.Configuration{
		BaseURL:        cfg.Environment.baseURL(),
		Timeout:        cfg.Timeout,
		TracerProvider: cfg.TracerProvider,
		Logger:         logger,
	}
	return &Client{
		REST:   rest.New(cfg.Credentials.authorizer(), restCfg),
		logger: logger,
	}
}

// NewSession builds a Streaming Session (component K) bound to this
// facade's REST client, per spec §3's ownership rule ("the Streaming
// Session... holds a reference to the HTTP Client for session-creation
// requests").
func (c *Client) NewSession() *streaming.Session {
	return streaming.NewSession(c.REST, c.logger)
}

// --- Sync conveniences -----------------------------------------------
//
// These are the calls an application typically makes from a context-free
// call site (a CLI command, a REPL). Every other operation on c.REST
// already takes a context.Context as its first argument and is usable
// directly, both as the "async" and the "blocking" form.

// QuotesSync is Quotes with context.Background().
func (c *Client) QuotesSync(symbols []string, greeks bool) ([]market.Quote, error) {
	return c.REST.Quotes(context.Background(), symbols, greeks)
}

// ProfileSync is Profile with context.Background().
func (c *Client) ProfileSync() (user.Profile, error) {
	return c.REST.Profile(context.Background())
}

// AccountBalancesSync is AccountBalances with context.Background().
func (c *Client) AccountBalancesSync(accountID string) (account.Balances, error) {
	return c.REST.AccountBalances(context.Background(), accountID)
}

// AccountPositionsSync is AccountPositions with context.Background().
func (c *Client) AccountPositionsSync(accountID string) ([]account.Position, error) {
	return c.REST.AccountPositions(context.Background(), accountID)
}

// PlaceOrderSync is PlaceOrder with context.Background().
func (c *Client) PlaceOrderSync(accountID string, req validate.OrderRequest) (trading.PlaceOrderResponse, validate.Result, error) {
	return c.REST.PlaceOrder(context.Background(), accountID, req)
}

// CancelOrderSync is CancelOrder with context.Background().
func (c *Client) CancelOrderSync(accountID, orderID string) (trading.PlaceOrderResponse, error) {
	return c.REST.CancelOrder(context.Background(), accountID, orderID)
}

// ConnectionState re-exports enum.ConnectionState so callers that only
// import facade (not streaming or enum directly) can still type a
// connection-state observer.
type ConnectionState = enum.ConnectionState
