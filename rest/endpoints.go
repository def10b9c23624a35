package rest

import (
	"fmt"
	"strings"
)

// AuthRequirement names the credential an endpoint needs, per spec §6.
type AuthRequirement int

const (
	// AuthNone marks an endpoint that needs no credentials. No catalog
	// entry uses it today, but the zero value must mean "no auth" rather
	// than silently defaulting to bearer.
	AuthNone AuthRequirement = iota
	// AuthBearer is required by every account/market/beta endpoint.
	AuthBearer
	// AuthBasic is required only by the OAuth token-exchange endpoint.
	AuthBasic
)

// Endpoint is the immutable descriptor of spec §3: a path template (which
// may carry named placeholders interpolated by ResolvePath), the
// HTTP method, the auth requirement, and the per-second rate budget the
// broker enforces for the endpoint's group. Descriptors are package-level
// vars built once; nothing mutates them at runtime, mirroring the teacher's
// path-constant block in krakenapiclient.go generalized to a typed,
// budget-carrying struct.
type Endpoint struct {
	PathTemplate string
	Method       string
	Auth         AuthRequirement
	RateBudget   int
}

// Group returns the rate-limit accounting key for the endpoint: the path
// template itself, with its {placeholder} segments left as written, so that
// /v1/accounts/{account_id}/orders and /v1/accounts/{account_id}/orders/{order_id}
// are tracked as distinct groups while two calls against the same template
// but different account ids share one record.
func (e Endpoint) Group() string { return e.PathTemplate }

// Catalog is the compile-time table of every endpoint this client uses.
// Rate budgets reflect the broker's documented per-group limits; they are
// descriptive only — the rate-limit gate works solely from the values
// observed in response headers per spec §4.G, and nothing reads
// RateBudget at dispatch time.
var Catalog = struct {
	// Authentication
	OAuthToken Endpoint

	// User
	UserProfile Endpoint

	// Accounts (parameterized by {account_id} and, for order endpoints,
	// {order_id})
	AccountBalances  Endpoint
	AccountPositions Endpoint
	AccountOrders    Endpoint
	AccountOrder     Endpoint
	PlaceOrder       Endpoint
	CancelOrder      Endpoint
	AccountHistory   Endpoint
	AccountGainLoss  Endpoint
	Watchlists            Endpoint
	Watchlist             Endpoint
	CreateWatchlist       Endpoint
	UpdateWatchlist       Endpoint
	DeleteWatchlist       Endpoint
	WatchlistSymbols      Endpoint
	RemoveWatchlistSymbol Endpoint
	RequestExport    Endpoint
	ExportStatus     Endpoint

	// Markets
	Quotes            Endpoint
	Clock             Endpoint
	Calendar          Endpoint
	History           Endpoint
	TimeSales         Endpoint
	OptionChains      Endpoint
	OptionExpirations Endpoint
	OptionStrikes     Endpoint
	SymbolSearch      Endpoint

	// Streaming session creation + SSE read
	MarketEventsSession  Endpoint
	AccountEventsSession Endpoint
	MarketEventsSSE      Endpoint
	AccountEventsSSE     Endpoint

	// Fundamentals (beta)
	FundamentalsCompany          Endpoint
	FundamentalsRatios           Endpoint
	FundamentalsFinancials       Endpoint
	FundamentalsPriceStats       Endpoint
	FundamentalsCorporateCalendar Endpoint
	FundamentalsDividends        Endpoint
}{
	OAuthToken: Endpoint{PathTemplate: "/v1/oauth/accesstoken", Method: "POST", Auth: AuthBasic, RateBudget: 1},

	UserProfile: Endpoint{PathTemplate: "/v1/user/profile", Method: "GET", Auth: AuthBearer, RateBudget: 60},

	AccountBalances:  Endpoint{PathTemplate: "/v1/accounts/{account_id}/balances", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	AccountPositions: Endpoint{PathTemplate: "/v1/accounts/{account_id}/positions", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	AccountOrders:    Endpoint{PathTemplate: "/v1/accounts/{account_id}/orders", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	AccountOrder:     Endpoint{PathTemplate: "/v1/accounts/{account_id}/orders/{order_id}", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	PlaceOrder:       Endpoint{PathTemplate: "/v1/accounts/{account_id}/orders", Method: "POST", Auth: AuthBearer, RateBudget: 60},
	CancelOrder:      Endpoint{PathTemplate: "/v1/accounts/{account_id}/orders/{order_id}", Method: "DELETE", Auth: AuthBearer, RateBudget: 60},
	AccountHistory:   Endpoint{PathTemplate: "/v1/accounts/{account_id}/history", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	AccountGainLoss:  Endpoint{PathTemplate: "/v1/accounts/{account_id}/gainloss", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	Watchlists:            Endpoint{PathTemplate: "/v1/watchlists", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	Watchlist:             Endpoint{PathTemplate: "/v1/watchlists/{watchlist_id}", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	CreateWatchlist:       Endpoint{PathTemplate: "/v1/watchlists", Method: "POST", Auth: AuthBearer, RateBudget: 120},
	UpdateWatchlist:       Endpoint{PathTemplate: "/v1/watchlists/{watchlist_id}", Method: "PUT", Auth: AuthBearer, RateBudget: 120},
	DeleteWatchlist:       Endpoint{PathTemplate: "/v1/watchlists/{watchlist_id}", Method: "DELETE", Auth: AuthBearer, RateBudget: 120},
	WatchlistSymbols:      Endpoint{PathTemplate: "/v1/watchlists/{watchlist_id}/symbols", Method: "POST", Auth: AuthBearer, RateBudget: 120},
	RemoveWatchlistSymbol: Endpoint{PathTemplate: "/v1/watchlists/{watchlist_id}/symbols/{symbol}", Method: "DELETE", Auth: AuthBearer, RateBudget: 120},
	RequestExport:    Endpoint{PathTemplate: "/v1/accounts/{account_id}/history/export", Method: "POST", Auth: AuthBearer, RateBudget: 10},
	ExportStatus:     Endpoint{PathTemplate: "/v1/accounts/{account_id}/history/export/{export_id}", Method: "GET", Auth: AuthBearer, RateBudget: 60},

	Quotes:            Endpoint{PathTemplate: "/v1/markets/quotes", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	Clock:             Endpoint{PathTemplate: "/v1/markets/clock", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	Calendar:          Endpoint{PathTemplate: "/v1/markets/calendar", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	History:           Endpoint{PathTemplate: "/v1/markets/history", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	TimeSales:         Endpoint{PathTemplate: "/v1/markets/timesales", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	OptionChains:      Endpoint{PathTemplate: "/v1/markets/options/chains", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	OptionExpirations: Endpoint{PathTemplate: "/v1/markets/options/expirations", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	OptionStrikes:     Endpoint{PathTemplate: "/v1/markets/options/strikes", Method: "GET", Auth: AuthBearer, RateBudget: 120},
	SymbolSearch:      Endpoint{PathTemplate: "/v1/markets/search", Method: "GET", Auth: AuthBearer, RateBudget: 120},

	MarketEventsSession:  Endpoint{PathTemplate: "/v1/markets/events/session", Method: "POST", Auth: AuthBearer, RateBudget: 60},
	AccountEventsSession: Endpoint{PathTemplate: "/v1/accounts/events/session", Method: "POST", Auth: AuthBearer, RateBudget: 60},
	MarketEventsSSE:      Endpoint{PathTemplate: "/v1/markets/events/{session_id}", Method: "GET", Auth: AuthBearer, RateBudget: 60},
	AccountEventsSSE:     Endpoint{PathTemplate: "/v1/accounts/events/{session_id}", Method: "GET", Auth: AuthBearer, RateBudget: 60},

	FundamentalsCompany:           Endpoint{PathTemplate: "/beta/markets/fundamentals/company", Method: "GET", Auth: AuthBearer, RateBudget: 60},
	FundamentalsRatios:            Endpoint{PathTemplate: "/beta/markets/fundamentals/ratios", Method: "GET", Auth: AuthBearer, RateBudget: 60},
	FundamentalsFinancials:        Endpoint{PathTemplate: "/beta/markets/fundamentals/financials", Method: "GET", Auth: AuthBearer, RateBudget: 60},
	FundamentalsPriceStats:        Endpoint{PathTemplate: "/beta/markets/fundamentals/price_stats", Method: "GET", Auth: AuthBearer, RateBudget: 60},
	FundamentalsCorporateCalendar: Endpoint{PathTemplate: "/beta/markets/fundamentals/corporate_calendar", Method: "GET", Auth: AuthBearer, RateBudget: 60},
	FundamentalsDividends:         Endpoint{PathTemplate: "/beta/markets/fundamentals/dividend", Method: "GET", Auth: AuthBearer, RateBudget: 60},
}

// ResolvePath substitutes named placeholders ({account_id}, {order_id},
// {session_id}, {watchlist_id}, {export_id}) into ep's path template. Each
// substitution is the caller's already-validated value (§4.F validators run
// before this is called); ResolvePath itself only refuses an empty
// replacement, since letting an empty string collapse "//" into the path
// would silently change which resource the request addresses.
func ResolvePath(ep Endpoint, params map[string]string) (string, error) {
	path := ep.PathTemplate
	for name, value := range params {
		placeholder := "{" + name + "}"
		if !strings.Contains(path, placeholder) {
			continue
		}
		if value == "" {
			return "", fmt.Errorf("cannot build path %s: empty value for %s", ep.PathTemplate, name)
		}
		path = strings.ReplaceAll(path, placeholder, value)
	}
	if strings.Contains(path, "{") {
		return "", fmt.Errorf("unresolved placeholder in path template %s", ep.PathTemplate)
	}
	return path, nil
}
