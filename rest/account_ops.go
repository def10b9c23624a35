package rest

import (
	"context"
	"net/url"

	"github.com/go-tradier/tradier-go/rest/account"
	"github.com/go-tradier/tradier-go/validate"
)

// AccountBalances fetches the balances snapshot for accountID.
func (c *Client) AccountBalances(ctx context.Context, accountID string) (account.Balances, error) {
	accountID, err := validate.ValidateAccountID(accountID)
	if err != nil {
		return account.Balances{}, err
	}
	raw, _, err := c.Do(ctx, Catalog.AccountBalances, map[string]string{"account_id": accountID}, nil, nil)
	if err != nil {
		return account.Balances{}, err
	}
	return account.DecodeBalances(unwrap(raw, "balances"))
}

// AccountPositions fetches the open positions for accountID.
func (c *Client) AccountPositions(ctx context.Context, accountID string) ([]account.Position, error) {
	accountID, err := validate.ValidateAccountID(accountID)
	if err != nil {
		return nil, err
	}
	raw, _, err := c.Do(ctx, Catalog.AccountPositions, map[string]string{"account_id": accountID}, nil, nil)
	if err != nil {
		return nil, err
	}
	return account.DecodePositions(unwrap(raw, "positions", "position"))
}

// AccountOrders fetches every order on accountID.
func (c *Client) AccountOrders(ctx context.Context, accountID string) ([]account.Order, error) {
	accountID, err := validate.ValidateAccountID(accountID)
	if err != nil {
		return nil, err
	}
	raw, _, err := c.Do(ctx, Catalog.AccountOrders, map[string]string{"account_id": accountID}, nil, nil)
	if err != nil {
		return nil, err
	}
	return account.DecodeOrders(unwrap(raw, "orders", "order"))
}

// AccountOrder fetches a single order by id.
func (c *Client) AccountOrder(ctx context.Context, accountID, orderID string) (account.Order, error) {
	accountID, err := validate.ValidateAccountID(accountID)
	if err != nil {
		return account.Order{}, err
	}
	orderID, err = validate.ValidateOrderID(orderID)
	if err != nil {
		return account.Order{}, err
	}
	raw, _, err := c.Do(ctx, Catalog.AccountOrder, map[string]string{"account_id": accountID, "order_id": orderID}, nil, nil)
	if err != nil {
		return account.Order{}, err
	}
	return account.DecodeOrder(unwrap(raw, "order"))
}

// HistoryFilter narrows an AccountHistory call.
type HistoryFilter struct {
	Start  string
	End    string
	Symbol string
	Type   string
}

// AccountHistory fetches the transaction history for accountID.
func (c *Client) AccountHistory(ctx context.Context, accountID string, filter HistoryFilter) ([]account.HistoryItem, error) {
	accountID, err := validate.ValidateAccountID(accountID)
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	if filter.Start != "" {
		query.Set("start", filter.Start)
	}
	if filter.End != "" {
		query.Set("end", filter.End)
	}
	if filter.Symbol != "" {
		query.Set("symbol", filter.Symbol)
	}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}
	raw, _, err := c.Do(ctx, Catalog.AccountHistory, map[string]string{"account_id": accountID}, query, nil)
	if err != nil {
		return nil, err
	}
	return account.DecodeHistory(unwrap(raw, "history", "event"))
}

// AccountGainLoss fetches realized gain/loss items for accountID.
func (c *Client) AccountGainLoss(ctx context.Context, accountID string, filter HistoryFilter) ([]account.GainLossItem, error) {
	accountID, err := validate.ValidateAccountID(accountID)
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	if filter.Start != "" {
		query.Set("start", filter.Start)
	}
	if filter.End != "" {
		query.Set("end", filter.End)
	}
	if filter.Symbol != "" {
		query.Set("symbol", filter.Symbol)
	}
	raw, _, err := c.Do(ctx, Catalog.AccountGainLoss, map[string]string{"account_id": accountID}, query, nil)
	if err != nil {
		return nil, err
	}
	return account.DecodeGainLoss(unwrap(raw, "gainloss", "closed_position"))
}

// Watchlists fetches the caller's watchlist summaries.
func (c *Client) Watchlists(ctx context.Context) ([]account.Watchlist, error) {
	raw, _, err := c.Do(ctx, Catalog.Watchlists, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return account.DecodeWatchlists(unwrap(raw, "watchlists", "watchlist"))
}

// Watchlist fetches one watchlist's detail, including its symbol items.
func (c *Client) Watchlist(ctx context.Context, watchlistID string) (account.Watchlist, error) {
	raw, _, err := c.Do(ctx, Catalog.Watchlist, map[string]string{"watchlist_id": watchlistID}, nil, nil)
	if err != nil {
		return account.Watchlist{}, err
	}
	return account.DecodeWatchlist(unwrap(raw, "watchlist"))
}

// AddWatchlistSymbols appends symbols to an existing watchlist.
func (c *Client) AddWatchlistSymbols(ctx context.Context, watchlistID string, symbols []string) (account.Watchlist, error) {
	for _, s := range symbols {
		if _, err := validate.ValidateSymbol(s); err != nil {
			return account.Watchlist{}, err
		}
	}
	form := url.Values{}
	for _, s := range symbols {
		form.Add("symbols[]", s)
	}
	raw, _, err := c.Do(ctx, Catalog.WatchlistSymbols, map[string]string{"watchlist_id": watchlistID}, nil, form)
	if err != nil {
		return account.Watchlist{}, err
	}
	return account.DecodeWatchlist(unwrap(raw, "watchlist"))
}

// CreateWatchlist creates a new watchlist named name, optionally seeded
// with symbols.
func (c *Client) CreateWatchlist(ctx context.Context, name string, symbols []string) (account.Watchlist, error) {
	for _, s := range symbols {
		if _, err := validate.ValidateSymbol(s); err != nil {
			return account.Watchlist{}, err
		}
	}
	form := url.Values{}
	form.Set("name", name)
	for _, s := range symbols {
		form.Add("symbols[]", s)
	}
	raw, _, err := c.Do(ctx, Catalog.CreateWatchlist, nil, nil, form)
	if err != nil {
		return account.Watchlist{}, err
	}
	return account.DecodeWatchlist(unwrap(raw, "watchlist"))
}

// UpdateWatchlist renames a watchlist and/or replaces its symbol set. A
// nil symbols slice leaves the existing items untouched; a non-nil slice
// replaces them wholesale, matching the broker's PUT semantics.
func (c *Client) UpdateWatchlist(ctx context.Context, watchlistID, name string, symbols []string) (account.Watchlist, error) {
	for _, s := range symbols {
		if _, err := validate.ValidateSymbol(s); err != nil {
			return account.Watchlist{}, err
		}
	}
	form := url.Values{}
	if name != "" {
		form.Set("name", name)
	}
	for _, s := range symbols {
		form.Add("symbols[]", s)
	}
	raw, _, err := c.Do(ctx, Catalog.UpdateWatchlist, map[string]string{"watchlist_id": watchlistID}, nil, form)
	if err != nil {
		return account.Watchlist{}, err
	}
	return account.DecodeWatchlist(unwrap(raw, "watchlist"))
}

// DeleteWatchlist removes a watchlist. The broker responds with the
// remaining watchlist summaries, which are returned for convenience.
func (c *Client) DeleteWatchlist(ctx context.Context, watchlistID string) ([]account.Watchlist, error) {
	raw, _, err := c.Do(ctx, Catalog.DeleteWatchlist, map[string]string{"watchlist_id": watchlistID}, nil, nil)
	if err != nil {
		return nil, err
	}
	return account.DecodeWatchlists(unwrap(raw, "watchlists", "watchlist"))
}

// RemoveWatchlistSymbol removes one symbol from a watchlist.
func (c *Client) RemoveWatchlistSymbol(ctx context.Context, watchlistID, symbol string) (account.Watchlist, error) {
	symbol, err := validate.ValidateSymbol(symbol)
	if err != nil {
		return account.Watchlist{}, err
	}
	raw, _, err := c.Do(ctx, Catalog.RemoveWatchlistSymbol, map[string]string{"watchlist_id": watchlistID, "symbol": symbol}, nil, nil)
	if err != nil {
		return account.Watchlist{}, err
	}
	return account.DecodeWatchlist(unwrap(raw, "watchlist"))
}

// RequestExport requests an asynchronous account-history data export,
// grounded on the teacher's request_export_report.go.
func (c *Client) RequestExport(ctx context.Context, accountID string, filter HistoryFilter) (account.ExportStatus, error) {
	accountID, err := validate.ValidateAccountID(accountID)
	if err != nil {
		return account.ExportStatus{}, err
	}
	form := url.Values{}
	if filter.Start != "" {
		form.Set("start", filter.Start)
	}
	if filter.End != "" {
		form.Set("end", filter.End)
	}
	raw, _, err := c.Do(ctx, Catalog.RequestExport, map[string]string{"account_id": accountID}, nil, form)
	if err != nil {
		return account.ExportStatus{}, err
	}
	return account.DecodeExportStatus(unwrap(raw, "export"))
}

// ExportStatus polls the status of a previously requested export.
func (c *Client) ExportStatus(ctx context.Context, accountID, exportID string) (account.ExportStatus, error) {
	accountID, err := validate.ValidateAccountID(accountID)
	if err != nil {
		return account.ExportStatus{}, err
	}
	raw, _, err := c.Do(ctx, Catalog.ExportStatus, map[string]string{"account_id": accountID, "export_id": exportID}, nil, nil)
	if err != nil {
		return account.ExportStatus{}, err
	}
	return account.DecodeExportStatus(unwrap(raw, "export"))
}
