package schema

// balanceFields covers the account balances snapshot. All numeric fields
// default to zero on absent/null per spec §3 and so are intentionally not
// marked required.
func balanceFields() map[string]FieldInfo {
	return map[string]FieldInfo{
		"account_number": {
			Name: "account_number", Description: "Account identifier", Type: FieldString, Required: true,
			Constraints: []Constraint{{Rule: RulePattern, StringValue: `^[A-Z0-9]{8,16}$`, Message: "must be a valid account id"}},
			Category:    "identity",
		},
		"total_equity":     {Name: "total_equity", Description: "Total account equity", Type: FieldDouble, Category: "balances"},
		"total_cash":       {Name: "total_cash", Description: "Total cash balance", Type: FieldDouble, Category: "balances"},
		"option_long_value":  {Name: "option_long_value", Description: "Market value of long options", Type: FieldDouble, Category: "balances"},
		"option_short_value": {Name: "option_short_value", Description: "Market value of short options", Type: FieldDouble, Category: "balances"},
		"stock_long_value":   {Name: "stock_long_value", Description: "Market value of long stock", Type: FieldDouble, Category: "balances"},
		"margin_balance":     {Name: "margin_balance", Description: "Margin-account-specific balance block", Type: FieldObject, Category: "balances"},
		"cash_balance":       {Name: "cash_balance", Description: "Cash-account-specific balance block", Type: FieldObject, Category: "balances"},
		"pdt_balance":        {Name: "pdt_balance", Description: "Pattern-day-trader-account-specific balance block", Type: FieldObject, Category: "balances"},
		"day_trade_buying_power": {Name: "day_trade_buying_power", Description: "Remaining day-trade buying power", Type: FieldDouble, Category: "margin"},
	}
}

// positionFields covers a single open position record.
func positionFields() map[string]FieldInfo {
	return map[string]FieldInfo{
		"symbol": {
			Name: "symbol", Description: "Position symbol", Type: FieldString, Required: true,
			Constraints: []Constraint{{Rule: RulePattern, StringValue: `^[A-Z0-9.^-]{1,10}$`, Message: "must be a valid ticker symbol"}},
			Category:    "identity",
		},
		"quantity":     {Name: "quantity", Description: "Signed position size (negative for short)", Type: FieldDouble, Required: true, Category: "sizing"},
		"cost_basis":   {Name: "cost_basis", Description: "Total cost basis", Type: FieldDouble, Category: "economics"},
		"date_acquired": {Name: "date_acquired", Description: "Acquisition date", Type: FieldDate, Category: "lifecycle"},
		"id": {
			Name: "id", Description: "Position identifier", Type: FieldInteger, Category: "identity",
		},
	}
}

// gainLossFields covers a closed-position realized gain/loss item.
func gainLossFields() map[string]FieldInfo {
	return map[string]FieldInfo{
		"symbol":        {Name: "symbol", Description: "Symbol of the closed position", Type: FieldString, Required: true, Category: "identity"},
		"quantity":      {Name: "quantity", Description: "Closed quantity", Type: FieldDouble, Required: true, Category: "sizing"},
		"gain_loss":     {Name: "gain_loss", Description: "Realized gain or loss", Type: FieldDouble, Category: "economics"},
		"gain_loss_percent": {Name: "gain_loss_percent", Description: "Realized gain or loss as a percentage", Type: FieldDouble, Category: "economics"},
		"close_date":    {Name: "close_date", Description: "Position close date", Type: FieldDate, Category: "lifecycle"},
		"open_date":     {Name: "open_date", Description: "Position open date", Type: FieldDate, Category: "lifecycle"},
		"proceeds":      {Name: "proceeds", Description: "Proceeds from closing", Type: FieldDouble, Category: "economics"},
		"cost":          {Name: "cost", Description: "Original cost", Type: FieldDouble, Category: "economics"},
		"term":          {Name: "term", Description: "Short-term or long-term holding period", Type: FieldString, Category: "classification"},
	}
}

// historyFields covers a single account-history transaction entry.
func historyFields() map[string]FieldInfo {
	return map[string]FieldInfo{
		"amount": {Name: "amount", Description: "Transaction amount", Type: FieldDouble, Required: true, Category: "economics"},
		"date":   {Name: "date", Description: "Transaction date", Type: FieldDate, Required: true, Category: "lifecycle"},
		"type":   {Name: "type", Description: "Transaction type (trade, journal, dividend, ...)", Type: FieldString, Required: true, Category: "classification"},
		"description": {Name: "description", Description: "Human-readable transaction description", Type: FieldString, Category: "display"},
		"trade_details": {Name: "trade_details", Description: "Nested trade detail block when type == trade", Type: FieldObject, Category: "composition"},
	}
}

// accessTokenFields covers the OAuth token-exchange response.
func accessTokenFields() map[string]FieldInfo {
	return map[string]FieldInfo{
		"access_token": {Name: "access_token", Description: "Bearer token value", Type: FieldString, Required: true, Category: "auth"},
		"token_type":   {Name: "token_type", Description: "Token type, always \"Bearer\"", Type: FieldString, Required: true, Category: "auth"},
		"scope":        {Name: "scope", Description: "Space-delimited granted scopes", Type: FieldString, Category: "auth"},
		"expires_in":   {Name: "expires_in", Description: "Seconds until expiry", Type: FieldInteger, Category: "auth"},
		"refresh_token": {Name: "refresh_token", Description: "Opaque refresh token", Type: FieldOptional, Category: "auth"},
	}
}

// watchlistFields covers a watchlist summary/detail record.
func watchlistFields() map[string]FieldInfo {
	return map[string]FieldInfo{
		"id":   {Name: "id", Description: "Watchlist identifier", Type: FieldString, Required: true, Category: "identity"},
		"name": {Name: "name", Description: "Watchlist display name", Type: FieldString, Required: true, Category: "identity"},
		"public_id": {Name: "public_id", Description: "Shareable watchlist identifier", Type: FieldString, Category: "identity"},
		"items": {Name: "items", Description: "Symbols contained in the watchlist", Type: FieldArray, Category: "composition"},
	}
}
