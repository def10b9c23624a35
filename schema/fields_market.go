package schema

// quoteFields covers the symbol-keyed market snapshot of spec §3: bid/ask/
// last/sizes/exchanges/session range/previous close/52-week range/trade
// timestamps, plus the optional option-specific fields (strike, expiration,
// option type, root, Greeks, IVs, open interest).
func quoteFields() map[string]FieldInfo {
	return map[string]FieldInfo{
		"symbol": {
			Name: "symbol", Description: "Quoted symbol", Type: FieldString, Required: true,
			Constraints: []Constraint{{Rule: RulePattern, StringValue: `^[A-Z0-9.^-]{1,10}$`, Message: "must be a valid ticker symbol"}},
			Category:    "identity",
		},
		"bid":       {Name: "bid", Description: "Best bid price", Type: FieldDouble, Category: "pricing"},
		"ask":       {Name: "ask", Description: "Best ask price", Type: FieldDouble, Category: "pricing"},
		"last":      {Name: "last", Description: "Last trade price", Type: FieldDouble, Category: "pricing"},
		"bid_size":  {Name: "bid_size", Description: "Size at best bid", Type: FieldInteger, Category: "pricing"},
		"ask_size":  {Name: "ask_size", Description: "Size at best ask", Type: FieldInteger, Category: "pricing"},
		"bid_exchange": {Name: "bid_exchange", Description: "Exchange posting the best bid", Type: FieldOptional, Category: "venue"},
		"ask_exchange": {Name: "ask_exchange", Description: "Exchange posting the best ask", Type: FieldOptional, Category: "venue"},
		"open":      {Name: "open", Description: "Session open price", Type: FieldDouble, Category: "session"},
		"high":      {Name: "high", Description: "Session high price", Type: FieldDouble, Category: "session"},
		"low":       {Name: "low", Description: "Session low price", Type: FieldDouble, Category: "session"},
		"close":     {Name: "close", Description: "Session close price", Type: FieldOptional, Category: "session"},
		"prevclose": {Name: "prevclose", Description: "Previous session close", Type: FieldDouble, Category: "session"},
		"week_52_high": {Name: "week_52_high", Description: "52-week high", Type: FieldDouble, Category: "range"},
		"week_52_low":  {Name: "week_52_low", Description: "52-week low", Type: FieldDouble, Category: "range"},
		"volume":    {Name: "volume", Description: "Session cumulative volume", Type: FieldInteger, Category: "session"},
		"trade_date": {Name: "trade_date", Description: "Timestamp of the last trade", Type: FieldDateTime, Category: "session"},
		"strike": {
			Name: "strike", Description: "Option strike price", Type: FieldOptional, Category: "option",
			Constraints: []Constraint{{Rule: RulePositiveNumber, Message: "strike must be positive when present"}},
		},
		"expiration_date": {Name: "expiration_date", Description: "Option expiration date", Type: FieldOptional, Category: "option"},
		"option_type":     {Name: "option_type", Description: "Call or put", Type: FieldOptional, ValidValues: []string{"call", "put"}, Category: "option"},
		"root_symbol":     {Name: "root_symbol", Description: "Option root symbol", Type: FieldOptional, Category: "option"},
		"greeks":          {Name: "greeks", Description: "Option Greeks block (delta/gamma/theta/vega/rho/phi)", Type: FieldObject, Category: "option"},
		"open_interest":   {Name: "open_interest", Description: "Option open interest", Type: FieldOptional, Category: "option"},
	}
}

// historicalFields covers a single OHLCV bar.
func historicalFields() map[string]FieldInfo {
	return map[string]FieldInfo{
		"date":   {Name: "date", Description: "Bar date/time", Type: FieldDateTime, Required: true, Category: "identity"},
		"open":   {Name: "open", Description: "Open price", Type: FieldDouble, Required: true, Category: "ohlc"},
		"high":   {Name: "high", Description: "High price", Type: FieldDouble, Required: true, Category: "ohlc"},
		"low":    {Name: "low", Description: "Low price", Type: FieldDouble, Required: true, Category: "ohlc"},
		"close":  {Name: "close", Description: "Close price", Type: FieldDouble, Required: true, Category: "ohlc"},
		"volume": {Name: "volume", Description: "Bar volume", Type: FieldInteger, Category: "ohlc"},
	}
}

// timeSalesFields covers a single tick-level time-and-sales record.
func timeSalesFields() map[string]FieldInfo {
	return map[string]FieldInfo{
		"time":  {Name: "time", Description: "Tick timestamp", Type: FieldDateTime, Required: true, Category: "identity"},
		"price": {Name: "price", Description: "Trade price", Type: FieldDouble, Required: true, Category: "pricing"},
		"open":  {Name: "open", Description: "Interval open", Type: FieldDouble, Category: "ohlc"},
		"high":  {Name: "high", Description: "Interval high", Type: FieldDouble, Category: "ohlc"},
		"low":   {Name: "low", Description: "Interval low", Type: FieldDouble, Category: "ohlc"},
		"close": {Name: "close", Description: "Interval close", Type: FieldDouble, Category: "ohlc"},
		"volume": {Name: "volume", Description: "Interval volume", Type: FieldInteger, Category: "ohlc"},
		"vwap":  {Name: "vwap", Description: "Interval volume-weighted average price", Type: FieldOptional, Category: "ohlc"},
	}
}

// clockFields covers the market clock/status response.
func clockFields() map[string]FieldInfo {
	return map[string]FieldInfo{
		"date":        {Name: "date", Description: "Current exchange date", Type: FieldDate, Required: true, Category: "identity"},
		"state":       {Name: "state", Description: "Market state (premarket/open/postmarket/closed)", Type: FieldEnum, Required: true, ValidValues: []string{"premarket", "open", "postmarket", "closed"}, Category: "state"},
		"timestamp":   {Name: "timestamp", Description: "Server timestamp backing this clock read", Type: FieldInteger, Category: "state"},
		"next_change": {Name: "next_change", Description: "Time of the next state change", Type: FieldOptional, Category: "state"},
		"description": {Name: "description", Description: "Human-readable state description", Type: FieldString, Category: "display"},
	}
}

// calendarFields covers a single trading-calendar day entry.
func calendarFields() map[string]FieldInfo {
	return map[string]FieldInfo{
		"date":   {Name: "date", Description: "Calendar date", Type: FieldDate, Required: true, Category: "identity"},
		"status": {Name: "status", Description: "open/closed for the day", Type: FieldEnum, Required: true, ValidValues: []string{"open", "closed"}, Category: "state"},
		"description": {Name: "description", Description: "Holiday/half-day description", Type: FieldOptional, Category: "display"},
		"premarket":  {Name: "premarket", Description: "Pre-market session hours block", Type: FieldObject, Category: "hours"},
		"open":       {Name: "open", Description: "Regular session hours block", Type: FieldObject, Category: "hours"},
		"postmarket": {Name: "postmarket", Description: "Post-market session hours block", Type: FieldObject, Category: "hours"},
	}
}

// symbolSearchFields covers a single symbol-search result row.
func symbolSearchFields() map[string]FieldInfo {
	return map[string]FieldInfo{
		"symbol":      {Name: "symbol", Description: "Matched symbol", Type: FieldString, Required: true, Category: "identity"},
		"exchange":    {Name: "exchange", Description: "Listing exchange", Type: FieldOptional, Category: "venue"},
		"type":        {Name: "type", Description: "Instrument type", Type: FieldOptional, Category: "classification"},
		"description": {Name: "description", Description: "Company/instrument name", Type: FieldString, Category: "display"},
	}
}

// optionChainFields covers a single option-chain leg entry (a quote plus
// the contract-identity fields carried only by chain/expiration/strike
// responses, not by a plain equity quote).
func optionChainFields() map[string]FieldInfo {
	fields := quoteFields()
	fields["symbol"] = FieldInfo{
		Name: "symbol", Description: "OCC-format option symbol", Type: FieldString, Required: true,
		Constraints: []Constraint{{Rule: RulePattern, StringValue: `^[A-Z]+[0-9]{6}[CP][0-9]{8}$`, Message: "must be a valid OCC option symbol"}},
		Category:    "identity",
	}
	fields["strike"] = FieldInfo{
		Name: "strike", Description: "Option strike price", Type: FieldDouble, Required: true, Category: "option",
		Constraints: []Constraint{{Rule: RulePositiveNumber, Message: "strike must be positive"}},
	}
	fields["expiration_date"] = FieldInfo{Name: "expiration_date", Description: "Option expiration date", Type: FieldDate, Required: true, Category: "option"}
	fields["option_type"] = FieldInfo{Name: "option_type", Description: "Call or put", Type: FieldEnum, Required: true, ValidValues: []string{"call", "put"}, Category: "option"}
	return fields
}

// streamingFields covers the envelope shared by every decoded streaming
// frame (see streaming/messages), independent of the per-type payload.
func streamingFields() map[string]FieldInfo {
	return map[string]FieldInfo{
		"type":   {Name: "type", Description: "Frame discriminator", Type: FieldEnum, Required: true, ValidValues: []string{"quote", "trade", "summary", "timesale", "tradex", "order", "journal", "fill"}, Category: "identity"},
		"symbol": {Name: "symbol", Description: "Symbol the frame concerns", Type: FieldOptional, Category: "identity"},
	}
}
