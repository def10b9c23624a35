package errors

import "time"

// buildTable assembles the taxonomy. The six entries carrying a concrete,
// broker-sourced description are reproduced byte-for-byte from the
// upstream mapping; everything else gets a derived entry: description from
// the identifier's own wording, and a category, severity and retry behavior
// chosen per code. The category usually, but not always, follows the
// code's declaration group (LongOptionTradingDeniedForAccount is declared
// with the account errors but categorized as options). Most derived
// entries are NoRetry, every margin code among them; the retryable ones are
// the codes tied to live market state (stale quotes, stop/price bands,
// pre-market and volatility pauses), OmsUnavailable and
// ContingentOrderExecution.
func buildTable() map[Code]Info {
	m := make(map[Code]Info, Unknown+1)

	// The six codes with verbatim upstream descriptions.
	m[AccountDisabled] = Info{
		Code:        AccountDisabled,
		Name:        "AccountDisabled",
		Description: "Account is disabled for trading. Please contact 980-272-3880 for questions or concerns.",
		Category:    CategoryAccount,
		Severity:    SeverityCritical,
		RetryBehavior: NoRetry,
		RetryDelay:  0,
		RecoverySuggestions: []string{
			"Contact support at 980-272-3880",
			"Verify account status",
			"Check account permissions",
		},
		ContactInfo: supportNumber,
		IsRetryable: false,
	}
	m[AccountIsNotApproved] = Info{
		Code:        AccountIsNotApproved,
		Name:        "AccountIsNotApproved",
		Description: "Account is not approved for trading. Please contact 980-272-3880 for questions or concerns",
		Category:    CategoryAccount,
		Severity:    SeverityCritical,
		RetryBehavior: NoRetry,
		RetryDelay:  0,
		RecoverySuggestions: []string{
			"Contact support at 980-272-3880",
			"Complete account approval process",
			"Submit required documentation",
		},
		ContactInfo: supportNumber,
		IsRetryable: false,
	}
	m[DayTradingBuyingPowerExceeded] = Info{
		Code:        DayTradingBuyingPowerExceeded,
		Name:        "DayTradingBuyingPowerExceeded",
		Description: "There is not enough day trading buying power for the requested order",
		Category:    CategoryMargin,
		Severity:    SeverityError,
		RetryBehavior: NoRetry,
		RetryDelay:  0,
		RecoverySuggestions: []string{
			"Reduce order size",
			"Close existing positions",
			"Add funds to account",
			"Wait for settlements",
		},
		ContactInfo: supportNumber,
		IsRetryable: false,
	}
	m[BuyStopOrderStopPriceLessAsk] = Info{
		Code:        BuyStopOrderStopPriceLessAsk,
		Name:        "BuyStopOrderStopPriceLessAsk",
		Description: "Buy Stop order must have a Stop price greater than the current Ask price",
		Category:    CategoryValidation,
		Severity:    SeverityError,
		RetryBehavior: RetryWithDelay,
		RetryDelay:  1 * time.Second,
		RecoverySuggestions: []string{
			"Set stop price above current ask",
			"Use limit order instead",
			"Check current market price",
		},
		ContactInfo: "",
		IsRetryable: true,
	}
	m[InitialMargin] = Info{
		Code:        InitialMargin,
		Name:        "InitialMargin",
		Description: "You do not have enough buying power for this trade",
		Category:    CategoryMargin,
		Severity:    SeverityError,
		RetryBehavior: NoRetry,
		RetryDelay:  0,
		RecoverySuggestions: []string{
			"Reduce order size",
			"Add funds to account",
			"Close existing positions",
		},
		ContactInfo: "",
		IsRetryable: false,
	}
	m[OmsInternalError] = Info{
		Code:        OmsInternalError,
		Name:        "OmsInternalError",
		Description: "Your order could not be processed. Please contact 980-272-3880 for questions or concerns",
		Category:    CategorySystem,
		Severity:    SeverityCritical,
		RetryBehavior: RetryWithBackoff,
		RetryDelay:  5 * time.Second,
		RecoverySuggestions: []string{
			"Retry order",
			"Contact support at 980-272-3880",
			"Check system status",
		},
		ContactInfo: supportNumber,
		IsRetryable: true,
	}
	m[Unknown] = Info{
		Code:        Unknown,
		Name:        "Unknown",
		Description: "An unknown error occurred",
		Category:    CategorySystem,
		Severity:    SeverityError,
		RetryBehavior: RetryWithDelay,
		RetryDelay:  2 * time.Second,
		RecoverySuggestions: []string{
			"Retry operation",
			"Check request parameters",
			"Contact support if persists",
		},
		ContactInfo: supportNumber,
		IsRetryable: true,
	}

	// Remaining declared codes: derived entries, grouped the same way the
	// declaration block above groups them.
	derive := func(code Code, name, desc string, cat Category, sev Severity, retry RetryBehavior, delay time.Duration, retryable bool, suggestions ...string) {
		contact := ""
		if sev == SeverityCritical {
			contact = supportNumber
		}
		m[code] = Info{
			Code: code, Name: name, Description: desc, Category: cat, Severity: sev,
			RetryBehavior: retry, RetryDelay: delay, RecoverySuggestions: suggestions,
			ContactInfo: contact, IsRetryable: retryable,
		}
	}

	derive(AccountMarginRuleViolation, "AccountMarginRuleViolation",
		"Order violates an account margin rule", CategoryMargin, SeverityError, NoRetry, 0, false,
		"Review margin requirements", "Reduce order size")
	derive(AssetTradingNotConfiguredForAccount, "AssetTradingNotConfiguredForAccount",
		"Account is not configured to trade this asset class", CategoryAccount, SeverityError, NoRetry, 0, false,
		"Request asset class approval", "Contact support at 980-272-3880")
	derive(DayTraderPatternRestriction, "DayTraderPatternRestriction",
		"Order is blocked by pattern day trader restrictions", CategoryAccount, SeverityError, NoRetry, 0, false,
		"Reduce day trade frequency", "Increase account equity above the PDT threshold")
	derive(LongOptionTradingDeniedForAccount, "LongOptionTradingDeniedForAccount",
		"Account is not approved for long option trading", CategoryOptions, SeverityError, NoRetry, 0, false,
		"Request options trading approval", "Contact support at 980-272-3880")
	derive(ShortOptionTradingDeniedForAccount, "ShortOptionTradingDeniedForAccount",
		"Account is not approved for short option trading", CategoryOptions, SeverityError, NoRetry, 0, false,
		"Request higher options trading level", "Contact support at 980-272-3880")
	derive(ShortStockTradingDeniedForAccount, "ShortStockTradingDeniedForAccount",
		"Account is not approved for short stock trading", CategoryAccount, SeverityError, NoRetry, 0, false,
		"Request margin/short-selling approval", "Contact support at 980-272-3880")
	derive(SpreadTradingDeniedForAccount, "SpreadTradingDeniedForAccount",
		"Account is not approved for spread order trading", CategoryOptions, SeverityError, NoRetry, 0, false,
		"Request options spread trading approval")
	derive(TradingDeniedForAccount, "TradingDeniedForAccount",
		"Trading is denied for this account", CategoryAccount, SeverityCritical, NoRetry, 0, false,
		"Contact support at 980-272-3880")
	derive(TradingDeniedForSecurity, "TradingDeniedForSecurity",
		"Trading is denied for this security", CategoryTrading, SeverityError, NoRetry, 0, false,
		"Verify the security is tradable", "Choose a different instrument")
	derive(UserDisabled, "UserDisabled",
		"User is disabled", CategoryAccount, SeverityCritical, NoRetry, 0, false,
		"Contact support at 980-272-3880")
	derive(TooSmallEquityForDayTrading, "TooSmallEquityForDayTrading",
		"Account equity is below the minimum required for day trading", CategoryAccount, SeverityError, NoRetry, 0, false,
		"Add funds to reach the day-trading minimum equity", "Avoid day trades until funded")

	derive(SellStopOrderStopPriceGreaterBid, "SellStopOrderStopPriceGreaterBid",
		"Sell Stop order must have a Stop price less than the current Bid price", CategoryValidation, SeverityError, RetryWithDelay, 1*time.Second, true,
		"Set stop price below current bid", "Check current market price")
	derive(IncorrectOrderQuantity, "IncorrectOrderQuantity",
		"Order quantity is incorrect for this instrument", CategoryValidation, SeverityError, NoRetry, 0, false,
		"Check quantity against instrument increment rules")
	derive(IncorrectTimeInForce, "IncorrectTimeInForce",
		"Order duration is not valid for this order type", CategoryValidation, SeverityError, NoRetry, 0, false,
		"Use a supported duration for this order type")
	derive(LimitPriceUndefined, "LimitPriceUndefined",
		"Limit price is required for this order type", CategoryValidation, SeverityError, NoRetry, 0, false,
		"Provide a limit price")
	derive(StopPriceUndefined, "StopPriceUndefined",
		"Stop price is required for this order type", CategoryValidation, SeverityError, NoRetry, 0, false,
		"Provide a stop price")
	derive(OrderQuantity, "OrderQuantity",
		"Order quantity is outside the permitted range", CategoryValidation, SeverityError, NoRetry, 0, false,
		"Adjust quantity to the permitted range")
	derive(OrderPriceIsInvalid, "OrderPriceIsInvalid",
		"Order price is invalid", CategoryValidation, SeverityError, NoRetry, 0, false,
		"Check the price against the instrument's tick size")
	derive(QuotePriceIsInvalid, "QuotePriceIsInvalid",
		"Quote price used for validation is invalid or stale", CategoryMarketData, SeverityWarning, RetryWithDelay, 1*time.Second, true,
		"Re-fetch the quote before resubmitting")

	derive(LongPositionCrossZero, "LongPositionCrossZero",
		"Order would cross a long position through zero", CategoryPosition, SeverityError, NoRetry, 0, false,
		"Split the order to close the position without reversing it")
	derive(ShortPositionCrossZero, "ShortPositionCrossZero",
		"Order would cross a short position through zero", CategoryPosition, SeverityError, NoRetry, 0, false,
		"Split the order to close the position without reversing it")
	derive(UnexpectedBuyOrder, "UnexpectedBuyOrder",
		"Buy order is unexpected given the current position", CategoryPosition, SeverityError, NoRetry, 0, false,
		"Check current position before submitting")
	derive(UnexpectedBuyOrderOption, "UnexpectedBuyOrderOption",
		"Buy order is unexpected given the current option position", CategoryPosition, SeverityError, NoRetry, 0, false,
		"Check current option position before submitting")
	derive(UnexpectedBuyToCoverOrder, "UnexpectedBuyToCoverOrder",
		"Buy-to-cover order is unexpected given the current position", CategoryPosition, SeverityError, NoRetry, 0, false,
		"Check current short position before submitting")
	derive(UnexpectedBuyToCoverOrderOption, "UnexpectedBuyToCoverOrderOption",
		"Buy-to-cover order is unexpected given the current option position", CategoryPosition, SeverityError, NoRetry, 0, false,
		"Check current option position before submitting")
	derive(UnexpectedSellOrder, "UnexpectedSellOrder",
		"Sell order is unexpected given the current position", CategoryPosition, SeverityError, NoRetry, 0, false,
		"Check current position before submitting")
	derive(UnexpectedSellOrderOption, "UnexpectedSellOrderOption",
		"Sell order is unexpected given the current option position", CategoryPosition, SeverityError, NoRetry, 0, false,
		"Check current option position before submitting")
	derive(UnexpectedSellShortOrder, "UnexpectedSellShortOrder",
		"Sell-short order is unexpected given the current position", CategoryPosition, SeverityError, NoRetry, 0, false,
		"Check current position before submitting")
	derive(UnexpectedSellShortOrderOption, "UnexpectedSellShortOrderOption",
		"Sell-short order is unexpected given the current option position", CategoryPosition, SeverityError, NoRetry, 0, false,
		"Check current option position before submitting")
	derive(WashTradeAttempt, "WashTradeAttempt",
		"Order would execute as a wash trade", CategoryTrading, SeverityError, NoRetry, 0, false,
		"Adjust price or route to avoid self-matching")

	derive(MaintenanceMargin, "MaintenanceMargin",
		"Order would violate maintenance margin requirements", CategoryMargin, SeverityError, NoRetry, 0, false,
		"Add funds to account", "Reduce position size")
	derive(TotalInitialMargin, "TotalInitialMargin",
		"Aggregate initial margin requirement exceeds available buying power", CategoryMargin, SeverityError, NoRetry, 0, false,
		"Reduce order size", "Add funds to account")

	derive(MarketOrderIsGtc, "MarketOrderIsGtc",
		"Market orders cannot use good-till-canceled duration", CategoryValidation, SeverityError, NoRetry, 0, false,
		"Use day duration for market orders")
	derive(ShortOrderIsGtc, "ShortOrderIsGtc",
		"Short orders cannot use good-till-canceled duration", CategoryValidation, SeverityError, NoRetry, 0, false,
		"Use day duration for short orders")
	derive(SellShortOrderLastPriceBelow5, "SellShortOrderLastPriceBelow5",
		"Short selling is restricted below a $5 last price", CategoryTrading, SeverityError, NoRetry, 0, false,
		"Choose a different instrument", "Wait until price clears the threshold")

	derive(ExpirationDateUndefined, "ExpirationDateUndefined",
		"Option expiration date is required", CategoryOptions, SeverityError, NoRetry, 0, false,
		"Provide an expiration date")
	derive(InvalidOrderExpiration, "InvalidOrderExpiration",
		"Option expiration date is invalid", CategoryOptions, SeverityError, NoRetry, 0, false,
		"Check expiration date against the option chain")
	derive(OptionTypeUndefined, "OptionTypeUndefined",
		"Option type (call/put) is required", CategoryOptions, SeverityError, NoRetry, 0, false,
		"Provide an option type")
	derive(StrikePriceUndefined, "StrikePriceUndefined",
		"Option strike price is required", CategoryOptions, SeverityError, NoRetry, 0, false,
		"Provide a strike price")
	derive(OptionLevelRestriction, "OptionLevelRestriction",
		"Account's options trading level does not permit this order", CategoryOptions, SeverityError, NoRetry, 0, false,
		"Request a higher options trading level")
	derive(IndexOptionsOneExpiryDate, "IndexOptionsOneExpiryDate",
		"All legs of an index option order must share one expiration date", CategoryOptions, SeverityError, NoRetry, 0, false,
		"Align all legs to the same expiration")
	derive(TradeNonStandardOptions, "TradeNonStandardOptions",
		"Order targets a non-standard option contract", CategoryOptions, SeverityWarning, NoRetry, 0, false,
		"Verify the contract's adjusted terms before trading")

	derive(ContingentOrderExecution, "ContingentOrderExecution",
		"Contingent order execution failed", CategoryComplexOrder, SeverityError, RetryWithDelay, 2*time.Second, true,
		"Resubmit the contingent order", "Check trigger conditions")
	derive(OrderContingentChangeNotAllowed, "OrderContingentChangeNotAllowed",
		"Contingent order cannot be changed once the primary leg is active", CategoryComplexOrder, SeverityError, NoRetry, 0, false,
		"Cancel and resubmit instead of modifying")
	derive(OcoExpirationTypeNotTheSame, "OcoExpirationTypeNotTheSame",
		"OCO legs must share the same duration", CategoryComplexOrder, SeverityError, NoRetry, 0, false,
		"Align duration across both OCO legs")
	derive(OcoOrderWithOppositeLegs, "OcoOrderWithOppositeLegs",
		"OCO legs must not have opposing sides on the same symbol", CategoryComplexOrder, SeverityError, NoRetry, 0, false,
		"Check leg sides")
	derive(OcoPriceDifferenceIsLessThanDelta, "OcoPriceDifferenceIsLessThanDelta",
		"OCO leg prices are too close together", CategoryComplexOrder, SeverityWarning, NoRetry, 0, false,
		"Widen the price difference between legs")
	derive(OrderWithDifferentSide, "OrderWithDifferentSide",
		"Linked order legs must share a consistent side", CategoryComplexOrder, SeverityError, NoRetry, 0, false,
		"Check leg sides across the strategy")
	derive(OtoFirstLegIsMarketNotAllowed, "OtoFirstLegIsMarketNotAllowed",
		"OTO primary leg cannot be a market order", CategoryComplexOrder, SeverityError, NoRetry, 0, false,
		"Use a limit or stop order for the primary leg")
	derive(OtoOcoMarketNotAllowed, "OtoOcoMarketNotAllowed",
		"OTO/OCO strategies do not permit market-type legs", CategoryComplexOrder, SeverityError, NoRetry, 0, false,
		"Use limit or stop orders for every leg")
	derive(OtoOcoTrailingNotAllowed, "OtoOcoTrailingNotAllowed",
		"OTO/OCO strategies do not support trailing stops", CategoryComplexOrder, SeverityError, NoRetry, 0, false,
		"Use a fixed stop price instead of a trailing stop")

	derive(OmsUnavailable, "OmsUnavailable",
		"Order management system is temporarily unavailable", CategorySystem, SeverityCritical, RetryWithBackoff, 5*time.Second, true,
		"Retry after a short delay", "Check system status")
	derive(SecurityUndefined, "SecurityUndefined",
		"Security symbol is required", CategoryValidation, SeverityError, NoRetry, 0, false,
		"Provide a symbol")
	derive(OrderIsNotAllowedForAccount, "OrderIsNotAllowedForAccount",
		"This order type is not allowed for the account", CategoryAccount, SeverityError, NoRetry, 0, false,
		"Contact support at 980-272-3880")

	derive(PreMarketTradingUnavailable, "PreMarketTradingUnavailable",
		"Pre-market trading is unavailable for this instrument", CategorySystem, SeverityWarning, RetryAfterMarketOpen, 0, true,
		"Resubmit once the market opens")
	derive(OtcTradingRestricted, "OtcTradingRestricted",
		"OTC trading is restricted for this instrument", CategoryTrading, SeverityError, NoRetry, 0, false,
		"Choose an exchange-listed instrument")
	derive(VolatilityLimitOrderRequired, "VolatilityLimitOrderRequired",
		"Limit order required during a volatility trading pause", CategoryTrading, SeverityWarning, RetryWithDelay, 5*time.Second, true,
		"Resubmit as a limit order")
	derive(MarketHoursLimitOrderRequired, "MarketHoursLimitOrderRequired",
		"Limit order required outside regular trading hours", CategoryTrading, SeverityWarning, NoRetry, 0, false,
		"Resubmit as a limit order or wait for regular hours")
	derive(OrderFailedPriceRangeAggressive, "OrderFailedPriceRangeAggressive",
		"Order price is too aggressive relative to the current price band", CategoryValidation, SeverityError, RetryWithDelay, 1*time.Second, true,
		"Move the price closer to the current band", "Re-fetch the quote before resubmitting")

	return m
}
