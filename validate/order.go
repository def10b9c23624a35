package validate

import (
	"fmt"

	"github.com/go-tradier/tradier-go/enum"
	"github.com/go-tradier/tradier-go/schema"
)

// Issue and Result are schema's types: order validation and response
// validation share one vocabulary so a caller that collects both kinds of
// issues (e.g. a pre-submit order check followed by a post-submit response
// check) can treat them uniformly.
type Issue = schema.Issue
type Result = schema.Result

const (
	sevInfo     = schema.SeverityInfo
	sevWarning  = schema.SeverityWarning
	sevError    = schema.SeverityError
	sevCritical = schema.SeverityCritical
)

// Order validates req against the structural and business rules of spec
// §3/§4.I, dispatching on req.Class the way the upstream's per-class
// validate_*_order functions do. The structural pass (symbol/quantity/
// price-type combination) runs first for every single-order class; the
// linked classes (OTO, OCO, OTOCO) skip it and run Order on each
// sub-order instead.
func Order(req OrderRequest) Result {
	var result Result
	validateCommon(&result, req)

	switch req.Class {
	case enum.ClassEquity:
		validateEquity(&result, req)
	case enum.ClassOption:
		validateOption(&result, req)
	case enum.ClassMultileg:
		validateMultileg(&result, req)
	case enum.ClassCombo:
		validateCombo(&result, req)
	case enum.ClassOTO:
		validateOTO(&result, req)
	case enum.ClassOCO:
		validateOCO(&result, req)
	case enum.ClassOTOCO:
		validateOTOCO(&result, req)
	}

	return result
}

// validateCommon implements the rules shared by every order class: symbol
// format, quantity range, and price/type combination (§3's "limit requires
// price; stop requires stop; stop_limit requires both").
func validateCommon(result *Result, req OrderRequest) {
	if req.Class == enum.ClassOTO || req.Class == enum.ClassOCO || req.Class == enum.ClassOTOCO {
		// Linked strategies validate their legs individually; the wrapper
		// itself carries no standalone symbol/quantity to check here.
		return
	}

	if req.Symbol == "" {
		result.Add(Issue{Field: "symbol", Severity: sevError, Message: "symbol is required"})
	} else if !IsValidSymbol(req.Symbol) {
		result.Add(Issue{Field: "symbol", Severity: sevError, Message: fmt.Sprintf("invalid symbol format: %q", req.Symbol)})
	}

	if req.Quantity <= 0 {
		result.Add(Issue{Field: "quantity", Severity: sevError, Message: "quantity must be positive"})
	}

	validatePriceTypeCombination(result, req.Type, req.Price, req.Stop)
	validateIncrements(result, req)
}

// validatePriceTypeCombination implements "limit requires price; stop
// requires stop; stop_limit requires both" from spec §3.
func validatePriceTypeCombination(result *Result, orderType enum.OrderType, price, stop *float64) {
	switch orderType {
	case enum.TypeLimit:
		if price == nil {
			result.Add(Issue{Field: "price", Severity: sevError, Message: "limit orders require a price"})
		}
	case enum.TypeStop:
		if stop == nil {
			result.Add(Issue{Field: "stop", Severity: sevError, Message: "stop orders require a stop price"})
		}
	case enum.TypeStopLimit:
		if price == nil {
			result.Add(Issue{Field: "price", Severity: sevError, Message: "stop_limit orders require a price"})
		}
		if stop == nil {
			result.Add(Issue{Field: "stop", Severity: sevError, Message: "stop_limit orders require a stop price"})
		}
	}
	if stop != nil && *stop <= 0 {
		result.Add(Issue{Field: "stop", Severity: sevError, Message: "stop price must be positive"})
	}
}

// validateIncrements implements spec §4.I's tick-size rule. A violation is
// a warning, not an error: brokers sometimes accept off-increment prices.
func validateIncrements(result *Result, req OrderRequest) {
	if req.Price == nil {
		return
	}
	isOption := req.OptionSymbol != "" || IsValidOptionSymbol(req.Symbol)
	tick := stockTick(*req.Price)
	kind := "stock"
	if isOption {
		tick = optionTick(*req.Price)
		kind = "option"
	}
	if !onIncrement(*req.Price, tick) {
		result.Add(Issue{
			Field: "price", Severity: sevWarning,
			Message:    fmt.Sprintf("%s price %.4f is not aligned to the %v tick for this price band", kind, *req.Price, tick),
			Suggestion: "brokers may still accept an off-increment price",
		})
	}
}

// stockTick returns the required increment for a stock price: 4-decimal
// tick below $1, cent tick at or above $1.
func stockTick(price float64) float64 {
	if price < 1.0 {
		return 0.0001
	}
	return 0.01
}

// optionTick returns the required increment for an option price: cent tick
// below $3, 5-cent tick at or above $3.
func optionTick(price float64) float64 {
	if price < 3.0 {
		return 0.01
	}
	return 0.05
}

// onIncrement reports whether price is a whole multiple of tick, within a
// small epsilon to absorb floating point representation error.
func onIncrement(price, tick float64) bool {
	ratio := price / tick
	nearest := float64(int64(ratio + 0.5))
	return abs(ratio-nearest) < 1e-6
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func validateEquity(result *Result, req OrderRequest) {
	validateQuantityForClass(result, req, maxEquityQuantity, "equity")
	if req.Type == enum.TypeMarket && (req.Duration == enum.DurationPre || req.Duration == enum.DurationPost) {
		result.Add(Issue{
			Field: "duration", Severity: sevWarning,
			Message: "market orders outside the regular session may not execute as expected",
		})
	}
	if req.Side == enum.SideSellShort && req.Quantity > 5000 {
		result.Add(Issue{
			Field: "quantity", Severity: sevWarning,
			Message: "large short position requested", Actual: fmt.Sprintf("%.0f", req.Quantity),
		})
	}
}

func validateOption(result *Result, req OrderRequest) {
	if req.OptionSymbol == "" {
		result.Add(Issue{Field: "option_symbol", Severity: sevError, Message: "option symbol is required"})
	} else if !IsValidOptionSymbol(req.OptionSymbol) {
		result.Add(Issue{Field: "option_symbol", Severity: sevError, Message: fmt.Sprintf("invalid OCC option symbol: %q", req.OptionSymbol)})
	}
	validateQuantityForClass(result, req, maxOptionQuantity, "option")
}

func validateQuantityForClass(result *Result, req OrderRequest, max float64, kind string) {
	if req.Quantity > max {
		result.Add(Issue{
			Field: "quantity", Severity: sevError,
			Message: fmt.Sprintf("%s order quantity %.0f exceeds the maximum of %.0f", kind, req.Quantity, max),
		})
		return
	}
	if req.Type == enum.TypeStop || req.Type == enum.TypeStopLimit {
		if req.Quantity > maxStopQuantity {
			result.Add(Issue{
				Field: "quantity", Severity: sevError,
				Message: fmt.Sprintf("stop/stop_limit order quantity %.0f exceeds the maximum of %d", req.Quantity, maxStopQuantity),
			})
		}
	}
	warnThreshold := 100000.0
	if kind == "option" {
		warnThreshold = 1000.0
	}
	if req.Quantity > warnThreshold {
		result.Add(Issue{
			Field: "quantity", Severity: sevWarning,
			Message: fmt.Sprintf("%s order quantity %.0f is unusually large", kind, req.Quantity),
		})
	}
}

func validateMultileg(result *Result, req OrderRequest) {
	if len(req.Legs) < 2 || len(req.Legs) > 4 {
		result.Add(Issue{
			Field: "legs", Severity: sevError,
			Message: fmt.Sprintf("multileg orders must have 2-4 legs, got %d", len(req.Legs)),
		})
	}
	for i, leg := range req.Legs {
		validateLeg(result, i, leg)
	}
	if req.SpreadType != "" {
		validateSpread(result, req)
	}
}

func validateLeg(result *Result, index int, leg Leg) {
	validateLegStructure(result, index, leg)
	field := fmt.Sprintf("legs[%d]", index)
	if leg.OptionSymbol != "" && !IsValidOptionSymbol(leg.OptionSymbol) {
		result.Add(Issue{Field: field + ".option_symbol", Severity: sevError, Message: fmt.Sprintf("invalid OCC option symbol: %q", leg.OptionSymbol)})
	}
	if leg.Quantity <= 0 {
		result.Add(Issue{Field: field + ".quantity", Severity: sevError, Message: "leg quantity must be positive"})
	}
	if leg.Ratio < 0 {
		result.Add(Issue{Field: field + ".ratio", Severity: sevError, Message: "leg ratio must not be negative"})
	}
	if leg.Ratio > 10 {
		result.Add(Issue{Field: field + ".ratio", Severity: sevWarning, Message: "high ratio may indicate an unusual spread strategy"})
	}
}

// validateSpread implements the recognition rule of spec §4.I: the
// declared spread type drives classification, and its expected leg count
// is checked against the legs actually supplied.
func validateSpread(result *Result, req OrderRequest) {
	expected, ok := enum.ExpectedLegCount(req.SpreadType)
	if !ok {
		return // ratio spreads have no fixed leg count
	}
	if len(req.Legs) > expected {
		result.Add(Issue{
			Field: "legs", Severity: sevWarning,
			Message: fmt.Sprintf("%s spreads typically use %d legs; %d supplied", req.SpreadType, expected, len(req.Legs)),
		})
	} else if len(req.Legs) < expected {
		result.Add(Issue{
			Field: "legs", Severity: sevError,
			Message: fmt.Sprintf("%s spreads require %d legs; %d supplied", req.SpreadType, expected, len(req.Legs)),
		})
	}
}

func validateCombo(result *Result, req OrderRequest) {
	if len(req.Legs) < 1 {
		result.Add(Issue{Field: "legs", Severity: sevError, Message: "combo orders require at least one option leg plus the equity leg"})
	}
	for i, leg := range req.Legs {
		validateLeg(result, i, leg)
	}
	if req.Symbol == "" {
		result.Add(Issue{Field: "symbol", Severity: sevError, Message: "combo orders require an equity symbol"})
	}
}

func validateOTO(result *Result, req OrderRequest) {
	if req.Primary == nil || req.Triggered == nil {
		result.Add(Issue{Field: "primary", Severity: sevError, Message: "OTO orders require both a primary and a triggered order"})
		return
	}
	*result = mergeSub(*result, "primary", Order(*req.Primary))
	*result = mergeSub(*result, "triggered", Order(*req.Triggered))
}

// validateOCO implements "OCO legs share symbol, side, and quantity" from
// spec §3.
func validateOCO(result *Result, req OrderRequest) {
	if len(req.Alternatives) != 2 {
		result.Add(Issue{Field: "alternatives", Severity: sevError, Message: fmt.Sprintf("OCO orders require exactly 2 alternatives, got %d", len(req.Alternatives))})
		return
	}
	a, b := req.Alternatives[0], req.Alternatives[1]
	*result = mergeSub(*result, "alternatives[0]", Order(a))
	*result = mergeSub(*result, "alternatives[1]", Order(b))
	if a.Symbol != b.Symbol {
		result.Add(Issue{Field: "alternatives", Severity: sevError, Message: "OCO legs must share the same symbol"})
	}
	if a.Side != b.Side {
		result.Add(Issue{Field: "alternatives", Severity: sevError, Message: "OCO legs must share the same side"})
	}
	if a.Quantity != b.Quantity {
		result.Add(Issue{Field: "alternatives", Severity: sevError, Message: "OCO legs must share the same quantity"})
	}
}

// validateOTOCO implements the bracket logic of spec §4.I: all three legs
// share symbol and quantity with the primary; the profit leg's side
// opposes the primary's side; the stop leg's side opposes the primary's
// side too; and price ordering is enforced (profit above entry for a buy,
// below for a sell, and vice versa for the stop).
func validateOTOCO(result *Result, req OrderRequest) {
	if req.Primary == nil || req.Profit == nil || req.StopLeg == nil {
		result.Add(Issue{Field: "primary", Severity: sevError, Message: "OTOCO orders require a primary, a profit leg, and a stop leg"})
		return
	}
	primary, profit, stop := *req.Primary, *req.Profit, *req.StopLeg
	*result = mergeSub(*result, "primary", Order(primary))
	*result = mergeSub(*result, "profit", Order(profit))
	*result = mergeSub(*result, "stop", Order(stop))

	for _, pair := range []struct {
		name string
		leg  OrderRequest
	}{{"profit", profit}, {"stop", stop}} {
		if pair.leg.Symbol != primary.Symbol {
			result.Add(Issue{Field: pair.name, Severity: sevError, Message: fmt.Sprintf("%s leg must share the primary's symbol", pair.name)})
		}
		if pair.leg.Quantity != primary.Quantity {
			result.Add(Issue{Field: pair.name, Severity: sevError, Message: fmt.Sprintf("%s leg must share the primary's quantity", pair.name)})
		}
	}

	expectedExitSide := opposingSide(primary.Side)
	if profit.Side != expectedExitSide {
		result.Add(Issue{Field: "profit", Severity: sevError, Message: "profit leg side must oppose the primary's side"})
	}
	if stop.Side != expectedExitSide {
		result.Add(Issue{Field: "stop", Severity: sevError, Message: "stop leg side must oppose the primary's side"})
	}

	if primary.Price != nil && profit.Price != nil {
		buy := isBuySide(primary.Side)
		if buy && *profit.Price <= *primary.Price {
			result.Add(Issue{Field: "profit", Severity: sevError, Message: "profit price must be above the entry price for a buy"})
		}
		if !buy && *profit.Price >= *primary.Price {
			result.Add(Issue{Field: "profit", Severity: sevError, Message: "profit price must be below the entry price for a sell"})
		}
	}
	if primary.Price != nil && stop.Stop != nil {
		buy := isBuySide(primary.Side)
		if buy && *stop.Stop >= *primary.Price {
			result.Add(Issue{Field: "stop", Severity: sevError, Message: "stop price must be below the entry price for a buy"})
		}
		if !buy && *stop.Stop <= *primary.Price {
			result.Add(Issue{Field: "stop", Severity: sevError, Message: "stop price must be above the entry price for a sell"})
		}
	}
}

func isBuySide(side enum.OrderSide) bool {
	switch side {
	case enum.SideBuy, enum.SideBuyToOpen, enum.SideBuyToClose:
		return true
	default:
		return false
	}
}

func opposingSide(side enum.OrderSide) enum.OrderSide {
	switch side {
	case enum.SideBuy:
		return enum.SideSell
	case enum.SideSell:
		return enum.SideBuy
	case enum.SideBuyToOpen:
		return enum.SideSellToClose
	case enum.SideSellToClose:
		return enum.SideBuyToOpen
	case enum.SideSellToOpen:
		return enum.SideBuyToClose
	case enum.SideBuyToClose:
		return enum.SideSellToOpen
	case enum.SideSellShort:
		return enum.SideBuy
	default:
		return side
	}
}

// mergeSub folds a sub-order's validation result into the parent's,
// prefixing each issue's field with prefix so the caller can tell which
// leg an issue came from.
func mergeSub(parent Result, prefix string, sub Result) Result {
	for _, issue := range sub.Issues {
		issue.Field = prefix + "." + issue.Field
		parent.Issues = append(parent.Issues, issue)
	}
	return parent
}
