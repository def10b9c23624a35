package validate

import (
	"testing"

	"github.com/go-tradier/tradier-go/enum"
)

func ptr(f float64) *float64 { return &f }

// spec §8 scenario 2: an empty symbol produces exactly one Error issue on
// field "symbol" and OK() is false.
func TestOrderRejectsEmptySymbol(t *testing.T) {
	req := OrderRequest{
		Class: enum.ClassEquity, Type: enum.TypeMarket, Duration: enum.DurationDay,
		Symbol: "", Side: enum.SideBuy, Quantity: 10,
	}
	result := Order(req)
	if result.OK() {
		t.Fatal("expected validation to fail for an empty symbol")
	}
	found := false
	for _, issue := range result.Errors() {
		if issue.Field == "symbol" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an Error issue on field 'symbol', got %v", result.Issues)
	}
}

func TestOrderRequiresPriceForLimit(t *testing.T) {
	req := OrderRequest{
		Class: enum.ClassEquity, Type: enum.TypeLimit, Duration: enum.DurationDay,
		Symbol: "AAPL", Side: enum.SideBuy, Quantity: 10,
	}
	result := Order(req)
	if result.OK() {
		t.Fatal("expected a limit order with no price to fail validation")
	}
}

func TestOrderAcceptsWellFormedEquityMarketOrder(t *testing.T) {
	req := OrderRequest{
		Class: enum.ClassEquity, Type: enum.TypeMarket, Duration: enum.DurationDay,
		Symbol: "AAPL", Side: enum.SideBuy, Quantity: 100,
	}
	result := Order(req)
	if !result.OK() {
		t.Fatalf("expected a well-formed order to pass, got %v", result.Issues)
	}
}

func TestOrderRejectsQuantityOverEquityCeiling(t *testing.T) {
	req := OrderRequest{
		Class: enum.ClassEquity, Type: enum.TypeMarket, Duration: enum.DurationDay,
		Symbol: "AAPL", Side: enum.SideBuy, Quantity: 1_000_001,
	}
	result := Order(req)
	if result.OK() {
		t.Fatal("expected quantity above the equity ceiling to fail validation")
	}
}

func TestOrderRejectsInvalidOptionSymbol(t *testing.T) {
	req := OrderRequest{
		Class: enum.ClassOption, Type: enum.TypeMarket, Duration: enum.DurationDay,
		OptionSymbol: "NOT-AN-OCC-SYMBOL", Side: enum.SideBuyToOpen, Quantity: 1,
	}
	result := Order(req)
	if result.OK() {
		t.Fatal("expected a malformed OCC option symbol to fail validation")
	}
}

func TestOrderOCORequiresSharedSymbolSideQuantity(t *testing.T) {
	a := OrderRequest{Class: enum.ClassEquity, Type: enum.TypeLimit, Duration: enum.DurationDay, Symbol: "AAPL", Side: enum.SideSell, Quantity: 100, Price: ptr(160)}
	b := OrderRequest{Class: enum.ClassEquity, Type: enum.TypeLimit, Duration: enum.DurationDay, Symbol: "MSFT", Side: enum.SideSell, Quantity: 100, Price: ptr(300)}
	req := OrderRequest{Class: enum.ClassOCO, Alternatives: []OrderRequest{a, b}}
	result := Order(req)
	if result.OK() {
		t.Fatal("expected mismatched OCO alternatives to fail validation")
	}
}

// spec §8 scenario 3: primary buy 100 AAPL @ 150, profit 160, stop 140 ->
// max_profit == 1000.00, max_loss == 1000.00, risk_reward == 1.0.
func TestOTOCOBracketRiskCalc(t *testing.T) {
	primary := OrderRequest{Class: enum.ClassEquity, Type: enum.TypeLimit, Duration: enum.DurationDay, Symbol: "AAPL", Side: enum.SideBuy, Quantity: 100, Price: ptr(150)}
	profit := OrderRequest{Class: enum.ClassEquity, Type: enum.TypeLimit, Duration: enum.DurationDay, Symbol: "AAPL", Side: enum.SideSell, Quantity: 100, Price: ptr(160)}
	stop := OrderRequest{Class: enum.ClassEquity, Type: enum.TypeStop, Duration: enum.DurationDay, Symbol: "AAPL", Side: enum.SideSell, Quantity: 100, Stop: ptr(140)}
	req := OrderRequest{Class: enum.ClassOTOCO, Primary: &primary, Profit: &profit, StopLeg: &stop}

	result := Order(req)
	if !result.OK() {
		t.Fatalf("expected a well-formed bracket to pass, got %v", result.Issues)
	}

	risk := CalculateBracketRisk(req)
	if risk.MaxProfit != 1000.00 {
		t.Errorf("MaxProfit = %.2f, want 1000.00", risk.MaxProfit)
	}
	if risk.MaxLoss != 1000.00 {
		t.Errorf("MaxLoss = %.2f, want 1000.00", risk.MaxLoss)
	}
	if risk.RiskReward != 1.0 {
		t.Errorf("RiskReward = %.2f, want 1.0", risk.RiskReward)
	}
}

func TestOTOCORejectsProfitSideMatchingPrimary(t *testing.T) {
	primary := OrderRequest{Class: enum.ClassEquity, Type: enum.TypeLimit, Duration: enum.DurationDay, Symbol: "AAPL", Side: enum.SideBuy, Quantity: 100, Price: ptr(150)}
	profit := OrderRequest{Class: enum.ClassEquity, Type: enum.TypeLimit, Duration: enum.DurationDay, Symbol: "AAPL", Side: enum.SideBuy, Quantity: 100, Price: ptr(160)}
	stop := OrderRequest{Class: enum.ClassEquity, Type: enum.TypeStop, Duration: enum.DurationDay, Symbol: "AAPL", Side: enum.SideSell, Quantity: 100, Stop: ptr(140)}
	req := OrderRequest{Class: enum.ClassOTOCO, Primary: &primary, Profit: &profit, StopLeg: &stop}

	result := Order(req)
	if result.OK() {
		t.Fatal("expected a profit leg sharing the primary's side to fail validation")
	}
}

// Order validation has no strictness levels; this checks that the Error
// issues accumulated by the common and class-specific passes are
// reproduced exactly, none dropped, when the same request is validated again.
func TestValidationIsMonotonic(t *testing.T) {
	req := OrderRequest{
		Class: enum.ClassEquity, Type: enum.TypeLimit, Duration: enum.DurationDay,
		Symbol: "", Side: enum.SideBuy, Quantity: -5,
	}
	result := Order(req)
	errCount := len(result.Errors())
	if errCount == 0 {
		t.Fatal("expected multiple Error issues to accumulate, got none")
	}
	// Re-running validation must reproduce exactly the same Error set, not a
	// downgraded or partial one.
	again := Order(req)
	if len(again.Errors()) != errCount {
		t.Errorf("re-validation produced %d errors, want %d", len(again.Errors()), errCount)
	}
}

func TestSpreadLegCountValidatedAgainstDeclaredStrategy(t *testing.T) {
	leg := Leg{OptionSymbol: "AAPL240119C00150000", Side: enum.SideBuyToOpen, Quantity: 1}
	req := OrderRequest{
		Class: enum.ClassMultileg, Type: enum.TypeLimit, Duration: enum.DurationDay,
		Price: ptr(1.0), SpreadType: enum.SpreadTypeVertical, Legs: []Leg{leg},
	}
	result := Order(req)
	if result.OK() {
		t.Fatal("expected a vertical spread with only 1 leg to fail validation")
	}
}

func TestLegStructuralValidationCatchesNonPositiveQuantity(t *testing.T) {
	legs := []Leg{
		{OptionSymbol: "AAPL240119C00150000", Side: enum.SideBuyToOpen, Quantity: 0},
		{OptionSymbol: "AAPL240119C00160000", Side: enum.SideSellToOpen, Quantity: 1},
	}
	req := OrderRequest{Class: enum.ClassMultileg, Type: enum.TypeMarket, Duration: enum.DurationDay, Legs: legs}
	result := Order(req)
	if result.OK() {
		t.Fatal("expected a zero-quantity leg to fail structural validation")
	}
}
