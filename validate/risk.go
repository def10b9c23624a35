package validate

// BracketRisk is the risk/reward summary of an OTOCO bracket, mirroring the
// upstream's calculate_max_loss_otoco/calculate_max_profit_otoco/
// calculate_risk_reward_ratio trio (original_source/src/order_validation.cpp).
type BracketRisk struct {
	MaxLoss    float64
	MaxProfit  float64
	RiskReward float64
	HasRatio   bool
}

// CalculateBracketRisk computes the risk summary for an OTOCO order. It
// returns a zero BracketRisk (HasRatio false, all fields zero) if the
// request is missing the primary/profit/stop legs or their prices — the
// same "return 0.0" fallback the upstream uses rather than an error, since
// this is a convenience calculation, not a validation gate.
func CalculateBracketRisk(req OrderRequest) BracketRisk {
	if req.Primary == nil || req.Profit == nil || req.StopLeg == nil {
		return BracketRisk{}
	}
	primary, profit, stop := *req.Primary, *req.Profit, *req.StopLeg

	var risk BracketRisk
	if primary.Price != nil && stop.Stop != nil {
		entry, stopPrice := *primary.Price, *stop.Stop
		if isBuySide(primary.Side) {
			risk.MaxLoss = abs(entry - stopPrice) * primary.Quantity
		} else {
			risk.MaxLoss = abs(stopPrice - entry) * primary.Quantity
		}
	}
	if primary.Price != nil && profit.Price != nil {
		entry, profitPrice := *primary.Price, *profit.Price
		if isBuySide(primary.Side) {
			risk.MaxProfit = abs(profitPrice - entry) * primary.Quantity
		} else {
			risk.MaxProfit = abs(entry - profitPrice) * primary.Quantity
		}
	}
	if risk.MaxLoss > 0 {
		risk.RiskReward = risk.MaxProfit / risk.MaxLoss
		risk.HasRatio = true
	}
	return risk
}

// SpreadRisk is the analogous summary for a categorized multileg spread:
// max loss/profit bounded by the net debit/credit of the legs, grounded on
// calculate_spread_max_profit/calculate_spread_max_loss.
type SpreadRisk struct {
	NetDebit  float64
	MaxLoss   float64
	MaxProfit float64
}

// CalculateSpreadRisk sums the order's Price times each leg's
// quantity*ratio, signed by leg side (buys negative, sells positive,
// debit-negative convention), to report the
// strategy's net debit/credit, and derives max loss/profit: for a net debit
// the max loss is the debit paid (the strategy can only cost money to
// close at worst) and max profit is unbounded-unknown here (0, meaning "not
// computable from price alone" — the upstream flags this as an estimate
// too), while a net credit strategy's max profit is the credit received.
func CalculateSpreadRisk(req OrderRequest) SpreadRisk {
	var net float64
	for _, leg := range req.Legs {
		ratio := leg.Ratio
		if ratio == 0 {
			ratio = 1
		}
		price := 0.0
		if req.Price != nil {
			price = *req.Price
		}
		if isBuySide(leg.Side) {
			net -= price * leg.Quantity * ratio
		} else {
			net += price * leg.Quantity * ratio
		}
	}
	risk := SpreadRisk{NetDebit: net}
	if net < 0 {
		risk.MaxLoss = abs(net)
	} else {
		risk.MaxProfit = net
	}
	return risk
}
