// Package trading maps a validated validate.OrderRequest onto the broker's
// form-encoded order-placement parameters and decodes the placement/cancel
// acknowledgement, grounded on original_source/src/trading/orders.cpp and
// the teacher's trading/add_order.go for the "build form, then POST" shape.
package trading

import (
	"encoding/json"
	"fmt"

	"github.com/go-tradier/tradier-go/codec"
	"github.com/go-tradier/tradier-go/validate"
)

// PlaceOrderResponse is the broker's order-placement acknowledgement: an
// id, status, and, when the broker reports one, a single partner order id.
type PlaceOrderResponse struct {
	ID      int64  `json:"id"`
	Status  string `json:"status"`
	Partner string `json:"partner_id,omitempty"`
}

// DecodePlaceOrderResponse decodes the broker's acknowledgement, tolerant
// of the nested {"order": {...}} envelope the broker sometimes wraps the
// response in.
func DecodePlaceOrderResponse(raw json.RawMessage) (PlaceOrderResponse, error) {
	var envelope struct {
		Order *PlaceOrderResponse `json:"order"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Order != nil {
		return *envelope.Order, nil
	}
	var resp PlaceOrderResponse
	if len(raw) == 0 || string(raw) == "null" {
		return resp, nil
	}
	err := json.Unmarshal(raw, &resp)
	return resp, err
}

// BuildOrderForm flattens req into the broker's flat form-encoded
// vocabulary. It assumes req has already passed validate.Order — BuildOrderForm
// does not re-validate, it only serializes. Linked-order classes (OTO, OCO,
// OTOCO) use the broker's index-suffixed convention (symbol[0], side[0],
// quantity[0], ... for the primary; [1] for the triggered/profit order;
// [2] for the stop order in an OTOCO bracket).
func BuildOrderForm(req validate.OrderRequest) map[string]string {
	form := map[string]string{
		"class":    req.Class.String(),
		"duration": req.Duration.String(),
		"type":     req.Type.String(),
	}
	if req.Tag != "" {
		form["tag"] = req.Tag
	}

	switch req.Class.String() {
	case "equity", "option":
		addLeaf(form, "", req)
	case "multileg", "combo":
		for i, leg := range req.Legs {
			addLegForm(form, i, leg)
		}
		if req.SpreadType != "" {
			form["spread_type"] = req.SpreadType.String()
		}
		if req.Price != nil {
			form["price"] = formatPrice(*req.Price)
		}
	case "oto":
		if req.Primary != nil {
			addIndexedLeaf(form, 0, *req.Primary)
		}
		if req.Triggered != nil {
			addIndexedLeaf(form, 1, *req.Triggered)
		}
	case "oco":
		for i, alt := range req.Alternatives {
			addIndexedLeaf(form, i, alt)
		}
	case "otoco":
		if req.Primary != nil {
			addIndexedLeaf(form, 0, *req.Primary)
		}
		if req.Profit != nil {
			addIndexedLeaf(form, 1, *req.Profit)
		}
		if req.StopLeg != nil {
			addIndexedLeaf(form, 2, *req.StopLeg)
		}
	}
	return form
}

func addLeaf(form map[string]string, _ string, req validate.OrderRequest) {
	form["symbol"] = req.Symbol
	if req.OptionSymbol != "" {
		form["option_symbol"] = req.OptionSymbol
	}
	form["side"] = req.Side.String()
	form["quantity"] = codec.FormatShortest(req.Quantity)
	if req.Price != nil {
		form["price"] = formatPrice(*req.Price)
	}
	if req.Stop != nil {
		form["stop"] = formatPrice(*req.Stop)
	}
}

func addIndexedLeaf(form map[string]string, index int, req validate.OrderRequest) {
	suffix := fmt.Sprintf("[%d]", index)
	form["symbol"+suffix] = req.Symbol
	if req.OptionSymbol != "" {
		form["option_symbol"+suffix] = req.OptionSymbol
	}
	form["side"+suffix] = req.Side.String()
	form["quantity"+suffix] = codec.FormatShortest(req.Quantity)
	form["type"+suffix] = req.Type.String()
	form["duration"+suffix] = req.Duration.String()
	if req.Price != nil {
		form["price"+suffix] = formatPrice(*req.Price)
	}
	if req.Stop != nil {
		form["stop"+suffix] = formatPrice(*req.Stop)
	}
}

func addLegForm(form map[string]string, index int, leg validate.Leg) {
	suffix := fmt.Sprintf("[%d]", index)
	symbol := leg.Symbol
	if leg.OptionSymbol != "" {
		symbol = leg.OptionSymbol
	}
	form["option_symbol"+suffix] = symbol
	form["side"+suffix] = leg.Side.String()
	form["quantity"+suffix] = codec.FormatShortest(leg.Quantity)
}

// formatPrice renders a price with the two-decimal precision the broker's
// form parser expects for monetary fields, via codec.FormatFixed (the same
// 'f'-format fixed-precision rendering codec.Builder.WriteFixedFloatField
// produces for monetary JSON fields).
func formatPrice(v float64) string {
	return codec.FormatFixed(v, 2)
}
