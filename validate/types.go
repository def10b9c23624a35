package validate

import "github.com/go-tradier/tradier-go/enum"

// Leg is one component of a multileg, combo, or spread order: an option
// (or, for a combo's equity leg, a plain equity) position with its own
// side and quantity.
type Leg struct {
	Symbol       string `validate:"omitempty"`
	OptionSymbol string `validate:"omitempty"`
	Side         enum.OrderSide
	Quantity     float64 `validate:"gt=0"`
	// Ratio is the leg's weight relative to the strategy's base unit
	// (1 for most legs; >1 for ratio spreads). Zero means "unset" and is
	// treated as 1 by CalculateSpreadRisk.
	Ratio float64 `validate:"gte=0"`
}

// OrderRequest is the tagged sum described by spec §3/§9: one struct
// carries every variant's fields, and Class plus the linkage pointers
// below (Primary/Triggered/Profit/StopLeg/Alternatives) select which
// fields are meaningful. Validate dispatches on Class rather than on a
// type switch over subclasses.
type OrderRequest struct {
	Class    enum.OrderClass
	Type     enum.OrderType
	Duration enum.OrderDuration

	// Single-instrument fields (Equity, Option classes, and the primary
	// instrument of a linked-order strategy).
	Symbol       string
	OptionSymbol string
	Side         enum.OrderSide
	Quantity     float64
	Price        *float64
	Stop         *float64
	Tag          string

	// Legs carries the component legs of Multileg and Combo orders, and of
	// a Multileg order that SpreadType additionally classifies.
	Legs       []Leg
	SpreadType enum.SpreadType

	// Linked-order strategies. Exactly one of these groups is populated,
	// selected by Class:
	//   OTO:   Primary, Triggered
	//   OCO:   Alternatives (exactly 2)
	//   OTOCO: Primary, Profit, StopLeg
	Primary      *OrderRequest
	Triggered    *OrderRequest
	Profit       *OrderRequest
	StopLeg      *OrderRequest
	Alternatives []OrderRequest
}

// upper bounds shared by the common validation rules in order.go.
const (
	maxEquityQuantity = 1_000_000
	maxOptionQuantity = 10_000
	maxStopQuantity   = 100_000
)
