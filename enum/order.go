// Package enum holds the canonical string vocabulary shared by requests and
// decoded responses: order classification, quote-side enums, and streaming
// frame/connection-state discriminators.
//
// Every enum here is total in one direction (ToString never fails) and
// defaulting in the other (ParseX never fails either — unknown input maps to
// a documented zero-variant instead of returning an error). The broker is
// known to add values over time; a client that hard-fails on an unrecognized
// string stops working the day the server adds one.
package enum

// OrderClass identifies the shape of an order request: a single instrument,
// a multi-leg combination, or one of the linked-order strategies.
type OrderClass string

// Values for OrderClass. ClassEquity is the zero-variant default.
const (
	ClassEquity   OrderClass = "equity"
	ClassOption   OrderClass = "option"
	ClassMultileg OrderClass = "multileg"
	ClassCombo    OrderClass = "combo"
	ClassOTO      OrderClass = "oto"
	ClassOCO      OrderClass = "oco"
	ClassOTOCO    OrderClass = "otoco"
)

// String returns the canonical wire form of the order class.
func (c OrderClass) String() string { return string(c) }

// ParseOrderClass parses the canonical wire form, defaulting to ClassEquity
// for anything unrecognized.
func ParseOrderClass(s string) OrderClass {
	switch OrderClass(s) {
	case ClassEquity, ClassOption, ClassMultileg, ClassCombo, ClassOTO, ClassOCO, ClassOTOCO:
		return OrderClass(s)
	default:
		return ClassEquity
	}
}

// OrderType is the pricing strategy of an order.
type OrderType string

// Values for OrderType. TypeMarket is the zero-variant default.
const (
	TypeMarket    OrderType = "market"
	TypeLimit     OrderType = "limit"
	TypeStop      OrderType = "stop"
	TypeStopLimit OrderType = "stop_limit"
)

// String returns the canonical wire form of the order type.
func (t OrderType) String() string { return string(t) }

// ParseOrderType parses the canonical wire form, defaulting to TypeMarket
// for anything unrecognized.
func ParseOrderType(s string) OrderType {
	switch OrderType(s) {
	case TypeMarket, TypeLimit, TypeStop, TypeStopLimit:
		return OrderType(s)
	default:
		return TypeMarket
	}
}

// OrderDuration is the time-in-force of an order.
type OrderDuration string

// Values for OrderDuration. DurationDay is the zero-variant default.
const (
	DurationDay  OrderDuration = "day"
	DurationGTC  OrderDuration = "gtc"
	DurationPre  OrderDuration = "pre"
	DurationPost OrderDuration = "post"
)

// String returns the canonical wire form of the duration.
func (d OrderDuration) String() string { return string(d) }

// ParseOrderDuration parses the canonical wire form, defaulting to
// DurationDay for anything unrecognized.
func ParseOrderDuration(s string) OrderDuration {
	switch OrderDuration(s) {
	case DurationDay, DurationGTC, DurationPre, DurationPost:
		return OrderDuration(s)
	default:
		return DurationDay
	}
}

// OrderSide is the buy/sell direction, including the option-specific
// open/close variants.
type OrderSide string

// Values for OrderSide. SideBuy is the zero-variant default.
const (
	SideBuy         OrderSide = "buy"
	SideSell        OrderSide = "sell"
	SideSellShort   OrderSide = "sell_short"
	SideBuyToOpen   OrderSide = "buy_to_open"
	SideBuyToClose  OrderSide = "buy_to_close"
	SideSellToOpen  OrderSide = "sell_to_open"
	SideSellToClose OrderSide = "sell_to_close"
)

// String returns the canonical wire form of the side.
func (s OrderSide) String() string { return string(s) }

// ParseOrderSide parses the canonical wire form, defaulting to SideBuy for
// anything unrecognized.
func ParseOrderSide(s string) OrderSide {
	switch OrderSide(s) {
	case SideBuy, SideSell, SideSellShort, SideBuyToOpen, SideBuyToClose, SideSellToOpen, SideSellToClose:
		return OrderSide(s)
	default:
		return SideBuy
	}
}

// OrderStatus is the server-reported lifecycle state of a submitted order.
type OrderStatus string

// Values for OrderStatus. StatusPending is the zero-variant default: an
// unrecognized status is treated as "not yet known" rather than any
// terminal state.
const (
	StatusOpen            OrderStatus = "open"
	StatusPartiallyFilled OrderStatus = "partially_filled"
	StatusFilled          OrderStatus = "filled"
	StatusExpired         OrderStatus = "expired"
	StatusCanceled        OrderStatus = "canceled"
	StatusPending         OrderStatus = "pending"
	StatusRejected        OrderStatus = "rejected"
)

// String returns the canonical wire form of the status.
func (s OrderStatus) String() string { return string(s) }

// ParseOrderStatus parses the canonical wire form, defaulting to
// StatusPending for anything unrecognized.
func ParseOrderStatus(s string) OrderStatus {
	switch OrderStatus(s) {
	case StatusOpen, StatusPartiallyFilled, StatusFilled, StatusExpired, StatusCanceled, StatusPending, StatusRejected:
		return OrderStatus(s)
	default:
		return StatusPending
	}
}

// OptionType distinguishes calls from puts.
type OptionType string

// Values for OptionType. OptionTypeCall is the zero-variant default.
const (
	OptionTypeCall OptionType = "call"
	OptionTypePut  OptionType = "put"
)

// String returns the canonical wire form of the option type.
func (o OptionType) String() string { return string(o) }

// ParseOptionType parses the canonical wire form, defaulting to
// OptionTypeCall for anything unrecognized.
func ParseOptionType(s string) OptionType {
	switch OptionType(s) {
	case OptionTypeCall, OptionTypePut:
		return OptionType(s)
	default:
		return OptionTypeCall
	}
}

// SpreadType names a recognized multileg strategy shape.
type SpreadType string

// Values for SpreadType. SpreadTypeVertical is the zero-variant default.
const (
	SpreadTypeVertical      SpreadType = "vertical"
	SpreadTypeHorizontal    SpreadType = "horizontal"
	SpreadTypeDiagonal      SpreadType = "diagonal"
	SpreadTypeIronCondor    SpreadType = "iron_condor"
	SpreadTypeIronButterfly SpreadType = "iron_butterfly"
	SpreadTypeButterfly     SpreadType = "butterfly"
	SpreadTypeCalendar      SpreadType = "calendar"
	SpreadTypeRatio         SpreadType = "ratio"
)

// String returns the canonical wire form of the spread type.
func (s SpreadType) String() string { return string(s) }

// ParseSpreadType parses the canonical wire form, defaulting to
// SpreadTypeVertical for anything unrecognized.
func ParseSpreadType(s string) SpreadType {
	switch SpreadType(s) {
	case SpreadTypeVertical, SpreadTypeHorizontal, SpreadTypeDiagonal, SpreadTypeIronCondor,
		SpreadTypeIronButterfly, SpreadTypeButterfly, SpreadTypeCalendar, SpreadTypeRatio:
		return SpreadType(s)
	default:
		return SpreadTypeVertical
	}
}

// expectedSpreadLegs returns the leg count a recognized spread type
// declares, and false for strategies with no fixed leg count (ratio spreads
// in particular vary by construction).
func expectedSpreadLegs(s SpreadType) (int, bool) {
	switch s {
	case SpreadTypeVertical, SpreadTypeCalendar, SpreadTypeDiagonal:
		return 2, true
	case SpreadTypeButterfly:
		return 3, true
	case SpreadTypeIronCondor, SpreadTypeIronButterfly:
		return 4, true
	default:
		return 0, false
	}
}

// ExpectedLegCount exposes expectedSpreadLegs to other packages (the order
// validation engine uses it to warn on leg-count mismatches).
func ExpectedLegCount(s SpreadType) (int, bool) { return expectedSpreadLegs(s) }
