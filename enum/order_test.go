package enum

import "testing"

func TestOrderClassRoundTrip(t *testing.T) {
	classes := []OrderClass{ClassEquity, ClassOption, ClassMultileg, ClassCombo, ClassOTO, ClassOCO, ClassOTOCO}
	for _, c := range classes {
		if got := ParseOrderClass(c.String()); got != c {
			t.Errorf("round trip failed for %q: got %q", c, got)
		}
	}
}

func TestOrderClassDefaultsOnUnknown(t *testing.T) {
	if got := ParseOrderClass("bogus"); got != ClassEquity {
		t.Errorf("expected ClassEquity default, got %q", got)
	}
}

func TestOrderTypeRoundTrip(t *testing.T) {
	types := []OrderType{TypeMarket, TypeLimit, TypeStop, TypeStopLimit}
	for _, ty := range types {
		if got := ParseOrderType(ty.String()); got != ty {
			t.Errorf("round trip failed for %q: got %q", ty, got)
		}
	}
}

func TestOrderTypeDefaultsOnUnknown(t *testing.T) {
	if got := ParseOrderType(""); got != TypeMarket {
		t.Errorf("expected TypeMarket default, got %q", got)
	}
}

func TestOrderDurationRoundTrip(t *testing.T) {
	for _, d := range []OrderDuration{DurationDay, DurationGTC, DurationPre, DurationPost} {
		if got := ParseOrderDuration(d.String()); got != d {
			t.Errorf("round trip failed for %q: got %q", d, got)
		}
	}
}

func TestOrderSideRoundTrip(t *testing.T) {
	sides := []OrderSide{SideBuy, SideSell, SideSellShort, SideBuyToOpen, SideBuyToClose, SideSellToOpen, SideSellToClose}
	for _, s := range sides {
		if got := ParseOrderSide(s.String()); got != s {
			t.Errorf("round trip failed for %q: got %q", s, got)
		}
	}
}

func TestOrderStatusRoundTrip(t *testing.T) {
	statuses := []OrderStatus{StatusOpen, StatusPartiallyFilled, StatusFilled, StatusExpired, StatusCanceled, StatusPending, StatusRejected}
	for _, s := range statuses {
		if got := ParseOrderStatus(s.String()); got != s {
			t.Errorf("round trip failed for %q: got %q", s, got)
		}
	}
}

func TestOrderStatusDefaultsOnUnknown(t *testing.T) {
	if got := ParseOrderStatus("not_a_status"); got != StatusPending {
		t.Errorf("expected StatusPending default, got %q", got)
	}
}

func TestOptionTypeRoundTrip(t *testing.T) {
	for _, o := range []OptionType{OptionTypeCall, OptionTypePut} {
		if got := ParseOptionType(o.String()); got != o {
			t.Errorf("round trip failed for %q: got %q", o, got)
		}
	}
}

func TestSpreadTypeRoundTrip(t *testing.T) {
	spreads := []SpreadType{
		SpreadTypeVertical, SpreadTypeHorizontal, SpreadTypeDiagonal, SpreadTypeIronCondor,
		SpreadTypeIronButterfly, SpreadTypeButterfly, SpreadTypeCalendar, SpreadTypeRatio,
	}
	for _, s := range spreads {
		if got := ParseSpreadType(s.String()); got != s {
			t.Errorf("round trip failed for %q: got %q", s, got)
		}
	}
}

func TestExpectedLegCount(t *testing.T) {
	cases := []struct {
		spread   SpreadType
		wantLegs int
		wantOK   bool
	}{
		{SpreadTypeVertical, 2, true},
		{SpreadTypeButterfly, 3, true},
		{SpreadTypeIronCondor, 4, true},
		{SpreadTypeRatio, 0, false},
	}
	for _, c := range cases {
		legs, ok := ExpectedLegCount(c.spread)
		if legs != c.wantLegs || ok != c.wantOK {
			t.Errorf("ExpectedLegCount(%q) = (%d, %v), want (%d, %v)", c.spread, legs, ok, c.wantLegs, c.wantOK)
		}
	}
}
