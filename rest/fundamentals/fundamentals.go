// Package fundamentals holds the decoded response types for the beta
// fundamentals endpoint group, grounded on
// original_source/include/oqdTradierpp/fundamentals/*.hpp for field shape
// and supplementing spec.md's endpoint surface with the original's
// corporate-calendar/dividend coverage (SPEC_FULL §4).
package fundamentals

import "encoding/json"

// Company is the company-profile fundamentals block.
type Company struct {
	Symbol      string `json:"symbol"`
	CompanyName string `json:"company_name,omitempty"`
	Description string `json:"long_description,omitempty"`
	Sector      string `json:"sector,omitempty"`
	Industry    string `json:"industry,omitempty"`
	CEO         string `json:"ceo,omitempty"`
	Employees   int64  `json:"employees,omitempty"`
	Website     string `json:"website,omitempty"`
}

// DecodeCompany decodes a single company-profile entry.
func DecodeCompany(raw json.RawMessage) (Company, error) {
	var c Company
	if len(raw) == 0 || string(raw) == "null" {
		return c, nil
	}
	err := json.Unmarshal(raw, &c)
	return c, err
}

// Ratios is the valuation/profitability ratio block.
type Ratios struct {
	Symbol        string  `json:"symbol"`
	PERatio       float64 `json:"pe_ratio,omitempty"`
	PBRatio       float64 `json:"pb_ratio,omitempty"`
	DividendYield float64 `json:"dividend_yield,omitempty"`
	ROE           float64 `json:"roe,omitempty"`
	ROA           float64 `json:"roa,omitempty"`
}

// DecodeRatios decodes a single ratios entry.
func DecodeRatios(raw json.RawMessage) (Ratios, error) {
	var r Ratios
	if len(raw) == 0 || string(raw) == "null" {
		return r, nil
	}
	err := json.Unmarshal(raw, &r)
	return r, err
}

// Financials is the statement-summary block (revenue/income/assets).
type Financials struct {
	Symbol           string  `json:"symbol"`
	FiscalYear       string  `json:"fiscal_year,omitempty"`
	Revenue          float64 `json:"revenue,omitempty"`
	NetIncome        float64 `json:"net_income,omitempty"`
	TotalAssets      float64 `json:"total_assets,omitempty"`
	TotalLiabilities float64 `json:"total_liabilities,omitempty"`
}

// DecodeFinancials decodes a single financials entry.
func DecodeFinancials(raw json.RawMessage) (Financials, error) {
	var f Financials
	if len(raw) == 0 || string(raw) == "null" {
		return f, nil
	}
	err := json.Unmarshal(raw, &f)
	return f, err
}

// PriceStats is the historical return/volatility statistics block.
type PriceStats struct {
	Symbol          string  `json:"symbol"`
	Beta            float64 `json:"beta,omitempty"`
	Volatility30Day float64 `json:"volatility_30_day,omitempty"`
	Return1Year     float64 `json:"return_1_year,omitempty"`
}

// DecodePriceStats decodes a single price-stats entry.
func DecodePriceStats(raw json.RawMessage) (PriceStats, error) {
	var p PriceStats
	if len(raw) == 0 || string(raw) == "null" {
		return p, nil
	}
	err := json.Unmarshal(raw, &p)
	return p, err
}

// CorporateCalendarEvent is a single upcoming corporate-calendar entry
// (earnings date, shareholder meeting, ...), supplementing spec.md's
// endpoint surface per SPEC_FULL §4.
type CorporateCalendarEvent struct {
	Symbol    string `json:"symbol"`
	EventType string `json:"event_type"`
	Date      string `json:"date"`
}

// DecodeCorporateCalendarEvent decodes a single calendar event.
func DecodeCorporateCalendarEvent(raw json.RawMessage) (CorporateCalendarEvent, error) {
	var e CorporateCalendarEvent
	if len(raw) == 0 || string(raw) == "null" {
		return e, nil
	}
	err := json.Unmarshal(raw, &e)
	return e, err
}

// Dividend is a single declared/paid dividend record.
type Dividend struct {
	Symbol     string  `json:"symbol"`
	ExDate     string  `json:"ex_date"`
	PayDate    string  `json:"pay_date"`
	CashAmount float64 `json:"cash_amount"`
}

// DecodeDividend decodes a single dividend record.
func DecodeDividend(raw json.RawMessage) (Dividend, error) {
	var d Dividend
	if len(raw) == 0 || string(raw) == "null" {
		return d, nil
	}
	err := json.Unmarshal(raw, &d)
	return d, err
}
