// Package validate implements pre-flight checks performed before any
// network request is dispatched: regex-guarded path segment construction
// (component F) and the order validation engine (component I), which
// shares its Issue/Result vocabulary with package schema's response
// validator so both report through one shape.
package validate

import (
	"regexp"
	"strings"

	"github.com/go-tradier/tradier-go/errors"
)

var (
	accountIDPattern      = regexp.MustCompile(`^[A-Z0-9]{8,16}$`)
	orderIDPattern        = regexp.MustCompile(`^[0-9]{8,20}$`)
	sessionIDPattern      = regexp.MustCompile(`^[A-Za-z0-9_-]{16,64}$`)
	symbolPattern         = regexp.MustCompile(`^[A-Z0-9.^-]{1,10}$`)
	optionSymbolPattern   = regexp.MustCompile(`^[A-Z]+[0-9]{6}[CP][0-9]{8}$`)
)

// ValidateAccountID checks id against the account-id path segment format
// and returns it unchanged on success, or a validation error that refuses
// path construction before any request is forged.
func ValidateAccountID(id string) (string, error) {
	if id == "" {
		return "", errors.NewValidationError("account id cannot be empty")
	}
	if !accountIDPattern.MatchString(id) {
		return "", errors.NewValidationError("invalid account id format: " + id)
	}
	return id, nil
}

// ValidateOrderID checks id against the order-id path segment format.
func ValidateOrderID(id string) (string, error) {
	if id == "" {
		return "", errors.NewValidationError("order id cannot be empty")
	}
	if !orderIDPattern.MatchString(id) {
		return "", errors.NewValidationError("invalid order id format: " + id)
	}
	return id, nil
}

// ValidateSessionID checks id against the session-id format.
func ValidateSessionID(id string) (string, error) {
	if id == "" {
		return "", errors.NewValidationError("session id cannot be empty")
	}
	if !sessionIDPattern.MatchString(id) {
		return "", errors.NewValidationError("invalid session id format: " + id)
	}
	return id, nil
}

// ValidateSymbol checks sym against the ticker symbol format.
func ValidateSymbol(sym string) (string, error) {
	if sym == "" {
		return "", errors.NewValidationError("symbol cannot be empty")
	}
	if !symbolPattern.MatchString(sym) {
		return "", errors.NewValidationError("invalid symbol format: " + sym)
	}
	return sym, nil
}

// ValidateOptionSymbol checks sym against the OCC option-symbol format.
func ValidateOptionSymbol(sym string) (string, error) {
	if sym == "" {
		return "", errors.NewValidationError("option symbol cannot be empty")
	}
	if !optionSymbolPattern.MatchString(sym) {
		return "", errors.NewValidationError("invalid option symbol format: " + sym)
	}
	return sym, nil
}

// IsValidSymbol reports whether sym matches the ticker symbol format,
// without allocating an error — used by the order validation engine where
// a bool is more convenient than an error return.
func IsValidSymbol(sym string) bool { return sym != "" && symbolPattern.MatchString(sym) }

// IsValidOptionSymbol reports whether sym matches the OCC option-symbol
// format.
func IsValidOptionSymbol(sym string) bool { return sym != "" && optionSymbolPattern.MatchString(sym) }

const maxSearchQueryLength = 64

// SanitizeSearchQuery strips quote, backslash, semicolon, pipe, and
// ampersand characters from a free-text search query, collapses runs of
// whitespace to a single space, trims trailing whitespace (a leading run
// is kept as one space), and caps it at 64 characters.
func SanitizeSearchQuery(query string) string {
	if query == "" {
		return query
	}
	var b strings.Builder
	b.Grow(len(query))
	for _, r := range query {
		switch r {
		case '\'', '"', ';', '\\', '|', '&':
			continue
		default:
			b.WriteRune(r)
		}
	}
	cleaned := normalizeWhitespace(b.String())
	if len(cleaned) > maxSearchQueryLength {
		cleaned = cleaned[:maxSearchQueryLength]
	}
	return cleaned
}

func normalizeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		b.WriteRune(r)
		prevSpace = false
	}
	return strings.TrimRight(b.String(), " ")
}
