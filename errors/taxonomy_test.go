package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestAPIErrorShortMessage(t *testing.T) {
	e := NewDomainError(InitialMargin, "insufficient funds")
	if e.Error() != "You do not have enough buying power for this trade" {
		t.Errorf("got %q", e.Error())
	}
}

func TestAPIErrorDetailedMessageIncludesContext(t *testing.T) {
	e := NewDomainError(AccountDisabled, "raw body").WithOrderID("12345678").WithAccountID("ABC12345")
	detail := e.DetailedMessage()
	for _, want := range []string{"raw body", "12345678", "ABC12345", "AccountDisabled", "account", "critical"} {
		if !strings.Contains(detail, want) {
			t.Errorf("detailed message missing %q:\n%s", want, detail)
		}
	}
}

func TestAPIErrorRecoveryGuidance(t *testing.T) {
	e := NewDomainError(OmsInternalError, "")
	guidance := e.RecoveryGuidance()
	if !strings.Contains(guidance, "1. Retry order") {
		t.Errorf("expected numbered suggestions, got:\n%s", guidance)
	}
	if !strings.Contains(guidance, "980-272-3880") {
		t.Errorf("expected contact info, got:\n%s", guidance)
	}
}

func TestAPIErrorRecoveryGuidanceEmptyForNonDomain(t *testing.T) {
	e := NewTransportError("dial failed", nil)
	if e.RecoveryGuidance() != "" {
		t.Errorf("expected empty guidance, got %q", e.RecoveryGuidance())
	}
}

func TestAPIErrorIsRetryable(t *testing.T) {
	if !NewDomainError(OmsInternalError, "").IsRetryable() {
		t.Error("OmsInternalError should be retryable")
	}
	if NewDomainError(AccountDisabled, "").IsRetryable() {
		t.Error("AccountDisabled should not be retryable")
	}
	if !NewRateLimitError("budget exhausted").IsRetryable() {
		t.Error("rate limit errors should be retryable")
	}
	if NewValidationError("bad input").IsRetryable() {
		t.Error("validation errors should not be retryable")
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	sentinel := errors.New("boom")
	wrapped := NewTransportError("dial failed", sentinel)
	if !errors.Is(wrapped, sentinel) {
		t.Error("expected errors.Is to find the wrapped sentinel")
	}
}

func TestNewDomainErrorFromString(t *testing.T) {
	e := NewDomainErrorFromString("InitialMargin", "")
	if e.Code != InitialMargin {
		t.Errorf("expected InitialMargin, got %v", e.Code)
	}
	e2 := NewDomainErrorFromString("TotallyUnknownIdentifier", "")
	if e2.Code != Unknown {
		t.Errorf("expected Unknown, got %v", e2.Code)
	}
}

func TestNewHTTPStatusError(t *testing.T) {
	e := NewHTTPStatusError(429, `{"error":"rate limited"}`)
	if e.HTTPStatus != 429 {
		t.Errorf("got %d", e.HTTPStatus)
	}
	if !strings.Contains(e.Error(), "429") {
		t.Errorf("expected status in message, got %q", e.Error())
	}
}
