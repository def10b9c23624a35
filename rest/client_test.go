package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apierrors "github.com/go-tradier/tradier-go/errors"
)

// spec §8 scenario 1: a bearer-authorized GET for a quote round-trips the
// Authorization header and decodes the envelope's single-or-array quote
// shape into a Quote slice.
func TestQuotesBearerRoundTrip(t *testing.T) {
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("symbols")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"quotes":{"quote":{"symbol":"AAPL","last":"150.25"}}}`))
	}))
	defer srv.Close()

	client := New(NewBearerAuthorizer("test-token"), &Configuration{BaseURL: srv.URL})
	quotes, err := client.Quotes(context.Background(), []string{"AAPL"}, false)
	if err != nil {
		t.Fatalf("Quotes returned error: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization header = %q, want %q", gotAuth, "Bearer test-token")
	}
	if gotQuery != "AAPL" {
		t.Errorf("symbols query = %q, want %q", gotQuery, "AAPL")
	}
	if len(quotes) != 1 || quotes[0].Symbol != "AAPL" {
		t.Fatalf("unexpected quotes: %+v", quotes)
	}
}

// spec §8 scenario 6: once a group's rate-limit record shows Available ==
// 0 and the reset instant hasn't passed, the next request to that group is
// rejected locally with no I/O performed.
func TestRateLimitGateRejectsWithoutIO(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("X-Ratelimit-Available", "0")
		w.Header().Set("X-Ratelimit-Used", "120")
		w.Header().Set("X-Ratelimit-Expiry", "9999999999")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"quotes":{"quote":{"symbol":"AAPL","last":"150.25"}}}`))
	}))
	defer srv.Close()

	client := New(NewBearerAuthorizer("test-token"), &Configuration{BaseURL: srv.URL})
	if _, err := client.Quotes(context.Background(), []string{"AAPL"}, false); err != nil {
		t.Fatalf("first call should succeed, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly 1 HTTP call before gating, got %d", calls)
	}

	if _, err := client.Quotes(context.Background(), []string{"AAPL"}, false); err == nil {
		t.Fatal("expected the second call to be rejected by the rate-limit gate")
	}
	if calls != 1 {
		t.Fatalf("gate should have prevented a second HTTP call, got %d total calls", calls)
	}
}

// The other half of spec §8 scenario 6: a record whose reset instant has
// passed is stale and no longer gates, even with Available == 0.
func TestRateLimitRecordGoesStaleAfterExpiry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("X-Ratelimit-Available", "0")
		w.Header().Set("X-Ratelimit-Used", "120")
		// Expiry already in the past: the stored record is immediately stale.
		w.Header().Set("X-Ratelimit-Expiry", "1000000000")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"quotes":{"quote":{"symbol":"AAPL","last":"150.25"}}}`))
	}))
	defer srv.Close()

	client := New(NewBearerAuthorizer("test-token"), &Configuration{BaseURL: srv.URL})
	for i := 0; i < 2; i++ {
		if _, err := client.Quotes(context.Background(), []string{"AAPL"}, false); err != nil {
			t.Fatalf("call %d should not be gated by a stale record: %v", i+1, err)
		}
	}
	if calls != 2 {
		t.Fatalf("expected both calls to reach the server, got %d", calls)
	}
}

func TestNonTwoXXStatusIsSurfacedAsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"fault":"boom"}`))
	}))
	defer srv.Close()

	client := New(NewBearerAuthorizer("test-token"), &Configuration{BaseURL: srv.URL})
	_, err := client.Quotes(context.Background(), []string{"AAPL"}, false)
	if err == nil {
		t.Fatal("expected a 500 response to surface as an error")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("expected error to mention status 500, got %v", err)
	}
}

// A non-2xx response whose body carries a recognizable broker error code
// classifies as a KindDomain error (component H) rather than a bare
// KindHTTPStatus error, per spec §4.H/§7.
func TestBrokerCodedFailureClassifiesAsDomainError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"AccountDisabled","message":"account disabled"}`))
	}))
	defer srv.Close()

	client := New(NewBearerAuthorizer("test-token"), &Configuration{BaseURL: srv.URL})
	_, err := client.Quotes(context.Background(), []string{"AAPL"}, false)
	if err == nil {
		t.Fatal("expected an error")
	}
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *apierrors.APIError, got %T", err)
	}
	if apiErr.Kind != apierrors.KindDomain {
		t.Errorf("Kind = %v, want %v", apiErr.Kind, apierrors.KindDomain)
	}
	if apiErr.Code != apierrors.AccountDisabled {
		t.Errorf("Code = %v, want %v", apiErr.Code, apierrors.AccountDisabled)
	}
	if apiErr.HTTPStatus != http.StatusBadRequest {
		t.Errorf("HTTPStatus = %d, want %d", apiErr.HTTPStatus, http.StatusBadRequest)
	}
	if apiErr.IsRetryable() != apierrors.IsRetryable(apierrors.AccountDisabled) {
		t.Errorf("IsRetryable() disagreed with the taxonomy table")
	}
}

// The nested Apigee-style fault envelope is also recognized.
func TestFaultedEnvelopeFailureClassifiesAsDomainError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"fault":{"faultstring":"invalid token","detail":{"errorcode":"AccountDisabled"}}}`))
	}))
	defer srv.Close()

	client := New(NewBearerAuthorizer("test-token"), &Configuration{BaseURL: srv.URL})
	_, err := client.Quotes(context.Background(), []string{"AAPL"}, false)
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *apierrors.APIError, got %T", err)
	}
	if apiErr.Kind != apierrors.KindDomain || apiErr.Code != apierrors.AccountDisabled {
		t.Errorf("expected a domain AccountDisabled error, got Kind=%v Code=%v", apiErr.Kind, apiErr.Code)
	}
}
