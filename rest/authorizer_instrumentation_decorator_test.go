package rest

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
)

// stubAuthorizer is a minimal Authorizer double for exercising the
// decorator without pulling in a mocking library just for this seam.
type stubAuthorizer struct {
	calls int
	out   *http.Request
	err   error
}

func (s *stubAuthorizer) Authorize(ctx context.Context, req *http.Request, auth AuthRequirement) (*http.Request, error) {
	s.calls++
	return s.out, s.err
}

func TestDecorateAuthorizerPanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected DecorateAuthorizer(nil, ...) to panic")
		}
	}()
	DecorateAuthorizer(nil, nil)
}

func TestDecorateAuthorizerDelegates(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://localhost/v1/markets/quotes", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	stub := &stubAuthorizer{out: req}
	dec := DecorateAuthorizer(stub, nil)

	out, err := dec.Authorize(context.Background(), req, AuthBearer)
	if err != nil {
		t.Fatalf("Authorize returned error: %v", err)
	}
	if out != req {
		t.Fatalf("expected the decorated authorizer's request to pass through unchanged")
	}
	if stub.calls != 1 {
		t.Fatalf("expected exactly one delegated call, got %d", stub.calls)
	}
}

func TestDecorateAuthorizerPropagatesError(t *testing.T) {
	stub := &stubAuthorizer{err: errors.New("denied")}
	dec := DecorateAuthorizer(stub, nil)

	_, err := dec.Authorize(context.Background(), &http.Request{URL: &url.URL{Path: "/v1/accounts"}}, AuthBasic)
	if err == nil {
		t.Fatal("expected the decorated authorizer's error to propagate")
	}
	if stub.calls != 1 {
		t.Fatalf("expected exactly one delegated call, got %d", stub.calls)
	}
}

// A Client constructed with a non-nil authorizer wires it through
// DecorateAuthorizer, so the authorizer actually used to sign requests is
// always the traced one. The test lives in package rest, so it checks the
// unexported concrete decorator type directly.
func TestNewWrapsAuthorizerWithInstrumentation(t *testing.T) {
	client := New(NewBearerAuthorizer("tok"), &Configuration{BaseURL: "http://localhost"})
	if _, ok := client.authorizer.(*authorizerInstrumentationDecorator); !ok {
		t.Fatalf("expected New to wrap the authorizer in *authorizerInstrumentationDecorator, got %T", client.authorizer)
	}
}
