package streaming

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/go-tradier/tradier-go/enum"
	"github.com/go-tradier/tradier-go/rest"
	"github.com/go-tradier/tradier-go/streaming/messages"
)

const testSessionID = "abcdefghijklmnopqrstuvwxyz012345"

// With max attempts N and a transport that always fails, at most N+1
// connect attempts are made, the error callback fires at least once per
// attempt, and the session settles in the Error state.
func TestReconnectBoundWithAlwaysFailingTransport(t *testing.T) {
	var mu sync.Mutex
	sessionPosts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		sessionPosts++
		mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := rest.New(rest.NewBearerAuthorizer("T"), &rest.Configuration{BaseURL: srv.URL})
	s := NewSession(client, nil)
	const maxAttempts = 2
	s.SetMaxReconnectAttempts(maxAttempts)
	s.SetReconnectDelay(time.Millisecond)

	var cbMu sync.Mutex
	errorCalls := 0
	err := s.StartMarketHTTPSync(context.Background(), []string{"SPY"},
		func(messages.Frame, cloudevents.Event) {},
		func(error) {
			cbMu.Lock()
			errorCalls++
			cbMu.Unlock()
		})
	if err == nil {
		t.Fatal("expected the sync start to report the exhausted reconnect budget")
	}
	if got := s.State(); got != enum.StateError {
		t.Fatalf("State() = %v, want %v", got, enum.StateError)
	}

	mu.Lock()
	posts := sessionPosts
	mu.Unlock()
	if posts != maxAttempts+1 {
		t.Errorf("connect attempts = %d, want %d", posts, maxAttempts+1)
	}
	cbMu.Lock()
	calls := errorCalls
	cbMu.Unlock()
	if calls < maxAttempts+1 {
		t.Errorf("error callback fired %d times, want at least %d", calls, maxAttempts+1)
	}
	s.Stop()
}

// After a reconnect, the transport re-sends the symbol set as it stands at
// that moment, including any AddSymbols issued while Reconnecting.
func TestSubscriptionSetPersistsAcrossReconnects(t *testing.T) {
	symbolsSeen := make(chan string, 32)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"stream":{"sessionid":"` + testSessionID + `"}}`))
			return
		}
		select {
		case symbolsSeen <- r.URL.Query().Get("symbols"):
		default:
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := rest.New(rest.NewBearerAuthorizer("T"), &rest.Configuration{BaseURL: srv.URL})
	s := NewSession(client, nil)
	s.SetMaxReconnectAttempts(6)
	s.SetReconnectDelay(time.Millisecond)

	if err := s.StartMarketHTTP(context.Background(), []string{"AAPL"},
		func(messages.Frame, cloudevents.Event) {}, func(error) {}); err != nil {
		t.Fatalf("StartMarketHTTP: %v", err)
	}

	select {
	case first := <-symbolsSeen:
		if first != "AAPL" {
			t.Fatalf("first connect sent symbols %q, want %q", first, "AAPL")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the first stream open")
	}

	if err := s.AddSymbols([]string{"MSFT"}); err != nil {
		t.Fatalf("AddSymbols: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case symbols := <-symbolsSeen:
			if strings.Contains(symbols, "AAPL") && strings.Contains(symbols, "MSFT") {
				s.Stop()
				return
			}
		case <-deadline:
			t.Fatal("no reconnect attempt carried the updated symbol set")
		}
	}
}

// Frames injected in a scripted order reach the data callback in that same
// order after filtering, per the streaming-order-preservation property.
func TestDispatchPreservesFrameOrderUnderFilter(t *testing.T) {
	s := NewSession(nil, nil)
	s.SetDataFilter([]enum.StreamingDataType{enum.DataTypeTrade})

	var got []string
	s.setCallbacks(func(f messages.Frame, _ cloudevents.Event) {
		got = append(got, string(f.Raw))
	}, nil)

	script := []string{
		`{"type":"trade","symbol":"SPY","price":1.0,"size":100}`,
		`{"type":"quote","symbol":"SPY","bid":1.0,"ask":1.01}`,
		`{"type":"trade","symbol":"SPY","price":1.01,"size":200}`,
		`{"type":"trade","symbol":"SPY","price":1.02,"size":300}`,
	}
	for _, raw := range script {
		s.dispatch(messages.NewFrame([]byte(raw)))
	}

	want := []string{script[0], script[2], script[3]}
	if len(got) != len(want) {
		t.Fatalf("dispatched %d frames, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d = %s, want %s", i, got[i], want[i])
		}
	}
}
