// Package streaming implements the Streaming Session Core (component K):
// session lifecycle, dual WebSocket/SSE transport workers, dynamic symbol
// subscription, data-type filtering, and exponential-backoff reconnection.
//
// It is grounded on original_source/include/oqdTradierpp/streaming.hpp's
// StreamingSession for the field/method shape (stored connection params for
// replay, should_reconnect/reconnect_attempts/max_reconnect_attempts/
// base_reconnect_delay, a cancellable wait) and on the teacher's
// spot/websocket/kraken_spot_public_websocket_client.go for the Go idiom:
// a goroutine-per-session worker instead of std::thread, context.Context
// cancellation instead of a bespoke stop flag, a mutex-guarded subscription
// set instead of a dedicated symbols_mutex_, and cloudevents envelopes
// (github.com/cloudevents/sdk-go/v2) instead of raw simdjson elements.
package streaming

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	apierrors "github.com/go-tradier/tradier-go/errors"
	"github.com/go-tradier/tradier-go/enum"
	"github.com/go-tradier/tradier-go/ident"
	"github.com/go-tradier/tradier-go/rest"
	"github.com/go-tradier/tradier-go/streaming/messages"
	"go.uber.org/zap"
)

// Streaming hosts. Production and sandbox share the same WebSocket host per
// spec §6; SSE uses the regular API host already captured in rest.Client.
const (
	MarketStreamURL  = "wss://ws.tradier.com/v1/markets/events"
	AccountStreamURL = "wss://ws.tradier.com/v1/accounts/events"

	// sessionTTL is the lifetime of a session_id before it must be refreshed
	// ahead of a (re)connect, per spec §3 "Session ticket".
	sessionTTL = 5 * time.Minute

	// DefaultMaxReconnectAttempts and DefaultBaseReconnectDelay match the
	// source's StreamingSession defaults.
	DefaultMaxReconnectAttempts = 10
	DefaultBaseReconnectDelay   = time.Second
)

// DataCallback receives every dispatched frame not excluded by the active
// filter. Frames are delivered in server order on a single goroutine, so
// the callback never races with itself, but it runs on the session's
// worker and must not re-enter the session (calling Stop from inside the
// callback deadlocks the worker join). The session never holds an internal
// lock while invoking it.
type DataCallback func(messages.Frame, cloudevents.Event)

// ErrorCallback receives every state transition and transport error as a
// human-readable description, per spec §4.K ("observability, not just
// errors").
type ErrorCallback func(error)

// eventSourceName is the cloudevents Source attribute stamped on every
// envelope this package emits.
const eventSourceName = "tradier-go/streaming"

const connectionStateEventType = "io.tradier.connection_state"

// connParams mirrors the source's ConnectionParams: the information needed
// to replay a connection attempt verbatim after a reconnect.
type connParams struct {
	isWebSocket bool
	isAccount   bool
}

// Session is one streaming subscription manager, bound to a single HTTP
// Client for session creation and (for the SSE transport) the stream GET
// itself. A Session serves exactly one active stream at a time; start a
// second Session to run market and account streams concurrently.
type Session struct {
	client *rest.Client
	logger *zap.Logger
	rng    *rand.Rand
	ids    ident.Source

	mu        sync.Mutex
	state     enum.ConnectionState
	sessionID string
	createdAt time.Time
	params    connParams

	symbolsMu sync.Mutex
	symbols   map[string]struct{}

	filterMu  sync.Mutex
	filter    map[enum.StreamingDataType]struct{}
	hasFilter bool

	cbMu    sync.Mutex
	onData  DataCallback
	onError ErrorCallback

	reconnectMu           sync.Mutex
	shouldReconnect       bool
	maxReconnectAttempts  int
	baseReconnectDelay    time.Duration
	reconnectAttempts     int

	// sendUpdate is set by the active WebSocket transport while connected,
	// letting AddSymbols/RemoveSymbols push a live subscribe/unsubscribe
	// frame. It is nil when no WebSocket transport is connected (including
	// the whole lifetime of an SSE session, which has no write side).
	sendMu     sync.Mutex
	sendUpdate func(action string, symbols []string) error

	stopOnce sync.Once
	stopCh   chan struct{}
	cancel   context.CancelFunc
	done     chan struct{}

	// readyCh is closed the first time, after a start() call, that the
	// state reaches Connected or Error (or Stop is called). The blocking
	// Start*Sync methods wait on it so the "blocking form" of spec
	// §4.K/§9 awaits the connection outcome instead of the whole
	// (indefinite) stream lifetime.
	readyMu   sync.Mutex
	readyCh   chan struct{}
	readyOnce sync.Once
}

// NewSession builds a Session bound to client. logger may be nil, in which
// case a no-op logger is used.
func NewSession(client *rest.Client, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		client:               client,
		logger:               logger,
		rng:                  rand.New(rand.NewSource(time.Now().UnixNano())),
		ids:                  ident.NewSequence(),
		state:                enum.StateDisconnected,
		symbols:              make(map[string]struct{}),
		filter:               make(map[enum.StreamingDataType]struct{}),
		shouldReconnect:      true,
		maxReconnectAttempts: DefaultMaxReconnectAttempts,
		baseReconnectDelay:   DefaultBaseReconnectDelay,
	}
}

// State returns the session's current connection state.
func (s *Session) State() enum.ConnectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setState(state enum.ConnectionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	if state == enum.StateConnected {
		// A successful connection restores the full reconnect budget, so a
		// long-lived stream that drops once a day is not treated as if its
		// failures were consecutive.
		s.reconnectMu.Lock()
		s.reconnectAttempts = 0
		s.reconnectMu.Unlock()
	}
	s.fireStateEvent(state)
	if state == enum.StateConnected || state == enum.StateError {
		s.markReady()
	}
}

// markReady closes readyCh exactly once per start() cycle.
func (s *Session) markReady() {
	s.readyMu.Lock()
	defer s.readyMu.Unlock()
	if s.readyCh == nil {
		return
	}
	s.readyOnce.Do(func() { close(s.readyCh) })
}

// SetReconnectEnabled toggles automatic reconnection.
func (s *Session) SetReconnectEnabled(enabled bool) {
	s.reconnectMu.Lock()
	s.shouldReconnect = enabled
	s.reconnectMu.Unlock()
}

// SetMaxReconnectAttempts bounds the number of reconnect attempts made
// before the session gives up and settles in the Error state.
func (s *Session) SetMaxReconnectAttempts(attempts int) {
	s.reconnectMu.Lock()
	s.maxReconnectAttempts = attempts
	s.reconnectMu.Unlock()
}

// SetReconnectDelay sets the base delay used in the exponential backoff.
func (s *Session) SetReconnectDelay(delay time.Duration) {
	s.reconnectMu.Lock()
	s.baseReconnectDelay = delay
	s.reconnectMu.Unlock()
}

// SetDataFilter restricts dispatched frames to the given data types.
func (s *Session) SetDataFilter(types []enum.StreamingDataType) {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()
	s.filter = make(map[enum.StreamingDataType]struct{}, len(types))
	for _, t := range types {
		s.filter[t] = struct{}{}
	}
	s.hasFilter = true
}

// ClearDataFilter removes any previously set data filter.
func (s *Session) ClearDataFilter() {
	s.filterMu.Lock()
	s.hasFilter = false
	s.filter = make(map[enum.StreamingDataType]struct{})
	s.filterMu.Unlock()
}

func (s *Session) shouldDispatch(t enum.StreamingDataType) bool {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()
	if !s.hasFilter {
		return true
	}
	_, ok := s.filter[t]
	return ok
}

// AddSymbols adds symbols to the active subscription set, mutating it
// atomically, and — if a WebSocket transport is currently connected —
// immediately pushes the change to the server. A session not currently
// connected simply records the change for the next (re)connect.
func (s *Session) AddSymbols(symbols []string) error {
	s.symbolsMu.Lock()
	for _, sym := range symbols {
		s.symbols[sym] = struct{}{}
	}
	s.symbolsMu.Unlock()
	return s.pushSubscriptionUpdate("subscribe", symbols)
}

// RemoveSymbols is AddSymbols's inverse.
func (s *Session) RemoveSymbols(symbols []string) error {
	s.symbolsMu.Lock()
	for _, sym := range symbols {
		delete(s.symbols, sym)
	}
	s.symbolsMu.Unlock()
	return s.pushSubscriptionUpdate("unsubscribe", symbols)
}

func (s *Session) pushSubscriptionUpdate(action string, symbols []string) error {
	if len(symbols) == 0 {
		return nil
	}
	s.sendMu.Lock()
	fn := s.sendUpdate
	s.sendMu.Unlock()
	if fn == nil {
		return nil
	}
	return fn(action, symbols)
}

func (s *Session) symbolSnapshot() []string {
	s.symbolsMu.Lock()
	defer s.symbolsMu.Unlock()
	out := make([]string, 0, len(s.symbols))
	for sym := range s.symbols {
		out = append(out, sym)
	}
	return out
}

func (s *Session) setCallbacks(onData DataCallback, onError ErrorCallback) {
	s.cbMu.Lock()
	s.onData, s.onError = onData, onError
	s.cbMu.Unlock()
}

func (s *Session) dropCallbacks() {
	s.cbMu.Lock()
	s.onData, s.onError = nil, nil
	s.cbMu.Unlock()
}

func (s *Session) dispatch(frame messages.Frame) {
	if !s.shouldDispatch(frame.DataType) {
		return
	}
	evt := cloudevents.NewEvent()
	evt.SetID(strconv.FormatInt(s.ids.NextID(), 10))
	evt.SetSource(eventSourceName)
	evt.SetType(frame.DataType.String())
	_ = evt.SetData(cloudevents.ApplicationJSON, frame.Raw)

	s.cbMu.Lock()
	cb := s.onData
	s.cbMu.Unlock()
	if cb != nil {
		cb(frame, evt)
	}
}

func (s *Session) fireError(err error) {
	s.cbMu.Lock()
	cb := s.onError
	s.cbMu.Unlock()
	if cb != nil && err != nil {
		cb(err)
	}
}

func (s *Session) fireStateEvent(state enum.ConnectionState) {
	s.logger.Info("streaming connection state transition", zap.String("state", state.String()))
	s.fireError(fmt.Errorf("%s: %s", connectionStateEventType, state))
}

// ensureSession creates a session_id if none exists, or refreshes it if
// sessionTTL has elapsed, per spec §3's session-ticket lifecycle.
func (s *Session) ensureSession(ctx context.Context, isAccount bool) (string, error) {
	s.mu.Lock()
	id, created := s.sessionID, s.createdAt
	s.mu.Unlock()
	if id != "" && time.Since(created) < sessionTTL {
		return id, nil
	}
	var newID string
	var err error
	if isAccount {
		resp, createErr := s.client.CreateAccountSession(ctx)
		newID, err = resp.SessionID, createErr
	} else {
		resp, createErr := s.client.CreateMarketSession(ctx)
		newID, err = resp.SessionID, createErr
	}
	if err != nil {
		return "", apierrors.NewStreamingError("failed to create streaming session", err)
	}
	s.mu.Lock()
	s.sessionID = newID
	s.createdAt = time.Now()
	s.mu.Unlock()
	return newID, nil
}

// Stop is the single cancellation entry point (spec §4.K). It is idempotent:
// it flips should_reconnect to false, wakes the reconnect wait, cancels the
// worker's context, and blocks until the worker goroutine has exited. The
// session then rests in Disconnected and its callback references are
// dropped.
func (s *Session) Stop() {
	s.reconnectMu.Lock()
	s.shouldReconnect = false
	s.reconnectMu.Unlock()

	s.stopOnce.Do(func() {
		if s.stopCh != nil {
			close(s.stopCh)
		}
		if s.cancel != nil {
			s.cancel()
		}
	})
	if s.done != nil {
		<-s.done
	}
	s.setState(enum.StateDisconnected)
	s.markReady()
	s.dropCallbacks()
}

func (s *Session) reconnectSnapshot() (bool, int, time.Duration) {
	s.reconnectMu.Lock()
	defer s.reconnectMu.Unlock()
	return s.shouldReconnect, s.maxReconnectAttempts, s.baseReconnectDelay
}

// start begins the worker goroutine for the given transport/stream kind. It
// is the shared implementation behind every exported Start*Async method.
func (s *Session) start(ctx context.Context, params connParams, onData DataCallback, onError ErrorCallback) error {
	s.mu.Lock()
	if s.state != enum.StateDisconnected && s.state != enum.StateError {
		s.mu.Unlock()
		return apierrors.NewStreamingError("session already active; call Stop before starting again", nil)
	}
	s.params = params
	s.mu.Unlock()

	s.setCallbacks(onData, onError)
	s.stopOnce = sync.Once{}
	s.stopCh = make(chan struct{})
	s.done = make(chan struct{})
	workerCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.readyMu.Lock()
	s.readyCh = make(chan struct{})
	s.readyOnce = sync.Once{}
	s.readyMu.Unlock()

	s.reconnectMu.Lock()
	s.shouldReconnect = true
	s.reconnectAttempts = 0
	s.reconnectMu.Unlock()

	s.setState(enum.StateConnecting)
	go s.runLoop(workerCtx, params)
	return nil
}

// runLoop is the single worker per spec §5: it is started on session start
// and joined on stop, and it owns the reconnect state machine.
func (s *Session) runLoop(ctx context.Context, params connParams) {
	defer close(s.done)
	for {
		err := s.connectAndServe(ctx, params)
		if err == nil {
			s.setState(enum.StateDisconnected)
			return
		}
		select {
		case <-ctx.Done():
			s.setState(enum.StateDisconnected)
			return
		default:
		}

		shouldReconnect, maxAttempts, baseDelay := s.reconnectSnapshot()
		if !shouldReconnect {
			s.setState(enum.StateError)
			s.fireError(err)
			return
		}

		s.setState(enum.StateReconnecting)
		s.reconnectMu.Lock()
		s.reconnectAttempts++
		attempt := s.reconnectAttempts
		s.reconnectMu.Unlock()

		if attempt > maxAttempts {
			s.setState(enum.StateError)
			s.fireError(apierrors.NewStreamingError("reconnect attempts exhausted", err))
			return
		}

		delay := reconnectDelay(baseDelay, attempt, s.rng)
		s.fireError(fmt.Errorf("connection lost (%w); reconnecting in %s (attempt %d/%d)", err, delay, attempt, maxAttempts))

		if !cancellableWait(ctx, s.stopCh, delay) {
			s.setState(enum.StateDisconnected)
			return
		}
	}
}

// connectAndServe establishes one connection attempt and serves frames
// until the connection ends, returning nil only for a clean user-requested
// stop and a non-nil error for anything that should trigger reconnection.
func (s *Session) connectAndServe(ctx context.Context, params connParams) error {
	sessionID, err := s.ensureSession(ctx, params.isAccount)
	if err != nil {
		return err
	}
	if params.isWebSocket {
		return s.runWebSocket(ctx, sessionID, params.isAccount)
	}
	return s.runSSE(ctx, sessionID, params.isAccount)
}
