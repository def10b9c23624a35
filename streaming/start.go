// Public entry points for component K (spec §4.K): start_market_http,
// start_market_websocket, start_account_http, start_account_websocket,
// each with an async form (returns once the worker goroutine is launched)
// and a blocking Sync form (additionally waits until the stream first
// reaches Connected or the session settles in Error), per the "single async core plus a thin blocking
// adapter" design of spec §9 — grounded on the teacher's pattern of a
// context-first method plus a context.Background()-supplying companion
// (kraken_spot_public_websocket_client.go's Subscribe/SubscribeBlocking
// shape).
package streaming

import (
	"context"

	apierrors "github.com/go-tradier/tradier-go/errors"
	"github.com/go-tradier/tradier-go/enum"
)

// seedSymbols replaces the session's subscription set before a fresh start.
// A session being restarted after Stop begins from an empty set unless the
// caller passes symbols again, matching the source's ConnectionParams
// replay contract (stored params are replayed verbatim on reconnect, not
// across a user-initiated Stop/Start cycle).
func (s *Session) seedSymbols(symbols []string) {
	s.symbolsMu.Lock()
	s.symbols = make(map[string]struct{}, len(symbols))
	for _, sym := range symbols {
		s.symbols[sym] = struct{}{}
	}
	s.symbolsMu.Unlock()
}

// StartMarketWebSocket opens the market-data stream over WebSocket. symbols
// seeds the initial subscription; use AddSymbols/RemoveSymbols afterward to
// change it. It returns as soon as the worker goroutine is launched — the
// connection itself happens asynchronously, with onError receiving every
// state transition.
func (s *Session) StartMarketWebSocket(ctx context.Context, symbols []string, onData DataCallback, onError ErrorCallback) error {
	s.seedSymbols(symbols)
	return s.start(ctx, connParams{isWebSocket: true, isAccount: false}, onData, onError)
}

// StartMarketWebSocketSync is StartMarketWebSocket's blocking form: it
// returns nil once the stream first reaches Connected, or a non-nil error
// once the session settles in Error (reconnection disabled, or the
// reconnect budget used up before any connection succeeded). A failed
// first attempt alone does not return: the session retries per its
// configured policy while this call keeps waiting.
func (s *Session) StartMarketWebSocketSync(ctx context.Context, symbols []string, onData DataCallback, onError ErrorCallback) error {
	return s.startSync(ctx, func() error { return s.StartMarketWebSocket(ctx, symbols, onData, onError) })
}

// StartMarketHTTP opens the market-data stream over Server-Sent Events.
func (s *Session) StartMarketHTTP(ctx context.Context, symbols []string, onData DataCallback, onError ErrorCallback) error {
	s.seedSymbols(symbols)
	return s.start(ctx, connParams{isWebSocket: false, isAccount: false}, onData, onError)
}

// StartMarketHTTPSync is StartMarketHTTP's blocking form.
func (s *Session) StartMarketHTTPSync(ctx context.Context, symbols []string, onData DataCallback, onError ErrorCallback) error {
	return s.startSync(ctx, func() error { return s.StartMarketHTTP(ctx, symbols, onData, onError) })
}

// StartAccountWebSocket opens the account-events stream over WebSocket.
// Account streams carry no symbol filter (spec §6).
func (s *Session) StartAccountWebSocket(ctx context.Context, onData DataCallback, onError ErrorCallback) error {
	s.seedSymbols(nil)
	return s.start(ctx, connParams{isWebSocket: true, isAccount: true}, onData, onError)
}

// StartAccountWebSocketSync is StartAccountWebSocket's blocking form.
func (s *Session) StartAccountWebSocketSync(ctx context.Context, onData DataCallback, onError ErrorCallback) error {
	return s.startSync(ctx, func() error { return s.StartAccountWebSocket(ctx, onData, onError) })
}

// StartAccountHTTP opens the account-events stream over Server-Sent Events.
func (s *Session) StartAccountHTTP(ctx context.Context, onData DataCallback, onError ErrorCallback) error {
	s.seedSymbols(nil)
	return s.start(ctx, connParams{isWebSocket: false, isAccount: true}, onData, onError)
}

// StartAccountHTTPSync is StartAccountHTTP's blocking form.
func (s *Session) StartAccountHTTPSync(ctx context.Context, onData DataCallback, onError ErrorCallback) error {
	return s.startSync(ctx, func() error { return s.StartAccountHTTP(ctx, onData, onError) })
}

// startSync runs launch (one of the Start* async methods above) and, if it
// launched successfully, blocks until the session's readyCh fires (the
// connection settled into Connected or Error) or ctx is canceled first. A
// session that exhausted its reconnect budget before ever connecting
// surfaces that as an error here rather than a nil return.
func (s *Session) startSync(ctx context.Context, launch func() error) error {
	if err := launch(); err != nil {
		return err
	}
	s.readyMu.Lock()
	ready := s.readyCh
	s.readyMu.Unlock()
	select {
	case <-ready:
		if s.State() == enum.StateError {
			return apierrors.NewStreamingError("stream failed to connect", nil)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
