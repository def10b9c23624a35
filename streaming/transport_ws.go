// Transport worker for the WebSocket path of spec §4.K, grounded on the
// teacher's spot/websocket/kraken_spot_public_websocket_client.go (dial,
// read-loop-in-goroutine, context-cancellation shape) generalized from
// Kraken's single public/private socket pair to Tradier's
// sessionid-scoped market/account sockets, and on
// original_source/include/oqdTradierpp/streaming.hpp's documented initial
// frame and subscribe/unsubscribe action messages.
package streaming

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-tradier/tradier-go/codec"
	"github.com/go-tradier/tradier-go/enum"
	"github.com/go-tradier/tradier-go/streaming/messages"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// wsURLFor returns the fixed wss:// streaming host for the stream kind. It
// is not derived from the bound client's REST base URL: per spec §6
// production/sandbox share the same ws.tradier.com host, so this mirrors
// the source's fixed constant, since Tradier does not publish a distinct
// sandbox websocket host.
func wsURLFor(isAccount bool) string {
	if isAccount {
		return AccountStreamURL
	}
	return MarketStreamURL
}

// buildSubscribeFrame renders the initial frame sent on connect, per spec
// §6: {"sessionid": "...", "symbols":[...]}, through codec.Builder (the
// component B JSON builder every other outbound wire payload in this module
// goes through) rather than encoding/json. The account stream omits the
// symbols array entirely, matching the source's documented contract that
// account events are not symbol-scoped.
func buildSubscribeFrame(sessionID string, symbols []string) []byte {
	b := codec.NewBuilder()
	b.BeginObject()
	b.WriteStringField("sessionid", sessionID)
	if symbols != nil {
		b.BeginArrayField("symbols")
		for _, sym := range symbols {
			b.WriteStringElement(sym)
		}
		b.EndArray()
	}
	b.EndObject()
	return b.Bytes()
}

// buildActionFrame renders an add_symbols/remove_symbols mutation:
// {"action":"subscribe"|"unsubscribe","symbols":[...]}, exactly the wire
// shape the broker documents for subscription changes.
func buildActionFrame(action string, symbols []string) []byte {
	b := codec.NewBuilder()
	b.BeginObject()
	b.WriteStringField("action", action)
	b.BeginArrayField("symbols")
	for _, sym := range symbols {
		b.WriteStringElement(sym)
	}
	b.EndArray()
	b.EndObject()
	return b.Bytes()
}

// runWebSocket dials the streaming host, sends the initial subscribe frame,
// installs the live add/remove sender, and reads frames until the
// connection closes or ctx is canceled. It returns nil only for a clean
// user-requested stop (ctx canceled via Stop); any other return value
// triggers the caller's reconnect logic.
func (s *Session) runWebSocket(ctx context.Context, sessionID string, isAccount bool) error {
	dialer := websocket.Dialer{HandshakeTimeout: 15 * time.Second}
	header := http.Header{}
	conn, _, err := dialer.DialContext(ctx, wsURLFor(isAccount), header)
	if err != nil {
		return fmt.Errorf("websocket dial failed: %w", err)
	}
	defer conn.Close()

	var symbols []string
	if !isAccount {
		symbols = s.symbolSnapshot()
	}
	if err := conn.WriteMessage(websocket.TextMessage, buildSubscribeFrame(sessionID, symbols)); err != nil {
		return fmt.Errorf("websocket initial frame failed: %w", err)
	}

	s.setState(enum.StateConnected)
	s.installSendUpdate(conn)
	defer s.clearSendUpdate()

	readErrCh := make(chan error, 1)
	go func() {
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				readErrCh <- err
				return
			}
			s.dispatch(messages.NewFrame(json.RawMessage(data)))
		}
	}()

	select {
	case <-ctx.Done():
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(2*time.Second))
		return nil
	case err := <-readErrCh:
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return nil
		}
		return fmt.Errorf("websocket read failed: %w", err)
	}
}

// installSendUpdate wires AddSymbols/RemoveSymbols to push a live
// subscribe/unsubscribe frame over conn while this transport is connected.
func (s *Session) installSendUpdate(conn *websocket.Conn) {
	s.sendMu.Lock()
	s.sendUpdate = func(action string, symbols []string) error {
		frame := buildActionFrame(action, symbols)
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			s.logger.Warn("failed to push subscription update",
				zap.String("action", action), zap.Strings("symbols", symbols),
				zap.Error(err))
			return err
		}
		return nil
	}
	s.sendMu.Unlock()
}

func (s *Session) clearSendUpdate() {
	s.sendMu.Lock()
	s.sendUpdate = nil
	s.sendMu.Unlock()
}
