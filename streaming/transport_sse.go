// Transport worker for the HTTP chunked / Server-Sent Events path of spec
// §4.K, grounded on original_source/include/oqdTradierpp/streaming.hpp's
// documented SSE grammar (event:/data:/id:/retry:, blank-line dispatch,
// leading-space trim after the colon) and on the teacher's line-oriented
// stream readers (spot/rest/krakenapiclient.go's retryablehttp body
// handling) for the bufio.Scanner idiom used here instead of Kraken's
// whole-body read, since SSE is inherently line-by-line.
package streaming

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-tradier/tradier-go/enum"
	"github.com/go-tradier/tradier-go/streaming/messages"
)

// sseEvent accumulates one dispatch unit (the fields between two blank
// lines) per the SSE grammar.
type sseEvent struct {
	event string
	data  strings.Builder
	id    string
}

func (e *sseEvent) reset() {
	e.event = ""
	e.data.Reset()
	e.id = ""
}

// runSSE opens the event stream, parses it line-by-line, and dispatches
// decoded frames until the response body closes or ctx is canceled. It
// returns nil only for a clean user-requested stop; any other return value
// triggers the caller's reconnect logic.
func (s *Session) runSSE(ctx context.Context, sessionID string, isAccount bool) error {
	var err error
	var bodyCloser func() error
	var scanner *bufio.Scanner

	if isAccount {
		httpResp, openErr := s.client.OpenAccountSSE(ctx, sessionID)
		err = openErr
		if err == nil {
			bodyCloser = httpResp.Body.Close
			scanner = bufio.NewScanner(httpResp.Body)
		}
	} else {
		httpResp, openErr := s.client.OpenMarketSSE(ctx, sessionID, s.symbolSnapshot())
		err = openErr
		if err == nil {
			bodyCloser = httpResp.Body.Close
			scanner = bufio.NewScanner(httpResp.Body)
		}
	}
	if err != nil {
		return fmt.Errorf("sse open failed: %w", err)
	}
	defer bodyCloser()

	s.setState(enum.StateConnected)

	// lineCh is generously buffered so the scanner goroutine never blocks on
	// send past the point the reader below stops selecting on it; closing
	// bodyCloser (deferred above) unblocks scanner.Scan() promptly on the
	// ctx.Done() exit path, after which the goroutine drains to scanErrCh
	// and exits without a reader.
	lineCh := make(chan string, 256)
	scanErrCh := make(chan error, 1)
	go func() {
		for scanner.Scan() {
			lineCh <- scanner.Text()
		}
		scanErrCh <- scanner.Err()
	}()

	var current sseEvent
	for {
		select {
		case <-ctx.Done():
			return nil
		case line := <-lineCh:
			s.feedSSELine(&current, line)
		case err := <-scanErrCh:
			if err != nil {
				return fmt.Errorf("sse stream read failed: %w", err)
			}
			return fmt.Errorf("sse stream closed by server")
		}
	}
}

// feedSSELine applies one line of the SSE grammar to the in-progress
// event, dispatching on the blank line that terminates an event.
func (s *Session) feedSSELine(ev *sseEvent, line string) {
	if line == "" {
		s.dispatchSSEEvent(ev)
		ev.reset()
		return
	}
	field, value, _ := strings.Cut(line, ":")
	value = strings.TrimPrefix(value, " ")
	switch field {
	case "event":
		ev.event = value
	case "data":
		if ev.data.Len() > 0 {
			ev.data.WriteByte('\n')
		}
		ev.data.WriteString(value)
	case "id":
		ev.id = value
	case "retry":
		// Reconnection timing hints from the server are superseded by this
		// session's own exponential-backoff policy (spec §4.K); the field is
		// parsed-and-ignored rather than silently dropped so a reader knows
		// it was considered.
	default:
		// Unknown field names are ignored per the SSE grammar.
	}
}

func (s *Session) dispatchSSEEvent(ev *sseEvent) {
	switch ev.event {
	case "":
		// No explicit event: field means "message" per the SSE default.
	case "heartbeat":
		return
	case "session":
		var payload struct {
			SessionID string `json:"sessionid"`
		}
		if err := json.Unmarshal([]byte(ev.data.String()), &payload); err == nil && payload.SessionID != "" {
			s.mu.Lock()
			s.sessionID = payload.SessionID
			s.createdAt = time.Now()
			s.mu.Unlock()
		}
		return
	}
	if ev.data.Len() == 0 {
		return
	}
	s.dispatch(messages.NewFrame(json.RawMessage(ev.data.String())))
}
