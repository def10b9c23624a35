// Package events holds the decoded response type for the streaming
// session-creation endpoints (POST /v1/markets/events/session and
// /v1/accounts/events/session), grounded on spec §6's
// `{stream:{sessionid:"..."}}` envelope.
package events

import "encoding/json"

// SessionResponse is the broker's session-creation acknowledgement.
type SessionResponse struct {
	SessionID string `json:"sessionid"`
	URL       string `json:"url,omitempty"`
}

// DecodeSessionResponse unwraps the `{"stream": {"sessionid": "..."}}`
// envelope, per spec §6.
func DecodeSessionResponse(raw json.RawMessage) (SessionResponse, error) {
	var envelope struct {
		Stream SessionResponse `json:"stream"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return SessionResponse{}, err
	}
	return envelope.Stream, nil
}
