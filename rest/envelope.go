package rest

import (
	"encoding/json"

	apierrors "github.com/go-tradier/tradier-go/errors"
)

// unwrap descends through a chain of nested object keys in the broker's
// response envelope (e.g. {"quotes":{"quote":[...]}}) and returns the raw
// value at the end of the chain. If any key along the way is absent, or
// the value at that key is null, it returns a JSON null so the caller's
// Decode*/DecodeOneOrMany sees an empty result rather than an error — the
// broker omits the inner key entirely when a collection is empty, which is
// not malformed, just empty (spec §4.C: decoders tolerate missing fields).
func unwrap(raw json.RawMessage, keys ...string) json.RawMessage {
	current := raw
	for _, key := range keys {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(current, &obj); err != nil {
			return json.RawMessage("null")
		}
		next, ok := obj[key]
		if !ok {
			return json.RawMessage("null")
		}
		current = next
	}
	return current
}

// unwrapSingle is unwrap for a response shape with exactly one nesting
// level, split out only for readability at call sites.
func unwrapSingle(raw json.RawMessage, key string) json.RawMessage {
	return unwrap(raw, key)
}

// decodeStringList decodes a JSON array of strings, returning nil for a
// null/absent array.
func decodeStringList(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		var single string
		if err2 := json.Unmarshal(raw, &single); err2 != nil {
			return nil, err
		}
		return []string{single}, nil
	}
	return out, nil
}

// decodeFloatList decodes a JSON array of numbers, returning nil for a
// null/absent array.
func decodeFloatList(raw json.RawMessage) ([]float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var out []float64
	if err := json.Unmarshal(raw, &out); err != nil {
		var single float64
		if err2 := json.Unmarshal(raw, &single); err2 != nil {
			return nil, err
		}
		return []float64{single}, nil
	}
	return out, nil
}

// errorBodyShapes are the broker error-code field shapes this client
// recognizes, tried in order against a non-2xx response body: a bare
// top-level "code"/"errorcode" string (the shape order-placement and
// account-mutation failures use), and the nested Apigee-style
// {"fault":{"detail":{"errorcode":"..."}}} envelope the gateway in front of
// the OAuth/account endpoints wraps its own failures in.
func domainCodeFromBody(body []byte) (string, bool) {
	var flat struct {
		Code      string `json:"code"`
		ErrorCode string `json:"errorcode"`
	}
	if err := json.Unmarshal(body, &flat); err == nil {
		if flat.Code != "" {
			return flat.Code, true
		}
		if flat.ErrorCode != "" {
			return flat.ErrorCode, true
		}
	}
	var faulted struct {
		Fault struct {
			Detail struct {
				ErrorCode string `json:"errorcode"`
			} `json:"detail"`
		} `json:"fault"`
	}
	if err := json.Unmarshal(body, &faulted); err == nil && faulted.Fault.Detail.ErrorCode != "" {
		return faulted.Fault.Detail.ErrorCode, true
	}
	return "", false
}

// newResponseError builds the typed error for a non-2xx response: a
// KindDomain error (component H) when the body carries a recognizable
// broker error code, falling back to the plain HTTP-status error when it
// doesn't (e.g. a bare string fault or an unstructured 5xx body), per spec
// §4.H/§7 — a broker-coded failure must classify through the taxonomy so
// callers can consult retryability, but an unrecognized body is still
// reported rather than dropped.
func newResponseError(status int, body []byte) *apierrors.APIError {
	if code, ok := domainCodeFromBody(body); ok {
		err := apierrors.NewDomainErrorFromString(code, string(body))
		err.HTTPStatus = status
		return err
	}
	return apierrors.NewHTTPStatusError(status, string(body))
}
