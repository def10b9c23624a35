package rest

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// rateLimitRecord is the per-endpoint-group record of spec §3: available/
// used request counts and the instant the broker resets them. A record is
// only ever written from response headers; the client never locally
// recomputes the budget (spec §1 Non-goals).
type rateLimitRecord struct {
	Available int
	Used      int
	ResetAt   time.Time
}

// stale reports whether now has passed the record's reset instant, per
// spec §3: "after reset_instant the record is considered stale and does
// not gate requests."
func (r rateLimitRecord) stale(now time.Time) bool {
	return !now.Before(r.ResetAt)
}

// rateLimitTable is the HTTP Client's internally synchronized rate-limit
// store, keyed by Endpoint.Group(). Shared across goroutines per spec §5.
type rateLimitTable struct {
	mu      sync.RWMutex
	records map[string]rateLimitRecord
}

func newRateLimitTable() *rateLimitTable {
	return &rateLimitTable{records: make(map[string]rateLimitRecord)}
}

// Headers used to extract the rate-limit record, per spec §6.
const (
	headerRatelimitAvailable = "X-Ratelimit-Available"
	headerRatelimitUsed      = "X-Ratelimit-Used"
	headerRatelimitExpiry    = "X-Ratelimit-Expiry"
)

// update extracts the three rate-limit headers from resp, if present, and
// stores the resulting record for group. Missing/unparseable headers leave
// the existing record untouched rather than zeroing it out — a response
// that doesn't carry rate-limit headers (e.g. an error response from a
// proxy in front of the broker) must not be read as "budget exhausted."
func (t *rateLimitTable) update(group string, resp *http.Response) {
	availableStr := resp.Header.Get(headerRatelimitAvailable)
	usedStr := resp.Header.Get(headerRatelimitUsed)
	expiryStr := resp.Header.Get(headerRatelimitExpiry)
	if availableStr == "" && usedStr == "" && expiryStr == "" {
		return
	}
	available, errA := strconv.Atoi(availableStr)
	used, errU := strconv.Atoi(usedStr)
	expirySecs, errE := strconv.ParseInt(expiryStr, 10, 64)
	if errA != nil || errU != nil || errE != nil {
		return
	}
	if available < 0 {
		available = 0
	}
	record := rateLimitRecord{
		Available: available,
		Used:      used,
		ResetAt:   time.Unix(expirySecs, 0),
	}
	t.mu.Lock()
	t.records[group] = record
	t.mu.Unlock()
}

// gate reports whether a request to group should be rejected locally
// before any I/O, per spec §4.G/§8's rate-limit-gate property: available
// == 0 and now is still before the stored reset instant.
func (t *rateLimitTable) gate(group string, now time.Time) bool {
	t.mu.RLock()
	record, ok := t.records[group]
	t.mu.RUnlock()
	if !ok {
		return false
	}
	if record.stale(now) {
		return false
	}
	return record.Available == 0
}

// Snapshot returns the currently stored record for group and whether one
// exists, for callers that want to inspect remaining budget without
// issuing a request (e.g. a facade method that wants to warn a caller
// proactively).
func (t *rateLimitTable) Snapshot(group string) (rateLimitRecord, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	record, ok := t.records[group]
	return record, ok
}
