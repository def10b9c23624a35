// Package codec provides the wire-level encoding primitives and the
// append-only JSON builder the rest of the client uses to forge request
// bodies and query strings. It intentionally avoids net/url and
// encoding/json's Marshal for the hot path: the wire format here has
// precision requirements (fixed-decimal monetary fields) that a reflective
// marshaler cannot express without an intermediate wrapper type, and the
// broker's own form-encoding behavior (uppercase hex escapes) is narrower
// than what net/url.QueryEscape produces.
package codec

import (
	"strconv"
	"strings"
)

// isUnreserved reports whether b is in RFC 3986's unreserved set
// (ALPHA / DIGIT / "-" / "." / "_" / "~"), the only bytes that pass through
// percent-encoding untouched.
func isUnreserved(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '.' || b == '_' || b == '~':
		return true
	default:
		return false
	}
}

const upperHex = "0123456789ABCDEF"

// PercentEncode encodes s per RFC 3986, leaving only the unreserved set
// untouched and escaping everything else as %HH with uppercase hex digits.
func PercentEncode(s string) string {
	var needsEscape int
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			needsEscape++
		}
	}
	if needsEscape == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2*needsEscape)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

// PercentDecode reverses PercentEncode. It additionally accepts "+" as a
// space (application/x-www-form-urlencoded convention) and passes through
// any byte that isn't part of a well-formed "%HH" triplet unmodified rather
// than failing — malformed input from a server is not this layer's problem
// to reject.
func PercentDecode(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 < len(s) {
				if hi, ok := hexVal(s[i+1]); ok {
					if lo, ok := hexVal(s[i+2]); ok {
						b.WriteByte(hi<<4 | lo)
						i += 2
						continue
					}
				}
			}
			b.WriteByte('%')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// KV is an ordered key/value pair used to build query strings and form
// bodies. Order is preserved because the broker's sandbox logs and some of
// its error messages echo parameters back in submission order, which makes
// diffing recorded fixtures against live traffic easier.
type KV struct {
	Key   string
	Value string
}

// EncodeForm renders pairs as a "key=value&..." body with both key and
// value percent-encoded, the shared format used for both query strings and
// application/x-www-form-urlencoded POST/PUT bodies.
func EncodeForm(pairs []KV) string {
	if len(pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(PercentEncode(p.Key))
		b.WriteByte('=')
		b.WriteString(PercentEncode(p.Value))
	}
	return b.String()
}

const base64StdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Base64Encode encodes data with the standard alphabet and "=" padding,
// used for the client_id:client_secret basic-auth header.
func Base64Encode(data []byte) string {
	var b strings.Builder
	b.Grow((len(data) + 2) / 3 * 4)
	for i := 0; i < len(data); i += 3 {
		chunk := data[i:min(i+3, len(data))]
		var n uint32
		for _, c := range chunk {
			n = n<<8 | uint32(c)
		}
		n <<= uint(8 * (3 - len(chunk)))
		b.WriteByte(base64StdAlphabet[(n>>18)&0x3f])
		b.WriteByte(base64StdAlphabet[(n>>12)&0x3f])
		if len(chunk) > 1 {
			b.WriteByte(base64StdAlphabet[(n>>6)&0x3f])
		} else {
			b.WriteByte('=')
		}
		if len(chunk) > 2 {
			b.WriteByte(base64StdAlphabet[n&0x3f])
		} else {
			b.WriteByte('=')
		}
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// FormatFixed formats f with exactly n decimal places, the representation
// used for monetary fields so the broker always receives a tick-consistent
// decimal count regardless of the float's native precision.
func FormatFixed(f float64, n int) string {
	return strconv.FormatFloat(f, 'f', n, 64)
}

// FormatShortest formats f using the shortest decimal representation that
// round-trips exactly, the default for non-monetary numeric fields.
func FormatShortest(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
