package codec

import "testing"

func TestPercentEncodeLeavesUnreservedAlone(t *testing.T) {
	in := "Abc123-_.~"
	if got := PercentEncode(in); got != in {
		t.Errorf("expected unreserved set untouched, got %q", got)
	}
}

func TestPercentEncodeUppercaseHex(t *testing.T) {
	if got := PercentEncode("AAPL,MSFT"); got != "AAPL%2CMSFT" {
		t.Errorf("got %q", got)
	}
	if got := PercentEncode(" "); got != "%20" {
		t.Errorf("got %q", got)
	}
}

func TestPercentDecodeRoundTrip(t *testing.T) {
	cases := []string{
		"hello world",
		"a\"b\\c",
		"tab\tnewline\n",
		"quote\"semicolon;pipe|amp&",
		"unicode-éè",
	}
	for _, s := range cases {
		encoded := PercentEncode(s)
		decoded := PercentDecode(encoded)
		if decoded != s {
			t.Errorf("round trip failed for %q: encoded=%q decoded=%q", s, encoded, decoded)
		}
	}
}

func TestPercentDecodeAcceptsPlusAsSpace(t *testing.T) {
	if got := PercentDecode("a+b"); got != "a b" {
		t.Errorf("got %q", got)
	}
}

func TestPercentDecodeTolerantOfMalformedTriplet(t *testing.T) {
	if got := PercentDecode("100%"); got != "100%" {
		t.Errorf("got %q", got)
	}
	if got := PercentDecode("100%ZZ"); got != "100%ZZ" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeForm(t *testing.T) {
	pairs := []KV{{Key: "symbols", Value: "AAPL,MSFT"}, {Key: "greeks", Value: "true"}}
	got := EncodeForm(pairs)
	want := "symbols=AAPL%2CMSFT&greeks=true"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeFormEmpty(t *testing.T) {
	if got := EncodeForm(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestBase64Encode(t *testing.T) {
	cases := map[string]string{
		"":    "",
		"f":   "Zg==",
		"fo":  "Zm8=",
		"foo": "Zm9v",
		"client_id:client_secret": "Y2xpZW50X2lkOmNsaWVudF9zZWNyZXQ=",
	}
	for in, want := range cases {
		if got := Base64Encode([]byte(in)); got != want {
			t.Errorf("Base64Encode(%q) = %q want %q", in, got, want)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	if got := FormatFixed(150.3, 2); got != "150.30" {
		t.Errorf("got %q", got)
	}
	if got := FormatFixed(1, 4); got != "1.0000" {
		t.Errorf("got %q", got)
	}
}

func TestFormatShortest(t *testing.T) {
	if got := FormatShortest(150.35); got != "150.35" {
		t.Errorf("got %q", got)
	}
}
