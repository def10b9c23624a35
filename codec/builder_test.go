package codec

import (
	"encoding/json"
	"testing"
)

func TestBuilderObjectFields(t *testing.T) {
	b := NewBuilder()
	b.BeginObject().
		WriteStringField("symbol", "AAPL").
		WriteIntField("quantity", 100).
		WriteFloatField("price", 150.35).
		WriteBoolField("greeks", true).
		EndObject()

	var decoded map[string]interface{}
	if err := json.Unmarshal(b.Bytes(), &decoded); err != nil {
		t.Fatalf("produced invalid JSON: %v, doc=%s", err, b.String())
	}
	if decoded["symbol"] != "AAPL" {
		t.Errorf("symbol = %v", decoded["symbol"])
	}
	if decoded["quantity"].(float64) != 100 {
		t.Errorf("quantity = %v", decoded["quantity"])
	}
	if decoded["greeks"] != true {
		t.Errorf("greeks = %v", decoded["greeks"])
	}
}

func TestBuilderNestedObjectsAndArrays(t *testing.T) {
	b := NewBuilder()
	b.BeginObject()
	b.WriteStringField("sessionid", "abc123")
	b.key("symbols")
	b.BeginArray()
	b.WriteStringElement("AAPL")
	b.WriteStringElement("MSFT")
	b.EndArray()
	b.EndObject()

	var decoded struct {
		SessionID string   `json:"sessionid"`
		Symbols   []string `json:"symbols"`
	}
	if err := json.Unmarshal(b.Bytes(), &decoded); err != nil {
		t.Fatalf("produced invalid JSON: %v, doc=%s", err, b.String())
	}
	if decoded.SessionID != "abc123" {
		t.Errorf("sessionid = %q", decoded.SessionID)
	}
	if len(decoded.Symbols) != 2 || decoded.Symbols[0] != "AAPL" || decoded.Symbols[1] != "MSFT" {
		t.Errorf("symbols = %v", decoded.Symbols)
	}
}

func TestBuilderBeginArrayField(t *testing.T) {
	b := NewBuilder()
	b.BeginObject()
	b.WriteStringField("action", "subscribe")
	b.BeginArrayField("symbols")
	b.WriteStringElement("AAPL")
	b.WriteStringElement("MSFT")
	b.EndArray()
	b.EndObject()

	var decoded struct {
		Action  string   `json:"action"`
		Symbols []string `json:"symbols"`
	}
	if err := json.Unmarshal(b.Bytes(), &decoded); err != nil {
		t.Fatalf("produced invalid JSON: %v, doc=%s", err, b.String())
	}
	if decoded.Action != "subscribe" {
		t.Errorf("action = %q", decoded.Action)
	}
	if len(decoded.Symbols) != 2 || decoded.Symbols[0] != "AAPL" || decoded.Symbols[1] != "MSFT" {
		t.Errorf("symbols = %v", decoded.Symbols)
	}
}

func TestBuilderStringEscaping(t *testing.T) {
	cases := []string{
		"quote\"inside",
		"back\\slash",
		"tab\ttab",
		"new\nline",
		"control\x01char",
	}
	for _, s := range cases {
		b := NewBuilder()
		b.BeginObject().WriteStringField("f", s).EndObject()
		var decoded map[string]string
		if err := json.Unmarshal(b.Bytes(), &decoded); err != nil {
			t.Fatalf("escape failed for %q: %v, doc=%s", s, err, b.String())
		}
		if decoded["f"] != s {
			t.Errorf("round trip failed for %q: got %q", s, decoded["f"])
		}
	}
}

func TestBuilderFixedFloatField(t *testing.T) {
	b := NewBuilder()
	b.BeginObject().WriteFixedFloatField("price", 150.3, 2).EndObject()
	if b.String() != `{"price":150.30}` {
		t.Errorf("got %s", b.String())
	}
}

func TestBuilderNullField(t *testing.T) {
	b := NewBuilder()
	b.BeginObject().WriteNullField("stop").EndObject()
	if b.String() != `{"stop":null}` {
		t.Errorf("got %s", b.String())
	}
}

func TestBuilderRawField(t *testing.T) {
	nested := NewBuilder()
	nested.BeginObject().WriteStringField("inner", "v").EndObject()

	outer := NewBuilder()
	outer.BeginObject().WriteRawField("nested", nested.Bytes()).EndObject()

	var decoded struct {
		Nested struct {
			Inner string `json:"inner"`
		} `json:"nested"`
	}
	if err := json.Unmarshal(outer.Bytes(), &decoded); err != nil {
		t.Fatalf("produced invalid JSON: %v, doc=%s", err, outer.String())
	}
	if decoded.Nested.Inner != "v" {
		t.Errorf("got %q", decoded.Nested.Inner)
	}
}

func TestBuilderReset(t *testing.T) {
	b := NewBuilder()
	b.BeginObject().WriteStringField("a", "b").EndObject()
	b.Reset()
	b.BeginObject().WriteStringField("c", "d").EndObject()
	if b.String() != `{"c":"d"}` {
		t.Errorf("got %s", b.String())
	}
}

func TestQuoteString(t *testing.T) {
	if got := QuoteString(`a"b`); got != `"a\"b"` {
		t.Errorf("got %q", got)
	}
}
