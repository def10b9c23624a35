package validate

import (
	"strings"
	"testing"
)

func TestValidateAccountID(t *testing.T) {
	good := []string{"ABC12345", "12345678", "A1B2C3D4E5F6G7H8"}
	for _, id := range good {
		if got, err := ValidateAccountID(id); err != nil || got != id {
			t.Errorf("ValidateAccountID(%q) = %q, %v; want the input back with no error", id, got, err)
		}
	}
	bad := []string{"", "short", "abc12345", "ABC123456789012345", "ABC-1234", "../../etc"}
	for _, id := range bad {
		if _, err := ValidateAccountID(id); err == nil {
			t.Errorf("ValidateAccountID(%q) accepted an invalid id", id)
		}
	}
}

func TestValidateOrderID(t *testing.T) {
	if _, err := ValidateOrderID("12345678"); err != nil {
		t.Errorf("ValidateOrderID rejected a valid id: %v", err)
	}
	bad := []string{"", "1234567", "123456789012345678901", "12a45678"}
	for _, id := range bad {
		if _, err := ValidateOrderID(id); err == nil {
			t.Errorf("ValidateOrderID(%q) accepted an invalid id", id)
		}
	}
}

func TestValidateSessionID(t *testing.T) {
	if _, err := ValidateSessionID("abcDEF123_-abcDEF123"); err != nil {
		t.Errorf("ValidateSessionID rejected a valid id: %v", err)
	}
	bad := []string{"", "tooshort", strings.Repeat("a", 65), "has space in it!"}
	for _, id := range bad {
		if _, err := ValidateSessionID(id); err == nil {
			t.Errorf("ValidateSessionID(%q) accepted an invalid id", id)
		}
	}
}

func TestValidateSymbol(t *testing.T) {
	good := []string{"AAPL", "BRK.B", "^VIX", "BF-B", "A"}
	for _, s := range good {
		if _, err := ValidateSymbol(s); err != nil {
			t.Errorf("ValidateSymbol(%q) rejected a valid symbol: %v", s, err)
		}
	}
	bad := []string{"", "aapl", "TOOLONGSYMBOL", "AA PL", "AAPL;DROP"}
	for _, s := range bad {
		if _, err := ValidateSymbol(s); err == nil {
			t.Errorf("ValidateSymbol(%q) accepted an invalid symbol", s)
		}
	}
}

func TestValidateOptionSymbol(t *testing.T) {
	if _, err := ValidateOptionSymbol("AAPL240119C00150000"); err != nil {
		t.Errorf("ValidateOptionSymbol rejected a valid OCC symbol: %v", err)
	}
	bad := []string{"", "AAPL", "AAPL240119X00150000", "aapl240119C00150000", "AAPL240119C0015000"}
	for _, s := range bad {
		if _, err := ValidateOptionSymbol(s); err == nil {
			t.Errorf("ValidateOptionSymbol(%q) accepted an invalid symbol", s)
		}
	}
}

func TestSanitizeSearchQuery(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"apple", "apple"},
		{`apple "computer"`, "apple computer"},
		{"a;b|c&d\\e'f", "abcdef"},
		{"  spaced   out \t query ", " spaced out query"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeSearchQuery(tc.in); got != tc.want {
			t.Errorf("SanitizeSearchQuery(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	long := strings.Repeat("x", 100)
	if got := SanitizeSearchQuery(long); len(got) != 64 {
		t.Errorf("SanitizeSearchQuery did not cap at 64 characters, got %d", len(got))
	}
}
