package utils

import "testing"

func TestIsValidSwiftBic(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"HBUKGB4B", true},
		{"HBUKGB4BXXX", true},
		{"DEUTDEFF", true},
		{"HBUKGB4", false},
		{"HBUKGB4BXX", false},
		{"hbukgb4b", false},
		{"12UKGB4B", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidSwiftBic(tt.code); got != tt.want {
			t.Errorf("IsValidSwiftBic(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestIsValidIban(t *testing.T) {
	tests := []struct {
		iban string
		want bool
	}{
		{"GB29NWBK60161331926819", true},
		{"DE89370400440532013000", true},
		{"GB29", false},
		{"1229NWBK60161331926819", false},
		{"gb29nwbk60161331926819", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidIban(tt.iban); got != tt.want {
			t.Errorf("IsValidIban(%q) = %v, want %v", tt.iban, got, tt.want)
		}
	}
}

func TestRoutingNumberPatterns(t *testing.T) {
	// The create form accepts 6-11 digits; the edit form requires exactly 9.
	tests := []struct {
		n          string
		wantLoose  bool
		wantStrict bool
	}{
		{"123456", true, false},
		{"123456789", true, true},
		{"12345678901", true, false},
		{"12345", false, false},
		{"123456789012", false, false},
		{"12345678a", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		if got := IsValidRoutingNumber(tt.n); got != tt.wantLoose {
			t.Errorf("IsValidRoutingNumber(%q) = %v, want %v", tt.n, got, tt.wantLoose)
		}
		if got := IsStrictRoutingNumber(tt.n); got != tt.wantStrict {
			t.Errorf("IsStrictRoutingNumber(%q) = %v, want %v", tt.n, got, tt.wantStrict)
		}
	}
}

func TestIsValidCryptoTicker(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"BTC", true},
		{"USDT", true},
		{"BNB2", true},
		{"btc", false},
		{"BTC-USD", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidCryptoTicker(tt.s); got != tt.want {
			t.Errorf("IsValidCryptoTicker(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
