package models

import (
	"testing"
	"time"
)

func TestPaymentLinkResolveStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name      string
		status    string
		expiresAt *time.Time
		want      string
	}{
		{"pending past expiry moves to expired", PaymentStatusPending, &past, PaymentStatusExpired},
		{"pending future expiry stays pending", PaymentStatusPending, &future, PaymentStatusPending},
		{"pending without expiry never expires", PaymentStatusPending, nil, PaymentStatusPending},
		{"completed untouched even past expiry", PaymentStatusCompleted, &past, PaymentStatusCompleted},
		{"expired stays expired", PaymentStatusExpired, &past, PaymentStatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := PaymentLink{Status: tt.status, ExpiresAt: tt.expiresAt}
			if got := link.ResolveStatus(now); got != tt.want {
				t.Errorf("ResolveStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPaymentLinkResolveStatusIsStable(t *testing.T) {
	// A second load after the lazy transition must not change anything else.
	now := time.Now()
	past := now.Add(-time.Minute)
	link := PaymentLink{Status: PaymentStatusPending, ExpiresAt: &past}

	link.Status = link.ResolveStatus(now)
	if link.Status != PaymentStatusExpired {
		t.Fatalf("first resolve = %q, want expired", link.Status)
	}
	if got := link.ResolveStatus(now.Add(time.Hour)); got != PaymentStatusExpired {
		t.Errorf("second resolve = %q, want expired", got)
	}
}

func TestBankMethodMaskedAccountNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12345678", "****5678"},
		{"1234", "1234"},
		{"12", "12"},
		{"", ""},
	}

	for _, tt := range tests {
		m := BankPaymentMethod{AccountNumber: tt.in}
		if got := m.MaskedAccountNumber(); got != tt.want {
			t.Errorf("MaskedAccountNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPaymentMethodNetworkList(t *testing.T) {
	m := PaymentMethod{Networks: " Bitcoin , Lightning ,, "}
	got := m.NetworkList()
	want := []string{"Bitcoin", "Lightning"}
	if len(got) != len(want) {
		t.Fatalf("NetworkList = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NetworkList[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	empty := PaymentMethod{Networks: "   "}
	if got := empty.NetworkList(); got != nil {
		t.Errorf("NetworkList for blank input = %v, want nil", got)
	}
}
