package handlers

import (
	"testing"
	"time"
)

func TestComputeExpiryRelativeOptions(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		option string
		days   int
	}{
		{"7", 7},
		{"14", 14},
		{"30", 30},
	}

	for _, tt := range tests {
		got, err := ComputeExpiry(tt.option, "", now)
		if err != nil {
			t.Fatalf("ComputeExpiry(%q) returned error: %v", tt.option, err)
		}
		if got == nil {
			t.Fatalf("ComputeExpiry(%q) returned nil", tt.option)
		}
		want := now.AddDate(0, 0, tt.days)
		if !got.Equal(want) {
			t.Errorf("ComputeExpiry(%q) = %v, want %v", tt.option, got, want)
		}
	}
}

func TestComputeExpiryNever(t *testing.T) {
	got, err := ComputeExpiry("never", "", time.Now())
	if err != nil {
		t.Fatalf("ComputeExpiry(never) returned error: %v", err)
	}
	if got != nil {
		t.Errorf("ComputeExpiry(never) = %v, want nil", got)
	}
}

func TestComputeExpiryFixed(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	got, err := ComputeExpiry("fixed", "2025-07-01T09:30", now)
	if err != nil {
		t.Fatalf("ComputeExpiry(fixed) returned error: %v", err)
	}
	want := time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ComputeExpiry(fixed) = %v, want %v", got, want)
	}

	if _, err := ComputeExpiry("fixed", "2025-01-01T00:00", now); err == nil {
		t.Error("expected error for a fixed expiry in the past")
	}
	if _, err := ComputeExpiry("fixed", "not-a-date", now); err == nil {
		t.Error("expected error for a malformed fixed expiry")
	}
}

func TestComputeExpiryUnknownOption(t *testing.T) {
	if _, err := ComputeExpiry("90", "", time.Now()); err == nil {
		t.Error("expected error for an unknown expiry option")
	}
}
