package utils

import (
	"regexp"
	"testing"
)

func TestNewPaymentLinkIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^pay-[0-9a-f]{32}$`)

	for i := 0; i < 100; i++ {
		id, err := NewPaymentLinkID()
		if err != nil {
			t.Fatalf("NewPaymentLinkID returned error: %v", err)
		}
		if !pattern.MatchString(id) {
			t.Fatalf("id %q does not match pay-[0-9a-f]{32}", id)
		}
	}
}

func TestNewPaymentLinkIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := NewPaymentLinkID()
		if err != nil {
			t.Fatalf("NewPaymentLinkID returned error: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
