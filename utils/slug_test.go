package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple title", "How To Buy Bitcoin", "how-to-buy-bitcoin"},
		{"punctuation collapses", "What's an IBAN?!", "what-s-an-iban"},
		{"repeated separators", "a  --  b", "a-b"},
		{"leading and trailing junk", "  Hello World  ", "hello-world"},
		{"digits kept", "Top 5 Wallets in 2025", "top-5-wallets-in-2025"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"unicode stripped", "Cripto für Anfänger", "cripto-f-r-anf-nger"},
		{"empty", "", ""},
		{"only junk", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"How To Buy Bitcoin", "What's an IBAN?!", "a  --  b", "TOP 5", ""}
	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
