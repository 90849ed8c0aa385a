package identifier

import (
	"strings"
	"testing"
)

func TestNewCarriesPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{
			name:   "Order prefix",
			prefix: OrderPrefix,
		},
		{
			name:   "Payment prefix",
			prefix: PaymentPrefix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := New(tt.prefix)
			if !strings.HasPrefix(id, tt.prefix) {
				t.Errorf("New(%q) = %q, missing prefix", tt.prefix, id)
			}
			if len(id) != len(tt.prefix)+length {
				t.Errorf("New(%q) = %q, want %d chars after prefix", tt.prefix, id, length)
			}
		})
	}
}

func TestNewAlphanumericBody(t *testing.T) {
	id := New(PaymentPrefix)
	body := strings.TrimPrefix(id, PaymentPrefix)
	for _, r := range body {
		if !strings.ContainsRune(alphabet, r) {
			t.Fatalf("New() produced character %q outside alphabet", r)
		}
	}
}

func TestNewSequentialUniqueness(t *testing.T) {
	const n = 1000
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id := New(OrderPrefix)
		if seen[id] {
			t.Fatalf("duplicate id after %d generations: %s", i, id)
		}
		seen[id] = true
	}
}
