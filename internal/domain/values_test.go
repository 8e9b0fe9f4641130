package domain

import (
	"errors"
	"testing"
)

func TestNewPrice(t *testing.T) {
	tests := []struct {
		in    int64
		valid bool
	}{
		{100, true},
		{1000, true},
		{999999, true},
		{99, false},
		{1000000, false},
		{-500, false},
		{0, false},
	}

	for _, tt := range tests {
		_, err := NewPrice(tt.in)
		if tt.valid && err != nil {
			t.Fatalf("NewPrice(%d): unexpected error: %v", tt.in, err)
		}
		if !tt.valid {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("NewPrice(%d): expected ValidationError, got %v", tt.in, err)
			}
		}
	}
}

func TestParsePrice(t *testing.T) {
	if p, err := ParsePrice(" 1250 "); err != nil || p.Value() != 1250 {
		t.Fatalf("expected 1250, got %v (err %v)", p, err)
	}
	for _, in := range []string{"", "abc", "0999", "12.5", "-500"} {
		if _, err := ParsePrice(in); err == nil {
			t.Fatalf("ParsePrice(%q): expected error", in)
		}
	}
}

func TestPriceComparison(t *testing.T) {
	low, _ := NewPrice(500)
	high, _ := NewPrice(900)
	if !high.IsMoreThan(low) || !low.IsLessThan(high) || low.IsMoreThan(low) {
		t.Fatalf("unexpected price ordering")
	}
}

func TestNewDescription(t *testing.T) {
	for _, in := range []string{"", "   ", "N/A", "-"} {
		d, err := NewDescription(in)
		if err != nil {
			t.Fatalf("NewDescription(%q): unexpected error: %v", in, err)
		}
		if !d.IsZero() || d.String() != AbsentMarker {
			t.Fatalf("NewDescription(%q): expected absent, got %q", in, d.String())
		}
	}

	d, err := NewDescription("Corner unit with sea view")
	if err != nil || d.String() != "Corner unit with sea view" {
		t.Fatalf("unexpected description %q (err %v)", d.String(), err)
	}

	long := "0123456789012345678901234567890123456789012345678901"
	if _, err := NewDescription(long); err == nil {
		t.Fatalf("expected error for 51-character description")
	}

	a, _ := NewDescription("Near MRT")
	b, _ := NewDescription("Near MRT")
	if a != b {
		t.Fatalf("descriptions with equal text should be equal")
	}
}

func TestParseSize(t *testing.T) {
	s, err := ParseSize("1200")
	if err != nil || s.Value() != 1200 {
		t.Fatalf("expected 1200, got %v (err %v)", s, err)
	}
	if s, err := ParseSize("N/A"); err != nil || !s.IsZero() {
		t.Fatalf("expected absent size, got %v (err %v)", s, err)
	}
	for _, in := range []string{"5", "1000000", "abc", "-20"} {
		if _, err := ParseSize(in); err == nil {
			t.Fatalf("ParseSize(%q): expected error", in)
		}
	}
}

func TestNewPhone(t *testing.T) {
	for _, in := range []string{"911", "98765432", "123456789012345"} {
		if _, err := NewPhone(in); err != nil {
			t.Fatalf("NewPhone(%q): unexpected error: %v", in, err)
		}
	}
	for _, in := range []string{"", "91", "9876 5432", "phone", "1234567890123456"} {
		if _, err := NewPhone(in); err == nil {
			t.Fatalf("NewPhone(%q): expected error", in)
		}
	}
}

func TestNewEmail(t *testing.T) {
	for _, in := range []string{"alice@example.com", "a.b+c@mail.example.org", "x@ab"} {
		if _, err := NewEmail(in); err != nil {
			t.Fatalf("NewEmail(%q): unexpected error: %v", in, err)
		}
	}
	for _, in := range []string{"", "alice", "@example.com", "alice@", ".alice@example.com", "alice@example.c"} {
		if _, err := NewEmail(in); err == nil {
			t.Fatalf("NewEmail(%q): expected error", in)
		}
	}
}

func TestNewAddress(t *testing.T) {
	if _, err := NewAddress("311, Clementi Ave 2, #02-25"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, in := range []string{"", "   ", " leading space"} {
		if _, err := NewAddress(in); err == nil {
			t.Fatalf("NewAddress(%q): expected error", in)
		}
	}
}

func TestNames(t *testing.T) {
	if _, err := NewClientName("Alice Pauline"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewClientName("Bob "); err != nil {
		t.Fatalf("trailing space should be accepted: %v", err)
	}
	for _, in := range []string{"", "  ", "*Alice", "Al#ce", "A123456789012345678901234567890123456789012345678901"} {
		if _, err := NewClientName(in); err == nil {
			t.Fatalf("NewClientName(%q): expected error", in)
		}
	}

	if _, err := NewPropertyName("Sunny Villa #12-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewPropertyName("#12 Villa"); err == nil {
		t.Fatalf("expected error for name starting with a symbol")
	}

	a, _ := NewPropertyName("Sunny Villa")
	b, _ := NewPropertyName("  sunny VILLA ")
	if a.Key() != b.Key() {
		t.Fatalf("expected normalized keys to match: %q vs %q", a.Key(), b.Key())
	}
	if a == b {
		t.Fatalf("names with different text should not be equal")
	}
}

func TestParseEnums(t *testing.T) {
	if s, err := ParseDealStatus("pending"); err != nil || s != DealStatusPending {
		t.Fatalf("expected PENDING, got %q (err %v)", s, err)
	}
	if _, err := ParseDealStatus("sold"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	if h, err := ParseHeading("Viewing"); err != nil || h != HeadingViewing {
		t.Fatalf("expected VIEWING, got %q (err %v)", h, err)
	}
	if _, err := ParseHeading("party"); err == nil {
		t.Fatalf("expected error for unknown heading")
	}
}

func TestParseDateTime(t *testing.T) {
	d, err := ParseDateTime("2025-03-14 09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2025-03-14 09:30" {
		t.Fatalf("unexpected format %q", d.String())
	}
	again, _ := ParseDateTime("2025-03-14 09:30")
	if d != again {
		t.Fatalf("equal date-times should compare equal")
	}
	for _, in := range []string{"", "2025-02-30 10:00", "14/03/2025 09:30", "2025-03-14"} {
		if _, err := ParseDateTime(in); err == nil {
			t.Fatalf("ParseDateTime(%q): expected error", in)
		}
	}
}
