package display

import (
	"testing"

	"github.com/andy/reconnect/internal/domain"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{100, "S$100k"},
		{1250, "S$1,250k"},
		{999999, "S$999,999k"},
	}
	for _, tt := range tests {
		p, err := domain.NewPrice(tt.in)
		if err != nil {
			t.Fatalf("NewPrice(%d): %v", tt.in, err)
		}
		if got := Price(p); got != tt.want {
			t.Errorf("Price(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSize(t *testing.T) {
	if got := Size(domain.Size{}); got != "-" {
		t.Errorf("absent size = %q", got)
	}
	s, _ := domain.NewSize(1400)
	if got := Size(s); got != "1,400 sq ft" {
		t.Errorf("Size = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"Orchid Residences", 10, "Orchid ..."},
		{"Zürich Höhe", 8, "Züric..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
