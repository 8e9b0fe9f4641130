// Package display formats domain values for terminal output.
package display

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/andy/reconnect/internal/domain"
)

var printer = message.NewPrinter(language.English)

// Price renders a price in S$ thousands with digit grouping, e.g. "S$1,250k".
func Price(p domain.Price) string {
	return printer.Sprintf("S$%dk", p.Value())
}

// Size renders a floor area, or the absent marker.
func Size(s domain.Size) string {
	if s.IsZero() {
		return domain.AbsentMarker
	}
	return printer.Sprintf("%d sq ft", s.Value())
}

// Truncate shortens s to maxLen runes, ending in "..." when cut.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
