package store

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Balances display with Indian digit grouping, matching the dashboard.
var inPrinter = message.NewPrinter(language.MustParse("en-IN"))

func formatAmount(v float64) string {
	return inPrinter.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// FormatRBQ renders a token amount with two fraction digits.
func (s *Store) FormatRBQ(amount float64) string {
	return formatAmount(amount)
}

// FormatINR converts a token amount at the current rate and renders it
// as rupees.
func (s *Store) FormatINR(amount float64) string {
	s.mu.RLock()
	rate := s.rate
	s.mu.RUnlock()
	return "₹" + formatAmount(amount*rate)
}
