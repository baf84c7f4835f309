package domain

import "fmt"

// FormatSalary renders a salary range for display. A nil record or one
// with both bounds absent renders as the empty string. The от/до
// prefixes follow the hh.ru convention for open-ended ranges.
func FormatSalary(s *Salary) string {
	if s == nil {
		return ""
	}

	tax := "net"
	if s.Gross {
		tax = "gross"
	}

	switch {
	case s.From == nil && s.To == nil:
		return ""
	case s.From == nil:
		return fmt.Sprintf("до %d %s (%s)", *s.To, s.Currency, tax)
	case s.To == nil:
		return fmt.Sprintf("от %d %s (%s)", *s.From, s.Currency, tax)
	default:
		return fmt.Sprintf("%d–%d %s (%s)", *s.From, *s.To, s.Currency, tax)
	}
}
