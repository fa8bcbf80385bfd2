package views

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"jobdash/internal/domain"
)

// Salary formats a million-VND figure; a missing value renders as a dash
func Salary(v *float64) string {
	if v == nil {
		return "-"
	}
	return SalaryValue(*v)
}

func SalaryValue(v float64) string {
	return humanize.FtoaWithDigits(v, 1) + " M"
}

// Count formats an integer with thousands separators
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Ago renders a backend timestamp relative to now, or the raw text when unparseable
func Ago(raw string) string {
	t := domain.ParseTimestamp(raw)
	if t.IsZero() {
		if raw == "" {
			return "-"
		}
		return raw
	}
	return humanize.RelTime(t, time.Now(), "ago", "from now")
}

// Truncate shortens s to width runes, marking the cut with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(strings.TrimSpace(s))
	if len(r) <= width {
		return string(r)
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
