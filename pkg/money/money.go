// Package money formats rupee amounts for display.
package money

import (
	"strconv"
	"strings"
)

// GroupINR inserts separators using the Indian numbering system,
// e.g. 150000 -> "1,50,000" and 12345678 -> "1,23,45,678".
func GroupINR(n int64) string {
	// Grouping runs on the formatted digits; negating n would overflow
	// for math.MinInt64.
	s := strconv.FormatInt(n, 10)
	if s[0] == '-' {
		return "-" + groupDigits(s[1:])
	}
	return groupDigits(s)
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	// Last three digits form one group, the rest pair up from the right.
	head := s[:len(s)-3]
	var b strings.Builder
	if rem := len(head) % 2; rem > 0 {
		b.WriteString(head[:rem])
		head = head[rem:]
	}
	for i := 0; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(s[len(s)-3:])
	return b.String()
}

// FormatINR renders a rupee amount with the currency mark, e.g. "₹1,50,000".
func FormatINR(n int64) string {
	return "₹" + GroupINR(n)
}
