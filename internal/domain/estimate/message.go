package estimate

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/sunvolt/solarsite/pkg/money"
)

// FormatKw renders a system size without a trailing zero, "3 kW" or "2.5 kW".
func FormatKw(kw float64) string {
	return strconv.FormatFloat(kw, 'f', -1, 64) + " kW"
}

// BuildWhatsAppLink composes the wa.me deep link that opens a chat with the
// sales number, prefilled with the quoted size and cost. Pure string
// building; the result never feeds back into the quote.
func BuildWhatsAppLink(phone string, r Result) string {
	text := fmt.Sprintf(
		"Hi! I used your solar calculator and I'm interested in a %s system (estimated cost %s). Please share a detailed quote.",
		FormatKw(r.SystemSizeKw),
		money.FormatINR(int64(math.Round(r.EstimatedCost))),
	)
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(text)
}
