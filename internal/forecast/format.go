package forecast

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
)

// FormatCompact renders an amount the short way it is shown in advisories,
// e.g. "1.5tr", "2 tỷ" or "350k". Amounts below a thousand use Vietnamese
// digit grouping.
func FormatCompact(n decimal.Decimal) string {
	switch {
	case n.GreaterThanOrEqual(billion):
		return strings.TrimSuffix(n.Div(billion).StringFixed(1), ".0") + " tỷ"
	case n.GreaterThanOrEqual(million):
		return strings.TrimSuffix(n.Div(million).StringFixed(1), ".0") + "tr"
	case n.GreaterThanOrEqual(thousand):
		return n.Div(thousand).StringFixed(0) + "k"
	case n.IsZero():
		return "0"
	}

	return FormatGrouped(n)
}

// FormatGrouped renders an amount with Vietnamese digit grouping, e.g.
// "-1.500.000" or "12,5".
func FormatGrouped(n decimal.Decimal) string {
	p := message.NewPrinter(language.Vietnamese)
	return p.Sprintf("%v", number.Decimal(n.InexactFloat64(), number.MaxFractionDigits(3)))
}
