// Package money provides decimal helpers and display formatting for amounts.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Cent is the smallest amount that can be transferred.
var Cent = decimal.New(1, -2)

var hundred = decimal.NewFromInt(100)

// RoundCents rounds d half away from zero to two decimals.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// BelowCent reports whether |d| is smaller than one cent.
func BelowCent(d decimal.Decimal) bool {
	return d.Abs().LessThan(Cent)
}

// Percent returns part as a percentage of total rounded to one decimal.
// A zero total yields zero.
func Percent(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred).Round(1)
}

// Format renders d the way amounts are shown to members: "$25.000,00".
func Format(d decimal.Decimal) string {
	p := message.NewPrinter(language.Spanish)
	d = RoundCents(d)
	if d.IsNegative() {
		return p.Sprintf("-$%.2f", d.Neg().InexactFloat64())
	}
	return p.Sprintf("$%.2f", d.InexactFloat64())
}

// Parse converts a decimal string into an amount. Both "12.34" and "12,34"
// are accepted. When a comma is present it is the decimal separator and dots
// are thousands grouping, so the output of Format ("$1.234,50") parses back.
// Without a comma a dot is always the decimal point.
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(normalize(s))
}

func normalize(s string) string {
	s = strings.NewReplacer(" ", "", "$", "").Replace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return s
}
