package common

import (
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DisplayCurrency is the ISO code of every amount the dashboard shows.
const DisplayCurrency = money.INR

// currencySymbol returns the grapheme for code, e.g. "₹" for INR.
func currencySymbol(code string) string {
	// money.New never returns a nil currency, unknown codes fall back to the code itself
	cur := money.New(0, code).Currency()
	if cur.Grapheme == "" {
		return code
	}
	return cur.Grapheme
}

// groupIndian inserts separators the en-IN way: the last three digits form
// one group and the rest are grouped in pairs (12,34,567).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}

// FormatINR formats v as whole rupees with en-IN grouping: 210075 -> "₹2,10,075",
// -6300 -> "-₹6,300". Halves round away from zero.
func FormatINR(v float64) string {
	d := decimal.NewFromFloat(v).Round(0)
	s := currencySymbol(DisplayCurrency) + groupIndian(d.Abs().String())
	if d.IsNegative() {
		return "-" + s
	}
	return s
}

// compactUnits are the en-IN compact suffixes, largest first.
var compactUnits = []struct {
	size   decimal.Decimal
	suffix string
}{
	{decimal.New(1, 7), "Cr"},
	{decimal.New(1, 5), "L"},
	{decimal.New(1, 3), "K"},
}

// FormatINRCompact formats v in crore/lakh/thousand units: 650000 -> "₹6.5L",
// 12000000 -> "₹1.2Cr". Scaled values under 10 keep one decimal, larger ones
// are whole numbers.
func FormatINRCompact(v float64) string {
	d := decimal.NewFromFloat(v)
	abs := d.Abs()
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	sym := currencySymbol(DisplayCurrency)

	for _, u := range compactUnits {
		if abs.GreaterThanOrEqual(u.size) {
			scaled := abs.Div(u.size)
			if scaled.LessThan(decimal.NewFromInt(10)) {
				scaled = scaled.Round(1)
			} else {
				scaled = scaled.Round(0)
			}
			return sign + sym + scaled.String() + u.suffix
		}
	}
	return sign + sym + abs.Round(0).String()
}

// FormatPercent formats v with a fixed number of fraction digits: 9.4, 2 -> "9.40%".
func FormatPercent(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64) + "%"
}

// FormatSignedPercent is FormatPercent with a leading "+" for non-negative values.
func FormatSignedPercent(v float64, digits int) string {
	if v >= 0 {
		return "+" + FormatPercent(v, digits)
	}
	return FormatPercent(v, digits)
}
