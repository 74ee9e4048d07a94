package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var oneHundred = decimal.NewFromInt(100)

type Fees struct {
	Processing decimal.Decimal
	System     decimal.Decimal
}

// FeeBreakdown is derived and never stored.
type FeeBreakdown struct {
	SubTotal      decimal.Decimal
	ProcessingFee decimal.Decimal
	SystemFee     decimal.Decimal
	TotalAmount   decimal.Decimal
}

// ComputeTotal adds the fees to the subtotal in decimal arithmetic, rounded to cents.
// A negative subtotal is treated as zero.
func ComputeTotal(subTotal decimal.Decimal, fees Fees) FeeBreakdown {
	if subTotal.IsNegative() {
		subTotal = decimal.Zero
	}

	b := FeeBreakdown{
		SubTotal:      subTotal.Round(moneyPlaces),
		ProcessingFee: fees.Processing.Round(moneyPlaces),
		SystemFee:     fees.System.Round(moneyPlaces),
	}

	b.TotalAmount = b.SubTotal.Add(b.ProcessingFee).Add(b.SystemFee)

	return b
}

// Payable reports whether the pay action is allowed: the subtotal must exceed threshold.
func Payable(subTotal, threshold decimal.Decimal) bool {
	return subTotal.GreaterThan(threshold)
}

// FeeSchedule holds the flat fees used for the optimistic pre-submission quote.
// The payment creation response is always authoritative.
type FeeSchedule struct {
	ProcessingFee decimal.Decimal
	SystemFee     decimal.Decimal
}

// Estimate prefers the entry's own fee hint over the flat processing fee.
func (s FeeSchedule) Estimate(subTotal decimal.Decimal, entry MethodCatalogEntry) Fees {
	fees := Fees{
		Processing: s.ProcessingFee,
		System:     s.SystemFee,
	}

	if !entry.FeeValue.Valid {
		return fees
	}

	switch entry.FeeType {
	case FeeTypeFixed:
		fees.Processing = entry.FeeValue.Decimal
	case FeeTypePercent:
		fees.Processing = subTotal.Mul(entry.FeeValue.Decimal).Div(oneHundred).Round(moneyPlaces)
	}

	return fees
}

// FormatAmount renders an amount with two decimals and comma thousands
// separators: 1234567.5 as "1,234,567.50", -1234.5 as "-1,234.50".
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(moneyPlaces)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder

	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteRune(r)
	}

	return sign + b.String() + "." + frac
}
