package domain

import "github.com/shopspring/decimal"

// ParseAmount parses a monetary string into an exact decimal. Malformed input
// maps to ErrInvalidAmount so callers can surface it as a validation problem.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}

// SignedWhole renders a headline money figure: rounded to whole units with an
// explicit sign, e.g. "+450" or "-450". Zero renders as "+0". Ledger values
// keep two-decimal precision; this is display only.
func SignedWhole(d decimal.Decimal) string {
	r := d.Round(0)
	if r.Sign() < 0 {
		return r.StringFixed(0)
	}
	return "+" + r.StringFixed(0)
}
