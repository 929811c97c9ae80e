package checkout

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Dallionking/cashout/internal/catalog"
)

// ZeroAmount is the receive amount shown for empty, invalid or non-positive
// pay amounts.
const ZeroAmount = "0.00"

var amountInputPattern = regexp.MustCompile(`^\d*\.?\d*$`)

// Quote is a single conversion of a pay amount into the receive currency.
type Quote struct {
	PayAmount string          `json:"payAmount"`
	TokenID   string          `json:"token"`
	Symbol    string          `json:"symbol"`
	Rate      decimal.Decimal `json:"rate"`
	Receive   string          `json:"receive"`
	Currency  string          `json:"currency"`
}

// NewQuote converts payAmount at token's rate.
func NewQuote(payAmount string, token catalog.Token, currency string) Quote {
	return Quote{
		PayAmount: payAmount,
		TokenID:   token.ID,
		Symbol:    token.Symbol,
		Rate:      token.Rate,
		Receive:   ReceiveAmount(payAmount, token),
		Currency:  currency,
	}
}

// ReceiveAmount returns payAmount * token.Rate rounded to two decimal places
// and grouped with thousands separators, e.g. "450,000.00". Empty,
// non-numeric and non-positive amounts yield ZeroAmount.
func ReceiveAmount(payAmount string, token catalog.Token) string {
	pay, ok := ParseAmount(payAmount)
	if !ok || !pay.IsPositive() {
		return ZeroAmount
	}
	return FormatAmount(pay.Mul(token.Rate))
}

// FormatAmount renders d with two decimal places (half away from zero) and
// comma digit grouping. The digits come straight from the decimal, so the
// result is exact at any magnitude.
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	return sign + groupThousands(whole) + "." + frac
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseAmount parses a user-entered decimal. A leading or trailing "." is
// tolerated because the pay field accepts partial input such as ".5" or "5.".
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")
	if s == "" {
		return decimal.Zero, false
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// IsAmountInput reports whether s may be typed into the pay field: digits
// with at most one decimal point, or the empty string.
func IsAmountInput(s string) bool {
	return amountInputPattern.MatchString(s)
}
