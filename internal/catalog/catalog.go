package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TabID identifies one of the checkout modes shown in the tab bar.
type TabID string

const (
	TabCryptoToCash TabID = "crypto-cash"
	TabCashToCrypto TabID = "cash-crypto"
	TabLoan         TabID = "loan"
)

// Tab is a single entry of the tab bar.
type Tab struct {
	ID    TabID  `json:"id"`
	Label string `json:"label"`
}

// Token is a cryptocurrency asset with a fixed fiat conversion rate.
// Rate is expressed in units of the receive currency per 1 unit of token.
type Token struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Symbol string          `json:"symbol"`
	Icon   string          `json:"icon"`
	Rate   decimal.Decimal `json:"rate"`
}

// Option is a selectable reference entry: wallets, banks and payment methods
// all share this shape.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Currency describes the fiat currency shown on the receive side.
type Currency struct {
	Code string `json:"code"`
	Icon string `json:"icon"`
}

// Catalog bundles all reference data used by the checkout.
type Catalog struct {
	Tabs           []Tab    `json:"tabs"`
	Tokens         []Token  `json:"tokens"`
	Wallets        []Option `json:"wallets"`
	Banks          []Option `json:"banks"`
	PaymentMethods []Option `json:"paymentMethods"`
	Currency       Currency `json:"currency"`
}

// Token looks up a token by id.
func (c *Catalog) Token(id string) (Token, bool) {
	for _, t := range c.Tokens {
		if t.ID == id {
			return t, true
		}
	}
	return Token{}, false
}

// Wallet looks up a wallet by id.
func (c *Catalog) Wallet(id string) (Option, bool) {
	return findOption(c.Wallets, id)
}

// Bank looks up a recipient bank by id.
func (c *Catalog) Bank(id string) (Option, bool) {
	return findOption(c.Banks, id)
}

// PaymentMethod looks up a payment method by id.
func (c *Catalog) PaymentMethod(id string) (Option, bool) {
	return findOption(c.PaymentMethods, id)
}

// HasTab reports whether id names a tab in the catalog.
func (c *Catalog) HasTab(id TabID) bool {
	for _, t := range c.Tabs {
		if t.ID == id {
			return true
		}
	}
	return false
}

// TokenOptions adapts the token list to the Option shape used by selects.
func (c *Catalog) TokenOptions() []Option {
	opts := make([]Option, 0, len(c.Tokens))
	for _, t := range c.Tokens {
		opts = append(opts, Option{ID: t.ID, Name: t.Name, Icon: t.Icon})
	}
	return opts
}

// ShortName returns the first word of a display name, e.g. "USDT" for
// "USDT - CELO".
func ShortName(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return name
}

func findOption(opts []Option, id string) (Option, bool) {
	for _, o := range opts {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
