package domain

import "strings"

// Currency is a payment or display currency supported by the
// marketplace.
type Currency string

// Supported currencies. Crypto codes map to price-source ids; fiat
// codes are display-only.
const (
	CurrencyBTC Currency = "BTC"
	CurrencyETH Currency = "ETH"
	CurrencyLTC Currency = "LTC"
	CurrencyXMR Currency = "XMR"
	CurrencyWOW Currency = "WOW"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
)

// currencyInfo records display metadata per currency.
type currencyInfo struct {
	sign     string
	decimals int
}

var currencyTable = map[Currency]currencyInfo{
	CurrencyBTC: {"₿", 8},
	CurrencyETH: {"Ξ", 18},
	CurrencyLTC: {"Ł", 8},
	CurrencyXMR: {"ɱ", 12},
	CurrencyWOW: {"WOW", 11},
	CurrencyUSD: {"$", 2},
	CurrencyEUR: {"€", 2},
	CurrencyGBP: {"£", 2},
	CurrencyJPY: {"¥", 0},
	CurrencyCAD: {"$", 2},
	CurrencyAUD: {"$", 2},
}

// ParseCurrency normalises a code into a supported Currency.
func ParseCurrency(code string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	_, ok := currencyTable[c]
	return c, ok
}

// CurrencyList returns all supported currency codes.
func CurrencyList() []string {
	out := make([]string, 0, len(currencyTable))
	for c := range currencyTable {
		out = append(out, string(c))
	}
	return out
}

// Sign returns the display sign for the currency, or the code itself
// when no sign is registered.
func (c Currency) Sign() string {
	if info, ok := currencyTable[c]; ok {
		return info.sign
	}
	return string(c)
}

// Decimals returns the number of decimal places used when formatting
// amounts. Unknown currencies default to 2.
func (c Currency) Decimals() int {
	if info, ok := currencyTable[c]; ok {
		return info.decimals
	}
	return 2
}

// Supported reports whether the currency is in the table.
func (c Currency) Supported() bool {
	_, ok := currencyTable[c]
	return ok
}
