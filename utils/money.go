package utils

import (
	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"MXN": "$",
}

// FormatAmount renders an amount with its currency symbol and two decimal
// places, e.g. FormatAmount(50, "USD") == "$50.00". Currencies without a known
// symbol are prefixed with their code instead.
func FormatAmount(amount float64, currency string) string {
	fixed := decimal.NewFromFloat(amount).StringFixed(2)
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol + fixed
	}
	return currency + " " + fixed
}
