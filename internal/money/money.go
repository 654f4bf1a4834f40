// Package money formats integer minor-unit amounts. Amounts stay integers all
// the way to the rendered string; nothing here converts through floats.
package money

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Currency struct {
	Code     string
	Symbol   string
	Exponent int
}

var printer = message.NewPrinter(language.English)

var currencies = map[string]Currency{
	"TWD": {Code: "TWD", Symbol: "NT$", Exponent: 0},
	"JPY": {Code: "JPY", Symbol: "¥", Exponent: 0},
	"USD": {Code: "USD", Symbol: "$", Exponent: 2},
	"EUR": {Code: "EUR", Symbol: "€", Exponent: 2},
}

// ByCode resolves a currency for formatting. Codes outside the symbol table
// fall back to ISO 4217 cash-rounding metadata with the code itself as prefix.
func ByCode(code string) Currency {
	if c, ok := currencies[code]; ok {
		return c
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Currency{Code: code, Symbol: code + " ", Exponent: 0}
	}
	scale, _ := currency.Cash.Rounding(unit)
	return Currency{Code: unit.String(), Symbol: unit.String() + " ", Exponent: scale}
}

// Format renders a minor-unit amount with locale digit grouping, e.g.
// TWD 3840 -> "NT$3,840" and USD 123456 -> "$1,234.56".
func (c Currency) Format(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	if c.Exponent <= 0 {
		return sign + c.Symbol + printer.Sprintf("%d", minor)
	}

	pow := int64(1)
	for i := 0; i < c.Exponent; i++ {
		pow *= 10
	}
	return sign + c.Symbol + printer.Sprintf("%d", minor/pow) + "." + fmt.Sprintf("%0*d", c.Exponent, minor%pow)
}
