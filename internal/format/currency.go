package format

import "strings"

// currencyPrecision lists ISO 4217 codes whose minor unit is not two digits
var currencyPrecision = map[string]int{
	"bif": 0,
	"clp": 0,
	"djf": 0,
	"gnf": 0,
	"isk": 0,
	"jpy": 0,
	"kmf": 0,
	"krw": 0,
	"pyg": 0,
	"rwf": 0,
	"ugx": 0,
	"vnd": 0,
	"vuv": 0,
	"xaf": 0,
	"xof": 0,
	"xpf": 0,
	"bhd": 3,
	"iqd": 3,
	"jod": 3,
	"kwd": 3,
	"lyd": 3,
	"omr": 3,
	"tnd": 3,
}

// DefaultCurrencyPrecision applies to every code not listed above
const DefaultCurrencyPrecision = 2

// CurrencyPrecision returns the number of minor-unit digits for code
func CurrencyPrecision(code string) int {
	if p, ok := currencyPrecision[strings.ToLower(strings.TrimSpace(code))]; ok {
		return p
	}
	return DefaultCurrencyPrecision
}
