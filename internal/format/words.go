package format

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	money "github.com/rezonia/invoice-renderer/internal/decimal"
)

var (
	smallNumbers = []string{
		"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
		"Seventeen", "Eighteen", "Nineteen",
	}
	tensWords = []string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
	}
	scaleWords = []string{
		"", "Thousand", "Million", "Billion", "Trillion", "Quadrillion", "Quintillion",
		"Sextillion", "Septillion", "Octillion", "Nonillion", "Decillion", "Undecillion",
		"Duodecillion", "Tredecillion", "Quattuordecillion", "Quindecillion", "Sexdecillion",
		"Septendecillion", "Octodecillion", "Novemdecillion", "Vigintillion",
	}

	thousand = big.NewInt(1000)
)

// MaxAmountInWords is the smallest amount whose major units cannot be
// spelled with the known scale words (10^66).
var MaxAmountInWords = decimal.New(1, int32(3*len(scaleWords)))

// CanSpell reports whether the major units of value can be spelled
func CanSpell(value decimal.Decimal) bool {
	return value.Abs().Truncate(0).LessThan(MaxAmountInWords)
}

// AmountInWords spells out value in English major units followed by the
// minor units as a fraction, e.g. "One Thousand Two Hundred and Fifty and
// 00/100". With precision 0 only the major units are spelled. Amounts
// beyond CanSpell fall back to their digits.
func AmountInWords(value decimal.Decimal, precision int) string {
	if precision < 0 {
		precision = 0
	}
	major, minor := money.Split(value, precision)
	words := SpellBigInt(major)
	if precision == 0 {
		return words
	}
	denominator := decimal.New(1, int32(precision)).IntPart()
	return fmt.Sprintf("%s and %0*d/%d", words, precision, minor, denominator)
}

// SpellNumber spells a non-negative integer in English words
func SpellNumber(n int64) string {
	return SpellBigInt(big.NewInt(n))
}

// SpellBigInt spells the absolute value of n in English words. Values of
// 10^66 and above are returned as digits.
func SpellBigInt(n *big.Int) string {
	rest := new(big.Int).Abs(n)
	if rest.Sign() == 0 {
		return smallNumbers[0]
	}

	digits := rest.String()
	group := new(big.Int)
	var groups []string
	for scale := 0; rest.Sign() > 0; scale++ {
		if scale >= len(scaleWords) {
			return digits
		}
		rest.QuoRem(rest, thousand, group)
		if group.Sign() == 0 {
			continue
		}
		words := spellGroup(int(group.Int64()))
		if scaleWords[scale] != "" {
			words += " " + scaleWords[scale]
		}
		groups = append([]string{words}, groups...)
	}
	return strings.Join(groups, " ")
}

// spellGroup spells 1..999
func spellGroup(n int) string {
	hundreds, rest := n/100, n%100
	var parts []string
	if hundreds > 0 {
		parts = append(parts, smallNumbers[hundreds], "Hundred")
	}
	if rest > 0 {
		if hundreds > 0 {
			parts = append(parts, "and")
		}
		parts = append(parts, spellTens(rest))
	}
	return strings.Join(parts, " ")
}

func spellTens(n int) string {
	if n < 20 {
		return smallNumbers[n]
	}
	if n%10 == 0 {
		return tensWords[n/10]
	}
	return tensWords[n/10] + "-" + smallNumbers[n%10]
}
