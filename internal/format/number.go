package format

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatNumberWithCommas renders value with digit grouping and exactly
// opts.Precision fractional digits, rounding half away from zero.
func FormatNumberWithCommas(value decimal.Decimal, opts Options) string {
	opts = opts.normalized()
	group, decimalSep := opts.Convention.separators()

	fixed := value.Abs().StringFixed(int32(opts.Precision))
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped string
	if opts.Convention == ConventionIndia {
		grouped = groupIndian(intPart, group)
	} else {
		grouped = groupThousands(intPart, group)
	}

	var b strings.Builder
	if value.IsNegative() && !isAllZero(intPart+fracPart) {
		b.WriteByte('-')
	}
	b.WriteString(grouped)
	if fracPart != "" {
		b.WriteString(decimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatNullDecimal is FormatNumberWithCommas with a placeholder for null
func FormatNullDecimal(value decimal.NullDecimal, opts Options) string {
	if !value.Valid {
		return Placeholder
	}
	return FormatNumberWithCommas(value.Decimal, opts)
}

// FormatFloat is FormatNumberWithCommas for floats; NaN and infinities
// render as the placeholder.
func FormatFloat(value float64, opts Options) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Placeholder
	}
	return FormatNumberWithCommas(decimal.NewFromFloat(value), opts)
}

// FormatMoney renders value followed by the currency code
func FormatMoney(value decimal.Decimal, currency string, opts Options) string {
	formatted := FormatNumberWithCommas(value, opts)
	if currency == "" {
		return formatted
	}
	return formatted + " " + currency
}

// FormatQuantity renders a quantity without padding, e.g. "2" or "1.5"
func FormatQuantity(value decimal.Decimal) string {
	return value.String()
}

// FormatPercent renders an adjustment percentage, e.g. "10%"
func FormatPercent(value decimal.Decimal) string {
	return value.String() + "%"
}

// FormatDate renders t with the configured layout; a zero time renders
// as the placeholder.
func FormatDate(t time.Time, opts Options) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Format(opts.normalized().DateLayout)
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupIndian keeps the last three digits together and groups the rest
// in pairs.
func groupIndian(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	rest, last := digits[:len(digits)-3], digits[len(digits)-3:]
	var b strings.Builder
	head := len(rest) % 2
	if head > 0 {
		b.WriteString(rest[:head])
	}
	for i := head; i < len(rest); i += 2 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(rest[i : i+2])
	}
	b.WriteString(sep)
	b.WriteString(last)
	return b.String()
}

func isAllZero(s string) bool {
	for _, r := range s {
		if r != '0' {
			return false
		}
	}
	return true
}
