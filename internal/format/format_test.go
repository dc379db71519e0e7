package format_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-renderer/internal/format"
)

func TestFormatNumberWithCommas(t *testing.T) {
	us := format.DefaultOptions()
	india := format.Options{Precision: 2, Convention: format.ConventionIndia}
	german := format.Options{Precision: 2, Convention: format.ConventionGerman}

	tests := []struct {
		name     string
		value    string
		opts     format.Options
		expected string
	}{
		{"zero", "0", us, "0.00"},
		{"small", "5", us, "5.00"},
		{"hundreds", "999.999", us, "1,000.00"},
		{"thousands", "1234.5", us, "1,234.50"},
		{"millions", "1234567.891", us, "1,234,567.89"},
		{"half up", "0.005", us, "0.01"},
		{"negative", "-1234.5", us, "-1,234.50"},
		{"negative rounds to zero", "-0.001", us, "0.00"},
		{"no fraction", "1234567", us.WithPrecision(0), "1,234,567"},
		{"three places", "1234.5678", us.WithPrecision(3), "1,234.568"},
		{"india lakh", "1234567.89", india, "12,34,567.89"},
		{"india crore", "123456789", india, "12,34,56,789.00"},
		{"india small", "999", india, "999.00"},
		{"german", "1234567.89", german, "1.234.567,89"},
		{"zero value shows whole units", "1234.5", format.Options{}, "1,235"},
		{"zero value for USD", "1234.5", format.Options{}.ForCurrency("USD"), "1,234.50"},
		{"zero value for KWD", "1234.5", format.Options{}.ForCurrency("kwd"), "1,234.500"},
		{"default for JPY", "1234.5", us.ForCurrency("JPY"), "1,235"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := format.FormatNumberWithCommas(decimal.RequireFromString(tt.value), tt.opts)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatNumberWithCommas_Deterministic(t *testing.T) {
	value := decimal.RequireFromString("98765.4321")
	first := format.FormatNumberWithCommas(value, format.DefaultOptions())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, format.FormatNumberWithCommas(value, format.DefaultOptions()))
	}
}

func TestFormatFallbacks(t *testing.T) {
	opts := format.DefaultOptions()

	assert.Equal(t, format.Placeholder, format.FormatFloat(math.NaN(), opts))
	assert.Equal(t, format.Placeholder, format.FormatFloat(math.Inf(1), opts))
	assert.Equal(t, "12.50", format.FormatFloat(12.5, opts))

	assert.Equal(t, format.Placeholder, format.FormatNullDecimal(decimal.NullDecimal{}, opts))
	assert.Equal(t, "3.00", format.FormatNullDecimal(decimal.NewNullDecimal(decimal.NewFromInt(3)), opts))

	assert.Equal(t, format.Placeholder, format.FormatDate(time.Time{}, opts))
}

func TestFormatMoney(t *testing.T) {
	opts := format.DefaultOptions()
	assert.Equal(t, "1,250.00 USD", format.FormatMoney(decimal.NewFromInt(1250), "USD", opts))
	assert.Equal(t, "1,250.00", format.FormatMoney(decimal.NewFromInt(1250), "", opts))
}

func TestFormatQuantityAndPercent(t *testing.T) {
	assert.Equal(t, "2", format.FormatQuantity(decimal.NewFromInt(2)))
	assert.Equal(t, "1.5", format.FormatQuantity(decimal.RequireFromString("1.50")))
	assert.Equal(t, "10%", format.FormatPercent(decimal.NewFromInt(10)))
	assert.Equal(t, "7.5%", format.FormatPercent(decimal.RequireFromString("7.5")))
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "August 1, 2025", format.FormatDate(date, format.DefaultOptions()))
	assert.Equal(t, "2025-08-01", format.FormatDate(date, format.Options{DateLayout: "2006-01-02"}))
	assert.Equal(t, "August 1, 2025", format.FormatDate(date, format.Options{}))
}

func TestParseConvention(t *testing.T) {
	c, err := format.ParseConvention("en-in")
	require.NoError(t, err)
	assert.Equal(t, format.ConventionIndia, c)

	_, err = format.ParseConvention("fr-FR")
	require.Error(t, err)
}

func TestIsDataURL(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"data:image/png;base64,iVBORw0KGgo=", true},
		{"DATA:image/jpeg;base64,/9j/4AAQ", true},
		{"data:;base64,AAAA", true},
		{"data:image/png;base64,", false},
		{"data:text/plain,hello", false},
		{"John Appleseed", false},
		{"https://example.com/logo.png", false},
		{"", false},
		{"data:", false},
		{"dat", false},
		{"data:image/png, x;base64,AAAA", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, format.IsDataURL(tt.value))
		})
	}
}

func TestCurrencyPrecision(t *testing.T) {
	assert.Equal(t, 2, format.CurrencyPrecision("USD"))
	assert.Equal(t, 2, format.CurrencyPrecision("inr"))
	assert.Equal(t, 0, format.CurrencyPrecision("JPY"))
	assert.Equal(t, 3, format.CurrencyPrecision(" KWD "))
	assert.Equal(t, format.DefaultCurrencyPrecision, format.CurrencyPrecision("XYZ"))
}

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		value     string
		precision int
		expected  string
	}{
		{"1250", 2, "One Thousand Two Hundred and Fifty and 00/100"},
		{"0", 2, "Zero and 00/100"},
		{"190", 2, "One Hundred and Ninety and 00/100"},
		{"15.5", 2, "Fifteen and 50/100"},
		{"21.07", 2, "Twenty-One and 07/100"},
		{"1000000", 2, "One Million and 00/100"},
		{"1005", 2, "One Thousand Five and 00/100"},
		{"2500000.99", 2, "Two Million Five Hundred Thousand and 99/100"},
		{"1250", 0, "One Thousand Two Hundred and Fifty"},
		{"7.125", 3, "Seven and 125/1000"},
		{"19.999", 2, "Twenty and 00/100"},
		{"10000000000000000000", 2, "Ten Quintillion and 00/100"},
		{"18446744073709551616.5", 2, "Eighteen Quintillion Four Hundred and Forty-Six Quadrillion " +
			"Seven Hundred and Forty-Four Trillion Seventy-Three Billion Seven Hundred and Nine Million " +
			"Five Hundred and Fifty-One Thousand Six Hundred and Sixteen and 50/100"},
		{"1000000000000000000000000000000000000000000000000000000000000000", 0, "One Vigintillion"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, format.AmountInWords(decimal.RequireFromString(tt.value), tt.precision))
		})
	}
}

func TestSpellNumber(t *testing.T) {
	assert.Equal(t, "Zero", format.SpellNumber(0))
	assert.Equal(t, "Nineteen", format.SpellNumber(19))
	assert.Equal(t, "Forty", format.SpellNumber(40))
	assert.Equal(t, "Ninety-Nine", format.SpellNumber(99))
	assert.Equal(t, "One Hundred", format.SpellNumber(100))
	assert.Equal(t, "One Billion Two", format.SpellNumber(1000000002))
	assert.Equal(t, "Nine Quintillion Two Hundred and Twenty-Three Quadrillion Three Hundred and Seventy-Two Trillion "+
		"Thirty-Six Billion Eight Hundred and Fifty-Four Million Seven Hundred and Seventy-Five Thousand "+
		"Eight Hundred and Seven", format.SpellNumber(math.MaxInt64))
}

func TestCanSpell(t *testing.T) {
	assert.True(t, format.CanSpell(decimal.RequireFromString("18446744073709551616.5")))
	assert.True(t, format.CanSpell(format.MaxAmountInWords.Sub(decimal.RequireFromString("0.01"))))
	assert.False(t, format.CanSpell(format.MaxAmountInWords))

	tooLarge := format.MaxAmountInWords.Mul(decimal.NewFromInt(10))
	assert.Equal(t, tooLarge.String()+" and 00/100", format.AmountInWords(tooLarge, 2))
}
