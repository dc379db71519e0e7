// Package format renders numbers, money, dates and payload classifications
// into display strings. Output never depends on the host locale: every
// convention is a fixed option passed in by the caller.
package format

import (
	"fmt"
	"strings"
)

// Placeholder is shown in place of a missing or non-numeric value
const Placeholder = "-"

// DefaultDateLayout renders dates as "Month Day, Year"
const DefaultDateLayout = "January 2, 2006"

// Convention selects digit grouping and separators
type Convention string

const (
	// ConventionUS groups by thousands: 1,234,567.89
	ConventionUS Convention = "en-US"
	// ConventionIndia groups lakh/crore style: 12,34,567.89
	ConventionIndia Convention = "en-IN"
	// ConventionGerman swaps separators: 1.234.567,89
	ConventionGerman Convention = "de-DE"
)

// Conventions lists every supported convention
var Conventions = []Convention{ConventionUS, ConventionIndia, ConventionGerman}

// ParseConvention maps a locale-like tag to a Convention
func ParseConvention(s string) (Convention, error) {
	for _, c := range Conventions {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported number convention %q", s)
}

func (c Convention) separators() (group, decimalSep string) {
	if c == ConventionGerman {
		return ".", ","
	}
	return ",", "."
}

// Options configures the formatting utilities. The zero value formats in
// whole units with en-US grouping; use DefaultOptions for two digits or
// ForCurrency for the currency's minor unit.
type Options struct {
	// Precision is the number of fractional digits shown for money. Zero
	// means whole units, as for JPY.
	Precision  int
	Convention Convention
	DateLayout string
}

// DefaultOptions returns two-digit precision, en-US grouping and the
// "Month Day, Year" date layout.
func DefaultOptions() Options {
	return Options{
		Precision:  2,
		Convention: ConventionUS,
		DateLayout: DefaultDateLayout,
	}
}

// WithPrecision returns a copy of o using the given precision
func (o Options) WithPrecision(precision int) Options {
	o.Precision = precision
	return o
}

// ForCurrency returns a copy of o using the minor-unit digits of code
func (o Options) ForCurrency(code string) Options {
	return o.WithPrecision(CurrencyPrecision(code))
}

func (o Options) normalized() Options {
	if o.Precision < 0 {
		o.Precision = 0
	}
	if o.Convention == "" {
		o.Convention = ConventionUS
	}
	if o.DateLayout == "" {
		o.DateLayout = DefaultDateLayout
	}
	return o
}
