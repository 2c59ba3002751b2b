package clean

// convert.go holds the type coercion helpers shared by the entity cleaners.
// Layout lists cover the formats seen in the source exports; parsing tries
// them in order and fails with the raw value preserved for error reporting.

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var dateLayouts = []string{
	"2006-01-02", "2006/01/02", "2006.01.02",
	"1/2/2006", "01/02/2006",
}

var dateTimeLayouts = []string{
	"2006-01-02 15:04:05", "2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"1/2/2006 15:04:05",
}

// ParseDate parses a calendar date (no time component).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ParseDateTime parses a combined date and time value.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// ParseInt parses a plain integer column (ids, quantities).
func ParseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// ParseNumericID strips non-numeric characters first, then parses the digits
// as an integer. Used for columns like loyalty card numbers that arrive with
// dashes or spaces embedded.
func ParseNumericID(s string) (int64, error) {
	return strconv.ParseInt(CleanNumeric(s), 10, 64)
}

// ParsePrice parses a money column into a decimal.
func ParsePrice(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// ParseCleanedPrice strips non-numeric characters (currency symbols, spaces)
// before parsing. CleanNumeric does not validate, so malformed input like
// "1.2.3" still fails here rather than being silently coerced.
func ParseCleanedPrice(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(CleanNumeric(s))
}
