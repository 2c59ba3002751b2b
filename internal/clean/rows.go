package clean

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrMissingColumn indicates a required column is absent from the header row.
var ErrMissingColumn = errors.New("missing required column")

// RowError is a labeled cleaning failure identifying the entity, column,
// CSV line, and the offending raw value.
type RowError struct {
	Entity string
	Column string
	Line   int
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: line %d: column %q: value %q: %v",
		e.Entity, e.Line, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// HeaderIndex maps canonical column names to their position in a CSV row.
type HeaderIndex map[string]int

// MakeHeaderIndex builds a HeaderIndex from a raw header row. Every name is
// passed through CleanColumnName so downstream column identity is always the
// canonical lowercase-with-underscores form.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[CleanColumnName(h)] = i
	}
	return idx
}

// Row wraps one raw CSV data row with its entity label, 1-based CSV line
// number, and header index. The typed getters validate column presence and
// coerce values, returning *RowError on failure.
type Row struct {
	Entity string
	Line   int
	Index  HeaderIndex
	Values []string
}

// Empty reports whether every cell in the row is blank.
func (r Row) Empty() bool {
	for _, v := range r.Values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (r Row) cell(col string) (string, error) {
	pos, ok := r.Index[col]
	if !ok || pos >= len(r.Values) {
		return "", &RowError{Entity: r.Entity, Column: col, Line: r.Line, Err: ErrMissingColumn}
	}
	return r.Values[pos], nil
}

func (r Row) fail(col, raw string, err error) *RowError {
	return &RowError{Entity: r.Entity, Column: col, Line: r.Line, Value: raw, Err: err}
}

// Text returns the trimmed cell value. Empty values are allowed.
func (r Row) Text(col string) (string, error) {
	raw, err := r.cell(col)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// Int coerces the cell to an integer.
func (r Row) Int(col string) (int64, error) {
	raw, err := r.cell(col)
	if err != nil {
		return 0, err
	}
	n, err := ParseInt(raw)
	if err != nil {
		return 0, r.fail(col, raw, err)
	}
	return n, nil
}

// NumericID strips non-numeric characters before integer coercion.
func (r Row) NumericID(col string) (int64, error) {
	raw, err := r.cell(col)
	if err != nil {
		return 0, err
	}
	n, err := ParseNumericID(raw)
	if err != nil {
		return 0, r.fail(col, raw, err)
	}
	return n, nil
}

// Date coerces the cell to a calendar date.
func (r Row) Date(col string) (time.Time, error) {
	raw, err := r.cell(col)
	if err != nil {
		return time.Time{}, err
	}
	t, err := ParseDate(raw)
	if err != nil {
		return time.Time{}, r.fail(col, raw, err)
	}
	return t, nil
}

// Price coerces the cell to a decimal.
func (r Row) Price(col string) (decimal.Decimal, error) {
	raw, err := r.cell(col)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := ParsePrice(raw)
	if err != nil {
		return decimal.Decimal{}, r.fail(col, raw, err)
	}
	return d, nil
}

// CleanedPrice strips non-numeric characters before decimal coercion.
func (r Row) CleanedPrice(col string) (decimal.Decimal, error) {
	raw, err := r.cell(col)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := ParseCleanedPrice(raw)
	if err != nil {
		return decimal.Decimal{}, r.fail(col, raw, err)
	}
	return d, nil
}

// Flag converts a Y/N column to a boolean. The column must exist; the value
// itself never fails (anything other than "Y" maps to false).
func (r Row) Flag(col string) (bool, error) {
	raw, err := r.cell(col)
	if err != nil {
		return false, err
	}
	return FlagValue(strings.TrimSpace(raw)), nil
}
