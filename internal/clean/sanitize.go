// Package clean turns raw CSV rows into typed records ready for persistence.
//
// It has two layers: pure field sanitizers (column names, numeric strings,
// emails) and per-entity cleaners that apply them column-wise, coerce types,
// and derive computed fields. Parse failures surface as *RowError naming the
// entity, column, line, and offending raw value.
package clean

import (
	"regexp"
	"strings"
)

// FlagSuffix marks columns holding a Y/N raw encoding. After cleaning these
// columns hold only booleans; unrecognized raw values become false, never null.
const FlagSuffix = "_yn"

var (
	nonWordRun    = regexp.MustCompile(`[^a-z0-9_]+`)
	underscoreRun = regexp.MustCompile(`_+`)
	nonNumeric    = regexp.MustCompile(`[^0-9.]+`)
	emailInvalid  = regexp.MustCompile(`[^a-z0-9._@-]+`)
)

// CleanColumnName canonicalizes a CSV header name: lowercase, trimmed,
// every run of whitespace or non-word characters replaced by a single
// underscore, and runs of underscores collapsed. Idempotent.
func CleanColumnName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = nonWordRun.ReplaceAllString(name, "_")
	return underscoreRun.ReplaceAllString(name, "_")
}

// CleanNumeric removes every character that is not a decimal digit or a
// decimal point, preserving order. It does not validate the result: a string
// like "12.34.56" passes through and fails at numeric coercion instead.
func CleanNumeric(s string) string {
	return nonNumeric.ReplaceAllString(s, "")
}

// CleanEmail trims, lowercases, and strips every character outside
// [a-z0-9._-@]. It does not verify well-formedness; callers drop rows whose
// cleaned email comes back empty.
func CleanEmail(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return emailInvalid.ReplaceAllString(s, "")
}

// IsFlagColumn reports whether a canonical column name carries a Y/N flag.
func IsFlagColumn(name string) bool {
	return strings.HasSuffix(name, FlagSuffix)
}

// FlagValue maps the raw flag encoding to a boolean: exactly "Y" is true,
// "N" and everything else (empty, lowercase, free text) is false.
func FlagValue(s string) bool {
	return s == "Y"
}
