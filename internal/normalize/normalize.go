// Package normalize provides the numeric and text cleaning every processor
// shares. Suppression-marker recognition lives here and only here so the
// enrollment and assessment pipelines cannot drift apart on what counts as
// a withheld value.
package normalize

import (
	"math"
	"strconv"
	"strings"

	"ncschooldata/pkg/contracts/domain"
)

// suppressionMarkers are matched exactly after comma and whitespace
// stripping. The set is deliberately literal: "null" matches only in lower
// case, and "NA"/"N/A" only in upper case, mirroring how the source files
// actually spell them. Do not widen the casing.
var suppressionMarkers = map[string]struct{}{
	"*":    {},
	".":    {},
	"-":    {},
	"-1":   {},
	"N/A":  {},
	"NA":   {},
	"":     {},
	"null": {},
}

func stripCell(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
}

func isMarker(s string) bool {
	if _, ok := suppressionMarkers[s]; ok {
		return true
	}
	// Range markers like "<5" or ">95" suppress regardless of the bound.
	return strings.HasPrefix(s, "<") || strings.HasPrefix(s, ">")
}

// IsSuppressionMarker reports whether the cell text is one of the source
// vocabulary's suppression markers, applying the same stripping rules as
// SafeNumeric.
func IsSuppressionMarker(raw string) bool {
	return isMarker(stripCell(raw))
}

// SafeNumeric parses a numeric cell. Thousands separators and surrounding
// whitespace are stripped, suppression markers and unparsable residue map
// to NULL. It never fails: a cell either yields a number or NULL.
func SafeNumeric(raw string) domain.NullFloat {
	s := stripCell(raw)
	if isMarker(s) {
		return domain.NullFloat{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return domain.NullFloat{}
	}
	return domain.FloatFrom(v)
}

// SafeNumericAll applies SafeNumeric element-wise, preserving order and
// length.
func SafeNumericAll(raw []string) []domain.NullFloat {
	out := make([]domain.NullFloat, len(raw))
	for i, s := range raw {
		out[i] = SafeNumeric(s)
	}
	return out
}

// SafeCount parses a count cell. Fractional values, which ADM-based totals
// produce, round to the nearest whole student.
func SafeCount(raw string) domain.NullInt {
	f := SafeNumeric(raw)
	if !f.Valid {
		return domain.NullInt{}
	}
	return domain.IntFrom(int64(math.Round(f.Float64)))
}

// CleanName trims surrounding whitespace and collapses every internal run
// of whitespace to a single space. Casing is untouched.
func CleanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TextCell cleans a free-text cell and returns NULL when nothing remains.
func TextCell(raw string) domain.NullString {
	s := CleanName(raw)
	if s == "" {
		return domain.NullString{}
	}
	return domain.StringFrom(s)
}

// Digits keeps only ASCII digits, for phone-number normalization.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ZipChars keeps digits and hyphens, the characters legal in a ZIP or
// ZIP+4 code.
func ZipChars(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
