// Package codes derives district and school identifiers from the two code
// systems the source files use (state LEA+school codes and federal NCES
// codes) and owns the fixed code-to-label tables.
package codes

import (
	"fmt"
	"strconv"
	"strings"

	"ncschooldata/pkg/contracts/domain"
)

// padNumeric zero-pads a numeric code to the given width. Non-numeric input
// is NULL; derivation never raises.
func padNumeric(s string, width int) domain.NullString {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return domain.NullString{}
	}
	return domain.StringFrom(fmt.Sprintf("%0*d", width, n))
}

// DeriveDistrictID normalizes a district code to the 3-character state LEA
// form. Federal codes carry a state-FIPS prefix, so anything 5 characters
// or longer keeps only its last 3.
func DeriveDistrictID(raw string) domain.NullString {
	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.NullString{}
	}
	if len(s) >= 5 {
		s = s[len(s)-3:]
	}
	return padNumeric(s, 3)
}

// DeriveSchoolID normalizes a school code to the 6-character state form,
// district prefix plus 3-digit suffix. Federal 12-digit codes keep their
// last 6 characters.
func DeriveSchoolID(raw string) domain.NullString {
	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.NullString{}
	}
	if len(s) >= 7 {
		s = s[len(s)-6:]
	}
	return padNumeric(s, 6)
}

// ExtractDistrictID returns the first 3 characters of a flat agency code,
// NULL when the code is shorter than 3. No padding is applied.
func ExtractDistrictID(agency string) domain.NullString {
	s := strings.TrimSpace(agency)
	if len(s) < 3 {
		return domain.NullString{}
	}
	return domain.StringFrom(s[:3])
}

// ExtractSchoolID returns characters 4-6 of a flat agency code, NULL when
// the code is shorter than 6. No padding is applied.
func ExtractSchoolID(agency string) domain.NullString {
	s := strings.TrimSpace(agency)
	if len(s) < 6 {
		return domain.NullString{}
	}
	return domain.StringFrom(s[3:6])
}
