package validation

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "ncschooldata/internal/errors"
)

// CovidYear is the school-year end year with no statewide assessment data.
const CovidYear = 2020

// assessmentYears lists the end years with published assessment results.
// 2020 is deliberately absent: statewide testing was waived for the 2019-20
// school year.
var assessmentYears = []int{
	2014, 2015, 2016, 2017, 2018, 2019,
	2021, 2022, 2023, 2024, 2025,
}

// AssessmentYears returns the end years with published assessment results,
// ascending.
func AssessmentYears() []int {
	out := make([]int, len(assessmentYears))
	copy(out, assessmentYears)
	return out
}

// ParseYear converts a single year token to an integer. Tokens carrying
// more than one value or non-numeric text fail with an invalid-input error;
// range checking is a separate step.
func ParseYear(token string) (int, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return 0, apperrors.NewInvalidInputError("year is required")
	}
	if strings.ContainsAny(s, ", \t") {
		return 0, apperrors.NewInvalidInputError(
			fmt.Sprintf("year %q holds more than one value; pass a single year", token))
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.NewInvalidInputError(
			fmt.Sprintf("year %q must be a single integer", token))
	}
	return year, nil
}

// ValidateYear checks that year falls inside [minYear, maxYear] inclusive.
func ValidateYear(year, minYear, maxYear int) error {
	if year < minYear || year > maxYear {
		return apperrors.NewOutOfRangeError(year, minYear, maxYear)
	}
	return nil
}

// ValidateAssessmentYear checks year against the enumerated set of published
// assessment years. The COVID year fails with its own error type and
// wording so callers can tell it apart from a year that is simply outside
// the range.
func ValidateAssessmentYear(year int) error {
	if year == CovidYear {
		return apperrors.NewUnavailableYearError(year,
			"statewide testing was waived for the 2019-20 school year due to COVID-19")
	}
	for _, y := range assessmentYears {
		if y == year {
			return nil
		}
	}
	return apperrors.NewOutOfRangeError(year,
		assessmentYears[0], assessmentYears[len(assessmentYears)-1])
}
