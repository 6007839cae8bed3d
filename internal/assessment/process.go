// Package assessment standardizes accountability test results: one row per
// (year, agency, standard, subject, grade, subgroup) with proficiency counts,
// label lookups, and privacy-masking resolution. It also provides the
// proficiency filter and subgroup gap computation built on the processed rows.
package assessment

import (
	"math"
	"strings"

	"ncschooldata/internal/codes"
	"ncschooldata/internal/normalize"
	"ncschooldata/internal/rawtable"
	"ncschooldata/pkg/contracts/domain"
)

// Header variants the accountability files have used, most specific first.
var columns = map[string][]string{
	"agency_code": {"School Code", "Agency Code", "Unit Code", "LEA/School Code"},
	"standard":    {"Standard", "Acct Standard", "Performance Standard"},
	"subject":     {"Subject", "Subject Code", "Test Subject"},
	"grade":       {"Grade", "Grade Span", "Tested Grade"},
	"subgroup":    {"Subgroup", "Student Group", "Subgroup Code"},
	"n_tested":    {"Den", "Denominator", "Number Tested", "N Tested"},
	"pct":         {"Pct", "Percent", "Pct Proficient", "Percent Proficient"},
	"masking":     {"Masking", "Mask", "Masking Flag"},
}

// Process standardizes one year's raw assessment table. Rows without an
// agency code are skipped; everything else degrades to NULL fields rather
// than failing the batch.
func Process(t *rawtable.Table, year int) []domain.AssessmentRow {
	if t.IsEmpty() {
		return []domain.AssessmentRow{}
	}

	cols := make(map[string]int, len(columns))
	for field, candidates := range columns {
		cols[field] = t.Resolve(candidates...)
	}

	rows := make([]domain.AssessmentRow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		agency := strings.TrimSpace(t.Value(i, cols["agency_code"]))
		if agency == "" {
			continue
		}

		row := domain.AssessmentRow{
			EndYear:    year,
			AgencyCode: agency,
			DistrictID: codes.ExtractDistrictID(agency),
			SchoolID:   codes.ExtractSchoolID(agency),
		}
		row.Level = levelOf(agency, row.SchoolID)

		row.Standard = strings.TrimSpace(t.Value(i, cols["standard"]))
		row.StandardLabel = codes.LookupStandard(row.Standard)
		row.Subject = strings.TrimSpace(t.Value(i, cols["subject"]))
		row.SubjectLabel = codes.LookupSubject(row.Subject)
		row.Grade = strings.TrimSpace(t.Value(i, cols["grade"]))
		row.GradeLabel = codes.LookupGrade(row.Grade)
		row.Subgroup = strings.TrimSpace(t.Value(i, cols["subgroup"]))
		row.SubgroupLabel = codes.LookupSubgroup(row.Subgroup)

		row.NTested = normalize.SafeCount(t.Value(i, cols["n_tested"]))
		row.PctProficient = normalize.SafeNumeric(t.Value(i, cols["pct"]))
		row.NProficient = proficientCount(row.NTested, row.PctProficient)

		applyMasking(&row, t.Value(i, cols["masking"]))

		rows = append(rows, row)
	}
	return rows
}

// levelOf applies the agency-code convention: no school suffix (or the "000"
// placeholder) means a district rollup, except the SEA pseudo-agency, which
// is the statewide rollup. Everything else is a school.
func levelOf(agency string, schoolID domain.NullString) domain.AssessmentLevel {
	if !schoolID.Valid || schoolID.String == "000" {
		if strings.HasPrefix(agency, "SEA") {
			return domain.AssessmentStateLevel
		}
		return domain.AssessmentDistrictLevel
	}
	return domain.AssessmentSchoolLevel
}

func proficientCount(tested domain.NullInt, pct domain.NullFloat) domain.NullInt {
	if !tested.Valid || !pct.Valid {
		return domain.NullInt{}
	}
	return domain.IntFrom(int64(math.Round(float64(tested.Int64) * pct.Float64 / 100)))
}
