package enrollment

import (
	"strings"

	"ncschooldata/internal/codes"
	"ncschooldata/internal/normalize"
	"ncschooldata/internal/rawtable"
	"ncschooldata/pkg/contracts/domain"
)

// ProcessDistrict transforms a raw LEA-level enrollment table into
// standardized wide rows at District level. A nil or empty table yields an
// empty slice, never an error.
func ProcessDistrict(t *rawtable.Table, year int) []domain.EnrollmentRow {
	if t.IsEmpty() {
		return []domain.EnrollmentRow{}
	}

	cols := resolveColumns(t, districtIdentityColumns, countColumns)

	rows := make([]domain.EnrollmentRow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if rowEmpty(t, i, cols) {
			continue
		}

		row := domain.EnrollmentRow{
			EndYear:      year,
			Level:        domain.LevelDistrict,
			DistrictID:   codes.DeriveDistrictID(t.Value(i, cols["district_code"])),
			DistrictName: normalize.TextCell(t.Value(i, cols["district_name"])),
			County:       normalize.TextCell(t.Value(i, cols["county"])),
			Region:       normalize.TextCell(t.Value(i, cols["region"])),
		}
		fillCounts(&row, t, i, cols)
		rows = append(rows, row)
	}
	return rows
}

// ProcessSchool transforms a raw school-level enrollment table into
// standardized wide rows at Campus level. The district identifier comes
// from a dedicated column when one exists, otherwise from the first 3
// characters of the derived campus code. A nil or empty table yields an
// empty slice.
func ProcessSchool(t *rawtable.Table, year int) []domain.EnrollmentRow {
	if t.IsEmpty() {
		return []domain.EnrollmentRow{}
	}

	cols := resolveColumns(t, schoolIdentityColumns, countColumns)
	hasDistrictCol := cols["district_code"] >= 0

	rows := make([]domain.EnrollmentRow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if rowEmpty(t, i, cols) {
			continue
		}

		campusID := codes.DeriveSchoolID(t.Value(i, cols["school_code"]))

		var districtID domain.NullString
		if hasDistrictCol {
			districtID = codes.DeriveDistrictID(t.Value(i, cols["district_code"]))
		} else if campusID.Valid {
			districtID = domain.StringFrom(campusID.String[:3])
		}

		row := domain.EnrollmentRow{
			EndYear:      year,
			Level:        domain.LevelCampus,
			DistrictID:   districtID,
			CampusID:     campusID,
			DistrictName: normalize.TextCell(t.Value(i, cols["district_name"])),
			CampusName:   normalize.TextCell(t.Value(i, cols["school_name"])),
			County:       normalize.TextCell(t.Value(i, cols["county"])),
			Region:       normalize.TextCell(t.Value(i, cols["region"])),
			CharterFlag:  normalizeCharter(t.Value(i, cols["charter"])),
		}
		fillCounts(&row, t, i, cols)
		rows = append(rows, row)
	}
	return rows
}

// fillCounts parses every count column of the row through SafeCount. Cells
// under unresolved columns read as empty and come back NULL.
func fillCounts(row *domain.EnrollmentRow, t *rawtable.Table, i int, cols map[string]int) {
	count := func(field string) domain.NullInt {
		return normalize.SafeCount(t.Value(i, cols[field]))
	}

	row.RowTotal = count("row_total")

	row.White = count("white")
	row.Black = count("black")
	row.Hispanic = count("hispanic")
	row.Asian = count("asian")
	row.NativeAmerican = count("native_american")
	row.PacificIslander = count("pacific_islander")
	row.Multiracial = count("multiracial")

	row.Male = count("male")
	row.Female = count("female")

	row.SpecialEd = count("special_ed")
	row.LEP = count("lep")
	row.EconDisadv = count("econ_disadv")

	row.GradePK = count("grade_pk")
	row.GradeK = count("grade_k")
	row.Grade01 = count("grade_01")
	row.Grade02 = count("grade_02")
	row.Grade03 = count("grade_03")
	row.Grade04 = count("grade_04")
	row.Grade05 = count("grade_05")
	row.Grade06 = count("grade_06")
	row.Grade07 = count("grade_07")
	row.Grade08 = count("grade_08")
	row.Grade09 = count("grade_09")
	row.Grade10 = count("grade_10")
	row.Grade11 = count("grade_11")
	row.Grade12 = count("grade_12")
}

// rowEmpty reports whether every resolved column's cell is blank. Workbook
// exports pad sheets with such rows below the data; they are skipped, not
// standardized into all-NULL entities.
func rowEmpty(t *rawtable.Table, i int, cols map[string]int) bool {
	for _, col := range cols {
		if col < 0 {
			continue
		}
		if strings.TrimSpace(t.Value(i, col)) != "" {
			return false
		}
	}
	return true
}
