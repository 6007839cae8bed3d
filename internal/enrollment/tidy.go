package enrollment

import (
	"ncschooldata/pkg/contracts/domain"
)

// Tidy pivots standardized wide rows into long form. Per wide row it emits,
// in order: the TOTAL row, one row per reported grade count (subgroup
// total_enrollment), then one row per reported demographic count at
// grade_level TOTAL. A NULL cell emits nothing; row presence is the
// missingness signal, so this filter must never be softened to NULL-valued
// rows.
func Tidy(wide []domain.EnrollmentRow) []domain.TidyRow {
	out := make([]domain.TidyRow, 0, len(wide)*8)

	for i := range wide {
		r := &wide[i]

		base := domain.TidyRow{
			EndYear:         r.EndYear,
			DistrictID:      r.DistrictID,
			CampusID:        r.CampusID,
			DistrictName:    r.DistrictName,
			CampusName:      r.CampusName,
			County:          r.County,
			Region:          r.Region,
			IsState:         r.Level == domain.LevelState,
			IsDistrict:      r.Level == domain.LevelDistrict,
			IsCampus:        r.Level == domain.LevelCampus,
			IsCharter:       r.CharterFlag.Valid && r.CharterFlag.String == "Y",
			AggregationFlag: r.Level.Flag(),
		}

		total := r.RowTotal

		if total.Valid {
			row := base
			row.GradeLevel = domain.GradeTotal
			row.Subgroup = domain.SubgroupTotal
			row.NStudents = total.Int64
			row.Pct = pctOf(total.Int64, total)
			out = append(out, row)
		}

		for _, cell := range r.GradeCells() {
			if !cell.N.Valid {
				continue
			}
			row := base
			row.GradeLevel = cell.Grade
			row.Subgroup = domain.SubgroupTotal
			row.NStudents = cell.N.Int64
			row.Pct = pctOf(cell.N.Int64, total)
			out = append(out, row)
		}

		for _, cell := range r.SubgroupCells() {
			if !cell.N.Valid {
				continue
			}
			row := base
			row.GradeLevel = domain.GradeTotal
			row.Subgroup = cell.Subgroup
			row.NStudents = cell.N.Int64
			row.Pct = pctOf(cell.N.Int64, total)
			out = append(out, row)
		}
	}

	return out
}

// pctOf computes a cell's share of the row total. A cell equal to the total
// is exactly 1.0 with no float division, which keeps the total_enrollment
// TOTAL invariant exact. NULL or zero totals give NULL.
func pctOf(n int64, total domain.NullInt) domain.NullFloat {
	if !total.Valid {
		return domain.NullFloat{}
	}
	if n == total.Int64 {
		return domain.FloatFrom(1.0)
	}
	if total.Int64 == 0 {
		return domain.NullFloat{}
	}
	return domain.FloatFrom(float64(n) / float64(total.Int64))
}
