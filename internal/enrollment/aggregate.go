package enrollment

import (
	"ncschooldata/internal/rawtable"
	"ncschooldata/pkg/contracts/domain"
)

// RawData bundles the raw enrollment sources for one year.
type RawData struct {
	Districts *rawtable.Table
	Schools   *rawtable.Table
}

// countFields returns the row's count cells in a fixed order shared by the
// aggregator and the tests.
func countFields(r *domain.EnrollmentRow) []*domain.NullInt {
	return []*domain.NullInt{
		&r.RowTotal,
		&r.White, &r.Black, &r.Hispanic, &r.Asian,
		&r.NativeAmerican, &r.PacificIslander, &r.Multiracial,
		&r.Male, &r.Female,
		&r.SpecialEd, &r.LEP, &r.EconDisadv,
		&r.GradePK, &r.GradeK,
		&r.Grade01, &r.Grade02, &r.Grade03, &r.Grade04,
		&r.Grade05, &r.Grade06, &r.Grade07, &r.Grade08,
		&r.Grade09, &r.Grade10, &r.Grade11, &r.Grade12,
	}
}

// StateAggregate synthesizes the statewide row by summing every count
// column across the district rows. NULL cells count as zero, so a column
// nobody reported sums to a reported zero rather than NULL. Identifier and
// name fields stay NULL. With no district rows there is nothing to sum and
// ok is false; callers emit no state row rather than a zero-filled one.
func StateAggregate(districts []domain.EnrollmentRow, year int) (domain.EnrollmentRow, bool) {
	if len(districts) == 0 {
		return domain.EnrollmentRow{}, false
	}

	state := domain.EnrollmentRow{
		EndYear: year,
		Level:   domain.LevelState,
	}

	sums := countFields(&state)
	for _, cell := range sums {
		*cell = domain.IntFrom(0)
	}

	for i := range districts {
		cells := countFields(&districts[i])
		for j, cell := range cells {
			if cell.Valid {
				sums[j].Int64 += cell.Int64
			}
		}
	}

	return state, true
}

// Process runs both enrollment processors for one year and returns
// [state, districts..., schools...] in that order. The ordering is stable
// for consumers that care, but filtering belongs on Level, never position.
func Process(raw RawData, year int) []domain.EnrollmentRow {
	districts := ProcessDistrict(raw.Districts, year)
	schools := ProcessSchool(raw.Schools, year)

	out := make([]domain.EnrollmentRow, 0, len(districts)+len(schools)+1)
	if state, ok := StateAggregate(districts, year); ok {
		out = append(out, state)
	}
	out = append(out, districts...)
	out = append(out, schools...)
	return out
}
