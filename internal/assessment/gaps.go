package assessment

import (
	"log/slog"

	"ncschooldata/pkg/contracts/domain"
)

// ModeBoth selects rows under either proficiency standard.
const ModeBoth = "both"

// FilterProficiency restricts rows to one proficiency standard. Unrecognized
// modes fall back to CCR with a warning instead of failing.
func FilterProficiency(rows []domain.AssessmentRow, mode string) []domain.AssessmentRow {
	want := func(standard string) bool { return standard == mode }

	switch mode {
	case domain.StandardCCR, domain.StandardGLP:
	case ModeBoth:
		want = func(standard string) bool {
			return standard == domain.StandardCCR || standard == domain.StandardGLP
		}
	default:
		slog.Warn("unrecognized proficiency mode, falling back to CCR", "mode", mode)
		want = func(standard string) bool { return standard == domain.StandardCCR }
	}

	out := make([]domain.AssessmentRow, 0, len(rows))
	for _, r := range rows {
		if want(r.Standard) {
			out = append(out, r)
		}
	}
	return out
}

// ProficiencyGap inner-joins groupA rows against groupB rows on the
// assessment cell key and emits one gap row per match. Cells where either
// subgroup is suppressed or unreported produce nothing: a gap exists only
// where both sides have a measurement.
func ProficiencyGap(rows []domain.AssessmentRow, groupA, groupB string) []domain.GapRow {
	against := make(map[domain.GapKey]domain.AssessmentRow)
	for _, r := range rows {
		if r.Subgroup == groupB && measurable(r) {
			against[r.Key()] = r
		}
	}

	gaps := make([]domain.GapRow, 0)
	for _, r := range rows {
		if r.Subgroup != groupA || !measurable(r) {
			continue
		}
		other, ok := against[r.Key()]
		if !ok {
			continue
		}
		gaps = append(gaps, domain.GapRow{
			EndYear:    r.EndYear,
			AgencyCode: r.AgencyCode,
			DistrictID: r.DistrictID,
			SchoolID:   r.SchoolID,
			Level:      r.Level,
			Standard:   r.Standard,
			Subject:    r.Subject,
			Grade:      r.Grade,
			GroupA:     groupA,
			GroupB:     groupB,
			PctA:       r.PctProficient.Float64,
			PctB:       other.PctProficient.Float64,
			Gap:        r.PctProficient.Float64 - other.PctProficient.Float64,
		})
	}
	return gaps
}

func measurable(r domain.AssessmentRow) bool {
	return !r.IsSuppressed && r.PctProficient.Valid
}
