package domain

// AssessmentLevel is the reporting level of an assessment row.
type AssessmentLevel string

const (
	AssessmentStateLevel    AssessmentLevel = "state"
	AssessmentDistrictLevel AssessmentLevel = "district"
	AssessmentSchoolLevel   AssessmentLevel = "school"
)

// Proficiency standards reported by the assessment files.
const (
	StandardCCR = "CCR"
	StandardGLP = "GLP"
)

// AssessmentRow is one processed assessment observation: (end_year,
// agency_code, standard, subject, grade, subgroup).
//
// Code fields carry the raw source code; the matching *_Label field carries
// the human-readable lookup, falling back to the raw code when the code is
// not in the lookup table. Suppressed measurements keep their masking code
// and a derived reason instead of counts.
type AssessmentRow struct {
	EndYear    int        `json:"end_year" csv:"end_year"`
	AgencyCode string     `json:"agency_code" csv:"agency_code"`
	DistrictID NullString `json:"district_id" csv:"district_id"`
	SchoolID   NullString `json:"school_id" csv:"school_id"`

	Level AssessmentLevel `json:"level" csv:"level"`

	Standard      string `json:"standard" csv:"standard"`
	StandardLabel string `json:"standard_label" csv:"standard_label"`
	Subject       string `json:"subject" csv:"subject"`
	SubjectLabel  string `json:"subject_label" csv:"subject_label"`
	Grade         string `json:"grade" csv:"grade"`
	GradeLabel    string `json:"grade_label" csv:"grade_label"`
	Subgroup      string `json:"subgroup" csv:"subgroup"`
	SubgroupLabel string `json:"subgroup_label" csv:"subgroup_label"`

	NTested       NullInt   `json:"n_tested" csv:"n_tested"`
	PctProficient NullFloat `json:"pct_proficient" csv:"pct_proficient"`

	// NProficient is round(NTested * PctProficient / 100); NULL when either
	// operand is NULL.
	NProficient NullInt `json:"n_proficient" csv:"n_proficient"`

	Masking           NullString `json:"masking" csv:"masking"`
	IsSuppressed      bool       `json:"is_suppressed" csv:"is_suppressed"`
	SuppressionReason NullString `json:"suppression_reason" csv:"suppression_reason"`
}

// GapKey identifies the assessment cell a measurement belongs to, ignoring
// subgroup. Proficiency-gap computation joins subgroup pairs on this key.
type GapKey struct {
	EndYear    int
	AgencyCode string
	DistrictID string
	SchoolID   string
	Level      AssessmentLevel
	Standard   string
	Subject    string
	Grade      string
}

// Key returns the row's gap-join key. NULL identifier fields collapse to the
// empty string; derivation guarantees they are either NULL or full width, so
// no collision with reported values is possible.
func (r *AssessmentRow) Key() GapKey {
	return GapKey{
		EndYear:    r.EndYear,
		AgencyCode: r.AgencyCode,
		DistrictID: r.DistrictID.String,
		SchoolID:   r.SchoolID.String,
		Level:      r.Level,
		Standard:   r.Standard,
		Subject:    r.Subject,
		Grade:      r.Grade,
	}
}

// GapRow is the proficiency difference between two subgroups measured on the
// same assessment cell. Rows exist only where both subgroups reported an
// unsuppressed percentage.
type GapRow struct {
	EndYear    int        `json:"end_year" csv:"end_year"`
	AgencyCode string     `json:"agency_code" csv:"agency_code"`
	DistrictID NullString `json:"district_id" csv:"district_id"`
	SchoolID   NullString `json:"school_id" csv:"school_id"`

	Level    AssessmentLevel `json:"level" csv:"level"`
	Standard string          `json:"standard" csv:"standard"`
	Subject  string          `json:"subject" csv:"subject"`
	Grade    string          `json:"grade" csv:"grade"`

	GroupA string  `json:"group_a" csv:"group_a"`
	GroupB string  `json:"group_b" csv:"group_b"`
	PctA   float64 `json:"pct_a" csv:"pct_a"`
	PctB   float64 `json:"pct_b" csv:"pct_b"`

	// Gap is PctA minus PctB in percentage points.
	Gap float64 `json:"gap" csv:"gap"`
}
