package domain

import (
	"strings"
)

// Level is the aggregation level of a standardized enrollment row.
type Level string

const (
	LevelState    Level = "State"
	LevelDistrict Level = "District"
	LevelCampus   Level = "Campus"
)

// Flag returns the lower-cased level used as the tidy aggregation_flag.
func (l Level) Flag() string {
	return strings.ToLower(string(l))
}

// Grade-level codes carried by tidy rows. Source workbooks report PK through
// 12 plus a row total; K8, HS, and K12 are derived bands.
const (
	GradeTotal = "TOTAL"
	GradePK    = "PK"
	GradeK     = "K"
	BandK8     = "K8"
	BandHS     = "HS"
	BandK12    = "K12"
)

// GradeLevels lists the 14 reported grade codes in pivot order.
var GradeLevels = []string{
	GradePK, GradeK,
	"01", "02", "03", "04", "05", "06", "07", "08",
	"09", "10", "11", "12",
}

// Subgroup codes carried by tidy rows.
const (
	SubgroupTotal           = "total_enrollment"
	SubgroupWhite           = "white"
	SubgroupBlack           = "black"
	SubgroupHispanic        = "hispanic"
	SubgroupAsian           = "asian"
	SubgroupNativeAmerican  = "native_american"
	SubgroupPacificIslander = "pacific_islander"
	SubgroupMultiracial     = "multiracial"
	SubgroupMale            = "male"
	SubgroupFemale          = "female"
	SubgroupSpecialEd       = "special_ed"
	SubgroupLEP             = "lep"
	SubgroupEconDisadv      = "econ_disadv"
)

// Subgroups lists all 13 subgroup codes in tidy emission order.
var Subgroups = []string{
	SubgroupTotal,
	SubgroupWhite, SubgroupBlack, SubgroupHispanic, SubgroupAsian,
	SubgroupNativeAmerican, SubgroupPacificIslander, SubgroupMultiracial,
	SubgroupMale, SubgroupFemale,
	SubgroupSpecialEd, SubgroupLEP, SubgroupEconDisadv,
}

// EnrollmentRow is the standardized wide enrollment schema: one row per
// (end_year, level, entity). It is the authoritative shape every enrollment
// processor produces and every exporter and pivot consumes.
//
// Count cells are NULL when the source suppressed the value or did not
// collect it that era, never zero. Identifier fields are NULL above the
// level they describe: district fields at State level, campus fields above
// Campus level.
type EnrollmentRow struct {
	EndYear      int        `json:"end_year" csv:"end_year"`
	Level        Level      `json:"type" csv:"type"`
	DistrictID   NullString `json:"district_id" csv:"district_id"`
	CampusID     NullString `json:"campus_id" csv:"campus_id"`
	DistrictName NullString `json:"district_name" csv:"district_name"`
	CampusName   NullString `json:"campus_name" csv:"campus_name"`
	County       NullString `json:"county" csv:"county"`
	Region       NullString `json:"region" csv:"region"`

	// CharterFlag is exactly "Y" or "N" when known, NULL otherwise, and
	// only meaningful at Campus level.
	CharterFlag NullString `json:"charter_flag" csv:"charter_flag"`

	RowTotal NullInt `json:"row_total" csv:"row_total"`

	White           NullInt `json:"white" csv:"white"`
	Black           NullInt `json:"black" csv:"black"`
	Hispanic        NullInt `json:"hispanic" csv:"hispanic"`
	Asian           NullInt `json:"asian" csv:"asian"`
	NativeAmerican  NullInt `json:"native_american" csv:"native_american"`
	PacificIslander NullInt `json:"pacific_islander" csv:"pacific_islander"`
	Multiracial     NullInt `json:"multiracial" csv:"multiracial"`

	Male   NullInt `json:"male" csv:"male"`
	Female NullInt `json:"female" csv:"female"`

	SpecialEd  NullInt `json:"special_ed" csv:"special_ed"`
	LEP        NullInt `json:"lep" csv:"lep"`
	EconDisadv NullInt `json:"econ_disadv" csv:"econ_disadv"`

	GradePK NullInt `json:"grade_pk" csv:"grade_pk"`
	GradeK  NullInt `json:"grade_k" csv:"grade_k"`
	Grade01 NullInt `json:"grade_01" csv:"grade_01"`
	Grade02 NullInt `json:"grade_02" csv:"grade_02"`
	Grade03 NullInt `json:"grade_03" csv:"grade_03"`
	Grade04 NullInt `json:"grade_04" csv:"grade_04"`
	Grade05 NullInt `json:"grade_05" csv:"grade_05"`
	Grade06 NullInt `json:"grade_06" csv:"grade_06"`
	Grade07 NullInt `json:"grade_07" csv:"grade_07"`
	Grade08 NullInt `json:"grade_08" csv:"grade_08"`
	Grade09 NullInt `json:"grade_09" csv:"grade_09"`
	Grade10 NullInt `json:"grade_10" csv:"grade_10"`
	Grade11 NullInt `json:"grade_11" csv:"grade_11"`
	Grade12 NullInt `json:"grade_12" csv:"grade_12"`
}

// GradeCell pairs a tidy grade code with its reported count.
type GradeCell struct {
	Grade string
	N     NullInt
}

// SubgroupCell pairs a subgroup code with its reported count.
type SubgroupCell struct {
	Subgroup string
	N        NullInt
}

// GradeCells returns the 14 reported grade counts in pivot order. The row
// total is not included; it pivots separately under grade_level TOTAL.
func (r *EnrollmentRow) GradeCells() []GradeCell {
	return []GradeCell{
		{GradePK, r.GradePK},
		{GradeK, r.GradeK},
		{"01", r.Grade01},
		{"02", r.Grade02},
		{"03", r.Grade03},
		{"04", r.Grade04},
		{"05", r.Grade05},
		{"06", r.Grade06},
		{"07", r.Grade07},
		{"08", r.Grade08},
		{"09", r.Grade09},
		{"10", r.Grade10},
		{"11", r.Grade11},
		{"12", r.Grade12},
	}
}

// SubgroupCells returns the 12 demographic, gender, and special-population
// counts in tidy emission order. These exist only at grade_level TOTAL; the
// source has no per-grade demographic breakdown.
func (r *EnrollmentRow) SubgroupCells() []SubgroupCell {
	return []SubgroupCell{
		{SubgroupWhite, r.White},
		{SubgroupBlack, r.Black},
		{SubgroupHispanic, r.Hispanic},
		{SubgroupAsian, r.Asian},
		{SubgroupNativeAmerican, r.NativeAmerican},
		{SubgroupPacificIslander, r.PacificIslander},
		{SubgroupMultiracial, r.Multiracial},
		{SubgroupMale, r.Male},
		{SubgroupFemale, r.Female},
		{SubgroupSpecialEd, r.SpecialEd},
		{SubgroupLEP, r.LEP},
		{SubgroupEconDisadv, r.EconDisadv},
	}
}

// TidyRow is one long-form enrollment observation: (end_year, entity,
// grade_level, subgroup). A row exists only when the source reported the
// cell; suppressed or uncollected cells yield no row at all, so "row
// present" means "value reported".
type TidyRow struct {
	EndYear      int        `json:"end_year" csv:"end_year"`
	DistrictID   NullString `json:"district_id" csv:"district_id"`
	CampusID     NullString `json:"campus_id" csv:"campus_id"`
	DistrictName NullString `json:"district_name" csv:"district_name"`
	CampusName   NullString `json:"campus_name" csv:"campus_name"`
	County       NullString `json:"county" csv:"county"`
	Region       NullString `json:"region" csv:"region"`

	GradeLevel string `json:"grade_level" csv:"grade_level"`
	Subgroup   string `json:"subgroup" csv:"subgroup"`

	NStudents int64 `json:"n_students" csv:"n_students"`

	// Pct is the share of the entity's row_total. NULL when the total was
	// suppressed, and always NULL on derived grade bands.
	Pct NullFloat `json:"pct" csv:"pct"`

	IsState    bool `json:"is_state" csv:"is_state"`
	IsDistrict bool `json:"is_district" csv:"is_district"`
	IsCampus   bool `json:"is_campus" csv:"is_campus"`
	IsCharter  bool `json:"is_charter" csv:"is_charter"`

	AggregationFlag string `json:"aggregation_flag" csv:"aggregation_flag"`
}
