package enrollment

import (
	"strings"

	"ncschooldata/internal/normalize"
	"ncschooldata/internal/rawtable"
	"ncschooldata/pkg/contracts/domain"
)

// Column vocabularies. Each semantic field lists the header names it has
// carried across publication eras, most specific first: state-native code
// columns outrank federal ones, which outrank generic aliases. New eras
// extend by appending entries, never by editing processor logic.

var countColumns = map[string][]string{
	"row_total": {"Total", "Total Students", "ADM", "Grand Total", "PK-12 Total"},

	"white":            {"White", "WH", "White Students"},
	"black":            {"Black", "BL", "Black Students", "African American"},
	"hispanic":         {"Hispanic", "HI", "Hispanic Students"},
	"asian":            {"Asian", "AS", "Asian Students"},
	"native_american":  {"American Indian", "AM", "Native American"},
	"pacific_islander": {"Pacific Islander", "PI", "Native Hawaiian or Pacific Islander"},
	"multiracial":      {"Two or More Races", "MU", "Multi-Racial", "Two or More"},

	"male":   {"Male", "M"},
	"female": {"Female", "F"},

	"special_ed":  {"Students with Disabilities", "SWD", "Special Education", "EC"},
	"lep":         {"English Learners", "EL", "LEP", "Limited English Proficient"},
	"econ_disadv": {"Economically Disadvantaged", "EDS", "Free and Reduced Lunch"},

	"grade_pk": {"PK", "Pre-K", "PreK", "Pre-Kindergarten"},
	"grade_k":  {"K", "KG", "Kindergarten"},
	"grade_01": {"01", "1", "Grade 01", "Grade 1"},
	"grade_02": {"02", "2", "Grade 02", "Grade 2"},
	"grade_03": {"03", "3", "Grade 03", "Grade 3"},
	"grade_04": {"04", "4", "Grade 04", "Grade 4"},
	"grade_05": {"05", "5", "Grade 05", "Grade 5"},
	"grade_06": {"06", "6", "Grade 06", "Grade 6"},
	"grade_07": {"07", "7", "Grade 07", "Grade 7"},
	"grade_08": {"08", "8", "Grade 08", "Grade 8"},
	"grade_09": {"09", "9", "Grade 09", "Grade 9"},
	"grade_10": {"10", "Grade 10"},
	"grade_11": {"11", "Grade 11"},
	"grade_12": {"12", "Grade 12"},
}

var districtIdentityColumns = map[string][]string{
	"district_code": {"LEA Code", "LEA ID", "State LEA ID", "Federal LEA ID", "District Code", "LEA"},
	"district_name": {"LEA Name", "District Name", "LEA"},
	"county":        {"County", "County Name"},
	"region":        {"Region", "SBE Region", "SBE District"},
}

var schoolIdentityColumns = map[string][]string{
	"school_code":   {"School Code", "State School ID", "Federal School ID", "Sch Code", "Agency Code"},
	"school_name":   {"School Name", "Sch Name", "School"},
	"district_code": {"LEA Code", "LEA ID", "State LEA ID", "District Code"},
	"district_name": {"LEA Name", "District Name"},
	"county":        {"County", "County Name"},
	"region":        {"Region", "SBE Region", "SBE District"},
	"charter":       {"Charter", "Charter Status", "Charter School", "Charter Flag"},
}

// resolveColumns maps every field of the given vocabularies to a column
// index in the table, -1 when no candidate matched. Unmatched fields are
// soft-missing: their cells read as empty and parse to NULL downstream.
func resolveColumns(t *rawtable.Table, vocabularies ...map[string][]string) map[string]int {
	cols := make(map[string]int)
	for _, vocab := range vocabularies {
		for field, candidates := range vocab {
			cols[field] = t.Resolve(candidates...)
		}
	}
	return cols
}

// Charter indicators seen across eras, compared case-insensitively after
// whitespace cleanup. Anything outside both sets is NULL, not a guess.
var charterYes = map[string]struct{}{
	"Y": {}, "YES": {}, "1": {}, "TRUE": {}, "CHARTER": {},
}

var charterNo = map[string]struct{}{
	"N": {}, "NO": {}, "0": {}, "FALSE": {}, "NOT A CHARTER": {},
}

func normalizeCharter(raw string) domain.NullString {
	s := strings.ToUpper(normalize.CleanName(raw))
	if _, ok := charterYes[s]; ok {
		return domain.StringFrom("Y")
	}
	if _, ok := charterNo[s]; ok {
		return domain.StringFrom("N")
	}
	return domain.NullString{}
}
