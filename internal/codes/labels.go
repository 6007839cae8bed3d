package codes

// The label tables are data, not logic: new codes extend by appending an
// entry. Lookups never fail; an unknown code is its own label, which keeps
// unrecognized source values visible instead of silently dropped.

var standardLabels = map[string]string{
	"CCR": "College and Career Ready",
	"GLP": "Grade Level Proficient",
}

var subjectLabels = map[string]string{
	"ALL": "All Subjects",
	"RD":  "Reading",
	"MA":  "Mathematics",
	"SC":  "Science",
	"BI":  "Biology",
	"E2":  "English II",
	"M1":  "NC Math 1",
	"M3":  "NC Math 3",
}

var gradeLabels = map[string]string{
	"ALL": "All Grades",
	"3-8": "Grades 3-8",
	"EOC": "End of Course",
	"03":  "Grade 3",
	"04":  "Grade 4",
	"05":  "Grade 5",
	"06":  "Grade 6",
	"07":  "Grade 7",
	"08":  "Grade 8",
}

var subgroupLabels = map[string]string{
	"ALL":    "All Students",
	"WH7":    "White",
	"BL7":    "Black",
	"HI7":    "Hispanic",
	"AS7":    "Asian",
	"AM7":    "American Indian",
	"PI7":    "Pacific Islander",
	"MU7":    "Two or More Races",
	"MALE":   "Male",
	"FEMALE": "Female",
	"EDS":    "Economically Disadvantaged",
	"ELS":    "English Learners",
	"SWD":    "Students With Disabilities",
	"AIG":    "Academically or Intellectually Gifted",
}

func lookup(table map[string]string, code string) string {
	if label, ok := table[code]; ok {
		return label
	}
	return code
}

// LookupStandard returns the display label for a proficiency-standard code.
func LookupStandard(code string) string {
	return lookup(standardLabels, code)
}

// LookupSubject returns the display label for a subject code.
func LookupSubject(code string) string {
	return lookup(subjectLabels, code)
}

// LookupGrade returns the display label for an assessment grade code.
func LookupGrade(code string) string {
	return lookup(gradeLabels, code)
}

// LookupSubgroup returns the display label for a subgroup code.
func LookupSubgroup(code string) string {
	return lookup(subgroupLabels, code)
}
