package exporter

import (
	"bytes"
	"encoding/csv"

	"ncschooldata/pkg/contracts/domain"
)

// Header and record conversion for every exported schema. Column order is
// part of the output contract and mirrors the csv tags on the domain
// structs; change one only with the other.

// WideHeaders returns the column order of the standardized wide schema.
func WideHeaders() []string {
	return []string{
		"end_year", "type",
		"district_id", "campus_id", "district_name", "campus_name",
		"county", "region", "charter_flag",
		"row_total",
		"white", "black", "hispanic", "asian",
		"native_american", "pacific_islander", "multiracial",
		"male", "female",
		"special_ed", "lep", "econ_disadv",
		"grade_pk", "grade_k",
		"grade_01", "grade_02", "grade_03", "grade_04", "grade_05",
		"grade_06", "grade_07", "grade_08", "grade_09", "grade_10",
		"grade_11", "grade_12",
	}
}

// WideRecord converts one wide enrollment row to CSV fields.
func WideRecord(r domain.EnrollmentRow) []string {
	return []string{
		formatInt(int64(r.EndYear)), string(r.Level),
		formatNullString(r.DistrictID), formatNullString(r.CampusID),
		formatNullString(r.DistrictName), formatNullString(r.CampusName),
		formatNullString(r.County), formatNullString(r.Region),
		formatNullString(r.CharterFlag),
		formatNullInt(r.RowTotal),
		formatNullInt(r.White), formatNullInt(r.Black),
		formatNullInt(r.Hispanic), formatNullInt(r.Asian),
		formatNullInt(r.NativeAmerican), formatNullInt(r.PacificIslander),
		formatNullInt(r.Multiracial),
		formatNullInt(r.Male), formatNullInt(r.Female),
		formatNullInt(r.SpecialEd), formatNullInt(r.LEP),
		formatNullInt(r.EconDisadv),
		formatNullInt(r.GradePK), formatNullInt(r.GradeK),
		formatNullInt(r.Grade01), formatNullInt(r.Grade02),
		formatNullInt(r.Grade03), formatNullInt(r.Grade04),
		formatNullInt(r.Grade05), formatNullInt(r.Grade06),
		formatNullInt(r.Grade07), formatNullInt(r.Grade08),
		formatNullInt(r.Grade09), formatNullInt(r.Grade10),
		formatNullInt(r.Grade11), formatNullInt(r.Grade12),
	}
}

// TidyHeaders returns the column order of the tidy schema.
func TidyHeaders() []string {
	return []string{
		"end_year",
		"district_id", "campus_id", "district_name", "campus_name",
		"county", "region",
		"grade_level", "subgroup",
		"n_students", "pct",
		"is_state", "is_district", "is_campus", "is_charter",
		"aggregation_flag",
	}
}

// TidyRecord converts one tidy enrollment row to CSV fields.
func TidyRecord(r domain.TidyRow) []string {
	return []string{
		formatInt(int64(r.EndYear)),
		formatNullString(r.DistrictID), formatNullString(r.CampusID),
		formatNullString(r.DistrictName), formatNullString(r.CampusName),
		formatNullString(r.County), formatNullString(r.Region),
		r.GradeLevel, r.Subgroup,
		formatInt(r.NStudents), formatNullFloat(r.Pct),
		formatBool(r.IsState), formatBool(r.IsDistrict),
		formatBool(r.IsCampus), formatBool(r.IsCharter),
		r.AggregationFlag,
	}
}

// AssessmentHeaders returns the column order of the assessment schema.
func AssessmentHeaders() []string {
	return []string{
		"end_year", "agency_code", "district_id", "school_id", "level",
		"standard", "standard_label",
		"subject", "subject_label",
		"grade", "grade_label",
		"subgroup", "subgroup_label",
		"n_tested", "pct_proficient", "n_proficient",
		"masking", "is_suppressed", "suppression_reason",
	}
}

// AssessmentRecord converts one assessment row to CSV fields.
func AssessmentRecord(r domain.AssessmentRow) []string {
	return []string{
		formatInt(int64(r.EndYear)), r.AgencyCode,
		formatNullString(r.DistrictID), formatNullString(r.SchoolID),
		string(r.Level),
		r.Standard, r.StandardLabel,
		r.Subject, r.SubjectLabel,
		r.Grade, r.GradeLabel,
		r.Subgroup, r.SubgroupLabel,
		formatNullInt(r.NTested), formatNullFloat(r.PctProficient),
		formatNullInt(r.NProficient),
		formatNullString(r.Masking), formatBool(r.IsSuppressed),
		formatNullString(r.SuppressionReason),
	}
}

// GapHeaders returns the column order of the proficiency-gap schema.
func GapHeaders() []string {
	return []string{
		"end_year", "agency_code", "district_id", "school_id", "level",
		"standard", "subject", "grade",
		"group_a", "group_b", "pct_a", "pct_b", "gap",
	}
}

// GapRecord converts one gap row to CSV fields.
func GapRecord(r domain.GapRow) []string {
	return []string{
		formatInt(int64(r.EndYear)), r.AgencyCode,
		formatNullString(r.DistrictID), formatNullString(r.SchoolID),
		string(r.Level),
		r.Standard, r.Subject, r.Grade,
		r.GroupA, r.GroupB,
		formatFloat(r.PctA), formatFloat(r.PctB), formatFloat(r.Gap),
	}
}

// DirectoryHeaders returns the column order of the directory schema.
func DirectoryHeaders() []string {
	return []string{
		"directory_type", "school_name",
		"address", "city", "state", "zip", "phone",
		"county", "district_name", "principal", "email",
	}
}

// DirectoryRecord converts one directory row to CSV fields.
func DirectoryRecord(r domain.DirectoryRow) []string {
	return []string{
		r.DirectoryType, r.SchoolName,
		formatNullString(r.Address), formatNullString(r.City),
		r.State,
		formatNullString(r.Zip), formatNullString(r.Phone),
		formatNullString(r.County), formatNullString(r.DistrictName),
		formatNullString(r.Principal), formatNullString(r.Email),
	}
}

// EncodeCSV serializes headers and records to CSV bytes without touching
// disk. Snapshot stores persist these bytes directly.
func EncodeCSV(headers []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if len(headers) > 0 {
		if err := writer.Write(headers); err != nil {
			return nil, err
		}
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
