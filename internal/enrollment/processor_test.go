package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncschooldata/internal/rawtable"
	"ncschooldata/pkg/contracts/domain"
)

func makeTable(header []string, rows ...[]string) *rawtable.Table {
	t := rawtable.New(header)
	for _, r := range rows {
		t.Append(r)
	}
	return t
}

func TestProcessDistrict(t *testing.T) {
	raw := makeTable(
		[]string{"LEA Code", "LEA Name", "County", "Total", "White", "Black", "K", "01"},
		[]string{"920", "  Wake   County  Schools ", "Wake", "159,675", "65,222", "*", "11200", "11562"},
		[]string{"600", "Guilford County Schools", "Guilford", "68584", "20155", "28000", "4800", "4900"},
	)

	rows := ProcessDistrict(raw, 2024)
	require.Len(t, rows, 2)

	wake := rows[0]
	assert.Equal(t, 2024, wake.EndYear)
	assert.Equal(t, domain.LevelDistrict, wake.Level)
	assert.Equal(t, domain.StringFrom("920"), wake.DistrictID)
	assert.Equal(t, domain.StringFrom("Wake County Schools"), wake.DistrictName)
	assert.Equal(t, domain.StringFrom("Wake"), wake.County)
	assert.Equal(t, domain.IntFrom(159675), wake.RowTotal)
	assert.Equal(t, domain.IntFrom(65222), wake.White)
	assert.False(t, wake.Black.Valid, "suppressed cell must be NULL")
	assert.Equal(t, domain.IntFrom(11200), wake.GradeK)
	assert.Equal(t, domain.IntFrom(11562), wake.Grade01)

	// District rows never carry campus fields.
	assert.False(t, wake.CampusID.Valid)
	assert.False(t, wake.CampusName.Valid)
	assert.False(t, wake.CharterFlag.Valid)
}

func TestProcessDistrict_EraVariantHeaders(t *testing.T) {
	// An older era: lowercase headers, federal LEA code, ADM total.
	raw := makeTable(
		[]string{"federal lea id", "district name", "adm"},
		[]string{"37920", "Wake County Schools", "159675"},
	)

	rows := ProcessDistrict(raw, 2010)
	require.Len(t, rows, 1)

	assert.Equal(t, domain.StringFrom("920"), rows[0].DistrictID)
	assert.Equal(t, domain.IntFrom(159675), rows[0].RowTotal)

	// Columns this era never published resolve to nothing and stay NULL.
	assert.False(t, rows[0].White.Valid)
	assert.False(t, rows[0].County.Valid)
}

func TestProcessDistrict_EmptyInput(t *testing.T) {
	assert.Empty(t, ProcessDistrict(nil, 2024))
	assert.Empty(t, ProcessDistrict(rawtable.New([]string{"LEA Code"}), 2024))
}

func TestProcessDistrict_SkipsBlankRows(t *testing.T) {
	raw := makeTable(
		[]string{"LEA Code", "LEA Name", "Total"},
		[]string{"920", "Wake County Schools", "159675"},
		[]string{"", "", ""},
		[]string{"   ", "", "  "},
	)

	rows := ProcessDistrict(raw, 2024)
	assert.Len(t, rows, 1)
}

func TestProcessSchool(t *testing.T) {
	raw := makeTable(
		[]string{"School Code", "School Name", "LEA Code", "Charter", "Total", "K"},
		[]string{"920302", "Athens Drive High", "920", "No", "2450", ""},
		[]string{"000301", "Cape Fear Charter Academy", "000", "Yes", "412", "38"},
	)

	rows := ProcessSchool(raw, 2024)
	require.Len(t, rows, 2)

	athens := rows[0]
	assert.Equal(t, domain.LevelCampus, athens.Level)
	assert.Equal(t, domain.StringFrom("920302"), athens.CampusID)
	assert.Equal(t, domain.StringFrom("920"), athens.DistrictID)
	assert.Equal(t, domain.StringFrom("Athens Drive High"), athens.CampusName)
	assert.Equal(t, domain.StringFrom("N"), athens.CharterFlag)
	assert.Equal(t, domain.IntFrom(2450), athens.RowTotal)
	assert.False(t, athens.GradeK.Valid)

	charter := rows[1]
	assert.Equal(t, domain.StringFrom("Y"), charter.CharterFlag)
	assert.Equal(t, domain.StringFrom("000301"), charter.CampusID)
}

func TestProcessSchool_DistrictFromCampusPrefix(t *testing.T) {
	// No district-code column at all: the campus code's first 3 characters
	// stand in.
	raw := makeTable(
		[]string{"School Code", "School Name", "Total"},
		[]string{"920302", "Athens Drive High", "2450"},
	)

	rows := ProcessSchool(raw, 2024)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.StringFrom("920"), rows[0].DistrictID)
}

func TestProcessSchool_UnderivableCampusLeavesDistrictNull(t *testing.T) {
	raw := makeTable(
		[]string{"School Code", "School Name", "Total"},
		[]string{"NOCODE", "Mystery School", "100"},
	)

	rows := ProcessSchool(raw, 2024)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].CampusID.Valid)
	assert.False(t, rows[0].DistrictID.Valid)
}

func TestProcessSchool_EmptyInput(t *testing.T) {
	assert.Empty(t, ProcessSchool(nil, 2024))
}

func TestNormalizeCharter(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.NullString
	}{
		{name: "single letter yes", raw: "Y", want: domain.StringFrom("Y")},
		{name: "word yes lowercase", raw: "yes", want: domain.StringFrom("Y")},
		{name: "numeric yes", raw: "1", want: domain.StringFrom("Y")},
		{name: "boolean yes", raw: "TRUE", want: domain.StringFrom("Y")},
		{name: "word charter", raw: "Charter", want: domain.StringFrom("Y")},
		{name: "single letter no", raw: "n", want: domain.StringFrom("N")},
		{name: "word no", raw: "NO", want: domain.StringFrom("N")},
		{name: "numeric no", raw: "0", want: domain.StringFrom("N")},
		{name: "boolean no", raw: "false", want: domain.StringFrom("N")},
		{name: "phrase not a charter", raw: "Not a  Charter", want: domain.StringFrom("N")},
		{name: "unknown text", raw: "maybe", want: domain.NullString{}},
		{name: "empty", raw: "", want: domain.NullString{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeCharter(tt.raw))
		})
	}
}
