package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncschooldata/internal/rawtable"
	"ncschooldata/pkg/contracts/domain"
)

func listingTable(header []string, rows ...[]string) *rawtable.Table {
	t := rawtable.New(header)
	for _, r := range rows {
		t.Append(r)
	}
	return t
}

func TestProcess(t *testing.T) {
	sources := map[string]*rawtable.Table{
		"public_schools": listingTable(
			[]string{"School Name", "Address", "City", "State", "Zip", "Phone", "County", "LEA Name", "Principal", "Email"},
			[]string{"  Athens  Drive High ", "1420 Athens Dr", "Raleigh", "North Carolina", "27606-5399", "(919) 233-4050", "Wake", "Wake County Schools", "J. Doe", "jdoe@wcpss.net"},
		),
	}

	rows := Process(sources)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "public_schools", r.DirectoryType)
	assert.Equal(t, "Athens Drive High", r.SchoolName)
	assert.Equal(t, domain.StringFrom("1420 Athens Dr"), r.Address)
	assert.Equal(t, domain.StringFrom("Raleigh"), r.City)
	assert.Equal(t, "NC", r.State)
	assert.Equal(t, domain.StringFrom("27606-5399"), r.Zip)
	assert.Equal(t, domain.StringFrom("9192334050"), r.Phone)
	assert.Equal(t, domain.StringFrom("Wake"), r.County)
	assert.Equal(t, domain.StringFrom("Wake County Schools"), r.DistrictName)
	assert.Equal(t, domain.StringFrom("J. Doe"), r.Principal)
	assert.Equal(t, domain.StringFrom("jdoe@wcpss.net"), r.Email)
}

func TestProcess_DropsUnusableNames(t *testing.T) {
	sources := map[string]*rawtable.Table{
		"public_schools": listingTable(
			[]string{"School Name", "City"},
			[]string{"", "Raleigh"},
			[]string{"   ", "Durham"},
			[]string{".", "Charlotte"},
			[]string{"Athens Drive High", "Raleigh"},
		),
	}

	rows := Process(sources)
	require.Len(t, rows, 1)
	assert.Equal(t, "Athens Drive High", rows[0].SchoolName)
}

func TestProcess_WrappedHeaders(t *testing.T) {
	sources := map[string]*rawtable.Table{
		"charter_schools": listingTable(
			[]string{"School\nName", "Zip\nCode", "Phone\nNumber"},
			[]string{"Cape Fear Charter Academy", "28401", "910-772-7777"},
		),
	}

	rows := Process(sources)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cape Fear Charter Academy", rows[0].SchoolName)
	assert.Equal(t, domain.StringFrom("28401"), rows[0].Zip)
	assert.Equal(t, domain.StringFrom("9107727777"), rows[0].Phone)
}

func TestProcess_CategoryOrderIsStable(t *testing.T) {
	sources := map[string]*rawtable.Table{
		"public_schools": listingTable(
			[]string{"School Name"},
			[]string{"Athens Drive High"},
		),
		"charter_schools": listingTable(
			[]string{"School Name"},
			[]string{"Cape Fear Charter Academy"},
		),
	}

	rows := Process(sources)
	require.Len(t, rows, 2)
	assert.Equal(t, "charter_schools", rows[0].DirectoryType)
	assert.Equal(t, "public_schools", rows[1].DirectoryType)
}

func TestProcess_MissingColumnsStayNull(t *testing.T) {
	sources := map[string]*rawtable.Table{
		"public_schools": listingTable(
			[]string{"School Name"},
			[]string{"Athens Drive High"},
		),
	}

	rows := Process(sources)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.False(t, r.Address.Valid)
	assert.False(t, r.Zip.Valid)
	assert.False(t, r.Phone.Valid)
	assert.False(t, r.Email.Valid)
	assert.Equal(t, "NC", r.State)
}

func TestProcess_EmptyInput(t *testing.T) {
	assert.Empty(t, Process(nil))
	assert.Empty(t, Process(map[string]*rawtable.Table{"empty": nil}))
}
