package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncschooldata/pkg/contracts/domain"
)

func TestSafeNumeric_SuppressionMarkers(t *testing.T) {
	markers := []string{"*", ".", "-", "-1", "<5", "<10", ">95", "N/A", "NA", "", "null"}

	for _, marker := range markers {
		t.Run("marker "+marker, func(t *testing.T) {
			got := SafeNumeric(marker)
			assert.False(t, got.Valid, "marker %q must map to NULL", marker)
		})
	}
}

func TestSafeNumeric_Values(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.NullFloat
	}{
		{
			name: "plain integer",
			raw:  "42",
			want: domain.FloatFrom(42),
		},
		{
			name: "thousands separator stripped",
			raw:  "1,234",
			want: domain.FloatFrom(1234),
		},
		{
			name: "multiple separators",
			raw:  "1,234,567",
			want: domain.FloatFrom(1234567),
		},
		{
			name: "surrounding whitespace ignored",
			raw:  "  98.6  ",
			want: domain.FloatFrom(98.6),
		},
		{
			name: "negative value other than -1 parses",
			raw:  "-2",
			want: domain.FloatFrom(-2),
		},
		{
			name: "decimal",
			raw:  "31.6",
			want: domain.FloatFrom(31.6),
		},
		{
			name: "unparsable residue is NULL not an error",
			raw:  "about 40",
			want: domain.NullFloat{},
		},
		{
			name: "uppercase NULL is not a marker and fails to parse",
			raw:  "NULL",
			want: domain.NullFloat{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeNumeric(tt.raw))
		})
	}
}

func TestSafeNumeric_MarkerCasingIsLiteral(t *testing.T) {
	// The source vocabulary is asymmetric on purpose: lowercase "null" and
	// uppercase "NA"/"N/A" suppress, their case-flipped twins do not.
	assert.True(t, IsSuppressionMarker("null"))
	assert.True(t, IsSuppressionMarker("NA"))
	assert.True(t, IsSuppressionMarker("N/A"))

	assert.False(t, IsSuppressionMarker("Null"))
	assert.False(t, IsSuppressionMarker("NULL"))
	assert.False(t, IsSuppressionMarker("na"))
	assert.False(t, IsSuppressionMarker("n/a"))
}

func TestSafeNumericAll(t *testing.T) {
	raw := []string{"1,234", "*", "50", "<5", "2.5"}

	got := SafeNumericAll(raw)
	require.Len(t, got, len(raw))

	assert.Equal(t, domain.FloatFrom(1234), got[0])
	assert.False(t, got[1].Valid)
	assert.Equal(t, domain.FloatFrom(50), got[2])
	assert.False(t, got[3].Valid)
	assert.Equal(t, domain.FloatFrom(2.5), got[4])
}

func TestSafeNumericAll_Empty(t *testing.T) {
	assert.Empty(t, SafeNumericAll(nil))
	assert.Empty(t, SafeNumericAll([]string{}))
}

func TestSafeCount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.NullInt
	}{
		{
			name: "whole count",
			raw:  "159,675",
			want: domain.IntFrom(159675),
		},
		{
			name: "fractional ADM rounds to nearest",
			raw:  "812.5",
			want: domain.IntFrom(813),
		},
		{
			name: "rounds down below half",
			raw:  "812.4",
			want: domain.IntFrom(812),
		},
		{
			name: "suppressed",
			raw:  "*",
			want: domain.NullInt{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeCount(tt.raw))
		})
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "trims and collapses",
			raw:  "  Wake   County  ",
			want: "Wake County",
		},
		{
			name: "tabs and newlines collapse too",
			raw:  "Charlotte-Mecklenburg\n\tSchools",
			want: "Charlotte-Mecklenburg Schools",
		},
		{
			name: "casing preserved",
			raw:  " CHARTER school ",
			want: "CHARTER school",
		},
		{
			name: "whitespace only becomes empty",
			raw:  "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanName(tt.raw))
		})
	}
}

func TestTextCell(t *testing.T) {
	assert.Equal(t, domain.StringFrom("Wake County"), TextCell("  Wake   County "))
	assert.False(t, TextCell("   ").Valid)
	assert.False(t, TextCell("").Valid)
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "9195551234", Digits("(919) 555-1234"))
	assert.Equal(t, "", Digits("ext."))
}

func TestZipChars(t *testing.T) {
	assert.Equal(t, "27601", ZipChars("27601 "))
	assert.Equal(t, "27601-1234", ZipChars("27601-1234"))
	assert.Equal(t, "27601", ZipChars("NC 27601"))
}
