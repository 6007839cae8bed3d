package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ncschooldata/internal/errors"
)

func TestReadCSVFrom(t *testing.T) {
	input := "LEA Code,LEA Name,Total\n920,Wake County Schools,159675\n600,Guilford County Schools,140415\n"

	table, err := ReadCSVFrom(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"LEA Code", "LEA Name", "Total"}, table.Columns)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "159675", table.Value(0, table.Resolve("Total")))
}

func TestReadCSVFrom_RaggedRows(t *testing.T) {
	input := "LEA Code,LEA Name,Total\n920,Wake County Schools\n"

	table, err := ReadCSVFrom(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	// The missing trailing cell reads as empty.
	assert.Equal(t, "", table.Value(0, table.Resolve("Total")))
}

func TestReadCSVFrom_BlankRecordsDropped(t *testing.T) {
	input := "LEA Code,Total\n920,159675\n,\n  ,  \n"

	table, err := ReadCSVFrom(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestReadCSVFrom_EmptyInput(t *testing.T) {
	table, err := ReadCSVFrom(strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, table.IsEmpty())
}

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adm.csv")
	require.NoError(t, os.WriteFile(path, []byte("LEA Code,Total\n920,159675\n"), 0o644))

	table, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrTypeStorage, appErr.Type)
}
