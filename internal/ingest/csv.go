package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	apperrors "ncschooldata/internal/errors"
	"ncschooldata/internal/rawtable"
)

// ReadCSV reads a CSV file into a raw table. The first record is the header;
// machine-exported CSV sources do not carry title lines the way workbooks
// do.
func ReadCSV(path string) (*rawtable.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open csv "+path, err)
	}
	defer f.Close()

	t, err := ReadCSVFrom(f)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to parse csv "+path, err)
	}
	return t, nil
}

// ReadCSVFrom reads CSV records from r into a raw table. Ragged records are
// tolerated; empty input yields an empty table.
func ReadCSVFrom(r io.Reader) (*rawtable.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return rawtable.New(nil), nil
	}
	if err != nil {
		return nil, err
	}

	columns := make([]string, len(header))
	for i, cell := range header {
		columns[i] = strings.TrimSpace(cell)
	}

	t := rawtable.New(columns)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if blankRow(record) {
			continue
		}
		t.Append(record)
	}
	return t, nil
}
