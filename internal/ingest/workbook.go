// Package ingest reads published source files into raw tables. It makes no
// attempt to understand the data: sheet and header discovery are layout
// concerns, and everything below the header row passes through as strings
// for the processors to interpret.
package ingest

import (
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "ncschooldata/internal/errors"
	"ncschooldata/internal/rawtable"
)

// headerScanLimit bounds how far down a sheet the header search looks.
// Published workbooks put at most a few title and note lines above the data.
const headerScanLimit = 10

// ReadWorkbook reads one sheet of an Excel workbook into a raw table. An
// empty sheet name selects the workbook's first sheet. Title lines above the
// header are skipped via header discovery.
func ReadWorkbook(path, sheet string) (*rawtable.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open workbook "+path, err)
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, apperrors.NewParsingError("workbook has no sheets: "+path, nil)
		}
		sheet = list[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read sheet "+sheet, err)
	}

	return tableFromRows(rows), nil
}

// ReadWorkbookSheets reads every sheet of a workbook, keyed by sheet name.
// Sheets without a detectable header produce empty tables rather than
// errors; directory workbooks routinely carry blank or note-only sheets.
func ReadWorkbookSheets(path string) (map[string]*rawtable.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open workbook "+path, err)
	}
	defer f.Close()

	tables := make(map[string]*rawtable.Table)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			slog.Warn("skipping unreadable sheet", "sheet", sheet, "error", err)
			continue
		}
		tables[sheet] = tableFromRows(rows)
	}
	return tables, nil
}

// tableFromRows locates the header row and builds a table from everything
// below it. Fully blank rows are dropped; ragged rows are kept as-is, since
// cell access is bounds-safe.
func tableFromRows(rows [][]string) *rawtable.Table {
	header := findHeaderRow(rows)
	if header < 0 {
		return rawtable.New(nil)
	}

	columns := make([]string, len(rows[header]))
	for i, cell := range rows[header] {
		columns[i] = strings.TrimSpace(cell)
	}

	t := rawtable.New(columns)
	for _, row := range rows[header+1:] {
		if blankRow(row) {
			continue
		}
		t.Append(row)
	}
	return t
}

// findHeaderRow returns the first row within the scan window holding at
// least two non-blank cells, or -1 when nothing qualifies. Title lines hold
// a single merged cell and fail the test.
func findHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for i := 0; i < limit; i++ {
		filled := 0
		for _, cell := range rows[i] {
			if strings.TrimSpace(cell) != "" {
				filled++
			}
		}
		if filled >= 2 {
			return i
		}
	}
	return -1
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
