package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "ncschooldata/internal/errors"
	"ncschooldata/internal/infrastructure"
	"ncschooldata/internal/ingest"
	"ncschooldata/internal/rawtable"
	"ncschooldata/internal/validation"
)

// FileSource reads raw tables from a directory of previously downloaded
// files. The expected layout is
//
//	<dir>/enrollment/district_<year>.xlsx
//	<dir>/enrollment/school_<year>.xlsx
//	<dir>/assessment/<year>.xlsx
//	<dir>/directory.xlsx            (one sheet per category)
//	<dir>/directory/<category>.csv  (fallback when no workbook exists)
//
// Every dataset file may be .xlsx or .csv; the workbook is tried first.
type FileSource struct {
	dir       string
	logger    *slog.Logger
	validator *validation.FileValidator
}

// NewFileSource creates a source rooted at dir.
func NewFileSource(dir string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	logger = infrastructure.WithComponent(logger, "file_source")
	return &FileSource{
		dir:       dir,
		logger:    logger,
		validator: validation.NewFileValidator(logger),
	}
}

// DistrictEnrollment reads the district enrollment table for a year.
func (f *FileSource) DistrictEnrollment(ctx context.Context, year int) (*rawtable.Table, error) {
	return f.table(filepath.Join("enrollment", fmt.Sprintf("district_%d", year)))
}

// SchoolEnrollment reads the school enrollment table for a year.
func (f *FileSource) SchoolEnrollment(ctx context.Context, year int) (*rawtable.Table, error) {
	return f.table(filepath.Join("enrollment", fmt.Sprintf("school_%d", year)))
}

// Assessment reads the accountability results table for a year.
func (f *FileSource) Assessment(ctx context.Context, year int) (*rawtable.Table, error) {
	return f.table(filepath.Join("assessment", strconv.Itoa(year)))
}

// Directory reads the school directory. A directory.xlsx workbook maps one
// sheet per category; failing that, every CSV under directory/ becomes a
// category named after the file.
func (f *FileSource) Directory(ctx context.Context) (map[string]*rawtable.Table, error) {
	workbook := filepath.Join(f.dir, "directory.xlsx")
	if _, err := os.Stat(workbook); err == nil {
		verr := f.validator.ValidateWorkbookFile(workbook)
		if verr == nil {
			return ingest.ReadWorkbookSheets(workbook)
		}
		f.logger.Warn("directory workbook unusable, trying folder",
			slog.String("error", verr.Error()))
	}

	folder := filepath.Join(f.dir, "directory")
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, apperrors.NewStorageError(
			fmt.Sprintf("no directory workbook or folder under %s", f.dir), err)
	}

	sources := make(map[string]*rawtable.Table)
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}

		path := filepath.Join(folder, entry.Name())
		if err := f.validator.ValidateCSVFile(path); err != nil {
			f.logger.Warn("skipping invalid directory file",
				slog.String("file", entry.Name()),
				slog.String("error", err.Error()))
			continue
		}

		category := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		table, err := ingest.ReadCSV(path)
		if err != nil {
			f.logger.Warn("skipping unreadable directory file",
				slog.String("file", entry.Name()),
				slog.String("error", err.Error()))
			continue
		}
		sources[category] = table
	}

	if len(sources) == 0 {
		return nil, apperrors.NewStorageError(
			fmt.Sprintf("no directory listings under %s", folder), nil)
	}
	return sources, nil
}

// table reads relBase with the workbook extension first, then CSV. An
// unusable workbook (a lock file, an unreadable path) falls through to the
// CSV rather than failing the fetch.
func (f *FileSource) table(relBase string) (*rawtable.Table, error) {
	workbook := filepath.Join(f.dir, relBase+".xlsx")
	if _, err := os.Stat(workbook); err == nil {
		verr := f.validator.ValidateWorkbookFile(workbook)
		if verr == nil {
			return ingest.ReadWorkbook(workbook, "")
		}
		f.logger.Warn("workbook unusable, trying csv",
			slog.String("file", relBase+".xlsx"),
			slog.String("error", verr.Error()))
	}

	csvPath := filepath.Join(f.dir, relBase+".csv")
	if _, err := os.Stat(csvPath); err == nil {
		if verr := f.validator.ValidateCSVFile(csvPath); verr != nil {
			return nil, apperrors.NewStorageError(
				fmt.Sprintf("source file %s is unusable", relBase+".csv"), verr)
		}
		return ingest.ReadCSV(csvPath)
	}

	return nil, apperrors.NewStorageError(
		fmt.Sprintf("no source file for %s under %s", relBase, f.dir), os.ErrNotExist)
}
