package exporter

import (
	"fmt"

	"ncschooldata/internal/config"
	"ncschooldata/pkg/contracts/domain"
)

// EnrollmentExporter handles enrollment report generation.
type EnrollmentExporter struct {
	csvWriter *CSVWriter
}

// NewEnrollmentExporter creates a new enrollment report exporter.
func NewEnrollmentExporter(paths *config.Paths) *EnrollmentExporter {
	return &EnrollmentExporter{
		csvWriter: NewCSVWriter(paths),
	}
}

// ExportWide writes standardized wide rows to a CSV file in the output
// directory. Row order is preserved: state, districts, schools.
func (e *EnrollmentExporter) ExportWide(rows []domain.EnrollmentRow, filename string) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, WideRecord(row))
	}

	if err := e.csvWriter.WriteSimpleCSV(filename, WideHeaders(), records); err != nil {
		return fmt.Errorf("failed to write wide enrollment file: %w", err)
	}
	return nil
}

// ExportTidy writes tidy rows to a CSV file in the output directory.
func (e *EnrollmentExporter) ExportTidy(rows []domain.TidyRow, filename string) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, TidyRecord(row))
	}

	if err := e.csvWriter.WriteSimpleCSV(filename, TidyHeaders(), records); err != nil {
		return fmt.Errorf("failed to write tidy enrollment file: %w", err)
	}
	return nil
}
