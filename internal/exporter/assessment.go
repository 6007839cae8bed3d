package exporter

import (
	"fmt"

	"ncschooldata/internal/config"
	"ncschooldata/pkg/contracts/domain"
)

// AssessmentExporter handles assessment report generation.
type AssessmentExporter struct {
	csvWriter *CSVWriter
}

// NewAssessmentExporter creates a new assessment report exporter.
func NewAssessmentExporter(paths *config.Paths) *AssessmentExporter {
	return &AssessmentExporter{
		csvWriter: NewCSVWriter(paths),
	}
}

// ExportResults writes processed assessment rows to a CSV file in the
// output directory.
func (e *AssessmentExporter) ExportResults(rows []domain.AssessmentRow, filename string) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, AssessmentRecord(row))
	}

	if err := e.csvWriter.WriteSimpleCSV(filename, AssessmentHeaders(), records); err != nil {
		return fmt.Errorf("failed to write assessment file: %w", err)
	}
	return nil
}

// ExportGaps writes proficiency-gap rows to a CSV file in the output
// directory.
func (e *AssessmentExporter) ExportGaps(gaps []domain.GapRow, filename string) error {
	records := make([][]string, 0, len(gaps))
	for _, gap := range gaps {
		records = append(records, GapRecord(gap))
	}

	if err := e.csvWriter.WriteSimpleCSV(filename, GapHeaders(), records); err != nil {
		return fmt.Errorf("failed to write gap file: %w", err)
	}
	return nil
}
