package exporter

import (
	"fmt"

	"ncschooldata/internal/config"
	"ncschooldata/pkg/contracts/domain"
)

// DirectoryExporter handles school-directory report generation.
type DirectoryExporter struct {
	csvWriter *CSVWriter
}

// NewDirectoryExporter creates a new directory report exporter.
func NewDirectoryExporter(paths *config.Paths) *DirectoryExporter {
	return &DirectoryExporter{
		csvWriter: NewCSVWriter(paths),
	}
}

// ExportListings writes cleaned directory rows to a CSV file in the output
// directory.
func (e *DirectoryExporter) ExportListings(rows []domain.DirectoryRow, filename string) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, DirectoryRecord(row))
	}

	if err := e.csvWriter.WriteSimpleCSV(filename, DirectoryHeaders(), records); err != nil {
		return fmt.Errorf("failed to write directory file: %w", err)
	}
	return nil
}
