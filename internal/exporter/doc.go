// Package exporter provides CSV and JSON export for the school-data
// pipeline.
//
// This package contains these main components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// streaming, and UTF-8 BOM for Excel compatibility.
//
// EnrollmentExporter, AssessmentExporter, DirectoryExporter: per-dataset
// report writers that pair the domain row types with their fixed column
// orders. NULL cells serialize as "NA" so R and pandas consumers read them
// back as missing.
//
// The record conversion functions (WideRecord, TidyRecord, and friends) are
// exported separately so the fetch service can serialize snapshots without
// touching disk.
//
// Example usage:
//
//	exp := exporter.NewEnrollmentExporter(paths)
//
//	// Export standardized and tidy enrollment
//	err := exp.ExportWide(wideRows, "enr_2024.csv")
//	err = exp.ExportTidy(tidyRows, "enr_2024_tidy.csv")
//
//	// Serialize for the snapshot store
//	data, err := exporter.EncodeCSV(exporter.TidyHeaders(), records)
package exporter
