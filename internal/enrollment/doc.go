// Package enrollment turns raw NC DPI enrollment tables into the
// standardized wide schema and the long tidy schema built from it.
//
// # Architecture
//
// The package is organized into four stages:
//
// 1. Processors: ProcessDistrict and ProcessSchool resolve era-varying
// column names, parse count and suppression markers, and derive entity
// identifiers
// 2. Aggregator: StateAggregate synthesizes the statewide row by summing
// district rows
// 3. Pivot: Tidy converts wide grade and demographic columns into long
// (grade_level, subgroup, n_students, pct) rows
// 4. Bands: GradeBandAggregates derives K8, HS, and K12 rollups from tidy
// rows
//
// # Usage
//
// Processing a full year:
//
//	rows := enrollment.Process(enrollment.RawData{
//	    Districts: districtTable,
//	    Schools:   schoolTable,
//	}, 2024)
//	tidy := enrollment.Tidy(rows)
//	tidy = append(tidy, enrollment.GradeBandAggregates(tidy)...)
//
// # Data Flow
//
//	Raw tables → Processors → Wide rows → StateAggregate → Tidy → Bands
//
// # Missingness
//
// Source files suppress small counts and omit columns in some eras. Both
// resolve to NULL cells in the wide schema, and NULL cells produce no tidy
// row at all: a tidy row existing means the source reported the value.
// Nothing in this package raises an error; empty input yields empty output.
package enrollment
