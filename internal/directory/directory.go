// Package directory cleans school-directory listings from the published
// contact workbooks. Each workbook sheet is one source category; rows
// without a usable school name are dropped, phone and zip fields are
// stripped to their significant characters, and the state is pinned to NC.
package directory

import (
	"sort"

	"ncschooldata/internal/normalize"
	"ncschooldata/internal/rawtable"
	"ncschooldata/pkg/contracts/domain"
)

// Directory workbooks are hand-maintained, so headers drift more than the
// statistical files: some carry embedded newlines from wrapped spreadsheet
// cells. Candidates list the wrapped forms after the clean ones.
var columns = map[string][]string{
	"school_name": {"School Name", "School", "Name", "School\nName"},
	"address":     {"Address", "Street Address", "Mailing Address", "Mailing\nAddress"},
	"city":        {"City", "Town"},
	"state":       {"State", "ST"},
	"zip":         {"Zip", "Zip Code", "ZIP", "Zip\nCode"},
	"phone":       {"Phone", "Phone Number", "Telephone", "Phone\nNumber"},
	"county":      {"County", "County Name"},
	"district":    {"LEA Name", "District Name", "District", "LEA"},
	"principal":   {"Principal", "Principal Name", "Principal\nName"},
	"email":       {"Email", "Email Address", "E-mail", "Email\nAddress"},
}

// Process cleans every category's listings and concatenates them, tagged by
// category. Categories emit in name order so output is stable regardless of
// map iteration.
func Process(sources map[string]*rawtable.Table) []domain.DirectoryRow {
	categories := make([]string, 0, len(sources))
	for name := range sources {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	rows := make([]domain.DirectoryRow, 0)
	for _, category := range categories {
		rows = append(rows, processCategory(category, sources[category])...)
	}
	return rows
}

func processCategory(category string, t *rawtable.Table) []domain.DirectoryRow {
	if t.IsEmpty() {
		return nil
	}

	cols := make(map[string]int, len(columns))
	for field, candidates := range columns {
		cols[field] = t.Resolve(candidates...)
	}

	rows := make([]domain.DirectoryRow, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		name := normalize.CleanName(t.Value(i, cols["school_name"]))
		if name == "" || name == "." {
			continue
		}

		rows = append(rows, domain.DirectoryRow{
			DirectoryType: category,
			SchoolName:    name,
			Address:       normalize.TextCell(t.Value(i, cols["address"])),
			City:          normalize.TextCell(t.Value(i, cols["city"])),
			State:         "NC",
			Zip:           zipCell(t.Value(i, cols["zip"])),
			Phone:         phoneCell(t.Value(i, cols["phone"])),
			County:        normalize.TextCell(t.Value(i, cols["county"])),
			DistrictName:  normalize.TextCell(t.Value(i, cols["district"])),
			Principal:     normalize.TextCell(t.Value(i, cols["principal"])),
			Email:         normalize.TextCell(t.Value(i, cols["email"])),
		})
	}
	return rows
}

func phoneCell(raw string) domain.NullString {
	digits := normalize.Digits(raw)
	if digits == "" {
		return domain.NullString{}
	}
	return domain.StringFrom(digits)
}

func zipCell(raw string) domain.NullString {
	chars := normalize.ZipChars(raw)
	if chars == "" {
		return domain.NullString{}
	}
	return domain.StringFrom(chars)
}
