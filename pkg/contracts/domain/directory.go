package domain

// DirectoryRow is one cleaned school-directory listing. Rows whose school
// name was blank or a placeholder are dropped during processing, so
// SchoolName is always populated.
type DirectoryRow struct {
	// DirectoryType names the source category the listing came from, for
	// example "public_schools" or "charter_schools".
	DirectoryType string `json:"directory_type" csv:"directory_type"`

	SchoolName string     `json:"school_name" csv:"school_name"`
	Address    NullString `json:"address" csv:"address"`
	City       NullString `json:"city" csv:"city"`

	// State is always "NC"; source files omit or abbreviate it
	// inconsistently.
	State string `json:"state" csv:"state"`

	// Zip keeps digits and hyphens only, Phone digits only.
	Zip   NullString `json:"zip" csv:"zip"`
	Phone NullString `json:"phone" csv:"phone"`

	County       NullString `json:"county" csv:"county"`
	DistrictName NullString `json:"district_name" csv:"district_name"`
	Principal    NullString `json:"principal" csv:"principal"`
	Email        NullString `json:"email" csv:"email"`
}
