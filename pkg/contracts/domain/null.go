package domain

import (
	"encoding/json"
)

// NullInt is a count cell that distinguishes a reported zero from a value
// the source withheld. Valid is false for suppressed or uncollected cells.
type NullInt struct {
	Int64 int64
	Valid bool
}

// IntFrom returns a valid NullInt holding v.
func IntFrom(v int64) NullInt {
	return NullInt{Int64: v, Valid: true}
}

// MarshalJSON encodes an invalid cell as JSON null.
func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Int64)
}

// UnmarshalJSON decodes JSON null as an invalid cell.
func (n *NullInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullInt{}
		return nil
	}
	n.Valid = true
	return json.Unmarshal(data, &n.Int64)
}

// NullFloat is a numeric cell that may be suppressed. Percentages keep the
// source scale (0-100 for assessment, 0-1 for tidy enrollment shares).
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// FloatFrom returns a valid NullFloat holding v.
func FloatFrom(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// MarshalJSON encodes an invalid cell as JSON null.
func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

// UnmarshalJSON decodes JSON null as an invalid cell.
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullFloat{}
		return nil
	}
	n.Valid = true
	return json.Unmarshal(data, &n.Float64)
}

// NullString is a text cell that may be absent. An empty valid string and an
// absent cell are distinct states.
type NullString struct {
	String string
	Valid  bool
}

// StringFrom returns a valid NullString holding s.
func StringFrom(s string) NullString {
	return NullString{String: s, Valid: true}
}

// MarshalJSON encodes an absent cell as JSON null.
func (n NullString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.String)
}

// UnmarshalJSON decodes JSON null as an absent cell.
func (n *NullString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullString{}
		return nil
	}
	n.Valid = true
	return json.Unmarshal(data, &n.String)
}
