package exporter

import (
	"strconv"

	"ncschooldata/pkg/contracts/domain"
)

// nullToken is how NULL cells serialize in CSV output. Downstream R and
// pandas consumers read "NA" back as missing without extra configuration.
const nullToken = "NA"

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// formatFloat uses the shortest representation that round-trips, so shares
// like 0.408 survive a CSV round trip without artificial precision loss.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func formatNullInt(v domain.NullInt) string {
	if !v.Valid {
		return nullToken
	}
	return formatInt(v.Int64)
}

func formatNullFloat(v domain.NullFloat) string {
	if !v.Valid {
		return nullToken
	}
	return formatFloat(v.Float64)
}

func formatNullString(v domain.NullString) string {
	if !v.Valid {
		return nullToken
	}
	return v.String
}
