package assessment

import (
	"strings"

	"ncschooldata/pkg/contracts/domain"
)

// suppressionReasons maps the published masking codes to their meanings.
// Codes outside the table still suppress, with a generic reason.
var suppressionReasons = map[string]string{
	"1": "Greater than 95%",
	"2": "Less than 5%",
	"3": "Fewer than 10 students",
	"4": "Insufficient data",
}

// applyMasking records the raw masking code and resolves it to the
// suppression flag and reason. Blank, NA, and "0" mean the cell was
// published unmasked.
func applyMasking(row *domain.AssessmentRow, raw string) {
	code := strings.TrimSpace(raw)
	if code != "" {
		row.Masking = domain.StringFrom(code)
	}

	switch code {
	case "", "NA", "0":
		return
	}

	row.IsSuppressed = true
	reason, ok := suppressionReasons[code]
	if !ok {
		reason = "Unknown suppression"
	}
	row.SuppressionReason = domain.StringFrom(reason)
}
