package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ncschooldata/pkg/contracts/domain"
)

func TestFormatNullInt(t *testing.T) {
	assert.Equal(t, "159675", formatNullInt(domain.IntFrom(159675)))
	assert.Equal(t, "0", formatNullInt(domain.IntFrom(0)))
	assert.Equal(t, "NA", formatNullInt(domain.NullInt{}))
}

func TestFormatNullFloat(t *testing.T) {
	assert.Equal(t, "31.6", formatNullFloat(domain.FloatFrom(31.6)))
	assert.Equal(t, "1", formatNullFloat(domain.FloatFrom(1.0)))
	assert.Equal(t, "0.5", formatNullFloat(domain.FloatFrom(0.5)))
	assert.Equal(t, "NA", formatNullFloat(domain.NullFloat{}))
}

func TestFormatNullString(t *testing.T) {
	assert.Equal(t, "920", formatNullString(domain.StringFrom("920")))
	assert.Equal(t, "NA", formatNullString(domain.NullString{}))

	// A reported empty string is not the same as NULL.
	assert.Equal(t, "", formatNullString(domain.StringFrom("")))
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "true", formatBool(true))
	assert.Equal(t, "false", formatBool(false))
}
