package fetch

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncschooldata/internal/config"
	apperrors "ncschooldata/internal/errors"
)

func TestValidateRequest(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewServiceWithLogger(&stubSource{}, nil, config.Default(), logger)
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     Request
		wantErr string
	}{
		{
			name: "valid enrollment request",
			req:  Request{Dataset: DatasetEnrollment, Year: 2024},
		},
		{
			name: "valid directory request without year",
			req:  Request{Dataset: DatasetDirectory},
		},
		{
			name: "valid assessment request with proficiency",
			req:  Request{Dataset: DatasetAssessment, Year: 2024, Proficiency: "both"},
		},
		{
			name:    "missing dataset",
			req:     Request{Year: 2024},
			wantErr: "dataset is required",
		},
		{
			name:    "unknown dataset",
			req:     Request{Dataset: "finance", Year: 2024},
			wantErr: "dataset must be one of: enrollment, assessment, directory",
		},
		{
			name:    "implausible year",
			req:     Request{Dataset: DatasetEnrollment, Year: 1800},
			wantErr: "year must be greater than or equal to 1900",
		},
		{
			name:    "unknown proficiency",
			req:     Request{Dataset: DatasetAssessment, Year: 2024, Proficiency: "strictest"},
			wantErr: "proficiency must be one of: CCR, GLP, both",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.validateRequest(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsInvalidInput(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateRequest_MultipleFailures(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewServiceWithLogger(&stubSource{}, nil, config.Default(), logger)
	require.NoError(t, err)

	err = svc.validateRequest(Request{Dataset: "finance", Year: 2500, Proficiency: "strictest"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset must be one of")
	assert.Contains(t, err.Error(), "year must be less than or equal to 2100")
	assert.Contains(t, err.Error(), "proficiency must be one of")
}
