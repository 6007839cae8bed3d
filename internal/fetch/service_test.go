package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncschooldata/internal/config"
	apperrors "ncschooldata/internal/errors"
	"ncschooldata/internal/rawtable"
	"ncschooldata/pkg/contracts/domain"
)

// stubSource serves canned tables and counts calls. Safe for concurrent
// use so range tests can assert call counts.
type stubSource struct {
	mu            sync.Mutex
	districtCalls int
	schoolCalls   int
	assessCalls   int
	dirCalls      int
	failYear      int
}

func (s *stubSource) DistrictEnrollment(ctx context.Context, year int) (*rawtable.Table, error) {
	s.mu.Lock()
	s.districtCalls++
	fail := s.failYear != 0 && year == s.failYear
	s.mu.Unlock()

	if fail {
		return nil, fmt.Errorf("source unavailable for %d", year)
	}

	t := rawtable.New([]string{"LEA Code", "LEA Name", "County", "Total", "White", "Black"})
	t.Append([]string{"920", "Wake County Schools", "Wake", "1,000", "600", "250"})
	t.Append([]string{"410", "Guilford County Schools", "Guilford", "500", "300", "100"})
	return t, nil
}

func (s *stubSource) SchoolEnrollment(ctx context.Context, year int) (*rawtable.Table, error) {
	s.mu.Lock()
	s.schoolCalls++
	s.mu.Unlock()

	t := rawtable.New([]string{"School Code", "School Name", "LEA Code", "Charter", "Total", "White"})
	t.Append([]string{"920302", "Athens Drive High", "920", "No", "400", "240"})
	return t, nil
}

func (s *stubSource) Assessment(ctx context.Context, year int) (*rawtable.Table, error) {
	s.mu.Lock()
	s.assessCalls++
	s.mu.Unlock()

	t := rawtable.New([]string{"School Code", "Standard", "Subject", "Grade", "Subgroup", "Den", "Pct", "Masking"})
	t.Append([]string{"920302", "CCR", "RD", "03", "WH7", "100", "60.0", "0"})
	t.Append([]string{"920302", "CCR", "RD", "03", "BL7", "80", "30.0", "0"})
	t.Append([]string{"920302", "GLP", "RD", "03", "WH7", "100", "72.0", "0"})
	return t, nil
}

func (s *stubSource) Directory(ctx context.Context) (map[string]*rawtable.Table, error) {
	s.mu.Lock()
	s.dirCalls++
	s.mu.Unlock()

	public := rawtable.New([]string{"School Name", "City", "Phone"})
	public.Append([]string{"Athens Drive High", "Raleigh", "(919) 555-0100"})

	charter := rawtable.New([]string{"School Name", "City", "Phone"})
	charter.Append([]string{"Raleigh Charter High", "Raleigh", "919-555-0200"})

	return map[string]*rawtable.Table{"public": public, "charter": charter}, nil
}

func (s *stubSource) calls() (district, school, assess, dir int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.districtCalls, s.schoolCalls, s.assessCalls, s.dirCalls
}

func newTestService(t *testing.T) (*Service, *stubSource, *MemoryStore) {
	t.Helper()

	source := &stubSource{}
	store := NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewServiceWithLogger(source, store, config.Default(), logger)
	require.NoError(t, err)
	return svc, source, store
}

func TestNewService(t *testing.T) {
	_, err := NewService(nil, nil, nil)
	assert.Error(t, err)

	svc, err := NewService(&stubSource{}, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestServiceEnrollment(t *testing.T) {
	svc, _, store := newTestService(t)

	res, err := svc.Enrollment(context.Background(), 2024)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 2024, res.Year)

	// State rollup, two districts, one school.
	require.Len(t, res.Wide, 4)
	assert.Equal(t, domain.LevelState, res.Wide[0].Level)
	assert.Equal(t, int64(1500), res.Wide[0].RowTotal.Int64)
	assert.Equal(t, 2024, res.Wide[0].EndYear)

	// Each row emits TOTAL plus one tidy row per reported cell.
	assert.Len(t, res.Tidy, 11)

	// No grade columns in the fixture, so no band rows.
	assert.Empty(t, res.Bands)

	assert.Equal(t, 3, store.Len())
	data, ok, err := svc.Snapshot(context.Background(), Key{Dataset: DatasetEnrollment, Year: 2024, Format: "wide.csv"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(string(data), "end_year,"))
}

func TestServiceEnrollment_YearValidation(t *testing.T) {
	svc, _, _ := newTestService(t)

	tests := []struct {
		name string
		year int
	}{
		{name: "before minimum", year: 1999},
		{name: "after maximum", year: 2026},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Enrollment(context.Background(), tt.year)
			require.Error(t, err)
			assert.True(t, apperrors.IsOutOfRange(err))
		})
	}
}

func TestServiceEnrollmentRange(t *testing.T) {
	svc, source, store := newTestService(t)

	results, err := svc.EnrollmentRange(context.Background(), 2022, 2024)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for year := 2022; year <= 2024; year++ {
		res, ok := results[year]
		require.True(t, ok, "missing year %d", year)
		assert.Equal(t, year, res.Year)
		assert.Equal(t, year, res.Wide[0].EndYear)
	}

	district, school, _, _ := source.calls()
	assert.Equal(t, 3, district)
	assert.Equal(t, 3, school)

	// Three snapshot shapes per year.
	assert.Equal(t, 9, store.Len())
}

func TestServiceEnrollmentRange_Inverted(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.EnrollmentRange(context.Background(), 2024, 2022)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestServiceEnrollmentRange_OutOfBounds(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.EnrollmentRange(context.Background(), 2004, 2024)
	require.Error(t, err)
	assert.True(t, apperrors.IsOutOfRange(err))
}

func TestServiceEnrollmentRange_SourceFailure(t *testing.T) {
	source := &stubSource{failYear: 2023}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewServiceWithLogger(source, NewMemoryStore(), config.Default(), logger)
	require.NoError(t, err)

	_, err = svc.EnrollmentRange(context.Background(), 2022, 2024)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2023")
}

func TestServiceAssessment(t *testing.T) {
	svc, _, store := newTestService(t)

	res, err := svc.Assessment(context.Background(), 2024)
	require.NoError(t, err)
	require.NotNil(t, res)

	// Default proficiency is CCR; the GLP fixture row is filtered out.
	require.Len(t, res.Results, 2)
	for _, row := range res.Results {
		assert.Equal(t, "CCR", row.Standard)
	}
	assert.Equal(t, int64(60), res.Results[0].NProficient.Int64)

	assert.Equal(t, 1, store.Len())
	_, ok, err := svc.Snapshot(context.Background(), Key{Dataset: DatasetAssessment, Year: 2024, Format: "results.csv"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestServiceAssessment_CovidYear(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Assessment(context.Background(), 2020)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailableYear(err))
	assert.True(t, apperrors.IsOutOfRange(err))
	assert.Contains(t, err.Error(), "COVID")
}

func TestServiceAssessment_UnpublishedYear(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Assessment(context.Background(), 2010)
	require.Error(t, err)
	assert.True(t, apperrors.IsOutOfRange(err))
	assert.False(t, apperrors.IsUnavailableYear(err))
}

func TestServiceAssessmentGaps(t *testing.T) {
	svc, _, store := newTestService(t)

	gaps, err := svc.AssessmentGaps(context.Background(), 2024, "WH7", "BL7")
	require.NoError(t, err)
	require.Len(t, gaps, 1)

	assert.Equal(t, "WH7", gaps[0].GroupA)
	assert.Equal(t, "BL7", gaps[0].GroupB)
	assert.InDelta(t, 30.0, gaps[0].Gap, 1e-9)

	// results.csv plus gaps.csv
	assert.Equal(t, 2, store.Len())
}

func TestServiceAssessmentGaps_MissingGroup(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.AssessmentGaps(context.Background(), 2024, "WH7", "  ")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestServiceDirectory(t *testing.T) {
	svc, _, store := newTestService(t)

	rows, err := svc.Directory(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Categories emit in name order.
	assert.Equal(t, "charter", rows[0].DirectoryType)
	assert.Equal(t, "Raleigh Charter High", rows[0].SchoolName)
	assert.Equal(t, "public", rows[1].DirectoryType)
	assert.Equal(t, "9195550100", rows[1].Phone.String)

	assert.Equal(t, 1, store.Len())
	_, ok, err := svc.Snapshot(context.Background(), Key{Dataset: DatasetDirectory, Format: "listings.csv"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestServiceSnapshotDisabled(t *testing.T) {
	source := &stubSource{}
	store := NewMemoryStore()
	cfg := config.Default()
	cfg.Fetch.Snapshot = false
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewServiceWithLogger(source, store, cfg, logger)
	require.NoError(t, err)

	_, err = svc.Enrollment(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())

	_, ok, err := svc.Snapshot(context.Background(), Key{Dataset: DatasetEnrollment, Year: 2024, Format: "wide.csv"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestServiceWithoutStore(t *testing.T) {
	source := &stubSource{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewServiceWithLogger(source, nil, config.Default(), logger)
	require.NoError(t, err)

	_, err = svc.Enrollment(context.Background(), 2024)
	require.NoError(t, err)

	data, ok, err := svc.Snapshot(context.Background(), Key{Dataset: DatasetEnrollment, Year: 2024, Format: "wide.csv"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestServiceSourceErrorWrapped(t *testing.T) {
	base := errors.New("connection refused")
	source := &failingSource{err: base}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewServiceWithLogger(source, nil, config.Default(), logger)
	require.NoError(t, err)

	_, err = svc.Enrollment(context.Background(), 2024)
	require.Error(t, err)
	assert.ErrorIs(t, err, base)
}

// failingSource errors on every method.
type failingSource struct {
	err error
}

func (f *failingSource) DistrictEnrollment(ctx context.Context, year int) (*rawtable.Table, error) {
	return nil, f.err
}

func (f *failingSource) SchoolEnrollment(ctx context.Context, year int) (*rawtable.Table, error) {
	return nil, f.err
}

func (f *failingSource) Assessment(ctx context.Context, year int) (*rawtable.Table, error) {
	return nil, f.err
}

func (f *failingSource) Directory(ctx context.Context) (map[string]*rawtable.Table, error) {
	return nil, f.err
}
