package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncschooldata/internal/config"
	"ncschooldata/internal/exporter"
	"ncschooldata/internal/fetch"
)

func TestResolveYears(t *testing.T) {
	tests := []struct {
		name    string
		year    string
		from    string
		to      string
		want    yearSelection
		wantErr bool
	}{
		{name: "single year", year: "2024", want: yearSelection{Year: 2024}},
		{name: "year range", from: "2018", to: "2024", want: yearSelection{From: 2018, To: 2024, Ranged: true}},
		{name: "no selection", want: yearSelection{}},
		{name: "year combined with range", year: "2024", from: "2018", to: "2024", wantErr: true},
		{name: "from without to", from: "2018", wantErr: true},
		{name: "to without from", to: "2024", wantErr: true},
		{name: "non-numeric year", year: "20x4", wantErr: true},
		{name: "multi-value year", year: "2018,2019", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveYears(tt.year, tt.from, tt.to)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Flag guards run before the service is touched, so a nil service is
// enough to exercise them.
func TestRunGuards(t *testing.T) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := runEnrollment(context.Background(), nil, nil, discard, yearSelection{})
	assert.ErrorContains(t, err, "requires -year")

	_, err = runAssessment(context.Background(), nil, nil, discard, yearSelection{Ranged: true, From: 2018, To: 2024}, "", "")
	assert.ErrorContains(t, err, "enrollment dataset only")

	_, err = runAssessment(context.Background(), nil, nil, discard, yearSelection{}, "", "")
	assert.ErrorContains(t, err, "requires -year")

	_, err = runAssessment(context.Background(), nil, nil, discard, yearSelection{Year: 2024}, "WH7", "")
	assert.ErrorContains(t, err, "given together")

	_, err = runAll(context.Background(), nil, nil, discard, yearSelection{Ranged: true, From: 2018, To: 2024}, "", "")
	assert.ErrorContains(t, err, "enrollment dataset only")

	_, err = runAll(context.Background(), nil, nil, discard, yearSelection{}, "", "")
	assert.ErrorContains(t, err, "requires -year")
}

func writeDataFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newTestPipeline builds a service over a populated data directory and
// paths pointing at a scratch output directory.
func newTestPipeline(t *testing.T) (*fetch.Service, *config.Paths) {
	t.Helper()

	dataDir := t.TempDir()
	writeDataFile(t, dataDir, "enrollment/district_2024.csv",
		"LEA Code,LEA Name,County,Total,White,Black\n"+
			"920,Wake County Schools,Wake,\"1,000\",600,250\n"+
			"410,Guilford County Schools,Guilford,500,300,100\n")
	writeDataFile(t, dataDir, "enrollment/school_2024.csv",
		"School Code,School Name,LEA Code,Charter,Total,White\n"+
			"920302,Athens Drive High,920,No,400,240\n")
	writeDataFile(t, dataDir, "assessment/2024.csv",
		"School Code,Standard,Subject,Grade,Subgroup,Den,Pct,Masking\n"+
			"920302,CCR,RD,03,WH7,100,60.0,0\n"+
			"920302,CCR,RD,03,BL7,80,30.0,0\n"+
			"920302,GLP,RD,03,WH7,100,72.0,0\n")
	writeDataFile(t, dataDir, "directory/public.csv",
		"School Name,City,Phone\nAthens Drive High,Raleigh,(919) 555-0100\n")
	writeDataFile(t, dataDir, "directory/charter.csv",
		"School Name,City,Phone\nRaleigh Charter High,Raleigh,919-555-0200\n")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := fetch.NewServiceWithLogger(fetch.NewFileSource(dataDir, logger), fetch.NewMemoryStore(), config.Default(), logger)
	require.NoError(t, err)

	paths := &config.Paths{
		DataDir:   dataDir,
		OutputDir: t.TempDir(),
		CacheDir:  t.TempDir(),
		LogsDir:   t.TempDir(),
	}
	return svc, paths
}

func TestRunAllEndToEnd(t *testing.T) {
	svc, paths := newTestPipeline(t)
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	written, err := runAll(context.Background(), svc, paths, discard, yearSelection{Year: 2024}, "WH7", "BL7")
	require.NoError(t, err)
	assert.Equal(t, 6, written)

	for _, name := range []string{
		"enr_2024.csv",
		"enr_2024_tidy.csv",
		"enr_2024_bands.csv",
		"assessment_2024.csv",
		"assessment_2024_gaps.csv",
		"directory.csv",
	} {
		assert.FileExists(t, filepath.Join(paths.OutputDir, name))
	}

	wide, err := os.ReadFile(filepath.Join(paths.OutputDir, "enr_2024.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(wide), "\ufeffend_year,"))
}

func TestRunAssessmentWithoutGaps(t *testing.T) {
	svc, paths := newTestPipeline(t)
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	written, err := runAssessment(context.Background(), svc, exporter.NewAssessmentExporter(paths), discard, yearSelection{Year: 2024}, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, written)
	assert.FileExists(t, filepath.Join(paths.OutputDir, "assessment_2024.csv"))
	assert.NoFileExists(t, filepath.Join(paths.OutputDir, "assessment_2024_gaps.csv"))
}

func TestRunDirectory(t *testing.T) {
	svc, paths := newTestPipeline(t)
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	written, err := runDirectory(context.Background(), svc, exporter.NewDirectoryExporter(paths), discard)
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	data, err := os.ReadFile(filepath.Join(paths.OutputDir, "directory.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Raleigh Charter High")
}
