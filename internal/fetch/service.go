package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"ncschooldata/internal/assessment"
	"ncschooldata/internal/config"
	"ncschooldata/internal/directory"
	"ncschooldata/internal/enrollment"
	apperrors "ncschooldata/internal/errors"
	"ncschooldata/internal/exporter"
	"ncschooldata/internal/infrastructure"
	"ncschooldata/internal/validation"
	"ncschooldata/pkg/contracts/domain"
)

// EnrollmentResult holds the processed enrollment shapes for one year.
type EnrollmentResult struct {
	Year  int
	Wide  []domain.EnrollmentRow
	Tidy  []domain.TidyRow
	Bands []domain.TidyRow
}

// AssessmentResult holds processed assessment rows for one year, already
// filtered to the configured proficiency standard.
type AssessmentResult struct {
	Year    int
	Results []domain.AssessmentRow
}

// Service pulls raw tables from a Source, runs the dataset processors, and
// optionally snapshots the serialized output.
type Service struct {
	source   Source
	store    SnapshotStore
	cfg      *config.Config
	logger   *slog.Logger
	validate *validator.Validate
	otel     *Tracer
}

// NewService creates a fetch service using the default logger.
func NewService(source Source, store SnapshotStore, cfg *config.Config) (*Service, error) {
	return NewServiceWithLogger(source, store, cfg, slog.Default())
}

// NewServiceWithLogger creates a fetch service with a specific logger.
// store may be nil to disable snapshots entirely.
func NewServiceWithLogger(source Source, store SnapshotStore, cfg *config.Config, logger *slog.Logger) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("fetch service requires a source")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		source:   source,
		store:    store,
		cfg:      cfg,
		logger:   infrastructure.WithComponent(logger, "fetch_service"),
		validate: newValidator(),
	}, nil
}

// WithTracer attaches OpenTelemetry instrumentation and returns the
// service for chaining.
func (s *Service) WithTracer(t *Tracer) *Service {
	s.otel = t
	return s
}

// Enrollment fetches and processes district and school enrollment for one
// year. The wide result orders rows [state, districts, schools].
func (s *Service) Enrollment(ctx context.Context, year int) (res *EnrollmentResult, err error) {
	req := Request{Dataset: DatasetEnrollment, Year: year}
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	if err := validation.ValidateYear(year, s.cfg.Years.Min, s.cfg.Years.Max); err != nil {
		return nil, err
	}

	ctx = infrastructure.EnsureTraceID(ctx)
	ctx, span := s.otel.StartFetch(ctx, DatasetEnrollment, year)
	start := time.Now()
	defer func() {
		rows := 0
		if res != nil {
			rows = len(res.Wide)
		}
		s.otel.EndFetch(ctx, span, DatasetEnrollment, year, start, rows, err)
	}()

	districts, err := s.source.DistrictEnrollment(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("district enrollment fetch for %d: %w", year, err)
	}
	schools, err := s.source.SchoolEnrollment(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("school enrollment fetch for %d: %w", year, err)
	}

	wide := enrollment.Process(enrollment.RawData{Districts: districts, Schools: schools}, year)
	tidy := enrollment.Tidy(wide)
	bands := enrollment.GradeBandAggregates(tidy)

	s.writeSnapshot(ctx, Key{Dataset: DatasetEnrollment, Year: year, Format: "wide.csv"},
		exporter.WideHeaders(), wideRecords(wide))
	s.writeSnapshot(ctx, Key{Dataset: DatasetEnrollment, Year: year, Format: "tidy.csv"},
		exporter.TidyHeaders(), tidyRecords(tidy))
	s.writeSnapshot(ctx, Key{Dataset: DatasetEnrollment, Year: year, Format: "bands.csv"},
		exporter.TidyHeaders(), tidyRecords(bands))

	s.logger.InfoContext(ctx, "enrollment fetch complete",
		slog.Int("year", year),
		slog.Int("wide_rows", len(wide)),
		slog.Int("tidy_rows", len(tidy)),
		slog.Int("band_rows", len(bands)))

	return &EnrollmentResult{Year: year, Wide: wide, Tidy: tidy, Bands: bands}, nil
}

// EnrollmentRange fetches enrollment for every year in [from, to], running
// years concurrently up to the configured limit. Any single failure fails
// the whole range.
func (s *Service) EnrollmentRange(ctx context.Context, from, to int) (map[int]*EnrollmentResult, error) {
	if from > to {
		return nil, apperrors.NewInvalidInputError(
			fmt.Sprintf("year range %d-%d is inverted", from, to))
	}
	if err := validation.ValidateYear(from, s.cfg.Years.Min, s.cfg.Years.Max); err != nil {
		return nil, err
	}
	if err := validation.ValidateYear(to, s.cfg.Years.Min, s.cfg.Years.Max); err != nil {
		return nil, err
	}

	ctx = infrastructure.EnsureTraceID(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Fetch.Concurrency)

	var mu sync.Mutex
	out := make(map[int]*EnrollmentResult, to-from+1)

	for year := from; year <= to; year++ {
		year := year
		g.Go(func() error {
			res, err := s.Enrollment(gctx, year)
			if err != nil {
				return err
			}
			mu.Lock()
			out[year] = res
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "enrollment range complete",
		slog.Int("from", from),
		slog.Int("to", to),
		slog.Int("years", len(out)))

	return out, nil
}

// Assessment fetches and processes accountability results for one year,
// filtered to the configured proficiency standard.
func (s *Service) Assessment(ctx context.Context, year int) (res *AssessmentResult, err error) {
	req := Request{Dataset: DatasetAssessment, Year: year, Proficiency: s.cfg.Fetch.Proficiency}
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	if err := validation.ValidateAssessmentYear(year); err != nil {
		return nil, err
	}

	ctx = infrastructure.EnsureTraceID(ctx)
	ctx, span := s.otel.StartFetch(ctx, DatasetAssessment, year)
	start := time.Now()
	defer func() {
		rows := 0
		if res != nil {
			rows = len(res.Results)
		}
		s.otel.EndFetch(ctx, span, DatasetAssessment, year, start, rows, err)
	}()

	table, err := s.source.Assessment(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("assessment fetch for %d: %w", year, err)
	}

	rows := assessment.Process(table, year)
	filtered := assessment.FilterProficiency(rows, s.cfg.Fetch.Proficiency)

	s.writeSnapshot(ctx, Key{Dataset: DatasetAssessment, Year: year, Format: "results.csv"},
		exporter.AssessmentHeaders(), assessmentRecords(filtered))

	s.logger.InfoContext(ctx, "assessment fetch complete",
		slog.Int("year", year),
		slog.String("proficiency", s.cfg.Fetch.Proficiency),
		slog.Int("rows", len(filtered)))

	return &AssessmentResult{Year: year, Results: filtered}, nil
}

// AssessmentGaps fetches assessment results for one year and computes the
// proficiency gap between two subgroups.
func (s *Service) AssessmentGaps(ctx context.Context, year int, groupA, groupB string) ([]domain.GapRow, error) {
	groupA = strings.TrimSpace(groupA)
	groupB = strings.TrimSpace(groupB)
	if groupA == "" || groupB == "" {
		return nil, apperrors.NewInvalidInputError("gap computation requires two subgroup codes")
	}

	res, err := s.Assessment(ctx, year)
	if err != nil {
		return nil, err
	}

	gaps := assessment.ProficiencyGap(res.Results, groupA, groupB)

	s.writeSnapshot(ctx, Key{Dataset: DatasetAssessment, Year: year, Format: "gaps.csv"},
		exporter.GapHeaders(), gapRecords(gaps))

	s.logger.InfoContext(ctx, "gap computation complete",
		slog.Int("year", year),
		slog.String("group_a", groupA),
		slog.String("group_b", groupB),
		slog.Int("rows", len(gaps)))

	return gaps, nil
}

// Directory fetches and processes the school directory across all
// categories the source offers.
func (s *Service) Directory(ctx context.Context) (rows []domain.DirectoryRow, err error) {
	req := Request{Dataset: DatasetDirectory}
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	ctx = infrastructure.EnsureTraceID(ctx)
	ctx, span := s.otel.StartFetch(ctx, DatasetDirectory, 0)
	start := time.Now()
	defer func() {
		s.otel.EndFetch(ctx, span, DatasetDirectory, 0, start, len(rows), err)
	}()

	sources, err := s.source.Directory(ctx)
	if err != nil {
		return nil, fmt.Errorf("directory fetch: %w", err)
	}

	rows = directory.Process(sources)

	s.writeSnapshot(ctx, Key{Dataset: DatasetDirectory, Format: "listings.csv"},
		exporter.DirectoryHeaders(), directoryRecords(rows))

	s.logger.InfoContext(ctx, "directory fetch complete",
		slog.Int("categories", len(sources)),
		slog.Int("rows", len(rows)))

	return rows, nil
}

// Snapshot returns the stored snapshot for key, recording the hit or miss.
func (s *Service) Snapshot(ctx context.Context, key Key) ([]byte, bool, error) {
	if s.store == nil {
		return nil, false, nil
	}

	data, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}

	s.otel.RecordSnapshotLookup(ctx, key.Dataset, ok)
	return data, ok, nil
}

// writeSnapshot serializes rows to CSV and stores them under key.
// Snapshot failures are logged but never fail the fetch.
func (s *Service) writeSnapshot(ctx context.Context, key Key, headers []string, records [][]string) {
	if s.store == nil || !s.cfg.Fetch.Snapshot {
		return
	}

	data, err := exporter.EncodeCSV(headers, records)
	if err != nil {
		s.logger.WarnContext(ctx, "snapshot encode failed",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
		return
	}

	if err := s.store.Put(ctx, key, data); err != nil {
		s.logger.WarnContext(ctx, "snapshot write failed",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
		return
	}

	infrastructure.AddSpanEvent(ctx, "snapshot.stored", map[string]interface{}{
		"key":   key.String(),
		"bytes": len(data),
	})
}

func wideRecords(rows []domain.EnrollmentRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, exporter.WideRecord(r))
	}
	return out
}

func tidyRecords(rows []domain.TidyRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, exporter.TidyRecord(r))
	}
	return out
}

func assessmentRecords(rows []domain.AssessmentRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, exporter.AssessmentRecord(r))
	}
	return out
}

func gapRecords(rows []domain.GapRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, exporter.GapRecord(r))
	}
	return out
}

func directoryRecords(rows []domain.DirectoryRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, exporter.DirectoryRecord(r))
	}
	return out
}
